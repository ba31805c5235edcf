/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

import "strings"

// NonZero ensures that the component is all digits with a non-zero value.
func NonZero(data string) *Violation {
	if v := CSetNumeric(data); v != nil {
		return v
	}
	if strings.Trim(data, "0") == "" {
		return violation(IllegalZero, 0, len(data))
	}
	return nil
}

// Zero ensures that the component is all digits with a value of zero.
func Zero(data string) *Violation {
	if v := CSetNumeric(data); v != nil {
		return v
	}
	if strings.Trim(data, "0") != "" {
		return violation(NotZero, 0, len(data))
	}
	return nil
}

// NoZeroPrefix ensures that the component is all digits and does not start
// with zero.
func NoZeroPrefix(data string) *Violation {
	if v := CSetNumeric(data); v != nil {
		return v
	}
	if len(data) > 0 && data[0] == '0' {
		return violation(IllegalZeroPrefix, 0, 1)
	}
	return nil
}

// YesNo ensures that the component is the boolean flag "0" or "1".
func YesNo(data string) *Violation {
	if data != "0" && data != "1" {
		return violation(NotZeroOrOne, 0, len(data))
	}
	return nil
}

// Winding ensures that the component is a winding direction: "0" (face out),
// "1" (face in) or "9" (undefined).
func Winding(data string) *Violation {
	if data != "0" && data != "1" && data != "9" {
		return violation(InvalidWinding, 0, len(data))
	}
	return nil
}

// Hyphen ensures that the component contains only hyphens.
func Hyphen(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] != '-' {
			return violation(NotHyphen, i, 1)
		}
	}
	return nil
}

// HasNonDigit ensures that at least one character of the component is not a
// digit, distinguishing alphanumeric keys from purely numeric ones.
func HasNonDigit(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return nil
		}
	}
	return violation(RequiresNonDigit, 0, len(data))
}

// importerIdx is the character set permitted for the Importer Index.
var importerIdx = [127]uint8{
	'-': 1, '_': 1,
	'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
	'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
	'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
	'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
	's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
}

// ImporterIdx ensures that the component is a single character from the
// Importer Index set.
func ImporterIdx(data string) *Violation {
	if len(data) != 1 {
		return violation(ImporterIdxNotOneChar, 0, len(data))
	}
	if data[0] > 126 || importerIdx[data[0]] == 0 {
		return violation(InvalidImporterIdx, 0, 1)
	}
	return nil
}

// PieceOfTotal ensures that the component is an even-length run of digits
// whose first half (the piece number) is non-zero and does not exceed its
// non-zero second half (the total).
func PieceOfTotal(data string) *Violation {
	if len(data) == 0 || len(data)%2 != 0 {
		return violation(PieceOfTotalBadLength, 0, len(data))
	}
	if v := CSetNumeric(data); v != nil {
		return v
	}
	half := len(data) / 2
	piece, total := data[:half], data[half:]
	if strings.Trim(piece, "0") == "" {
		return violation(ZeroPieceNumber, 0, half)
	}
	if strings.Trim(total, "0") == "" {
		return violation(ZeroTotalPieces, half, half)
	}
	if piece > total {
		return violation(PieceExceedsTotal, 0, len(data))
	}
	return nil
}

// PosInSeqSlash ensures that the component has the form "<pos>/<end>" with
// both numbers free of zero prefixes and pos not exceeding end.
func PosInSeqSlash(data string) *Violation {
	slash := -1
	for i := 0; i < len(data); i++ {
		if data[i] >= '0' && data[i] <= '9' {
			continue
		}
		if data[i] == '/' && slash == -1 && i > 0 {
			slash = i
			continue
		}
		return violation(PositionMalformed, 0, len(data))
	}
	if slash == -1 || slash == len(data)-1 {
		return violation(PositionMalformed, 0, len(data))
	}
	pos, end := data[:slash], data[slash+1:]
	if pos[0] == '0' {
		return violation(IllegalZeroPrefix, 0, len(pos))
	}
	if end[0] == '0' {
		return violation(IllegalZeroPrefix, slash+1, len(end))
	}
	// Zero prefixes are excluded, so length ordering implies value ordering.
	if len(pos) > len(end) || (len(pos) == len(end) && pos > end) {
		return violation(PositionExceedsEnd, 0, len(data))
	}
	return nil
}

const hexDigits = "0123456789ABCDEFabcdef"

// PercentEncoded ensures that every "%" in the component starts a valid
// two-hex-digit percent escape.
func PercentEncoded(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] != '%' {
			continue
		}
		if len(data)-i < 3 {
			return violation(InvalidPercentSequence, i, len(data)-i)
		}
		if strings.IndexByte(hexDigits, data[i+1]) < 0 ||
			strings.IndexByte(hexDigits, data[i+2]) < 0 {
			return violation(InvalidPercentSequence, i, 3)
		}
		i += 2
	}
	return nil
}

func digitValue(data string) (uint64, *Violation) {
	var value uint64
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return 0, violation(NonDigit, i, 1)
		}
		value = value*10 + uint64(data[i]-'0')
	}
	return value, nil
}

// Latitude ensures that the component is a ten-digit latitude in the range
// "0000000000" to "1800000000".
func Latitude(data string) *Violation {
	if len(data) != 10 {
		return violation(LatitudeBadLength, 0, len(data))
	}
	value, v := digitValue(data)
	if v != nil {
		return v
	}
	if value > 1800000000 {
		return violation(InvalidLatitude, 0, 10)
	}
	return nil
}

// Longitude ensures that the component is a ten-digit longitude in the range
// "0000000000" to "3600000000".
func Longitude(data string) *Violation {
	if len(data) != 10 {
		return violation(LongitudeBadLength, 0, len(data))
	}
	value, v := digitValue(data)
	if v != nil {
		return v
	}
	if value > 3600000000 {
		return violation(InvalidLongitude, 0, 10)
	}
	return nil
}

// LatLong ensures that the component is a ten-digit latitude directly
// followed by a ten-digit longitude.
func LatLong(data string) *Violation {
	if len(data) != 20 {
		return violation(LatLongBadLength, 0, len(data))
	}
	if v := CSetNumeric(data); v != nil {
		return v
	}
	if value, _ := digitValue(data[:10]); value > 1800000000 {
		return violation(InvalidLatitude, 0, 10)
	}
	if value, _ := digitValue(data[10:]); value > 3600000000 {
		return violation(InvalidLongitude, 10, 10)
	}
	return nil
}

// ICCBBA assignments and local/national use values for AIDC media types.
var mediaTypes = codeSet("01 02 03 04 05 06 07 08 09 10 " +
	"80 81 82 83 84 85 86 87 88 89 90 91 92 93 94 95 96 97 98 99")

// MediaType ensures that the component is an assigned AIDC media type.
func MediaType(data string) *Violation {
	if _, ok := mediaTypes[data]; !ok {
		return violation(InvalidMediaType, 0, len(data))
	}
	return nil
}

// UN/CEFACT Recommendation 21 package type codes, plus the GS1 extensions.
var packageTypes = codeSet("1A 1B 1D 1F 1G 1W " +
	"200 201 202 203 204 205 206 210 211 212 2C " +
	"3A 3H 43 44 4A 4B 4C 4D 4F 4G 4H 5H 5L 5M 6H 6P 7A 7B 8 8A 8B 8C 9 " +
	"AA AB AC AD AF AG AH AI AJ AL AM AP APE AT AV " +
	"B4 BB BC BD BE BF BG BGE BH BI BJ BK BL BM BME BN BO BP BQ BR BRI BS BT BU BV BW BX BY BZ " +
	"CA CB CBL CC CCE CD CE CF CG CH CI CJ CK CL CM CN CO CP CQ CR CS CT CU CV CW CX CY CZ " +
	"DA DB DC DG DH DI DJ DK DL DM DN DP DPE DR DS DT DU DV DW DX DY " +
	"E1 E2 E3 EC ED EE EF EG EH EI EN " +
	"FB FC FD FE FI FL FO FOB FP FPE FR FT FW FX " +
	"GB GI GL GR GU GY GZ HA HB HC HG HN HR " +
	"IA IB IC ID IE IF IG IH IK IL IN IZ JB JC JG JR JT JY KG KI " +
	"LAB LE LG LT LU LV LZ MA MB MC ME MPE MR MS MT MW MX " +
	"NA NE NF NG NS NT NU NV OA OB OC OD OE OF OK OPE OT OU " +
	"P2 PA PAE PB PC PD PE PF PG PH PI PJ PK PL PLP ON PO POP PP PPE PR PT PU PUE PV PX PY PZ " +
	"QA QB QC QD QF QG QH QJ QK QL QM QN QP QQ QR QS " +
	"RB1 RB2 RB3 RCB RD RG RJ RK RL RO RT RZ " +
	"S1 SA SB SC SD SE SEC SH SI SK SL SM SO SP SS ST STL SU SV SW SX SY SZ " +
	"T1 TB TC TD TE TEV TG THE TI TK TL TN TO TR TREE TS TT TTE TU TV TW TWE TY TZ " +
	"UC UN UUE VA VG VI VK VL VN VO VP VQ VR VS VY " +
	"WA WB WC WD WF WG WH WJ WK WL WM WN WP WQ WR WRP WS WT WU WV WW WX WY WZ " +
	"X11 X12 X15 X16 X17 X18 X19 X20 X3 XA XB XC XD XF XG XH XJ XK " +
	"YA YB YC YD YF YG YH YJ YK YL YM YN YP YQ YR YS YT YV YW YX YY YZ " +
	"ZA ZB ZC ZD ZF ZG ZH ZJ ZK ZL ZM ZN ZP ZQ ZR ZS ZT ZU ZV ZW ZX ZY ZZ")

// PackageType ensures that the component is a valid PackageTypeCode.
func PackageType(data string) *Violation {
	if _, ok := packageTypes[data]; !ok {
		return violation(InvalidPackageType, 0, len(data))
	}
	return nil
}
