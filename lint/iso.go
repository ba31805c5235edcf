/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

import "strings"

// Officially assigned ISO 3166-1 numeric country codes.
const iso3166Numeric = "004 008 010 012 016 020 024 028 031 032 036 040 044 048 050 051 052 " +
	"056 060 064 068 070 072 074 076 084 086 090 092 096 100 104 108 112 116 120 124 132 " +
	"136 140 144 148 152 156 158 162 166 170 174 175 178 180 184 188 191 192 196 203 204 " +
	"208 212 214 218 222 226 231 232 233 234 238 239 242 246 248 250 254 258 260 262 266 " +
	"268 270 275 276 288 292 296 300 304 308 312 316 320 324 328 332 334 336 340 344 348 " +
	"352 356 360 364 368 372 376 380 384 388 392 398 400 404 408 410 414 417 418 422 426 " +
	"428 430 434 438 440 442 446 450 454 458 462 466 470 474 478 480 484 492 496 498 499 " +
	"500 504 508 512 516 520 524 528 531 533 534 535 540 548 554 558 562 566 570 574 578 " +
	"580 581 583 584 585 586 591 598 600 604 608 612 616 620 624 626 630 634 638 642 643 " +
	"646 652 654 659 660 662 663 666 670 674 678 682 686 688 690 694 702 703 704 705 706 " +
	"710 716 724 728 729 732 740 744 748 752 756 760 762 764 768 772 776 780 784 788 792 " +
	"795 796 798 800 804 807 818 826 831 832 833 834 840 850 854 858 860 862 876 882 887 894"

// Officially assigned ISO 3166-1 alpha-2 country codes.
const iso3166Alpha2Codes = "AD AE AF AG AI AL AM AO AQ AR AS AT AU AW AX AZ " +
	"BA BB BD BE BF BG BH BI BJ BL BM BN BO BQ BR BS BT BV BW BY BZ " +
	"CA CC CD CF CG CH CI CK CL CM CN CO CR CU CV CW CX CY CZ " +
	"DE DJ DK DM DO DZ EC EE EG EH ER ES ET FI FJ FK FM FO FR " +
	"GA GB GD GE GF GG GH GI GL GM GN GP GQ GR GS GT GU GW GY " +
	"HK HM HN HR HT HU ID IE IL IM IN IO IQ IR IS IT JE JM JO JP " +
	"KE KG KH KI KM KN KP KR KW KY KZ LA LB LC LI LK LR LS LT LU LV LY " +
	"MA MC MD ME MF MG MH MK ML MM MN MO MP MQ MR MS MT MU MV MW MX MY MZ " +
	"NA NC NE NF NG NI NL NO NP NR NU NZ OM " +
	"PA PE PF PG PH PK PL PM PN PR PS PT PW PY QA RE RO RS RU RW " +
	"SA SB SC SD SE SG SH SI SJ SK SL SM SN SO SR SS ST SV SX SY SZ " +
	"TC TD TF TG TH TJ TK TL TM TN TO TR TT TV TW TZ " +
	"UA UG UM US UY UZ VA VC VE VG VI VN VU WF WS YE YT ZA ZM ZW"

// Assigned ISO 4217 numeric currency codes, including fund and metal codes.
const iso4217Numeric = "008 012 032 036 044 048 050 051 052 060 064 068 072 084 090 096 104 " +
	"108 116 124 132 136 144 152 156 170 174 188 191 192 203 208 214 222 230 232 238 242 " +
	"262 270 292 320 324 328 332 340 344 348 352 356 360 364 368 376 388 392 398 400 404 " +
	"408 410 414 417 418 422 426 430 434 446 454 458 462 480 484 496 498 504 512 516 524 " +
	"532 533 548 554 558 566 578 586 590 598 600 604 608 634 643 646 654 682 690 694 702 " +
	"704 748 752 756 760 764 776 780 784 788 800 807 818 826 834 840 858 860 882 886 894 " +
	"901 925 926 927 928 929 930 931 932 933 934 936 938 940 941 943 944 946 947 948 949 " +
	"950 951 952 953 955 956 957 958 959 960 961 962 963 964 965 967 968 969 970 971 972 " +
	"973 975 976 977 978 979 980 981 984 985 986 990 994 997 999"

func codeSet(codes string) map[string]struct{} {
	fields := strings.Fields(codes)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

var (
	iso3166Set       = codeSet(iso3166Numeric)
	iso3166Alpha2Set = codeSet(iso3166Alpha2Codes)
	iso4217Set       = codeSet(iso4217Numeric)
)

// ISO3166 ensures that the component is an assigned ISO 3166 three-digit
// country code.
func ISO3166(data string) *Violation {
	if _, ok := iso3166Set[data]; !ok {
		return violation(NotISO3166, 0, len(data))
	}
	return nil
}

// ISO3166Or999 is ISO3166 additionally permitting the sentinel value "999".
func ISO3166Or999(data string) *Violation {
	if data == "999" {
		return nil
	}
	if _, ok := iso3166Set[data]; !ok {
		return violation(NotISO3166Or999, 0, len(data))
	}
	return nil
}

// ISO3166List ensures that the component is a non-empty concatenation of
// assigned ISO 3166 three-digit country codes.
func ISO3166List(data string) *Violation {
	if len(data) == 0 || len(data)%3 != 0 {
		pos := len(data) - len(data)%3
		return violation(NotISO3166, pos, len(data)-pos)
	}
	for i := 0; i+3 <= len(data); i += 3 {
		if _, ok := iso3166Set[data[i:i+3]]; !ok {
			return violation(NotISO3166, i, 3)
		}
	}
	return nil
}

// ISO3166Alpha2 ensures that the component is an assigned ISO 3166 alpha-2
// country code.
func ISO3166Alpha2(data string) *Violation {
	if _, ok := iso3166Alpha2Set[data]; !ok {
		return violation(NotISO3166Alpha2, 0, len(data))
	}
	return nil
}

// ISO4217 ensures that the component is an assigned ISO 4217 three-digit
// currency code.
func ISO4217(data string) *Violation {
	if _, ok := iso4217Set[data]; !ok {
		return violation(NotISO4217, 0, len(data))
	}
	return nil
}

// ISO5218 ensures that the component is an ISO/IEC 5218 biological sex code:
// "0" (not known), "1" (male), "2" (female) or "9" (not applicable).
func ISO5218(data string) *Violation {
	if data != "0" && data != "1" && data != "2" && data != "9" {
		return violation(InvalidBiologicalSex, 0, len(data))
	}
	return nil
}

const (
	// No clear minimum in the IBAN specification; enough to carry the
	// check characters and a non-trivial BBAN.
	ibanMinLength = 10
	ibanMaxLength = 34
)

// ibanWeights maps each permitted IBAN character to its base-36 value plus
// one. Zero marks characters outside the set.
var ibanWeights = [127]uint8{
	'0': 1, '1': 2, '2': 3, '3': 4, '4': 5,
	'5': 6, '6': 7, '7': 8, '8': 9, '9': 10,
	'A': 11, 'B': 12, 'C': 13, 'D': 14, 'E': 15,
	'F': 16, 'G': 17, 'H': 18, 'I': 19, 'J': 20,
	'K': 21, 'L': 22, 'M': 23, 'N': 24, 'O': 25,
	'P': 26, 'Q': 27, 'R': 28, 'S': 29, 'T': 30,
	'U': 31, 'V': 32, 'W': 33, 'X': 34, 'Y': 35, 'Z': 36,
}

// IBAN ensures that the component is a plausible International Bank Account
// Number: a country prefix, then check characters satisfying the mod-97
// scheme of ISO 7064 over the rearranged value.
func IBAN(data string) *Violation {
	if len(data) < 4 {
		return violation(IBANTooShort, 0, len(data))
	}
	if v := ISO3166Alpha2(data[:2]); v != nil {
		return violation(IllegalIBANCountry, 0, 2)
	}
	if len(data) > ibanMaxLength {
		return violation(IBANTooLong, 0, len(data))
	}
	if len(data) <= ibanMinLength {
		return violation(IBANTooShort, 0, len(data))
	}

	// Mod 97 over the data rotated to put the country and check characters
	// last, with letters expanded to two-digit values.
	csum := 0
	for i := 4; i < len(data)+4; i++ {
		pos := i
		if pos >= len(data) {
			pos -= len(data)
		}
		w := int(0)
		if data[pos] < 127 {
			w = int(ibanWeights[data[pos]])
		}
		if w == 0 {
			return violation(InvalidIBANCharacter, pos, 1)
		}
		if w <= 10 {
			csum *= 10
		} else {
			csum *= 100
		}
		csum = (csum + w - 1) % 97
	}
	if csum != 1 {
		return violation(IncorrectIBANChecksum, 2, 2)
	}
	return nil
}
