/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"strings"
)

// gsChar is the Group Separator that stands in for FNC1 within scan data.
const gsChar = '\x1D'

// scancat appends message data after a symbology identifier. GS1 data sheds
// its leading FNC1 and encodes the remaining FNC1s as GS; plain data sheds
// one backslash from an escaped leading "\^" sequence.
func scancat(in string) string {
	var b strings.Builder
	if strings.HasPrefix(in, "^") {
		for i := 1; i < len(in); i++ {
			if in[i] == '^' {
				b.WriteByte(gsChar)
			} else {
				b.WriteByte(in[i])
			}
		}
		return b.String()
	}

	r := 0
	for r < len(in) && in[r] == '\\' {
		r++
	}
	if r < len(in) && in[r] == '^' {
		in = in[1:]
	}
	return in
}

// validateParity checks the final digit of primary data against the GS1
// check digit algorithm. On a mismatch the final digit is overwritten with
// the correct value and false is returned.
func validateParity(digits []byte) bool {
	w := 1
	if len(digits)%2 == 0 {
		w = 3
	}
	parity := 0
	for i := 0; i < len(digits)-1; i++ {
		parity += w * int(digits[i]-'0')
		w = 4 - w
	}
	parity = (10 - parity%10) % 10

	if byte(parity)+'0' == digits[len(digits)-1] {
		return true
	}
	digits[len(digits)-1] = byte(parity) + '0'
	return false
}

// checkAndNormalisePrimary validates primary data of the given total length,
// computing its check digit rather than validating it when the addCheckDigit
// option is set.
func (e *Encoder) checkAndNormalisePrimary(dataStr string, length int) (string, error) {
	want := length
	if e.addCheckDigit {
		want = length - 1
	}
	if len(dataStr) != want {
		if e.addCheckDigit {
			return "", newErr(KindSyntax,
				"Primary data must be %d digits without check digit", length-1)
		}
		return "", newErr(KindSyntax, "Primary data must be %d digits", length)
	}
	if !allDigits(dataStr) {
		return "", newErr(KindSyntax, "Primary data must be all digits")
	}

	primary := make([]byte, length)
	copy(primary, dataStr)
	if e.addCheckDigit {
		primary[length-1] = '-' // Overwritten by the recomputed check digit
	}

	if !validateParity(primary) && !e.addCheckDigit {
		return "", newErr(KindSyntax, "Primary data check digit is incorrect")
	}
	return string(primary), nil
}

// ScanData renders the held message as barcode scan data for the session's
// symbology: an AIM symbology identifier followed by the message with FNC1
// represented as GS.
func (e *Encoder) ScanData() (string, error) {
	e.err = nil
	out, err := e.generateScanData()
	if err != nil {
		return "", e.fail(err)
	}
	return out, nil
}

func (e *Encoder) generateScanData() (string, error) {
	dataStr := e.dataStr
	var cc string
	hasCC := false
	if i := strings.IndexByte(dataStr, '|'); i != -1 { // Delimit end of linear data
		dataStr, cc, hasCC = dataStr[:i], dataStr[i+1:], true
	}

	aiMode := strings.HasPrefix(e.dataStr, "^")

	var b strings.Builder

	switch e.sym {

	case SymQR, SymDM, SymDotCode:

		// QR:      "]Q1" for plain data; "]Q3" for GS1 data
		// DM:      "]d1" for plain data; "]d2" for GS1 data
		// DotCode: "]J0" for plain data; "]J1" for GS1 data

		payload := dataStr
		if !aiMode {
			payload = e.dataStr // Plain data keeps any faux "|" delimiter
		}
		id, _ := lookupSymID(e.sym, aiMode)
		b.WriteByte(']')
		b.WriteString(id)
		b.WriteString(scancat(payload))

	case SymGS1128CCA, SymGS1128CCC:

		if !hasCC {
			// "]C1" for linear-only GS1-128
			if !aiMode {
				return "", newErr(KindSyntax, "Missing FNC1 in first position")
			}
			id, _ := lookupSymID(e.sym, true)
			b.WriteByte(']')
			b.WriteString(id)
			b.WriteString(scancat(dataStr))
			break
		}

		// GS1-128 Composite is carried as "]e0" like DataBar Expanded
		fallthrough

	case SymDataBarExpanded:

		// "]e0" followed by concatenated AI data from linear and CC
		if !aiMode {
			return "", newErr(KindSyntax, "Missing FNC1 in first position")
		}
		b.WriteString(ccSymID)
		b.WriteString(scancat(dataStr))

		if hasCC {
			if !strings.HasPrefix(cc, "^") {
				return "", newErr(KindSyntax, "Missing FNC1 in first position")
			}

			// Append GS if the last AI of the linear component is
			// not fixed-length
			lastAIfnc1 := false
			for i := range e.aiData {
				if e.aiData[i].kind != kindAI {
					break
				}
				lastAIfnc1 = !e.aiData[i].entry.NoFNC1
			}
			if lastAIfnc1 {
				b.WriteByte(gsChar)
			}
			b.WriteString(scancat(cc))
		}

	case SymDataBarOmni, SymDataBarTruncated, SymDataBarStacked,
		SymDataBarStackedOmni, SymDataBarLimited:

		// "]e0" then the GTIN-14, with any AI (01) prefix shed
		ds := dataStr
		if strings.HasPrefix(ds, "^01") {
			ds = ds[3:]
		}

		id, _ := lookupSymID(e.sym, aiMode)
		b.WriteByte(']')
		b.WriteString(id)
		b.WriteString("01")

		primary, err := e.checkAndNormalisePrimary(ds, 14)
		if err != nil {
			return "", err
		}

		// GS1 DataBar Limited is restricted to low-valued inputs:
		// 14 digits must be less than 2 * 10^13
		if e.sym == SymDataBarLimited && primary[0] >= '2' {
			return "", newErr(KindSyntax, "Primary data item value is too large")
		}
		b.WriteString(primary)

		if hasCC {
			if !strings.HasPrefix(cc, "^") {
				return "", newErr(KindSyntax, "Missing FNC1 in first position")
			}
			b.WriteString(scancat(cc))
		}

	case SymUPCA, SymUPCE, SymEAN13, SymEAN8:

		// Primary is "]E0" then 13 digits (or "]E4" then 8 digits for
		// EAN-8); a CC is a new message beginning "]e0"

		var length int
		var pad string
		switch e.sym {
		case SymEAN13:
			length = 13
		case SymEAN8:
			length = 8
		default: // UPC-A or UPC-E
			length = 12
			pad = "0" // As normalised to 12 digits
		}

		// If AI data beginning (01) then skip leading zeros of the
		// GTIN-14
		ds := dataStr
		aizeros := 17 - length
		if strings.HasPrefix(ds, "^01000000"[:aizeros]) {
			ds = ds[aizeros:]
		}

		id, _ := lookupSymID(e.sym, aiMode)
		b.WriteByte(']')
		b.WriteString(id)
		b.WriteString(pad)

		primary, err := e.checkAndNormalisePrimary(ds, length)
		if err != nil {
			return "", err
		}
		b.WriteString(primary)

		if hasCC {
			if !strings.HasPrefix(cc, "^") {
				return "", newErr(KindSyntax, "Missing FNC1 in first position")
			}
			b.WriteByte('|') // "|" means start of new message
			b.WriteString(ccSymID)
			b.WriteString(scancat(cc))
		}

	default:
		return "", newErr(KindConfiguration, "Unknown symbology")
	}

	return b.String(), nil
}

// SetScanData accepts barcode scan data: an AIM symbology identifier
// followed by the message, with FNC1 represented as GS. The symbology and
// message it conveys replace the held state. On failure the previously held
// message is retained.
func (e *Encoder) SetScanData(scanData string) error {
	e.err = nil

	res := &parseResult{}
	if err := e.processScanData(res, scanData); err != nil {
		return e.fail(err)
	}
	if err := e.validateAIs(res); err != nil {
		return e.fail(err)
	}
	e.sym = res.sym
	e.commit(res)
	return nil
}

func (e *Encoder) processScanData(res *parseResult, scanData string) error {
	if len(scanData) < 3 || scanData[0] != ']' {
		return newErr(KindSyntax, "Missing symbology identifier")
	}
	sym, aiMode, ok := lookupSymByID(scanData[1:3])
	if !ok {
		return newErr(KindSyntax, "Unsupported symbology identifier")
	}
	payload := scanData[3:]
	if len(payload) >= maxData {
		return newErr(KindDataTooLong, "Maximum data length is %d characters", maxData-1)
	}
	res.sym = sym

	var prefix string
	if sym == SymEAN13 || sym == SymEAN8 {

		primaryLen := 13
		if sym == SymEAN8 {
			primaryLen = 8
		}
		if len(payload) < primaryLen {
			return newErr(KindSyntax, "Primary scan data is too short")
		}

		var cc string
		hasCC := false
		if len(payload) >= primaryLen+4 &&
			payload[primaryLen:primaryLen+4] == "|"+ccSymID {
			cc = payload[primaryLen+4:]
			hasCC = true
		} else if len(payload) > primaryLen {
			return newErr(KindSyntax, "Primary message is too long")
		}

		primary := make([]byte, primaryLen)
		copy(primary, payload)
		if !allDigits(string(primary)) {
			return newErr(KindSyntax, "Primary message may only contain digits")
		}
		if !validateParity(primary) {
			return newErr(KindSyntax, "Primary message check digit is incorrect")
		}

		if !hasCC {
			res.dataStr = string(primary)
			return nil
		}

		// Process the CC as AI data appended to the primary message
		prefix = string(primary) + "|"
		payload = cc
		aiMode = true
	}

	if aiMode {
		// Forbid data "^" characters at this stage so that they
		// cannot conflate with FNC1
		if strings.IndexByte(payload, '^') != -1 {
			return newErr(KindSyntax, "Scan data contains illegal ^ character")
		}

		var w strings.Builder
		w.WriteByte('^')
		for i := 0; i < len(payload); i++ {
			c := payload[i]
			if c == gsChar { // GS character represents FNC1
				c = '^'
			}
			w.WriteByte(c)
		}
		wire := w.String()
		res.dataStr = prefix + wire

		// Validate the AI data and extract the AIs
		return e.processElementString(res, wire, true)
	}

	// From here plain data.

	// Disambiguate from GS1 data: "^" -> "\^" ; "\^" -> "\\^", etc
	r := 0
	for r < len(payload) && payload[r] == '\\' {
		r++
	}
	if r < len(payload) && payload[r] == '^' {
		payload = "\\" + payload
	}
	res.dataStr = payload

	// A GS1 Digital Link URI is processed immediately
	if isDLURIScheme(payload) {
		return e.parseDLURI(res, payload)
	}
	return nil
}
