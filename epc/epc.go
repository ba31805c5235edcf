/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc decodes binary Electronic Product Code tag data into GS1
// Application Identifier data. An EPC read from RFID tag memory carries a GS1
// key (a GTIN with its serial, or an SSCC) in a bit-packed layout defined by
// the EPC Tag Data Standard; the decoders here unpack that layout and render
// the key in the syntaxes the rest of the module works with: bracketed AI
// data for the gs1 session, and the EPC Pure Identity URI.
package epc

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FilterValue is the logistic filter carried by EPC tag encodings. It is not
// part of the identifier itself; it supports fast selection of tag
// populations during reading.
type FilterValue uint8

const (
	FilterOther        FilterValue = 0
	FilterPOSItem      FilterValue = 1
	FilterFullCase     FilterValue = 2
	FilterReserved3    FilterValue = 3
	FilterInnerPack    FilterValue = 4
	FilterReserved5    FilterValue = 5
	FilterUnitLoad     FilterValue = 6
	FilterInnerItem    FilterValue = 7
	FilterUndocumented FilterValue = 8
)

// decodeHex converts tag data to bytes, insisting on the exact encoding
// length.
func decodeHex(epcHex string, want int) ([]byte, error) {
	data, err := hex.DecodeString(epcHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid EPC hex")
	}
	if len(data) != want {
		return nil, errors.Errorf("EPC must be %d bytes, but is %d", want, len(data))
	}
	return data, nil
}

// bitField extracts width bits beginning at the given bit offset, reading the
// data big-endian as EPC encodings are laid out. The caller keeps width within
// 64 bits.
func bitField(data []byte, offset, width uint) uint64 {
	var v uint64
	for i := offset; i < offset+width; i++ {
		v <<= 1
		v |= uint64(data[i/8]>>(7-i%8)) & 1
	}
	return v
}

// asciiField unpacks a run of 7-bit ISO 646 characters beginning at the given
// bit offset, stopping at the field end or the first NUL.
func asciiField(data []byte, offset, width uint) string {
	var b strings.Builder
	for i := offset; i+7 <= offset+width; i += 7 {
		c := byte(bitField(data, i, 7))
		if c == 0 {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

// zeroPad renders v as exactly n digits.
func zeroPad(v uint64, n int) string {
	s := strconv.FormatUint(v, 10)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}

// appendCheckDigit completes a GS1 key with its mod-10 check digit.
func appendCheckDigit(digits string) string {
	w := 1
	if len(digits)%2 == 1 {
		w = 3
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += w * int(digits[i]-'0')
		w = 4 - w
	}
	return digits + string(byte((10-sum%10)%10)+'0')
}

// uriEscapeSerial percent-encodes the characters that may not appear
// literally in the serial segment of an EPC URI.
func uriEscapeSerial(serial string) string {
	return serialEscaper.Replace(serial)
}

var serialEscaper = strings.NewReplacer(
	`"`, "%22",
	"%", "%25",
	"&", "%26",
	"/", "%2F",
	"<", "%3C",
	">", "%3E",
	"?", "%3F",
)
