/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	sgtin96Header  = 0x30
	sgtin198Header = 0x36

	sgtin96Bytes  = 12
	sgtin198Bytes = 25

	// Serial field widths following the company prefix and item reference.
	sgtin96SerialBits  = 38
	sgtin198SerialBits = 140
)

// sgtinPartitions maps the 3-bit partition value to the split of the 44 bits
// and 13 digits shared between the company prefix and the item reference.
var sgtinPartitions = [7]struct {
	prefixBits, prefixDigits uint
	itemBits, itemDigits     uint
}{
	{40, 12, 4, 1},
	{37, 11, 7, 2},
	{34, 10, 10, 3},
	{30, 9, 14, 4},
	{27, 8, 17, 5},
	{24, 7, 20, 6},
	{20, 6, 24, 7},
}

// SGTIN is a serialised GTIN decoded from an SGTIN-96 or SGTIN-198 tag
// encoding. The item reference keeps its leading indicator digit, as it does
// in the EPC URI form.
type SGTIN struct {
	filter        FilterValue
	companyPrefix string
	itemRef       string
	serial        string
}

// DecodeSGTIN unpacks the hex content of an SGTIN-96 or SGTIN-198 tag
// encoding.
func DecodeSGTIN(epcHex string) (SGTIN, error) {
	want := sgtin96Bytes
	if len(epcHex) == sgtin198Bytes*2 {
		want = sgtin198Bytes
	}
	data, err := decodeHex(epcHex, want)
	if err != nil {
		return SGTIN{}, err
	}

	header := data[0]
	switch {
	case header == sgtin96Header && len(data) == sgtin96Bytes:
	case header == sgtin198Header && len(data) == sgtin198Bytes:
	case header == sgtin96Header || header == sgtin198Header:
		return SGTIN{}, errors.Errorf("EPC length %d does not match header %#02x", len(data), header)
	default:
		return SGTIN{}, errors.Errorf("EPC header %#02x is not an SGTIN encoding", header)
	}

	partition := bitField(data, 11, 3)
	if partition > 6 {
		return SGTIN{}, errors.Errorf("SGTIN partition value %d is reserved", partition)
	}
	p := sgtinPartitions[partition]

	prefix := bitField(data, 14, p.prefixBits)
	if prefix >= pow10(p.prefixDigits) {
		return SGTIN{}, errors.Errorf("SGTIN company prefix %d needs more than %d digits", prefix, p.prefixDigits)
	}
	itemRef := bitField(data, 14+p.prefixBits, p.itemBits)
	if itemRef >= pow10(p.itemDigits) {
		return SGTIN{}, errors.Errorf("SGTIN item reference %d needs more than %d digits", itemRef, p.itemDigits)
	}

	s := SGTIN{
		filter:        FilterValue(bitField(data, 8, 3)),
		companyPrefix: zeroPad(prefix, int(p.prefixDigits)),
		itemRef:       zeroPad(itemRef, int(p.itemDigits)),
	}
	serialOffset := 14 + p.prefixBits + p.itemBits
	if header == sgtin96Header {
		s.serial = strconv.FormatUint(bitField(data, serialOffset, sgtin96SerialBits), 10)
	} else {
		s.serial = asciiField(data, serialOffset, sgtin198SerialBits)
		if s.serial == "" {
			return SGTIN{}, errors.New("SGTIN-198 serial is empty")
		}
	}
	return s, nil
}

// Filter returns the tag's logistic filter value.
func (s SGTIN) Filter() FilterValue { return s.filter }

// Serial returns the serial component.
func (s SGTIN) Serial() string { return s.serial }

// GTIN returns the 14-digit GTIN, with the item reference's indicator digit
// moved to the front and the check digit computed.
func (s SGTIN) GTIN() string {
	return appendCheckDigit(s.itemRef[:1] + s.companyPrefix + s.itemRef[1:])
}

// AIDataStr renders the identifier as bracketed AI data suitable for
// gs1.Encoder.SetAIDataStr.
func (s SGTIN) AIDataStr() string {
	return "(01)" + s.GTIN() + "(21)" + s.serial
}

// URI returns the EPC Pure Identity URI.
func (s SGTIN) URI() string {
	return "urn:epc:id:sgtin:" + s.companyPrefix + "." + s.itemRef + "." + uriEscapeSerial(s.serial)
}

func pow10(n uint) uint64 {
	v := uint64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}
