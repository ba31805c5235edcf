/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"github.com/pkg/errors"
)

const (
	sscc96Header = 0x31
	sscc96Bytes  = 12
)

// ssccPartitions maps the 3-bit partition value to the split of the 58 bits
// and 17 digits shared between the company prefix and the serial reference.
var ssccPartitions = [7]struct {
	prefixBits, prefixDigits uint
	serialBits, serialDigits uint
}{
	{40, 12, 18, 5},
	{37, 11, 21, 6},
	{34, 10, 24, 7},
	{30, 9, 28, 8},
	{27, 8, 31, 9},
	{24, 7, 34, 10},
	{20, 6, 38, 11},
}

// SSCC is a Serial Shipping Container Code decoded from an SSCC-96 tag
// encoding. The serial reference keeps its leading extension digit, as it
// does in the EPC URI form.
type SSCC struct {
	filter        FilterValue
	companyPrefix string
	serialRef     string
}

// DecodeSSCC unpacks the hex content of an SSCC-96 tag encoding.
func DecodeSSCC(epcHex string) (SSCC, error) {
	data, err := decodeHex(epcHex, sscc96Bytes)
	if err != nil {
		return SSCC{}, err
	}
	if data[0] != sscc96Header {
		return SSCC{}, errors.Errorf("EPC header %#02x is not an SSCC encoding", data[0])
	}

	partition := bitField(data, 11, 3)
	if partition > 6 {
		return SSCC{}, errors.Errorf("SSCC partition value %d is reserved", partition)
	}
	p := ssccPartitions[partition]

	prefix := bitField(data, 14, p.prefixBits)
	if prefix >= pow10(p.prefixDigits) {
		return SSCC{}, errors.Errorf("SSCC company prefix %d needs more than %d digits", prefix, p.prefixDigits)
	}
	serialRef := bitField(data, 14+p.prefixBits, p.serialBits)
	if serialRef >= pow10(p.serialDigits) {
		return SSCC{}, errors.Errorf("SSCC serial reference %d needs more than %d digits", serialRef, p.serialDigits)
	}

	return SSCC{
		filter:        FilterValue(bitField(data, 8, 3)),
		companyPrefix: zeroPad(prefix, int(p.prefixDigits)),
		serialRef:     zeroPad(serialRef, int(p.serialDigits)),
	}, nil
}

// Filter returns the tag's logistic filter value.
func (s SSCC) Filter() FilterValue { return s.filter }

// Value returns the 18-digit SSCC, with the serial reference's extension
// digit moved to the front and the check digit computed.
func (s SSCC) Value() string {
	return appendCheckDigit(s.serialRef[:1] + s.companyPrefix + s.serialRef[1:])
}

// AIDataStr renders the identifier as bracketed AI data suitable for
// gs1.Encoder.SetAIDataStr.
func (s SSCC) AIDataStr() string {
	return "(00)" + s.Value()
}

// URI returns the EPC Pure Identity URI.
func (s SSCC) URI() string {
	return "urn:epc:id:sscc:" + s.companyPrefix + "." + s.serialRef
}
