/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc_test

import (
	"fmt"
	"testing"

	"github.com/gs1io/syntaxengine/epc"
	"github.com/gs1io/syntaxengine/gs1"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestDecodeSSCC(t *testing.T) {
	type test struct {
		name   string
		hex    string
		filter epc.FilterValue
		value  string
		uri    string
	}

	for i, tt := range []test{
		{
			name:   "sscc-96",
			hex:    "3114257BF4499602D2000000",
			filter: epc.FilterOther,
			value:  "106141412345678908",
			uri:    "urn:epc:id:sscc:0614141.1234567890",
		},
		{
			name:   "sscc-96 zero serial reference",
			hex:    "3114257BF400000000000000",
			filter: epc.FilterOther,
			value:  "006141410000000005",
			uri:    "urn:epc:id:sscc:0614141.0000000000",
		},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			s, err := epc.DecodeSSCC(tt.hex)
			w.As(tt.hex).StopOnMismatch().ShouldSucceed(err)
			w.ShouldBeEqual(s.Filter(), tt.filter)
			w.ShouldBeEqual(s.Value(), tt.value)
			w.ShouldBeEqual(s.URI(), tt.uri)
			w.ShouldBeEqual(s.AIDataStr(), "(00)"+tt.value)

			// The decoded identifier must satisfy AI validation.
			enc := gs1.NewEncoder()
			w.StopOnMismatch().ShouldSucceed(enc.SetAIDataStr(s.AIDataStr()))
			w.ShouldBeEqual(enc.DataStr(), "^00"+tt.value)
		})
	}
}

func TestDecodeSSCC_failures(t *testing.T) {
	type test struct {
		name string
		hex  string
		msg  string
	}

	for i, tt := range []test{
		{
			name: "wrong length",
			hex:  "3114257BF4499602D20000",
			msg:  "EPC must be 12 bytes, but is 11",
		},
		{
			name: "not an sscc header",
			hex:  "3014257BF4499602D2000000",
			msg:  "EPC header 0x30 is not an SSCC encoding",
		},
		{
			name: "reserved partition",
			hex:  "311C00000000000000000000",
			msg:  "SSCC partition value 7 is reserved",
		},
		{
			name: "serial reference overflows its digits",
			hex:  "3114257BF7FFFFFFFF000000",
			msg:  "SSCC serial reference 17179869183 needs more than 10 digits",
		},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			_, err := epc.DecodeSSCC(tt.hex)
			w.As(tt.hex).StopOnMismatch().ShouldFail(err)
			w.ShouldBeEqual(err.Error(), tt.msg)
		})
	}
}
