/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestSetAIDataStr_roundTrip(t *testing.T) {
	type test struct {
		name    string
		in      string
		dataStr string
	}

	for i, tt := range []test{
		{"sscc", "(00)006141411234567890", "^00006141411234567890"},
		{"gtin", "(01)12312312312333", "^0112312312312333"},
		{"fixed then variable", "(01)12312312312333(10)ABC123", "^011231231231233310ABC123"},
		{"variable then fixed", "(99)TESTING(01)12312312312333", "^99TESTING^0112312312312333"},
		{"two variable", "(99)ABC(98)XYZ", "^99ABC^98XYZ"},
		{"escaped bracket in value", `(400)ABC\(123`, "^400ABC(123"},
		{"composite", "(01)12312312312333(10)ABC123|(99)COMPOSITE",
			"^011231231231233310ABC123|^99COMPOSITE"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			enc := NewEncoder()
			w.As(tt.in).StopOnMismatch().ShouldSucceed(enc.SetAIDataStr(tt.in))
			w.ShouldBeTrue(enc.Err() == nil)
			w.ShouldBeEqual(enc.DataStr(), tt.dataStr)
			w.ShouldBeEqual(enc.AIDataStr(), tt.in)
		})
	}
}

func TestSetAIDataStr_failures(t *testing.T) {
	type test struct {
		name string
		in   string
		msg  string
		kind ErrKind
	}

	for i, tt := range []test{
		{"unrecognised AI", "(1)12345678901231", "Unrecognised AI: 1", KindUnknownIdentifier},
		{"unknown AI not permitted", "(89)ABC123", "Unrecognised AI: 89", KindUnknownIdentifier},
		{"no opening bracket", "01)12312312312333", "Failed to parse AI data", KindSyntax},
		{"no closing bracket", "(0112312312312333", "Failed to parse AI data", KindSyntax},
		{"nothing after AI", "(01)", "Failed to parse AI data", KindSyntax},
		{"value too short", "(01)123", "AI (01) value is too short", KindLengthViolation},
		{"value too long", "(10)ABCDEFGHIJKLMNOPQRSTU", "AI (10) value is too long", KindLengthViolation},
		{"illegal caret", "(10)ABC^123", "AI (10) contains illegal ^ character", KindSyntax},
		{"bad check digit", "(01)12312312312334",
			"AI (01): The numeric check digit is incorrect.", KindLinterViolation},
		{"requisites not satisfied", "(10)ABC123",
			"Required AIs for AI (10) are not satisfied: 01,02,03,8006,8026", KindAssociationViolation},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			enc := NewEncoder()
			err := enc.SetAIDataStr(tt.in)
			w.As(tt.in).StopOnMismatch().ShouldFail(err)
			w.ShouldBeEqual(err.Error(), tt.msg)
			w.ShouldBeEqual(ErrKindOf(err), tt.kind)
			w.ShouldBeEqual(enc.Err(), err)
		})
	}
}

func TestSetDataStr(t *testing.T) {
	type test struct {
		name   string
		in     string
		aiData string
	}

	for i, tt := range []test{
		{"element string", "^011231231231233310ABC123", "(01)12312312312333(10)ABC123"},
		{"variable AIs", "^99ABC^98XYZ", "(99)ABC(98)XYZ"},
		{"plain data", "TESTING", ""},
		{"empty", "", ""},
		{"composite", "^0112312312312333|^99COMPOSITE", "(01)12312312312333|(99)COMPOSITE"},
		{"plain primary with composite", "2112345678900|^99COMPOSITE", "|(99)COMPOSITE"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			enc := NewEncoder()
			w.As(tt.in).StopOnMismatch().ShouldSucceed(enc.SetDataStr(tt.in))
			w.ShouldBeEqual(enc.DataStr(), tt.in)
			w.ShouldBeEqual(enc.AIDataStr(), tt.aiData)
		})
	}
}

func TestSetDataStr_failures(t *testing.T) {
	type test struct {
		name string
		in   string
		msg  string
		kind ErrKind
	}

	for i, tt := range []test{
		{"lone fnc1", "^", "The AI data is empty", KindSyntax},
		{"empty AI value", "^01", "AI (01) data is empty", KindSyntax},
		{"incorrect component length", "^01123", "AI (01) data has incorrect length", KindLengthViolation},
		{"no AI prefix", "^891234", "No known AI is a prefix of: 8912...", KindUnknownIdentifier},
		{"variable value too long", "^10ABCDEFGHIJKLMNOPQRSTU", "AI (10) data is too long", KindLengthViolation},
		{"missing fnc1 in composite", "^0112312312312333|99COMPOSITE",
			"Missing FNC1 in first position", KindSyntax},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			enc := NewEncoder()
			err := enc.SetDataStr(tt.in)
			w.As(tt.in).StopOnMismatch().ShouldFail(err)
			w.ShouldBeEqual(err.Error(), tt.msg)
			w.ShouldBeEqual(ErrKindOf(err), tt.kind)
		})
	}
}

func TestSetDataStr_oversized(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	err := enc.SetDataStr(strings.Repeat("A", maxData+1))
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(err.Error(), "Maximum data length is 8191 characters")
	w.ShouldBeEqual(ErrKindOf(err), KindDataTooLong)

	// Exactly at the limit is accepted as plain data.
	w.ShouldSucceed(enc.SetDataStr(strings.Repeat("A", maxData)))
}

func TestErrMarkup(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	err := enc.SetAIDataStr("(01)12312312312334")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(ErrKindOf(err), KindLinterViolation)
	w.ShouldBeEqual(enc.ErrMarkup(), "(01)1231231231233|4|")

	// A successful operation clears the markup.
	w.ShouldSucceed(enc.SetAIDataStr("(01)12312312312333"))
	w.ShouldBeEqual(enc.ErrMarkup(), "")
}

func TestHRI(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	w.StopOnMismatch().ShouldSucceed(
		enc.SetAIDataStr("(01)12312312312333(10)ABC123|(99)COMPOSITE"))
	w.ShouldBeEqual(enc.HRI(), []string{
		"(01) 12312312312333",
		"(10) ABC123",
		"--",
		"(99) COMPOSITE",
	})

	enc.SetIncludeDataTitlesInHRI(true)
	w.ShouldBeEqual(enc.HRI(), []string{
		"GTIN (01) 12312312312333",
		"BATCH/LOT (10) ABC123",
		"--",
		"INTERNAL (99) COMPOSITE",
	})

	// Plain data carries no HRI.
	w.StopOnMismatch().ShouldSucceed(enc.SetDataStr("TESTING"))
	w.ShouldHaveLength(enc.HRI(), 0)
}

func TestPermitUnknownAIs_bracketed(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()
	enc.SetPermitUnknownAIs(true)

	w.StopOnMismatch().ShouldSucceed(enc.SetAIDataStr("(89)ABC123"))
	w.ShouldBeEqual(enc.DataStr(), "^89ABC123")
	w.ShouldBeEqual(enc.AIDataStr(), "(89)ABC123")

	// Unknown AIs of unknown length cannot be tokenized from an element
	// string, even when they are permitted.
	err := enc.SetDataStr("^89ABC123")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(ErrKindOf(err), KindUnknownIdentifier)
}
