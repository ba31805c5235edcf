/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestValidateAIs(t *testing.T) {
	type test struct {
		name string
		in   string
		msg  string
	}
	pass := func(n, in string) test { return test{name: n, in: in} }
	fail := func(n, in, msg string) test { return test{name: n, in: in, msg: msg} }

	for i, tt := range []test{

		// Mutually exclusive AIs.
		fail("gtin with content", "(01)12345678901231(02)12345678901231",
			"It is invalid to pair AI (01) with AI (02)"),
		fail("gtin with count", "(01)12345678901231(37)123",
			"It is invalid to pair AI (01) with AI (37)"),
		fail("gtin with gcn", "(01)12345678901231(255)1234567890128",
			"It is invalid to pair AI (01) with AI (255)"),
		fail("serial with tpx", "(21)ABC123(235)XYZ",
			"It is invalid to pair AI (21) with AI (235)"),
		pass("gtin with serial", "(01)12345678901231(21)ABC123"),

		// Requisite AIs.
		fail("content alone", "(02)12345678901231",
			"Required AIs for AI (02) are not satisfied: 37"),
		fail("content with count", "(02)12345678901231(37)123",
			"Required AIs for AI (02) are not satisfied: 00"),
		pass("content count sscc", "(02)12345678901231(37)123(00)123456789012345675"),
		fail("serial alone", "(21)ABC123",
			"Required AIs for AI (21) are not satisfied: 01,03,8006,8026"),
		fail("attribution without serial", "(01)12345678901231(250)ABC123",
			"Required AIs for AI (250) are not satisfied: 21"),
		pass("attribution with serial", "(01)12345678901231(250)ABC123(21)XYZ999"),

		// Requisite alternatives with "+" groups for AI (8030).
		fail("digsig alone", "(8030)ABC123",
			"Required AIs for AI (8030) are not satisfied: 00,01+21,253,255,8003,8004,8006+21,8010+8011,8017,8018"),
		pass("digsig with sscc", "(8030)ABC123(00)123456789012345675"),
		fail("digsig with gtin only", "(8030)ABC123(01)12345678901231",
			"Required AIs for AI (8030) are not satisfied: 00,01+21,253,255,8003,8004,8006+21,8010+8011,8017,8018"),
		pass("digsig with gtin and serial", "(8030)ABC123(01)12345678901231(21)XYZ"),
		fail("digsig with cpid only", "(8030)ABC123(8010)1234567890",
			"Required AIs for AI (8030) are not satisfied: 00,01+21,253,255,8003,8004,8006+21,8010+8011,8017,8018"),
		pass("digsig with cpid and serial", "(8030)ABC123(8010)1234567890(8011)123456789012"),

		// Serialisation requirement with AI (8030).
		fail("digsig gdti without serial", "(253)1234567890128(8030)ABC123",
			"Serial component must be present for AI (253) when used with AI (8030)"),
		pass("digsig gdti with serial", "(253)1234567890128X(8030)ABC123"),
		fail("digsig gcn without serial", "(255)1234567890128(8030)ABC123",
			"Serial component must be present for AI (255) when used with AI (8030)"),
		pass("digsig gcn with serial", "(255)12345678901280(8030)ABC123"),
		fail("digsig grai without serial", "(8003)01234567890128(8030)ABC123",
			"Serial component must be present for AI (8003) when used with AI (8030)"),
		pass("digsig grai with serial", "(8003)01234567890128X(8030)ABC123"),

		// Repeated AIs must agree.
		pass("repeat same value", "(99)ABC(99)ABC"),
		fail("repeat different value", "(99)ABC(99)ABD",
			"Multiple instances of AI (99) have different values"),
		pass("repeat gtin same value", "(01)12345678901231(01)12345678901231"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			enc := NewEncoder()
			err := enc.SetAIDataStr(tt.in)
			if tt.msg == "" {
				w.As(tt.in).ShouldSucceed(err)
				return
			}
			w.As(tt.in).StopOnMismatch().ShouldFail(err)
			w.ShouldBeEqual(err.Error(), tt.msg)
			w.ShouldBeEqual(ErrKindOf(err), KindAssociationViolation)
		})
	}
}

func TestSetValidationEnabled(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	w.ShouldBeTrue(enc.ValidationEnabled(ValidationRequisiteAIs))
	w.ShouldFail(enc.SetAIDataStr("(10)ABC123"))

	w.ShouldSucceed(enc.SetValidationEnabled(ValidationRequisiteAIs, false))
	w.ShouldBeFalse(enc.ValidationEnabled(ValidationRequisiteAIs))
	w.StopOnMismatch().ShouldSucceed(enc.SetAIDataStr("(10)ABC123"))
	w.ShouldBeEqual(enc.DataStr(), "^10ABC123")

	w.ShouldSucceed(enc.SetValidationEnabled(ValidationRequisiteAIs, true))
	w.ShouldFail(enc.SetAIDataStr("(10)ABC123"))
}

func TestSetValidationEnabled_locked(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	for _, v := range []Validation{
		ValidationMutexAIs,
		ValidationRepeatedAIs,
		ValidationDigSigSerialKey,
	} {
		err := enc.SetValidationEnabled(v, false)
		w.As(v).StopOnMismatch().ShouldFail(err)
		w.ShouldBeEqual(err.Error(), "This validation cannot be amended")
		w.ShouldBeEqual(ErrKindOf(err), KindConfiguration)
		w.ShouldBeTrue(enc.ValidationEnabled(v))
	}

	err := enc.SetValidationEnabled(Validation(99), false)
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(err.Error(), "Unknown validation")
	w.ShouldBeFalse(enc.ValidationEnabled(Validation(99)))
}

func TestValidateAIAssociations_deprecatedAlias(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	w.ShouldBeTrue(enc.ValidateAIAssociations())
	enc.SetValidateAIAssociations(false)
	w.ShouldBeFalse(enc.ValidateAIAssociations())
	w.ShouldBeFalse(enc.ValidationEnabled(ValidationRequisiteAIs))

	w.ShouldSucceed(enc.SetAIDataStr("(10)ABC123"))
}
