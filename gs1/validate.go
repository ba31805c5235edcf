/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"strings"
)

// Validation identifies one of the engine's inter-AI validations.
type Validation int

const (
	// ValidationMutexAIs rejects data pairing mutually exclusive AIs.
	ValidationMutexAIs Validation = iota

	// ValidationRequisiteAIs rejects data missing the AIs required by
	// some other AI that is present.
	ValidationRequisiteAIs

	// ValidationRepeatedAIs rejects repeated AIs whose values differ.
	ValidationRepeatedAIs

	// ValidationDigSigSerialKey rejects an AI (8030) digital signature
	// over a key AI that omits its serial component.
	ValidationDigSigSerialKey

	// ValidationUnknownAINotDLAttr rejects unknown AIs used as Digital
	// Link URI data attributes.
	ValidationUnknownAINotDLAttr

	numValidations
)

type validationEntry struct {
	locked  bool
	enabled bool
	fn      func(res *parseResult) error
}

func (e *Encoder) loadValidations() {
	e.validations = [numValidations]validationEntry{
		ValidationMutexAIs:           {locked: true, enabled: true, fn: validateMutexAIs},
		ValidationRequisiteAIs:       {locked: false, enabled: true, fn: validateRequisiteAIs},
		ValidationRepeatedAIs:        {locked: true, enabled: true, fn: validateRepeatedAIs},
		ValidationDigSigSerialKey:    {locked: true, enabled: true, fn: validateDigSigSerialKey},
		ValidationUnknownAINotDLAttr: {locked: false, enabled: true},
	}
}

// ValidationEnabled reports whether the given validation runs. Unknown
// validations report false.
func (e *Encoder) ValidationEnabled(v Validation) bool {
	if v < 0 || v >= numValidations {
		return false
	}
	return e.validations[v].enabled
}

// SetValidationEnabled enables or disables a validation. Locked validations
// cannot be amended.
func (e *Encoder) SetValidationEnabled(v Validation, enabled bool) error {
	e.err = nil
	if v < 0 || v >= numValidations {
		return e.fail(newErr(KindConfiguration, "Unknown validation"))
	}
	if e.validations[v].locked {
		return e.fail(newErr(KindConfiguration, "This validation cannot be amended"))
	}
	e.validations[v].enabled = enabled
	return nil
}

// ValidateAIAssociations reports whether requisite AI checking is enabled.
//
// Deprecated: use ValidationEnabled(ValidationRequisiteAIs).
func (e *Encoder) ValidateAIAssociations() bool {
	return e.validations[ValidationRequisiteAIs].enabled
}

// SetValidateAIAssociations enables or disables requisite AI checking.
//
// Deprecated: use SetValidationEnabled(ValidationRequisiteAIs, enabled).
func (e *Encoder) SetValidateAIAssociations(enabled bool) {
	e.err = nil
	e.validations[ValidationRequisiteAIs].enabled = enabled
}

// validateAIs runs each enabled validation in turn; the first failure wins.
func (e *Encoder) validateAIs(res *parseResult) error {
	res.ensureSorted()
	for i := range e.validations {
		v := &e.validations[i]
		if v.enabled && v.fn != nil {
			if err := v.fn(res); err != nil {
				return err
			}
		}
	}
	return nil
}

// existsInAIData searches the extracted elements for a match with the given
// AI template, e.g. "8006" or "35nn" where trailing "n" wildcards match any
// digit. ignoreAI suppresses matches of a self-referencing template against
// its own AI.
func existsInAIData(sorted []*aiValue, template, ignoreAI string) (*aiValue, bool) {
	prefixlen := 0
	for prefixlen < len(template) && template[prefixlen] >= '0' && template[prefixlen] <= '9' {
		prefixlen++
	}
	if prefixlen < 1 {
		return nil, false
	}
	prefix := template[:prefixlen]

	for _, v := range sorted {
		if len(v.ai) != len(template) || !strings.HasPrefix(v.ai, prefix) {
			continue
		}
		if ignoreAI != "" && strings.HasPrefix(ignoreAI, v.ai) {
			continue
		}
		return v, true
	}
	return nil, false
}

// validateMutexAIs processes the "ex" attributes of each present AI to
// ensure that mutually exclusive AIs do not appear together.
func validateMutexAIs(res *parseResult) error {
	for _, v := range res.sorted {
		for _, attr := range strings.Fields(v.entry.Attrs) {
			if !strings.HasPrefix(attr, "ex=") {
				continue
			}
			for _, template := range strings.Split(attr[3:], ",") {
				if m, found := existsInAIData(res.sorted, template, v.ai); found {
					return newErr(KindAssociationViolation,
						"It is invalid to pair AI (%s) with AI (%s)", v.ai, m.ai)
				}
			}
		}
	}
	return nil
}

// validateRequisiteAIs processes the "req" attributes of each present AI.
// Each comma-separated alternative is a "+"-joined group of AIs; any wholly
// present group satisfies the requirement.
func validateRequisiteAIs(res *parseResult) error {
	for _, v := range res.sorted {
		for _, attr := range strings.Fields(v.entry.Attrs) {
			if !strings.HasPrefix(attr, "req=") {
				continue
			}
			spec := attr[4:]
			satisfied := false
			for _, group := range strings.Split(spec, ",") {
				satisfied = true
				for _, template := range strings.Split(group, "+") {
					if _, found := existsInAIData(res.sorted, template, v.ai); !found {
						satisfied = false
					}
				}
				if satisfied {
					break
				}
			}
			if !satisfied {
				return newErr(KindAssociationViolation,
					"Required AIs for AI (%s) are not satisfied: %s", v.ai, spec)
			}
		}
	}
	return nil
}

// validateRepeatedAIs ensures that any repeated AIs carry the same value.
// Repeats occur when reads of multiple symbols on one label are
// concatenated.
func validateRepeatedAIs(res *parseResult) error {
	for i := 0; i+1 < len(res.sorted); i++ {
		a, b := res.sorted[i], res.sorted[i+1]
		if a.ai == b.ai && a.value != b.value {
			return newErr(KindAssociationViolation,
				"Multiple instances of AI (%s) have different values", a.ai)
		}
	}
	return nil
}

// validateDigSigSerialKey enforces that AIs (253), (255) and (8003) include
// their optional serial component when paired with an AI (8030) digital
// signature.
func validateDigSigSerialKey(res *parseResult) error {
	if _, found := existsInAIData(res.sorted, "8030", ""); !found {
		return nil
	}
	for _, serialAI := range []string{"253", "255", "8003"} {
		m, found := existsInAIData(res.sorted, serialAI, "")
		if found && len(m.value) == m.entry.MinLength() {
			return newErr(KindAssociationViolation,
				"Serial component must be present for AI (%s) when used with AI (8030)", m.ai)
		}
	}
	return nil
}
