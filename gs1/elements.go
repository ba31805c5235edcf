/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"strings"

	"github.com/gs1io/syntaxengine/aitable"
	"github.com/gs1io/syntaxengine/lint"
)

// parseBracketed converts one component of bracketed AI syntax to its
// unbracketed element string with "^" representing FNC1, appending the
// extracted elements to res. The returned wire form has been fully
// validated.
func (e *Encoder) parseBracketed(res *parseResult, aiData string) (string, error) {
	var wire strings.Builder
	fnc1req := true

	p := aiData
	for p != "" {
		if p[0] != '(' {
			return "", newErr(KindSyntax, "Failed to parse AI data")
		}
		close := strings.IndexByte(p, ')')
		if close < 0 {
			return "", newErr(KindSyntax, "Failed to parse AI data")
		}
		ai := p[1:close]
		entry := e.table.Lookup(ai, len(ai), e.permitUnknownAIs)
		if entry == nil {
			return "", newErr(KindUnknownIdentifier, "Unrecognised AI: %s", ai)
		}

		if fnc1req {
			wire.WriteByte('^')
		}
		wire.WriteString(ai)
		fnc1req = !entry.NoFNC1

		p = p[close+1:]
		if p == "" {
			return "", newErr(KindSyntax, "Failed to parse AI data")
		}

		// Value runs to the next AI bracket; "\(" embeds a literal
		// bracket in the value.
		var val strings.Builder
		for {
			open := strings.IndexByte(p, '(')
			if open < 0 {
				val.WriteString(p)
				p = ""
				break
			}
			if open > 0 && p[open-1] == '\\' {
				val.WriteString(p[:open-1])
				val.WriteByte('(')
				p = p[open+1:]
				continue
			}
			val.WriteString(p[:open])
			p = p[open:]
			break
		}

		value := val.String()
		if err := checkAIValLength(ai, entry, value); err != nil {
			return "", err
		}
		wire.WriteString(value)

		if err := res.appendAI(aiValue{
			kind:        kindAI,
			entry:       entry,
			ai:          ai,
			value:       value,
			dlPathOrder: dlPathOrderAttribute,
		}); err != nil {
			return "", err
		}
	}

	if wire.Len() > maxData {
		return "", newErr(KindDataTooLong, "Maximum data length is %d characters", maxData)
	}

	// Now validate the element string that we have written.
	if err := e.processElementString(res, wire.String(), false); err != nil {
		return "", err
	}
	return wire.String(), nil
}

// processElementString validates one component of an unbracketed element
// string ("^..." with "^" representing FNC1), optionally appending the
// extracted elements to res. AIs are resolved by their table-declared
// prefixes; fixed-length values are consumed exactly and variable-length
// values run to the next "^" or the end of the component.
func (e *Encoder) processElementString(res *parseResult, data string, extract bool) error {
	if data == "" || data[0] != '^' {
		return newErr(KindSyntax, "Missing FNC1 in first position")
	}
	p := data[1:]
	if p == "" {
		return newErr(KindSyntax, "The AI data is empty")
	}

	for p != "" {
		// Unknown AIs of unknown length cannot be tokenized from wire
		// data: the AI cannot be told apart from its value.
		entry := e.table.Lookup(p, 0, e.permitUnknownAIs)
		if entry == nil || (extract && entry.Unknown && entry.AI == "") {
			prefix := p
			if len(prefix) > 4 {
				prefix = prefix[:4]
			}
			return newErr(KindUnknownIdentifier, "No known AI is a prefix of: %s...", prefix)
		}

		ai := p[:len(entry.AI)]
		p = p[len(entry.AI):]

		end := strings.IndexByte(p, '^')
		if end < 0 {
			end = len(p)
		}

		consumed, err := validateAIVal(ai, entry, p[:end])
		if err != nil {
			return err
		}

		if extract {
			if err := res.appendAI(aiValue{
				kind:        kindAI,
				entry:       entry,
				ai:          ai,
				value:       p[:consumed],
				dlPathOrder: dlPathOrderAttribute,
			}); err != nil {
				return err
			}
		}

		p = p[consumed:]

		// After AIs requiring FNC1 we expect an FNC1 or the end.
		if !entry.NoFNC1 && p != "" && p[0] != '^' {
			return newErr(KindLengthViolation, "AI (%s) data is too long", ai)
		}

		// Skip FNC1, even after fixed-length AIs.
		if p != "" && p[0] == '^' {
			p = p[1:]
		}
	}

	return nil
}

// checkAIValLength performs the overall length and content checks applied
// before component-level linting: reporting a checksum failure is not
// helpful when the value is the wrong length altogether.
func checkAIValLength(ai string, entry *aitable.Entry, value string) error {
	if len(value) < entry.MinLength() {
		return newErr(KindLengthViolation, "AI (%s) value is too short", ai)
	}
	if len(value) > entry.MaxLength() {
		return newErr(KindLengthViolation, "AI (%s) value is too long", ai)
	}

	// Data "^" characters would conflate with FNC1 in the element string.
	if strings.IndexByte(value, '^') != -1 {
		return newErr(KindSyntax, "AI (%s) contains illegal ^ character", ai)
	}
	return nil
}

// validateAIVal validates a value against the entry's components, returning
// how much of it the components consumed. A linter failure produces an error
// with Markup locating the offending span within the value.
func validateAIVal(ai string, entry *aitable.Entry, value string) (int, error) {
	if value == "" {
		return 0, newErr(KindSyntax, "AI (%s) data is empty", ai)
	}

	pos := 0
	for ci := range entry.Components {
		part := &entry.Components[ci]

		complen := len(value) - pos // Until FNC1 or end...
		if part.Max < complen {
			complen = part.Max // ... reduced to the component maximum
		}

		if part.Opt && complen == 0 {
			continue
		}
		if complen < part.Min {
			return 0, newErr(KindLengthViolation, "AI (%s) data has incorrect length", ai)
		}

		if v := runLinters(part, value[pos:pos+complen]); v != nil {
			err := newErr(KindLinterViolation, "AI (%s): %s", ai, v.Code.String())
			err.Markup = lintMarkup(ai, value, pos+v.Pos, v.Len, complen)
			return 0, err
		}

		pos += complen
	}

	return pos, nil
}

// runLinters runs the component's character set linter followed by each of
// its named linters, reporting the first violation.
func runLinters(part *aitable.Component, comp string) *lint.Violation {
	if fn := part.Cset.Linter(); fn != nil {
		if v := fn(comp); v != nil {
			return v
		}
	}
	for _, fn := range part.Linters {
		if v := fn(comp); v != nil {
			return v
		}
	}
	return nil
}

// lintMarkup builds "(AI)prefix|bad|suffix" for a linter violation at the
// given absolute position within the value.
func lintMarkup(ai, value string, errpos, errlen, complen int) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(ai)
	b.WriteByte(')')
	b.WriteString(value[:errpos])
	b.WriteByte('|')
	b.WriteString(value[errpos : errpos+errlen])
	b.WriteByte('|')
	if after := complen - errpos - errlen; after > 0 {
		b.WriteString(value[errpos+errlen : errpos+errlen+after])
	}
	return b.String()
}
