/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package aitable

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gs1io/syntaxengine/lint"
)

const (
	minAILen    = 2
	maxAILen    = 4
	maxEntryLen = 150
	maxParts    = 5
	maxLinters  = 3
	maxAttrsLen = 64
)

const (
	flagChars      = "*?!\"$%&'()+,-./:;<=>@[\\]^_`{|}~"
	attrNameChars  = "abcdefghijklmnopqrstuvwxyz"
	attrValueChars = "abcdefghijklmnopqrstuvwxyz0123456789-+_,|"
	titleChars     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz01234567890#()-+,./²³ "
)

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func onlyChars(s, set string) bool {
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

// tokenizer splits a dictionary line on spaces and tabs, with the remainder
// retrievable verbatim for the title field.
type tokenizer struct {
	s   string
	pos int
}

func (t *tokenizer) skip() {
	for t.pos < len(t.s) && (t.s[t.pos] == ' ' || t.s[t.pos] == '\t') {
		t.pos++
	}
}

func (t *tokenizer) next() (string, bool) {
	t.skip()
	if t.pos >= len(t.s) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.s) && t.s[t.pos] != ' ' && t.s[t.pos] != '\t' {
		t.pos++
	}
	return t.s[start:t.pos], true
}

func (t *tokenizer) rest() (string, bool) {
	t.skip()
	if t.pos >= len(t.s) {
		return "", false
	}
	return t.s[t.pos:], true
}

// parseComponent reads one component format specification with its trailing
// comma-separated linter names, e.g. "N13,csum,gcppos1" or "[X..17]".
func parseComponent(token string) (Component, error) {
	var comp Component

	parts := strings.Split(token, ",")
	spec := parts[0]

	if strings.HasPrefix(spec, "[") {
		if !strings.HasSuffix(spec, "]") {
			return comp, errors.Errorf(
				"Format specification for optional component is missing ']': %s", spec)
		}
		comp.Opt = true
		spec = spec[1 : len(spec)-1]
	}

	if len(spec) == 0 {
		return comp, errors.Errorf("Format specification for component is too short: %s", parts[0])
	}
	switch spec[0] {
	case 'N':
		comp.Cset = CsetN
	case 'X':
		comp.Cset = CsetX
	case 'Y':
		comp.Cset = CsetY
	case 'Z':
		comp.Cset = CsetZ
	case '_':
		comp.Cset = CsetNone
	default:
		return comp, errors.Errorf("Unknown character set %c", spec[0])
	}
	spec = spec[1:]
	if len(spec) == 0 {
		return comp, errors.Errorf("Format specification for component is too short: %s", parts[0])
	}

	parseLen := func(s string) (int, error) {
		if len(s) > 2 {
			return 0, errors.Errorf("AI length too long: %s", parts[0])
		}
		if !allDigits(s) {
			return 0, errors.Errorf("AI length is not a number: %s", parts[0])
		}
		n := int(s[0] - '0')
		if len(s) == 2 {
			n = n*10 + int(s[1]-'0')
		}
		return n, nil
	}

	switch {
	case spec[0] >= '1' && spec[0] <= '9' || comp.Cset == CsetNone && spec[0] == '0':
		// Fixed length, e.g. N13.
		n, err := parseLen(spec)
		if err != nil {
			return comp, err
		}
		comp.Min, comp.Max = n, n
	case len(spec) >= 3 && spec[0] == '.' && spec[1] == '.' &&
		spec[2] >= '1' && spec[2] <= '9':
		// Variable length, e.g. X..17.
		n, err := parseLen(spec[2:])
		if err != nil {
			return comp, err
		}
		comp.Min, comp.Max = 1, n
	default:
		return comp, errors.Errorf("Unrecognised format specification for component: %s", parts[0])
	}

	if len(parts)-1 > maxLinters {
		return comp, errors.Errorf("Number of linters for component exceeds implementation: %s", token)
	}
	for _, name := range parts[1:] {
		l, ok := lint.ByName(name)
		if !ok {
			return comp, errors.Errorf("Unknown linter '%s'", name)
		}
		comp.Linters = append(comp.Linters, l)
	}

	return comp, nil
}

// parseLine parses one Syntax Dictionary line into its expanded entries.
// Blank and comment-only lines yield no entries. An AI range such as "91-99"
// expands to one entry per code.
func parseLine(line string) ([]Entry, error) {
	if len(line) > maxEntryLen {
		return nil, errors.New("Entry too long")
	}

	tok := &tokenizer{s: line}
	token, ok := tok.next()
	if !ok || strings.HasPrefix(token, "#") {
		return nil, nil
	}

	var entry Entry
	var rangeEnd byte

	// Leading token is an AI or an AI range such as "91-99".
	if dash := strings.IndexByte(token, '-'); dash != -1 {
		if len(token) < minAILen*2+1 || len(token) > maxAILen*2+1 {
			return nil, errors.New("AI range has wrong width")
		}
		if len(token)%2 != 1 || dash != len(token)/2 {
			return nil, errors.New("AIs in range must have equal width")
		}
		lo, hi := token[:dash], token[dash+1:]
		if !allDigits(lo) || !allDigits(hi) {
			return nil, errors.New("AIs must be numeric")
		}
		if lo[:len(lo)-1] != hi[:len(hi)-1] {
			return nil, errors.New("AI range parts may only differ in their last digit")
		}
		if lo[len(lo)-1] >= hi[len(hi)-1] {
			return nil, errors.New("AI range end must exceed range start")
		}
		entry.AI = lo
		rangeEnd = hi[len(hi)-1]
	} else {
		if len(token) < minAILen || len(token) > maxAILen {
			return nil, errors.New("AI has wrong width")
		}
		if !allDigits(token) {
			return nil, errors.New("AI must be numeric")
		}
		entry.AI = token
		rangeEnd = token[len(token)-1]
	}

	token, ok = tok.next()
	if !ok {
		return nil, errors.New("Truncated after AI")
	}

	// Tokens of exclusively flag characters, possibly several.
	for onlyChars(token, flagChars) {
		if strings.ContainsRune(token, '*') {
			entry.NoFNC1 = true
		}
		if strings.ContainsRune(token, '?') {
			entry.DLDataAttr = true
		}
		// '!' marks a designated GS1 identification key; no action.
		token, ok = tok.next()
		if !ok {
			return nil, errors.New("Truncated after flags")
		}
	}

	// Components.
	for ok && (token[0] >= 'A' && token[0] <= 'Z' || token[0] == '[') {
		if len(entry.Components) >= maxParts {
			return nil, errors.New("Number of AI components exceeds implementation")
		}
		comp, err := parseComponent(token)
		if err != nil {
			return nil, err
		}
		entry.Components = append(entry.Components, comp)
		token, ok = tok.next()
	}
	if len(entry.Components) == 0 {
		return nil, errors.New("AI is missing components")
	}
	for i, c := range entry.Components {
		if i < len(entry.Components)-1 && c.Min != c.Max {
			return nil, errors.New("Only the final component may have variable length")
		}
		if i > 0 && !c.Opt && entry.Components[i-1].Opt {
			return nil, errors.New("A mandatory component cannot follow optional components")
		}
	}

	// Attributes until the title delimiter.
	var attrs []string
	attrsLen := 0
	for ok && token != "#" {
		if eq := strings.IndexByte(token, '='); eq != -1 {
			name, value := token[:eq], token[eq+1:]
			if name == "" {
				return nil, errors.New("Attribute name required on LHS of assignment")
			}
			if !onlyChars(name, attrNameChars) {
				return nil, errors.New("Attribute name contains illegal characters")
			}
			if !onlyChars(value, attrValueChars) {
				return nil, errors.New("Attribute value contain illegal characters")
			}
			if value == "" {
				return nil, errors.New("Attribute value required on RHS of assignment")
			}
		} else if !onlyChars(token, attrNameChars) {
			return nil, errors.New("Singleton attribute name contains illegal characters")
		}
		attrsLen += len(token) + 1
		if attrsLen > maxAttrsLen+1 {
			return nil, errors.New("Attributes too long")
		}
		attrs = append(attrs, token)
		token, ok = tok.next()
	}
	entry.Attrs = strings.Join(attrs, " ")

	// Remainder of the line is the title.
	if ok {
		if title, any := tok.rest(); any {
			if !onlyChars(title, titleChars) {
				return nil, errors.New("Title contain illegal characters")
			}
			entry.Title = title
		}
	}

	// Expand an AI range by filling down to the end code.
	entries := []Entry{entry}
	for entry.AI[len(entry.AI)-1] != rangeEnd {
		next := entry
		ai := []byte(entry.AI)
		ai[len(ai)-1]++
		next.AI = string(ai)
		entries = append(entries, next)
		entry = next
	}

	return entries, nil
}
