/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package aitable models the table of GS1 Application Identifiers that
// drives parsing and validation of AI element strings. The table is built
// from a Syntax Dictionary, either the embedded copy or a file supplied by
// the caller, and is immutable once constructed.
package aitable

import (
	"strings"

	"github.com/gs1io/syntaxengine/lint"
)

// Cset identifies the character set of an AI component.
type Cset int

const (
	CsetNone Cset = iota // filler
	CsetN                // numeric
	CsetX                // CSET 82
	CsetY                // CSET 39
	CsetZ                // URI-safe base64
)

// Linter returns the character set membership linter applied to every
// component of this Cset before its named linters run.
func (c Cset) Linter() lint.Linter {
	switch c {
	case CsetN:
		return lint.CSetNumeric
	case CsetX:
		return lint.CSet82
	case CsetY:
		return lint.CSet39
	case CsetZ:
		return lint.CSet64
	}
	return nil
}

// Component is one data component of an AI value, e.g. the N13 of a GDTI.
type Component struct {
	Cset    Cset
	Min     int
	Max     int
	Opt     bool
	Linters []lint.Linter
}

// Entry describes a single Application Identifier.
type Entry struct {
	AI         string
	NoFNC1     bool // '*' flag: predefined fixed length, no FNC1 separator
	DLDataAttr bool // '?' flag: valid as a DL URI data attribute
	Unknown    bool // vivified pseudo entry, not from the dictionary
	Components []Component
	Attrs      string // space-separated "name" or "name=value" attributes
	Title      string
}

// MinLength is the smallest acceptable value length, summing the mandatory
// components.
func (e *Entry) MinLength() int {
	var l int
	for _, c := range e.Components {
		if !c.Opt {
			l += c.Min
		}
	}
	return l
}

// MaxLength is the largest acceptable value length, summing all components.
func (e *Entry) MaxLength() int {
	var l int
	for _, c := range e.Components {
		l += c.Max
	}
	return l
}

// Attr returns the value of a "name=value" attribute, or ok=false when the
// attribute is absent. A singleton attribute yields an empty value with
// ok=true.
func (e *Entry) Attr(name string) (value string, ok bool) {
	for _, attr := range strings.Fields(e.Attrs) {
		if attr == name {
			return "", true
		}
		if strings.HasPrefix(attr, name) && len(attr) > len(name) &&
			attr[len(name)] == '=' {
			return attr[len(name)+1:], true
		}
	}
	return "", false
}
