/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind classifies engine errors so that callers can branch on the class of
// failure without matching message text.
type ErrKind int

const (
	// KindNone is reported for errors that did not originate in this
	// package.
	KindNone ErrKind = iota

	// KindGrammarLoad covers failures reading or parsing a Syntax
	// Dictionary file.
	KindGrammarLoad

	// KindUnknownIdentifier covers AIs that cannot be resolved against
	// the AI table.
	KindUnknownIdentifier

	// KindLengthViolation covers AI values that are too short, too long
	// or of incorrect component length.
	KindLengthViolation

	// KindLinterViolation covers per-component linter failures. The
	// error carries Markup locating the offending span.
	KindLinterViolation

	// KindAssociationViolation covers inter-AI constraints: mutual
	// exclusion, requisites, repeats, serialisation requirements and
	// DL URI key-qualifier structure.
	KindAssociationViolation

	// KindSyntax covers malformed input: bad URIs, missing FNC1,
	// unparseable bracketed data, bad scan data and similar.
	KindSyntax

	// KindConfiguration covers bad session settings such as an unknown
	// symbology or an attempt to amend a locked validation.
	KindConfiguration

	// KindDataTooLong is a refusal of oversized input. Data is never
	// truncated.
	KindDataTooLong
)

// Error is the engine's error type. Markup is only populated for linter
// violations, in the form "(AI)prefix|bad|suffix" with the offending span
// delimited by '|'.
type Error struct {
	Kind   ErrKind
	Markup string
	msg    string
}

func (e *Error) Error() string { return e.msg }

// ErrKindOf unwraps err to this package's Error and returns its kind, or
// KindNone when the error did not originate here.
func ErrKindOf(err error) ErrKind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return KindNone
}

func newErr(kind ErrKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}
