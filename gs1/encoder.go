/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1 implements a session-based codec for GS1 Application
// Identifier data. One Encoder holds a single message at a time, accepted in
// bracketed AI syntax, unbracketed element-string syntax, GS1 Digital Link
// URI form or barcode scan data, and can render the held message back out in
// any of those representations together with its human readable
// interpretation.
package gs1

import (
	"sort"
	"strings"

	"github.com/gs1io/syntaxengine/aitable"
)

// Version identifies the engine release.
const Version = "1.0.0"

const (
	maxData = 8191
	maxAIs  = 64
)

// aiValue kinds. Marker elements reproduce structure that is not itself AI
// data: the separator between the linear and composite components of a
// message, and Digital Link query parameters carried through verbatim.
type aiValueKind int

const (
	kindAI aiValueKind = iota
	kindCCSep
	kindIgnoredQuery
)

// dlPathOrderAttribute marks an element that does not occupy a Digital Link
// URI path position.
const dlPathOrderAttribute = -1

type aiValue struct {
	kind        aiValueKind
	entry       *aitable.Entry
	ai          string
	value       string
	dlPathOrder int
}

// parseResult is the scratch state a setter builds into. It is committed to
// the Encoder only when parsing and validation fully succeed, so a failed
// setter leaves the previously held message intact.
type parseResult struct {
	dataStr string
	sym     Symbology
	aiData  []aiValue
	sorted  []*aiValue
}

func (res *parseResult) appendAI(v aiValue) error {
	if len(res.aiData) >= maxAIs {
		return newErr(KindDataTooLong, "Too many AIs")
	}
	res.aiData = append(res.aiData, v)
	return nil
}

// ensureSorted builds the lexically sorted view of the AI elements used by
// the association validations and template searches.
func (res *parseResult) ensureSorted() {
	if res.sorted != nil {
		return
	}
	res.sorted = sortAIs(res.aiData)
}

func sortAIs(aiData []aiValue) []*aiValue {
	sorted := make([]*aiValue, 0, len(aiData))
	for i := range aiData {
		if aiData[i].kind == kindAI {
			sorted = append(sorted, &aiData[i])
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ai < sorted[j].ai
	})
	return sorted
}

// Encoder is a GS1 message session. It is not safe for concurrent use.
type Encoder struct {
	table *aitable.Table

	sym                              Symbology
	addCheckDigit                    bool
	permitUnknownAIs                 bool
	permitZeroSuppressedGTINinDLURIs bool
	permitConvenienceAlphas          bool
	includeDataTitlesInHRI           bool

	validations [numValidations]validationEntry

	dataStr string
	aiData  []aiValue
	sorted  []*aiValue

	err error
}

// NewEncoder returns a session backed by the embedded Syntax Dictionary.
func NewEncoder() *Encoder {
	return NewEncoderWithTable(aitable.New())
}

// NewEncoderWithTable returns a session backed by the given AI table.
func NewEncoderWithTable(table *aitable.Table) *Encoder {
	e := &Encoder{table: table, sym: SymNone}
	e.loadValidations()
	return e
}

// NewEncoderFromGrammarFile returns a session backed by the Syntax
// Dictionary at the given path.
func NewEncoderFromGrammarFile(path string) (*Encoder, error) {
	table, err := aitable.Load(path)
	if err != nil {
		return nil, &Error{Kind: KindGrammarLoad, msg: err.Error()}
	}
	return NewEncoderWithTable(table), nil
}

// Table returns the AI table backing the session.
func (e *Encoder) Table() *aitable.Table { return e.table }

// Err returns the error from the most recent operation, or nil when it
// succeeded.
func (e *Encoder) Err() error { return e.err }

// ErrMarkup returns the linter error markup from the most recent operation:
// "(AI)prefix|bad|suffix" with the offending span delimited by '|'. Empty
// when the last operation did not fail a linter.
func (e *Encoder) ErrMarkup() string {
	if err, ok := e.err.(*Error); ok {
		return err.Markup
	}
	return ""
}

func (e *Encoder) fail(err error) error {
	e.err = err
	return err
}

func (e *Encoder) commit(res *parseResult) {
	e.dataStr = res.dataStr
	e.aiData = res.aiData
	e.sorted = res.sorted
	e.err = nil
}

func (e *Encoder) ensureSorted() []*aiValue {
	if e.sorted == nil {
		e.sorted = sortAIs(e.aiData)
	}
	return e.sorted
}

// Sym returns the symbology the held message is associated with.
func (e *Encoder) Sym() Symbology { return e.sym }

// SetSym associates the held message with a symbology, which governs scan
// data generation.
func (e *Encoder) SetSym(sym Symbology) error {
	e.err = nil
	if sym < SymNone || sym >= numSymbologies {
		return e.fail(newErr(KindConfiguration, "Unknown symbology"))
	}
	e.sym = sym
	return nil
}

// AddCheckDigit reports whether primary data check digits are generated
// rather than validated.
func (e *Encoder) AddCheckDigit() bool { return e.addCheckDigit }

// SetAddCheckDigit selects whether EAN/UPC and DataBar primary data is
// accepted without its check digit, which is then computed during scan data
// generation.
func (e *Encoder) SetAddCheckDigit(v bool) {
	e.err = nil
	e.addCheckDigit = v
}

// PermitUnknownAIs reports whether AIs absent from the table are accepted.
func (e *Encoder) PermitUnknownAIs() bool { return e.permitUnknownAIs }

// SetPermitUnknownAIs selects whether AIs absent from the table are accepted
// where they can be tokenized. Unknown AIs never weaken the validation of
// known AIs.
func (e *Encoder) SetPermitUnknownAIs(v bool) {
	e.err = nil
	e.permitUnknownAIs = v
}

// PermitZeroSuppressedGTINinDLURIs reports whether shortened GTINs are
// accepted in Digital Link URI path info.
func (e *Encoder) PermitZeroSuppressedGTINinDLURIs() bool {
	return e.permitZeroSuppressedGTINinDLURIs
}

// SetPermitZeroSuppressedGTINinDLURIs selects whether GTIN-8, GTIN-12 and
// GTIN-13 values of AI (01) in Digital Link URI path info are zero-padded to
// GTIN-14 rather than rejected.
func (e *Encoder) SetPermitZeroSuppressedGTINinDLURIs(v bool) {
	e.err = nil
	e.permitZeroSuppressedGTINinDLURIs = v
}

// PermitConvenienceAlphas reports whether deprecated alphabetic shortcodes
// such as "/gtin/" are accepted in Digital Link URI path info.
func (e *Encoder) PermitConvenienceAlphas() bool { return e.permitConvenienceAlphas }

// SetPermitConvenienceAlphas selects whether deprecated alphabetic
// shortcodes are accepted in Digital Link URI path info.
func (e *Encoder) SetPermitConvenienceAlphas(v bool) {
	e.err = nil
	e.permitConvenienceAlphas = v
}

// IncludeDataTitlesInHRI reports whether HRI lines are prefixed with the AI
// data titles.
func (e *Encoder) IncludeDataTitlesInHRI() bool { return e.includeDataTitlesInHRI }

// SetIncludeDataTitlesInHRI selects whether HRI lines are prefixed with the
// AI data titles.
func (e *Encoder) SetIncludeDataTitlesInHRI(v bool) {
	e.err = nil
	e.includeDataTitlesInHRI = v
}

// DataStr returns the held message in its raw form: an unbracketed element
// string with "^" representing FNC1, a Digital Link URI, or plain data.
func (e *Encoder) DataStr() string { return e.dataStr }

// SetDataStr accepts a message in raw form. An input beginning "^" is
// processed as an element string, an http/https input as a Digital Link URI,
// and anything else is held as plain data. A "|" splits the linear and
// composite components of element string data. On failure the previously
// held message is retained.
func (e *Encoder) SetDataStr(data string) error {
	e.err = nil
	if len(data) > maxData {
		return e.fail(newErr(KindDataTooLong, "Maximum data length is %d characters", maxData))
	}

	res := &parseResult{dataStr: data, sym: e.sym}
	if isDLURIScheme(data) {
		if err := e.parseDLURI(res, data); err != nil {
			return e.fail(err)
		}
	} else if cc := strings.IndexByte(data, '|'); cc != -1 {
		linear, composite := data[:cc], data[cc+1:]
		if strings.HasPrefix(linear, "^") {
			if err := e.processElementString(res, linear, true); err != nil {
				return e.fail(err)
			}
		}
		if err := res.appendAI(aiValue{kind: kindCCSep}); err != nil {
			return e.fail(err)
		}
		if err := e.processElementString(res, composite, true); err != nil {
			return e.fail(err)
		}
	} else if strings.HasPrefix(data, "^") {
		if err := e.processElementString(res, data, true); err != nil {
			return e.fail(err)
		}
	}

	if err := e.validateAIs(res); err != nil {
		return e.fail(err)
	}
	e.commit(res)
	return nil
}

// AIDataStr returns the held message in bracketed AI syntax, or the empty
// string when the message carries no AI data.
func (e *Encoder) AIDataStr() string {
	var b strings.Builder
	hasAIs := false
	for i := range e.aiData {
		v := &e.aiData[i]
		switch v.kind {
		case kindAI:
			hasAIs = true
			b.WriteByte('(')
			b.WriteString(v.ai)
			b.WriteByte(')')
			for j := 0; j < len(v.value); j++ {
				if v.value[j] == '(' {
					b.WriteByte('\\')
				}
				b.WriteByte(v.value[j])
			}
		case kindCCSep:
			hasAIs = true
			b.WriteByte('|')
		}
	}
	if !hasAIs {
		return ""
	}
	return b.String()
}

// SetAIDataStr accepts a message in bracketed AI syntax, for example
// "(01)12312312312333(10)ABC123". A "\(" escape embeds a literal bracket in
// a value; a "|" splits the linear and composite components. On failure the
// previously held message is retained.
func (e *Encoder) SetAIDataStr(aiData string) error {
	e.err = nil
	if len(aiData) > maxData {
		return e.fail(newErr(KindDataTooLong, "Maximum data length is %d characters", maxData))
	}

	res := &parseResult{sym: e.sym}
	if cc := strings.IndexByte(aiData, '|'); cc != -1 {
		linear, err := e.parseBracketed(res, aiData[:cc])
		if err != nil {
			return e.fail(err)
		}
		if err := res.appendAI(aiValue{kind: kindCCSep}); err != nil {
			return e.fail(err)
		}
		composite, err := e.parseBracketed(res, aiData[cc+1:])
		if err != nil {
			return e.fail(err)
		}
		res.dataStr = linear + "|" + composite
	} else {
		wire, err := e.parseBracketed(res, aiData)
		if err != nil {
			return e.fail(err)
		}
		res.dataStr = wire
	}

	if err := e.validateAIs(res); err != nil {
		return e.fail(err)
	}
	e.commit(res)
	return nil
}

// HRI returns the human readable interpretation of the held message, one
// element per line as "(AI) VALUE", optionally prefixed with the AI data
// title. A "--" line separates the linear and composite components.
func (e *Encoder) HRI() []string {
	var out []string
	for i := range e.aiData {
		v := &e.aiData[i]
		switch v.kind {
		case kindAI:
			var b strings.Builder
			if e.includeDataTitlesInHRI && v.entry.Title != "" {
				b.WriteString(v.entry.Title)
				b.WriteByte(' ')
			}
			b.WriteByte('(')
			b.WriteString(v.ai)
			b.WriteString(") ")
			b.WriteString(v.value)
			out = append(out, b.String())
		case kindCCSep:
			out = append(out, "--")
		}
	}
	return out
}

// DLIgnoredQueryParams returns the Digital Link URI query parameters that
// were carried through without being treated as AI data: parameters with
// non-numeric keys and parameters without a value, verbatim and undecoded.
func (e *Encoder) DLIgnoredQueryParams() []string {
	var out []string
	for i := range e.aiData {
		if e.aiData[i].kind == kindIgnoredQuery {
			out = append(out, e.aiData[i].value)
		}
	}
	return out
}
