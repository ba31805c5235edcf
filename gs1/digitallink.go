/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"strings"

	"github.com/gs1io/syntaxengine/aitable"
)

// canonicalStem is used when a DL URI is rendered without an explicit stem.
const canonicalStem = "https://id.gs1.org"

// Characters permissible anywhere in a URI, including percent.
const uriCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~:/?#[]@!$&'()*+,;=%"

// Unreserved characters that never require escaping in URI components.
func isURIUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// URI characters that are nonetheless illegal in a domain.
func isBadDomainChar(c byte) bool {
	return strings.IndexByte("_~?#@!$&'()*+,;=%", c) != -1
}

func isDLURIScheme(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "HTTPS://") ||
		strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "HTTP://")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Deprecated convenience alphas accepted in DL URI path info behind the
// permitConvenienceAlphas option.
var alphaAIMap = map[string]string{
	"cpid":  "8010",
	"cpsn":  "8011",
	"cpv":   "22",
	"gcn":   "255",
	"gdti":  "253",
	"giai":  "8004",
	"ginc":  "401",
	"gln":   "414",
	"glnx":  "254",
	"gmn":   "8013",
	"grai":  "8003",
	"gsin":  "402",
	"gsrn":  "8018",
	"gsrnp": "8017",
	"gtin":  "01",
	"itip":  "8006",
	"lot":   "10",
	"party": "417",
	"refno": "8020",
	"ser":   "21",
	"srin":  "8019",
	"sscc":  "00",
}

// dlPathAIEntry resolves a DL URI path element name to an AI entry, via the
// convenience alpha map when that is permitted.
func (e *Encoder) dlPathAIEntry(ai string) (entry *aitable.Entry, fromAlpha bool) {
	if e.permitConvenienceAlphas && len(ai) >= 3 && len(ai) <= 5 &&
		!(ai[0] >= '0' && ai[0] <= '9') {
		if code, ok := alphaAIMap[ai]; ok {
			if entry := e.table.Lookup(code, len(code), false); entry != nil {
				return entry, true
			}
		}
	}
	return e.table.Lookup(ai, len(ai), e.permitUnknownAIs), false
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// uriUnescape reverses percent encoding. An invalid hex pair leaves the
// literal '%' in place; a decoded NUL is illegal and reported via ok=false.
// In query components '+' decodes to a space.
func uriUnescape(in string, queryComponent bool) (out string, ok bool) {
	var b strings.Builder
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c == '%' && i+2 < len(in):
			hi, okHi := hexNibble(in[i+1])
			lo, okLo := hexNibble(in[i+2])
			if !okHi || !okLo {
				b.WriteByte('%')
				continue
			}
			d := hi<<4 | lo
			if d == 0 {
				return "", false
			}
			b.WriteByte(d)
			i += 2
		case queryComponent && c == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// uriEscape percent-encodes everything but the unreserved characters, with
// uppercase hex. In query components a space becomes '+'.
func uriEscape(in string, queryComponent bool) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case isURIUnreserved(c):
			b.WriteByte(c)
		case c == ' ' && queryComponent:
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}

// gtinPad14 zero-pads a shortened GTIN to its 14-digit form.
func gtinPad14(val string) string {
	if len(val) == 13 || len(val) == 12 || len(val) == 8 {
		return strings.Repeat("0", 14-len(val)) + val
	}
	return val
}

// parseDLURI converts a GS1 Digital Link URI to extracted AI elements,
// validating the key to key-qualifier associations in the path info.
func (e *Encoder) parseDLURI(res *parseResult, dlData string) error {
	for i := 0; i < len(dlData); i++ {
		if strings.IndexByte(uriCharacters, dlData[i]) == -1 {
			return newErr(KindSyntax, "URI contains illegal characters")
		}
	}

	p := dlData
	switch {
	case strings.HasPrefix(p, "https://"), strings.HasPrefix(p, "HTTPS://"):
		p = p[8:]
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "HTTP://"):
		p = p[7:]
	default:
		return newErr(KindSyntax, "Scheme must be http:// or HTTP:// or https:// or HTTPS://")
	}

	// Scan the domain for the '/' delimiter while validating characters.
	// To prevent ossification the domain form itself is not validated.
	slash := -1
	for i := 0; i < len(p); i++ {
		if p[i] == '/' {
			slash = i
			break
		}
		if isBadDomainChar(p[i]) {
			return newErr(KindSyntax, "Domain contains illegal characters")
		}
	}
	if slash < 1 {
		return newErr(KindSyntax, "URI must contain a domain and path info")
	}

	pi := p[slash:]
	if h := strings.IndexByte(pi, '#'); h != -1 { // Fragment delimits end of data
		pi = pi[:h]
	}
	var query string
	if q := strings.IndexByte(pi, '?'); q != -1 {
		pi, query = pi[:q], pi[q+1:]
	}

	// Search backwards through the path info for an "/AI/value" pair
	// where the AI is a DL primary key. The stem is everything before it.
	dpStart := -1
	r := len(pi)
	for {
		sep := r - 1
		for sep > 0 && pi[sep] != '/' {
			sep--
		}
		if sep <= 0 {
			break
		}
		aiStart := sep - 1
		for aiStart >= 0 && pi[aiStart] != '/' {
			aiStart--
		}
		if aiStart < 0 {
			break
		}
		entry, _ := e.dlPathAIEntry(pi[aiStart+1 : sep])
		if entry == nil {
			break
		}
		if e.table.IsPrimaryKey(entry.AI) {
			dpStart = aiStart
			break
		}
		r = aiStart
	}
	if dpStart == -1 {
		return newErr(KindSyntax, "No GS1 DL keys found in path info")
	}

	// Process each AI value pair in the DL path info.
	var wire strings.Builder
	fnc1req := true
	pathCount := 0

	dp := pi[dpStart:]
	for dp != "" {
		dp = dp[1:] // skip '/'
		slash := strings.IndexByte(dp, '/')
		if slash < 0 {
			return newErr(KindSyntax, "Failed to parse DL data")
		}
		ai := dp[:slash]
		entry, fromAlpha := e.dlPathAIEntry(ai)
		if entry == nil {
			return newErr(KindSyntax, "Failed to parse DL data")
		}
		if fromAlpha {
			ai = entry.AI
		}

		rest := dp[slash+1:]
		end := strings.IndexByte(rest, '/')
		if end < 0 {
			end = len(rest)
		}
		raw := rest[:end]
		dp = rest[end:]

		if raw == "" {
			return newErr(KindSyntax, "AI (%s) value path element is empty", ai)
		}
		val, ok := uriUnescape(raw, false)
		if !ok {
			return newErr(KindSyntax,
				"Decoded AI (%s) from DL path info contains illegal null character", ai)
		}

		// Legacy zero-suppressed GTIN handling, when enabled.
		if e.permitZeroSuppressedGTINinDLURIs && entry.AI == "01" {
			val = gtinPad14(val)
		}

		if err := checkAIValLength(ai, entry, val); err != nil {
			return err
		}

		if fnc1req {
			wire.WriteByte('^')
		}
		wire.WriteString(ai)
		wire.WriteString(val)
		fnc1req = !entry.NoFNC1

		if err := res.appendAI(aiValue{
			kind:        kindAI,
			entry:       entry,
			ai:          ai,
			value:       val,
			dlPathOrder: pathCount,
		}); err != nil {
			return err
		}
		pathCount++
	}

	// Process the query parameters. Parameters with no value and
	// non-numeric keys are carried through verbatim; numeric keys must
	// resolve against the AI table.
	for q := query; q != ""; {
		for q != "" && q[0] == '&' {
			q = q[1:]
		}
		if q == "" {
			break
		}
		param := q
		if amp := strings.IndexByte(q, '&'); amp != -1 {
			param, q = q[:amp], q[amp:]
		} else {
			q = ""
		}

		eq := strings.IndexByte(param, '=')
		var entry *aitable.Entry
		if eq != -1 && allDigits(param[:eq]) {
			if entry = e.table.Lookup(param[:eq], eq, e.permitUnknownAIs); entry == nil {
				return newErr(KindUnknownIdentifier,
					"Unknown AI (%s) in query parameters", param[:eq])
			}
		}
		if entry == nil {
			if err := res.appendAI(aiValue{
				kind:        kindIgnoredQuery,
				value:       param,
				dlPathOrder: dlPathOrderAttribute,
			}); err != nil {
				return err
			}
			continue
		}

		ai := param[:eq]
		if eq+1 == len(param) {
			return newErr(KindSyntax, "AI (%s) value query element is empty", ai)
		}
		val, ok := uriUnescape(param[eq+1:], true)
		if !ok {
			return newErr(KindSyntax,
				"Decoded AI (%s) value from DL query params contains illegal null character", ai)
		}

		if entry.AI == "01" {
			val = gtinPad14(val)
		}

		if err := checkAIValLength(ai, entry, val); err != nil {
			return err
		}

		if fnc1req {
			wire.WriteByte('^')
		}
		wire.WriteString(ai)
		wire.WriteString(val)
		fnc1req = !entry.NoFNC1

		if err := res.appendAI(aiValue{
			kind:        kindAI,
			entry:       entry,
			ai:          ai,
			value:       val,
			dlPathOrder: dlPathOrderAttribute,
		}); err != nil {
			return err
		}
	}

	// The AI sequence in the path info must be a valid key-qualifier
	// association.
	pathSeq := make([]string, pathCount)
	for i := range res.aiData {
		v := &res.aiData[i]
		if v.kind == kindAI && v.dlPathOrder != dlPathOrderAttribute {
			pathSeq[v.dlPathOrder] = v.entry.AI
		}
	}
	if !e.table.IsKeyQualifierSequence(pathSeq) {
		return newErr(KindAssociationViolation,
			"The AIs in the path are not a valid key-qualifier sequence for the key")
	}

	res.ensureSorted()

	// Forbid duplicate AIs.
	for i := 0; i+1 < len(res.sorted); i++ {
		if res.sorted[i].ai == res.sorted[i+1].ai {
			return newErr(KindAssociationViolation, "AI (%s) is duplicated", res.sorted[i].ai)
		}
	}

	// Validate each attribute AI, including that it does not instead
	// belong at some position within the path info.
	for _, v := range res.sorted {
		if v.dlPathOrder != dlPathOrderAttribute {
			continue
		}
		if err := e.checkDLDataAttr(v); err != nil {
			return err
		}
		for j := 1; j <= pathCount; j++ {
			seq := make([]string, 0, pathCount+1)
			seq = append(seq, pathSeq[:j]...)
			seq = append(seq, v.entry.AI)
			seq = append(seq, pathSeq[j:]...)
			if e.table.IsKeyQualifierSequence(seq) {
				return newErr(KindAssociationViolation,
					"AI (%s) from query params should be in the path info", v.entry.AI)
			}
		}
	}

	// Validate the element string that we have written.
	return e.processElementString(res, wire.String(), false)
}

// checkDLDataAttr rejects AIs that are not permitted as DL URI data
// attributes. Unknown AIs are governed by the unknown-AI validation.
func (e *Encoder) checkDLDataAttr(v *aiValue) error {
	if (!v.entry.DLDataAttr && !v.entry.Unknown) ||
		(v.entry.Unknown && e.validations[ValidationUnknownAINotDLAttr].enabled) {
		return newErr(KindAssociationViolation,
			"AI (%s) is not a valid DL URI data attribute", v.ai)
	}
	return nil
}

// DLURI renders the held message as a GS1 Digital Link URI under the given
// stem, or under the canonical stem when it is empty. When the message
// originated from a DL URI its path layout is reused; otherwise the longest
// key-qualifier sequence satisfied by the data forms the path and the
// remaining AIs become query parameters, fixed-length AIs first.
func (e *Encoder) DLURI(stem string) (string, error) {
	e.err = nil
	uri, err := e.generateDLURI(stem)
	if err != nil {
		return "", e.fail(err)
	}
	return uri, nil
}

func (e *Encoder) generateDLURI(stem string) (string, error) {
	var pathAIs []*aiValue

	// Reuse the existing path order when the data originated from a DL
	// URI.
	maxOrder := -1
	for i := range e.aiData {
		v := &e.aiData[i]
		if v.kind == kindAI && v.dlPathOrder != dlPathOrderAttribute && v.dlPathOrder > maxOrder {
			maxOrder = v.dlPathOrder
		}
	}
	if maxOrder >= 0 {
		pathAIs = make([]*aiValue, maxOrder+1)
		for i := range e.aiData {
			v := &e.aiData[i]
			if v.kind == kindAI && v.dlPathOrder != dlPathOrderAttribute {
				pathAIs[v.dlPathOrder] = v
			}
		}
	} else {
		// Hoist as many AIs as we can into the path: the first
		// primary key AI, then the longest of its key-qualifier
		// sequences wholly satisfied by the data.
		var key string
		for i := range e.aiData {
			v := &e.aiData[i]
			if v.kind == kindAI && e.table.IsPrimaryKey(v.entry.AI) {
				key = v.entry.AI
				break
			}
		}
		if key == "" {
			return "", newErr(KindAssociationViolation,
				"Cannot create a DL URI without a primary key AI")
		}

		sorted := e.ensureSorted()
		best := []string{key}
		for _, seq := range e.table.KeyQualifierSequences() {
			fields := strings.Fields(seq)
			if fields[0] != key || len(fields) <= len(best) {
				continue
			}
			satisfied := true
			for _, qualifier := range fields[1:] {
				if _, ok := existsInAIData(sorted, qualifier, ""); !ok {
					satisfied = false
					break
				}
			}
			if satisfied {
				best = fields
			}
		}

		pathAIs = make([]*aiValue, len(best))
		for i, template := range best {
			match, ok := existsInAIData(sorted, template, "")
			if !ok {
				return "", newErr(KindAssociationViolation,
					"Cannot create a DL URI without a primary key AI")
			}
			pathAIs[i] = match
		}
	}

	if stem == "" {
		stem = canonicalStem
	}
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(stem, "/"))

	// Path components in priority order: primary key AI, then qualifiers.
	emitted := make(map[string]bool)
	for _, v := range pathAIs {
		if v == nil {
			continue
		}
		b.WriteByte('/')
		b.WriteString(v.ai)
		b.WriteByte('/')
		b.WriteString(uriEscape(v.value, false))
		emitted[v.ai] = true
	}

	// Query parameters in received order, fixed-length AIs first.
	var params []string
	for _, emitFixed := range []bool{true, false} {
		for i := range e.aiData {
			v := &e.aiData[i]
			if v.kind != kindAI || v.entry.NoFNC1 != emitFixed || emitted[v.ai] {
				continue
			}
			if err := e.checkDLDataAttr(v); err != nil {
				return "", err
			}
			params = append(params, v.ai+"="+uriEscape(v.value, true))
			emitted[v.ai] = true
		}
	}
	if len(params) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(params, "&"))
	}

	return b.String(), nil
}
