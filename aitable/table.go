/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package aitable

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Table is an immutable set of AI entries with the lookup structures derived
// from them: the two-digit-prefix AI length map and the list of valid DL
// key-qualifier sequences.
type Table struct {
	entries        []Entry
	lengthByPrefix [100]uint8
	keyQualifiers  []string // sorted space-separated AI sequences
}

// Variable-length marker in the fixed-length prefix table.
const vl = 0

// AI prefixes that are predefined as fixed length and do not require an FNC1
// separator. The AI table normally decides, but this list governs vivified
// unknown AIs since not all prefixes are currently assigned.
var fixedValueLengthByPrefix = [100]uint8{
	18, 14, 14, 14, 16, /* (00) - (04) */
	vl, vl, vl, vl, vl, vl,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 2, /* (11) - (20) */
	vl, vl,
	vl, /* (23) no longer fixed length, (235) now allocated as TPX */
	vl, vl, vl, vl, vl, vl, vl,
	6, 6, 6, 6, 6, 6, /* (31) - (36) */
	vl, vl, vl, vl,
	13, /* (41) */
}

func prefixIndex(ai string) int {
	return int(ai[0]-'0')*10 + int(ai[1]-'0')
}

func newTable(entries []Entry) (*Table, error) {
	t := &Table{entries: entries}

	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].AI < t.entries[j].AI
	})
	for i := 1; i < len(t.entries); i++ {
		if t.entries[i].AI == t.entries[i-1].AI {
			return nil, errors.Errorf("Duplicate AI (%s)", t.entries[i].AI)
		}
	}

	// All AIs sharing a two-digit prefix must have the same AI length.
	for i := range t.entries {
		e := &t.entries[i]
		prefix := prefixIndex(e.AI)
		length := uint8(len(e.AI))
		if t.lengthByPrefix[prefix] != 0 && t.lengthByPrefix[prefix] != length {
			return nil, errors.Errorf(
				"AI table is broken: AIs beginning '%c%c' have different lengths",
				e.AI[0], e.AI[1])
		}
		t.lengthByPrefix[prefix] = length
	}

	t.populateKeyQualifiers()

	if err := t.checkReferences(); err != nil {
		return nil, err
	}

	return t, nil
}

// populateKeyQualifiers expands each "dlpkey" attribute into the set of valid
// DL URI path AI sequences: every subset of the qualifiers, keeping their
// order, appended to the key.
func (t *Table) populateKeyQualifiers() {
	for i := range t.entries {
		e := &t.entries[i]
		spec, ok := e.Attr("dlpkey")
		if !ok {
			continue
		}
		if spec == "" {
			t.keyQualifiers = append(t.keyQualifiers, e.AI)
			continue
		}
		for _, alt := range strings.Split(spec, "|") {
			seqs := []string{e.AI}
			for _, qualifier := range strings.Split(alt, ",") {
				for _, s := range seqs {
					seqs = append(seqs, s+" "+qualifier)
				}
			}
			t.keyQualifiers = append(t.keyQualifiers, seqs...)
		}
	}
	sort.Strings(t.keyQualifiers)
}

// checkReferences ensures that every AI mentioned by an "ex", "req" or
// "dlpkey" attribute resolves against the table. Template references with
// trailing "n" wildcards are not checked.
func (t *Table) checkReferences() error {
	for i := range t.entries {
		e := &t.entries[i]
		for _, attr := range strings.Fields(e.Attrs) {
			var refs []string
			switch {
			case strings.HasPrefix(attr, "ex="):
				refs = strings.Split(attr[3:], ",")
			case strings.HasPrefix(attr, "req="):
				for _, group := range strings.Split(attr[4:], ",") {
					refs = append(refs, strings.Split(group, "+")...)
				}
			case strings.HasPrefix(attr, "dlpkey="):
				for _, alt := range strings.Split(attr[7:], "|") {
					refs = append(refs, strings.Split(alt, ",")...)
				}
			default:
				continue
			}
			for _, ref := range refs {
				if strings.ContainsRune(ref, 'n') {
					continue
				}
				if t.Lookup(ref, len(ref), false) == nil {
					return errors.Errorf(
						"AI (%s) attribute references unknown AI (%s)", e.AI, ref)
				}
			}
		}
	}
	return nil
}

// Entries returns the table's entries in sorted order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// PrefixLength reports the AI length shared by AIs beginning with the first
// two digits of ai, or 0 when no AI carries that prefix.
func (t *Table) PrefixLength(ai string) int {
	return int(t.lengthByPrefix[prefixIndex(ai)])
}

// IsPrimaryKey reports whether the AI may start a DL URI path.
func (t *Table) IsPrimaryKey(ai string) bool {
	return t.isKeyQualifierSequence(ai)
}

// IsKeyQualifierSequence reports whether the given AI sequence is a valid DL
// URI path: a primary key followed by an ordered subset of its qualifiers.
func (t *Table) IsKeyQualifierSequence(ais []string) bool {
	return t.isKeyQualifierSequence(strings.Join(ais, " "))
}

func (t *Table) isKeyQualifierSequence(seq string) bool {
	i := sort.SearchStrings(t.keyQualifiers, seq)
	return i < len(t.keyQualifiers) && t.keyQualifiers[i] == seq
}

// KeyQualifierSequences returns every valid DL URI path AI sequence, each a
// space-separated AI list beginning with a primary key.
func (t *Table) KeyQualifierSequences() []string {
	return t.keyQualifiers
}

// Search outcomes distinguishing a miss from a conflict with a known AI.
const (
	searchFound = iota
	searchNotFound
	searchInvalid
)

// comparePrefix orders an entry AI against the leading bytes of data.
func comparePrefix(entryAI, data string) int {
	if len(data) < len(entryAI) {
		if c := strings.Compare(entryAI[:len(data)], data); c != 0 {
			return c
		}
		return 1
	}
	return strings.Compare(entryAI, data[:len(entryAI)])
}

// search runs a binary search for an entry whose AI is a prefix of data,
// then validates the match against the requested AI length.
func (t *Table) search(data string, ailen int) (int, int) {
	lo, hi := 0, len(t.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		e := &t.entries[mid]
		switch c := comparePrefix(e.AI, data); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			if ailen == 0 || ailen == len(e.AI) {
				return mid, searchFound
			}
			// A fixed-length lookup whose length disagrees with the
			// matched AI conflicts rather than missing.
			return -1, searchInvalid
		}
	}
	return -1, searchNotFound
}

// Lookup finds the table entry matching an AI, or matching a prefix of the
// given data when ailen is 0. With permitUnknown, an AI absent from the table
// is vivified as a pseudo entry provided its length is consistent with the
// prefix length map.
func (t *Table) Lookup(data string, ailen int, permitUnknown bool) *Entry {
	if ailen != 0 && (ailen < minAILen || ailen > maxAILen) {
		return nil
	}

	digits := ailen
	if digits == 0 {
		digits = minAILen
	}
	if len(data) < digits || !allDigits(data[:digits]) {
		return nil
	}

	// A prefix lookup may still know the AI length from the prefix map.
	lookupLen := ailen
	if lookupLen == 0 {
		lookupLen = t.PrefixLength(data)
	}

	index, outcome := t.search(data, lookupLen)
	if outcome == searchFound {
		return &t.entries[index]
	}
	if outcome == searchInvalid || !permitUnknown {
		return nil
	}

	// Vivify the unknown AI when its length is consistent with the prefix
	// length map.
	prefixLen := t.PrefixLength(data)
	if ailen != 0 && prefixLen != 0 && prefixLen != ailen {
		return nil
	}
	if prefixLen != 0 && (len(data) < prefixLen || !allDigits(data[:prefixLen])) {
		return nil
	}

	ai := ""
	if prefixLen != 0 {
		ai = data[:prefixLen]
	} else if ailen != 0 {
		ai = data[:ailen]
	}

	valLen := vl
	if prefixLen != 0 {
		valLen = int(fixedValueLengthByPrefix[prefixIndex(data)])
	}
	return unknownEntry(ai, valLen)
}

// unknownEntry builds a pseudo entry for an AI that is not in the table. A
// fixed value length from the prefix list makes it a no-FNC1 entry; length 0
// leaves it variable length.
func unknownEntry(ai string, valLen int) *Entry {
	e := &Entry{
		AI:      ai,
		Unknown: true,
		Title:   "UNKNOWN",
	}
	if valLen == vl {
		e.Components = []Component{{Cset: CsetX, Min: 1, Max: 90}}
	} else {
		e.NoFNC1 = true
		e.Components = []Component{{Cset: CsetX, Min: valLen, Max: valLen}}
	}
	return e
}
