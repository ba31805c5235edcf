/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package aitable

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestNew_embeddedDictionary(t *testing.T) {
	w := expect.WrapT(t)

	table := New()
	w.ShouldBeTrue(len(table.Entries()) > 300)

	e := table.Lookup("01", 2, false)
	w.StopOnMismatch().ShouldBeFalse(e == nil)
	w.ShouldBeEqual(e.Title, "GTIN")
	w.ShouldBeTrue(e.NoFNC1)
	w.ShouldBeTrue(e.DLDataAttr)

	e = table.Lookup("8200", 4, false)
	w.StopOnMismatch().ShouldBeFalse(e == nil)
	w.ShouldBeFalse(e.DLDataAttr)

	e = table.Lookup("8003", 4, false)
	w.StopOnMismatch().ShouldBeFalse(e == nil)
	w.ShouldHaveLength(e.Components, 3)
	w.ShouldBeEqual(e.MinLength(), 14)
	w.ShouldBeEqual(e.MaxLength(), 30)
}

func TestLookup(t *testing.T) {
	type test struct {
		name          string
		data          string
		ailen         int
		permitUnknown bool
		ai            string // expected entry AI; "" means nil
		unknown       bool
	}
	found := func(n, d string, ailen int, ai string) test {
		return test{name: n, data: d, ailen: ailen, ai: ai}
	}
	missing := func(n, d string, ailen int) test {
		return test{name: n, data: d, ailen: ailen}
	}
	unvivifiable := func(n, d string, ailen int) test {
		return test{name: n, data: d, ailen: ailen, permitUnknown: true}
	}
	vivified := func(n, d string, ailen int, ai string) test {
		return test{name: n, data: d, ailen: ailen, permitUnknown: true, ai: ai, unknown: true}
	}

	table := New()

	for i, tt := range []test{
		found("exact", "01", 2, "01"),
		found("exact with data", "011234", 2, "01"),
		found("prefix with data", "011234", 0, "01"),
		found("four digit prefix", "8012", 0, "8012"),
		found("three digit prefix", "235XXX", 0, "235"),
		found("exact two digit", "37123", 2, "37"),

		missing("no such four digit", "2345XX", 4),
		missing("unassigned three digit", "234XXX", 3),
		missing("unassigned two digit", "23XXXX", 2),
		missing("AI too short", "2XXXXX", 1),
		missing("non-digit prefix", "XXXXXX", 0),
		missing("no matching prefix", "234567", 0),
		missing("known 235 at wrong length", "235XXX", 2),
		missing("known 37 at wrong length", "37123", 3),
		missing("prefix of known 01", "011", 3),
		missing("prefix of known 8001", "800", 3),
		missing("prefix of known 80nn", "80", 2),
		missing("length from prefix map differs", "399", 3),
		missing("length from prefix map differs 23", "2367", 4),
		missing("length from prefix map differs 41", "4199", 4),

		// Permitting unknown AIs never vivifies a non-numeric prefix or
		// an AI whose length disagrees with the two-digit prefix map.
		unvivifiable("permitted wrong length four digit", "2345XX", 4),
		unvivifiable("permitted wrong length two digit", "23XXXX", 2),
		unvivifiable("permitted 235 at wrong length", "235XXX", 2),
		unvivifiable("permitted 399 at wrong length", "399", 3),
		unvivifiable("permitted non-digit prefix", "XXXXXX", 0),

		vivified("unknown two digit", "89", 2, "89"),
		vivified("unknown four digit", "3999", 4, "3999"),
		vivified("unknown three digit", "236", 3, "236"),
		vivified("unknown three digit with data", "234XXX", 3, "234"),
		vivified("unknown three digit by prefix", "234567", 0, "234"),
		vivified("unknown fixed length", "419", 3, "419"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			e := table.Lookup(tt.data, tt.ailen, tt.permitUnknown)
			if tt.ai == "" {
				w.As(tt.data).ShouldBeTrue(e == nil)
				return
			}
			w.As(tt.data).StopOnMismatch().ShouldBeFalse(e == nil)
			w.ShouldBeEqual(e.AI, tt.ai)
			w.ShouldBeEqual(e.Unknown, tt.unknown)
		})
	}
}

func TestLookup_vivifiedShape(t *testing.T) {
	w := expect.WrapT(t)
	table := New()

	// Prefix "89" is unassigned, so the value is variable length and an
	// FNC1 separator is required.
	e := table.Lookup("89", 2, true)
	w.StopOnMismatch().ShouldBeFalse(e == nil)
	w.ShouldBeFalse(e.NoFNC1)
	w.ShouldBeEqual(e.MaxLength(), 90)

	// Prefix "41" is predefined as a fixed 13-digit value.
	e = table.Lookup("419", 3, true)
	w.StopOnMismatch().ShouldBeFalse(e == nil)
	w.ShouldBeTrue(e.NoFNC1)
	w.ShouldBeEqual(e.MinLength(), 13)
	w.ShouldBeEqual(e.MaxLength(), 13)
}

func TestPrefixLengths(t *testing.T) {
	w := expect.WrapT(t)
	table := New()

	for prefix, length := range map[string]int{
		"00": 2, "01": 2, "02": 2, "10": 2, "11": 2, "12": 2, "13": 2,
		"15": 2, "16": 2, "17": 2, "20": 2, "21": 2, "22": 2,
		"23": 3, "24": 3, "25": 3,
		"30": 2, "31": 4, "32": 4, "33": 4, "34": 4, "35": 4, "36": 4,
		"37": 2, "39": 4,
		"40": 3, "41": 3, "42": 3, "43": 4,
		"70": 4, "71": 3, "72": 4,
		"80": 4, "81": 4, "82": 4,
		"90": 2, "91": 2, "92": 2, "93": 2, "94": 2, "95": 2, "96": 2,
		"97": 2, "98": 2, "99": 2,
	} {
		w.As(prefix).ShouldBeEqual(table.PrefixLength(prefix), length)
	}
}

// Every AI sharing a two-digit prefix must have the same length, and the
// FNC1 flag of each entry must agree with the fixed-length prefix list.
func TestTableConsistency(t *testing.T) {
	w := expect.WrapT(t)
	table := New()

	for _, e := range table.Entries() {
		w.As(e.AI).ShouldBeEqual(len(e.AI), table.PrefixLength(e.AI))
		fixed := fixedValueLengthByPrefix[prefixIndex(e.AI)] != vl
		w.As(e.AI).ShouldBeEqual(e.NoFNC1, fixed)
	}
}

func TestKeyQualifierSequences(t *testing.T) {
	w := expect.WrapT(t)
	table := New()

	for _, seq := range [][]string{
		{"01"},
		{"01", "22"},
		{"01", "10"},
		{"01", "21"},
		{"01", "22", "10"},
		{"01", "22", "21"},
		{"01", "10", "21"},
		{"01", "22", "10", "21"},
		{"01", "235"},
		{"00"},
		{"414"},
		{"414", "254"},
		{"414", "7040"},
		{"8017", "8019"},
		{"415", "8020"},
	} {
		w.As(seq).ShouldBeTrue(table.IsKeyQualifierSequence(seq))
	}

	for _, seq := range [][]string{
		{"01", "21", "10"},   // qualifier order matters
		{"01", "235", "22"},  // qualifiers from a different alternative
		{"414", "254", "7040"},
		{"10"},               // not a primary key
		{"99"},
	} {
		w.As(seq).ShouldBeFalse(table.IsKeyQualifierSequence(seq))
	}

	w.ShouldBeTrue(table.IsPrimaryKey("01"))
	w.ShouldBeTrue(table.IsPrimaryKey("8003"))
	w.ShouldBeFalse(table.IsPrimaryKey("10"))
	w.ShouldBeFalse(table.IsPrimaryKey("99"))
}

func TestLoad(t *testing.T) {
	w := expect.WrapT(t)

	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "# test dictionary\n" +
		"01  *?  N14,csum,gcppos1  ex=02  dlpkey=21  # GTIN\n" +
		"02  *  N14,csum,gcppos1  ex=01  # CONTENT\n" +
		"21  ?  X..20  req=01  # SERIAL\n"
	w.ShouldSucceed(os.WriteFile(path, []byte(content), 0o600))

	table, err := Load(path)
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldHaveLength(table.Entries(), 3)
	w.ShouldBeTrue(table.IsKeyQualifierSequence([]string{"01", "21"}))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	w.ShouldFail(err)
}

func TestLoad_reportsLineNumbers(t *testing.T) {
	w := expect.WrapT(t)

	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "# ok\n01  *?  N14,csum  # GTIN\n90  ?  Q5\n"
	w.ShouldSucceed(os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldContainStr(err.Error(), "Syntax Dictionary line 3")
}

func TestParse_structuralFailures(t *testing.T) {
	w := expect.WrapT(t)

	// Duplicate AI.
	_, err := parse("90  ?  X..30\n90  ?  X..20\n")
	w.ShouldFail(err)

	// AIs sharing a two-digit prefix with different lengths.
	_, err = parse("90  ?  X..30\n901  ?  X..30\n")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldContainStr(err.Error(), "different lengths")

	// Attribute referencing an AI that is not in the table.
	_, err = parse("90  ?  X..30  req=8004\n")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldContainStr(err.Error(), "references unknown AI")
}
