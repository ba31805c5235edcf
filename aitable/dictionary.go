/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package aitable

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//go:embed gs1-syntax-dictionary.txt
var embeddedDictionary string

// New builds the AI table from the embedded Syntax Dictionary. The embedded
// data is validated by this package's tests, so a parse failure here is a
// programmer error.
func New() *Table {
	t, err := parse(embeddedDictionary)
	if err != nil {
		panic(err)
	}
	return t
}

// Load builds the AI table from a Syntax Dictionary file. Any parse failure
// is fatal to construction: no partial table is returned.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot read file %s", path)
	}
	return parse(string(data))
}

func parse(data string) (*Table, error) {
	var entries []Entry
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		parsed, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "Syntax Dictionary line %d", i+1)
		}
		entries = append(entries, parsed...)
	}
	return newTable(entries)
}
