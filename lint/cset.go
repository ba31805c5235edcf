/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

var (
	// CSET 82: the character set permitted in most alphanumeric AI values.
	cset82 = [127]uint8{
		'!': 1, '"': 1, '%': 1, '&': 1, '\'': 1, '(': 1, ')': 1,
		'*': 1, '+': 1, ',': 1, '-': 1, '.': 1, '/': 1,
		':': 1, ';': 1, '<': 1, '=': 1, '>': 1, '?': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}

	// CSET 39: digits, upper case letters and a small set of punctuation,
	// as used by component and part identifiers.
	cset39 = [127]uint8{
		'#': 1, '-': 1, '/': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	}

	// CSET 64: the URI-safe base64 alphabet used by file-size AI values.
	cset64 = [127]uint8{
		'-': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}
)

// InCSet82 reports whether every character of s is in CSET 82.
func InCSet82(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 126 || cset82[s[i]] == 0 {
			return false
		}
	}
	return true
}

// InCSet39 reports whether every character of s is in CSET 39.
func InCSet39(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 126 || cset39[s[i]] == 0 {
			return false
		}
	}
	return true
}

// CSetNumeric ensures that the component contains only digits.
func CSetNumeric(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return violation(NonDigit, i, 1)
		}
	}
	return nil
}

// CSet82 ensures that the component contains only CSET 82 characters.
func CSet82(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] > 126 || cset82[data[i]] == 0 {
			return violation(InvalidCSet82, i, 1)
		}
	}
	return nil
}

// CSet39 ensures that the component contains only CSET 39 characters.
func CSet39(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] > 126 || cset39[data[i]] == 0 {
			return violation(InvalidCSet39, i, 1)
		}
	}
	return nil
}

// CSet64 ensures that the component is URI-safe base64: CSET 64 characters
// with at most two "=" pads which must round the length up to a multiple of
// three.
func CSet64(data string) *Violation {
	pads := 0
	n := len(data)
	for pads < n && data[n-pads-1] == '=' {
		pads++
	}
	n -= pads
	if pads > 2 || (pads > 0 && (n+pads)%3 != 0) {
		return violation(InvalidCSet64Padding, n, pads)
	}
	for i := 0; i < n; i++ {
		if data[i] > 126 || cset64[data[i]] == 0 {
			return violation(InvalidCSet64, i, 1)
		}
	}
	return nil
}
