/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

// primes weights the data characters for the check-character pair
// calculation, applied right to left over the data preceding the pair.
var primes = [97]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37,
	41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89,
	97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349, 353, 359,
	367, 373, 379, 383, 389, 397, 401, 409, 419, 421, 431, 433,
	439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503,
	509,
}

const cset32 = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// cset82Weights maps each CSET 82 character to its 1-based alphabet
// position. Zero marks characters outside the set.
var cset82Weights = [127]uint8{
	'!': 1, '"': 2, '%': 3, '&': 4, '\'': 5, '(': 6,
	')': 7, '*': 8, '+': 9, ',': 10, '-': 11, '.': 12,
	'/': 13, '0': 14, '1': 15, '2': 16, '3': 17, '4': 18,
	'5': 19, '6': 20, '7': 21, '8': 22, '9': 23, ':': 24,
	';': 25, '<': 26, '=': 27, '>': 28, '?': 29, 'A': 30,
	'B': 31, 'C': 32, 'D': 33, 'E': 34, 'F': 35, 'G': 36,
	'H': 37, 'I': 38, 'J': 39, 'K': 40, 'L': 41, 'M': 42,
	'N': 43, 'O': 44, 'P': 45, 'Q': 46, 'R': 47, 'S': 48,
	'T': 49, 'U': 50, 'V': 51, 'W': 52, 'X': 53, 'Y': 54,
	'Z': 55, '_': 56, 'a': 57, 'b': 58, 'c': 59, 'd': 60,
	'e': 61, 'f': 62, 'g': 63, 'h': 64, 'i': 65, 'j': 66,
	'k': 67, 'l': 68, 'm': 69, 'n': 70, 'o': 71, 'p': 72,
	'q': 73, 'r': 74, 's': 75, 't': 76, 'u': 77, 'v': 78,
	'w': 79, 'x': 80, 'y': 81, 'z': 82,
}

// CSum ensures that the component is all digits and that its final digit is
// the correct GS1 check digit over the preceding digits, weighted 3-1-3...
// from the right.
func CSum(data string) *Violation {
	if len(data) == 0 {
		return violation(TooShortForCheckDigit, 0, 0)
	}

	weight := 1
	if len(data)%2 == 0 {
		weight = 3
	}
	parity := 0
	for i := 0; i < len(data)-1; i++ {
		if data[i] < '0' || data[i] > '9' {
			return violation(NonDigit, i, 1)
		}
		parity += weight * int(data[i]-'0')
		weight = 4 - weight
	}

	last := data[len(data)-1]
	if last < '0' || last > '9' {
		return violation(NonDigit, len(data)-1, 1)
	}
	parity = (10 - parity%10) % 10
	if byte(parity)+'0' != last {
		return violation(IncorrectCheckDigit, len(data)-1, 1)
	}
	return nil
}

// CSumAlpha ensures that the component ends with the correct alphanumeric
// check-character pair over the preceding CSET 82 characters. The data
// characters are weighted by descending primes, summed modulo 1021, and the
// two CSET 32 characters encode the five high and five low bits of the
// remainder.
func CSumAlpha(data string) *Violation {
	n := len(data)
	if n > len(primes)+2 {
		return violation(TooLongForCheckPair, 0, n)
	}
	if n < 2 {
		return violation(TooShortForCheckPair, 0, n)
	}
	if n == 2 {
		// Empty data checksums to zero, which the pair "22" encodes.
		if data != "22" {
			return violation(IncorrectCheckPair, 0, 2)
		}
		return nil
	}

	sum := 0
	for i := 0; i < n-2; i++ {
		if data[i] > 126 || cset82Weights[data[i]] == 0 {
			return violation(InvalidCSet82, i, 1)
		}
		sum += int(cset82Weights[data[i]]-1) * primes[n-3-i]
	}
	sum %= 1021
	if data[n-2] != cset32[sum>>5] || data[n-1] != cset32[sum&31] {
		return violation(IncorrectCheckPair, n-2, 2)
	}
	return nil
}
