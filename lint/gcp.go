/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

// gcpMinLength is the shortest currently assigned GS1 Company Prefix.
const gcpMinLength = 4

func lintGCP(data string, offset int) *Violation {
	if len(data) < gcpMinLength {
		return violation(TooShortForGCP, offset, len(data))
	}
	for i := 0; i < gcpMinLength; i++ {
		if data[i] < '0' || data[i] > '9' {
			return violation(InvalidGCPPrefix, offset+i, 1)
		}
	}
	return nil
}

// GCPPos1 ensures that the component starts with a plausible GS1 Company
// Prefix: at least the minimum GCP length of leading digits.
func GCPPos1(data string) *Violation {
	return lintGCP(data, 0)
}

// GCPPos2 is GCPPos1 for components whose first character is an indicator or
// extension digit; the GCP begins at the second character.
func GCPPos2(data string) *Violation {
	if len(data) < 2 {
		return violation(TooShortForGCP, 0, len(data))
	}
	return lintGCP(data[1:], 1)
}

// Key ensures that the component is long enough to hold a GS1 identification
// key and starts with a plausible GS1 Company Prefix.
func Key(data string) *Violation {
	return lintGCP(data, 0)
}
