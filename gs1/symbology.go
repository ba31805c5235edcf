/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

// Symbology identifies the barcode symbology a message is associated with,
// which governs scan data generation.
type Symbology int

const (
	// SymNone means no symbology has been selected.
	SymNone Symbology = iota

	// SymDataBarOmni is GS1 DataBar Omnidirectional.
	SymDataBarOmni

	// SymDataBarTruncated is GS1 DataBar Truncated.
	SymDataBarTruncated

	// SymDataBarStacked is GS1 DataBar Stacked.
	SymDataBarStacked

	// SymDataBarStackedOmni is GS1 DataBar Stacked Omnidirectional.
	SymDataBarStackedOmni

	// SymDataBarLimited is GS1 DataBar Limited.
	SymDataBarLimited

	// SymDataBarExpanded is GS1 DataBar Expanded (Stacked).
	SymDataBarExpanded

	// SymUPCA is UPC-A.
	SymUPCA

	// SymUPCE is UPC-E.
	SymUPCE

	// SymEAN13 is EAN-13.
	SymEAN13

	// SymEAN8 is EAN-8.
	SymEAN8

	// SymGS1128CCA is GS1-128 with CC-A or CC-B composite.
	SymGS1128CCA

	// SymGS1128CCC is GS1-128 with CC-C composite.
	SymGS1128CCC

	// SymQR is GS1 QR Code.
	SymQR

	// SymDM is GS1 DataMatrix.
	SymDM

	// SymDotCode is GS1 DotCode.
	SymDotCode

	numSymbologies
)

// ccSymID is the AIM symbology identifier emitted before the composite
// component of scan data.
const ccSymID = "]e0"

// symID maps between symbologies and AIM symbology identifier modifiers.
// Entries are ordered so that the first match for a lookup in either
// direction is the default.
type symID struct {
	id     string
	aiMode bool
	sym    Symbology
}

var symIDTable = []symID{
	{"C1", true, SymGS1128CCA},
	{"C1", true, SymGS1128CCC},
	{"E0", false, SymEAN13},
	{"E0", true, SymEAN13},
	{"E0", false, SymUPCA},
	{"E0", true, SymUPCA},
	{"E0", false, SymUPCE},
	{"E0", true, SymUPCE},
	{"E4", false, SymEAN8},
	{"E4", true, SymEAN8},
	{"e0", true, SymDataBarExpanded},
	{"e0", true, SymDataBarOmni},
	{"e0", false, SymDataBarOmni},
	{"e0", true, SymDataBarTruncated},
	{"e0", false, SymDataBarTruncated},
	{"e0", true, SymDataBarStacked},
	{"e0", false, SymDataBarStacked},
	{"e0", true, SymDataBarStackedOmni},
	{"e0", false, SymDataBarStackedOmni},
	{"e0", true, SymDataBarLimited},
	{"e0", false, SymDataBarLimited},
	{"d1", false, SymDM},
	{"d2", true, SymDM},
	{"Q1", false, SymQR},
	{"Q3", true, SymQR},
	{"J0", false, SymDotCode},
	{"J1", true, SymDotCode},
}

// lookupSymID returns the AIM identifier for a symbology in the given mode.
func lookupSymID(sym Symbology, aiMode bool) (string, bool) {
	for _, s := range symIDTable {
		if s.sym == sym && s.aiMode == aiMode {
			return s.id, true
		}
	}
	return "", false
}

// lookupSymByID resolves a two-character AIM identifier to its default
// symbology and mode.
func lookupSymByID(id string) (Symbology, bool, bool) {
	for _, s := range symIDTable {
		if s.id == id {
			return s.sym, s.aiMode, true
		}
	}
	return SymNone, false, false
}
