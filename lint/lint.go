/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package lint provides the per-component validators named by the GS1 Syntax
// Dictionary. Each linter checks a single Application Identifier component
// value and reports the first problem found, together with the offending span
// so that callers can highlight it within the larger message.
package lint

// Linter validates a single AI component value. A nil return means the value
// is acceptable.
type Linter func(data string) *Violation

// Violation reports the first problem a linter found. Pos and Len bound the
// offending span within the component value; Len may be zero when no specific
// span can be blamed.
type Violation struct {
	Code Code
	Pos  int
	Len  int
}

func (v *Violation) Error() string { return v.Code.String() }

func violation(code Code, pos, length int) *Violation {
	return &Violation{Code: code, Pos: pos, Len: length}
}

var linters = map[string]Linter{
	"couponcode":     CouponCode,
	"couponposoffer": CouponPosOffer,
	"cset39":         CSet39,
	"cset64":         CSet64,
	"cset82":         CSet82,
	"csetnumeric":    CSetNumeric,
	"csum":           CSum,
	"csumalpha":      CSumAlpha,
	"gcppos1":        GCPPos1,
	"gcppos2":        GCPPos2,
	"hasnondigit":    HasNonDigit,
	"hh":             Hour,
	"hhmi":           HourMinute,
	"hyphen":         Hyphen,
	"iban":           IBAN,
	"importeridx":    ImporterIdx,
	"iso3166":        ISO3166,
	"iso3166999":     ISO3166Or999,
	"iso3166alpha2":  ISO3166Alpha2,
	"iso3166list":    ISO3166List,
	"iso4217":        ISO4217,
	"iso5218":        ISO5218,
	"key":            Key,
	"latitude":       Latitude,
	"latlong":        LatLong,
	"longitude":      Longitude,
	"mediatype":      MediaType,
	"mi":             Minute,
	"mmoptss":        MinuteOptSecond,
	"nonzero":        NonZero,
	"nozeroprefix":   NoZeroPrefix,
	"packagetype":    PackageType,
	"pcenc":          PercentEncoded,
	"pieceoftotal":   PieceOfTotal,
	"posinseqslash":  PosInSeqSlash,
	"ss":             Second,
	"winding":        Winding,
	"yesno":          YesNo,
	"yymmd0":         YYMMD0,
	"yymmdd":         YYMMDD,
	"yymmddhh":       YYMMDDHH,
	"yyyymmd0":       YYYYMMD0,
	"yyyymmdd":       YYYYMMDD,
	"zero":           Zero,
}

// ByName returns the linter registered under the given Syntax Dictionary
// name, or false when the name is unknown.
func ByName(name string) (Linter, bool) {
	fn, ok := linters[name]
	return fn, ok
}
