/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestVersion(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldNotBeEmptyStr(Version)
}

func TestNewEncoder(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	w.ShouldBeFalse(enc.Table() == nil)
	w.ShouldBeEqual(enc.Sym(), SymNone)
	w.ShouldBeTrue(enc.Err() == nil)
	w.ShouldBeEqual(enc.DataStr(), "")
	w.ShouldBeEqual(enc.AIDataStr(), "")
}

func TestNewEncoderFromGrammarFile(t *testing.T) {
	w := expect.WrapT(t)

	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "# test dictionary\n" +
		"01  *?  N14,csum,gcppos1  ex=02  dlpkey=21  # GTIN\n" +
		"02  *  N14,csum,gcppos1  ex=01  # CONTENT\n" +
		"21  ?  X..20  req=01  # SERIAL\n"
	w.ShouldSucceed(os.WriteFile(path, []byte(content), 0o600))

	enc, err := NewEncoderFromGrammarFile(path)
	w.StopOnMismatch().ShouldSucceed(err)
	w.StopOnMismatch().ShouldSucceed(enc.SetAIDataStr("(01)12312312312326(21)ABC"))
	w.ShouldBeEqual(enc.DataStr(), "^011231231231232621ABC")

	// AIs outside the session's table are unknown.
	err = enc.SetAIDataStr("(10)ABC")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(err.Error(), "Unrecognised AI: 10")

	_, err = NewEncoderFromGrammarFile(filepath.Join(t.TempDir(), "missing.txt"))
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(ErrKindOf(err), KindGrammarLoad)
}

func TestSetSym(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	for sym := SymNone; sym < numSymbologies; sym++ {
		w.As(sym).ShouldSucceed(enc.SetSym(sym))
		w.ShouldBeEqual(enc.Sym(), sym)
	}

	w.StopOnMismatch().ShouldSucceed(enc.SetSym(SymQR))
	for _, sym := range []Symbology{Symbology(-1), numSymbologies} {
		err := enc.SetSym(sym)
		w.As(sym).StopOnMismatch().ShouldFail(err)
		w.ShouldBeEqual(err.Error(), "Unknown symbology")
		w.ShouldBeEqual(ErrKindOf(err), KindConfiguration)
		w.ShouldBeEqual(enc.Sym(), SymQR)
	}
}

func TestOptions(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	w.ShouldBeFalse(enc.AddCheckDigit())
	enc.SetAddCheckDigit(true)
	w.ShouldBeTrue(enc.AddCheckDigit())

	w.ShouldBeFalse(enc.PermitUnknownAIs())
	enc.SetPermitUnknownAIs(true)
	w.ShouldBeTrue(enc.PermitUnknownAIs())

	w.ShouldBeFalse(enc.PermitZeroSuppressedGTINinDLURIs())
	enc.SetPermitZeroSuppressedGTINinDLURIs(true)
	w.ShouldBeTrue(enc.PermitZeroSuppressedGTINinDLURIs())

	w.ShouldBeFalse(enc.PermitConvenienceAlphas())
	enc.SetPermitConvenienceAlphas(true)
	w.ShouldBeTrue(enc.PermitConvenienceAlphas())

	w.ShouldBeFalse(enc.IncludeDataTitlesInHRI())
	enc.SetIncludeDataTitlesInHRI(true)
	w.ShouldBeTrue(enc.IncludeDataTitlesInHRI())
}

// A failed setter reports its error but leaves the previously held message
// untouched.
func TestFailedSetterRetainsMessage(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()

	w.StopOnMismatch().ShouldSucceed(enc.SetAIDataStr("(01)12312312312333(10)ABC123"))

	err := enc.SetAIDataStr("(01)12312312312334")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(enc.Err(), err)
	w.ShouldBeEqual(enc.ErrMarkup(), "(01)1231231231233|4|")
	w.ShouldBeEqual(enc.DataStr(), "^011231231231233310ABC123")
	w.ShouldBeEqual(enc.AIDataStr(), "(01)12312312312333(10)ABC123")
	w.ShouldBeEqual(enc.HRI(), []string{"(01) 12312312312333", "(10) ABC123"})

	w.ShouldFail(enc.SetDataStr("^10"))
	w.ShouldBeEqual(enc.DataStr(), "^011231231231233310ABC123")

	w.ShouldFail(enc.SetScanData("]E0123"))
	w.ShouldBeEqual(enc.DataStr(), "^011231231231233310ABC123")
	w.ShouldBeEqual(enc.Sym(), SymNone)

	// The next successful operation clears the error state.
	w.StopOnMismatch().ShouldSucceed(enc.SetDataStr("^99TESTING"))
	w.ShouldBeTrue(enc.Err() == nil)
	w.ShouldBeEqual(enc.ErrMarkup(), "")
	w.ShouldBeEqual(enc.AIDataStr(), "(99)TESTING")
}

func TestErrKindOf(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(ErrKindOf(nil), KindNone)
	w.ShouldBeEqual(ErrKindOf(errors.New("not ours")), KindNone)

	enc := NewEncoder()
	err := enc.SetAIDataStr("(1)12345678901231")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeEqual(ErrKindOf(err), KindUnknownIdentifier)

	// The kind survives wrapping with context.
	w.ShouldBeEqual(ErrKindOf(errors.Wrap(err, "loading message")), KindUnknownIdentifier)
}

// One message moved between every representation the session supports.
func TestRepresentationsAgree(t *testing.T) {
	w := expect.WrapT(t)
	enc := NewEncoder()
	w.StopOnMismatch().ShouldSucceed(enc.SetSym(SymDM))

	w.StopOnMismatch().ShouldSucceed(enc.SetDataStr("^011231231231232610ABC123^21XYZ"))
	w.ShouldBeEqual(enc.AIDataStr(), "(01)12312312312326(10)ABC123(21)XYZ")
	w.ShouldBeEqual(enc.HRI(), []string{"(01) 12312312312326", "(10) ABC123", "(21) XYZ"})

	uri, err := enc.DLURI("")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(uri, "https://id.gs1.org/01/12312312312326/10/ABC123/21/XYZ")

	scanData, err := enc.ScanData()
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(scanData, "]d2011231231231232610ABC123\x1d21XYZ")

	dec := NewEncoder()
	w.StopOnMismatch().ShouldSucceed(dec.SetDataStr(uri))
	w.ShouldBeEqual(dec.AIDataStr(), "(01)12312312312326(10)ABC123(21)XYZ")

	w.StopOnMismatch().ShouldSucceed(dec.SetScanData(scanData))
	w.ShouldBeEqual(dec.Sym(), SymDM)
	w.ShouldBeEqual(dec.DataStr(), "^011231231231232610ABC123^21XYZ")
}
