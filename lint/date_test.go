/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

// pinYear fixes the two-digit pivot year so century expansion is stable.
func pinYear(t *testing.T, yy int) {
	prev := currentYear
	currentYear = func() int { return yy }
	t.Cleanup(func() { currentYear = prev })
}

func TestYYMMDD(t *testing.T) {
	pinYear(t, 25)

	type test struct {
		name, data string
		code       Code
	}
	pass := func(n, d string) test { return test{name: n, data: d} }
	fail := func(n, d string, c Code) test { return test{name: n, data: d, code: c} }

	for i, tt := range []test{
		pass("ordinary date", "250630"),
		pass("last of month", "251231"),
		pass("leap day 2024", "240229"),
		pass("leap day 2000", "000229"),
		pass("nineteen hundreds", "990101"),
		pass("thirty-day month", "250430"),

		fail("zero day", "250600", IllegalDay),
		fail("month thirteen", "251301", IllegalMonth),
		fail("month zero", "250001", IllegalMonth),
		fail("day overflow", "250631", IllegalDay),
		fail("non-leap february", "230229", IllegalDay),
		fail("1900 not leap", "990229", IllegalDay),
		fail("too short", "2506", DateTooShort),
		fail("too long", "25063011", DateTooLong),
		fail("non-digit", "2506AA", NonDigit),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			v := YYMMDD(tt.data)
			if tt.code == OK {
				w.As(tt.data).ShouldBeTrue(v == nil)
			} else {
				w.As(tt.data).StopOnMismatch().ShouldBeFalse(v == nil)
				w.ShouldBeEqual(v.Code, tt.code)
			}
		})
	}
}

func TestYYMMD0_permitsDayZero(t *testing.T) {
	pinYear(t, 25)
	w := expect.WrapT(t)

	w.As("250600").ShouldBeTrue(YYMMD0("250600") == nil)
	w.As("250631").ShouldBeFalse(YYMMD0("250631") == nil)
}

func TestCenturyWindow(t *testing.T) {
	w := expect.WrapT(t)

	// With a pivot of 25, "00" expands to 2000, which is a leap year.
	pinYear(t, 25)
	w.As("2000 leap").ShouldBeTrue(YYMMDD("000229") == nil)

	// With a pivot of 60, "00" is more than 49 years ahead and expands to
	// 2100 instead, which is not a leap year.
	pinYear(t, 60)
	w.As("2100 not leap").ShouldBeFalse(YYMMDD("000229") == nil)
}

func TestYYYYMMDD(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeTrue(YYYYMMDD("20240229") == nil)
	w.ShouldBeFalse(YYYYMMDD("21000229") == nil) // 2100 is not a leap year
	w.ShouldBeTrue(YYYYMMD0("20240200") == nil)
	w.ShouldBeFalse(YYYYMMDD("20240200") == nil)
	w.ShouldBeFalse(YYYYMMDD("2024022") == nil)
}

func TestTimesOfDay(t *testing.T) {
	type test struct {
		name string
		fn   Linter
		data string
		code Code
	}
	pass := func(n string, fn Linter, d string) test {
		return test{name: n, fn: fn, data: d}
	}
	fail := func(n string, fn Linter, d string, c Code) test {
		return test{name: n, fn: fn, data: d, code: c}
	}

	for i, tt := range []test{
		pass("midnight", Hour, "00"),
		pass("last hour", Hour, "23"),
		fail("hour 24", Hour, "24", IllegalHour),
		fail("hour short", Hour, "2", HourTooShort),
		fail("hour long", Hour, "230", HourTooLong),

		pass("minute", Minute, "59"),
		fail("minute 60", Minute, "60", IllegalMinute),
		pass("second", Second, "59"),
		fail("second 60", Second, "60", IllegalSecond),

		pass("hhmi", HourMinute, "2359"),
		fail("hhmi bad hour", HourMinute, "2459", IllegalHour),
		fail("hhmi bad minute", HourMinute, "2360", IllegalMinute),
		fail("hhmi short", HourMinute, "235", HourWithMinuteTooShort),

		pass("mm only", MinuteOptSecond, "59"),
		pass("mmss", MinuteOptSecond, "5959"),
		fail("mmss odd length", MinuteOptSecond, "595", MinuteSecondBadLength),
		fail("mmss bad second", MinuteOptSecond, "5960", IllegalSecond),

		pass("date with hour", YYMMDDHH, "25063023"),
		fail("date with hour 24", YYMMDDHH, "25063024", IllegalHour),
		fail("date with hour short", YYMMDDHH, "250630", DateWithHourTooShort),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			pinYear(t, 25)
			w := expect.WrapT(t)
			v := tt.fn(tt.data)
			if tt.code == OK {
				w.As(tt.data).ShouldBeTrue(v == nil)
			} else {
				w.As(tt.data).StopOnMismatch().ShouldBeFalse(v == nil)
				w.ShouldBeEqual(v.Code, tt.code)
			}
		})
	}
}
