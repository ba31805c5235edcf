/* Apache v2 license
 * Copyright (C) 2026 GS1 Syntax Engine contributors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package lint

import "time"

// currentYear supplies the two-digit year used to pivot the 50-year window
// when expanding YY dates. Overridable by tests.
var currentYear = func() int {
	return time.Now().Year() % 100
}

var daysInMonth = [12]int{31, 0, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func twoDigits(data string, i int) int {
	return int(data[i]-'0')*10 + int(data[i+1]-'0')
}

func digitsViolation(data string, want int, short, long Code) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return violation(NonDigit, i, 1)
		}
	}
	if len(data) != want {
		code := long
		if len(data) < want {
			code = short
		}
		return violation(code, 0, len(data))
	}
	return nil
}

// YYYYMMD0 ensures that the component is a valid YYYYMMDD calendar date,
// permitting "00" as the day to mean end of month.
func YYYYMMD0(data string) *Violation {
	if v := digitsViolation(data, 8, DateTooShort, DateTooLong); v != nil {
		return v
	}
	yyyy := twoDigits(data, 0)*100 + twoDigits(data, 2)
	mm := twoDigits(data, 4)
	dd := twoDigits(data, 6)
	if mm < 1 || mm > 12 {
		return violation(IllegalMonth, 4, 2)
	}
	max := daysInMonth[mm-1]
	if mm == 2 {
		max = 28
		if (yyyy%4 == 0 && yyyy%100 != 0) || yyyy%400 == 0 {
			max = 29
		}
	}
	if dd > max {
		return violation(IllegalDay, 6, 2)
	}
	return nil
}

// YYYYMMDD ensures that the component is a valid YYYYMMDD calendar date.
func YYYYMMDD(data string) *Violation {
	if v := YYYYMMD0(data); v != nil {
		return v
	}
	if data[6] == '0' && data[7] == '0' {
		return violation(IllegalDay, 6, 2)
	}
	return nil
}

// YYMMD0 ensures that the component is a valid YYMMDD calendar date,
// permitting "00" as the day to mean end of month. The two-digit year is
// expanded with a window of 50 years back and 49 years forward.
func YYMMD0(data string) *Violation {
	if v := digitsViolation(data, 6, DateTooShort, DateTooLong); v != nil {
		return v
	}
	yy := twoDigits(data, 0)
	var century string
	switch d := yy - currentYear(); {
	case d >= 51:
		century = "19"
	case d > -50:
		century = "20"
	default:
		century = "21"
	}
	if v := YYYYMMD0(century + data); v != nil {
		return violation(v.Code, v.Pos-2, v.Len)
	}
	return nil
}

// YYMMDD ensures that the component is a valid YYMMDD calendar date.
func YYMMDD(data string) *Violation {
	if v := YYMMD0(data); v != nil {
		return v
	}
	if data[4] == '0' && data[5] == '0' {
		return violation(IllegalDay, 4, 2)
	}
	return nil
}

// YYMMDDHH ensures that the component is a valid YYMMDD date followed by a
// valid HH hour.
func YYMMDDHH(data string) *Violation {
	if v := digitsViolation(data, 8, DateWithHourTooShort, DateWithHourTooLong); v != nil {
		return v
	}
	if v := YYMMDD(data[:6]); v != nil {
		return v
	}
	if twoDigits(data, 6) > 23 {
		return violation(IllegalHour, 6, 2)
	}
	return nil
}

// Hour ensures that the component is a two-digit hour, "00" to "23".
func Hour(data string) *Violation {
	if v := digitsViolation(data, 2, HourTooShort, HourTooLong); v != nil {
		return v
	}
	if twoDigits(data, 0) > 23 {
		return violation(IllegalHour, 0, 2)
	}
	return nil
}

// Minute ensures that the component is a two-digit minute, "00" to "59".
func Minute(data string) *Violation {
	if v := digitsViolation(data, 2, MinuteTooShort, MinuteTooLong); v != nil {
		return v
	}
	if twoDigits(data, 0) > 59 {
		return violation(IllegalMinute, 0, 2)
	}
	return nil
}

// Second ensures that the component is a two-digit second, "00" to "59".
func Second(data string) *Violation {
	if v := digitsViolation(data, 2, SecondTooShort, SecondTooLong); v != nil {
		return v
	}
	if twoDigits(data, 0) > 59 {
		return violation(IllegalSecond, 0, 2)
	}
	return nil
}

// HourMinute ensures that the component is a valid HHMI time of day.
func HourMinute(data string) *Violation {
	if v := digitsViolation(data, 4, HourWithMinuteTooShort, HourWithMinuteTooLong); v != nil {
		return v
	}
	if twoDigits(data, 0) > 23 {
		return violation(IllegalHour, 0, 2)
	}
	if twoDigits(data, 2) > 59 {
		return violation(IllegalMinute, 2, 2)
	}
	return nil
}

// MinuteOptSecond ensures that the component is a two-digit minute with an
// optional two-digit second.
func MinuteOptSecond(data string) *Violation {
	for i := 0; i < len(data); i++ {
		if data[i] < '0' || data[i] > '9' {
			return violation(NonDigit, i, 1)
		}
	}
	if len(data) != 2 && len(data) != 4 {
		return violation(MinuteSecondBadLength, 0, len(data))
	}
	if twoDigits(data, 0) > 59 {
		return violation(IllegalMinute, 0, 2)
	}
	if len(data) == 4 && twoDigits(data, 2) > 59 {
		return violation(IllegalSecond, 2, 2)
	}
	return nil
}
