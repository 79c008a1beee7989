// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epochdays

import (
	"fmt"
	"time"
)

// CalendarDate represents a date with a year, a 0-based month and a
// 1-based day. A CalendarDate may be out of range, in which case it is
// interpreted as per ElapsedDays; use Normalize to obtain the equivalent
// in-range date.
type CalendarDate struct {
	Year  int64
	Month int
	Day   int
}

// NewCalendarDate returns the CalendarDate for the year, month and day of
// the supplied time in its own location.
func NewCalendarDate(when time.Time) CalendarDate {
	y, m, d := when.Date()
	return CalendarDate{Year: int64(y), Month: int(m) - 1, Day: d}
}

// ElapsedDays returns the number of days between January 1, 1970 and cd.
func (cd CalendarDate) ElapsedDays() int64 {
	return ElapsedDays(cd.Year, int64(cd.Month), int64(cd.Day))
}

// IsValid returns true if the month and day are within their natural
// ranges for the year.
func (cd CalendarDate) IsValid() bool {
	if cd.Month < 0 || cd.Month > 11 {
		return false
	}
	return cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// Normalize returns the in-range equivalent of cd.
func (cd CalendarDate) Normalize() CalendarDate {
	if cd.IsValid() {
		return cd
	}
	return DateFromElapsedDays(cd.ElapsedDays())
}

// Tomorrow returns the date of the next day. 12/31 wraps to 1/1 of the
// following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	cd = cd.Normalize()
	if cd.Month == 11 && cd.Day == 31 {
		return CalendarDate{Year: cd.Year + 1, Month: 0, Day: 1}
	}
	if cd.Day >= DaysInMonth(cd.Year, cd.Month) {
		cd.Month++
		cd.Day = 1
		return cd
	}
	cd.Day++
	return cd
}

// Yesterday returns the date of the previous day. 1/1 wraps to 12/31 of
// the preceding year.
func (cd CalendarDate) Yesterday() CalendarDate {
	cd = cd.Normalize()
	if cd.Month == 0 && cd.Day == 1 {
		return CalendarDate{Year: cd.Year - 1, Month: 11, Day: 31}
	}
	if cd.Day <= 1 {
		cd.Month--
		cd.Day = DaysInMonth(cd.Year, cd.Month)
		return cd
	}
	cd.Day--
	return cd
}

// Weekday returns the day of the week for cd.
func (cd CalendarDate) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(cd.ElapsedDays()+int64(time.Thursday), 7))
}

// Time returns midnight UTC on cd. The year must be representable
// as an int.
func (cd CalendarDate) Time() time.Time {
	cd = cd.Normalize()
	return time.Date(int(cd.Year), time.Month(cd.Month+1), cd.Day, 0, 0, 0, 0, time.UTC)
}

// String returns cd in the form YYYY-MM-DD with a 1-based month, negative
// years are prefixed with '-'.
func (cd CalendarDate) String() string {
	if cd.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -cd.Year, cd.Month+1, cd.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month+1, cd.Day)
}
