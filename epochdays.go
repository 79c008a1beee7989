// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package epochdays computes the number of days between a date in the
// proleptic Gregorian (ISO 8601) calendar and the epoch, January 1, 1970.
//
// Years are numbered astronomically, ie. year 0 precedes year 1 and
// year -1 precedes year 0, and the Gregorian leap year rule is applied to
// all years. Months are 0-based (0=January) and days are 1-based. Months
// and days outside of their natural ranges are normalized rather than
// rejected: month 12 is January of the following year, month -1 is
// December of the preceding year, day 0 is the last day of the preceding
// month and so on.
//
// All computations use int64 values. The magnitudes of the year, of the
// month divided by 12 and of the day must each be less than 10^15 to avoid
// overflow.
package epochdays

const (
	epochYear = 1970

	daysPer400Years = 365*400 + 97

	// daysToEpoch is the number of days from 0000-01-01 to 1970-01-01.
	daysToEpoch = 365*epochYear + (epochYear+3)/4 - (epochYear+99)/100 + (epochYear+399)/400
)

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// leapYearsBefore returns the number of leap years in [0, year) for
// positive years and the negated number of leap years in [year, 0) for
// negative years.
func leapYearsBefore(year int64) int64 {
	return floorDiv(year+3, 4) - floorDiv(year+99, 100) + floorDiv(year+399, 400)
}

// daysFromYearZero returns the number of days from 0000-01-01 to
// year-01-01, negative for years before 0.
func daysFromYearZero(year int64) int64 {
	return 365*year + leapYearsBefore(year)
}

// daysBeforeYear returns the number of days from 1970-01-01 to
// year-01-01.
func daysBeforeYear(year int64) int64 {
	return daysFromYearZero(year) - daysToEpoch
}

func normalizeMonth(year, month int64) (int64, int) {
	return year + floorDiv(month, 12), int(floorMod(month, 12))
}

// ElapsedDays returns the number of days between January 1, 1970 and the
// specified date. The result is negative for dates before the epoch.
// The month is 0-based and the day is 1-based, values outside of these
// ranges are normalized: the month is first carried into the year and the
// day is then applied as an offset from the first day of that month.
func ElapsedDays(year, month, day int64) int64 {
	ny, nm := normalizeMonth(year, month)
	return daysBeforeYear(ny) + int64(dayOfYearForYear(ny)[nm]) + (day - 1)
}

// Normalize returns the in-range CalendarDate equivalent to the specified
// year, month and day.
func Normalize(year, month, day int64) CalendarDate {
	return DateFromElapsedDays(ElapsedDays(year, month, day))
}

// DateFromElapsedDays returns the CalendarDate that is the specified number
// of days after (or before for negative values) January 1, 1970. It is the
// inverse of ElapsedDays.
func DateFromElapsedDays(days int64) CalendarDate {
	z := days + daysToEpoch
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years // [0, 146096]
	yoe := doe / 365
	for daysFromYearZero(yoe) > doe {
		yoe--
	}
	year := era*400 + yoe
	month, day := dateFromDay(int(doe-daysFromYearZero(yoe)), daysInMonthForYear(year))
	return CalendarDate{Year: year, Month: month, Day: day}
}

// dateFromDay returns the 0-based month and 1-based day for the 0-based
// day of the year.
func dateFromDay(day int, daysInMonth []int) (int, int) {
	for month := 0; month < 12; month++ {
		if day < daysInMonth[month] {
			return month, day + 1
		}
		day -= daysInMonth[month]
	}
	panic("unreachable")
}
