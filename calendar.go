// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epochdays

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int64, month int) int {
	switch month {
	case 1:
		return DaysInFeb(year)
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar. The rule is applied to all years, including year 0
// and negative years.
func IsLeap(year int64) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int64) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int64) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given 0-based month
// (0=January) for the given year. The month must be in the range 0-11.
func DaysInMonth(year int64, month int) int {
	return daysInMonthForYear(year)[month]
}

func daysInMonthForYear(year int64) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

func dayOfYearForYear(year int64) []int {
	if IsLeap(year) {
		return dayOfYearLeap
	}
	return dayOfYear
}

// DayOfYear returns the 1-based day of the year, 1-365 for non-leap years
// and 1-366 for leap years, for a 0-based month and 1-based day. The month
// must be in the range 0-11, use ElapsedDays for months outside of that
// range. Days outside of the month are not clamped, so day 0 refers to the
// last day of the previous month and may yield 0 or a negative value for
// January.
func DayOfYear(year int64, month, day int) int {
	return dayOfYearForYear(year)[month] + day
}
