// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epochdays

import (
	"fmt"
	"iter"
)

// CalendarDateRange represents an inclusive range of dates. It is stored
// as days elapsed since January 1, 1970 and hence may span any number of
// years. A range whose end precedes its start is empty.
type CalendarDateRange struct {
	from, to int64
}

var emptyRange = CalendarDateRange{from: 1, to: 0}

// NewCalendarDateRange returns a CalendarDateRange for the from/to dates.
// If the from date is later than the to date then they are swapped.
// Both dates are normalized.
func NewCalendarDateRange(from, to CalendarDate) CalendarDateRange {
	f, t := from.ElapsedDays(), to.ElapsedDays()
	if f > t {
		f, t = t, f
	}
	return CalendarDateRange{from: f, to: t}
}

// Empty returns true if the range contains no dates.
func (cdr CalendarDateRange) Empty() bool {
	return cdr.to < cdr.from
}

// From returns the first date in the range.
func (cdr CalendarDateRange) From() CalendarDate {
	return DateFromElapsedDays(cdr.from)
}

// To returns the last date in the range.
func (cdr CalendarDateRange) To() CalendarDate {
	return DateFromElapsedDays(cdr.to)
}

// Days returns the number of days in the range, including both the from
// and to dates.
func (cdr CalendarDateRange) Days() int64 {
	if cdr.Empty() {
		return 0
	}
	return cdr.to - cdr.from + 1
}

// Contains returns true if the normalized date falls within the range.
func (cdr CalendarDateRange) Contains(cd CalendarDate) bool {
	days := cd.ElapsedDays()
	return days >= cdr.from && days <= cdr.to
}

// OnOrAfter returns a new range with the from date set to on
// or after the specified date.
func (cdr CalendarDateRange) OnOrAfter(start CalendarDate) CalendarDateRange {
	s := start.ElapsedDays()
	if cdr.from >= s {
		return cdr
	}
	if s > cdr.to {
		return emptyRange
	}
	return CalendarDateRange{from: s, to: cdr.to}
}

// OnOrBefore returns a new range with the to date set to on
// or before the specified date.
func (cdr CalendarDateRange) OnOrBefore(end CalendarDate) CalendarDateRange {
	e := end.ElapsedDays()
	if cdr.to <= e {
		return cdr
	}
	if e < cdr.from {
		return emptyRange
	}
	return CalendarDateRange{from: cdr.from, to: e}
}

func (cdr CalendarDateRange) String() string {
	if cdr.Empty() {
		return "(empty)"
	}
	return fmt.Sprintf("%s - %s", cdr.From(), cdr.To())
}

// Dates returns an iterator that yields each date in the range.
func (cdr CalendarDateRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		if cdr.Empty() {
			return
		}
		td := cdr.From()
		for days := cdr.from; days <= cdr.to; days++ {
			if !yield(td) {
				return
			}
			td = td.Tomorrow()
		}
	}
}
