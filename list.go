// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epochdays

import (
	"strings"

	"cloudeng.io/algo/container/heap"
)

// CalendarDateList is a list of CalendarDates.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains a date that is equivalent to
// d once both are normalized.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	days := d.ElapsedDays()
	for _, cd := range cdl {
		if cd.ElapsedDays() == days {
			return true
		}
	}
	return false
}

func (cdl CalendarDateList) minMax() *heap.MinMax[int64, CalendarDate] {
	h := heap.NewMinMax(heap.WithSliceCap[int64, CalendarDate](len(cdl) + 1))
	for _, cd := range cdl {
		h.Push(cd.ElapsedDays(), cd)
	}
	return h
}

// Chronological returns a new list containing the normalized dates in
// cdl ordered from earliest to latest. The relative order of equivalent
// dates is not defined.
func (cdl CalendarDateList) Chronological() CalendarDateList {
	h := cdl.minMax()
	sorted := make(CalendarDateList, 0, len(cdl))
	for h.Len() > 0 {
		days, _ := h.PopMin()
		sorted = append(sorted, DateFromElapsedDays(days))
	}
	return sorted
}

// Span returns the earliest and latest normalized dates in cdl, ok is false
// for an empty list.
func (cdl CalendarDateList) Span() (first, last CalendarDate, ok bool) {
	if len(cdl) == 0 {
		return
	}
	h := cdl.minMax()
	minDays, _ := h.PopMin()
	maxDays := minDays
	if h.Len() > 0 {
		maxDays, _ = h.PopMax()
	}
	return DateFromElapsedDays(minDays), DateFromElapsedDays(maxDays), true
}
