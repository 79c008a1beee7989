// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package epochdays_test

import (
	"slices"
	"testing"

	"cloudeng.io/epochdays"
)

func TestCalendarDateRange(t *testing.T) {
	nd := newDate
	cdr := epochdays.NewCalendarDateRange(nd(2000, 2, 1), nd(2000, 1, 28))
	if got, want := cdr.From(), nd(2000, 1, 28); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cdr.To(), nd(2000, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cdr.Days(), int64(3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Collect(cdr.Dates()), []epochdays.CalendarDate{nd(2000, 1, 28), nd(2000, 1, 29), nd(2000, 2, 1)}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cdr.String(), "2000-02-28 - 2000-03-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cdr.Contains(nd(2000, 2, 0)) || cdr.Contains(nd(2000, 2, 2)) {
		t.Errorf("unexpected containment for %v", cdr)
	}

	multi := epochdays.NewCalendarDateRange(nd(1969, 0, 1), nd(2000, 11, 31))
	if got, want := multi.Days(), epochdays.ElapsedDays(2001, 0, 1)-epochdays.ElapsedDays(1969, 0, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n := int64(0)
	for range multi.Dates() {
		n++
	}
	if got, want := n, multi.Days(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	clipped := multi.OnOrAfter(nd(1970, 0, 1)).OnOrBefore(nd(1970, 0, 10))
	if got, want := clipped.Days(), int64(10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := multi.OnOrAfter(nd(1900, 0, 1)), multi; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, empty := range []epochdays.CalendarDateRange{
		multi.OnOrAfter(nd(2001, 0, 1)),
		multi.OnOrBefore(nd(1968, 11, 31)),
	} {
		if !empty.Empty() || empty.Days() != 0 {
			t.Errorf("expected an empty range: %v", empty)
		}
		if got := slices.Collect(empty.Dates()); len(got) != 0 {
			t.Errorf("got %v, want no dates", got)
		}
		if got, want := empty.String(), "(empty)"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
