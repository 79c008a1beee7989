// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/epochdays"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// DateSpec represents a single date in a batch config file, the month
// is 0-based and the day 1-based as per epochdays.ElapsedDays.
type DateSpec struct {
	Label string `yaml:"label"`
	Year  *int64 `yaml:"year"`
	Month int64  `yaml:"month"`
	Day   *int64 `yaml:"day"`
}

// BatchConfig represents a batch config file.
type BatchConfig struct {
	Dates []DateSpec `yaml:"dates"`
}

// date must only be called for a DateSpec that passes validate.
func (ds DateSpec) date() epochdays.CalendarDate {
	return epochdays.CalendarDate{Year: *ds.Year, Month: int(ds.Month), Day: int(*ds.Day)}
}

func (ds DateSpec) validate(i int) error {
	if ds.Year == nil {
		return fmt.Errorf("entry %v (%q): missing year", i, ds.Label)
	}
	if ds.Day == nil {
		return fmt.Errorf("entry %v (%q): missing day", i, ds.Label)
	}
	return nil
}

// Validate returns an error for every entry that is missing a year or day.
func (bc BatchConfig) Validate() error {
	var errs errors.M
	for i, ds := range bc.Dates {
		errs.Append(ds.validate(i))
	}
	return errs.Err()
}

// chronological returns the dates in the config, normalized if requested,
// in chronological order along with the label for each date.
func (bc BatchConfig) chronological(normalized bool) ([]epochdays.CalendarDate, []string, error) {
	if err := bc.Validate(); err != nil {
		return nil, nil, err
	}
	h := heap.NewMinMax(heap.WithSliceCap[int64, int](len(bc.Dates) + 1))
	for i, ds := range bc.Dates {
		h.Push(ds.date().ElapsedDays(), i)
	}
	dates := make([]epochdays.CalendarDate, 0, len(bc.Dates))
	labels := make([]string, 0, len(bc.Dates))
	for h.Len() > 0 {
		days, i := h.PopMin()
		cd := bc.Dates[i].date()
		if normalized {
			cd = epochdays.DateFromElapsedDays(days)
		}
		dates = append(dates, cd)
		labels = append(labels, bc.Dates[i].Label)
	}
	return dates, labels, nil
}

func (c *epochCmds) batch(ctx context.Context, values any, args []string) error {
	fv := values.(*batchFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	var cfg BatchConfig
	if err := cmdyaml.ParseConfigFileStrict(ctx, args[0], &cfg); err != nil {
		return err
	}
	dates, labels, err := cfg.chronological(fv.Normalized)
	if err != nil {
		return fmt.Errorf("%v: %w", args[0], err)
	}
	ctxlog.Logger(ctx).Debug("batch", "file", args[0], "dates", len(dates))
	for i, cd := range dates {
		if len(labels[i]) > 0 {
			fmt.Fprintf(c.out, "%v\t%v\t%v\n", cd, cd.ElapsedDays(), labels[i])
			continue
		}
		fmt.Fprintf(c.out, "%v\t%v\n", cd, cd.ElapsedDays())
	}
	return nil
}
