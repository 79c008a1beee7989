// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command epochdays computes the number of days between dates in the
// proleptic Gregorian calendar and January 1, 1970.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/epochdays"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: epochdays
summary: compute the number of days between dates and January 1, 1970
commands:
  - name: elapsed
    summary: |
      print the number of days between January 1, 1970 and the specified date.
      The month is 0-based and the day is 1-based, months and days outside of
      these ranges are normalized, eg. month 12 is January of the following year
      and day 0 is the last day of the previous month. Negative values are
      accepted as arguments, flags must precede them.
    arguments:
      - <year>
      - <month>
      - <day>
  - name: date
    summary: |
      print the date that is the specified number of days after (or before)
      January 1, 1970. Flags must precede a negative number of days.
    arguments:
      - <days>
  - name: batch
    summary: print the elapsed days for all of the dates listed in a YAML file in chronological order
    arguments:
      - <config-file>
`

type CommonFlags struct {
	cmdutil.LoggingFlags
}

type elapsedFlags struct {
	CommonFlags
}

type dateFlags struct {
	CommonFlags
	Weekday bool `subcmd:"weekday,false,also print the day of the week"`
}

type batchFlags struct {
	CommonFlags
	Normalized bool `subcmd:"normalized,true,print normalized dates rather than those specified in the config file"`
}

type epochCmds struct {
	out io.Writer
}

func newCommandSet(cmds *epochCmds) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("elapsed").MustRunnerAndFlags(cmds.elapsed,
		subcmd.MustRegisterFlagStruct(&elapsedFlags{}, nil, nil))
	cmdSet.Set("date").MustRunnerAndFlags(cmds.date,
		subcmd.MustRegisterFlagStruct(&dateFlags{}, nil, nil))
	cmdSet.Set("batch").MustRunnerAndFlags(cmds.batch,
		subcmd.MustRegisterFlagStruct(&batchFlags{}, nil, nil))
	return cmdSet
}

func main() {
	os.Args = integerArgs(os.Args)
	subcmd.Dispatch(context.Background(), newCommandSet(&epochCmds{out: os.Stdout}))
}

// valueFlags are the flags that take a separate value argument when not
// specified as -flag=value.
var valueFlags = map[string]bool{
	"log-level":  true,
	"log-file":   true,
	"log-format": true,
}

// integerArgs inserts a "--" ahead of a negative integer that would
// otherwise be parsed as a flag, ie. one that appears amongst the flags
// that follow the command name in args (program, command, flags...,
// arguments...). Flag parsing ends at the first positional argument so
// negative integers after it need no separator.
func integerArgs(args []string) []string {
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			return args
		}
		if _, err := strconv.ParseInt(a, 10, 64); err == nil {
			r := make([]string, 0, len(args)+1)
			r = append(r, args[:i]...)
			r = append(r, "--")
			return append(r, args[i:]...)
		}
		name := strings.TrimLeft(a, "-")
		if !strings.Contains(name, "=") && valueFlags[name] {
			i++
		}
	}
	return args
}

// withLogger returns a context carrying the logger configured by cf and
// a function to close it.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func parseInt64(name, val string) (int64, error) {
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q: %w", name, val, err)
	}
	return n, nil
}

func parseDateArgs(args []string) (year, month, day int64, err error) {
	if year, err = parseInt64("year", args[0]); err != nil {
		return
	}
	if month, err = parseInt64("month", args[1]); err != nil {
		return
	}
	day, err = parseInt64("day", args[2])
	return
}

func (c *epochCmds) elapsed(ctx context.Context, values any, args []string) error {
	fv := values.(*elapsedFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	year, month, day, err := parseDateArgs(args)
	if err != nil {
		return err
	}
	days := epochdays.ElapsedDays(year, month, day)
	ctxlog.Logger(ctx).Debug("elapsed", "year", year, "month", month, "day", day, "days", days)
	fmt.Fprintln(c.out, days)
	return nil
}

func (c *epochCmds) date(ctx context.Context, values any, args []string) error {
	fv := values.(*dateFlags)
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	days, err := parseInt64("days", args[0])
	if err != nil {
		return err
	}
	cd := epochdays.DateFromElapsedDays(days)
	ctxlog.Logger(ctx).Debug("date", "days", days, "date", cd.String())
	if fv.Weekday {
		fmt.Fprintf(c.out, "%v %v\n", cd, cd.Weekday())
		return nil
	}
	fmt.Fprintln(c.out, cd)
	return nil
}
