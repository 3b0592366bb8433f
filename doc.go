/*
Package cronexpr implements a standard five-field cron expression engine:
parsing expressions into fully expanded schedules, testing instants against
them, and computing upcoming occurrences.

# Installation

To download the package, run:

	go get github.com/netresearch/go-cronexpr

Import it in your program as:

	import "github.com/netresearch/go-cronexpr"

It requires Go 1.25 or later.

# Usage

Parse an expression once, then evaluate it as often as needed. Schedules
are immutable and safe to share between goroutines.

	sched, err := cronexpr.Parse("*\/15 9-17 * * MON-FRI")
	if err != nil {
	    log.Fatal(err)
	}

	ok, _ := sched.Matches(time.Now())          // does this minute match?
	next, _ := sched.Next(time.Now())           // first match after now
	runs, _ := cronexpr.NextN(sched, time.Now(), 5) // the five after that

	// Walk occurrences with an explicit cursor; the sequence is infinite,
	// so the consumer decides when to stop.
	it := sched.Iter(time.Now())
	for range 10 {
	    run, err := it.Next()
	    if err != nil {
	        break // gap exceeded the lookahead window
	    }
	    fmt.Println(run)
	}

# CRON Expression Format

A cron expression represents a set of times, using 5 space-separated fields.

	Field name   | Mandatory? | Allowed values  | Allowed special characters
	----------   | ---------- | --------------  | --------------------------
	Minutes      | Yes        | 0-59            | * / , -
	Hours        | Yes        | 0-23            | * / , -
	Day of month | Yes        | 1-31            | * / , -
	Month        | Yes        | 1-12 or JAN-DEC | * / , -
	Day of week  | Yes        | 0-7 or SUN-SAT  | * / , -

Month and Day-of-week field values are case insensitive: "SUN", "Sun", and
"sun" are equally accepted, as are full names such as "sunday". In the
day-of-week field both 0 and 7 denote Sunday.

The specific interpretation of the format is based on the Cron Wikipedia
page: https://en.wikipedia.org/wiki/Cron

# Special Characters

Asterisk ( * )

The asterisk indicates that the cron expression will match for all values
of the field; e.g., using an asterisk in the 4th field (month) would
indicate every month.

Slash ( / )

Slashes are used to describe increments of ranges. For example 3-59/15 in
the 1st field (minutes) would indicate the 3rd minute of the hour and every
15 minutes thereafter. The form "*\/..." is equivalent to the form
"first-last/...", that is, an increment over the largest possible range of
the field. A step requires a range: "5/15" is rejected. Ranges do not wrap
around.

Comma ( , )

Commas are used to separate items of a list. For example, using
"MON,WED,FRI" in the 5th field (day of week) would mean Mondays, Wednesdays
and Fridays.

Hyphen ( - )

Hyphens are used to define ranges. For example, 9-17 would indicate every
hour between 9am and 5pm inclusive.

# Day-of-month and Day-of-week

The two day fields combine with traditional cron semantics: when both are
restricted, an instant matches if either field accepts its day. "0 12 15 *
MON" fires at noon on the 15th and at noon on Mondays. When exactly one of
the two is restricted, only that field is consulted. This OR rule is the
classic cron quirk and is preserved deliberately.

# Time Zones

The engine never converts or assumes time zones. Every evaluation reads the
wall-clock fields of the instant it is given, in that instant's own
location; the result of Next carries the same location as its start. The
zero time.Time is rejected with ErrNaiveInstant rather than interpreted in
a default zone.

# Bounded Search

Computing the next occurrence is a forward search over the calendar, and
some expressions ("0 0 31 2 *") never match. Every search is therefore
bounded by a lookahead window, DefaultMaxLookaheadDays unless changed with
Parser.WithMaxLookahead, and fails with ErrNoOccurrence when the window is
exhausted.

# Errors

All failures are reported through three sentinels usable with errors.Is:
ErrInvalidExpression for parse failures (the concrete error is a
*ParseError carrying the failing field and token), ErrNaiveInstant for
zero-time instants, and ErrNoOccurrence for exhausted searches. The engine
never logs and never retries.
*/
package cronexpr
