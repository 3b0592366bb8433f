package cronexpr

import (
	"fmt"
	"slices"
	"time"
)

// DefaultMaxLookaheadDays is the default bound on forward searches. Some
// field combinations (day-of-month 31 restricted to February, for example)
// never occur; the bound turns what would be an infinite search into
// ErrNoOccurrence.
const DefaultMaxLookaheadDays = 366

// daysPerWeek is the number of canonical day-of-week values (0-6).
const daysPerWeek = 7

// Schedule is the fully expanded form of a five-field cron expression.
// Each field holds the concrete values the expression allows, sorted
// ascending and deduplicated; day-of-week is canonicalized to 0-6 with
// Sunday as 0.
//
// Schedules are immutable once constructed by Parse and safe for
// concurrent use. The exported fields exist for inspection; callers must
// not modify them.
type Schedule struct {
	Minute []int // 0-59
	Hour   []int // 0-23
	Dom    []int // 1-31, day of month
	Month  []int // 1-12
	Dow    []int // 0-6, day of week, Sunday = 0

	maxLookaheadDays int
}

// DomIsWildcard reports whether the day-of-month field admits every day,
// i.e. the expression used "*" or an equivalent full range. The
// distinction matters for day matching: a wildcard day-of-month defers
// entirely to the day-of-week field.
func (s *Schedule) DomIsWildcard() bool {
	return len(s.Dom) == domBounds.max-domBounds.min+1
}

// DowIsWildcard reports whether the day-of-week field admits every
// weekday.
func (s *Schedule) DowIsWildcard() bool {
	return len(s.Dow) == daysPerWeek
}

// Matches reports whether the instant satisfies the schedule. The check is
// at minute resolution; seconds and finer are ignored. Fields are read in
// the instant's own location, which is never converted or defaulted.
//
// Day-of-month and day-of-week follow traditional cron semantics: when
// both fields are restricted, the instant matches if either field accepts
// its day (OR, not AND); when exactly one is restricted, only that field
// is consulted.
//
// Matches returns ErrNilSchedule on a nil receiver and ErrNaiveInstant if
// t is the zero time.
func (s *Schedule) Matches(t time.Time) (bool, error) {
	if s == nil {
		return false, ErrNilSchedule
	}
	if t.IsZero() {
		return false, ErrNaiveInstant
	}
	return s.matchesTime(t), nil
}

// MatchString parses the expression and reports whether the instant
// satisfies it. A parse failure propagates as the *ParseError from Parse.
//
// Example:
//
//	ok, err := cronexpr.MatchString("0 12 15 * 1", when)
func MatchString(expression string, t time.Time) (bool, error) {
	schedule, err := Parse(expression)
	if err != nil {
		return false, err
	}
	return schedule.Matches(t)
}

// matchesTime is the unchecked matching core shared by Matches and the
// forward search.
func (s *Schedule) matchesTime(t time.Time) bool {
	if !slices.Contains(s.Minute, t.Minute()) {
		return false
	}
	if !slices.Contains(s.Hour, t.Hour()) {
		return false
	}
	if !slices.Contains(s.Month, int(t.Month())) {
		return false
	}
	return s.dayMatches(t)
}

// dayMatches applies the cron day rule. time.Weekday already numbers
// Sunday as 0, matching the canonical cron convention.
func (s *Schedule) dayMatches(t time.Time) bool {
	domMatch := slices.Contains(s.Dom, t.Day())
	dowMatch := slices.Contains(s.Dow, int(t.Weekday()))

	if s.DomIsWildcard() || s.DowIsWildcard() {
		return domMatch && dowMatch
	}
	return domMatch || dowMatch
}

// Next returns the first instant strictly after start that satisfies the
// schedule, at minute resolution and in start's location. It returns an
// error wrapping ErrNoOccurrence if no match exists within the schedule's
// lookahead window (DefaultMaxLookaheadDays unless configured via
// Parser.WithMaxLookahead).
//
// Example:
//
//	sched := cronexpr.MustParse("30 6 * * *")
//	run, err := sched.Next(time.Now())
func (s *Schedule) Next(start time.Time) (time.Time, error) {
	return s.next(start, false)
}

// NextInclusive is like Next but returns start itself, truncated to the
// minute, when start already satisfies the schedule.
func (s *Schedule) NextInclusive(start time.Time) (time.Time, error) {
	return s.next(start, true)
}

// next performs a bounded forward search at minute granularity. Days on
// which the month or day rule cannot be satisfied are skipped whole, since
// those fields are constant across a wall-clock day; within a candidate
// day the search steps minute by minute. The results are identical to a
// pure minute-by-minute scan.
func (s *Schedule) next(start time.Time, inclusive bool) (time.Time, error) {
	if s == nil {
		return time.Time{}, ErrNilSchedule
	}
	if start.IsZero() {
		return time.Time{}, ErrNaiveInstant
	}

	lookahead := s.maxLookaheadDays
	if lookahead <= 0 {
		lookahead = DefaultMaxLookaheadDays
	}

	t := truncateMinute(start)
	deadline := t.Add(time.Duration(lookahead) * 24 * time.Hour)
	if !inclusive {
		t = t.Add(time.Minute)
	}

	for !t.After(deadline) {
		if !slices.Contains(s.Month, int(t.Month())) || !s.dayMatches(t) {
			next := startOfNextDay(t)
			// DST transitions can normalize the next midnight to an
			// unexpected hour; guarantee forward progress regardless.
			if !next.After(t) {
				next = t.Add(time.Minute)
			}
			t = next
			continue
		}
		if s.matchesTime(t) {
			return t, nil
		}
		t = t.Add(time.Minute)
	}

	return time.Time{}, fmt.Errorf("%w: %d days from %s",
		ErrNoOccurrence, lookahead, start.Format(time.RFC3339))
}

// truncateMinute drops the seconds and sub-second components without
// leaving the instant's timeline or location.
func truncateMinute(t time.Time) time.Time {
	return t.Add(-(time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())))
}

// startOfNextDay returns the first instant of the next wall-clock day in
// t's location. time.Date normalizes days on which midnight does not
// exist (spring-forward transitions) to the first valid time.
func startOfNextDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
