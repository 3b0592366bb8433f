package cronexpr

import (
	"slices"
	"testing"
	"time"
)

// FuzzParse tests the parser against arbitrary input. It verifies that
// malformed input is rejected gracefully without panicking, and that every
// accepted expression satisfies the schedule invariants.
func FuzzParse(f *testing.F) {
	// Seed corpus with valid expressions
	f.Add("* * * * *")
	f.Add("0 0 1 1 *")
	f.Add("*/5 * * * *")
	f.Add("0 0 * * MON-FRI")
	f.Add("0 9-17 * * *")
	f.Add("0,30 * * * *")
	f.Add("0 0 1,15 * *")
	f.Add("*/15 0-12/6 1,15 1-3 MON-FRI")
	f.Add("0 0 * * 7")
	f.Add("30 6 * FEBRUARY sunday")

	// Edge cases
	f.Add("59 23 31 12 6")
	f.Add("0 0 1 1 0")
	f.Add("0-59 0-23 1-31 1-12 0-6")
	f.Add("*/1 */1 */1 */1 */1")
	f.Add("10-12/44 * * * *")

	// Invalid inputs that should not panic
	f.Add("")
	f.Add("    ")
	f.Add("invalid")
	f.Add("* * *")
	f.Add("60 * * * *")
	f.Add("-1 * * * *")
	f.Add("* 25 * * *")
	f.Add("* * 32 * *")
	f.Add("* * * 13 *")
	f.Add("* * * * 8")
	f.Add("*/0 * * * *")
	f.Add("5-3 * * * *")
	f.Add("5/15 * * * *")
	f.Add("1,,2 * * * *")

	f.Fuzz(func(t *testing.T, expression string) {
		sched, err := Parse(expression)
		if err != nil {
			if sched != nil {
				t.Fatalf("%q: non-nil schedule alongside error %v", expression, err)
			}
			return
		}

		fields := []struct {
			name     string
			values   []int
			min, max int
		}{
			{"minute", sched.Minute, 0, 59},
			{"hour", sched.Hour, 0, 23},
			{"day-of-month", sched.Dom, 1, 31},
			{"month", sched.Month, 1, 12},
			{"day-of-week", sched.Dow, 0, 6},
		}
		for _, field := range fields {
			if len(field.values) == 0 {
				t.Fatalf("%q: empty %s field", expression, field.name)
			}
			if !slices.IsSorted(field.values) {
				t.Fatalf("%q: unsorted %s field %v", expression, field.name, field.values)
			}
			if deduped := slices.Compact(slices.Clone(field.values)); len(deduped) != len(field.values) {
				t.Fatalf("%q: duplicate values in %s field %v", expression, field.name, field.values)
			}
			if field.values[0] < field.min || field.values[len(field.values)-1] > field.max {
				t.Fatalf("%q: %s field out of range %v", expression, field.name, field.values)
			}
		}

		// Matching an arbitrary valid instant must not panic, and the
		// instant Next returns must itself match.
		when := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
		if _, err := sched.Matches(when); err != nil {
			t.Fatalf("%q: Matches failed: %v", expression, err)
		}
		next, err := sched.Next(when)
		if err != nil {
			return // unsatisfiable within the window is a valid outcome
		}
		if !next.After(when.Truncate(time.Minute)) {
			t.Fatalf("%q: Next returned %v, not after %v", expression, next, when)
		}
		if ok, _ := sched.Matches(next); !ok {
			t.Fatalf("%q: Next returned non-matching instant %v", expression, next)
		}
	})
}
