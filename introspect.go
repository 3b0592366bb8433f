package cronexpr

import "time"

// NextN returns the next n occurrences of the schedule strictly after
// start, in ascending order. Returns nil if schedule is nil or n <= 0.
//
// This is useful for:
//   - Calendar previews showing upcoming runs
//   - Capacity planning
//   - Debugging schedule expressions
//
// If a gap between occurrences exceeds the schedule's lookahead window,
// NextN returns the occurrences found so far together with the
// ErrNoOccurrence failure.
//
// Example:
//
//	sched, _ := cronexpr.Parse("0 9 * * MON-FRI")
//	times, err := cronexpr.NextN(sched, time.Now(), 10)
//	for _, t := range times {
//	    fmt.Println("Next run:", t)
//	}
func NextN(schedule *Schedule, start time.Time, n int) ([]time.Time, error) {
	if schedule == nil || n <= 0 {
		return nil, nil
	}

	times := make([]time.Time, 0, n)
	it := schedule.Iter(start)
	for range n {
		next, err := it.Next()
		if err != nil {
			return times, err
		}
		times = append(times, next)
	}
	return times, nil
}

// Between returns all occurrences of the schedule strictly after start
// and before end. The end is exclusive. Returns nil if schedule is nil.
//
// WARNING: for high-frequency schedules over long ranges this can return
// many results. Use BetweenWithLimit for bounded queries.
//
// Example:
//
//	sched, _ := cronexpr.Parse("0 9 * * *")
//	start := time.Now()
//	times, _ := cronexpr.Between(sched, start, start.AddDate(0, 1, 0))
func Between(schedule *Schedule, start, end time.Time) ([]time.Time, error) {
	return BetweenWithLimit(schedule, start, end, 0)
}

// BetweenWithLimit returns occurrences strictly after start and before
// end, up to limit. If limit is 0 or negative, no limit is applied. Returns nil if
// schedule is nil.
//
// A gap exceeding the lookahead window only fails the query when it falls
// inside the requested range; a schedule whose next occurrence lies beyond
// end simply yields no further results.
func BetweenWithLimit(schedule *Schedule, start, end time.Time, limit int) ([]time.Time, error) {
	if schedule == nil || !end.After(start) {
		return nil, nil
	}

	var times []time.Time
	it := schedule.Iter(start)
	for limit <= 0 || len(times) < limit {
		next, err := it.Next()
		if err != nil {
			// The exhausted window covers the rest of the requested
			// range: nothing in range was missed, so this is not a
			// failure of the query.
			lookahead := schedule.maxLookaheadDays
			if lookahead <= 0 {
				lookahead = DefaultMaxLookaheadDays
			}
			deadline := truncateMinute(it.cursor).Add(time.Duration(lookahead) * 24 * time.Hour)
			if !deadline.Before(end) {
				return times, nil
			}
			return times, err
		}
		if !next.Before(end) {
			return times, nil
		}
		times = append(times, next)
	}
	return times, nil
}
