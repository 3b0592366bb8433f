package cronexpr

import "time"

// Iterator walks the occurrence sequence of a Schedule. The sequence is
// logically infinite: any satisfiable schedule repeats forever, so the
// caller decides when to stop pulling. Each call to Schedule.Iter creates
// an independent cursor; advancing one never affects another, even when
// both were created from the same schedule and start time.
//
// Iterator is not safe for concurrent use by multiple goroutines; create
// one per consumer instead.
type Iterator struct {
	schedule  *Schedule
	cursor    time.Time
	inclusive bool // whether the first element may equal the start
	started   bool
}

// Iter returns an iterator over the instants strictly after start that
// satisfy the schedule, in ascending order.
//
// Example:
//
//	it := sched.Iter(time.Now())
//	for range 5 {
//	    run, err := it.Next()
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(run)
//	}
func (s *Schedule) Iter(start time.Time) *Iterator {
	return &Iterator{schedule: s, cursor: start}
}

// IterInclusive is like Iter but the first element may be start itself,
// truncated to the minute, when start already satisfies the schedule.
func (s *Schedule) IterInclusive(start time.Time) *Iterator {
	return &Iterator{schedule: s, cursor: start, inclusive: true}
}

// Next advances the cursor and returns the next matching instant. When the
// gap to the next occurrence exceeds the schedule's lookahead window, Next
// returns an error wrapping ErrNoOccurrence, the same failure
// Schedule.Next reports; the cursor is left unchanged, so a caller that
// extends the window via a freshly parsed schedule can resume.
func (it *Iterator) Next() (time.Time, error) {
	inclusive := it.inclusive && !it.started
	next, err := it.schedule.next(it.cursor, inclusive)
	if err != nil {
		return time.Time{}, err
	}
	it.cursor = next
	it.started = true
	return next, nil
}
