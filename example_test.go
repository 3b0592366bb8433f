package cronexpr_test

import (
	"errors"
	"fmt"
	"time"

	cronexpr "github.com/netresearch/go-cronexpr"
)

func ExampleParse() {
	sched, err := cronexpr.Parse("*/15 0-12/6 1,15 1-3 MON-FRI")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sched.Minute)
	fmt.Println(sched.Hour)
	fmt.Println(sched.Dom)
	fmt.Println(sched.Month)
	fmt.Println(sched.Dow)
	// Output:
	// [0 15 30 45]
	// [0 6 12]
	// [1 15]
	// [1 2 3]
	// [1 2 3 4 5]
}

func ExampleParse_invalid() {
	_, err := cronexpr.Parse("0 0 * * MONDAYS")
	fmt.Println(errors.Is(err, cronexpr.ErrInvalidExpression))

	var parseErr *cronexpr.ParseError
	if errors.As(err, &parseErr) {
		fmt.Println(parseErr.Field, parseErr.Token)
	}
	// Output:
	// true
	// day-of-week MONDAYS
}

func ExampleSchedule_Matches() {
	// 2025-01-13 is a Monday. Day-of-month 15 does not match, but the
	// restricted day fields combine with OR, so the weekday does.
	when := time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC)
	ok, _ := cronexpr.MustParse("0 12 15 * 1").Matches(when)
	fmt.Println(ok)
	// Output:
	// true
}

func ExampleSchedule_Next() {
	sched := cronexpr.MustParse("30 6 * * *")
	next, err := sched.Next(time.Date(2025, 4, 10, 7, 0, 0, 0, time.UTC))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(next.Format(time.RFC3339))
	// Output:
	// 2025-04-11T06:30:00Z
}

func ExampleSchedule_Iter() {
	sched := cronexpr.MustParse("0 */6 * * *")
	it := sched.Iter(time.Date(2025, 4, 10, 1, 0, 0, 0, time.UTC))
	for range 3 {
		next, err := it.Next()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(next.Format(time.RFC3339))
	}
	// Output:
	// 2025-04-10T06:00:00Z
	// 2025-04-10T12:00:00Z
	// 2025-04-10T18:00:00Z
}

func ExampleNextN() {
	sched := cronexpr.MustParse("0 9 * * MON-FRI")
	times, err := cronexpr.NextN(sched, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC), 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, t := range times {
		fmt.Println(t.Format("Mon 2006-01-02 15:04"))
	}
	// Output:
	// Fri 2025-01-10 09:00
	// Mon 2025-01-13 09:00
	// Tue 2025-01-14 09:00
}

func ExampleValidate() {
	fmt.Println(cronexpr.Validate("0 9 * * MON-FRI"))
	fmt.Println(cronexpr.Validate("0 9 * * MON-FRY") != nil)
	// Output:
	// <nil>
	// true
}
