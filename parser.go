package cronexpr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// MaxExpressionLength is the maximum allowed length for a cron expression.
// This limit prevents resource exhaustion from extremely long inputs.
const MaxExpressionLength = 1024

// expressionFieldCount is the number of whitespace-separated fields in a
// standard cron expression.
const expressionFieldCount = 5

// sundayAlias is the alternate day-of-week value for Sunday. Both 0 and 7
// are accepted on input; schedules store the canonical 0.
const sundayAlias = 7

// bounds describes the acceptable values for one cron field, plus an
// optional map of names to values (months and weekdays).
type bounds struct {
	min, max int
	names    map[string]int
	field    FieldKind
}

// The bounds for each field. Day-of-week accepts 0-7 on input; 7 is
// canonicalized to 0 after expansion.
var (
	minuteBounds = bounds{0, 59, nil, FieldMinute}
	hourBounds   = bounds{0, 23, nil, FieldHour}
	domBounds    = bounds{1, 31, nil, FieldDom}
	monthBounds  = bounds{1, 12, map[string]int{
		"jan": 1, "january": 1,
		"feb": 2, "february": 2,
		"mar": 3, "march": 3,
		"apr": 4, "april": 4,
		"may": 5,
		"jun": 6, "june": 6,
		"jul": 7, "july": 7,
		"aug": 8, "august": 8,
		"sep": 9, "september": 9,
		"oct": 10, "october": 10,
		"nov": 11, "november": 11,
		"dec": 12, "december": 12,
	}, FieldMonth}
	dowBounds = bounds{0, sundayAlias, map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}, FieldDow}
)

// Parser parses five-field cron expressions into Schedules. The zero value
// is usable and equivalent to NewParser(). Parsers are values: the With*
// methods return modified copies, so a configured Parser can be shared
// freely between goroutines.
type Parser struct {
	maxLookaheadDays int
	cache            *sync.Map // optional cache: expression -> cacheEntry
}

// cacheEntry holds a cached parse result.
type cacheEntry struct {
	schedule *Schedule
	err      error
}

// NewParser creates a Parser whose schedules use the default lookahead
// window of DefaultMaxLookaheadDays.
func NewParser() Parser {
	return Parser{maxLookaheadDays: DefaultMaxLookaheadDays}
}

// WithMaxLookahead returns a new Parser whose schedules search at most the
// given number of days ahead in Next and Iter before giving up with
// ErrNoOccurrence. Values <= 0 restore the default.
//
// Use cases:
//   - Shorter windows for faster failure on unsatisfiable schedules
//   - Longer windows for rare combinations (e.g. "0 0 29 2 *")
//
// Example:
//
//	p := cronexpr.NewParser().WithMaxLookahead(30)
//	sched, _ := p.Parse("0 9 * * MON-FRI")
func (p Parser) WithMaxLookahead(days int) Parser {
	if days <= 0 {
		days = DefaultMaxLookaheadDays
	}
	p.maxLookaheadDays = days
	return p
}

// WithCache returns a new Parser with caching enabled for parsed schedules.
// Repeated calls to Parse with the same expression return the cached result
// instead of re-parsing.
//
// The cache is thread-safe and grows unbounded. For applications with many
// unique expressions, prefer a single shared Parser instance.
//
// Example:
//
//	p := cronexpr.NewParser().WithCache()
//	s1, _ := p.Parse("0 * * * *") // parsed
//	s2, _ := p.Parse("0 * * * *") // cached (same reference)
func (p Parser) WithCache() Parser {
	p.cache = &sync.Map{}
	return p
}

// Parse parses a standard five-field cron expression (minute, hour,
// day-of-month, month, day-of-week) and returns the expanded Schedule.
// On failure it returns a *ParseError wrapping ErrInvalidExpression,
// carrying the failing field and token.
//
// If caching is enabled via WithCache, repeated calls with the same
// expression return the cached result.
func (p Parser) Parse(expression string) (*Schedule, error) {
	if p.cache != nil {
		if cached, ok := p.cache.Load(expression); ok {
			if entry, ok := cached.(cacheEntry); ok {
				return entry.schedule, entry.err
			}
		}
	}

	schedule, err := p.parse(expression)

	if p.cache != nil {
		p.cache.Store(expression, cacheEntry{schedule: schedule, err: err})
	}

	return schedule, err
}

// parse is the internal parsing logic, called by Parse.
func (p Parser) parse(expression string) (*Schedule, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, parseError(FieldExpression, expression, "empty expression")
	}
	if len(expression) > MaxExpressionLength {
		return nil, parseError(FieldExpression, expression[:32],
			fmt.Sprintf("expression too long: %d > %d", len(expression), MaxExpressionLength))
	}

	fields := strings.Fields(expression)
	if len(fields) != expressionFieldCount {
		return nil, parseError(FieldExpression, expression,
			fmt.Sprintf("expected exactly %d fields, found %d", expressionFieldCount, len(fields)))
	}

	minute, err := getField(fields[0], minuteBounds)
	if err != nil {
		return nil, err
	}
	hour, err := getField(fields[1], hourBounds)
	if err != nil {
		return nil, err
	}
	dayOfMonth, err := getField(fields[2], domBounds)
	if err != nil {
		return nil, err
	}
	month, err := getField(fields[3], monthBounds)
	if err != nil {
		return nil, err
	}
	dayOfWeek, err := getField(fields[4], dowBounds)
	if err != nil {
		return nil, err
	}

	lookahead := p.maxLookaheadDays
	if lookahead <= 0 {
		lookahead = DefaultMaxLookaheadDays
	}

	return &Schedule{
		Minute:           minute,
		Hour:             hour,
		Dom:              dayOfMonth,
		Month:            month,
		Dow:              normalizeDow(dayOfWeek),
		maxLookaheadDays: lookahead,
	}, nil
}

var standardParser = NewParser()

// Parse parses a standard five-field cron expression using the default
// parser. See Parser.Parse for details.
//
// Example:
//
//	sched, err := cronexpr.Parse("*/15 9-17 * * MON-FRI")
func Parse(expression string) (*Schedule, error) {
	return standardParser.Parse(expression)
}

// MustParse is like Parse but panics if the expression is invalid. It
// follows the Go convention of Must* functions for expressions that are
// hardcoded constants, where failure indicates a programming error.
//
// Example:
//
//	var nightly = cronexpr.MustParse("0 3 * * *")
func MustParse(expression string) *Schedule {
	schedule, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return schedule
}

// getField expands a full cron field, a comma-separated list of range
// tokens, into a sorted, deduplicated slice of values.
func getField(field string, b bounds) ([]int, error) {
	var values []int
	for _, expr := range strings.Split(field, ",") {
		expanded, err := getRange(expr, b)
		if err != nil {
			return nil, err
		}
		values = append(values, expanded...)
	}
	slices.Sort(values)
	return slices.Compact(values), nil
}

// getRange expands a single range token:
//
//	"*" [ "/" step ] | value | value "-" value [ "/" step ]
//
// where value is an integer or, for months and weekdays, a name.
func getRange(expr string, b bounds) ([]int, error) {
	if expr == "" {
		return nil, parseError(b.field, expr, "empty value")
	}

	rangeAndStep := strings.Split(expr, "/")
	step := 1
	hasStep := false
	switch len(rangeAndStep) {
	case 1:
	case 2:
		var err error
		step, err = parseStep(rangeAndStep[1], b.field)
		if err != nil {
			return nil, err
		}
		hasStep = true
	default:
		return nil, parseError(b.field, expr, "too many slashes")
	}

	var start, end int
	switch low := rangeAndStep[0]; {
	case low == "*":
		start, end = b.min, b.max
	case strings.Contains(low, "-"):
		lowAndHigh := strings.Split(low, "-")
		if len(lowAndHigh) != 2 {
			return nil, parseError(b.field, expr, "too many hyphens")
		}
		var err error
		start, err = parseValue(lowAndHigh[0], b)
		if err != nil {
			return nil, err
		}
		end, err = parseValue(lowAndHigh[1], b)
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, parseError(b.field, expr,
				fmt.Sprintf("beginning of range (%d) beyond end of range (%d)", start, end))
		}
	default:
		value, err := parseValue(low, b)
		if err != nil {
			return nil, err
		}
		if hasStep {
			return nil, parseError(b.field, expr, "step not allowed on a single value")
		}
		return []int{value}, nil
	}

	values := make([]int, 0, (end-start)/step+1)
	for v := start; v <= end; v += step {
		values = append(values, v)
	}
	return values, nil
}

// parseValue resolves a single token to an integer, consulting the field's
// name map first so that month and weekday names work anywhere an integer
// is accepted, including range endpoints. Names are case-insensitive and
// may be the three-letter abbreviation or the full name.
func parseValue(token string, b bounds) (int, error) {
	if b.names != nil {
		if value, ok := b.names[strings.ToLower(token)]; ok {
			return value, nil
		}
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, parseError(b.field, token, "unrecognized value")
	}
	if value < b.min {
		return 0, parseError(b.field, token,
			fmt.Sprintf("value (%d) below minimum (%d)", value, b.min))
	}
	if value > b.max {
		return 0, parseError(b.field, token,
			fmt.Sprintf("value (%d) above maximum (%d)", value, b.max))
	}
	return value, nil
}

// parseStep parses and validates the step part of a range token.
func parseStep(token string, field FieldKind) (int, error) {
	step, err := strconv.Atoi(token)
	if err != nil {
		return 0, parseError(field, token, "unrecognized step")
	}
	if step <= 0 {
		return 0, parseError(field, token, fmt.Sprintf("step (%d) must be a positive number", step))
	}
	return step, nil
}

// normalizeDow canonicalizes the Sunday alias 7 to 0 so that "0 0 * * 0"
// and "0 0 * * 7" produce identical schedules. Input is sorted; output
// stays sorted and deduplicated.
func normalizeDow(values []int) []int {
	for i, v := range values {
		if v == sundayAlias {
			values[i] = 0
		}
	}
	slices.Sort(values)
	return slices.Compact(values)
}
