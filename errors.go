package cronexpr

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is returned when a cron expression cannot be parsed:
// wrong field count, malformed syntax, out-of-range values, inverted ranges,
// non-positive steps, or unrecognized month/weekday names. Every parse
// failure wraps this sentinel, so callers can branch with errors.Is without
// matching message text.
var ErrInvalidExpression = errors.New("invalid cron expression")

// ErrNoOccurrence is returned when a forward search exhausts its lookahead
// window without finding a matching minute. It signals a schedule that is
// unsatisfiable within the window (for example day-of-month 31 restricted to
// February), not malformed input.
var ErrNoOccurrence = errors.New("no matching time within lookahead window")

// ErrNaiveInstant is returned when an evaluation method is given the zero
// time.Time. A zero instant means the caller never constructed a real,
// zoned point in time; the engine refuses to guess a timezone for it.
var ErrNaiveInstant = errors.New("instant is the zero time")

// ErrNilSchedule is returned when an evaluation method is called on a nil
// *Schedule.
var ErrNilSchedule = errors.New("schedule is nil")

// FieldKind identifies one of the five cron fields, used to locate parse
// errors. FieldExpression marks errors about the expression as a whole,
// such as a wrong field count.
type FieldKind int

// Field kinds in expression order.
const (
	FieldExpression FieldKind = iota - 1
	FieldMinute
	FieldHour
	FieldDom
	FieldMonth
	FieldDow
)

var fieldNames = [...]string{"minute", "hour", "day-of-month", "month", "day-of-week"}

func (f FieldKind) String() string {
	if f < FieldMinute || f > FieldDow {
		return "expression"
	}
	return fieldNames[f]
}

// ParseError describes a single parse failure. It records which field was
// being parsed and the offending token, so callers can report precise
// errors without dissecting the message string. ParseError unwraps to
// ErrInvalidExpression.
type ParseError struct {
	// Field is the cron field that failed to parse, or FieldExpression
	// for errors about the expression as a whole.
	Field FieldKind
	// Token is the raw token that caused the failure.
	Token string
	// Reason is a short human-readable description of the failure.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == FieldExpression {
		return fmt.Sprintf("invalid cron expression %q: %s", e.Token, e.Reason)
	}
	return fmt.Sprintf("invalid cron expression: %s field: %s: %q", e.Field, e.Reason, e.Token)
}

func (e *ParseError) Unwrap() error { return ErrInvalidExpression }

// parseError builds a ParseError for the given field and token.
func parseError(field FieldKind, token, reason string) *ParseError {
	return &ParseError{Field: field, Token: token, Reason: reason}
}
