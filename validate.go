package cronexpr

// Validate checks a cron expression without building a schedule for later
// use. It returns nil if the expression is valid, or the *ParseError
// describing the problem.
//
// Example:
//
//	if err := cronexpr.Validate(userInput); err != nil {
//	    return fmt.Errorf("invalid schedule: %w", err)
//	}
func Validate(expression string) error {
	_, err := Parse(expression)
	return err
}

// ValidateAll checks multiple cron expressions at once. It returns a map
// of index to error for any invalid expressions; the map is empty (not
// nil) when all are valid.
//
// This is useful for:
//   - Checking configuration files before deployment
//   - Bulk validation with per-entry error reporting
//
// Example:
//
//	errs := cronexpr.ValidateAll(specs)
//	for i, err := range errs {
//	    log.Printf("spec %d: %v", i, err)
//	}
func ValidateAll(expressions []string) map[int]error {
	errs := make(map[int]error)
	for i, expression := range expressions {
		if err := Validate(expression); err != nil {
			errs[i] = err
		}
	}
	return errs
}
