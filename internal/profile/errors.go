package profile

import "fmt"

// InvalidInputError indicates a required analysis argument was missing or
// malformed. Degenerate-but-valid inputs (empty history, empty performance)
// are not errors; they trigger documented defaults instead.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}
