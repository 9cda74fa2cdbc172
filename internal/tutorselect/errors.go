package tutorselect

import "fmt"

// NoTutorAvailableError indicates the tutor catalog is empty or no tutor
// scored above zero for the request. This is an integration problem, never
// a learner-facing failure.
type NoTutorAvailableError struct {
	Reason string
}

func (e *NoTutorAvailableError) Error() string {
	return fmt.Sprintf("no tutor available: %s", e.Reason)
}
