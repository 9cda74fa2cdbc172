package path

// UnknownSubjectError indicates the subject argument was empty. A nonempty
// but unrecognized subject is accepted and served via neutral templates.
type UnknownSubjectError struct{}

func (e *UnknownSubjectError) Error() string {
	return "subject must not be empty"
}
