package content

import "fmt"

// LoadError reports a content bundle that could not be read, parsed or validated
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("content %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
