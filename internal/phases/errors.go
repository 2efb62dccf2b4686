package phases

import "fmt"

// GraphError reports an invalid phase graph
type GraphError struct {
	Message string
	PhaseID string
	Cause   error
}

func (e *GraphError) Error() string {
	msg := "phase graph error"
	if e.PhaseID != "" {
		msg += fmt.Sprintf(" in phase %s", e.PhaseID)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *GraphError) Unwrap() error {
	return e.Cause
}
