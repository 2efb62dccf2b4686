// Package coverage maps question cards and learner turns onto a stage's must-cover keys.
package coverage

import "fmt"

// ConfigError reports stage/card configuration that would corrupt coverage accounting
type ConfigError struct {
	Message string
	CardID  string
	Key     string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("coverage config error: %s", e.Message)
	if e.CardID != "" {
		msg += fmt.Sprintf(" (card %s", e.CardID)
		if e.Key != "" {
			msg += fmt.Sprintf(", key %s", e.Key)
		}
		msg += ")"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
