//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Validate validates the MeetingRecord using the validator.
func (m *MeetingRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// Validate validates the Event using the validator.
func (e *Event) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// Validate validates the StagePack using the validator.
func (s *StagePack) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
