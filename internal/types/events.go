//nolint:revive // types is a standard Go package name pattern
package types

// EventType is the kind of input fed to the session reducer
type EventType string

const (
	// EventQuestionSent is a question sent by the learner
	EventQuestionSent EventType = "question_sent"
	// EventAnswerReceived is an answer given by the stakeholder
	EventAnswerReceived EventType = "answer_received"
	// EventAdvance is an explicit "next" request from the learner
	EventAdvance EventType = "advance"
)

// Valid reports whether t is a supported event type
func (t EventType) Valid() bool {
	switch t {
	case EventQuestionSent, EventAnswerReceived, EventAdvance:
		return true
	}
	return false
}

// CaptureItem is an explicit data mutation carried by an event
type CaptureItem struct {
	Field CaptureField `json:"field" yaml:"field" validate:"required"`
	Value string       `json:"value" yaml:"value" validate:"required"`
}

// Event is a single input to the session reducer
type Event struct {
	Type     EventType     `json:"type" yaml:"type" validate:"required"`
	Text     string        `json:"text,omitempty" yaml:"text,omitempty"`
	Captures []CaptureItem `json:"captures,omitempty" yaml:"captures,omitempty" validate:"dive"`
}
