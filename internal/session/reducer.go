// Package session drives a CoachingSession through the phase graph one event at a time.
package session

import (
	"strings"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/logger"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/phases"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// Reducer applies events to sessions. It holds no session state and does no
// locking; callers serialize Reduce calls per session.
type Reducer struct {
	machine *phases.Machine
	log     *logger.Logger
}

// NewReducer binds a reducer to a validated machine. A nil logger discards output.
func NewReducer(machine *phases.Machine, log *logger.Logger) *Reducer {
	return &Reducer{machine: machine, log: logger.OrNop(log)}
}

// Machine returns the phase graph the reducer runs on
func (r *Reducer) Machine() *phases.Machine {
	return r.machine
}

// Start returns a new session sitting in the initial phase
func (r *Reducer) Start(id string) types.CoachingSession {
	initial := r.machine.Initial().ID
	return types.CoachingSession{
		ID:                id,
		CurrentPhaseID:    initial,
		CompletedPhaseIDs: []string{},
		ProgressPercent:   r.machine.Progress(nil),
	}
}

// Reduce returns the session that results from applying ev to s. s itself is
// never modified. Unknown event types and sessions sitting in an unknown
// phase are logged and returned unchanged.
func (r *Reducer) Reduce(s types.CoachingSession, ev types.Event) types.CoachingSession {
	if !ev.Type.Valid() {
		r.log.Warn("ignoring unknown session event", "session_id", s.ID, "event_type", string(ev.Type))
		return s
	}
	phase, ok := r.machine.Phase(s.CurrentPhaseID)
	if !ok {
		r.log.Warn("session is in an unknown phase", "session_id", s.ID, "phase_id", s.CurrentPhaseID)
		return s
	}

	next := s.Clone()
	for _, item := range ev.Captures {
		if !next.CapturedData.Record(item.Field, strings.TrimSpace(item.Value)) {
			r.log.Warn("ignoring capture for unknown field", "session_id", s.ID, "field", string(item.Field))
		}
	}

	if ev.Type == types.EventQuestionSent {
		next.QuestionsAsked++
	}

	in := phases.NewInput(ev.Type, ev.Text, &next.CapturedData)
	if ev.Type == types.EventAnswerReceived {
		r.autoCapture(&next, phase, in)
	}

	if t, fired := r.machine.Next(phase.ID, in, next.QuestionsAsked); fired {
		if !next.HasCompleted(phase.ID) {
			next.CompletedPhaseIDs = append(next.CompletedPhaseIDs, phase.ID)
		}
		next.CurrentPhaseID = t.To
		r.log.Debug("phase transition",
			"session_id", s.ID,
			"from", phase.ID,
			"to", t.To,
			"event_type", string(ev.Type),
		)
	}
	if next.CompletedPhaseIDs == nil {
		next.CompletedPhaseIDs = []string{}
	}

	next.ProgressPercent = r.machine.Progress(next.CompletedPhaseIDs)
	return next
}

// autoCapture stores a stakeholder answer in the phase's capture field when
// the answer is not short and carries one of the required entities.
func (r *Reducer) autoCapture(s *types.CoachingSession, phase phases.Phase, in phases.Input) {
	rule := phase.Capture
	if rule == nil || in.Entities.Has(phases.EntityShortAnswer) {
		return
	}
	if len(rule.When) > 0 && !in.Entities.HasAny(rule.When) {
		return
	}
	s.CapturedData.Record(rule.Field, strings.TrimSpace(in.Text))
}

// Step records what one event did during Replay
type Step struct {
	Event        types.Event `json:"event"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	Transitioned bool        `json:"transitioned"`
	// ExitReady reports whether the exit conditions of To hold after the event
	ExitReady    bool        `json:"exit_ready"`
	Progress     float64     `json:"progress_percent"`
}

// Replay folds events over s and reports each step
func (r *Reducer) Replay(s types.CoachingSession, events []types.Event) (types.CoachingSession, []Step) {
	steps := make([]Step, 0, len(events))
	for _, ev := range events {
		from := s.CurrentPhaseID
		s = r.Reduce(s, ev)
		steps = append(steps, Step{
			Event:        ev,
			From:         from,
			To:           s.CurrentPhaseID,
			Transitioned: from != s.CurrentPhaseID,
			ExitReady:    r.machine.ExitReady(s.CurrentPhaseID, phases.NewInput(ev.Type, ev.Text, &s.CapturedData)),
			Progress:     s.ProgressPercent,
		})
	}
	return s, steps
}
