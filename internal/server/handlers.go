package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/session"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// StageSummary describes one stage available for scoring
type StageSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MustCover []string `json:"must_cover"`
	Cards     int      `json:"cards"`
}

// CreateSessionRequest is the body of POST /v1/sessions. An empty ID is
// replaced with a generated UUID.
type CreateSessionRequest struct {
	ID string `json:"id,omitempty" validate:"omitempty,max=128,printascii"`
}

// EventsRequest is the body of the session event endpoints
type EventsRequest struct {
	Events []types.Event `json:"events" validate:"required,min=1,max=500,dive"`
}

// EventsResponse reports the session after applying a batch of events
type EventsResponse struct {
	Session types.CoachingSession `json:"session"`
	Steps   []session.Step        `json:"steps"`
}

// handleListStages lists the stages of the loaded content
func (s *Server) handleListStages(w http.ResponseWriter, _ *http.Request) {
	bundle := s.engine.Bundle()
	out := make([]StageSummary, 0, len(bundle.Stages))
	for _, stage := range bundle.Stages {
		out = append(out, StageSummary{
			ID:        stage.ID,
			Name:      stage.Name,
			MustCover: stage.MustCover,
			Cards:     len(bundle.CardsFor(stage.ID)),
		})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// decodeRecord reads a meeting record and checks its stage exists
func (s *Server) decodeRecord(w http.ResponseWriter, r *http.Request) (*types.MeetingRecord, error) {
	var record types.MeetingRecord
	if err := s.decodeJSON(w, r, &record); err != nil {
		return nil, err
	}
	if _, ok := s.engine.Bundle().Stage(record.StageID); !ok {
		return nil, &ErrStageNotFound{StageID: record.StageID}
	}
	return &record, nil
}

// handleScore scores a transcript
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	record, err := s.decodeRecord(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.engine.Score(record)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleAnalyze returns coaching feedback for a transcript
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	record, err := s.decodeRecord(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.engine.Analyze(record)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleEvaluate returns both the score and the coaching feedback
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	record, err := s.decodeRecord(w, r)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.engine.Evaluate(record)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleListSessions lists active session ids
func (s *Server) handleListSessions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"sessions": s.sessions.ids()})
}

// handleCreateSession starts a session in the initial phase
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength != 0 {
		if err := s.decodeJSON(w, r, &req); err != nil {
			s.fail(w, err)
			return
		}
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	sess := s.engine.Reducer().Start(req.ID)
	if err := s.sessions.create(sess); err != nil {
		s.fail(w, err)
		return
	}
	s.log.Info("session created", "session_id", sess.ID, "phase_id", sess.CurrentPhaseID)
	s.jsonResponse(w, http.StatusCreated, sess)
}

// handleGetSession returns the current session state
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

// handleDeleteSession removes a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.delete(id); err != nil {
		s.fail(w, err)
		return
	}
	s.log.Info("session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionEvents applies a batch of events and returns every step
func (s *Server) handleSessionEvents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req EventsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}

	var steps []session.Step
	sess, err := s.sessions.update(id, func(current types.CoachingSession) types.CoachingSession {
		var next types.CoachingSession
		next, steps = s.engine.Reducer().Replay(current, req.Events)
		return next
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, EventsResponse{Session: sess, Steps: steps})
}

// handleSessionEventsStream applies events one at a time and streams each
// step as a server-sent event, finishing with the session state.
func (s *Server) handleSessionEventsStream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req EventsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if _, err := s.sessions.get(id); err != nil {
		s.fail(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var sess types.CoachingSession
	for _, ev := range req.Events {
		if r.Context().Err() != nil {
			return
		}
		var step session.Step
		sess, err = s.sessions.update(id, func(current types.CoachingSession) types.CoachingSession {
			var next types.CoachingSession
			var steps []session.Step
			next, steps = s.engine.Reducer().Replay(current, []types.Event{ev})
			step = steps[0]
			return next
		})
		if err != nil {
			sse.WriteError(err.Error())
			return
		}
		if err := sse.WriteEvent("step", step); err != nil {
			s.log.Warn("stream write failed", "session_id", id, "error", err)
			return
		}
	}
	sse.WriteComplete(sess)
}
