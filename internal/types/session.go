//nolint:revive // types is a standard Go package name pattern
package types

// CaptureField names a slot of CapturedData
type CaptureField string

// Capture fields written by the session reducer
const (
	CapturePainPoints      CaptureField = "pain_points"
	CaptureImpactNotes     CaptureField = "impact_notes"
	CapturePriority        CaptureField = "priority"
	CaptureRootCauses      CaptureField = "root_causes"
	CaptureSuccessCriteria CaptureField = "success_criteria"
	CaptureConstraints     CaptureField = "constraints"
	CaptureNextSteps       CaptureField = "next_steps"
)

// Valid reports whether f names a CapturedData slot
func (f CaptureField) Valid() bool {
	switch f {
	case CapturePainPoints, CaptureImpactNotes, CapturePriority, CaptureRootCauses,
		CaptureSuccessCriteria, CaptureConstraints, CaptureNextSteps:
		return true
	}
	return false
}

// CapturedData accumulates what the learner has elicited during a guided session
type CapturedData struct {
	PainPoints      []string `json:"pain_points"`
	ImpactNotes     []string `json:"impact_notes"`
	ChosenPriority  string   `json:"chosen_priority,omitempty"`
	RootCauses      []string `json:"root_causes"`
	SuccessCriteria []string `json:"success_criteria"`
	Constraints     []string `json:"constraints"`
	NextSteps       []string `json:"next_steps"`
}

// Record stores value in the named field. It returns false for an unknown field.
func (c *CapturedData) Record(field CaptureField, value string) bool {
	switch field {
	case CapturePainPoints:
		c.PainPoints = append(c.PainPoints, value)
	case CaptureImpactNotes:
		c.ImpactNotes = append(c.ImpactNotes, value)
	case CapturePriority:
		c.ChosenPriority = value
	case CaptureRootCauses:
		c.RootCauses = append(c.RootCauses, value)
	case CaptureSuccessCriteria:
		c.SuccessCriteria = append(c.SuccessCriteria, value)
	case CaptureConstraints:
		c.Constraints = append(c.Constraints, value)
	case CaptureNextSteps:
		c.NextSteps = append(c.NextSteps, value)
	default:
		return false
	}
	return true
}

// Clone returns a deep copy
func (c CapturedData) Clone() CapturedData {
	return CapturedData{
		PainPoints:      cloneStrings(c.PainPoints),
		ImpactNotes:     cloneStrings(c.ImpactNotes),
		ChosenPriority:  c.ChosenPriority,
		RootCauses:      cloneStrings(c.RootCauses),
		SuccessCriteria: cloneStrings(c.SuccessCriteria),
		Constraints:     cloneStrings(c.Constraints),
		NextSteps:       cloneStrings(c.NextSteps),
	}
}

// CoachingSession is the reducer-owned state of a guided interview
type CoachingSession struct {
	ID                string       `json:"id,omitempty"`
	CurrentPhaseID    string       `json:"current_phase_id"`
	CapturedData      CapturedData `json:"captured_data"`
	CompletedPhaseIDs []string     `json:"completed_phase_ids"`
	ProgressPercent   float64      `json:"progress_percent"`
	QuestionsAsked    int          `json:"questions_asked"`
}

// Clone returns a deep copy so reducers never alias the caller's slices
func (s CoachingSession) Clone() CoachingSession {
	out := s
	out.CapturedData = s.CapturedData.Clone()
	out.CompletedPhaseIDs = cloneStrings(s.CompletedPhaseIDs)
	return out
}

// HasCompleted reports whether phaseID is in CompletedPhaseIDs
func (s *CoachingSession) HasCompleted(phaseID string) bool {
	for _, id := range s.CompletedPhaseIDs {
		if id == phaseID {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
