// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/session"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func writeRemediation(sb *strings.Builder, r types.Remediation) {
	writeList(sb, "Next time, try", r.NextTimeScripts)
	if len(r.MiniLessons) > 0 {
		sb.WriteString("Mini-lessons:\n")
		for _, lesson := range r.MiniLessons {
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", lesson.Key, lesson.Tip))
		}
	}
}

// PrintScoring outputs the overall verdict, per-key coverage and technique metrics.
func (p *Printer) PrintScoring(out *types.ScoringOutput) {
	if out == nil {
		return
	}

	var sb strings.Builder
	verdict := "FAIL"
	if out.Pass {
		verdict = "PASS"
	}
	sb.WriteString(fmt.Sprintf("Stage:    %s (%s weights)\n", out.StageID, out.Weights.Name))
	sb.WriteString(fmt.Sprintf("Overall:  %.2f / %.2f  %s\n", out.Overall, out.PassThreshold, verdict))
	sb.WriteString(fmt.Sprintf("Coverage: %.2f  Independence: %.2f  Technique: %.2f\n",
		out.CoverageAvg, out.IndependenceAvg, out.Technique.Score))
	sb.WriteString("\n")

	tech := out.Technique
	sb.WriteString(fmt.Sprintf("Questions: %d (open %d, closed %d, follow-ups %d)\n",
		tech.TotalQuestions, tech.OpenCount, tech.ClosedCount, tech.FollowUpCount))
	sb.WriteString(fmt.Sprintf("Talk balance: %.2f (learner %d words, stakeholder %d words)\n",
		tech.TalkBalance, tech.LearnerWords, tech.StakeholderWords))
	if tech.EarlySolutioning {
		sb.WriteString("⚠ Proposed a solution before the problem was explored\n")
	}
	sb.WriteString("\n")

	for _, key := range append(append([]string{}, out.CoveredAreas...), out.MissedAreas...) {
		sb.WriteString(fmt.Sprintf("  %-24s %.1f\n", key, out.Coverage[key]))
	}
	sb.WriteString("\n")
	writeRemediation(&sb, out.Remediation)

	p.printBox("MEETING SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs closed-question examples, weak keys and remediation.
func (p *Printer) PrintAnalysis(a *types.CoachingAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stage: %s\n", a.StageID))
	sb.WriteString(fmt.Sprintf("Questions: %d  Closed: %d  Follow-ups: %d\n", a.TotalQuestions, a.ClosedCount, a.FollowUpCount))
	sb.WriteString(fmt.Sprintf("Unclassified turns: %d\n\n", len(a.Unclassified)))

	if len(a.ClosedExamples) > 0 {
		sb.WriteString("Closed questions:\n")
		for _, ex := range a.ClosedExamples {
			sb.WriteString(fmt.Sprintf("  #%d %s\n", ex.TurnIndex, ex.Original))
			sb.WriteString(fmt.Sprintf("     → %s\n", ex.Rewrite))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Weak areas", a.WeakKeys)
	writeRemediation(&sb, a.Remediation)

	p.printBox("COACHING ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSession outputs the current phase, progress and captured data.
func (p *Printer) PrintSession(s *types.CoachingSession) {
	if s == nil {
		return
	}

	var sb strings.Builder
	if s.ID != "" {
		sb.WriteString(fmt.Sprintf("Session:  %s\n", s.ID))
	}
	sb.WriteString(fmt.Sprintf("Phase:    %s\n", s.CurrentPhaseID))
	sb.WriteString(fmt.Sprintf("Progress: %.0f%%  Questions: %d\n", s.ProgressPercent, s.QuestionsAsked))
	if len(s.CompletedPhaseIDs) > 0 {
		sb.WriteString(fmt.Sprintf("Completed: %s\n", strings.Join(s.CompletedPhaseIDs, " → ")))
	}
	sb.WriteString("\n")

	data := s.CapturedData
	writeList(&sb, "Pain points", data.PainPoints)
	writeList(&sb, "Impact", data.ImpactNotes)
	if data.ChosenPriority != "" {
		sb.WriteString(fmt.Sprintf("Priority: %s\n", data.ChosenPriority))
	}
	writeList(&sb, "Root causes", data.RootCauses)
	writeList(&sb, "Success criteria", data.SuccessCriteria)
	writeList(&sb, "Constraints", data.Constraints)
	writeList(&sb, "Next steps", data.NextSteps)

	p.printBox("COACHING SESSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReplay outputs one line per replayed event.
func (p *Printer) PrintReplay(steps []session.Step) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for i, step := range steps {
		marker := " "
		if step.Transitioned {
			marker = "→"
		}
		sb.WriteString(fmt.Sprintf("%3d %-16s %s %-20s %3.0f%%\n", i+1, step.Event.Type, marker, step.To, step.Progress))
	}

	p.printBox("SESSION REPLAY", strings.TrimSuffix(sb.String(), "\n"))
}
