package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Produce coaching feedback for a transcript",
	Long:  "Analyzes a meeting record turn by turn: closed questions with open rewrites, follow-ups, per-key coverage, weak keys and remediation.",
	RunE:  runAnalyze,
}

var (
	analyzeInput  string
	analyzeOutput string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "in", "i", "", "Path to a MeetingRecord YAML/JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to write the CoachingAnalysis JSON (default: stdout)")
	markRequired(analyzeCmd, "in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, log, engine, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	var record types.MeetingRecord
	if err := readDocument(analyzeInput, embedded.Meeting, &record); err != nil {
		return err
	}

	analysis, err := engine.Analyze(&record)
	if err != nil {
		return fmt.Errorf("failed to analyze transcript: %w", err)
	}
	if p := printer(cmd, cfg); p != nil {
		p.PrintAnalysis(analysis)
	}
	log.Info("analyzed transcript",
		"stage_id", analysis.StageID,
		"questions", analysis.TotalQuestions,
		"weak_keys", len(analysis.WeakKeys),
	)
	return writeOutput(cmd, analyzeOutput, analysis)
}
