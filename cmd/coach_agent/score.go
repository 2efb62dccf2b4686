package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/config"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an interview transcript",
	Long:  "Scores a meeting record (stage id plus transcript) for coverage, technique and independence and prints a ScoringOutput JSON with a pass/fail verdict.",
	RunE:  runScore,
}

var (
	scoreInput     string
	scoreOutput    string
	scoreThreshold float64
	scoreAnalyze   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "in", "i", "", "Path to a MeetingRecord YAML/JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to write the output JSON (default: stdout)")
	scoreCmd.Flags().Float64Var(&scoreThreshold, "threshold", 0, "Pass threshold in [0,1] (default: the configured value)")
	scoreCmd.Flags().BoolVar(&scoreAnalyze, "with-analysis", false, "Also include the coaching analysis")
	markRequired(scoreCmd, "in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, log, engine, err := setup(func(c *config.Config) {
		if cmd.Flags().Changed("threshold") {
			threshold := scoreThreshold
			c.PassThreshold = &threshold
		}
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	var record types.MeetingRecord
	if err := readDocument(scoreInput, embedded.Meeting, &record); err != nil {
		return err
	}

	p := printer(cmd, cfg)
	if scoreAnalyze {
		report, err := engine.Evaluate(&record)
		if err != nil {
			return fmt.Errorf("failed to evaluate transcript: %w", err)
		}
		if p != nil {
			p.PrintScoring(report.Scoring)
			p.PrintAnalysis(report.Analysis)
		}
		return writeOutput(cmd, scoreOutput, report)
	}

	out, err := engine.Score(&record)
	if err != nil {
		return fmt.Errorf("failed to score transcript: %w", err)
	}
	if p != nil {
		p.PrintScoring(out)
	}
	log.Info("scored transcript", "stage_id", out.StageID, "overall", out.Overall, "pass", out.Pass)
	return writeOutput(cmd, scoreOutput, out)
}
