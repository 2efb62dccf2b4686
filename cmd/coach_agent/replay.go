package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/session"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Feed an event file through the session reducer",
	Long:  "Starts a guided session in the initial phase, applies every event from the file in order and prints each step and the final session.",
	RunE:  runReplay,
}

var (
	replayEvents    string
	replayOutput    string
	replaySessionID string
)

// replayResult is the JSON written by the replay command
type replayResult struct {
	Session types.CoachingSession `json:"session"`
	Steps   []session.Step        `json:"steps"`
}

func init() {
	replayCmd.Flags().StringVarP(&replayEvents, "events", "e", "", "Path to a YAML/JSON list of events (required)")
	replayCmd.Flags().StringVarP(&replayOutput, "out", "o", "", "Path to write the result JSON (default: stdout)")
	replayCmd.Flags().StringVar(&replaySessionID, "session-id", "", "Session id (default: random UUID)")
	markRequired(replayCmd, "events")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	cfg, log, engine, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	var events []types.Event
	if err := readDocument(replayEvents, embedded.Events, &events); err != nil {
		return err
	}

	id := replaySessionID
	if id == "" {
		id = uuid.NewString()
	}

	reducer := engine.Reducer()
	final, steps := reducer.Replay(reducer.Start(id), events)

	if p := printer(cmd, cfg); p != nil {
		p.PrintReplay(steps)
		p.PrintSession(&final)
	}
	log.Info("replayed session",
		"session_id", final.ID,
		"events", len(events),
		"phase_id", final.CurrentPhaseID,
		"progress", final.ProgressPercent,
	)
	return writeOutput(cmd, replayOutput, replayResult{Session: final, Steps: steps})
}
