package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const meetingYAML = `stage_id: problem_exploration
transcript:
  - role: learner
    text: What are the biggest pain points in your day-to-day work?
  - role: stakeholder
    text: Honestly the worst part is re-keying every order into two systems by hand, which takes most of my morning and causes mistakes every single week.
  - role: learner
    text: Is it really that bad?
`

const meetingJSON = `{
  "stage_id": "problem_exploration",
  "transcript": [
    {"role": "learner", "text": "Who do you hand work over to, and what happens at that handoff?", "timestamp": "2024-05-01T10:00:00Z"},
    {"role": "stakeholder", "text": "Finance.", "timestamp": "2024-05-01T10:00:05Z"}
  ]
}`

const eventsYAML = `- type: question_sent
  text: How long have you been in this role?
- type: advance
- type: answer_received
  text: Invoices sit in a shared inbox for days before anyone picks them up
`

// resetFlags restores every flag to its default so commands can run more than once
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command in-process and returns stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("COACH_LOG_MODE", "silent")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

// writeFile writes content under a fresh temp dir and returns the path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
