// Package main implements the coach_agent CLI for scoring interview
// transcripts, replaying guided sessions and serving the coaching API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "coach_agent",
	Short:         "Interview coaching and scoring engine",
	Long:          "coach_agent scores business-analysis interview transcripts, produces coaching feedback and drives guided interview sessions through their phases.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath  string
	contentPath string
	logMode     string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Path to a YAML/JSON content bundle (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "", "Log mode: dev, prod or silent")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print boxed summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
