package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/config"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/pipeline"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

var batchCmd = &cobra.Command{
	Use:   "batch <record> [record...]",
	Short: "Score many transcripts in parallel",
	Long:  "Reads and scores every meeting record given as an argument using a bounded worker pool. Output is a JSON array in argument order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutput      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to write the results JSON array (default: stdout)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "n", 0, "Parallel workers (default: config value)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchConcurrency < 0 {
		return fmt.Errorf("--concurrency must be positive, got %d", batchConcurrency)
	}
	cfg, log, engine, err := setup(func(c *config.Config) {
		if batchConcurrency > 0 {
			c.Concurrency = batchConcurrency
		}
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	records := make([]types.MeetingRecord, len(args))
	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for i, path := range args {
		g.Go(func() error {
			return readDocument(path, embedded.Meeting, &records[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	results, err := engine.ScoreBatch(cmd.Context(), records, func(ev pipeline.ProgressEvent) {
		log.Info(ev.Message, "step", ev.Step, "total", ev.Total)
	})
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}

	if p := printer(cmd, cfg); p != nil {
		for _, out := range results {
			p.PrintScoring(out)
		}
	}
	return writeOutput(cmd, batchOutput, results)
}
