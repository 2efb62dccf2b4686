// Package pipeline assembles the coaching engine from configuration and runs
// scoring, analysis and batch jobs against a content bundle.
package pipeline

import (
	"context"
	"fmt"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/coaching"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/config"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/content"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/coverage"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/logger"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/scoring"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/session"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
)

// Progress steps reported through ProgressCallback
const (
	StepBatchStarted  = "batch_started"
	StepBatchFinished = "batch_finished"
)

// ProgressEvent represents a progress update during a batch run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Total   int    `json:"total"`
}

// ProgressCallback is called when batch progress occurs
type ProgressCallback func(event ProgressEvent)

// Engine binds a content bundle, the phase machine and the scoring tunables
type Engine struct {
	bundle  *content.Bundle
	reducer *session.Reducer
	cfg     config.Config
	log     *logger.Logger
}

// Report carries the scoring output and coaching analysis of one transcript
type Report struct {
	Scoring  *types.ScoringOutput    `json:"scoring"`
	Analysis *types.CoachingAnalysis `json:"analysis"`
}

// New loads the content named by cfg.ContentPath (or the embedded defaults)
// and builds an engine. cfg is expected to be merged with defaults already.
func New(cfg config.Config, log *logger.Logger) (*Engine, error) {
	bundle, err := content.LoadOrDefault(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return NewWithBundle(bundle, cfg, log)
}

// NewWithBundle builds an engine around an already loaded bundle
func NewWithBundle(bundle *content.Bundle, cfg config.Config, log *logger.Logger) (*Engine, error) {
	if t := cfg.PassThreshold; t != nil && (*t < 0 || *t > 1) {
		return nil, fmt.Errorf("pass threshold %v outside [0,1]", *t)
	}
	log = logger.OrNop(log)

	machine, err := bundle.Machine(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build phase machine: %w", err)
	}

	return &Engine{
		bundle:  bundle,
		reducer: session.NewReducer(machine, log),
		cfg:     cfg,
		log:     log,
	}, nil
}

// Bundle returns the content the engine was built with
func (e *Engine) Bundle() *content.Bundle {
	return e.bundle
}

// Reducer returns the session reducer bound to the engine's phase graph
func (e *Engine) Reducer() *session.Reducer {
	return e.reducer
}

// Logger returns the engine logger
func (e *Engine) Logger() *logger.Logger {
	return e.log
}

func (e *Engine) coverageConfig() coverage.Config {
	return coverage.Config{
		MinWordsStrongAnswer: e.cfg.MinWordsStrongAnswer,
		RelevanceGate:        e.cfg.RelevanceGate,
		AssignThreshold:      e.cfg.AssignThreshold,
	}
}

// ScoringOptions returns the scorer options for a record's independence values
func (e *Engine) ScoringOptions(independence map[string]float64) scoring.Options {
	return scoring.Options{
		Coverage:      e.coverageConfig(),
		PassThreshold: e.cfg.PassThreshold,
		Independence:  independence,
		CoverMeta:     e.bundle.CoverMetaTable(),
		MaxScripts:    e.cfg.MaxScripts,
		MaxLessons:    e.cfg.MaxLessons,
		UseEmbeddings: e.cfg.UseEmbeddings,
		Logger:        e.log,
	}
}

// CoachingOptions returns the analyzer options
func (e *Engine) CoachingOptions() coaching.Options {
	return coaching.Options{
		Coverage:   e.coverageConfig(),
		CoverMeta:  e.bundle.CoverMetaTable(),
		MaxScripts: e.cfg.MaxScripts,
		MaxLessons: e.cfg.MaxLessons,
	}
}

func (e *Engine) input(record *types.MeetingRecord) (coverage.Input, error) {
	if err := record.Validate(); err != nil {
		return coverage.Input{}, fmt.Errorf("invalid meeting record: %w", err)
	}
	return e.bundle.Input(record)
}

// Score scores one meeting record
func (e *Engine) Score(record *types.MeetingRecord) (*types.ScoringOutput, error) {
	in, err := e.input(record)
	if err != nil {
		return nil, err
	}
	return scoring.ScoreMeeting(in, e.ScoringOptions(record.Independence))
}

// Analyze produces coaching feedback for one meeting record
func (e *Engine) Analyze(record *types.MeetingRecord) (*types.CoachingAnalysis, error) {
	in, err := e.input(record)
	if err != nil {
		return nil, err
	}
	return coaching.Analyze(in, e.CoachingOptions())
}

// Evaluate scores and analyzes a record from a single classification pass
func (e *Engine) Evaluate(record *types.MeetingRecord) (*Report, error) {
	in, err := e.input(record)
	if err != nil {
		return nil, err
	}
	opts := e.ScoringOptions(record.Independence)
	if opts.UseEmbeddings {
		e.log.Warn("embedding follow-up detection is not available, using patterns", "stage_id", record.StageID)
	}

	pass, err := coverage.Walk(in, opts.Coverage)
	if err != nil {
		return nil, fmt.Errorf("failed to classify transcript: %w", err)
	}
	return &Report{
		Scoring:  scoring.ScorePass(pass, opts),
		Analysis: coaching.AnalyzePass(pass, e.CoachingOptions()),
	}, nil
}

// ScoreBatch scores records in parallel with cfg.Concurrency workers.
// Results keep the order of records.
func (e *Engine) ScoreBatch(ctx context.Context, records []types.MeetingRecord, onProgress ProgressCallback) ([]*types.ScoringOutput, error) {
	items := make([]scoring.Item, len(records))
	for i := range records {
		in, err := e.input(&records[i])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items[i] = scoring.Item{Input: in, Independence: records[i].Independence}
	}

	emitProgress(onProgress, StepBatchStarted, fmt.Sprintf("Scoring %d transcripts", len(items)), len(items))
	results, err := scoring.ScoreAll(ctx, items, e.ScoringOptions(nil), e.cfg.Concurrency)
	if err != nil {
		e.log.Error("batch scoring failed", "records", len(items), "error", err)
		return nil, err
	}
	emitProgress(onProgress, StepBatchFinished, fmt.Sprintf("Scored %d transcripts", len(results)), len(results))
	return results, nil
}

// emitProgress calls the progress callback if configured
func emitProgress(onProgress ProgressCallback, step, message string, total int) {
	if onProgress != nil {
		onProgress(ProgressEvent{Step: step, Message: message, Total: total})
	}
}
