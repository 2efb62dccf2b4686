// Package content loads coaching content: stages, question cards, remediation
// metadata and an optional phase graph.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/coverage"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/phases"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/schemas"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

//go:embed defaults.yaml
var defaultBundle []byte

// DefaultSource names the embedded bundle in errors
const DefaultSource = "(embedded defaults)"

// Bundle is a complete set of coaching content
type Bundle struct {
	Stages    []types.StagePack    `json:"stages" yaml:"stages"`
	Cards     []types.QuestionCard `json:"cards" yaml:"cards"`
	CoverMeta []types.CoverMeta    `json:"cover_meta" yaml:"cover_meta"`
	// Phases overrides the default phase graph when set
	Phases []phases.Phase `json:"phases,omitempty" yaml:"phases,omitempty"`
}

// Default returns the embedded bundle
func Default() *Bundle {
	b, err := Parse(defaultBundle, DefaultSource)
	if err != nil {
		panic(err)
	}
	return b
}

// Load reads a YAML or JSON bundle from path
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(data, path)
}

// LoadOrDefault loads path, or returns the embedded bundle when path is empty
func LoadOrDefault(path string) (*Bundle, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse checks data against the content schema, decodes it and validates
// cross references. source is only used in errors.
func Parse(data []byte, source string) (*Bundle, error) {
	if err := schemas.ValidateDocument(embedded.Content, data); err != nil {
		return nil, &LoadError{Path: source, Message: "does not match the content schema", Cause: err}
	}

	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, &LoadError{Path: source, Message: "failed to decode", Cause: err}
	}

	if err := b.Validate(); err != nil {
		return nil, &LoadError{Path: source, Message: "invalid content", Cause: err}
	}
	return &b, nil
}

// Validate checks that ids are unique, that cards belong to known stages and
// tag only must-cover keys, and that the phase graph (if any) is valid.
func (b *Bundle) Validate() error {
	seen := make(map[string]bool, len(b.Stages))
	for i := range b.Stages {
		stage := &b.Stages[i]
		if err := stage.Validate(); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}
		if seen[stage.ID] {
			return fmt.Errorf("duplicate stage id %q", stage.ID)
		}
		seen[stage.ID] = true
	}

	cardIDs := make(map[string]bool, len(b.Cards))
	for _, card := range b.Cards {
		if cardIDs[card.ID] {
			return fmt.Errorf("duplicate card id %q", card.ID)
		}
		cardIDs[card.ID] = true
		if !seen[card.StageID] {
			return fmt.Errorf("card %s references unknown stage %q", card.ID, card.StageID)
		}
	}

	for i := range b.Stages {
		if _, err := coverage.AssignCards(&b.Stages[i], b.CardsFor(b.Stages[i].ID), 0); err != nil {
			return err
		}
	}

	if len(b.Phases) > 0 {
		if _, err := phases.NewMachine(b.Phases, nil); err != nil {
			return err
		}
	}
	return nil
}

// Stage returns the stage with the given id
func (b *Bundle) Stage(id string) (*types.StagePack, bool) {
	for i := range b.Stages {
		if b.Stages[i].ID == id {
			stage := b.Stages[i]
			return &stage, true
		}
	}
	return nil, false
}

// CardsFor returns the cards of a stage in declared order
func (b *Bundle) CardsFor(stageID string) []types.QuestionCard {
	var out []types.QuestionCard
	for _, card := range b.Cards {
		if card.StageID == stageID {
			out = append(out, card)
		}
	}
	return out
}

// CoverMetaTable indexes the remediation content by key. Later entries win.
func (b *Bundle) CoverMetaTable() types.CoverMetaTable {
	table := make(types.CoverMetaTable, len(b.CoverMeta))
	for _, meta := range b.CoverMeta {
		table[meta.Key] = meta
	}
	return table
}

// Machine builds the phase machine for the bundle, falling back to the
// default graph when the bundle has no phases.
func (b *Bundle) Machine(conditions phases.Conditions) (*phases.Machine, error) {
	graph := b.Phases
	if len(graph) == 0 {
		graph = phases.DefaultPhases()
	}
	return phases.NewMachine(graph, conditions)
}

// Input assembles the classification input for one meeting record
func (b *Bundle) Input(record *types.MeetingRecord) (coverage.Input, error) {
	stage, ok := b.Stage(record.StageID)
	if !ok {
		return coverage.Input{}, fmt.Errorf("unknown stage %q", record.StageID)
	}
	return coverage.Input{
		Stage:      stage,
		Cards:      b.CardsFor(stage.ID),
		Transcript: record.Transcript,
	}, nil
}
