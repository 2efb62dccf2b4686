package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/config"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/logger"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/observability"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/pipeline"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/schemas"
)

// loadSettings resolves configuration: file, then COACH_* env, then flags and
// command overrides, then defaults for anything still unset.
func loadSettings(overrides ...func(*config.Config)) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()

	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	if logMode != "" {
		cfg.LogMode = logMode
	}
	if verbose {
		cfg.Verbose = true
	}
	for _, override := range overrides {
		override(&cfg)
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setup loads settings and builds the logger and engine shared by commands
func setup(overrides ...func(*config.Config)) (config.Config, *logger.Logger, *pipeline.Engine, error) {
	cfg, err := loadSettings(overrides...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	engine, err := pipeline.New(cfg, log)
	if err != nil {
		log.Sync()
		return config.Config{}, nil, nil, err
	}
	return cfg, log, engine, nil
}

// printer returns a verbose printer on stderr, or nil when not verbose
func printer(cmd *cobra.Command, cfg config.Config) *observability.Printer {
	if !cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// readDocument validates a YAML or JSON file against an embedded schema and
// decodes it into v.
func readDocument(path, schemaName string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.ValidateDocument(schemaName, data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path is empty
func writeOutput(cmd *cobra.Command, path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	jsonOutput = append(jsonOutput, '\n')

	if path == "" {
		_, err = cmd.OutOrStdout().Write(jsonOutput)
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
