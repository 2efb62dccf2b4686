// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds engine tunables and process settings. It can be loaded from a
// JSON file; zero values fall back to Defaults via MergeWithDefaults.
type Config struct {
	// Content
	ContentPath string `json:"content_path,omitempty"` // YAML/JSON content bundle; empty uses the embedded defaults

	// Scoring
	PassThreshold        *float64 `json:"pass_threshold,omitempty" validate:"omitempty,gte=0,lte=1"` // unset uses the default; 0 is a valid threshold
	MinWordsStrongAnswer int      `json:"min_words_strong_answer,omitempty" validate:"gte=0"`
	MaxScripts           int      `json:"max_scripts,omitempty" validate:"gte=0"`
	MaxLessons           int      `json:"max_lessons,omitempty" validate:"gte=0"`
	RelevanceGate        *float64 `json:"relevance_gate,omitempty"` // fixed classification gate; unset uses the dynamic gate
	AssignThreshold      float64  `json:"assign_threshold,omitempty" validate:"gte=0"`
	UseEmbeddings        bool     `json:"use_embeddings,omitempty"` // accepted, no effect

	// Process
	LogMode     string `json:"log_mode,omitempty" validate:"omitempty,oneof=dev development prod production silent nop none"`
	Port        int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	Concurrency int    `json:"concurrency,omitempty" validate:"gte=0"`
	Verbose     bool   `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	threshold := 0.65
	return Config{
		PassThreshold:        &threshold,
		MinWordsStrongAnswer: 18,
		MaxScripts:           5,
		MaxLessons:           3,
		AssignThreshold:      0.1,
		LogMode:              "dev",
		Port:                 8080,
		Concurrency:          4,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks ranges via struct tags and that the content file exists
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.RelevanceGate != nil && *c.RelevanceGate < 0 {
		return fmt.Errorf("config error: 'relevance_gate' must be non-negative")
	}

	if c.ContentPath != "" {
		if _, err := os.Stat(c.ContentPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: content file not found: %s", c.ContentPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// Bools cannot distinguish unset from false and are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ContentPath == "" {
		result.ContentPath = defaults.ContentPath
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}

	if result.PassThreshold == nil && defaults.PassThreshold != nil {
		threshold := *defaults.PassThreshold
		result.PassThreshold = &threshold
	}
	if result.MinWordsStrongAnswer == 0 {
		result.MinWordsStrongAnswer = defaults.MinWordsStrongAnswer
	}
	if result.MaxScripts == 0 {
		result.MaxScripts = defaults.MaxScripts
	}
	if result.MaxLessons == 0 {
		result.MaxLessons = defaults.MaxLessons
	}
	if result.AssignThreshold == 0 {
		result.AssignThreshold = defaults.AssignThreshold
	}
	if result.RelevanceGate == nil && defaults.RelevanceGate != nil {
		gate := *defaults.RelevanceGate
		result.RelevanceGate = &gate
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	return result
}

// ApplyEnv overrides fields from COACH_* environment variables. Unparseable
// values are ignored.
func (c *Config) ApplyEnv() {
	c.ContentPath = envStr("COACH_CONTENT_PATH", c.ContentPath)
	c.LogMode = envStr("COACH_LOG_MODE", c.LogMode)
	c.MinWordsStrongAnswer = envInt("COACH_MIN_WORDS_STRONG_ANSWER", c.MinWordsStrongAnswer)
	c.MaxScripts = envInt("COACH_MAX_SCRIPTS", c.MaxScripts)
	c.MaxLessons = envInt("COACH_MAX_LESSONS", c.MaxLessons)
	c.AssignThreshold = envFloat("COACH_ASSIGN_THRESHOLD", c.AssignThreshold)
	c.Port = envInt("COACH_PORT", c.Port)
	c.Concurrency = envInt("COACH_CONCURRENCY", c.Concurrency)

	c.PassThreshold = envFloatPtr("COACH_PASS_THRESHOLD", c.PassThreshold)
	c.RelevanceGate = envFloatPtr("COACH_RELEVANCE_GATE", c.RelevanceGate)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatPtr(key string, fallback *float64) *float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
