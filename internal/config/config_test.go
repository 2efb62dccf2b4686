package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"pass_threshold": 0.7,
		"min_words_strong_answer": 12,
		"relevance_gate": 0.4,
		"log_mode": "prod",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.NotNil(t, cfg.PassThreshold)
	assert.Equal(t, 0.7, *cfg.PassThreshold)
	assert.Equal(t, 12, cfg.MinWordsStrongAnswer)
	require.NotNil(t, cfg.RelevanceGate)
	assert.Equal(t, 0.4, *cfg.RelevanceGate)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_ExplicitZeroThreshold(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"pass_threshold": 0}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.PassThreshold)

	merged := cfg.MergeWithDefaults(Defaults())
	require.NotNil(t, merged.PassThreshold)
	assert.Equal(t, 0.0, *merged.PassThreshold)
	assert.NoError(t, merged.Validate())
}

func TestValidate(t *testing.T) {
	negativeGate := -0.5
	highThreshold := 1.2
	negativeThreshold := -0.1
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "zero value", cfg: Config{}},
		{name: "threshold above one", cfg: Config{PassThreshold: &highThreshold}, wantErr: "PassThreshold"},
		{name: "negative threshold", cfg: Config{PassThreshold: &negativeThreshold}, wantErr: "PassThreshold"},
		{name: "negative scripts", cfg: Config{MaxScripts: -1}, wantErr: "MaxScripts"},
		{name: "bad log mode", cfg: Config{LogMode: "loud"}, wantErr: "LogMode"},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "Port"},
		{name: "negative gate", cfg: Config{RelevanceGate: &negativeGate}, wantErr: "relevance_gate"},
		{name: "missing content file", cfg: Config{ContentPath: "/nonexistent/content.yaml"}, wantErr: "content file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	gate := 0.3
	cfg := Config{MaxScripts: 2, LogMode: "silent"}
	defaults := Defaults()
	defaults.RelevanceGate = &gate

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 2, merged.MaxScripts)
	assert.Equal(t, "silent", merged.LogMode)
	require.NotNil(t, merged.PassThreshold)
	assert.Equal(t, 0.65, *merged.PassThreshold)
	assert.Equal(t, 18, merged.MinWordsStrongAnswer)
	assert.Equal(t, 3, merged.MaxLessons)
	assert.Equal(t, 8080, merged.Port)
	require.NotNil(t, merged.RelevanceGate)
	assert.Equal(t, 0.3, *merged.RelevanceGate)

	*merged.RelevanceGate = 0.9
	assert.Equal(t, 0.3, gate)
	assert.Equal(t, 0, cfg.Port)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("COACH_PASS_THRESHOLD", "0.8")
	t.Setenv("COACH_MAX_SCRIPTS", "7")
	t.Setenv("COACH_LOG_MODE", "prod")
	t.Setenv("COACH_RELEVANCE_GATE", "0.25")
	t.Setenv("COACH_PORT", "not-a-number")

	cfg := Defaults()
	cfg.ApplyEnv()

	require.NotNil(t, cfg.PassThreshold)
	assert.Equal(t, 0.8, *cfg.PassThreshold)
	assert.Equal(t, 7, cfg.MaxScripts)
	assert.Equal(t, "prod", cfg.LogMode)
	require.NotNil(t, cfg.RelevanceGate)
	assert.Equal(t, 0.25, *cfg.RelevanceGate)
	assert.Equal(t, 8080, cfg.Port)
}
