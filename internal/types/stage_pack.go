//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// StagePack defines the topics an interview stage must elicit
type StagePack struct {
	ID        string   `json:"id" yaml:"id" validate:"required"`
	Name      string   `json:"name" yaml:"name"`
	MustCover []string `json:"must_cover" yaml:"must_cover"`
	// KeyHints are optional descriptive phrases per must-cover key, used when
	// matching untagged cards to keys.
	KeyHints map[string]string `json:"key_hints,omitempty" yaml:"key_hints,omitempty"`
}

// Covers reports whether key is one of the stage's must-cover keys
func (s *StagePack) Covers(key string) bool {
	for _, k := range s.MustCover {
		if k == key {
			return true
		}
	}
	return false
}

// KeyDescription returns the text used to represent a key in lexical matching
func (s *StagePack) KeyDescription(key string) string {
	if hint, ok := s.KeyHints[key]; ok && strings.TrimSpace(hint) != "" {
		return hint
	}
	return strings.ReplaceAll(key, "_", " ")
}

// QuestionCard is a suggested prompt for a stage
type QuestionCard struct {
	ID      string `json:"id" yaml:"id" validate:"required"`
	StageID string `json:"stage_id" yaml:"stage_id"`
	Text    string `json:"text" yaml:"text" validate:"required"`
	// CoverKey is an explicit topic tag; empty cards are matched by similarity
	CoverKey string `json:"cover_key,omitempty" yaml:"cover_key,omitempty"`
}
