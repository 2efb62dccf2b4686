package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	embedded "github.com/Techascendconsulting/stakeholder-v1-sub011/schemas"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_Files(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)

	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{name: "valid", document: `{"name": "Ada"}`},
		{name: "missing field", document: `{"age": 30}`, wantError: true},
		{name: "wrong type", document: `{"name": 7}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(schemaPath, writeFile(t, "doc.json", tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NotFound(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)

	err := ValidateJSON("/nonexistent/schema.json", schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, "/nonexistent/doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "test"}`))

	err := ValidateJSONString(personSchema, `{"age": 30}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)

	err = ValidateJSONString(`{"type": 12}`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. name: is required")
	assert.Contains(t, msg, "2. age: must be a number")
}

func TestValidateDocument_Meeting(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name: "yaml transcript",
			document: `
stage_id: problem_exploration
transcript:
  - role: learner
    text: What are your biggest pain points?
  - role: stakeholder
    text: Onboarding is slow.
    timestamp: 2024-05-01T10:00:00Z
`,
		},
		{
			name:     "json transcript",
			document: `{"stage_id": "as_is", "transcript": [], "independence": {"pain_points": 0.5}}`,
		},
		{
			name:      "unknown role",
			document:  `{"stage_id": "as_is", "transcript": [{"role": "narrator", "text": "hi"}]}`,
			wantError: true,
		},
		{
			name:      "missing stage",
			document:  `{"transcript": []}`,
			wantError: true,
		},
		{
			name:      "independence out of range",
			document:  `{"stage_id": "as_is", "transcript": [], "independence": {"pain_points": 3}}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(embedded.Meeting, []byte(tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateDocument_Events(t *testing.T) {
	valid := `
- type: question_sent
  text: What slows you down?
- type: answer_received
  text: Approvals take a week.
  captures:
    - field: pain_points
      value: slow approvals
- type: advance
`
	assert.NoError(t, ValidateDocument(embedded.Events, []byte(valid)))

	invalid := `[{"type": "advance", "captures": [{"field": "mood", "value": "good"}]}]`
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateDocument(embedded.Events, []byte(invalid)), &validationErr)
}

func TestValidateDocument_Errors(t *testing.T) {
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, ValidateDocument("missing.schema.json", []byte(`{}`)), &loadErr)

	err := ValidateDocument(embedded.Meeting, []byte("stage_id: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document")

	err = ValidateFile(embedded.Meeting, "/nonexistent/meeting.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
