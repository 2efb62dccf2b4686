// Package schemas embeds the JSON Schemas for coaching documents.
package schemas

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Schema file names
const (
	Meeting = "meeting.schema.json"
	Content = "content.schema.json"
	Events  = "events.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the schema document with the given file name
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unknown schema %s: %w", name, err)
	}
	return string(data), nil
}

// Names lists the embedded schema files
func Names() []string {
	matches, _ := fs.Glob(files, "*.schema.json")
	sort.Strings(matches)
	return matches
}
