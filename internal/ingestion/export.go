// Package ingestion loads and validates crawler export files. An export is
// a JSON array of crawled career-page entries, optionally wrapped in a
// {"data": [...]} envelope.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyExport is returned when the export file contains no entries.
	ErrEmptyExport = fmt.Errorf("export file contains no entries")
	// ErrInvalidExport is returned when the export file is not valid JSON
	// in either accepted shape.
	ErrInvalidExport = fmt.Errorf("invalid export file")
)

// ExportEntry is one crawled company page. Name and URI are required;
// Content is the free-text or HTML-ish page body and may be absent.
type ExportEntry struct {
	Name    string `json:"name" validate:"required"`
	URI     string `json:"uri" validate:"required"`
	Content string `json:"content,omitempty"`
}

// envelope is the {"data": [...]} wrapper some crawler versions emit.
type envelope struct {
	Data []ExportEntry `json:"data"`
}

var validate = validator.New()

// Valid reports whether the entry carries the required fields. Invalid
// entries are skipped and counted by the pipeline, never fatal.
func (e ExportEntry) Valid() bool {
	return validate.Struct(e) == nil
}

// ParseExport decodes export JSON: a bare array first, then the data
// envelope. Returns ErrInvalidExport when neither shape decodes and
// ErrEmptyExport when the result has no entries.
func ParseExport(data []byte) ([]ExportEntry, error) {
	var entries []ExportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		var env envelope
		if envErr := json.Unmarshal(data, &env); envErr != nil || env.Data == nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExport, err)
		}
		entries = env.Data
	}

	if len(entries) == 0 {
		return nil, ErrEmptyExport
	}
	return entries, nil
}

// LoadExportFile reads and parses an export file from disk.
func LoadExportFile(path string) ([]ExportEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export file %s: %w", path, err)
	}
	return ParseExport(data)
}
