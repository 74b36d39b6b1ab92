package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExport(t *testing.T) {
	t.Run("Bare array", func(t *testing.T) {
		data := `[{"name": "Acme", "uri": "https://acme.com", "content": "jobs"}]`

		entries, err := ParseExport([]byte(data))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Acme", entries[0].Name)
		assert.Equal(t, "https://acme.com", entries[0].URI)
		assert.Equal(t, "jobs", entries[0].Content)
	})

	t.Run("Data envelope", func(t *testing.T) {
		data := `{"data": [{"name": "Acme", "uri": "https://acme.com"}, {"name": "Initech", "uri": "https://initech.com"}]}`

		entries, err := ParseExport([]byte(data))
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := ParseExport([]byte(`{not json`))
		assert.ErrorIs(t, err, ErrInvalidExport)
	})

	t.Run("Wrong shape", func(t *testing.T) {
		_, err := ParseExport([]byte(`{"entries": []}`))
		assert.ErrorIs(t, err, ErrInvalidExport)
	})

	t.Run("Empty array", func(t *testing.T) {
		_, err := ParseExport([]byte(`[]`))
		assert.ErrorIs(t, err, ErrEmptyExport)
	})

	t.Run("Empty envelope", func(t *testing.T) {
		_, err := ParseExport([]byte(`{"data": []}`))
		assert.ErrorIs(t, err, ErrEmptyExport)
	})

	t.Run("Missing content is allowed", func(t *testing.T) {
		entries, err := ParseExport([]byte(`[{"name": "Acme", "uri": "https://acme.com"}]`))
		require.NoError(t, err)
		assert.True(t, entries[0].Valid())
	})
}

func TestExportEntryValid(t *testing.T) {
	tests := []struct {
		name     string
		entry    ExportEntry
		expected bool
	}{
		{"Complete entry", ExportEntry{Name: "Acme", URI: "https://acme.com", Content: "x"}, true},
		{"Content optional", ExportEntry{Name: "Acme", URI: "https://acme.com"}, true},
		{"Missing name", ExportEntry{URI: "https://acme.com"}, false},
		{"Missing uri", ExportEntry{Name: "Acme"}, false},
		{"Empty entry", ExportEntry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.Valid())
		})
	}
}

func TestLoadExportFile(t *testing.T) {
	t.Run("Reads and parses", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Acme", "uri": "https://acme.com"}]`), 0o644))

		entries, err := LoadExportFile(path)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadExportFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidExport))
	})
}
