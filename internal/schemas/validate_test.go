package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"uri": {"type": "string"},
			"content": {"type": "string"}
		},
		"required": ["name", "uri"]
	}
}`

func TestValidateJSONString(t *testing.T) {
	t.Run("Valid document", func(t *testing.T) {
		doc := `[{"name": "Acme", "uri": "https://acme.com", "content": "jobs"}]`
		assert.NoError(t, ValidateJSONString(exportSchema, doc))
	})

	t.Run("Missing required field", func(t *testing.T) {
		doc := `[{"name": "Acme"}]`
		err := ValidateJSONString(exportSchema, doc)
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.NotEmpty(t, ve.Errors)
		assert.Contains(t, err.Error(), "uri")
	})

	t.Run("Wrong type", func(t *testing.T) {
		doc := `[{"name": 42, "uri": "https://acme.com"}]`
		err := ValidateJSONString(exportSchema, doc)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("Malformed document", func(t *testing.T) {
		err := ValidateJSONString(exportSchema, `{not json`)
		require.Error(t, err)

		var le *SchemaLoadError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("Malformed schema", func(t *testing.T) {
		err := ValidateJSONString(`{not a schema`, `[]`)
		require.Error(t, err)

		var le *SchemaLoadError
		assert.ErrorAs(t, err, &le)
	})
}

func TestResolveSchemaPath(t *testing.T) {
	t.Run("Finds the repo schema from the package directory", func(t *testing.T) {
		// Tests run two levels below the repo root.
		path := ResolveSchemaPath(ExportSchemaPath)
		assert.NotEmpty(t, path)
	})

	t.Run("Unknown file resolves to nothing", func(t *testing.T) {
		assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.json"))
	})
}

func TestValidateExport(t *testing.T) {
	t.Run("Accepts a bare entry array", func(t *testing.T) {
		doc := `[{"name": "Acme", "uri": "https://acme.com", "content": "jobs"}]`
		assert.NoError(t, ValidateExport([]byte(doc)))
	})

	t.Run("Accepts the data envelope", func(t *testing.T) {
		doc := `{"data": [{"name": "Acme", "uri": "https://acme.com"}]}`
		assert.NoError(t, ValidateExport([]byte(doc)))
	})

	t.Run("Rejects a non-export shape", func(t *testing.T) {
		assert.Error(t, ValidateExport([]byte(`{"jobs": "nope"}`)))
	})
}
