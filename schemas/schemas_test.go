package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"parsed_resume.schema.json",
	"profile.schema.json",
	"case_studies.schema.json",
	"metrics.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_LoadAsJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			abs, err := filepath.Abs(schemaFile)
			require.NoError(t, err)

			loader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			declared, ok := schemaObj["$schema"].(string)
			require.True(t, ok, "schema should declare $schema")
			assert.Contains(t, declared, "draft-07")
		})
	}
}
