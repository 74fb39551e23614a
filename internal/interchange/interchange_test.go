// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package interchange

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utahnews/swiftgen/internal/pymodel"
)

func sampleDocument() *Document {
	desc := "Unique identifier"
	doc := "A task"
	return &Document{
		Models: []pymodel.ModelMetadata{
			{
				Name:        "TaskModel",
				BaseClasses: []string{"BaseModel"},
				Docstring:   &doc,
				Imports:     []string{"pydantic.BaseModel"},
				Fields: []pymodel.FieldMetadata{
					{
						Name:        "id",
						SourceType:  "str",
						TargetType:  "String",
						Description: &desc,
						GenericArgs: []string{},
					},
				},
			},
			{
				Name:        "Priority",
				BaseClasses: []string{"str", "Enum"},
				IsEnum:      true,
				EnumValues:  []string{"LOW", "HIGH"},
				Imports:     []string{"enum.Enum"},
				Fields:      []pymodel.FieldMetadata{},
			},
		},
		GeneratedAt:     "2026-08-30T12:00:00Z",
		SourceDirectory: "models",
	}
}

func TestWriteAndLoad_RoundTrip(t *testing.T) {
	for _, wr := range []Writer{JSONWriter, YAMLWriter} {
		t.Run(wr.Extension(), func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "schema"+wr.Extension())

			doc := sampleDocument()
			require.NoError(t, wr.Write(doc, path))

			loaded, err := NewLoader(os.DirFS(tmpDir)).LoadFile("schema" + wr.Extension())
			require.NoError(t, err)

			assert.Equal(t, doc.GeneratedAt, loaded.GeneratedAt)
			assert.Equal(t, doc.SourceDirectory, loaded.SourceDirectory)
			require.Len(t, loaded.Models, 2)
			assert.Equal(t, doc.Models[0], loaded.Models[0])
			assert.Equal(t, doc.Models[1], loaded.Models[1])
		})
	}
}

func TestLoadFile_YAMLRestoresAbsentEnumValues(t *testing.T) {
	// yaml.v3 writes a nil slice as [], so the loader restores nil for
	// record models; an enum's declared-but-empty case list stays empty.
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "schema.yaml")

	doc := &Document{
		Models: []pymodel.ModelMetadata{
			{Name: "Record", BaseClasses: []string{"BaseModel"}, Fields: []pymodel.FieldMetadata{}},
			{Name: "Hollow", BaseClasses: []string{"Enum"}, IsEnum: true, EnumValues: []string{}, Fields: []pymodel.FieldMetadata{}},
		},
	}
	require.NoError(t, YAMLWriter.Write(doc, path))

	loaded, err := NewLoader(os.DirFS(tmpDir)).LoadFile("schema.yaml")
	require.NoError(t, err)
	require.Len(t, loaded.Models, 2)

	assert.Nil(t, loaded.Models[0].EnumValues)
	assert.NotNil(t, loaded.Models[1].EnumValues)
	assert.Empty(t, loaded.Models[1].EnumValues)
}

func TestLoadFile_HandAuthoredJSON(t *testing.T) {
	raw := `{
  "models": [
    {
      "name": "UserModel",
      "base_classes": ["BaseModel"],
      "is_enum": false,
      "enum_values": null,
      "docstring": null,
      "imports": [],
      "fields": [
        {
          "name": "email",
          "source_type": "Optional[str]",
          "target_type": "String?",
          "is_optional": true,
          "default_value": "None",
          "description": null,
          "is_list": false,
          "is_dict": false,
          "generic_args": ["str"]
        }
      ]
    }
  ],
  "generated_at": "2026-08-30T12:00:00Z",
  "source_directory": "models"
}`

	fsys := fstest.MapFS{
		"schema.json": &fstest.MapFile{Data: []byte(raw)},
	}

	doc, err := NewLoader(fsys).LoadFile("schema.json")
	require.NoError(t, err)

	require.Len(t, doc.Models, 1)
	model := doc.Models[0]
	assert.Equal(t, "UserModel", model.Name)
	assert.False(t, model.IsEnum)
	assert.Nil(t, model.EnumValues)

	require.Len(t, model.Fields, 1)
	field := model.Fields[0]
	assert.Equal(t, "Optional[str]", field.SourceType)
	assert.Equal(t, "String?", field.TargetType)
	assert.True(t, field.IsOptional)
	require.NotNil(t, field.DefaultValue)
	assert.Equal(t, "None", *field.DefaultValue)
	assert.Equal(t, []string{"str"}, field.GenericArgs)
}

func TestWriterFor(t *testing.T) {
	assert.Equal(t, ".yaml", WriterFor("yaml", "").Extension())
	assert.Equal(t, ".json", WriterFor("json", "schema.yaml").Extension())
	assert.Equal(t, ".yaml", WriterFor("", "out/schema.yml").Extension())
	assert.Equal(t, ".json", WriterFor("", "out/schema.json").Extension())
	assert.Equal(t, ".json", WriterFor("", "schema").Extension())
}
