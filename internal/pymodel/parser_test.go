// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package pymodel

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWarner struct {
	warnings []string
}

func (r *recordingWarner) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func parseSource(t *testing.T, files map[string]string) ([]ModelMetadata, *recordingWarner) {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}

	warner := &recordingWarner{}
	models, err := NewParser(fsys, warner).ParseAll()
	require.NoError(t, err)
	return models, warner
}

func TestParseAll_SimpleModel(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"test_model.py": `
from pydantic import BaseModel
from typing import Optional

class TestModel(BaseModel):
    name: str
    age: Optional[int] = None
    active: bool = True
`,
	})

	require.Len(t, models, 1)
	model := models[0]

	assert.Equal(t, "TestModel", model.Name)
	assert.Equal(t, RecordModel, model.Kind)
	assert.False(t, model.IsEnum)
	assert.Equal(t, []string{"BaseModel"}, model.BaseClasses)
	assert.Equal(t, []string{"pydantic.BaseModel", "typing.Optional"}, model.Imports)
	require.Len(t, model.Fields, 3)

	name := model.Fields[0]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "str", name.SourceType)
	assert.Equal(t, "String", name.TargetType)
	assert.False(t, name.IsOptional)
	assert.Nil(t, name.DefaultValue)

	age := model.Fields[1]
	assert.Equal(t, "age", age.Name)
	assert.Equal(t, "Optional[int]", age.SourceType)
	assert.Equal(t, "Int?", age.TargetType)
	assert.True(t, age.IsOptional)
	require.NotNil(t, age.DefaultValue)
	assert.Equal(t, "None", *age.DefaultValue)

	active := model.Fields[2]
	assert.Equal(t, "Bool", active.TargetType)
	require.NotNil(t, active.DefaultValue)
	assert.Equal(t, "True", *active.DefaultValue)
}

func TestParseAll_Enum(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"status.py": `
from enum import Enum

class StatusEnum(str, Enum):
    """Status enumeration"""
    ACTIVE = "active"
    INACTIVE = "inactive"
    PENDING = "pending"
`,
	})

	require.Len(t, models, 1)
	model := models[0]

	assert.Equal(t, "StatusEnum", model.Name)
	assert.Equal(t, EnumModel, model.Kind)
	assert.True(t, model.IsEnum)
	assert.Equal(t, []string{"str", "Enum"}, model.BaseClasses)
	assert.Equal(t, []string{"ACTIVE", "INACTIVE", "PENDING"}, model.EnumValues)
	assert.Empty(t, model.Fields)
	require.NotNil(t, model.Docstring)
	assert.Equal(t, "Status enumeration", *model.Docstring)
}

func TestParseAll_FieldDescriptor(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"complex.py": `
from pydantic import BaseModel, Field
from typing import List, Dict, Optional
from datetime import datetime

class ComplexModel(BaseModel):
    tags: List[str] = Field(description="List of tags")
    metadata: Dict[str, str] = Field(default_factory=dict)
    created_at: datetime.datetime
    settings: Optional[Dict[str, int]] = None
    author: Optional[str] = Field(None, description="Author name")
    retries: int = Field(default=3, description=compute_description())
`,
	})

	require.Len(t, models, 1)
	model := models[0]
	require.Len(t, model.Fields, 6)

	tags := model.Fields[0]
	assert.Equal(t, "[String]", tags.TargetType)
	assert.True(t, tags.IsList)
	require.NotNil(t, tags.Description)
	assert.Equal(t, "List of tags", *tags.Description)
	assert.Nil(t, tags.DefaultValue)

	metadata := model.Fields[1]
	assert.Equal(t, "[String: String]", metadata.TargetType)
	assert.True(t, metadata.IsDict)
	assert.Equal(t, []string{"str", "str"}, metadata.GenericArgs)
	assert.Nil(t, metadata.DefaultValue)

	created := model.Fields[2]
	assert.Equal(t, "Date", created.TargetType)

	settings := model.Fields[3]
	assert.True(t, settings.IsOptional)
	assert.True(t, settings.IsDict)
	assert.Equal(t, "[String: Int]?", settings.TargetType)

	author := model.Fields[4]
	require.NotNil(t, author.DefaultValue)
	assert.Equal(t, "None", *author.DefaultValue)
	require.NotNil(t, author.Description)
	assert.Equal(t, "Author name", *author.Description)

	// A non-literal description expression is ignored, never evaluated.
	retries := model.Fields[5]
	require.NotNil(t, retries.DefaultValue)
	assert.Equal(t, "3", *retries.DefaultValue)
	assert.Nil(t, retries.Description)
}

func TestParseAll_NestedGenericArgs(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"nested.py": `
from pydantic import BaseModel
from typing import Dict, List

class NestedModel(BaseModel):
    lookup: Dict[str, List[int]]
    matrix: List[List[str]]
`,
	})

	require.Len(t, models, 1)

	lookup := models[0].Fields[0]
	assert.Equal(t, []string{"str", "List[int]"}, lookup.GenericArgs)
	assert.Equal(t, "[String: [Int]]", lookup.TargetType)

	matrix := models[0].Fields[1]
	assert.Equal(t, []string{"List[str]"}, matrix.GenericArgs)
	assert.Equal(t, "[[String]]", matrix.TargetType)
}

func TestParseAll_QualifiedBaseAndSkippedClasses(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"mixed.py": `
import pydantic

class QualifiedModel(pydantic.BaseModel):
    name: str

class StrictModel(StrictBaseModel):
    name: str

class PlainClass:
    name: str

class Helper(object):
    pass
`,
	})

	require.Len(t, models, 2)
	assert.Equal(t, "QualifiedModel", models[0].Name)
	assert.Equal(t, []string{"pydantic.BaseModel"}, models[0].BaseClasses)
	assert.Equal(t, "StrictModel", models[1].Name)
}

func TestParseAll_FaultIsolation(t *testing.T) {
	models, warner := parseSource(t, map[string]string{
		"good_one.py": `
from pydantic import BaseModel

class GoodOne(BaseModel):
    name: str
`,
		"broken.py": `
from pydantic import BaseModel

class Broken(BaseModel):
    name: str = Field(description="unterminated
`,
		"good_two.py": `
from pydantic import BaseModel

class GoodTwo(BaseModel):
    count: int
`,
	})

	require.Len(t, models, 2)
	names := []string{models[0].Name, models[1].Name}
	assert.Contains(t, names, "GoodOne")
	assert.Contains(t, names, "GoodTwo")

	require.NotEmpty(t, warner.warnings)
	assert.Contains(t, warner.warnings[0], "broken.py")
}

func TestParseAll_SkipsDunderFiles(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"__init__.py": `
from pydantic import BaseModel

class ShouldBeSkipped(BaseModel):
    name: str
`,
		"notes.txt": `class NotPython(BaseModel):`,
	})

	assert.Empty(t, models)
}

func TestParseAll_MultilineFieldDescriptor(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"article.py": `
from pydantic import BaseModel, Field

class Article(BaseModel):
    """News article model"""

    title: str = Field(
        description="Article headline",
    )
`,
	})

	require.Len(t, models, 1)
	model := models[0]
	require.NotNil(t, model.Docstring)
	assert.Equal(t, "News article model", *model.Docstring)

	require.Len(t, model.Fields, 1)
	require.NotNil(t, model.Fields[0].Description)
	assert.Equal(t, "Article headline", *model.Fields[0].Description)
}

func TestParseAll_MethodsDoNotContributeFields(t *testing.T) {
	models, _ := parseSource(t, map[string]string{
		"user.py": `
from pydantic import BaseModel

class User(BaseModel):
    name: str

    def display_name(self) -> str:
        label: str = "user"
        return label
`,
	})

	require.Len(t, models, 1)
	require.Len(t, models[0].Fields, 1)
	assert.Equal(t, "name", models[0].Fields[0].Name)
}

func TestParseAll_UnresolvedReferenceWarning(t *testing.T) {
	models, warner := parseSource(t, map[string]string{
		"report.py": `
from pydantic import BaseModel

class Report(BaseModel):
    status: ReportStatus
    author: Person
`,
		"person.py": `
from pydantic import BaseModel

class Person(BaseModel):
    name: str
`,
	})

	require.Len(t, models, 2)

	joined := fmt.Sprint(warner.warnings)
	assert.Contains(t, joined, "ReportStatus")
	assert.NotContains(t, joined, "Person ")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bases []string
		want  Kind
	}{
		{[]string{"BaseModel"}, RecordModel},
		{[]string{"StrictBaseModel"}, RecordModel},
		{[]string{"pydantic.BaseModel"}, RecordModel},
		{[]string{"str", "Enum"}, EnumModel},
		{[]string{"enum.IntEnum"}, EnumModel},
		{[]string{"object"}, Unrecognized},
		{nil, Unrecognized},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.bases), "bases=%v", tt.bases)
	}
}
