// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package pymodel extracts model metadata from Pydantic source
// declarations.
package pymodel

import "strings"

// Kind classifies a source class declaration. It is assigned once
// during parsing and never re-inferred from base-class text.
type Kind int

const (
	// Unrecognized declarations carry no model or enum marker and are
	// dropped silently.
	Unrecognized Kind = iota
	// RecordModel declarations inherit a Pydantic base-model marker.
	RecordModel
	// EnumModel declarations inherit an enumeration marker.
	EnumModel
)

const (
	recordMarker = "BaseModel"
	enumMarker   = "Enum"
)

// Classify assigns the declaration kind from base-class names. A base
// name textually containing the model marker wins, even when
// qualified; the enum marker is checked second.
func Classify(baseClasses []string) Kind {
	for _, base := range baseClasses {
		if strings.Contains(base, recordMarker) {
			return RecordModel
		}
	}
	for _, base := range baseClasses {
		if strings.Contains(base, enumMarker) {
			return EnumModel
		}
	}
	return Unrecognized
}

// FieldMetadata describes one annotated field of a record model.
type FieldMetadata struct {
	Name         string   `json:"name" yaml:"name"`
	SourceType   string   `json:"source_type" yaml:"source_type"`
	TargetType   string   `json:"target_type" yaml:"target_type"`
	IsOptional   bool     `json:"is_optional" yaml:"is_optional"`
	DefaultValue *string  `json:"default_value" yaml:"default_value"`
	Description  *string  `json:"description" yaml:"description"`
	IsList       bool     `json:"is_list" yaml:"is_list"`
	IsDict       bool     `json:"is_dict" yaml:"is_dict"`
	GenericArgs  []string `json:"generic_args" yaml:"generic_args"`
}

// ModelMetadata describes one parsed declaration. Records hold fields;
// enums hold case identifiers. Both are immutable after parsing.
type ModelMetadata struct {
	Name        string          `json:"name" yaml:"name"`
	BaseClasses []string        `json:"base_classes" yaml:"base_classes"`
	IsEnum      bool            `json:"is_enum" yaml:"is_enum"`
	EnumValues  []string        `json:"enum_values" yaml:"enum_values"`
	Docstring   *string         `json:"docstring" yaml:"docstring"`
	Imports     []string        `json:"imports" yaml:"imports"`
	Fields      []FieldMetadata `json:"fields" yaml:"fields"`

	// Kind is the parse-time classification; the interchange document
	// carries it as is_enum.
	Kind Kind `json:"-" yaml:"-"`
}
