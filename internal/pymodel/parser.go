// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package pymodel

import (
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/utahnews/swiftgen/internal/typemap"
)

// Warner receives parse-stage diagnostics. A nil Warner discards them.
type Warner interface {
	Warnf(format string, args ...any)
}

type discardWarner struct{}

func (discardWarner) Warnf(string, ...any) {}

// Parser extracts model metadata from every Python file under a
// filesystem root. A failure in one file is logged and isolated; the
// remaining files still contribute their models.
type Parser struct {
	fsys fs.FS
	warn Warner
}

// NewParser creates a Parser reading from the given filesystem.
func NewParser(fsys fs.FS, warn Warner) *Parser {
	if warn == nil {
		warn = discardWarner{}
	}
	return &Parser{fsys: fsys, warn: warn}
}

// ParseAll walks the filesystem for .py files (skipping __-prefixed
// names) and returns the parsed models in walk order. After parsing,
// forward references are checked against the set of declared names and
// unresolved ones reported as warnings.
func (p *Parser) ParseAll() ([]ModelMetadata, error) {
	var models []ModelMetadata

	err := fs.WalkDir(p.fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := path.Base(filePath)
		if !strings.HasSuffix(name, ".py") || strings.HasPrefix(name, "__") {
			return nil
		}

		fileModels, err := p.parseFile(filePath)
		if err != nil {
			p.warn.Warnf("failed to parse %s: %v", filePath, err)
			return nil
		}
		models = append(models, fileModels...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.checkReferences(models)
	return models, nil
}

// parseFile parses one source file and returns its models.
func (p *Parser) parseFile(filePath string) ([]ModelMetadata, error) {
	f, err := p.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	src, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	lines, err := logicalLines(string(src))
	if err != nil {
		return nil, err
	}

	imports := extractImports(lines)

	var models []ModelMetadata
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line.indent != 0 {
			continue
		}
		name, bases, ok := parseClassHeader(line.text)
		if !ok {
			continue
		}

		// The class body is every following line with deeper indent.
		bodyEnd := i + 1
		for bodyEnd < len(lines) && lines[bodyEnd].indent > 0 {
			bodyEnd++
		}
		body := lines[i+1 : bodyEnd]
		i = bodyEnd - 1

		if model, ok := parseClass(name, bases, body, imports); ok {
			models = append(models, model)
		}
	}
	return models, nil
}

// parseClassHeader recognizes "class Name(Base, other.Base):" forms.
// Keyword arguments such as metaclass= are not base classes.
func parseClassHeader(text string) (name string, bases []string, ok bool) {
	rest, found := strings.CutPrefix(text, "class ")
	if !found {
		return "", nil, false
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), ":")

	open := strings.Index(rest, "(")
	if open < 0 {
		name = strings.TrimSpace(rest)
		return name, nil, isIdentifier(name)
	}
	if !strings.HasSuffix(rest, ")") {
		return "", nil, false
	}

	name = strings.TrimSpace(rest[:open])
	for _, base := range splitTopLevel(rest[open+1:len(rest)-1], ',') {
		if strings.Contains(base, "=") {
			continue
		}
		bases = append(bases, base)
	}
	return name, bases, isIdentifier(name)
}

// parseClass extracts a model from a classified class body. The second
// return is false for unrecognized declarations.
func parseClass(name string, bases []string, body []logicalLine, imports []string) (ModelMetadata, bool) {
	kind := Classify(bases)
	if kind == Unrecognized {
		return ModelMetadata{}, false
	}

	model := ModelMetadata{
		Name:        name,
		BaseClasses: bases,
		IsEnum:      kind == EnumModel,
		Imports:     imports,
		Kind:        kind,
	}

	// Only the immediate top-level body contributes; nested blocks
	// (methods, inner classes) sit at deeper indents.
	bodyIndent := -1
	first := true
	for _, line := range body {
		if bodyIndent < 0 {
			bodyIndent = line.indent
		}
		if line.indent != bodyIndent {
			continue
		}

		// A docstring is recognized only as the very first statement.
		if first {
			first = false
			if doc, ok := unquoteString(line.text); ok {
				doc = strings.TrimSpace(doc)
				model.Docstring = &doc
				continue
			}
		}

		switch kind {
		case RecordModel:
			if field, ok := parseField(line.text); ok {
				model.Fields = append(model.Fields, field)
			}
		case EnumModel:
			if value, ok := parseEnumValue(line.text); ok {
				model.EnumValues = append(model.EnumValues, value)
			}
		}
	}

	if model.Fields == nil {
		model.Fields = []FieldMetadata{}
	}
	if kind == EnumModel && model.EnumValues == nil {
		model.EnumValues = []string{}
	}
	return model, true
}

// parseField extracts field metadata from an annotated assignment,
// "name: Type" or "name: Type = value".
func parseField(text string) (FieldMetadata, bool) {
	colon := indexTopLevel(text, ':')
	if colon < 0 {
		return FieldMetadata{}, false
	}
	name := strings.TrimSpace(text[:colon])
	if !isIdentifier(name) {
		return FieldMetadata{}, false
	}

	rest := text[colon+1:]
	sourceType := rest
	var value string
	if eq := indexTopLevel(rest, '='); eq >= 0 {
		sourceType = rest[:eq]
		value = strings.TrimSpace(rest[eq+1:])
	}
	sourceType = strings.TrimSpace(sourceType)
	if sourceType == "" {
		return FieldMetadata{}, false
	}

	field := FieldMetadata{
		Name:       name,
		SourceType: sourceType,
		IsOptional: strings.Contains(sourceType, "Optional[") || strings.Contains(sourceType, "Union["),
		IsList:     strings.Contains(sourceType, "List[") || sourceType == "list",
		IsDict:     strings.Contains(sourceType, "Dict[") || sourceType == "dict",
	}
	if args := typemap.ExtractArgs(sourceType); args != nil {
		field.GenericArgs = args
	} else {
		field.GenericArgs = []string{}
	}
	field.DefaultValue, field.Description = parseFieldValue(value)
	field.TargetType, _ = typemap.Map(sourceType, field.GenericArgs)

	return field, true
}

// parseFieldValue interprets a field's right-hand side. A Field(...)
// descriptor contributes its default keyword (or first positional
// argument) and a literal-string description keyword. Any other
// expression is copied verbatim as the default; non-Field calls
// contribute nothing.
func parseFieldValue(value string) (defaultValue, description *string) {
	if value == "" {
		return nil, nil
	}

	callee, args, isCall := splitCall(value)
	if !isCall {
		return &value, nil
	}
	if callee != "Field" {
		return nil, nil
	}

	var positional *string
	for _, arg := range args {
		eq := indexTopLevel(arg, '=')
		if eq < 0 {
			if positional == nil {
				a := strings.TrimSpace(arg)
				positional = &a
			}
			continue
		}
		key := strings.TrimSpace(arg[:eq])
		val := strings.TrimSpace(arg[eq+1:])
		switch key {
		case "default":
			defaultValue = &val
		case "description":
			// Only literal strings count; expressions are never
			// evaluated.
			if text, ok := unquoteString(val); ok {
				description = &text
			}
		}
	}

	if defaultValue == nil && positional != nil {
		defaultValue = positional
	}
	return defaultValue, description
}

// parseEnumValue extracts the identifier of a simple assignment,
// "NAME = value". The literal name is the case, not its value.
func parseEnumValue(text string) (string, bool) {
	eq := indexTopLevel(text, '=')
	if eq < 0 {
		return "", false
	}
	name := strings.TrimSpace(text[:eq])
	if !isIdentifier(name) {
		return "", false
	}
	return name, true
}

// extractImports collects import paths from a whole file, in source
// order: "import a, b" yields a and b; "from m import x" yields m.x.
func extractImports(lines []logicalLine) []string {
	var imports []string
	for _, line := range lines {
		if line.indent != 0 {
			continue
		}
		switch {
		case strings.HasPrefix(line.text, "import "):
			for _, name := range splitTopLevel(line.text[len("import "):], ',') {
				imports = append(imports, importedName(name))
			}
		case strings.HasPrefix(line.text, "from "):
			rest := line.text[len("from "):]
			idx := strings.Index(rest, " import ")
			if idx < 0 {
				continue
			}
			module := strings.TrimSuffix(strings.TrimSpace(rest[:idx]), ".")
			for _, name := range splitTopLevel(rest[idx+len(" import "):], ',') {
				imports = append(imports, module+"."+importedName(name))
			}
		}
	}
	return imports
}

// importedName strips an "as alias" clause, keeping the source name.
func importedName(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, " as "); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// checkReferences resolves forward references against the set of
// declared model names and reports any that resolve to nothing.
func (p *Parser) checkReferences(models []ModelMetadata) {
	declared := make(map[string]bool, len(models))
	for _, m := range models {
		declared[m.Name] = true
	}

	for _, m := range models {
		for _, f := range m.Fields {
			for _, ref := range typemap.References(typemap.Parse(f.SourceType)) {
				if !declared[ref] {
					p.warn.Warnf("%s.%s references undeclared type %s", m.Name, f.Name, ref)
				}
			}
		}
	}
}
