// Package load reads table descriptions from YAML or JSON files into the
// input model consumed by the generator.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Project is a set of tables generated into one Go package.
type Project struct {
	Package string    `json:"package,omitempty" yaml:"package,omitempty" validate:"omitempty,goident"`
	Tables  []*Schema `json:"tables" yaml:"tables" validate:"required,min=1,dive,required"`
}

// Schema describes one table and the artifacts requested for it.
type Schema struct {
	Table             string   `json:"table" yaml:"table" validate:"required,sqlident"`
	Entity            string   `json:"entity,omitempty" yaml:"entity,omitempty" validate:"omitempty,goident"`
	Fields            []*Field `json:"fields" yaml:"fields" validate:"dive,required"`
	PrimaryKeys       []int    `json:"primary_keys,omitempty" yaml:"primary_keys,omitempty"`
	ExcludeFromSearch []int    `json:"exclude_from_search,omitempty" yaml:"exclude_from_search,omitempty"`
	Payload           *Payload `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Field describes one column of a table.
type Field struct {
	Name   string `json:"name" yaml:"name" validate:"required,goident"`
	Column string `json:"column,omitempty" yaml:"column,omitempty" validate:"omitempty,sqlident"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	// Import overrides the import path of a qualified type.
	Import string `json:"import,omitempty" yaml:"import,omitempty"`
	// Required reports whether the field is a constructor parameter.
	// A nil value means true.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
}

// IsRequired reports whether the field is a constructor parameter.
func (f *Field) IsRequired() bool {
	return f.Required == nil || *f.Required
}

// Payload requests the secondary payload declaration of a table.
type Payload struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,goident"`
	// Conversion requests the To<Entity> conversion method.
	// A nil value means true.
	Conversion *bool `json:"conversion,omitempty" yaml:"conversion,omitempty"`
}

// WantConversion reports whether the conversion method is requested.
func (p *Payload) WantConversion() bool {
	return p != nil && (p.Conversion == nil || *p.Conversion)
}

// DefaultType is the type of a field declared without one.
const DefaultType = "string"

// LoadFile reads, normalizes and validates the project described by the
// file at path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a project document. A document without a top-level "tables"
// key is decoded as a single Schema. JSON documents are accepted as YAML.
func Parse(data []byte) (*Project, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load: parse: %w", err)
	}
	p := &Project{}
	if hasKey(&doc, "tables") {
		if err := decodeStrict(data, p); err != nil {
			return nil, err
		}
	} else {
		s := &Schema{}
		if err := decodeStrict(data, s); err != nil {
			return nil, err
		}
		p.Tables = []*Schema{s}
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Normalize applies the defaults of every table in the project.
func (p *Project) Normalize() {
	for _, s := range p.Tables {
		if s != nil {
			s.Normalize()
		}
	}
}

// Normalize ends the field list at the first field without a name and fills
// in the default column and type of every remaining field.
func (s *Schema) Normalize() {
	for i, f := range s.Fields {
		if f == nil || f.Name == "" {
			s.Fields = s.Fields[:i]
			break
		}
	}
	for _, f := range s.Fields {
		if f.Column == "" {
			f.Column = f.Name
		}
		if f.Type == "" {
			f.Type = DefaultType
		}
	}
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("load: decode: %w", err)
	}
	return nil
}

// hasKey reports whether the document is a mapping with the given key.
func hasKey(doc *yaml.Node, key string) bool {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return false
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
