package importer

import (
	"strings"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

// FieldKind is the target type a raw cell is coerced to.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindEmail   FieldKind = "email"
	KindInt     FieldKind = "int"
	KindDecimal FieldKind = "decimal"
	KindDate    FieldKind = "date"
	KindTime    FieldKind = "time"
	KindBool    FieldKind = "bool"
	KindEnum    FieldKind = "enum"
	KindList    FieldKind = "list"
)

// FieldSpec describes one column of an entity schema.
type FieldSpec struct {
	Name       string
	Aliases    []string
	Kind       FieldKind
	Required   bool
	Default    string
	EnumValues []string
	Sample     string
}

func (f FieldSpec) keys() []string {
	return append([]string{f.Name}, f.Aliases...)
}

// Reference declares a column pointing at an already persisted record.
// Verbatim references are stored as written and never looked up.
type Reference struct {
	Field       string
	Target      domain.EntityType
	LookupField string
	Required    bool
	Verbatim    bool
}

// Schema is the static descriptor of one importable entity type.
type Schema struct {
	Type       domain.EntityType
	Label      string
	Fields     []FieldSpec
	UniqueKey  []string
	References []Reference
}

func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Columns returns the canonical header names in declaration order.
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

func (s *Schema) SampleRow() []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Sample
	}
	return out
}

// MissingRequired lists required fields that are absent or empty in row.
func (s *Schema) MissingRequired(row Row) []string {
	var missing []string
	for _, f := range s.Fields {
		if f.Required && row.Get(f.keys()...) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func missingFieldsMessage(missing []string) string {
	if len(missing) == 1 {
		return "missing required field: " + missing[0]
	}
	return "missing required fields: " + strings.Join(missing, ", ")
}
