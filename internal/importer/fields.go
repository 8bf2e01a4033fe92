package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var truthyValues = map[string]struct{}{
	"true": {},
	"1":    {},
	"oui":  {},
}

// Day-first layouts come before month-first ones: sources are mostly
// exported from European tools.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
}

var timeLayouts = []string{"15:04", "15:04:05", "15h04", "15h"}

// fieldReader coerces the raw cells of one row into typed values following
// the schema. The first failure on a required field is kept in err; optional
// fields that fail to parse fall back to their default.
type fieldReader struct {
	schema *Schema
	row    Row
	err    error
}

func newFieldReader(schema *Schema, row Row) *fieldReader {
	return &fieldReader{schema: schema, row: row}
}

func (r *fieldReader) Err() error {
	return r.err
}

func (r *fieldReader) spec(name string) FieldSpec {
	f, ok := r.schema.Field(name)
	if !ok {
		panic(fmt.Sprintf("%s schema has no field %q", r.schema.Type, name))
	}
	return f
}

func (r *fieldReader) raw(name string) (FieldSpec, string) {
	f := r.spec(name)
	return f, r.row.Get(f.keys()...)
}

func (r *fieldReader) fail(f FieldSpec, raw string) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid %s: %s", f.Name, raw)
	}
}

func (r *fieldReader) String(name string) string {
	f, raw := r.raw(name)
	if raw == "" {
		return f.Default
	}
	return raw
}

func (r *fieldReader) OptionalString(name string) *string {
	v := r.String(name)
	if v == "" {
		return nil
	}
	return &v
}

// Email lower-cases the value and requires an "@".
func (r *fieldReader) Email(name string) string {
	f, raw := r.raw(name)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "@") {
		if f.Required {
			r.fail(f, raw)
		}
		return ""
	}
	return strings.ToLower(raw)
}

func (r *fieldReader) Int(name string) int {
	v := r.OptionalInt(name)
	if v == nil {
		return 0
	}
	return *v
}

func (r *fieldReader) OptionalInt(name string) *int {
	f, raw := r.raw(name)
	if raw != "" {
		if n, err := parseInt(raw); err == nil {
			return &n
		}
		if f.Required {
			r.fail(f, raw)
			return nil
		}
	}
	if f.Default == "" {
		return nil
	}
	n, err := parseInt(f.Default)
	if err != nil {
		return nil
	}
	return &n
}

func (r *fieldReader) Decimal(name string) decimal.Decimal {
	v := r.OptionalDecimal(name)
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func (r *fieldReader) OptionalDecimal(name string) *decimal.Decimal {
	f, raw := r.raw(name)
	if raw != "" {
		if d, err := parseDecimal(raw); err == nil {
			return &d
		}
		if f.Required {
			r.fail(f, raw)
			return nil
		}
	}
	if f.Default == "" {
		return nil
	}
	d, err := parseDecimal(f.Default)
	if err != nil {
		return nil
	}
	return &d
}

func (r *fieldReader) Date(name string) time.Time {
	v := r.OptionalDate(name)
	if v == nil {
		return time.Time{}
	}
	return *v
}

func (r *fieldReader) OptionalDate(name string) *time.Time {
	f, raw := r.raw(name)
	if raw == "" {
		return nil
	}
	t, err := parseDate(raw)
	if err != nil {
		if f.Required {
			r.fail(f, raw)
		}
		return nil
	}
	return &t
}

// Clock returns the hour and minute offset of a time-of-day cell.
func (r *fieldReader) Clock(name string) (time.Duration, bool) {
	f, raw := r.raw(name)
	if raw == "" {
		return 0, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
		}
	}
	if f.Required {
		r.fail(f, raw)
	}
	return 0, false
}

func (r *fieldReader) Bool(name string) bool {
	f, raw := r.raw(name)
	if raw == "" {
		raw = f.Default
	}
	return parseBool(raw)
}

// Enum returns the lower-cased value when allowed, the default otherwise.
func (r *fieldReader) Enum(name string) string {
	f, raw := r.raw(name)
	v := strings.ToLower(raw)
	for _, allowed := range f.EnumValues {
		if v == allowed {
			return v
		}
	}
	return f.Default
}

// List splits a semicolon separated cell, dropping blank items.
func (r *fieldReader) List(name string) []string {
	f, raw := r.raw(name)
	if raw == "" {
		raw = f.Default
	}
	return splitList(raw)
}

func parseBool(raw string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// parseInt also accepts whole numbers written as decimals ("5.0", "4,0"),
// as spreadsheet exports often do.
func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	d, err := parseDecimal(raw)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	n := d.IntPart()
	if int64(int(n)) != n {
		return 0, fmt.Errorf("integer out of range: %q", raw)
	}
	return int(n), nil
}

// parseDecimal accepts a comma as decimal separator and ignores spaces and
// currency symbols.
func parseDecimal(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '€', '$', '£':
			return -1
		case ',':
			return '.'
		}
		return r
	}, raw)
	return decimal.NewFromString(cleaned)
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ";") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
