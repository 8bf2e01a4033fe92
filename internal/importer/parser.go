package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedFile is returned when the delimited text cannot be tokenized at all.
var ErrMalformedFile = errors.New("file could not be parsed")

const DefaultDelimiter = ','

// Row is one data line of the source file keyed by normalized header.
type Row struct {
	Line   int
	Values map[string]string
}

// Get returns the first non-empty value among keys.
func (r Row) Get(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(r.Values[key]); v != "" {
			return v
		}
	}
	return ""
}

func (r Row) IsEmpty() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type Parser struct {
	delimiter rune
}

func NewParser(delimiter rune) *Parser {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Parser{delimiter: delimiter}
}

// Parse reads the header line then every following non-blank line. Short
// lines are padded with empty strings; extra values are dropped. A file with
// no data lines yields an empty slice and no error.
func (p *Parser) Parse(contents []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(contents))
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	for header == nil {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return []Row{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		if isRecordEmpty(record) {
			continue
		}
		header = make([]string, len(record))
		for i, h := range record {
			header[i] = normalizeHeader(h)
		}
	}

	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		if isRecordEmpty(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{Line: line, Values: rowToMap(header, record)})
	}
	return rows, nil
}

func rowToMap(header []string, record []string) map[string]string {
	out := make(map[string]string, len(header))
	for idx, key := range header {
		if key == "" {
			continue
		}
		if _, seen := out[key]; seen {
			continue
		}
		val := ""
		if idx < len(record) {
			val = cleanCell(record[idx])
		}
		out[key] = val
	}
	return out
}

func normalizeHeader(h string) string {
	h = strings.ToLower(cleanCell(h))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	return h
}

// cleanCell trims whitespace and unwraps a value enclosed in a matching pair
// of quotes. Lone quotes at either end are part of the value.
func cleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	return v
}

func isRecordEmpty(record []string) bool {
	for _, field := range record {
		if cleanCell(field) != "" {
			return false
		}
	}
	return true
}
