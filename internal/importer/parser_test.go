package importer

import (
	"testing"
)

func TestParserParse_NormalizesHeadersAndTracksLines(t *testing.T) {
	input := "\ufeffE-mail,First Name,\"Last Name\"\n" +
		"jane@example.com,Jane,Doe\n" +
		"\n" +
		"john@example.com,John\n"

	rows, err := NewParser(0).Parse([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := rows[0].Get("e_mail"); got != "jane@example.com" {
		t.Fatalf("expected normalized e_mail key, got %q (%v)", got, rows[0].Values)
	}
	if got := rows[0].Get("last_name"); got != "Doe" {
		t.Fatalf("expected last_name Doe, got %q", got)
	}
	if rows[0].Line != 2 || rows[1].Line != 4 {
		t.Fatalf("expected lines 2 and 4, got %d and %d", rows[0].Line, rows[1].Line)
	}
	if v, ok := rows[1].Values["last_name"]; !ok || v != "" {
		t.Fatalf("short row should be padded with empty value, got %q present=%v", v, ok)
	}
}

func TestParserParse_CustomDelimiter(t *testing.T) {
	rows, err := NewParser(';').Parse([]byte("name;price\nCoupe femme;35,50\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Get("price") != "35,50" {
		t.Fatalf("comma must stay inside the cell, got %q", rows[0].Get("price"))
	}
}

func TestParserParse_EmptyInputs(t *testing.T) {
	for name, input := range map[string]string{
		"empty":       "",
		"header only": "email,name\n",
		"blank lines": "\n\n",
	} {
		rows, err := NewParser(0).Parse([]byte(input))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if rows == nil || len(rows) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", name, rows)
		}
	}
}

func TestParserParse_DropsExtraValuesAndKeepsFirstDuplicateHeader(t *testing.T) {
	rows, err := NewParser(0).Parse([]byte("email,email,name\na@x.io,b@x.io,A,extra\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rows[0].Get("email"); got != "a@x.io" {
		t.Fatalf("expected first email column to win, got %q", got)
	}
	if len(rows[0].Values) != 2 {
		t.Fatalf("expected 2 keys, got %v", rows[0].Values)
	}
}

func TestCleanCellUnwrapsMatchingQuotesOnly(t *testing.T) {
	cases := map[string]string{
		"  'Jane Doe'  ": "Jane Doe",
		`"Spa"`:          "Spa",
		"O'":             "O'",
		"'twas":          "'twas",
		`5"`:             `5"`,
		"'":              "'",
		"\ufeff email ":  "email",
	}
	for in, want := range cases {
		if got := cleanCell(in); got != want {
			t.Fatalf("cleanCell(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRowIsEmpty(t *testing.T) {
	if !(Row{Values: map[string]string{"a": " ", "b": ""}}).IsEmpty() {
		t.Fatalf("whitespace-only row should be empty")
	}
	if (Row{Values: map[string]string{"a": "x"}}).IsEmpty() {
		t.Fatalf("row with a value should not be empty")
	}
}

func TestRowGetUsesFirstNonEmptyKey(t *testing.T) {
	row := Row{Values: map[string]string{"email": "", "client": " c@x.io "}}
	if got := row.Get("client_email", "email", "client"); got != "c@x.io" {
		t.Fatalf("expected alias lookup to find c@x.io, got %q", got)
	}
}

func TestParseDelimiter(t *testing.T) {
	cases := map[string]rune{",": ',', ";": ';', "tab": '\t', "Semicolon": ';', "|": '|'}
	for raw, want := range cases {
		got, err := ParseDelimiter(raw)
		if err != nil || got != want {
			t.Fatalf("ParseDelimiter(%q) = %q, %v", raw, got, err)
		}
	}
	for _, raw := range []string{"", ";;", `"`} {
		if _, err := ParseDelimiter(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
