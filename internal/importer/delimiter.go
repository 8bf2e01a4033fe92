package importer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseDelimiter accepts a single character or one of the names "comma",
// "semicolon" and "tab".
func ParseDelimiter(raw string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: expected a single character", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", raw)
	}
	return r, nil
}
