// Package csvutil holds the lenient CSV dialect shared by the registry
// extracts and the generated reports.
//
// Parsing accepts a quote-aware subset of RFC 4180 one line at a time,
// fields are trimmed and quotes may open anywhere inside a field. Writing
// quotes a field only when it contains a comma, a quote or a newline.
package csvutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseLine splits a single line into trimmed fields. Commas inside quotes
// do not separate fields and a doubled quote inside quotes is a literal
// quote. An unterminated quote swallows the rest of the line.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuotes {
			switch {
			case ch == '"' && i+1 < len(line) && line[i+1] == '"':
				current.WriteByte('"')
				i++
			case ch == '"':
				inQuotes = false
			default:
				current.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case ',':
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// EscapeField quotes a value for output when it contains a comma, a quote
// or a newline, doubling any quotes inside.
func EscapeField(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func JoinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}
	return strings.Join(escaped, ",")
}

// Render joins the header and rows with "\n", without a trailing newline.
func Render(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, JoinRow(header))
	for _, r := range rows {
		lines = append(lines, JoinRow(r))
	}
	return strings.Join(lines, "\n")
}

// WriteReport renders the report and replaces whatever exists at path,
// creating parent directories as needed.
func WriteReport(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if dir != "" {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(Render(header, rows)), 0644)
}
