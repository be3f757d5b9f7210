package mython

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError reports a lexing or parsing failure with the physical line it
// was detected on. CodeFrame, when present, is a rendered excerpt of the
// offending source line.
type SyntaxError struct {
	Message   string
	Line      int
	CodeFrame string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(e.CodeFrame)
	}
	return b.String()
}

func formatCodeFrame(source string, line int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	lineLabel := strconv.Itoa(line)
	return fmt.Sprintf("  --> line %d\n %s | %s", line, lineLabel, lines[line-1])
}

// withCodeFrame attaches a source excerpt to syntax errors that carry a line.
func withCodeFrame(err error, source string) error {
	var syn *SyntaxError
	if !errors.As(err, &syn) || syn.CodeFrame != "" {
		return err
	}
	syn.CodeFrame = formatCodeFrame(source, syn.Line)
	return syn
}
