// Package diag renders human-readable diagnostics for a parsed tree's
// invalid-token surface and for the typed category-2/3 failures pkg/gdparse
// can return. The reader itself never "errors" for malformed input (spec.md
// §7 category 1) — every invalid token is captured inside the tree — but a
// caller such as the CLI still needs to show the user where things went
// wrong, so this package adapts the teacher's internal/errors.CompilerError
// (source-line extraction, caret indicator, optional ANSI color) to that
// job.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/gdcst/pkg/token"
)

// Diagnostic is one reportable location in a source file: an invalid token
// or a typed guard failure, rendered against the original text.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New builds a Diagnostic for pos, formatted against source.
func New(message, source, file string, pos token.Position) *Diagnostic {
	return &Diagnostic{Message: message, Source: source, File: file, Pos: pos}
}

// FromInvalidToken builds a Diagnostic describing an invalid-token leaf.
func FromInvalidToken(tok token.Token, source, file string) *Diagnostic {
	return New(fmt.Sprintf("unrecognized input %q", tok.Text), source, file, tok.Pos)
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped like any other error.
func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic with a file:line:column header, the
// offending source line, and a caret pointing at the column. If color is
// true, ANSI codes highlight the caret and message.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", d.Pos.Line, d.Pos.Column)
	}
	sb.WriteString(d.Message)
	sb.WriteString("\n")

	line := d.sourceLine(d.Pos.Line)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a sequence of diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d issue(s) found:\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
