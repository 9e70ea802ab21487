// Package diag turns located parse errors into compiler-style messages
// that quote the offending source line.
package diag

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/dhamidi/parsec/text"
)

// Diagnostic is a renderer-independent view of a parse failure.
type Diagnostic struct {
	Filename string
	Range    text.Range
	Located  bool
	Message  string
	Hints    []string
}

// FromError extracts the source range and user hints from err. Errors
// without a text.Located in their chain produce a diagnostic with
// Located set to false.
func FromError(filename string, err error) Diagnostic {
	d := Diagnostic{
		Filename: filename,
		Message:  err.Error(),
		Hints:    errors.GetAllHints(err),
	}

	var loc text.Located[error]
	if errors.As(err, &loc) {
		d.Range = loc.Range
		d.Located = true
		if loc.Target != nil {
			d.Message = loc.Target.Error()
		}
	}
	return d
}

func (d Diagnostic) String() string {
	var prefix []string
	if d.Filename != "" {
		prefix = append(prefix, d.Filename)
	}
	if d.Located {
		prefix = append(prefix, d.Range.Start.String())
	}
	if len(prefix) == 0 {
		return d.Message
	}
	return strings.Join(prefix, ":") + ": " + d.Message
}

type Options struct {
	// Color enables ANSI colours through pterm.
	Color bool
}

// Render writes d to w. When d is located, the source line holding the
// start of the range is quoted and the range is underlined on it.
func Render(w io.Writer, source string, d Diagnostic, opts Options) error {
	paint := func(color func(...any) string, s string) string {
		if !opts.Color {
			return s
		}
		return color(s)
	}

	var b strings.Builder
	b.WriteString(paint(pterm.Red, "error: "))
	b.WriteString(d.String())
	b.WriteByte('\n')

	if d.Located {
		line, prefix, width := excerpt(source, d.Range)
		gutter := fmt.Sprintf("%4d | ", d.Range.Start.Row())
		b.WriteString(paint(pterm.Gray, gutter))
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(paint(pterm.Gray, strings.Repeat(" ", len(gutter)-2)+"| "))
		b.WriteString(prefix)
		b.WriteString(paint(pterm.Cyan, "^"+strings.Repeat("~", width-1)))
		b.WriteByte('\n')
	}

	for _, hint := range d.Hints {
		b.WriteString(paint(pterm.Yellow, "hint: "))
		b.WriteString(hint)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// excerpt returns the line containing r.Start, the padding that lines up
// a marker under r.Start, and the marker width in runes. The marker is
// clipped to the end of the line and is at least one rune wide.
func excerpt(source string, r text.Range) (line, prefix string, width int) {
	start := min(r.Start.ByteOffset(), len(source))
	lineStart := strings.LastIndexByte(source[:start], '\n') + 1
	lineEnd := len(source)
	if i := strings.IndexByte(source[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	line = strings.TrimSuffix(source[lineStart:lineEnd], "\r")

	var pad strings.Builder
	for _, c := range source[lineStart:start] {
		if c == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
	}

	end := min(max(r.End.ByteOffset(), start), lineStart+len(line))
	width = utf8.RuneCountInString(source[min(start, end):end])
	if width < 1 {
		width = 1
	}
	return line, pad.String(), width
}
