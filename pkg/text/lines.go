// Package text provides line metadata over source text.
package text

import (
	"sort"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Line describes one line of source text by byte offsets.
type Line struct {
	// Start is the offset of the first byte of the line.
	Start int

	// End is the offset just past the line content, before the line break.
	End int

	// EndIncludingLineBreak is the offset just past the line break.
	// It equals End on the last line.
	EndIncludingLineBreak int
}

// Span returns the line content range.
func (l Line) Span() syntax.Span {
	return syntax.FromBounds(l.Start, l.End)
}

// SpanIncludingLineBreak returns the line range including its line break.
func (l Line) SpanIncludingLineBreak() syntax.Span {
	return syntax.FromBounds(l.Start, l.EndIncludingLineBreak)
}

// BuildLines constructs line metadata from text.
// It handles LF (\n), CRLF (\r\n), and lone CR (\r) line endings. Text that
// ends with a line break has a final empty line, and empty text has one
// empty line.
func BuildLines(text string) []Line {
	lines := make([]Line, 0, 1)
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		char := text[idx]
		if char != '\n' && char != '\r' {
			continue
		}

		end := idx
		if char == '\r' && idx+1 < len(text) && text[idx+1] == '\n' {
			idx++
		}

		lines = append(lines, Line{
			Start:                 lineStart,
			End:                   end,
			EndIncludingLineBreak: idx + 1,
		})
		lineStart = idx + 1
	}

	// Last line (may be empty after a trailing line break).
	lines = append(lines, Line{
		Start:                 lineStart,
		End:                   len(text),
		EndIncludingLineBreak: len(text),
	})

	return lines
}

// LineIndex returns the 0-based index of the line containing offset, or -1 if
// offset is outside the text. An offset at the very end of the text belongs to
// the last line.
func LineIndex(lines []Line, offset int) int {
	if len(lines) == 0 || offset < 0 || offset > lines[len(lines)-1].EndIncludingLineBreak {
		return -1
	}

	idx := sort.Search(len(lines), func(i int) bool {
		return lines[i].EndIncludingLineBreak > offset
	})
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	return idx
}

// Content returns the text of a line, excluding its line break.
func Content(text string, line Line) string {
	if line.Start < 0 || line.End > len(text) || line.Start > line.End {
		return ""
	}
	return text[line.Start:line.End]
}
