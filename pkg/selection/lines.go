package selection

import (
	"github.com/yaklabco/triviakit/pkg/syntax"
	"github.com/yaklabco/triviakit/pkg/text"
)

// Lines selects the lines covered by span. The span must start at the start
// of a line and end at the end of a line, with or without its line break.
func Lines(lines []text.Line, span syntax.Span) Selection[text.Line] {
	first, last, ok := selectLines(lines, span)
	if !ok {
		return empty[text.Line](span)
	}
	return newSelection(lines, span, first, last)
}

// LinesInRange is Lines with a bound on the number of selected lines. An
// empty span selects nothing.
func LinesInRange(lines []text.Line, span syntax.Span, minCount, maxCount int) (Selection[text.Line], error) {
	if err := checkRange(minCount, maxCount); err != nil {
		return empty[text.Line](span), err
	}
	if span.IsEmpty() {
		return empty[text.Line](span), nil
	}

	first, last, ok := selectLines(lines, span)
	if !ok || !inRange(first, last, minCount, maxCount) {
		return empty[text.Line](span), nil
	}
	return newSelection(lines, span, first, last), nil
}

func selectLines(lines []text.Line, span syntax.Span) (int, int, bool) {
	if len(lines) == 0 {
		return -1, -1, false
	}

	first := 0
	for span.Start >= lines[first].EndIncludingLineBreak && first+1 < len(lines) {
		first++
	}
	if span.Start != lines[first].Start {
		return -1, -1, false
	}

	last := first
	for span.End() > lines[last].EndIncludingLineBreak && last+1 < len(lines) {
		last++
	}
	if span.End() != lines[last].End && span.End() != lines[last].EndIncludingLineBreak {
		return -1, -1, false
	}

	return first, last, true
}
