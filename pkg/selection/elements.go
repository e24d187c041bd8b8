package selection

import (
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Elements selects the list elements covered by span. The span must start
// within the leading trivia of an element (or at its first token) and end
// between the end of an element and the end of the separator that follows
// it, trivia included.
func Elements(list syntax.SeparatedList, span syntax.Span) Selection[syntax.Node] {
	elements := list.Elements()
	first, last, ok := selectElements(list, elements, span)
	if !ok {
		return empty[syntax.Node](span)
	}
	return newSelection(elements, span, first, last)
}

// ElementsInRange is Elements with a bound on the number of selected
// elements. An empty span selects nothing.
func ElementsInRange(list syntax.SeparatedList, span syntax.Span, minCount, maxCount int) (Selection[syntax.Node], error) {
	if err := checkRange(minCount, maxCount); err != nil {
		return empty[syntax.Node](span), err
	}
	if span.IsEmpty() {
		return empty[syntax.Node](span), nil
	}

	elements := list.Elements()
	first, last, ok := selectElements(list, elements, span)
	if !ok || !inRange(first, last, minCount, maxCount) {
		return empty[syntax.Node](span), nil
	}
	return newSelection(elements, span, first, last), nil
}

func selectElements(list syntax.SeparatedList, elements []syntax.Node, span syntax.Span) (int, int, bool) {
	if len(elements) == 0 {
		return -1, -1, false
	}

	first := 0
	for span.Start >= elements[first].FullSpan().End() && first+1 < len(elements) {
		first++
	}
	if span.Start < elements[first].FullSpan().Start || span.Start > elements[first].Span().Start {
		return -1, -1, false
	}

	last := first
	for span.End() > selectionEnd(list, elements, last) && last+1 < len(elements) {
		last++
	}
	if span.End() < elements[last].Span().End() || span.End() > selectionEnd(list, elements, last) {
		return -1, -1, false
	}

	return first, last, true
}

// selectionEnd is the furthest offset a selection ending at element i may
// reach: the end of the separator after it, or the element's own full span.
func selectionEnd(list syntax.SeparatedList, elements []syntax.Node, i int) int {
	if i < list.SeparatorCount() {
		return list.Separator(i).FullSpan().End()
	}
	return elements[i].FullSpan().End()
}
