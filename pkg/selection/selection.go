// Package selection maps a text span onto a consecutive run of items: lines
// of a file or elements of a separated list.
//
// A span that does not line up with item boundaries selects nothing. That
// is the common case for an arbitrary cursor position, so it is reported
// with an empty Selection rather than an error.
package selection

import (
	"fmt"
	"iter"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Selection is a consecutive run of items[FirstIndex..LastIndex].
// An empty selection has FirstIndex == LastIndex == -1.
type Selection[T any] struct {
	items []T

	// OriginalSpan is the span the selection was computed from.
	OriginalSpan syntax.Span

	// FirstIndex is the index of the first selected item in the underlying
	// collection, or -1.
	FirstIndex int

	// LastIndex is the index of the last selected item, or -1.
	LastIndex int
}

func newSelection[T any](items []T, span syntax.Span, first, last int) Selection[T] {
	return Selection[T]{items: items, OriginalSpan: span, FirstIndex: first, LastIndex: last}
}

func empty[T any](span syntax.Span) Selection[T] {
	return Selection[T]{OriginalSpan: span, FirstIndex: -1, LastIndex: -1}
}

// Any returns true if at least one item is selected.
func (s Selection[T]) Any() bool {
	return s.FirstIndex >= 0
}

// Count returns the number of selected items.
func (s Selection[T]) Count() int {
	if !s.Any() {
		return 0
	}
	return s.LastIndex - s.FirstIndex + 1
}

// Items returns the selected items.
func (s Selection[T]) Items() []T {
	if !s.Any() {
		return nil
	}
	return s.items[s.FirstIndex : s.LastIndex+1]
}

// At returns the i-th selected item. It panics if i is out of range.
func (s Selection[T]) At(i int) T {
	if i < 0 || i >= s.Count() {
		panic(fmt.Sprintf("selection: index out of range [%d] with count %d", i, s.Count()))
	}
	return s.items[s.FirstIndex+i]
}

// First returns the first selected item. It panics on an empty selection.
func (s Selection[T]) First() T {
	return s.At(0)
}

// Last returns the last selected item. It panics on an empty selection.
func (s Selection[T]) Last() T {
	return s.At(s.Count() - 1)
}

// All iterates over the selected items with their index within the
// selection.
func (s Selection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.Count() {
			if !yield(i, s.items[s.FirstIndex+i]) {
				return
			}
		}
	}
}

func checkRange(minCount, maxCount int) error {
	if minCount <= 0 {
		return fmt.Errorf("%w: minimum count %d must be greater than 0", syntax.ErrInvalidArgument, minCount)
	}
	if maxCount < minCount {
		return fmt.Errorf("%w: maximum count %d is less than minimum %d", syntax.ErrInvalidArgument, maxCount, minCount)
	}
	return nil
}

func inRange(first, last, minCount, maxCount int) bool {
	count := last - first + 1
	return count >= minCount && count <= maxCount
}
