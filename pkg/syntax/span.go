package syntax

import "fmt"

// Span is a half-open byte range [Start, Start+Length) in source text.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// Length is the number of bytes covered by the span.
	Length int
}

// NewSpan creates a span from a start offset and a length.
// Negative values are clamped to zero.
func NewSpan(start, length int) Span {
	if start < 0 {
		start = 0
	}
	if length < 0 {
		length = 0
	}
	return Span{Start: start, Length: length}
}

// FromBounds creates a span covering [start, end).
// An end before start yields an empty span at start.
func FromBounds(start, end int) Span {
	return NewSpan(start, end-start)
}

// End returns the byte index just after the span (exclusive).
func (s Span) End() int {
	return s.Start + s.Length
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Contains returns true if other lies entirely within s.
// An empty span contains itself.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End() <= s.End()
}

// ContainsOffset returns true if offset is within [Start, End).
func (s Span) ContainsOffset(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

// OverlapsWith returns true if the two spans share at least one byte.
func (s Span) OverlapsWith(other Span) bool {
	return max(s.Start, other.Start) < min(s.End(), other.End())
}

// String formats the span as "[start..end)".
func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End())
}
