package syntax

import "fmt"

// SeparatedList is a view over a bracketed list node:
//
//	open, element[0], separator[0], element[1], ..., element[n-1], [separator[n-1]], close
//
// Element i is followed by separator i when i < SeparatorCount. SeparatorCount
// is Count-1, or Count when the list ends with a trailing separator.
type SeparatedList struct {
	node Node
}

// AsSeparatedList returns the list view of n if n is a list node.
func AsSeparatedList(n Node) (SeparatedList, bool) {
	if !n.Kind().IsList() || n.ChildCount() < 2 {
		return SeparatedList{}, false
	}
	return SeparatedList{node: n}, true
}

// NewSeparatedList assembles a list node from its parts. Elements must be
// ListElement nodes and the separator count must be Count-1 or Count.
func NewSeparatedList(kind Kind, open Token, elements []Node, separators []Token, closeTok Token) (SeparatedList, error) {
	if !kind.IsList() {
		return SeparatedList{}, fmt.Errorf("%w: %s is not a list kind", ErrInvalidArgument, kind)
	}
	count := len(elements)
	switch {
	case count == 0 && len(separators) != 0:
		return SeparatedList{}, fmt.Errorf("%w: %d separators for an empty list", ErrInvalidArgument, len(separators))
	case count > 0 && len(separators) != count-1 && len(separators) != count:
		return SeparatedList{}, fmt.Errorf("%w: %d separators for %d elements", ErrInvalidArgument, len(separators), count)
	}

	children := make([]Element, 0, 2+count+len(separators))
	children = append(children, open)
	for i, element := range elements {
		children = append(children, element)
		if i < len(separators) {
			children = append(children, separators[i])
		}
	}
	children = append(children, closeTok)
	return SeparatedList{node: NewNode(kind, children...)}, nil
}

// Node returns the underlying list node.
func (l SeparatedList) Node() Node {
	return l.node
}

// IsZero returns true for the absent list.
func (l SeparatedList) IsZero() bool {
	return l.node.IsZero()
}

// Open returns the opening bracket token.
func (l SeparatedList) Open() Token {
	tok, _ := l.node.Child(0).(Token)
	return tok
}

// Close returns the closing bracket token.
func (l SeparatedList) Close() Token {
	tok, _ := l.node.Child(l.node.ChildCount() - 1).(Token)
	return tok
}

// Count returns the number of elements.
func (l SeparatedList) Count() int {
	inner := l.node.ChildCount() - 2
	if inner <= 0 {
		return 0
	}
	return (inner + 1) / 2
}

// SeparatorCount returns the number of separators.
func (l SeparatedList) SeparatorCount() int {
	inner := l.node.ChildCount() - 2
	if inner <= 0 {
		return 0
	}
	return inner / 2
}

// HasTrailingSeparator returns true if the last element is followed by a separator.
func (l SeparatedList) HasTrailingSeparator() bool {
	return l.Count() > 0 && l.SeparatorCount() == l.Count()
}

// Element returns the i-th element.
func (l SeparatedList) Element(i int) Node {
	if i < 0 || i >= l.Count() {
		return Node{}
	}
	node, _ := l.node.Child(ElementChildIndex(i)).(Node)
	return node
}

// Elements returns all elements.
func (l SeparatedList) Elements() []Node {
	elements := make([]Node, l.Count())
	for i := range elements {
		elements[i] = l.Element(i)
	}
	return elements
}

// Separator returns the i-th separator.
func (l SeparatedList) Separator(i int) Token {
	if i < 0 || i >= l.SeparatorCount() {
		return Token{}
	}
	tok, _ := l.node.Child(SeparatorChildIndex(i)).(Token)
	return tok
}

// Separators returns all separators.
func (l SeparatedList) Separators() []Token {
	separators := make([]Token, l.SeparatorCount())
	for i := range separators {
		separators[i] = l.Separator(i)
	}
	return separators
}

// TokenBefore returns the separator preceding element i, or the open bracket
// for the first element.
func (l SeparatedList) TokenBefore(i int) Token {
	if i == 0 {
		return l.Open()
	}
	return l.Separator(i - 1)
}

// TokenAfter returns the separator following element i, or the close bracket
// when element i is last and has no trailing separator.
func (l SeparatedList) TokenAfter(i int) Token {
	if i < l.SeparatorCount() {
		return l.Separator(i)
	}
	return l.Close()
}

// IndexOf returns the index of the element with the given identity, or -1.
func (l SeparatedList) IndexOf(id uint64) int {
	for i := range l.Count() {
		if l.Element(i).ID() == id {
			return i
		}
	}
	return -1
}

// ElementChildIndex maps an element index to the list node's child index.
func ElementChildIndex(i int) int {
	return 1 + 2*i
}

// SeparatorChildIndex maps a separator index to the list node's child index.
func SeparatorChildIndex(i int) int {
	return 2 + 2*i
}
