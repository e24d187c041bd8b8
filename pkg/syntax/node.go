// Package syntax provides the persistent, lossless source tree the rewriting
// packages operate on.
//
// Trees are split in two layers. Green data (kinds, texts, trivia, widths,
// children) is immutable and shared between tree versions. Node and Token are
// positioned views over it, computed on access, so a rewrite only allocates
// green nodes on the path from a changed leaf to the root.
package syntax

import "strings"

// Element is either a Node or a Token.
type Element interface {
	Kind() Kind
	ID() uint64
	IsZero() bool
	IsMissing() bool
	Span() Span
	FullSpan() Span
	String() string
	FullString() string
	LeadingTrivia() []Trivia
	TrailingTrivia() []Trivia

	green() green
}

var (
	_ Element = Node{}
	_ Element = Token{}
)

// Node is a positioned view of an interior tree node. The zero Node is absent.
type Node struct {
	g   *greenNode
	pos int
}

// NewNode creates a detached node. Absent children are skipped.
func NewNode(kind Kind, children ...Element) Node {
	return Node{g: newGreenNode(kind, greensOf(children))}
}

// IsZero returns true for the absent node.
func (n Node) IsZero() bool {
	return n.g == nil
}

// Kind returns the node kind, or KindNone for the absent node.
func (n Node) Kind() Kind {
	if n.g == nil {
		return KindNone
	}
	return n.g.kind
}

// ID returns the construction identity of the node.
func (n Node) ID() uint64 {
	if n.g == nil {
		return 0
	}
	return n.g.ident
}

// FullSpan returns the range of the node including leading and trailing trivia.
func (n Node) FullSpan() Span {
	if n.g == nil {
		return Span{}
	}
	return Span{Start: n.pos, Length: n.g.total}
}

// Span returns the range of the node without the leading trivia of its first
// token and the trailing trivia of its last token.
func (n Node) Span() Span {
	full := n.FullSpan()
	first, ok := n.FirstToken()
	if !ok {
		return full
	}
	last, _ := n.LastToken()
	return FromBounds(first.Span().Start, last.Span().End())
}

// ChildCount returns the number of direct children.
func (n Node) ChildCount() int {
	if n.g == nil {
		return 0
	}
	return len(n.g.children)
}

// Child returns the i-th child, or nil if i is out of range.
//
//nolint:ireturn // Element is a sealed union
func (n Node) Child(i int) Element {
	if n.g == nil || i < 0 || i >= len(n.g.children) {
		return nil
	}
	return wrap(n.g.children[i], n.pos+n.g.offsets[i])
}

// Children returns all direct children.
func (n Node) Children() []Element {
	if n.g == nil {
		return nil
	}
	children := make([]Element, len(n.g.children))
	for i := range n.g.children {
		children[i] = n.Child(i)
	}
	return children
}

// ChildNodes returns the direct children that are nodes.
func (n Node) ChildNodes() []Node {
	var nodes []Node
	for _, child := range n.Children() {
		if node, ok := child.(Node); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// FirstToken returns the first token in the subtree.
func (n Node) FirstToken() (Token, bool) {
	if n.g == nil {
		return Token{}, false
	}
	for i := range n.g.children {
		switch child := n.Child(i).(type) {
		case Token:
			return child, true
		case Node:
			if tok, ok := child.FirstToken(); ok {
				return tok, true
			}
		}
	}
	return Token{}, false
}

// LastToken returns the last token in the subtree.
func (n Node) LastToken() (Token, bool) {
	if n.g == nil {
		return Token{}, false
	}
	for i := len(n.g.children) - 1; i >= 0; i-- {
		switch child := n.Child(i).(type) {
		case Token:
			return child, true
		case Node:
			if tok, ok := child.LastToken(); ok {
				return tok, true
			}
		}
	}
	return Token{}, false
}

// Tokens returns every token in the subtree in document order.
func (n Node) Tokens() []Token {
	var tokens []Token
	n.appendTokens(&tokens)
	return tokens
}

func (n Node) appendTokens(tokens *[]Token) {
	for i := range n.ChildCount() {
		switch child := n.Child(i).(type) {
		case Token:
			*tokens = append(*tokens, child)
		case Node:
			child.appendTokens(tokens)
		}
	}
}

// IsMissing returns true if the node has tokens and all of them are missing.
func (n Node) IsMissing() bool {
	tokens := n.Tokens()
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !tok.IsMissing() {
			return false
		}
	}
	return true
}

// LeadingTrivia returns the leading trivia of the first token.
func (n Node) LeadingTrivia() []Trivia {
	tok, ok := n.FirstToken()
	if !ok {
		return nil
	}
	return tok.LeadingTrivia()
}

// TrailingTrivia returns the trailing trivia of the last token.
func (n Node) TrailingTrivia() []Trivia {
	tok, ok := n.LastToken()
	if !ok {
		return nil
	}
	return tok.TrailingTrivia()
}

// FullString returns the exact source text of the node, trivia included.
func (n Node) FullString() string {
	if n.g == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n.g.total)
	n.g.writeTo(&sb)
	return sb.String()
}

// String returns the source text of the node without its outer trivia.
func (n Node) String() string {
	full := n.FullSpan()
	span := n.Span()
	text := n.FullString()
	return text[span.Start-full.Start : span.End()-full.Start]
}

// WithChildren returns a node of the same kind with new children.
func (n Node) WithChildren(children ...Element) Node {
	return Node{g: newGreenNode(n.Kind(), greensOf(children)), pos: n.pos}
}

// ReplaceChildAt returns a copy of the node with the i-th child replaced.
// An out-of-range index returns the node unchanged.
func (n Node) ReplaceChildAt(i int, child Element) Node {
	if n.g == nil || i < 0 || i >= len(n.g.children) || child == nil || child.IsZero() {
		return n
	}
	children := make([]green, len(n.g.children))
	copy(children, n.g.children)
	children[i] = child.green()
	return Node{g: newGreenNode(n.g.kind, children), pos: n.pos}
}

// InsertChildrenAt returns a copy of the node with children inserted before index i.
// An index equal to ChildCount appends.
func (n Node) InsertChildrenAt(i int, inserted ...Element) Node {
	if n.g == nil || i < 0 || i > len(n.g.children) {
		return n
	}
	add := greensOf(inserted)
	children := make([]green, 0, len(n.g.children)+len(add))
	children = append(children, n.g.children[:i]...)
	children = append(children, add...)
	children = append(children, n.g.children[i:]...)
	return Node{g: newGreenNode(n.g.kind, children), pos: n.pos}
}

// RemoveChildrenAt returns a copy of the node without count children starting at i.
func (n Node) RemoveChildrenAt(i, count int) Node {
	if n.g == nil || i < 0 || count <= 0 || i+count > len(n.g.children) {
		return n
	}
	children := make([]green, 0, len(n.g.children)-count)
	children = append(children, n.g.children[:i]...)
	children = append(children, n.g.children[i+count:]...)
	return Node{g: newGreenNode(n.g.kind, children), pos: n.pos}
}

// WithLeadingTrivia returns a copy of the node whose first token carries the
// given leading trivia.
func (n Node) WithLeadingTrivia(trivia ...Trivia) Node {
	first, ok := n.FirstToken()
	if !ok {
		return n
	}
	return ReplaceTokens(n, map[uint64]TokenReplacer{
		first.ID(): func(t Token) Token { return t.WithLeadingTrivia(trivia...) },
	})
}

// WithTrailingTrivia returns a copy of the node whose last token carries the
// given trailing trivia.
func (n Node) WithTrailingTrivia(trivia ...Trivia) Node {
	last, ok := n.LastToken()
	if !ok {
		return n
	}
	return ReplaceTokens(n, map[uint64]TokenReplacer{
		last.ID(): func(t Token) Token { return t.WithTrailingTrivia(trivia...) },
	})
}

func (n Node) green() green {
	if n.g == nil {
		return nil
	}
	return n.g
}

// Clone returns a deep copy of e in which every node and token has a new
// identity. The copy keeps e's position.
//
//nolint:ireturn // Element is a sealed union
func Clone(e Element) Element {
	if e == nil || e.IsZero() {
		return e
	}
	return wrap(e.green().clone(), e.FullSpan().Start)
}

// Same returns true if a and b are views of the same green element.
func Same(a, b Element) bool {
	if a == nil || b == nil || a.IsZero() || b.IsZero() {
		return false
	}
	return a.green() == b.green()
}
