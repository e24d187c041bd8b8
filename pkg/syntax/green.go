package syntax

import (
	"strings"
	"sync/atomic"
)

// lastID hands out construction identities. Every green token and node gets
// a fresh one, so two textually identical elements are never confused.
//
//nolint:gochecknoglobals // Process-wide identity counter
var lastID atomic.Uint64

func newID() uint64 {
	return lastID.Add(1)
}

// green is the immutable, position-free storage shared between tree versions.
type green interface {
	identity() uint64
	greenKind() Kind
	width() int
	writeTo(sb *strings.Builder)
	clone() green
}

type greenToken struct {
	ident         uint64
	kind          Kind
	text          string
	leading       []Trivia
	trailing      []Trivia
	leadingWidth  int
	trailingWidth int
	missing       bool
}

func newGreenToken(kind Kind, text string, leading, trailing []Trivia, missing bool) *greenToken {
	leading = detachAll(leading)
	trailing = detachAll(trailing)
	return &greenToken{
		ident:         newID(),
		kind:          kind,
		text:          text,
		leading:       leading,
		trailing:      trailing,
		leadingWidth:  triviaWidth(leading),
		trailingWidth: triviaWidth(trailing),
		missing:       missing,
	}
}

func (g *greenToken) identity() uint64 { return g.ident }
func (g *greenToken) greenKind() Kind  { return g.kind }

func (g *greenToken) width() int {
	return g.leadingWidth + len(g.text) + g.trailingWidth
}

func (g *greenToken) writeTo(sb *strings.Builder) {
	for _, t := range g.leading {
		sb.WriteString(t.Text)
	}
	sb.WriteString(g.text)
	for _, t := range g.trailing {
		sb.WriteString(t.Text)
	}
}

func (g *greenToken) clone() green {
	return newGreenToken(g.kind, g.text, g.leading, g.trailing, g.missing)
}

type greenNode struct {
	ident    uint64
	kind     Kind
	children []green
	offsets  []int // start of each child relative to the node
	total    int
}

func newGreenNode(kind Kind, children []green) *greenNode {
	node := &greenNode{
		ident:    newID(),
		kind:     kind,
		children: children,
		offsets:  make([]int, len(children)),
	}
	for i, child := range children {
		node.offsets[i] = node.total
		node.total += child.width()
	}
	return node
}

func (g *greenNode) identity() uint64 { return g.ident }
func (g *greenNode) greenKind() Kind  { return g.kind }
func (g *greenNode) width() int       { return g.total }

func (g *greenNode) writeTo(sb *strings.Builder) {
	for _, child := range g.children {
		child.writeTo(sb)
	}
}

func (g *greenNode) clone() green {
	children := make([]green, len(g.children))
	for i, child := range g.children {
		children[i] = child.clone()
	}
	return newGreenNode(g.kind, children)
}

// wrap returns the positioned view of g at pos.
//
//nolint:ireturn // Element is a sealed union
func wrap(g green, pos int) Element {
	switch g := g.(type) {
	case *greenToken:
		return Token{g: g, pos: pos}
	case *greenNode:
		return Node{g: g, pos: pos}
	default:
		return nil
	}
}

func greensOf(elements []Element) []green {
	out := make([]green, 0, len(elements))
	for _, e := range elements {
		if e == nil || e.IsZero() {
			continue
		}
		out = append(out, e.green())
	}
	return out
}
