package rewrite

import (
	"sync"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// rule configures one rewrite pass.
type rule struct {
	span syntax.Span

	// replace returns the replacement for a trivia inside span, or false to
	// keep it.
	replace func(syntax.Trivia) (syntax.Trivia, bool)

	// collapseCommentLines removes the line break (and indentation) left
	// behind by a removed single-line comment that sat on its own line.
	collapseCommentLines bool
}

// entry is one original trivia in document order. Trivia in the same
// segment are adjacent in the text with no token between them.
type entry struct {
	trivia  syntax.Trivia
	segment int
}

// walker holds the scratch state of one rewrite. Walkers are pooled and
// must be reset before they go back.
type walker struct {
	entries     []entry
	replacement []syntax.Trivia
	changed     []bool
	prefix      []int          // prefix[i] counts changed entries before i
	counts      map[uint64]int // trivia count per element identity
	cursor      int
}

//nolint:gochecknoglobals // Shared scratch pool
var walkerPool = sync.Pool{
	New: func() any {
		return &walker{counts: make(map[uint64]int)}
	},
}

func getWalker() *walker {
	w, ok := walkerPool.Get().(*walker)
	if !ok {
		return &walker{counts: make(map[uint64]int)}
	}
	return w
}

func putWalker(w *walker) {
	w.reset()
	walkerPool.Put(w)
}

func (w *walker) reset() {
	clear(w.entries)
	w.entries = w.entries[:0]
	clear(w.replacement)
	w.replacement = w.replacement[:0]
	w.changed = w.changed[:0]
	w.prefix = w.prefix[:0]
	clear(w.counts)
	w.cursor = 0
}

// run applies r to root and returns the rewritten tree. Subtrees without a
// changed trivia are shared with root.
func run(root syntax.Node, r rule) syntax.Node {
	w := getWalker()
	defer putWalker(w)

	segment := 0
	w.collect(root, &segment)
	w.decide(r)

	if w.prefix[len(w.entries)] == 0 {
		return root
	}
	return syntax.Transform(root, w.visit)
}

// collect flattens the trivia of e in document order and records the trivia
// count of every element.
func (w *walker) collect(e syntax.Element, segment *int) int {
	count := 0
	switch e := e.(type) {
	case syntax.Token:
		for _, t := range e.LeadingTrivia() {
			w.entries = append(w.entries, entry{trivia: t, segment: *segment})
			count++
		}
		*segment++
		for _, t := range e.TrailingTrivia() {
			w.entries = append(w.entries, entry{trivia: t, segment: *segment})
			count++
		}
	case syntax.Node:
		for i := range e.ChildCount() {
			count += w.collect(e.Child(i), segment)
		}
	}
	w.counts[e.ID()] = count
	return count
}

// decide fills replacement, changed, and prefix for every entry.
func (w *walker) decide(r rule) {
	for _, e := range w.entries {
		w.replacement = append(w.replacement, e.trivia)
		w.changed = append(w.changed, false)
	}

	for i, e := range w.entries {
		if !r.span.Contains(e.trivia.Span) {
			continue
		}
		if with, ok := r.replace(e.trivia); ok {
			w.mark(i, with)
		}
	}

	if r.collapseCommentLines {
		for i, e := range w.entries {
			if e.trivia.Kind == syntax.TriviaEndOfLine && !w.changed[i] && r.span.Contains(e.trivia.Span) {
				w.collapseLine(i, r.span)
			}
		}
	}

	w.prefix = append(w.prefix, 0)
	for i := range w.entries {
		n := w.prefix[i]
		if w.changed[i] {
			n++
		}
		w.prefix = append(w.prefix, n)
	}
}

func (w *walker) mark(i int, with syntax.Trivia) {
	if with.Equivalent(w.entries[i].trivia) {
		return
	}
	w.replacement[i] = with
	w.changed[i] = true
}

// collapseLine removes the line break at eol when, reading the original
// trivia backward, it ends a line that held only a removed single-line
// comment: line break, optional indentation, removed comment, eol. A token
// or the start of the tree before that sequence keeps the line break.
func (w *walker) collapseLine(eol int, span syntax.Span) {
	comment := eol - 1
	if !w.adjacent(comment, eol) || !w.changed[comment] ||
		!w.entries[comment].trivia.Kind.IsSingleLineComment() {
		return
	}

	prev := comment - 1
	indent := -1
	if w.adjacent(prev, comment) && w.entries[prev].trivia.Kind == syntax.TriviaWhitespace {
		indent = prev
		prev--
	}
	if !w.adjacent(prev, eol) || w.entries[prev].trivia.Kind != syntax.TriviaEndOfLine {
		return
	}

	w.mark(eol, syntax.EmptyWhitespace())
	if indent >= 0 && span.Contains(w.entries[indent].trivia.Span) {
		w.mark(indent, syntax.EmptyWhitespace())
	}
}

// adjacent reports whether entry i exists and no token separates it from j.
func (w *walker) adjacent(i, j int) bool {
	return i >= 0 && w.entries[i].segment == w.entries[j].segment
}

// visit is the Transform visitor. The cursor tracks the first trivia of the
// element being visited; elements are visited in document order.
func (w *walker) visit(e syntax.Element) (syntax.Element, bool) {
	start := w.cursor
	count := w.counts[e.ID()]
	if w.prefix[start+count]-w.prefix[start] == 0 {
		w.cursor += count
		return e, true
	}

	tok, ok := e.(syntax.Token)
	if !ok {
		return nil, false // descend; children advance the cursor
	}

	leadingCount := len(tok.LeadingTrivia())
	leading := w.rewritten(start, leadingCount)
	trailing := w.rewritten(start+leadingCount, count-leadingCount)
	w.cursor += count
	return tok.WithTrivia(leading, trailing), true
}

func (w *walker) rewritten(start, count int) []syntax.Trivia {
	if count == 0 {
		return nil
	}
	out := make([]syntax.Trivia, count)
	copy(out, w.replacement[start:start+count])
	return out
}
