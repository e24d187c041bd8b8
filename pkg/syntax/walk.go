package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(e Element) error

// Walk performs a pre-order traversal of the tree starting at root, visiting
// nodes and tokens. If walkFunc returns a non-nil error the walk stops
// immediately and returns that error.
func Walk(root Element, walkFunc WalkFunc) error {
	if root == nil || root.IsZero() {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	node, ok := root.(Node)
	if !ok {
		return nil
	}
	for i := range node.ChildCount() {
		if err := Walk(node.Child(i), walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all elements matching the predicate, in document order.
func FindAll(root Element, predicate func(e Element) bool) []Element {
	var result []Element

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(e Element) error {
		if predicate(e) {
			result = append(result, e)
		}
		return nil
	})

	return result
}

// FindFirst returns the first element matching the predicate, or nil.
//
//nolint:ireturn // Element is a sealed union
func FindFirst(root Element, predicate func(e Element) bool) Element {
	var found Element

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(e Element) error {
		if predicate(e) {
			found = e
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindToken returns the token whose full span contains offset. An offset at
// the end of the tree returns the EndOfFile token.
func FindToken(root Node, offset int) (Token, bool) {
	full := root.FullSpan()
	if root.IsZero() || offset < full.Start || offset > full.End() {
		return Token{}, false
	}
	if offset == full.End() {
		return root.LastToken()
	}
	node := root
	for {
		var next Element
		for i := range node.ChildCount() {
			child := node.Child(i)
			if child.FullSpan().ContainsOffset(offset) {
				next = child
				break
			}
		}
		switch next := next.(type) {
		case Token:
			return next, true
		case Node:
			node = next
		default:
			return Token{}, false
		}
	}
}

// FindInnermost returns the deepest node whose full span contains span and
// that satisfies the predicate.
func FindInnermost(root Node, span Span, predicate func(Node) bool) (Node, bool) {
	if root.IsZero() || !root.FullSpan().Contains(span) {
		return Node{}, false
	}
	var best Node
	found := false
	node := root
	for {
		if predicate == nil || predicate(node) {
			best, found = node, true
		}
		descended := false
		for _, child := range node.ChildNodes() {
			if child.FullSpan().Contains(span) && !child.FullSpan().IsEmpty() {
				node = child
				descended = true
				break
			}
		}
		if !descended {
			return best, found
		}
	}
}

// DescendantTrivia returns every trivia in the subtree in document order.
func DescendantTrivia(root Element) []Trivia {
	var trivia []Trivia

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(e Element) error {
		if tok, ok := e.(Token); ok {
			trivia = append(trivia, tok.LeadingTrivia()...)
			trivia = append(trivia, tok.TrailingTrivia()...)
		}
		return nil
	})

	return trivia
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
