package syntax

// Visitor decides how Transform treats an element. Returning handled=false
// keeps a token and descends into a node. Returning handled=true substitutes
// replacement, which may be nil or zero to drop the element.
type Visitor func(e Element) (replacement Element, handled bool)

// TokenReplacer maps a token to its replacement.
type TokenReplacer func(Token) Token

// Transform rebuilds root bottom-up. Subtrees the visitor leaves untouched are
// shared with the original; only the path from a replaced element to the root
// is reallocated.
func Transform(root Node, visit Visitor) Node {
	if root.IsZero() {
		return root
	}
	return rebuild(root, visit)
}

func rebuild(n Node, visit Visitor) Node {
	var children []green
	for i := range n.ChildCount() {
		child := n.Child(i)
		replacement, handled := visit(child)
		if !handled {
			replacement = child
			if node, ok := child.(Node); ok {
				replacement = rebuild(node, visit)
			}
		}

		present := replacement != nil && !replacement.IsZero()
		unchanged := present && replacement.green() == n.g.children[i]
		if !unchanged && children == nil {
			children = make([]green, i, len(n.g.children))
			copy(children, n.g.children[:i])
		}
		if children != nil && present {
			children = append(children, replacement.green())
		}
	}
	if children == nil {
		return n
	}
	return Node{g: newGreenNode(n.g.kind, children), pos: n.pos}
}

// ReplaceTokens replaces tokens matched by identity, never by span: a
// duplicated element shares its original's text and may share its span.
func ReplaceTokens(root Node, replacers map[uint64]TokenReplacer) Node {
	if len(replacers) == 0 {
		return root
	}
	return Transform(root, func(e Element) (Element, bool) {
		tok, ok := e.(Token)
		if !ok {
			return nil, false
		}
		replace, ok := replacers[tok.ID()]
		if !ok {
			return nil, false
		}
		return replace(tok), true
	})
}

// ReplaceNode replaces the node with old's identity by replacement. If root
// itself is old, replacement is returned at root's position.
func ReplaceNode(root, old, replacement Node) Node {
	if root.IsZero() || old.IsZero() {
		return root
	}
	if root.ID() == old.ID() {
		return Node{g: replacement.g, pos: root.pos}
	}
	return Transform(root, func(e Element) (Element, bool) {
		if node, ok := e.(Node); ok && node.ID() == old.ID() {
			return replacement, true
		}
		return nil, false
	})
}
