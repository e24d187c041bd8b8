package syntax

// DefaultEndOfLine is used when a tree contains no line break to copy.
const DefaultEndOfLine = "\n"

// DetermineEndOfLine returns the first end-of-line trivia in the tree, so
// inserted line breaks match the file's existing convention. If the tree has
// none, fallback is returned; a zero fallback becomes DefaultEndOfLine.
func DetermineEndOfLine(root Element, fallback Trivia) Trivia {
	for _, t := range DescendantTrivia(root) {
		if t.Kind == TriviaEndOfLine {
			return t.detach()
		}
	}
	if fallback.Text == "" {
		return EndOfLine(DefaultEndOfLine)
	}
	return fallback
}

// IsExteriorTriviaEmptyOrWhitespace returns true if the leading and trailing
// trivia of e consist only of whitespace and line breaks.
func IsExteriorTriviaEmptyOrWhitespace(e Element) bool {
	if e == nil || e.IsZero() {
		return true
	}
	return isEmptyOrWhitespace(e.LeadingTrivia()) && isEmptyOrWhitespace(e.TrailingTrivia())
}

func isEmptyOrWhitespace(list []Trivia) bool {
	for _, t := range list {
		if !t.Kind.IsWhitespaceOrEndOfLine() {
			return false
		}
	}
	return true
}
