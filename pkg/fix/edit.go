// Package fix turns rewritten trees back into byte edits on the files they
// were parsed from, and renders those edits as unified diffs.
package fix

import "github.com/yaklabco/triviakit/pkg/syntax"

// TextEdit replaces bytes [StartOffset, EndOffset) with NewText.
type TextEdit struct {
	StartOffset int
	EndOffset   int
	NewText     string
}

// IsNoop returns true if the edit neither removes nor inserts anything.
func (e TextEdit) IsNoop() bool {
	return e.StartOffset == e.EndOffset && e.NewText == ""
}

// Shift returns the edit moved delta bytes to the right. Edits computed on an
// embedded fragment are shifted by the fragment's offset in the host file.
func (e TextEdit) Shift(delta int) TextEdit {
	e.StartOffset += delta
	e.EndOffset += delta
	return e
}

// FromRewrite returns the smallest single edit that turns oldText into
// newText: the common prefix and suffix are left alone.
func FromRewrite(oldText, newText string) TextEdit {
	prefix := 0
	for prefix < len(oldText) && prefix < len(newText) && oldText[prefix] == newText[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(oldText)-prefix && suffix < len(newText)-prefix &&
		oldText[len(oldText)-1-suffix] == newText[len(newText)-1-suffix] {
		suffix++
	}

	return TextEdit{
		StartOffset: prefix,
		EndOffset:   len(oldText) - suffix,
		NewText:     newText[prefix : len(newText)-suffix],
	}
}

// FromTrees returns the edit turning the text of before into the text of
// after, or false if both trees print the same text.
func FromTrees(before, after syntax.Node) (TextEdit, bool) {
	edit := FromRewrite(before.FullString(), after.FullString())
	if edit.IsNoop() {
		return TextEdit{}, false
	}
	return edit.Shift(before.FullSpan().Start), true
}

// EditBuilder accumulates edits for one file.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{Edits: make([]TextEdit, 0)}
}

// ReplaceRange adds an edit replacing bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{StartOffset: start, EndOffset: end, NewText: newText})
}

// ReplaceSpan adds an edit replacing span with newText.
func (b *EditBuilder) ReplaceSpan(span syntax.Span, newText string) {
	b.ReplaceRange(span.Start, span.End(), newText)
}

// Add appends edit unless it is a no-op.
func (b *EditBuilder) Add(edit TextEdit) {
	if !edit.IsNoop() {
		b.Edits = append(b.Edits, edit)
	}
}

// Len returns the number of accumulated edits.
func (b *EditBuilder) Len() int {
	return len(b.Edits)
}
