// Package listedit edits comma-separated lists while keeping the trivia
// around separators and brackets where a reader expects it.
//
// Token rewrites are keyed by token identity, not by span: after a
// Duplicate two elements share the same text and may share the same span.
package listedit

import (
	"errors"
	"fmt"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// ErrNotApplicable is returned when an edit has no valid target. It is an
// expected outcome for most cursor positions and cheap to probe with
// errors.Is.
var ErrNotApplicable = errors.New("not applicable")

// ReplaceAt replaces element index with element. The trivia between the
// token before the slot and the token after it moves onto the new element
// as leading trivia; the new element's own trailing trivia is dropped.
func ReplaceAt(list syntax.SeparatedList, index int, element syntax.Node) (syntax.SeparatedList, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}
	if element.IsZero() {
		return list, fmt.Errorf("%w: replacement element is absent", syntax.ErrInvalidArgument)
	}
	if _, ok := element.FirstToken(); !ok {
		return list, fmt.Errorf("%w: replacement element has no tokens", syntax.ErrInvalidArgument)
	}

	before := list.TokenBefore(index)
	after := list.TokenAfter(index)

	leading := make([]syntax.Trivia, 0, len(before.TrailingTrivia())+len(after.LeadingTrivia()))
	leading = append(leading, before.TrailingTrivia()...)
	leading = append(leading, after.LeadingTrivia()...)
	element = element.WithLeadingTrivia(leading...).WithTrailingTrivia()

	node := list.Node().ReplaceChildAt(syntax.ElementChildIndex(index), element)
	node = syntax.ReplaceTokens(node, map[uint64]syntax.TokenReplacer{
		before.ID(): func(t syntax.Token) syntax.Token { return t.WithTrailingTrivia() },
		after.ID():  func(t syntax.Token) syntax.Token { return t.WithLeadingTrivia() },
	})

	return view(node)
}

// FindMissing returns the index of the first missing element whose slot
// between the surrounding tokens covers span, or -1.
func FindMissing(list syntax.SeparatedList, span syntax.Span) int {
	for i := range list.Count() {
		if !list.Element(i).IsMissing() {
			continue
		}
		if span.Start >= list.TokenBefore(i).Span().End() && span.End() <= list.TokenAfter(i).Span().Start {
			return i
		}
	}
	return -1
}

// CanFillMissing returns true if element index is missing and the element
// before it is not. Filling one of two adjacent holes would attach the
// trivia between them to the wrong element.
func CanFillMissing(list syntax.SeparatedList, index int) bool {
	if index < 0 || index >= list.Count() || !list.Element(index).IsMissing() {
		return false
	}
	return index == 0 || !list.Element(index-1).IsMissing()
}

// FillMissing replaces a missing element with element.
func FillMissing(list syntax.SeparatedList, index int, element syntax.Node) (syntax.SeparatedList, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}
	if !CanFillMissing(list, index) {
		return list, fmt.Errorf("fill element %d: %w", index, ErrNotApplicable)
	}
	return ReplaceAt(list, index, element)
}

// Duplicate inserts a copy of element index immediately after it, together
// with a new separator. The copy has fresh identities.
func Duplicate(list syntax.SeparatedList, index int) (syntax.SeparatedList, error) {
	return insertCopy(list, index)
}

// Copy behaves like Duplicate. It exists so callers can report which
// operation the user asked for.
func Copy(list syntax.SeparatedList, index int) (syntax.SeparatedList, error) {
	return insertCopy(list, index)
}

func insertCopy(list syntax.SeparatedList, index int) (syntax.SeparatedList, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}

	original := list.Element(index)
	clone, ok := syntax.Clone(original).(syntax.Node)
	if !ok {
		return list, fmt.Errorf("%w: element %d is not a node", syntax.ErrInvalidArgument, index)
	}
	separator := newSeparator(list, index)

	node := list.Node()
	if index >= list.SeparatorCount() {
		// Last element without a trailing separator: whatever trails the
		// element now trails the copy.
		clone = clone.WithTrailingTrivia(original.TrailingTrivia()...)
		stripped := original.WithTrailingTrivia()
		node = node.ReplaceChildAt(syntax.ElementChildIndex(index), stripped)
	}
	node = node.InsertChildrenAt(syntax.ElementChildIndex(index)+1, separator, clone)

	return view(node)
}

// newSeparator clones the separator after index, or the one before it, or
// falls back to ", ". Leading trivia is dropped.
func newSeparator(list syntax.SeparatedList, index int) syntax.Token {
	template := list.Separator(index)
	if template.IsZero() {
		template = list.Separator(index - 1)
	}
	if template.IsZero() {
		return syntax.NewToken(syntax.KindComma, ",", nil, []syntax.Trivia{syntax.Whitespace(" ")})
	}
	return syntax.NewToken(template.Kind(), template.Text(), nil, template.TrailingTrivia())
}

// RemoveAt removes element index with its following separator. The last
// element takes the preceding separator with it instead, and its trailing
// trivia moves onto the new last element.
func RemoveAt(list syntax.SeparatedList, index int) (syntax.SeparatedList, error) {
	if err := checkIndex(list, index); err != nil {
		return list, err
	}

	node := list.Node()
	switch {
	case index < list.SeparatorCount():
		node = node.RemoveChildrenAt(syntax.ElementChildIndex(index), 2)
	case index == 0:
		node = node.RemoveChildrenAt(syntax.ElementChildIndex(index), 1)
	default:
		removed := list.Element(index)
		previous := list.Element(index - 1)
		trailing := append(previous.TrailingTrivia(), removed.TrailingTrivia()...)
		node = node.RemoveChildrenAt(syntax.SeparatorChildIndex(index-1), 2)
		node = node.ReplaceChildAt(syntax.ElementChildIndex(index-1), previous.WithTrailingTrivia(trailing...))
	}

	return view(node)
}

// ReplaceList puts an edited list back into the tree that contains old.
func ReplaceList(root syntax.Node, old, edited syntax.SeparatedList) syntax.Node {
	return syntax.ReplaceNode(root, old.Node(), edited.Node())
}

// FindList returns the innermost list whose brackets enclose span.
func FindList(root syntax.Node, span syntax.Span) (syntax.SeparatedList, bool) {
	node, ok := syntax.FindInnermost(root, span, func(n syntax.Node) bool {
		list, isList := syntax.AsSeparatedList(n)
		if !isList {
			return false
		}
		return list.Open().Span().End() <= span.Start && span.End() <= list.Close().Span().Start
	})
	if !ok {
		return syntax.SeparatedList{}, false
	}
	return syntax.AsSeparatedList(node)
}

// IndexAt returns the index of the element whose span contains span, or -1.
func IndexAt(list syntax.SeparatedList, span syntax.Span) int {
	for i := range list.Count() {
		element := list.Element(i)
		if !element.IsMissing() && element.Span().Contains(span) {
			return i
		}
	}
	return -1
}

func checkIndex(list syntax.SeparatedList, index int) error {
	if list.IsZero() {
		return fmt.Errorf("%w: list is absent", syntax.ErrInvalidArgument)
	}
	if index < 0 || index >= list.Count() {
		return fmt.Errorf("%w: index %d out of range [0, %d)", syntax.ErrInvalidArgument, index, list.Count())
	}
	return nil
}

func view(node syntax.Node) (syntax.SeparatedList, error) {
	list, ok := syntax.AsSeparatedList(node)
	if !ok {
		return syntax.SeparatedList{}, fmt.Errorf("%w: %s is not a list", syntax.ErrInvalidArgument, node.Kind())
	}
	return list, nil
}
