// Package csharp parses C# source into a lossless syntax tree.
//
// The parser recognises tokens, trivia, and bracketed lists. It does not
// build declarations or statements: everything outside a bracket pair is a
// flat token sequence. That is enough to locate and rewrite trivia and to
// edit comma-separated lists, and the tree always round-trips to the exact
// input text, malformed input included.
package csharp

import "github.com/yaklabco/triviakit/pkg/syntax"

// Parse returns the CompilationUnit for text. Parse never fails: unterminated
// brackets get a missing close token and empty list slots get a missing
// element.
func Parse(text string) syntax.Node {
	p := &parser{tokens: Tokenize(text)}
	items := p.parseSequence(syntax.KindNone)

	// A stray close bracket at the top level stops parseSequence; keep it.
	for !p.atEnd() {
		items = append(items, p.advance())
		items = append(items, p.parseSequence(syntax.KindNone)...)
	}
	items = append(items, p.advance()) // EndOfFile

	return syntax.NewNode(syntax.KindCompilationUnit, items...)
}

type parser struct {
	tokens []syntax.Token
	pos    int
}

func (p *parser) peek() syntax.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() syntax.Token {
	tok := p.tokens[p.pos]
	if tok.Kind() != syntax.KindEndOfFile {
		p.pos++
	}
	return tok
}

func (p *parser) atEnd() bool {
	return p.peek().Kind() == syntax.KindEndOfFile
}

// parseSequence collects items until EndOfFile, a comma inside a list, or a
// close bracket. A close bracket of a different kind than closeKind is kept
// as an ordinary item.
func (p *parser) parseSequence(closeKind syntax.Kind) []syntax.Element {
	var items []syntax.Element
	for !p.atEnd() {
		tok := p.peek()
		kind := tok.Kind()

		switch {
		case closeKind != syntax.KindNone && (kind == closeKind || kind == syntax.KindComma):
			return items
		case isClose(kind) && closeKind == syntax.KindNone:
			return items
		case isClose(kind):
			items = append(items, p.advance())
		case listKindFor(kind) != syntax.KindNone:
			items = append(items, p.parseList(listKindFor(kind)))
		default:
			items = append(items, p.advance())
		}
	}
	return items
}

// parseList parses a bracketed list starting at its open token. An empty slot
// followed by a comma becomes a missing element; a comma directly before the
// close bracket is kept as a trailing separator.
func (p *parser) parseList(kind syntax.Kind) syntax.Node {
	_, closeKind, _ := kind.ListBrackets()
	open := p.advance()

	var (
		elements   []syntax.Node
		separators []syntax.Token
	)
	for {
		items := p.parseSequence(closeKind)
		next := p.peek().Kind()

		switch {
		case len(items) > 0:
			elements = append(elements, syntax.NewNode(syntax.KindListElement, items...))
		case next == syntax.KindComma:
			elements = append(elements, missingElement())
		}

		if next != syntax.KindComma {
			break
		}
		separators = append(separators, p.advance())
	}

	closeTok := syntax.MissingToken(closeKind)
	if p.peek().Kind() == closeKind {
		closeTok = p.advance()
	}

	list, err := syntax.NewSeparatedList(kind, open, elements, separators, closeTok)
	if err != nil {
		// Separator counts are maintained above; reaching this is a bug.
		panic(err)
	}
	return list.Node()
}

func missingElement() syntax.Node {
	return syntax.NewNode(syntax.KindListElement, syntax.MissingToken(syntax.KindIdentifier))
}

func listKindFor(open syntax.Kind) syntax.Kind {
	switch open {
	case syntax.KindOpenParen:
		return syntax.KindArgumentList
	case syntax.KindOpenBracket:
		return syntax.KindBracketedList
	case syntax.KindOpenBrace:
		return syntax.KindBraceList
	default:
		return syntax.KindNone
	}
}

func isClose(kind syntax.Kind) bool {
	return kind == syntax.KindCloseParen || kind == syntax.KindCloseBracket || kind == syntax.KindCloseBrace
}

// ParseElement parses text as the content of one list element. Empty text
// yields a missing element. Trivia after the last token is kept as its
// trailing trivia, so the element round-trips to text.
func ParseElement(text string) syntax.Node {
	p := &parser{tokens: Tokenize(text)}
	var items []syntax.Element
	for !p.atEnd() {
		items = append(items, p.parseSequence(syntax.KindNone)...)
		if !p.atEnd() {
			items = append(items, p.advance())
		}
	}

	eof := p.advance()
	if len(items) == 0 {
		return missingElement()
	}

	element := syntax.NewNode(syntax.KindListElement, items...)
	if eof.HasLeadingTrivia() {
		trailing := append(element.TrailingTrivia(), eof.LeadingTrivia()...)
		element = element.WithTrailingTrivia(trailing...)
	}
	return element
}
