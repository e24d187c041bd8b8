package syntax

import (
	"fmt"
	"strings"
)

// TriviaKind classifies a piece of trivia.
type TriviaKind uint8

// Trivia kinds. Every trivia classifies to exactly one of these.
const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
	TriviaSingleLineComment    // "// ..."
	TriviaMultiLineComment     // "/* ... */"
	TriviaSingleLineDocComment // "/// ..."
	TriviaMultiLineDocComment  // "/** ... */"
	TriviaDirective            // "#region", "#if DEBUG", ...
	TriviaOther
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaEndOfLine:
		return "EndOfLine"
	case TriviaSingleLineComment:
		return "SingleLineComment"
	case TriviaMultiLineComment:
		return "MultiLineComment"
	case TriviaSingleLineDocComment:
		return "SingleLineDocComment"
	case TriviaMultiLineDocComment:
		return "MultiLineDocComment"
	case TriviaDirective:
		return "Directive"
	case TriviaOther:
		return "Other"
	default:
		return fmt.Sprintf("TriviaKind(%d)", k)
	}
}

// IsComment returns true for ordinary and documentation comments.
func (k TriviaKind) IsComment() bool {
	switch k {
	case TriviaSingleLineComment, TriviaMultiLineComment,
		TriviaSingleLineDocComment, TriviaMultiLineDocComment:
		return true
	default:
		return false
	}
}

// IsDocComment returns true for documentation comments.
func (k TriviaKind) IsDocComment() bool {
	return k == TriviaSingleLineDocComment || k == TriviaMultiLineDocComment
}

// IsSingleLineComment returns true for comments that run to the end of the line.
func (k TriviaKind) IsSingleLineComment() bool {
	return k == TriviaSingleLineComment || k == TriviaSingleLineDocComment
}

// IsWhitespaceOrEndOfLine returns true for whitespace and line breaks.
func (k TriviaKind) IsWhitespaceOrEndOfLine() bool {
	return k == TriviaWhitespace || k == TriviaEndOfLine
}

// Trivia is non-semantic source text attached to a token: whitespace, line
// breaks, comments, and preprocessor directives.
//
// Inside a tree only Kind and Text are stored. Span is filled in when trivia
// is read through a positioned Token and is zero for detached trivia.
type Trivia struct {
	Kind TriviaKind
	Text string
	Span Span
}

// NewTrivia creates detached trivia, classifying text with Classify.
func NewTrivia(text string) Trivia {
	return Trivia{Kind: Classify(text), Text: text}
}

// Whitespace creates whitespace trivia.
func Whitespace(text string) Trivia {
	return Trivia{Kind: TriviaWhitespace, Text: text}
}

// EndOfLine creates end-of-line trivia.
func EndOfLine(text string) Trivia {
	return Trivia{Kind: TriviaEndOfLine, Text: text}
}

// EmptyWhitespace returns the canonical empty whitespace trivia that stands in
// for removed trivia.
func EmptyWhitespace() Trivia {
	return Trivia{Kind: TriviaWhitespace}
}

// IsEmptyWhitespace returns true for the canonical empty whitespace trivia.
func (t Trivia) IsEmptyWhitespace() bool {
	return t.Kind == TriviaWhitespace && t.Text == ""
}

// Width returns the length of the trivia text in bytes.
func (t Trivia) Width() int {
	return len(t.Text)
}

// FullSpan equals Span; trivia has no trivia of its own.
func (t Trivia) FullSpan() Span {
	return t.Span
}

// Equivalent returns true if both trivia have the same kind and text,
// ignoring position.
func (t Trivia) Equivalent(other Trivia) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

func (t Trivia) detach() Trivia {
	return Trivia{Kind: t.Kind, Text: t.Text}
}

// Classify determines the kind of a trivia text. It is total: text that is
// not whitespace, a line break, a comment, or a directive is TriviaOther.
// The empty string classifies as whitespace.
func Classify(text string) TriviaKind {
	switch {
	case isWhitespaceText(text):
		return TriviaWhitespace
	case text == "\n" || text == "\r\n" || text == "\r":
		return TriviaEndOfLine
	case strings.HasPrefix(text, "///") && !strings.HasPrefix(text, "////"):
		return TriviaSingleLineDocComment
	case strings.HasPrefix(text, "//"):
		return TriviaSingleLineComment
	case strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/**/"):
		return TriviaMultiLineDocComment
	case strings.HasPrefix(text, "/*"):
		return TriviaMultiLineComment
	case strings.HasPrefix(text, "#"):
		return TriviaDirective
	default:
		return TriviaOther
	}
}

// ClassifyTrivia classifies t from its text, ignoring its stored kind.
func ClassifyTrivia(t Trivia) TriviaKind {
	return Classify(t.Text)
}

// IsWhitespaceByte reports whether b is horizontal whitespace.
func IsWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func isWhitespaceText(text string) bool {
	for i := range len(text) {
		if !IsWhitespaceByte(text[i]) {
			return false
		}
	}
	return true
}

func triviaWidth(list []Trivia) int {
	width := 0
	for _, t := range list {
		width += len(t.Text)
	}
	return width
}

func detachAll(list []Trivia) []Trivia {
	if len(list) == 0 {
		return nil
	}
	out := make([]Trivia, len(list))
	for i, t := range list {
		out[i] = t.detach()
	}
	return out
}

// positioned returns a copy of list with spans starting at pos.
func positioned(list []Trivia, pos int) []Trivia {
	if len(list) == 0 {
		return nil
	}
	out := make([]Trivia, len(list))
	for i, t := range list {
		t.Span = Span{Start: pos, Length: len(t.Text)}
		pos += len(t.Text)
		out[i] = t
	}
	return out
}
