package syntax

import "strings"

// Token is a positioned view of a token: its kind, text, and the trivia
// attached before and after it. Token values are cheap to copy; the zero
// Token is absent.
type Token struct {
	g   *greenToken
	pos int // start of the full span
}

// NewToken creates a detached token. Spans stored in the trivia are ignored.
func NewToken(kind Kind, text string, leading, trailing []Trivia) Token {
	return Token{g: newGreenToken(kind, text, leading, trailing, false)}
}

// MissingToken creates a zero-width placeholder token, as produced by error
// recovery for a syntactically required but absent token.
func MissingToken(kind Kind) Token {
	return Token{g: newGreenToken(kind, "", nil, nil, true)}
}

// IsZero returns true for the absent token.
func (t Token) IsZero() bool {
	return t.g == nil
}

// Kind returns the token kind, or KindNone for the absent token.
func (t Token) Kind() Kind {
	if t.g == nil {
		return KindNone
	}
	return t.g.kind
}

// ID returns the construction identity of the token.
func (t Token) ID() uint64 {
	if t.g == nil {
		return 0
	}
	return t.g.ident
}

// Text returns the token text without trivia.
func (t Token) Text() string {
	if t.g == nil {
		return ""
	}
	return t.g.text
}

// IsMissing returns true for placeholder tokens.
func (t Token) IsMissing() bool {
	return t.g != nil && t.g.missing
}

// Span returns the range of the token text, excluding trivia.
func (t Token) Span() Span {
	if t.g == nil {
		return Span{}
	}
	return Span{Start: t.pos + t.g.leadingWidth, Length: len(t.g.text)}
}

// FullSpan returns the range of the token including its trivia.
func (t Token) FullSpan() Span {
	if t.g == nil {
		return Span{}
	}
	return Span{Start: t.pos, Length: t.g.width()}
}

// LeadingTrivia returns the trivia before the token, with spans.
func (t Token) LeadingTrivia() []Trivia {
	if t.g == nil {
		return nil
	}
	return positioned(t.g.leading, t.pos)
}

// TrailingTrivia returns the trivia after the token, with spans.
func (t Token) TrailingTrivia() []Trivia {
	if t.g == nil {
		return nil
	}
	return positioned(t.g.trailing, t.pos+t.g.leadingWidth+len(t.g.text))
}

// HasLeadingTrivia returns true if any trivia precedes the token.
func (t Token) HasLeadingTrivia() bool {
	return t.g != nil && len(t.g.leading) > 0
}

// HasTrailingTrivia returns true if any trivia follows the token.
func (t Token) HasTrailingTrivia() bool {
	return t.g != nil && len(t.g.trailing) > 0
}

// String returns the token text.
func (t Token) String() string {
	return t.Text()
}

// FullString returns the token text with its trivia.
func (t Token) FullString() string {
	if t.g == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(t.g.width())
	t.g.writeTo(&sb)
	return sb.String()
}

// WithLeadingTrivia returns a copy of the token with new leading trivia.
// The copy has a new identity and keeps the receiver's position.
func (t Token) WithLeadingTrivia(trivia ...Trivia) Token {
	if t.g == nil {
		return t
	}
	return Token{g: newGreenToken(t.g.kind, t.g.text, trivia, t.g.trailing, t.g.missing), pos: t.pos}
}

// WithTrailingTrivia returns a copy of the token with new trailing trivia.
func (t Token) WithTrailingTrivia(trivia ...Trivia) Token {
	if t.g == nil {
		return t
	}
	return Token{g: newGreenToken(t.g.kind, t.g.text, t.g.leading, trivia, t.g.missing), pos: t.pos}
}

// WithTrivia returns a copy of the token with both trivia lists replaced.
func (t Token) WithTrivia(leading, trailing []Trivia) Token {
	if t.g == nil {
		return t
	}
	return Token{g: newGreenToken(t.g.kind, t.g.text, leading, trailing, t.g.missing), pos: t.pos}
}

func (t Token) green() green {
	if t.g == nil {
		return nil
	}
	return t.g
}
