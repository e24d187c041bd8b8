package csharp

import (
	"strings"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// lexer performs a single pass over the source, producing tokens with their
// leading and trailing trivia attached. Concatenating the full text of every
// token reproduces the input exactly.
type lexer struct {
	src string
	pos int
}

// multiCharOperators is ordered longest first for maximal munch.
//
//nolint:gochecknoglobals // Read-only lookup table
var multiCharOperators = []string{
	">>>=",
	"<<=", ">>=", "??=", ">>>",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", "??", "?.", "::", "->", "..",
}

// Tokenize splits text into tokens. The last token is always EndOfFile and
// carries any trivia left at the end of the text.
func Tokenize(text string) []syntax.Token {
	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	lex := &lexer{src: text}
	tokens := make([]syntax.Token, 0, len(text)/initialCapacityDivisor+1)

	for {
		leading := lex.leadingTrivia()
		if lex.pos >= len(lex.src) {
			tokens = append(tokens, syntax.NewToken(syntax.KindEndOfFile, "", leading, nil))
			return tokens
		}
		kind, tokenText := lex.next()
		trailing := lex.trailingTrivia()
		tokens = append(tokens, syntax.NewToken(kind, tokenText, leading, trailing))
	}
}

// leadingTrivia consumes every trivia up to the next token.
func (l *lexer) leadingTrivia() []syntax.Trivia {
	var trivia []syntax.Trivia
	for l.pos < len(l.src) {
		t, ok := l.trivia(true)
		if !ok {
			break
		}
		trivia = append(trivia, t)
	}
	return trivia
}

// trailingTrivia consumes trivia up to and including the first line break.
func (l *lexer) trailingTrivia() []syntax.Trivia {
	var trivia []syntax.Trivia
	for l.pos < len(l.src) {
		t, ok := l.trivia(false)
		if !ok {
			break
		}
		trivia = append(trivia, t)
		if t.Kind == syntax.TriviaEndOfLine {
			break
		}
	}
	return trivia
}

// trivia lexes one trivia at the current position. Directives are only
// recognised in leading position at the start of a line.
func (l *lexer) trivia(leading bool) (syntax.Trivia, bool) {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case syntax.IsWhitespaceByte(c):
		for l.pos < len(l.src) && syntax.IsWhitespaceByte(l.src[l.pos]) {
			l.pos++
		}
		return syntax.Whitespace(l.src[start:l.pos]), true

	case c == '\r':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
		return syntax.EndOfLine(l.src[start:l.pos]), true

	case c == '\n':
		l.pos++
		return syntax.EndOfLine(l.src[start:l.pos]), true

	case strings.HasPrefix(l.src[l.pos:], "//"):
		l.skipToEndOfLine()
		return syntax.NewTrivia(l.src[start:l.pos]), true

	case strings.HasPrefix(l.src[l.pos:], "/*"):
		end := strings.Index(l.src[l.pos+2:], "*/")
		if end < 0 {
			l.pos = len(l.src)
		} else {
			l.pos += 2 + end + 2
		}
		return syntax.NewTrivia(l.src[start:l.pos]), true

	case c == '#' && leading && l.atLineStart():
		l.skipToEndOfLine()
		return syntax.Trivia{Kind: syntax.TriviaDirective, Text: l.src[start:l.pos]}, true

	default:
		return syntax.Trivia{}, false
	}
}

// atLineStart reports whether only whitespace precedes pos on its line.
func (l *lexer) atLineStart() bool {
	for i := l.pos - 1; i >= 0; i-- {
		switch {
		case l.src[i] == '\n' || l.src[i] == '\r':
			return true
		case !syntax.IsWhitespaceByte(l.src[i]):
			return false
		}
	}
	return true
}

func (l *lexer) skipToEndOfLine() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.pos++
	}
}

// next lexes one token at the current position.
func (l *lexer) next() (syntax.Kind, string) {
	start := l.pos
	c := l.src[l.pos]
	rest := l.src[l.pos:]

	switch {
	case isQuoteStart(rest):
		l.scanString()
		return syntax.KindStringLiteral, l.src[start:l.pos]
	case c == '@' && len(rest) > 1 && isIdentStart(rest[1]):
		l.pos++
		l.scanIdentifier()
		return syntax.KindIdentifier, l.src[start:l.pos]
	case isIdentStart(c):
		l.scanIdentifier()
		return syntax.KindIdentifier, l.src[start:l.pos]
	case isDigit(c) || (c == '.' && len(rest) > 1 && isDigit(rest[1])):
		l.scanNumber()
		return syntax.KindNumericLiteral, l.src[start:l.pos]
	case c == '\'':
		l.scanQuoted('\'')
		return syntax.KindCharacterLiteral, l.src[start:l.pos]
	}

	if kind, ok := punctuation(c); ok {
		l.pos++
		return kind, l.src[start:l.pos]
	}

	for _, op := range multiCharOperators {
		if strings.HasPrefix(rest, op) {
			l.pos += len(op)
			return syntax.KindOperator, op
		}
	}

	if strings.IndexByte("+-*/%=<>!&|^~?:", c) >= 0 {
		l.pos++
		return syntax.KindOperator, l.src[start:l.pos]
	}

	l.pos++
	for l.pos < len(l.src) && l.src[l.pos]&0xC0 == 0x80 {
		l.pos++ // keep multi-byte runes whole
	}
	return syntax.KindBadToken, l.src[start:l.pos]
}

func punctuation(c byte) (syntax.Kind, bool) {
	switch c {
	case '(':
		return syntax.KindOpenParen, true
	case ')':
		return syntax.KindCloseParen, true
	case '[':
		return syntax.KindOpenBracket, true
	case ']':
		return syntax.KindCloseBracket, true
	case '{':
		return syntax.KindOpenBrace, true
	case '}':
		return syntax.KindCloseBrace, true
	case ',':
		return syntax.KindComma, true
	case ';':
		return syntax.KindSemicolon, true
	case '.':
		return syntax.KindDot, true
	default:
		return syntax.KindNone, false
	}
}

func (l *lexer) scanIdentifier() {
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
}

func (l *lexer) scanNumber() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isIdentPart(c) {
			l.pos++
			continue
		}
		if c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
			l.pos++
			continue
		}
		return
	}
}

// scanString handles regular, verbatim, interpolated, and raw string literals.
func (l *lexer) scanString() {
	verbatim := false
	for l.pos < len(l.src) && (l.src[l.pos] == '$' || l.src[l.pos] == '@') {
		if l.src[l.pos] == '@' {
			verbatim = true
		}
		l.pos++
	}

	quotes := 0
	for l.pos+quotes < len(l.src) && l.src[l.pos+quotes] == '"' {
		quotes++
	}
	if quotes >= 3 {
		l.pos += quotes
		closing := strings.Repeat(`"`, quotes)
		end := strings.Index(l.src[l.pos:], closing)
		if end < 0 {
			l.pos = len(l.src)
			return
		}
		l.pos += end + quotes
		return
	}

	if verbatim {
		l.pos++ // opening quote
		for l.pos < len(l.src) {
			if l.src[l.pos] == '"' {
				if l.pos+1 < len(l.src) && l.src[l.pos+1] == '"' {
					l.pos += 2
					continue
				}
				l.pos++
				return
			}
			l.pos++
		}
		return
	}

	l.scanQuoted('"')
}

// scanQuoted scans a single-line quoted literal with backslash escapes. An
// unterminated literal stops at the end of the line.
func (l *lexer) scanQuoted(quote byte) {
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
			if l.pos > len(l.src) {
				l.pos = len(l.src)
			}
		case quote:
			l.pos++
			return
		case '\n', '\r':
			return
		default:
			l.pos++
		}
	}
}

func isQuoteStart(s string) bool {
	for i := 0; i < len(s) && i < 3; i++ {
		switch s[i] {
		case '"':
			return true
		case '$', '@':
			continue
		default:
			return false
		}
	}
	return false
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
