package syntax

import "fmt"

// Kind identifies the type of a token or node.
type Kind uint16

// Token and node kinds.
const (
	KindNone Kind = iota

	// Tokens.
	KindIdentifier
	KindNumericLiteral
	KindStringLiteral
	KindCharacterLiteral
	KindOpenParen
	KindCloseParen
	KindOpenBracket
	KindCloseBracket
	KindOpenBrace
	KindCloseBrace
	KindComma
	KindSemicolon
	KindDot
	KindOperator
	KindBadToken
	KindEndOfFile

	// Nodes.
	KindCompilationUnit
	KindArgumentList  // ( ... )
	KindBracketedList // [ ... ]
	KindBraceList     // { ... }
	KindListElement
)

var kindNames = map[Kind]string{
	KindNone:             "None",
	KindIdentifier:       "Identifier",
	KindNumericLiteral:   "NumericLiteral",
	KindStringLiteral:    "StringLiteral",
	KindCharacterLiteral: "CharacterLiteral",
	KindOpenParen:        "OpenParen",
	KindCloseParen:       "CloseParen",
	KindOpenBracket:      "OpenBracket",
	KindCloseBracket:     "CloseBracket",
	KindOpenBrace:        "OpenBrace",
	KindCloseBrace:       "CloseBrace",
	KindComma:            "Comma",
	KindSemicolon:        "Semicolon",
	KindDot:              "Dot",
	KindOperator:         "Operator",
	KindBadToken:         "BadToken",
	KindEndOfFile:        "EndOfFile",
	KindCompilationUnit:  "CompilationUnit",
	KindArgumentList:     "ArgumentList",
	KindBracketedList:    "BracketedList",
	KindBraceList:        "BraceList",
	KindListElement:      "ListElement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsToken returns true for token kinds.
func (k Kind) IsToken() bool {
	return k >= KindIdentifier && k <= KindEndOfFile
}

// IsNode returns true for node kinds.
func (k Kind) IsNode() bool {
	return k >= KindCompilationUnit && k <= KindListElement
}

// IsList returns true for bracketed separated-list node kinds.
func (k Kind) IsList() bool {
	switch k {
	case KindArgumentList, KindBracketedList, KindBraceList:
		return true
	default:
		return false
	}
}

// ListBrackets returns the open and close token kinds for a list kind.
func (k Kind) ListBrackets() (Kind, Kind, bool) {
	switch k {
	case KindArgumentList:
		return KindOpenParen, KindCloseParen, true
	case KindBracketedList:
		return KindOpenBracket, KindCloseBracket, true
	case KindBraceList:
		return KindOpenBrace, KindCloseBrace, true
	default:
		return KindNone, KindNone, false
	}
}
