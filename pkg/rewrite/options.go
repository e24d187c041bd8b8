package rewrite

import (
	"fmt"
	"strings"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// RemoveOptions selects which comment kinds RemoveTrivia removes.
// Values combine bitwise.
type RemoveOptions uint8

// Comment selections.
const (
	SingleLine RemoveOptions = 1 << iota
	MultiLine
	SingleLineDocumentation
	MultiLineDocumentation

	None                   RemoveOptions = 0
	Documentation                        = SingleLineDocumentation | MultiLineDocumentation
	AllExceptDocumentation               = SingleLine | MultiLine
	All                                  = AllExceptDocumentation | Documentation
)

// flagNames lists single flags in display order.
//
//nolint:gochecknoglobals // Read-only lookup table
var flagNames = []struct {
	flag RemoveOptions
	name string
}{
	{SingleLine, "single-line"},
	{MultiLine, "multi-line"},
	{SingleLineDocumentation, "single-line-documentation"},
	{MultiLineDocumentation, "multi-line-documentation"},
}

// aliases maps accepted names, including the composite ones, to options.
//
//nolint:gochecknoglobals // Read-only lookup table
var aliases = map[string]RemoveOptions{
	"none":                      None,
	"all":                       All,
	"documentation":             Documentation,
	"docs":                      Documentation,
	"all-except-documentation":  AllExceptDocumentation,
	"comments":                  AllExceptDocumentation,
	"single-line":               SingleLine,
	"multi-line":                MultiLine,
	"single-line-documentation": SingleLineDocumentation,
	"multi-line-documentation":  MultiLineDocumentation,
}

// ParseRemoveOptions parses a comma- or pipe-separated list of option names,
// for example "single-line,multi-line" or "all". Names are case-insensitive.
func ParseRemoveOptions(value string) (RemoveOptions, error) {
	var opts RemoveOptions
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	if len(fields) == 0 {
		return None, fmt.Errorf("%w: empty comment selection", syntax.ErrInvalidArgument)
	}
	for _, field := range fields {
		opt, ok := aliases[strings.ToLower(field)]
		if !ok {
			return None, fmt.Errorf("%w: unknown comment kind %q", syntax.ErrInvalidArgument, field)
		}
		opts |= opt
	}
	return opts, nil
}

// Has returns true if every flag in other is set.
func (o RemoveOptions) Has(other RemoveOptions) bool {
	return o&other == other
}

// Matches returns true if trivia of the given kind is selected.
func (o RemoveOptions) Matches(kind syntax.TriviaKind) bool {
	switch kind {
	case syntax.TriviaSingleLineComment:
		return o.Has(SingleLine)
	case syntax.TriviaMultiLineComment:
		return o.Has(MultiLine)
	case syntax.TriviaSingleLineDocComment:
		return o.Has(SingleLineDocumentation)
	case syntax.TriviaMultiLineDocComment:
		return o.Has(MultiLineDocumentation)
	default:
		return false
	}
}

func (o RemoveOptions) String() string {
	switch o {
	case None:
		return "none"
	case All:
		return "all"
	case Documentation:
		return "documentation"
	case AllExceptDocumentation:
		return "all-except-documentation"
	}

	parts := make([]string, 0, len(flagNames))
	for _, f := range flagNames {
		if o.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
