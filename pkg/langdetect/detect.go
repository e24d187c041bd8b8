// Package langdetect decides whether a file or a Markdown code fence holds
// C# source, using go-enry's extension, alias, and content heuristics.
package langdetect

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// CSharp is go-enry's name for C#.
const CSharp = "C#"

const langText = "text"

// candidates limits the classifier to languages that plausibly share a
// README with C# and look alike at a glance.
//
//nolint:gochecknoglobals // read-only lookup table
var candidates = []string{
	CSharp, "Java", "C++", "C", "TypeScript", "JavaScript", "Go",
	"Python", "Shell", "PowerShell", "JSON", "XML", "YAML", "SQL",
}

//nolint:gochecknoglobals // compiled once
var csharpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*using\s+(static\s+)?[A-Z][\w.]*\s*;`),
	regexp.MustCompile(`(?m)^\s*namespace\s+[A-Z][\w.]*\s*[;{]?`),
	regexp.MustCompile(`\{\s*get;\s*(init;|set;)?\s*\}`),
	regexp.MustCompile(`\bConsole\.Write(Line)?\(`),
	regexp.MustCompile(`\b(public|internal|private)\s+(sealed\s+|static\s+|partial\s+)*(class|record|struct|interface)\s+\w+`),
	regexp.MustCompile(`(?m)^\s*///\s*<summary>`),
}

// Detect returns the go-enry name of the language of content, or "text".
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}

	if looksLikeCSharp(trimmed) {
		return CSharp
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return lang
	}
	return langText
}

func looksLikeCSharp(content []byte) bool {
	for _, pattern := range csharpPatterns {
		if pattern.Match(content) {
			return true
		}
	}
	return false
}

// IsCSharp returns true if content looks like C#.
func IsCSharp(content []byte) bool {
	return Detect(content) == CSharp
}

// IsCSharpPath returns true if C# is among the languages go-enry maps the
// file's extension to. ".cs" is shared with Smalltalk, so this is a
// candidate check rather than a verdict.
func IsCSharpPath(path string) bool {
	return slices.Contains(enry.GetLanguagesByExtension(path, nil, nil), CSharp)
}

// IsCSharpAlias returns true if a fence info string names C#, either as a
// language alias ("csharp", "c#") or as its file extension ("cs").
func IsCSharpAlias(info string) bool {
	word := FenceLanguage(info)
	if word == "" {
		return false
	}
	if lang, ok := enry.GetLanguageByAlias(word); ok {
		return lang == CSharp
	}
	return IsCSharpPath("fence." + strings.ToLower(word))
}

// FenceLanguage returns the language word of a fence info string:
// "csharp title=x" gives "csharp", "{.cs}" gives "cs".
func FenceLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	word := strings.Trim(fields[0], "{}")
	return strings.TrimPrefix(word, ".")
}

// ShouldSkip returns true for vendored or generated files, which are never
// rewritten. content may be nil when only the path is known.
func ShouldSkip(path string, content []byte) bool {
	if enry.IsVendor(path) {
		return true
	}
	return content != nil && enry.IsGenerated(path, content)
}
