// Package config defines the triviakit configuration and its YAML form.
// It holds plain data; discovery and layering live in internal/configloader.
package config

import (
	"slices"
	"strings"

	"github.com/yaklabco/triviakit/pkg/rewrite"
	"github.com/yaklabco/triviakit/pkg/syntax"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// WhitespaceConfig configures whitespace replacement.
type WhitespaceConfig struct {
	// Replacement is the text every whitespace trivia is replaced with.
	Replacement string `yaml:"replacement"`
}

// MarkdownConfig controls rewriting of C# fenced code blocks in Markdown.
type MarkdownConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`

	// Languages are fence info strings treated as C#.
	Languages []string `yaml:"languages,omitempty"`
}

// BackupsConfig controls sidecar backups written before a file is modified.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"`
}

// Config is the root configuration.
type Config struct {
	// Comments names the comment kinds strip-comments removes, e.g. "all",
	// "documentation" or "single-line|multi-line".
	Comments string `yaml:"comments"`

	Whitespace WhitespaceConfig `yaml:"whitespace"`

	// Placeholder is the element text used to fill missing list elements.
	Placeholder string `yaml:"placeholder"`

	// Extensions are the file extensions treated as C# source.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	Markdown MarkdownConfig `yaml:"markdown"`

	Backups BackupsConfig `yaml:"backups"`

	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs"`

	// CLI-level options, not persisted.

	Write bool      `yaml:"-"`
	Diff  bool      `yaml:"-"`
	Check bool      `yaml:"-"`
	Color ColorMode `yaml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	enabled := true
	return &Config{
		Comments:    rewrite.All.String(),
		Whitespace:  WhitespaceConfig{Replacement: " "},
		Placeholder: "default",
		Extensions:  []string{".cs", ".csx"},
		Markdown: MarkdownConfig{
			Enabled:   &enabled,
			Languages: []string{"cs", "csharp", "c#"},
		},
		Backups: BackupsConfig{Enabled: false, Mode: "sidecar"},
		Color:   ColorAuto,
	}
}

// RemoveOptions parses Comments. An empty value means all comments.
func (c *Config) RemoveOptions() (rewrite.RemoveOptions, error) {
	if strings.TrimSpace(c.Comments) == "" {
		return rewrite.All, nil
	}
	return rewrite.ParseRemoveOptions(c.Comments)
}

// ReplacementTrivia returns the configured whitespace replacement as trivia.
func (c *Config) ReplacementTrivia() syntax.Trivia {
	return syntax.Whitespace(c.Whitespace.Replacement)
}

// MarkdownEnabled returns true unless Markdown rewriting was switched off.
func (c *Config) MarkdownEnabled() bool {
	return c.Markdown.Enabled == nil || *c.Markdown.Enabled
}

// IsSourceExtension returns true if ext (with its dot) names C# source.
func (c *Config) IsSourceExtension(ext string) bool {
	return slices.ContainsFunc(c.Extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// IsMarkdownLanguage returns true if a fence info string names C#.
func (c *Config) IsMarkdownLanguage(info string) bool {
	return slices.ContainsFunc(c.Markdown.Languages, func(lang string) bool {
		return strings.EqualFold(lang, info)
	})
}
