package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// FieldError describes one invalid or suspicious configuration value.
type FieldError struct {
	// Field is the YAML path of the value, e.g. "whitespace.replacement".
	Field   string
	Value   any
	Message string

	// FilePath is the config file the value came from, if known.
	FilePath string
}

func (e *FieldError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

var knownBackupModes = map[string]bool{ //nolint:gochecknoglobals // read-only lookup
	"sidecar": true,
	"none":    true,
}

var knownColorModes = map[ColorMode]bool{ //nolint:gochecknoglobals // read-only lookup
	ColorAuto:   true,
	ColorAlways: true,
	ColorNever:  true,
}

// Problems returns the errors that make the configuration unusable and the
// warnings worth reporting.
func (c *Config) Problems() ([]FieldError, []FieldError) {
	var errs, warnings []FieldError
	if c == nil {
		return nil, nil
	}

	if _, err := c.RemoveOptions(); err != nil {
		errs = append(errs, FieldError{Field: "comments", Value: c.Comments, Message: err.Error()})
	}

	if syntax.Classify(c.Whitespace.Replacement) != syntax.TriviaWhitespace {
		errs = append(errs, FieldError{
			Field:   "whitespace.replacement",
			Value:   c.Whitespace.Replacement,
			Message: "replacement must contain only spaces or tabs",
		})
	}

	if strings.ContainsAny(c.Placeholder, ",()[]{}\r\n") {
		errs = append(errs, FieldError{
			Field:   "placeholder",
			Value:   c.Placeholder,
			Message: "placeholder must be a single list element",
		})
	}

	if c.Jobs < 0 {
		errs = append(errs, FieldError{Field: "jobs", Value: c.Jobs, Message: "jobs must be >= 0 (0 means auto)"})
	}

	if c.Backups.Mode != "" && !knownBackupModes[c.Backups.Mode] {
		errs = append(errs, FieldError{
			Field:   "backups.mode",
			Value:   c.Backups.Mode,
			Message: fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", c.Backups.Mode),
		})
	}

	if c.Color != "" && !knownColorModes[c.Color] {
		errs = append(errs, FieldError{
			Field:   "color",
			Value:   c.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", c.Color),
		})
	}

	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			warnings = append(warnings, FieldError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q does not start with a dot and will never match", ext),
			})
		}
	}

	for i, pattern := range c.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	if c.MarkdownEnabled() && len(c.Markdown.Languages) == 0 {
		warnings = append(warnings, FieldError{
			Field:   "markdown.languages",
			Message: "markdown is enabled but no fence languages are listed; only unlabelled C# fences are rewritten",
		})
	}

	return errs, warnings
}

// Validate returns the configuration errors joined, or nil.
func (c *Config) Validate() error {
	errs, _ := c.Problems()
	joined := make([]error, len(errs))
	for i := range errs {
		joined[i] = &errs[i]
	}
	return errors.Join(joined...)
}
