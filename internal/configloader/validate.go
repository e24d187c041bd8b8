package configloader

import (
	"github.com/yaklabco/triviakit/pkg/config"
)

// ValidationResult holds all findings for a configuration.
type ValidationResult struct {
	Errors   []config.FieldError
	Warnings []config.FieldError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns errors then warnings, each with its severity prefix.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration.
func Validate(cfg *config.Config) *ValidationResult {
	errs, warnings := cfg.Problems()
	return &ValidationResult{Errors: errs, Warnings: warnings}
}

// ValidateFile validates the config stored at path, attributing findings to it.
func ValidateFile(path string) (*ValidationResult, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	// A file only has to be valid once layered over the defaults.
	result := Validate(merge(config.NewConfig(), cfg))
	for i := range result.Errors {
		result.Errors[i].FilePath = path
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = path
	}
	return result, nil
}
