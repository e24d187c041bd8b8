package configloader

import "github.com/yaklabco/triviakit/pkg/config"

// merge layers override on top of base. Non-zero scalars and non-nil slices
// in override win; booleans can only be switched on, except
// markdown.enabled which is a pointer and can be switched off.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Comments != "" {
		result.Comments = override.Comments
	}
	if override.Whitespace.Replacement != "" {
		result.Whitespace.Replacement = override.Whitespace.Replacement
	}
	if override.Placeholder != "" {
		result.Placeholder = override.Placeholder
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Markdown.Enabled != nil {
		enabled := *override.Markdown.Enabled
		result.Markdown.Enabled = &enabled
	}

	result.Backups.Enabled = result.Backups.Enabled || override.Backups.Enabled
	result.Write = result.Write || override.Write
	result.Diff = result.Diff || override.Diff
	result.Check = result.Check || override.Check

	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.Markdown.Languages != nil {
		result.Markdown.Languages = append([]string(nil), override.Markdown.Languages...)
	}

	return result
}

// MergeAll merges configs in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
