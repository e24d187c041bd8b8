package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/triviakit/pkg/config"
)

// envVarPrefix prefixes every environment override.
const envVarPrefix = "TRIVIAKIT_"

// envSetter applies one environment value to the config.
type envSetter struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // read-only lookup table
var envMappings = map[string]envSetter{
	"COMMENTS": {
		description: "Comment kinds removed by strip-comments",
		apply:       func(cfg *config.Config, v string) error { cfg.Comments = v; return nil },
	},
	"WHITESPACE_REPLACEMENT": {
		description: "Replacement text for replace-whitespace",
		apply:       func(cfg *config.Config, v string) error { cfg.Whitespace.Replacement = v; return nil },
	},
	"PLACEHOLDER": {
		description: "Element text inserted by fill",
		apply:       func(cfg *config.Config, v string) error { cfg.Placeholder = v; return nil },
	},
	"EXTENSIONS": {
		description: "Comma-separated C# file extensions",
		apply:       func(cfg *config.Config, v string) error { cfg.Extensions = parseSliceValue(v); return nil },
	},
	"IGNORE": {
		description: "Comma-separated ignore globs",
		apply:       func(cfg *config.Config, v string) error { cfg.Ignore = parseSliceValue(v); return nil },
	},
	"MARKDOWN_ENABLED": {
		description: "Rewrite C# fences in Markdown: true or false",
		apply: func(cfg *config.Config, v string) error {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true/false/1/0")
			}
			cfg.Markdown.Enabled = &enabled
			return nil
		},
	},
	"MARKDOWN_LANGUAGES": {
		description: "Comma-separated fence languages treated as C#",
		apply:       func(cfg *config.Config, v string) error { cfg.Markdown.Languages = parseSliceValue(v); return nil },
	},
	"JOBS": {
		description: "Number of parallel workers (0 = auto)",
		apply: func(cfg *config.Config, v string) error {
			jobs, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expected an integer")
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	"BACKUPS_ENABLED": {
		description: "Write sidecar backups before modifying files: true or false",
		apply: func(cfg *config.Config, v string) error {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true/false/1/0")
			}
			cfg.Backups.Enabled = enabled
			return nil
		},
	},
	"COLOR": {
		description: "Color output: auto, always, or never",
		apply:       func(cfg *config.Config, v string) error { cfg.Color = config.ColorMode(v); return nil },
	},
}

// LoadFromEnv applies TRIVIAKIT_* overrides to cfg. Unset or empty
// variables are skipped.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}
	for suffix, setter := range envMappings {
		name := envVarPrefix + suffix
		value := getenv(name)
		if value == "" {
			continue
		}
		if err := setter.apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", name, value, err)
		}
	}
	return nil
}

func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar is a supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, setter := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: setter.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
