package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const templateHeader = `# triviakit configuration
#
# comments: comment kinds removed by strip-comments. Combine with "|":
#   all, documentation, all-except-documentation, single-line, multi-line,
#   single-line-documentation, multi-line-documentation
# whitespace.replacement: text used by replace-whitespace
# placeholder: element inserted by fill
# markdown: rewrite C# fenced code blocks inside Markdown files
# backups: keep a sidecar copy (file.cs.triviakit.bak) before writing`

// GenerateTemplate renders the default configuration as a commented YAML
// file, or as JSON when format is "json".
func GenerateTemplate(format string) ([]byte, error) {
	cfg := NewConfig()
	cfg.Ignore = []string{"bin/**", "obj/**"}

	switch format {
	case "", "yaml", "yml":
		return cfg.ToYAMLWithHeader(templateHeader)
	case "json":
		return templateToJSON(cfg)
	default:
		return nil, fmt.Errorf("unknown template format %q", format)
	}
}

// templateToJSON goes through YAML so the JSON keys match the YAML ones.
func templateToJSON(cfg *Config) ([]byte, error) {
	body, err := cfg.ToYAML()
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(generic); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	return buf.Bytes(), nil
}
