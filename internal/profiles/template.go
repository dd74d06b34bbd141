package profiles

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// DefaultTemplate is the body written into new profiles.
const DefaultTemplate = `{
  "env": {
    "ANTHROPIC_API_KEY": "sk-ant-XXX",
    "ANTHROPIC_BASE_URL": "https://api.anthropic.com"
  }
}`

// LoadTemplate reads a YAML template override and renders it as formatted
// JSON. A missing file yields DefaultTemplate.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTemplate, nil
		}
		return DefaultTemplate, fmt.Errorf("reading template: %w", err)
	}
	return TemplateFromYAML(data)
}

// TemplateFromYAML converts a YAML mapping into a formatted JSON profile body.
func TemplateFromYAML(data []byte) (string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DefaultTemplate, fmt.Errorf("parsing template: %w", err)
	}
	if doc == nil {
		return DefaultTemplate, nil
	}
	out, err := json.MarshalIndent(doc, "", Indent)
	if err != nil {
		return DefaultTemplate, fmt.Errorf("encoding template: %w", err)
	}
	return string(out), nil
}

// ToYAML renders JSON profile text as YAML for display.
func ToYAML(text string) (string, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return string(out), nil
}
