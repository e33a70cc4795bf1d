package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgehrsitz/shiftpay/internal/domain"
	"gopkg.in/yaml.v3"
)

// SettingsParser handles settings files
type SettingsParser struct{}

// NewSettingsParser creates a new settings parser
func NewSettingsParser() *SettingsParser {
	return &SettingsParser{}
}

// LoadFromFile loads settings from a YAML file, or a JSON file using the
// stored camelCase keys. Fields missing from the file keep their default
// values; unknown keys are rejected.
func (sp *SettingsParser) LoadFromFile(filename string) (*domain.Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return sp.Parse(data)
}

// Parse decodes and validates a settings document. A document starting with
// "{" is read as JSON, anything else as YAML.
func (sp *SettingsParser) Parse(data []byte) (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&settings); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	settings.TaxSettings.StateCode = domain.StateCode(strings.ToUpper(string(settings.TaxSettings.StateCode)))

	if err := sp.ValidateSettings(&settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &settings, nil
}

// ValidateSettings validates field ranges and enums.
func (sp *SettingsParser) ValidateSettings(settings *domain.Settings) error {
	return ValidateStruct(settings)
}

// SaveToFile writes settings as YAML.
func SaveToFile(settings domain.Settings, filename string) error {
	data, err := MarshalSettings(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// MarshalSettings renders settings as YAML.
func MarshalSettings(settings domain.Settings) ([]byte, error) {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// ApplyOverrides returns base with individual fields replaced from
// "key=value" pairs. Keys are YAML paths such as hourly_rate or
// tax_settings.state_code; values are parsed as YAML scalars. The result is
// validated like an imported file.
func (sp *SettingsParser) ApplyOverrides(base domain.Settings, pairs []string) (*domain.Settings, error) {
	data, err := MarshalSettings(base)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid setting %q (want key=value)", pair)
		}
		if err := setPath(doc, strings.Split(strings.TrimSpace(key), "."), value); err != nil {
			return nil, err
		}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return sp.Parse(out)
}

func setPath(doc map[string]any, path []string, raw string) error {
	name := strings.Join(path, ".")
	node := doc
	for i, key := range path {
		cur, ok := node[key]
		if !ok {
			return fmt.Errorf("unknown setting %q", name)
		}
		child, nested := cur.(map[string]any)
		if i < len(path)-1 {
			if !nested {
				return fmt.Errorf("unknown setting %q", name)
			}
			node = child
			continue
		}
		if nested {
			return fmt.Errorf("setting %q is a section, set one of its fields", name)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		node[key] = v
	}
	return nil
}
