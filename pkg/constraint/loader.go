package constraint

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a JSON or YAML constraint configuration from disk and
// merges it over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("constraint: read config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// LoadConfigFS is LoadConfig over an fs.FS.
func LoadConfigFS(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("constraint: read config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes a JSON or YAML payload as a partial configuration and
// merges it over DefaultConfig. Unknown keys and unknown severities are
// rejected so a typo cannot silently disable a constraint.
func ParseConfig(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("constraint: config %s is empty", source)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("constraint: parse %s: invalid JSON or YAML", source)
		}
	}

	var override Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &override,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("constraint: decode %s: %w", source, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("constraint: decode %s: %w", source, err)
	}

	if err := validateConfig(override); err != nil {
		return Config{}, fmt.Errorf("constraint: config %s: %w", source, err)
	}

	return Merge(DefaultConfig(), override), nil
}
