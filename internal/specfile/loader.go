// Package specfile loads authored form spec documents from JSON or YAML
// files. A document carries an optional title and an ordered list of
// elements, each discriminated by its "type" key: a field kind, "group", or
// "conditional". The on-disk shape mirrors the element tree one to one.
package specfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formspec/pkg/formspec"
)

var fieldKinds = map[string]formspec.FieldType{
	string(formspec.FieldTypeText):          formspec.FieldTypeText,
	string(formspec.FieldTypeNumber):        formspec.FieldTypeNumber,
	string(formspec.FieldTypeBoolean):       formspec.FieldTypeBoolean,
	string(formspec.FieldTypeEnum):          formspec.FieldTypeEnum,
	string(formspec.FieldTypeDynamicEnum):   formspec.FieldTypeDynamicEnum,
	string(formspec.FieldTypeDynamicSchema): formspec.FieldTypeDynamicSchema,
	string(formspec.FieldTypeArray):         formspec.FieldTypeArray,
	string(formspec.FieldTypeObject):        formspec.FieldTypeObject,
}

// Load reads and parses a form spec document from disk.
func Load(path string) (*formspec.FormSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS is Load over an fs.FS.
func LoadFS(fsys fs.FS, path string) (*formspec.FormSpec, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("specfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML form spec document. source names the payload
// in error messages.
func Parse(data []byte, source string) (*formspec.FormSpec, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("specfile: %s is empty", source)
	}

	var doc struct {
		Title    string `json:"title" yaml:"title"`
		Elements []any  `json:"elements" yaml:"elements"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("specfile: parse %s: invalid JSON or YAML", source)
		}
	}

	elements, err := decodeElements(doc.Elements, source)
	if err != nil {
		return nil, err
	}
	return &formspec.FormSpec{Title: doc.Title, Elements: elements}, nil
}

func decodeElements(raw []any, source string) ([]formspec.Element, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]formspec.Element, 0, len(raw))
	for index, entry := range raw {
		mapped, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("specfile: %s: element %d is not an object", source, index)
		}
		element, err := decodeElement(mapped, source)
		if err != nil {
			return nil, err
		}
		out = append(out, element)
	}
	return out, nil
}

func decodeElement(raw map[string]any, source string) (formspec.Element, error) {
	kind, _ := raw["type"].(string)
	switch kind {
	case "":
		return nil, fmt.Errorf("specfile: %s: element is missing a type", source)
	case "group":
		return decodeGroup(raw, source)
	case "conditional":
		return decodeConditional(raw, source)
	default:
		fieldType, ok := fieldKinds[kind]
		if !ok {
			return nil, fmt.Errorf("specfile: %s: unknown element type %q", source, kind)
		}
		return decodeField(raw, fieldType, source)
	}
}

// rejectUnknownKeys mirrors the strictness mapstructure's ErrorUnused gives
// field documents, so a typoed attribute fails loudly instead of being
// silently dropped.
func rejectUnknownKeys(raw map[string]any, kind, source string, known ...string) error {
	for key := range raw {
		allowed := false
		for _, candidate := range known {
			if key == candidate {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("specfile: %s: %s element has unknown key %q", source, kind, key)
		}
	}
	return nil
}

func decodeGroup(raw map[string]any, source string) (*formspec.Group, error) {
	if err := rejectUnknownKeys(raw, "group", source, "type", "label", "elements"); err != nil {
		return nil, err
	}
	label, _ := raw["label"].(string)
	elements, err := decodeSubtree(raw["elements"], source)
	if err != nil {
		return nil, err
	}
	return &formspec.Group{Label: label, Elements: elements}, nil
}

func decodeConditional(raw map[string]any, source string) (*formspec.Conditional, error) {
	if err := rejectUnknownKeys(raw, "conditional", source, "type", "field", "value", "elements"); err != nil {
		return nil, err
	}
	field, _ := raw["field"].(string)
	if field == "" {
		return nil, fmt.Errorf("specfile: %s: conditional element is missing a field", source)
	}
	value, ok := raw["value"]
	if !ok {
		return nil, fmt.Errorf("specfile: %s: conditional on %q is missing a value", source, field)
	}
	elements, err := decodeSubtree(raw["elements"], source)
	if err != nil {
		return nil, err
	}
	return &formspec.Conditional{Field: field, Value: value, Elements: elements}, nil
}

type fieldAttributes struct {
	Name          string   `mapstructure:"name"`
	Label         string   `mapstructure:"label"`
	Placeholder   string   `mapstructure:"placeholder"`
	Required      *bool    `mapstructure:"required"`
	Minimum       *float64 `mapstructure:"minimum"`
	Maximum       *float64 `mapstructure:"maximum"`
	MinItems      *int     `mapstructure:"minItems"`
	MaxItems      *int     `mapstructure:"maxItems"`
	Options       []any    `mapstructure:"options"`
	OptionsSource string   `mapstructure:"optionsSource"`
	SchemaRef     string   `mapstructure:"schemaRef"`
}

func decodeField(raw map[string]any, kind formspec.FieldType, source string) (*formspec.Field, error) {
	scalars := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case "type", "items", "properties":
		default:
			scalars[key] = value
		}
	}

	var attrs fieldAttributes
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &attrs,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("specfile: %s: %w", source, err)
	}
	if err := decoder.Decode(scalars); err != nil {
		return nil, fmt.Errorf("specfile: %s: decode %s element: %w", source, kind, err)
	}
	if attrs.Name == "" {
		return nil, fmt.Errorf("specfile: %s: %s element is missing a name", source, kind)
	}

	options, err := decodeOptions(attrs.Options, attrs.Name, source)
	if err != nil {
		return nil, err
	}
	items, err := decodeSubtree(raw["items"], source)
	if err != nil {
		return nil, err
	}
	properties, err := decodeSubtree(raw["properties"], source)
	if err != nil {
		return nil, err
	}

	return &formspec.Field{
		Name:          attrs.Name,
		Type:          kind,
		Label:         attrs.Label,
		Placeholder:   attrs.Placeholder,
		Required:      attrs.Required,
		Minimum:       attrs.Minimum,
		Maximum:       attrs.Maximum,
		MinItems:      attrs.MinItems,
		MaxItems:      attrs.MaxItems,
		Options:       options,
		OptionsSource: attrs.OptionsSource,
		SchemaRef:     attrs.SchemaRef,
		Items:         items,
		Properties:    properties,
	}, nil
}

func decodeSubtree(raw any, source string) ([]formspec.Element, error) {
	if raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("specfile: %s: sub-tree is not a list", source)
	}
	return decodeElements(entries, source)
}

// decodeOptions accepts bare strings and {id, label} objects, the two forms
// static enum options take.
func decodeOptions(raw []any, field, source string) ([]formspec.EnumOption, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]formspec.EnumOption, 0, len(raw))
	for index, entry := range raw {
		switch option := entry.(type) {
		case string:
			out = append(out, formspec.EnumOption{ID: option})
		case map[string]any:
			id, _ := option["id"].(string)
			if id == "" {
				return nil, fmt.Errorf("specfile: %s: field %q option %d is missing an id", source, field, index)
			}
			label, _ := option["label"].(string)
			out = append(out, formspec.EnumOption{ID: id, Label: label})
		default:
			return nil, fmt.Errorf("specfile: %s: field %q option %d must be a string or an {id, label} object", source, field, index)
		}
	}
	return out, nil
}
