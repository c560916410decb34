package formspec

import "encoding/json"

// The JSON shape of an element tree mirrors the authored structure: every
// element carries a "type" discriminator (a field kind, "group", or
// "conditional"). Bare enum options serialise as plain strings, labelled
// options as {id, label} objects. Decoding lives in internal/specfile.

type fieldDocument struct {
	Type          FieldType `json:"type"`
	Name          string    `json:"name"`
	Label         string    `json:"label,omitempty"`
	Placeholder   string    `json:"placeholder,omitempty"`
	Required      *bool     `json:"required,omitempty"`
	Minimum       *float64  `json:"minimum,omitempty"`
	Maximum       *float64  `json:"maximum,omitempty"`
	MinItems      *int      `json:"minItems,omitempty"`
	MaxItems      *int      `json:"maxItems,omitempty"`
	Options       []any     `json:"options,omitempty"`
	OptionsSource string    `json:"optionsSource,omitempty"`
	SchemaRef     string    `json:"schemaRef,omitempty"`
	Items         []Element `json:"items,omitempty"`
	Properties    []Element `json:"properties,omitempty"`
}

type groupDocument struct {
	Type     string    `json:"type"`
	Label    string    `json:"label"`
	Elements []Element `json:"elements"`
}

type conditionalDocument struct {
	Type     string    `json:"type"`
	Field    string    `json:"field"`
	Value    any       `json:"value"`
	Elements []Element `json:"elements"`
}

type specDocument struct {
	Title    string    `json:"title,omitempty"`
	Elements []Element `json:"elements"`
}

// MarshalJSON serialises the field with its type discriminator.
func (f *Field) MarshalJSON() ([]byte, error) {
	doc := fieldDocument{
		Type:          f.Type,
		Name:          f.Name,
		Label:         f.Label,
		Placeholder:   f.Placeholder,
		Required:      f.Required,
		Minimum:       f.Minimum,
		Maximum:       f.Maximum,
		MinItems:      f.MinItems,
		MaxItems:      f.MaxItems,
		OptionsSource: f.OptionsSource,
		SchemaRef:     f.SchemaRef,
		Items:         f.Items,
		Properties:    f.Properties,
	}
	for _, option := range f.Options {
		if option.Label == "" {
			doc.Options = append(doc.Options, option.ID)
			continue
		}
		doc.Options = append(doc.Options, option)
	}
	return json.Marshal(doc)
}

// MarshalJSON serialises the group with its type discriminator.
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupDocument{Type: "group", Label: g.Label, Elements: g.Elements})
}

// MarshalJSON serialises the conditional with its type discriminator. Value
// is never dropped, so falsy triggers (false, 0, "") survive round-trips.
func (c *Conditional) MarshalJSON() ([]byte, error) {
	return json.Marshal(conditionalDocument{Type: "conditional", Field: c.Field, Value: c.Value, Elements: c.Elements})
}

// MarshalJSON serialises the whole spec document.
func (s *FormSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(specDocument{Title: s.Title, Elements: s.Elements})
}
