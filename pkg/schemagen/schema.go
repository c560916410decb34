package schemagen

// Schema is the derived validation schema. It marshals to the JSON Schema
// vocabulary subset the toolkit emits: type, properties, required, enum,
// oneOf, items, minimum/maximum, minItems/maxItems. Properties marshal in
// sorted key order, so serialised output is deterministic.
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	OneOf      []EnumBranch       `json:"oneOf,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Minimum    *float64           `json:"minimum,omitempty"`
	Maximum    *float64           `json:"maximum,omitempty"`
	MinItems   *int               `json:"minItems,omitempty"`
	MaxItems   *int               `json:"maxItems,omitempty"`
}

// EnumBranch is a single oneOf branch pairing a stored id with its display
// title. Labelled enum options derive to these branches instead of a plain
// enum so the titles survive into the schema.
type EnumBranch struct {
	Const string `json:"const"`
	Title string `json:"title,omitempty"`
}
