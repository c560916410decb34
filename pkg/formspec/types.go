package formspec

// FieldType enumerates the kinds of input a Field can declare.
type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeNumber        FieldType = "number"
	FieldTypeBoolean       FieldType = "boolean"
	FieldTypeEnum          FieldType = "enum"
	FieldTypeDynamicEnum   FieldType = "dynamic-enum"
	FieldTypeDynamicSchema FieldType = "dynamic-schema"
	FieldTypeArray         FieldType = "array"
	FieldTypeObject        FieldType = "object"
)

// Element is the closed union of form tree nodes. The only implementations
// are Field, Group, and Conditional; consumers switch exhaustively and treat
// any other implementation as a programming error. Each parent exclusively
// owns its children, so trees never contain back-references or cycles.
type Element interface {
	isElement()
}

// EnumOption is a single choice of a static enum field. ID is the canonical
// stored value, Label is display-only. A bare string option is modelled with
// an empty Label.
type EnumOption struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Field declares a single input. Required is tri-state: nil means the author
// left it unset and the field counts as required; an explicit false makes it
// optional. Items and Properties carry the recursive sub-trees of array and
// object fields.
type Field struct {
	Name          string
	Type          FieldType
	Label         string
	Placeholder   string
	Required      *bool
	Minimum       *float64
	Maximum       *float64
	MinItems      *int
	MaxItems      *int
	Options       []EnumOption
	OptionsSource string
	SchemaRef     string
	Items         []Element
	Properties    []Element
}

// Group wraps an ordered sub-tree for presentation. Groups never affect the
// derived data shape, and grouping is driven by node presence: a group with
// an empty label is still a group.
type Group struct {
	Label    string
	Elements []Element
}

// Conditional gates the visibility of its sub-tree on another field's value.
// Every descendant becomes schema-optional regardless of its own Required
// setting. A falsy trigger value (false, 0, "") is still a valid trigger.
type Conditional struct {
	Field    string
	Value    any
	Elements []Element
}

// FormSpec is the root of an authored element tree. It is constructed once
// and read by any number of derivation or validation passes; none of them
// mutate it.
type FormSpec struct {
	Title    string
	Elements []Element
}

func (*Field) isElement()       {}
func (*Group) isElement()       {}
func (*Conditional) isElement() {}

// EffectiveRequired reports whether the field counts as required on its own:
// true unless the author explicitly set Required to false. Conditional
// ancestors override this during schema derivation.
func (f *Field) EffectiveRequired() bool {
	return f.Required == nil || *f.Required
}
