package formspec

// FieldOption customises a field during construction.
type FieldOption func(*Field)

// WithLabel sets the display label.
func WithLabel(label string) FieldOption {
	return func(f *Field) { f.Label = label }
}

// WithPlaceholder sets the input placeholder.
func WithPlaceholder(placeholder string) FieldOption {
	return func(f *Field) { f.Placeholder = placeholder }
}

// WithRequired sets the tri-state required flag explicitly.
func WithRequired(required bool) FieldOption {
	return func(f *Field) { f.Required = &required }
}

// Optional marks the field as explicitly not required.
func Optional() FieldOption {
	return WithRequired(false)
}

// WithMinimum sets the lower numeric bound.
func WithMinimum(value float64) FieldOption {
	return func(f *Field) { f.Minimum = &value }
}

// WithMaximum sets the upper numeric bound.
func WithMaximum(value float64) FieldOption {
	return func(f *Field) { f.Maximum = &value }
}

// WithMinItems sets the minimum array length.
func WithMinItems(value int) FieldOption {
	return func(f *Field) { f.MinItems = &value }
}

// WithMaxItems sets the maximum array length.
func WithMaxItems(value int) FieldOption {
	return func(f *Field) { f.MaxItems = &value }
}

func newField(name string, kind FieldType, opts ...FieldOption) *Field {
	field := &Field{Name: name, Type: kind}
	for _, opt := range opts {
		opt(field)
	}
	return field
}

// Text declares a text field.
func Text(name string, opts ...FieldOption) *Field {
	return newField(name, FieldTypeText, opts...)
}

// Number declares a numeric field.
func Number(name string, opts ...FieldOption) *Field {
	return newField(name, FieldTypeNumber, opts...)
}

// Bool declares a boolean field.
func Bool(name string, opts ...FieldOption) *Field {
	return newField(name, FieldTypeBoolean, opts...)
}

// Enum declares a static enum field from bare string options.
func Enum(name string, options []string, opts ...FieldOption) *Field {
	field := newField(name, FieldTypeEnum, opts...)
	field.Options = make([]EnumOption, 0, len(options))
	for _, id := range options {
		field.Options = append(field.Options, EnumOption{ID: id})
	}
	return field
}

// EnumPairs declares a static enum field from {id, label} options.
func EnumPairs(name string, options []EnumOption, opts ...FieldOption) *Field {
	field := newField(name, FieldTypeEnum, opts...)
	field.Options = append([]EnumOption(nil), options...)
	return field
}

// DynamicEnum declares an enum field whose options are resolved at runtime
// from the named source.
func DynamicEnum(name, source string, opts ...FieldOption) *Field {
	field := newField(name, FieldTypeDynamicEnum, opts...)
	field.OptionsSource = source
	return field
}

// DynamicSchema declares a field whose concrete shape is supplied externally
// at runtime, addressed by ref.
func DynamicSchema(name, ref string, opts ...FieldOption) *Field {
	field := newField(name, FieldTypeDynamicSchema, opts...)
	field.SchemaRef = ref
	return field
}

// Array declares an array field owning the item sub-tree.
func Array(name string, items []Element, opts ...FieldOption) *Field {
	field := newField(name, FieldTypeArray, opts...)
	field.Items = items
	return field
}

// Object declares an object field owning the property sub-tree.
func Object(name string, properties []Element, opts ...FieldOption) *Field {
	field := newField(name, FieldTypeObject, opts...)
	field.Properties = properties
	return field
}

// NewGroup wraps elements in a presentation group.
func NewGroup(label string, elements ...Element) *Group {
	return &Group{Label: label, Elements: elements}
}

// When wraps elements in a conditional shown while field equals value.
func When(field string, value any, elements ...Element) *Conditional {
	return &Conditional{Field: field, Value: value, Elements: elements}
}
