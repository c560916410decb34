package schemagen

import (
	"fmt"

	"github.com/goliatone/go-formspec/pkg/formspec"
)

// Generate derives the validation schema from an authored tree. The tree is
// consumed read-only; numeric bounds are copied rather than shared so the
// result holds no references into the input.
func Generate(spec *formspec.FormSpec) (*Schema, error) {
	if spec == nil {
		return nil, fmt.Errorf("schemagen: spec is nil")
	}
	return subtreeSchema(spec.Elements, false)
}

// Derive produces both artifacts of a spec in one call.
func Derive(spec *formspec.FormSpec) (*Schema, *Layout, error) {
	schema, err := Generate(spec)
	if err != nil {
		return nil, nil, err
	}
	ui, err := GenerateUI(spec)
	if err != nil {
		return nil, nil, err
	}
	return schema, ui, nil
}

// subtreeSchema derives the object schema of one nesting scope: the tree
// root, an object field's properties, or an array field's items.
func subtreeSchema(elements []formspec.Element, optional bool) (*Schema, error) {
	out := &Schema{Type: "object", Properties: make(map[string]*Schema)}
	if err := collectProperties(out, elements, optional); err != nil {
		return nil, err
	}
	if len(out.Properties) == 0 {
		out.Properties = nil
	}
	return out, nil
}

// collectProperties walks one object scope. Groups splice their children into
// the enclosing scope; conditionals do the same but flip optional, and once
// optional is set nothing below joins a required set at any depth, regardless
// of each field's own flag.
func collectProperties(target *Schema, elements []formspec.Element, optional bool) error {
	for _, element := range elements {
		switch node := element.(type) {
		case *formspec.Field:
			property, err := fieldSchema(node, optional)
			if err != nil {
				return err
			}
			target.Properties[node.Name] = property
			if !optional && node.EffectiveRequired() {
				target.Required = append(target.Required, node.Name)
			}
		case *formspec.Group:
			if err := collectProperties(target, node.Elements, optional); err != nil {
				return err
			}
		case *formspec.Conditional:
			if err := collectProperties(target, node.Elements, true); err != nil {
				return err
			}
		default:
			return fmt.Errorf("schemagen: unhandled element %T", element)
		}
	}
	return nil
}

func fieldSchema(field *formspec.Field, optional bool) (*Schema, error) {
	switch field.Type {
	case formspec.FieldTypeText:
		return &Schema{Type: "string"}, nil
	case formspec.FieldTypeNumber:
		return &Schema{
			Type:    "number",
			Minimum: cloneFloat(field.Minimum),
			Maximum: cloneFloat(field.Maximum),
		}, nil
	case formspec.FieldTypeBoolean:
		return &Schema{Type: "boolean"}, nil
	case formspec.FieldTypeEnum:
		return enumSchema(field)
	case formspec.FieldTypeDynamicEnum:
		// Option values are resolved at runtime; the stored shape is a string.
		return &Schema{Type: "string"}, nil
	case formspec.FieldTypeDynamicSchema:
		// The concrete shape is supplied externally at runtime.
		return &Schema{Type: "object"}, nil
	case formspec.FieldTypeArray:
		items, err := subtreeSchema(field.Items, optional)
		if err != nil {
			return nil, err
		}
		return &Schema{
			Type:     "array",
			Items:    items,
			MinItems: cloneInt(field.MinItems),
			MaxItems: cloneInt(field.MaxItems),
		}, nil
	case formspec.FieldTypeObject:
		return subtreeSchema(field.Properties, optional)
	default:
		return nil, fmt.Errorf("schemagen: field %q has unhandled type %q", field.Name, field.Type)
	}
}

func enumSchema(field *formspec.Field) (*Schema, error) {
	if len(field.Options) == 0 {
		return nil, fmt.Errorf("schemagen: enum field %q has no options", field.Name)
	}

	labelled := false
	for _, option := range field.Options {
		if option.Label != "" {
			labelled = true
			break
		}
	}

	if !labelled {
		values := make([]string, 0, len(field.Options))
		for _, option := range field.Options {
			values = append(values, option.ID)
		}
		return &Schema{Type: "string", Enum: values}, nil
	}

	// Any labelled option promotes the whole set to oneOf branches; a plain
	// enum would drop the titles.
	branches := make([]EnumBranch, 0, len(field.Options))
	for _, option := range field.Options {
		branches = append(branches, EnumBranch{Const: option.ID, Title: option.Label})
	}
	return &Schema{Type: "string", OneOf: branches}, nil
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
