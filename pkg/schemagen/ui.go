package schemagen

import (
	"fmt"

	"github.com/goliatone/go-formspec/pkg/formspec"
)

// GenerateUI derives the UI schema: a VerticalLayout over controls and group
// layouts, with conditional sub-trees spliced into their declared position
// and their show-rules attached to every node derived inside them.
func GenerateUI(spec *formspec.FormSpec) (*Layout, error) {
	if spec == nil {
		return nil, fmt.Errorf("schemagen: spec is nil")
	}
	elements, err := uiElements(spec, spec.Elements, nil)
	if err != nil {
		return nil, err
	}
	return &Layout{Type: TypeVerticalLayout, Elements: elements}, nil
}

// uiElements derives the nodes of one layout level. condition is the active
// visibility condition accumulated from conditional ancestors; nil when the
// level is unconditional.
func uiElements(spec *formspec.FormSpec, elements []formspec.Element, condition Condition) ([]UIElement, error) {
	var out []UIElement
	for _, element := range elements {
		switch node := element.(type) {
		case *formspec.Field:
			out = append(out, &Control{
				Scope: controlScope(spec, node.Name),
				Label: node.Label,
				Rule:  ruleFor(condition),
			})
		case *formspec.Group:
			children, err := uiElements(spec, node.Elements, condition)
			if err != nil {
				return nil, err
			}
			out = append(out, &Layout{
				Type:     TypeGroup,
				Label:    node.Label,
				Elements: children,
				Rule:     ruleFor(condition),
			})
		case *formspec.Conditional:
			trigger := SchemaCondition{
				Scope:  controlScope(spec, node.Field),
				Schema: ConstValue{Const: node.Value},
			}
			children, err := uiElements(spec, node.Elements, conjoin(condition, trigger))
			if err != nil {
				return nil, err
			}
			// The conditional contributes no node of its own.
			out = append(out, children...)
		default:
			return nil, fmt.Errorf("schemagen: unhandled element %T", element)
		}
	}
	return out, nil
}

func controlScope(spec *formspec.FormSpec, name string) string {
	if pointer, ok := formspec.FieldPointer(spec, name); ok {
		return pointer
	}
	// Dangling references are a structural validation finding, not a
	// derivation failure; address the top-level shape so the output stays
	// representable.
	return "#/properties/" + name
}

func ruleFor(condition Condition) *Rule {
	if condition == nil {
		return nil
	}
	return &Rule{Effect: EffectShow, Condition: condition}
}

// conjoin folds a new trigger into the active condition. Nested conditionals
// flatten into one AND combinator: the outer condition is never overwritten
// and no node ever carries two rules.
func conjoin(active Condition, trigger Condition) Condition {
	if active == nil {
		return trigger
	}
	if and, ok := active.(AndCondition); ok {
		conditions := make([]Condition, 0, len(and.Conditions)+1)
		conditions = append(conditions, and.Conditions...)
		conditions = append(conditions, trigger)
		return AndCondition{Conditions: conditions}
	}
	return AndCondition{Conditions: []Condition{active, trigger}}
}
