package formspec

import "fmt"

// FieldPointer resolves a field name to its schema pointer: the slash
// delimited location of the field inside the derived data shape, e.g.
// "#/properties/address/properties/city". Groups and conditionals carry no
// data shape and are skipped; array and object fields contribute items and
// properties segments. Resolution searches scope by scope: every field of
// the current scope is checked before any item or property sub-tree is
// descended into, so a name declared at the root is never shadowed by the
// same name inside an earlier nested scope. Within one scope the first
// declaration in document order wins; same-scope duplicates are flagged by
// the structural pass, not here.
func FieldPointer(spec *FormSpec, name string) (string, bool) {
	if spec == nil {
		return "", false
	}
	return fieldPointer(spec.Elements, "#", name)
}

func fieldPointer(elements []Element, prefix, name string) (string, bool) {
	if pointer, ok := scopeMatch(elements, prefix, name); ok {
		return pointer, true
	}
	return nestedMatch(elements, prefix, name)
}

// scopeMatch checks only the fields of the current nesting scope, looking
// through groups and conditionals but never into item or property sub-trees.
func scopeMatch(elements []Element, prefix, name string) (string, bool) {
	for _, element := range elements {
		switch node := element.(type) {
		case *Field:
			if node.Name == name {
				return prefix + "/properties/" + node.Name, true
			}
		case *Group:
			if found, ok := scopeMatch(node.Elements, prefix, name); ok {
				return found, true
			}
		case *Conditional:
			if found, ok := scopeMatch(node.Elements, prefix, name); ok {
				return found, true
			}
		}
	}
	return "", false
}

// nestedMatch descends into the array and object sub-trees of the current
// scope once scopeMatch has come up empty.
func nestedMatch(elements []Element, prefix, name string) (string, bool) {
	for _, element := range elements {
		switch node := element.(type) {
		case *Field:
			pointer := prefix + "/properties/" + node.Name
			switch node.Type {
			case FieldTypeArray:
				if found, ok := fieldPointer(node.Items, pointer+"/items", name); ok {
					return found, true
				}
			case FieldTypeObject:
				if found, ok := fieldPointer(node.Properties, pointer, name); ok {
					return found, true
				}
			}
		case *Group:
			if found, ok := nestedMatch(node.Elements, prefix, name); ok {
				return found, true
			}
		case *Conditional:
			if found, ok := nestedMatch(node.Elements, prefix, name); ok {
				return found, true
			}
		}
	}
	return "", false
}

// JoinPath appends a diagnostic path segment to a prefix.
func JoinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "/" + segment
}

// GroupSegment renders the diagnostic path segment of a group.
func GroupSegment(label string) string {
	return "[group:" + label + "]"
}

// ConditionalSegment renders the diagnostic path segment of a conditional.
func ConditionalSegment(field string, value any) string {
	return fmt.Sprintf("when(%s=%v)", field, value)
}

// ItemsSegment renders the diagnostic path segment used when descending into
// an array field's item sub-tree.
func ItemsSegment(name string) string {
	return name + "[]"
}
