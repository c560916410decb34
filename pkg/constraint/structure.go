package constraint

import (
	"fmt"

	"github.com/goliatone/go-formspec/pkg/formspec"
)

// Structure runs the lightweight structural pass over a built tree: duplicate
// field names within a nesting scope and conditionals referencing fields
// declared nowhere. Findings are tolerated rather than fatal, so tooling can
// inspect an invalid tree before rejecting it. Array and object boundaries
// open a fresh naming scope; groups and conditionals share their parent's.
func Structure(spec *formspec.FormSpec) []Issue {
	if spec == nil {
		return nil
	}
	c := &structureChecker{declared: make(map[string]struct{})}
	c.collect(spec.Elements)
	c.checkScope(spec.Elements, "")
	return c.issues
}

type structureChecker struct {
	declared map[string]struct{}
	issues   []Issue
}

// collect records every declared field name so conditional references can
// resolve to a field anywhere in the tree.
func (c *structureChecker) collect(elements []formspec.Element) {
	for _, element := range elements {
		switch node := element.(type) {
		case *formspec.Field:
			c.declared[node.Name] = struct{}{}
			c.collect(node.Items)
			c.collect(node.Properties)
		case *formspec.Group:
			c.collect(node.Elements)
		case *formspec.Conditional:
			c.collect(node.Elements)
		}
	}
}

func (c *structureChecker) checkScope(elements []formspec.Element, prefix string) {
	c.checkElements(elements, prefix, make(map[string]struct{}))
}

func (c *structureChecker) checkElements(elements []formspec.Element, prefix string, seen map[string]struct{}) {
	for _, element := range elements {
		switch node := element.(type) {
		case *formspec.Field:
			path := formspec.JoinPath(prefix, node.Name)
			if _, dup := seen[node.Name]; dup {
				c.issues = append(c.issues, Issue{
					Code:      CodeDuplicateFieldName,
					Message:   fmt.Sprintf("field name %q is declared more than once in its scope", node.Name),
					Severity:  IssueError,
					Category:  CategoryStructure,
					Path:      path,
					FieldName: node.Name,
					FieldType: string(node.Type),
				})
			}
			seen[node.Name] = struct{}{}
			c.checkScope(node.Items, formspec.JoinPath(prefix, formspec.ItemsSegment(node.Name)))
			c.checkScope(node.Properties, path)
		case *formspec.Group:
			c.checkElements(node.Elements, formspec.JoinPath(prefix, formspec.GroupSegment(node.Label)), seen)
		case *formspec.Conditional:
			path := formspec.JoinPath(prefix, formspec.ConditionalSegment(node.Field, node.Value))
			if _, ok := c.declared[node.Field]; !ok {
				c.issues = append(c.issues, Issue{
					Code:      CodeUnknownConditionalField,
					Message:   fmt.Sprintf("conditional references undeclared field %q", node.Field),
					Severity:  IssueError,
					Category:  CategoryStructure,
					Path:      path,
					FieldName: node.Field,
				})
			}
			c.checkElements(node.Elements, path, seen)
		}
	}
}
