package constraint

import (
	"fmt"

	"github.com/goliatone/go-formspec/pkg/formspec"
)

// Validate walks the tree depth-first checking every node against cfg. The
// tree is read-only input and every violation comes back as data. Groups and
// conditionals are transparent to nesting depth; only array and object
// boundaries count.
func Validate(spec *formspec.FormSpec, cfg Config) Result {
	v := &validator{cfg: cfg}
	if spec != nil {
		v.walk(spec.Elements, "", 0)
	}
	return Result{Valid: !v.failed, Issues: v.issues}
}

type validator struct {
	cfg    Config
	issues []Issue
	failed bool
}

func (v *validator) report(issue Issue) {
	if issue.Severity == IssueError {
		v.failed = true
	}
	v.issues = append(v.issues, issue)
}

// reportGraded maps a configured severity onto an issue; off reports nothing.
func (v *validator) reportGraded(severity Severity, issue Issue) {
	switch severity {
	case SeverityError:
		issue.Severity = IssueError
	case SeverityWarn:
		issue.Severity = IssueWarning
	default:
		return
	}
	v.report(issue)
}

func (v *validator) walk(elements []formspec.Element, prefix string, depth int) {
	for _, element := range elements {
		switch node := element.(type) {
		case *formspec.Field:
			v.checkField(node, prefix, depth)
		case *formspec.Group:
			path := formspec.JoinPath(prefix, formspec.GroupSegment(node.Label))
			v.reportGraded(severityFor(v.cfg.Layouts, LayoutGroup), Issue{
				Code:     CodeUnsupportedLayout,
				Message:  `layout construct "group" is not allowed`,
				Category: CategoryLayouts,
				Path:     path,
			})
			v.walk(node.Elements, path, depth)
		case *formspec.Conditional:
			path := formspec.JoinPath(prefix, formspec.ConditionalSegment(node.Field, node.Value))
			v.reportGraded(severityFor(v.cfg.Layouts, LayoutConditional), Issue{
				Code:     CodeUnsupportedLayout,
				Message:  `layout construct "conditional" is not allowed`,
				Category: CategoryLayouts,
				Path:     path,
			})
			v.walk(node.Elements, path, depth)
		default:
			// The element union is sealed; reaching this is a bug, not input.
			panic(fmt.Sprintf("constraint: unhandled element %T", element))
		}
	}
}

func (v *validator) checkField(field *formspec.Field, prefix string, depth int) {
	path := formspec.JoinPath(prefix, field.Name)

	v.reportGraded(severityFor(v.cfg.Fields, field.Type), Issue{
		Code:      CodeUnsupportedFieldType,
		Message:   fmt.Sprintf("field type %q is not allowed", field.Type),
		Category:  CategoryFields,
		Path:      path,
		FieldName: field.Name,
		FieldType: string(field.Type),
	})

	v.checkOptions(field, path)

	// Depth and kind checks are orthogonal: a depth violation fires even when
	// the array/object kind itself is disallowed.
	switch field.Type {
	case formspec.FieldTypeArray:
		v.checkDepth(field, path, depth+1)
		v.walk(field.Items, formspec.JoinPath(prefix, formspec.ItemsSegment(field.Name)), depth+1)
	case formspec.FieldTypeObject:
		v.checkDepth(field, path, depth+1)
		v.walk(field.Properties, path, depth+1)
	}
}

func (v *validator) checkDepth(field *formspec.Field, path string, depth int) {
	if v.cfg.MaxNestingDepth > 0 && depth > v.cfg.MaxNestingDepth {
		v.report(Issue{
			Code:      CodeExceededNestingDepth,
			Message:   fmt.Sprintf("field %q exceeds the maximum nesting depth of %d", field.Name, v.cfg.MaxNestingDepth),
			Severity:  IssueError,
			Category:  CategoryNesting,
			Path:      path,
			FieldName: field.Name,
			FieldType: string(field.Type),
		})
	}
}

// checkOptions reports only options the author actually set; absent options
// are never checked.
func (v *validator) checkOptions(field *formspec.Field, path string) {
	present := func(option string) {
		v.reportGraded(severityFor(v.cfg.Options, option), Issue{
			Code:      CodeUnsupportedFieldOption,
			Message:   fmt.Sprintf("field option %q is not allowed", option),
			Category:  CategoryOptions,
			Path:      path,
			FieldName: field.Name,
			FieldType: string(field.Type),
		})
	}

	if field.Label != "" {
		present(OptionLabel)
	}
	if field.Placeholder != "" {
		present(OptionPlaceholder)
	}
	if field.Required != nil {
		present(OptionRequired)
	}
	if field.Minimum != nil {
		present(OptionMin)
	}
	if field.Maximum != nil {
		present(OptionMax)
	}
	if field.MinItems != nil {
		present(OptionMinItems)
	}
	if field.MaxItems != nil {
		present(OptionMaxItems)
	}
}
