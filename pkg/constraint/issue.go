package constraint

// Issue codes. These are stable identifiers tooling can match on.
const (
	CodeUnsupportedFieldType    = "UNSUPPORTED_FIELD_TYPE"
	CodeUnsupportedLayout       = "UNSUPPORTED_LAYOUT"
	CodeUnsupportedFieldOption  = "UNSUPPORTED_FIELD_OPTION"
	CodeExceededNestingDepth    = "EXCEEDED_NESTING_DEPTH"
	CodeDuplicateFieldName      = "DUPLICATE_FIELD_NAME"
	CodeUnknownConditionalField = "UNKNOWN_CONDITIONAL_FIELD"
)

// Issue categories.
const (
	CategoryFields    = "fields"
	CategoryLayouts   = "layouts"
	CategoryOptions   = "options"
	CategoryNesting   = "nesting"
	CategoryStructure = "structure"
)

// Reported issue severities. A warn-graded constraint reports "warning".
const (
	IssueError   = "error"
	IssueWarning = "warning"
)

// Issue is a single violation found in a form spec. Path is the diagnostic
// path of the offending node, including group and conditional ancestors.
type Issue struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Category  string `json:"category"`
	Path      string `json:"path"`
	FieldName string `json:"fieldName,omitempty"`
	FieldType string `json:"fieldType,omitempty"`
}

// Result collects every issue of one validation pass. Valid is false only
// when at least one issue carries error severity; warnings alone leave the
// spec valid.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}
