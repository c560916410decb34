// Package constraint checks an authored form tree against a capability
// configuration: which field kinds, layout constructs, and field options an
// environment supports, and how deep array/object nesting may go. Every
// finding is returned as data with a stable code, a severity, and a
// diagnostic path, so callers can batch-report all issues from one pass;
// nothing here panics on author input. The package also hosts the
// lightweight structural pass that flags duplicate field names and dangling
// conditional references.
package constraint
