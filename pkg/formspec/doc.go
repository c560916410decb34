// Package formspec defines the element tree authors assemble to describe a
// form: fields, presentation groups, and conditional-visibility wrappers.
// Trees are built once and treated as immutable afterwards; the derivation
// engine in pkg/schemagen and the constraint engine in pkg/constraint both
// consume them read-only. Construction never fails: malformed trees
// (duplicate names, dangling conditional references) are reported by the
// structural pass in pkg/constraint instead, so tooling can inspect an
// invalid tree before rejecting it.
package formspec
