// Package schemagen derives the two artifacts of an authored form tree: the
// validation schema describing the data shape, and the UI schema describing
// layout and conditional visibility. Both derivations are pure functions
// over an immutable tree and may run concurrently without coordination;
// running either twice on the same tree yields structurally identical
// output. The only failure mode is unrepresentable input, such as a static
// enum declared with no options.
package schemagen
