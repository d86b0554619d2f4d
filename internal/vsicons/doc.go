// Package vsicons models the VS Code icon-theme manifest bundled inside the
// upstream icon package (the "source" side of the conversion). It provides the
// manifest types, a JSON parser, and JSON Schema validation with path-addressed
// diagnostics.
package vsicons
