// Package convert turns a VS Code icon-theme manifest into a Zed icon-theme
// family. The conversion is a pure in-memory transformation: one dark theme is
// always produced, and a light theme is produced when the source carries a
// light block, with unresolved or missing light fields falling back to the
// already-resolved dark values.
package convert
