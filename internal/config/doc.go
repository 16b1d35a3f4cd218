// Package config defines the format-agnostic generator configuration model,
// its built-in defaults and validation rules, and the Loader interface that
// format-specific packages (such as the HCL loader) implement.
//
// The `config.Generator` value is the single source of truth for the scanner,
// the layout planner, the builder and the serializer. Nothing downstream reads
// package-level state; the category list in particular is always passed in
// through Generator.Layout.
package config
