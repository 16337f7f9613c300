// Package templating substitutes {{key}} placeholders in text. It uses
// valyala/fasttemplate for marker scanning with configurable delimiters
// (default "{{" and "}}").
//
// ReplacePlaceholder and ReplaceMultiplePlaceholders are pure string
// functions. Every marker is resolved in a single pass over the input, so
// inserted values are never rescanned and unknown markers are kept as-is.
//
// The Engine type adds file handling on top: it loads values from JSON,
// YAML or workspace status files (see LoadValues), applies NAME=VALUE
// overrides, and writes the expanded template to a file or stdout.
package templating
