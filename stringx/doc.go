// Package stringx holds small string helpers: comma-list splitting,
// whole-word containment and SQL literal escaping.
package stringx
