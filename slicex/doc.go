// Package slicex provides generic slice helpers for deduplication,
// filtering, reversal and splitting. Dedup, RetainIf and ReverseInPlace
// modify the caller's slice; the other helpers return new slices.
package slicex
