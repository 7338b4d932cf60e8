// Package results provides the in-memory model of an orienteering event.
//
// An Event owns an ordered list of Courses and each Course owns an ordered
// list of PersonResults, both in document order. Values are built once by
// the loader (internal/iofxml) and never mutated afterwards.
//
// This package imports nothing internal. Every other internal package
// builds on it, including the shared error taxonomy in errors.go.
package results
