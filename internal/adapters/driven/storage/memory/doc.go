// Package memory provides in-memory implementations of driven ports.
// They back tests and runs where nothing should be persisted.
package memory
