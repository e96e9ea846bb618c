// Package domain defines the core entities for htmlmerge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MergeRequest: The resolved, immutable description of one merge
//   - Fragment: The inner content extracted from one source file
//   - MergedDocument: The wrapped concatenation of all fragments
//   - MergeResult: What a merge wrote and deleted
//   - MergeRecord: A persisted history entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
