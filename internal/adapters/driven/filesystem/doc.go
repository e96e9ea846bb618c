// Package filesystem provides local-disk implementations of driven ports.
//
// Adapters:
//   - Writer: Atomic document writer (temp file + rename)
package filesystem
