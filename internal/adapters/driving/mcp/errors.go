// Package mcp provides an MCP (Model Context Protocol) server adapter for htmlmerge.
// It lets AI assistants merge HTML files and inspect recent merges.
package mcp

import "errors"

// ErrMissingMergeService is returned when the merge service is not provided.
var ErrMissingMergeService = errors.New("mcp: merge service is required")
