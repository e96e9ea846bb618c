package mcp

import (
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Merge runs merges.
	Merge driving.MergeService

	// History reads recorded merges. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Merge == nil {
		return ErrMissingMergeService
	}
	return nil
}
