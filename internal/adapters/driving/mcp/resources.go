package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for htmlmerge resources.
	uriScheme = "htmlmerge://"

	historyListLimit = 20
)

// mergeInfo is the JSON form of a recorded merge.
type mergeInfo struct {
	ID           string    `json:"id"`
	Output       string    `json:"output"`
	Sources      []string  `json:"sources"`
	BytesWritten int       `json:"bytes_written"`
	Cleaned      bool      `json:"cleaned"`
	Deleted      int       `json:"deleted"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

func toMergeInfo(r *domain.MergeRecord) mergeInfo {
	return mergeInfo{
		ID:           r.ID,
		Output:       r.Output,
		Sources:      r.Sources,
		BytesWritten: r.BytesWritten,
		Cleaned:      r.Cleaned,
		Deleted:      r.DeletedCount,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent merges, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{mergeId}",
		Name:        "merge",
		Description: "A single recorded merge",
		MIMEType:    "application/json",
	}, s.handleMergeResource)
}

// handleHistoryResource returns the most recent merges.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	records, err := s.ports.History.List(ctx, historyListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]mergeInfo, len(records))
	for i := range records {
		infos[i] = toMergeInfo(&records[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleMergeResource returns one recorded merge.
func (s *Server) handleMergeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractMergeID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.History.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting merge: %w", err)
	}

	data, err := json.MarshalIndent(toMergeInfo(record), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling merge: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractMergeID extracts the merge ID from a URI like htmlmerge://history/{mergeId}.
func extractMergeID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
