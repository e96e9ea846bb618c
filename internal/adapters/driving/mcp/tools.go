package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/htmlmerge/internal/core/domain"
	"github.com/custodia-labs/htmlmerge/internal/core/ports/driving"
)

// MergeInput is the input schema for the merge_html tool.
type MergeInput struct {
	Files     []string `json:"files,omitempty" jsonschema:"HTML files to merge, in order"`
	Directory string   `json:"directory,omitempty" jsonschema:"directory whose files are merged in name order"`
	Output    string   `json:"output,omitempty" jsonschema:"output file (default merged.html)"`
	Pattern   string   `json:"pattern,omitempty" jsonschema:"file name glob applied in directory mode"`
	Separator *string  `json:"separator,omitempty" jsonschema:"text placed between fragments (default newline)"`
	Clean     bool     `json:"clean,omitempty" jsonschema:"delete the source files after a successful merge"`
}

// MergeOutput is the output schema for the merge_html tool.
type MergeOutput struct {
	ID            string   `json:"id"`
	Output        string   `json:"output"`
	Sources       []string `json:"sources"`
	BytesWritten  int      `json:"bytes_written"`
	Deleted       []string `json:"deleted,omitempty"`
	Skipped       []string `json:"skipped,omitempty"`
	CleanFailures []string `json:"clean_failures,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "merge_html",
		Description: "Merge the bodies of several HTML files into one HTML document",
	}, s.handleMerge)
}

// handleMerge handles the merge_html tool invocation.
func (s *Server) handleMerge(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MergeInput,
) (*mcp.CallToolResult, MergeOutput, error) {
	cfg := driving.MergeConfig{
		Files:     input.Files,
		Directory: input.Directory,
		Output:    input.Output,
		Pattern:   input.Pattern,
		Separator: input.Separator,
	}

	result, err := s.ports.Merge.Run(ctx, cfg, domain.MergeOptions{Clean: input.Clean})
	if err != nil {
		return nil, MergeOutput{}, err
	}

	output := MergeOutput{
		ID:           result.ID,
		Output:       result.Output,
		Sources:      result.Sources,
		BytesWritten: result.BytesWritten,
		Deleted:      result.Deleted,
		Skipped:      result.Skipped,
	}
	for _, f := range result.CleanFailures {
		output.CleanFailures = append(output.CleanFailures, f.Path+": "+f.Err.Error())
	}

	return nil, output, nil
}
