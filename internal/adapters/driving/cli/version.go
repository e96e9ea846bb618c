package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlmerge/internal/adapters/driving/mcp"
)

// buildInfo is the machine-readable form of the version command.
type buildInfo struct {
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	MCPVersion string `json:"mcp_server_version"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:    version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		MCPVersion: mcp.Version,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the htmlmerge version along with the Go toolchain, platform and
MCP server version it was built with.`,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().Bool("json", false, "output build information as JSON")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := currentBuild()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return outputJSON(cmd, info)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "htmlmerge version %s (%s %s, mcp %s)\n",
		info.Version, info.GoVersion, info.Platform, info.MCPVersion)
	return nil
}
