package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/vectorizer-go/internal/server"
)

func mcpCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the API as MCP tools over stdin/stdout",
		Long: `mcp runs a Model Context Protocol server on stdin/stdout so an MCP
client can vectorize images. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, log, err := g.setup()
			if err != nil {
				return err
			}
			log.Info().Msg("MCP server listening on stdio")
			return server.New(client, log).Run(cmd.Context(), os.Stdin, cmd.OutOrStdout())
		},
	}
}
