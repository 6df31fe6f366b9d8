package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server on stdio exposing the scorer and verifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return mcpserver.Serve(mcpserver.New(version, certificate.NewVerifier(st)))
	},
}
