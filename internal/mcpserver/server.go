// Package mcpserver exposes the scorer and verifier as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
)

// New creates the MCP server with every tool registered.
func New(version string, v *certificate.Verifier) *server.MCPServer {
	s := server.NewMCPServer(
		"aiq",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	evaluate := NewEvaluateTool()
	s.AddTool(evaluate.Definition(), evaluate.Handle)

	aggregate := NewAggregateTool()
	s.AddTool(aggregate.Definition(), aggregate.Handle)

	verify := NewVerifyTool(v)
	s.AddTool(verify.Definition(), verify.Handle)

	return s
}

// Serve runs s on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = `AIQ scores free-text answers with fixed rules.
Use aiq_evaluate on each answer, average the categories yourself when combining
several answers, then call aiq_aggregate for the composite score and level.
Use aiq_verify to check a certificate code issued by a completed assessment.`
