package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
)

// EvaluateTool handles the aiq_evaluate MCP tool.
type EvaluateTool struct{}

// NewEvaluateTool creates an EvaluateTool.
func NewEvaluateTool() *EvaluateTool {
	return &EvaluateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *EvaluateTool) Definition() mcp.Tool {
	return mcp.NewTool("aiq_evaluate",
		mcp.WithDescription(
			"Score one free-text answer on clarity, depth, efficiency and creativity. "+
				"Each category is an integer from 0 to 25.",
		),
		mcp.WithString("response",
			mcp.Required(),
			mcp.Description("The answer text to score. May be empty."),
		),
		mcp.WithNumber("ordinal",
			mcp.Description("1-based position of the question being answered. Defaults to 1."),
			mcp.Min(1),
		),
	)
}

// Handle processes the aiq_evaluate tool call.
func (t *EvaluateTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	ordinal := req.GetInt("ordinal", 1)

	b, err := scorer.EvaluateValue(args["response"], ordinal)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultJSON(b)
}

// AggregateTool handles the aiq_aggregate MCP tool.
type AggregateTool struct{}

// NewAggregateTool creates an AggregateTool.
func NewAggregateTool() *AggregateTool {
	return &AggregateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *AggregateTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Combine four category scores into the 0-100 composite score and its level " +
				"(AI Novice, AI Beginner, AI Competent, AI Proficient, AI Expert).",
		),
	}
	for _, c := range scorer.Categories() {
		opts = append(opts, mcp.WithNumber(string(c),
			mcp.Required(),
			mcp.Description(c.DisplayName()+" score (0-25)."),
		))
	}
	return mcp.NewTool("aiq_aggregate", opts...)
}

// Handle processes the aiq_aggregate tool call.
func (t *AggregateTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b scorer.Breakdown
	for _, c := range scorer.Categories() {
		v, err := req.RequireInt(string(c))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		b.Set(c, v)
	}
	return mcp.NewToolResultJSON(scorer.Aggregate(b))
}

// VerifyTool handles the aiq_verify MCP tool.
type VerifyTool struct {
	verifier *certificate.Verifier
}

// NewVerifyTool creates a VerifyTool reading from v.
func NewVerifyTool(v *certificate.Verifier) *VerifyTool {
	return &VerifyTool{verifier: v}
}

// Definition returns the MCP tool definition for registration.
func (t *VerifyTool) Definition() mcp.Tool {
	return mcp.NewTool("aiq_verify",
		mcp.WithDescription("Check a certificate code (AIQ-XXXXXXXX) against the stored result."),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The certificate code. Surrounding spaces and case are ignored."),
		),
	)
}

// Handle processes the aiq_verify tool call.
func (t *VerifyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := t.verifier.Verify(ctx, certificate.Normalize(code))
	if err != nil {
		return mcp.NewToolResultErrorFromErr("verification failed", err), nil
	}
	return mcp.NewToolResultJSON(out)
}
