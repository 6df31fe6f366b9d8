package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("nil result")
	}
	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func TestEvaluateTool(t *testing.T) {
	tool := NewEvaluateTool()
	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"response": "First, I will analyze the specific goal.\n- Then I will evaluate alternatives directly.",
		"ordinal":  float64(3),
	}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var got scorer.Breakdown
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := scorer.Breakdown{Clarity: 22, Depth: 15, Efficiency: 12, Creativity: 5}
	if got != want {
		t.Errorf("breakdown = %+v, want %+v", got, want)
	}
}

func TestEvaluateTool_Malformed(t *testing.T) {
	tool := NewEvaluateTool()
	for _, args := range []map[string]any{
		{"response": 12.0},
		{"response": []any{"a"}},
		{},
		{"response": "ok", "ordinal": float64(0)},
	} {
		result, err := tool.Handle(context.Background(), callRequest(args))
		if err != nil {
			t.Fatalf("Handle(%v) returned Go error: %v", args, err)
		}
		if !result.IsError {
			t.Errorf("Handle(%v) should be a tool error, got %s", args, resultText(t, result))
		}
	}
}

func TestAggregateTool(t *testing.T) {
	tool := NewAggregateTool()
	result, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"clarity": float64(15), "depth": float64(15), "efficiency": float64(15), "creativity": float64(15),
	}))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	var got scorer.Composite
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 60 || got.Level != scorer.LevelCompetent {
		t.Errorf("composite = %+v, want 60 AI Competent", got)
	}
}

func TestAggregateTool_MissingCategory(t *testing.T) {
	tool := NewAggregateTool()
	result, _ := tool.Handle(context.Background(), callRequest(map[string]any{
		"clarity": float64(15), "depth": float64(15), "efficiency": float64(15),
	}))
	if !result.IsError {
		t.Fatal("expected tool error for missing creativity")
	}
	if !strings.Contains(resultText(t, result), "creativity") {
		t.Errorf("error should name the missing argument: %s", resultText(t, result))
	}
}

func TestVerifyTool(t *testing.T) {
	mem := store.NewMemory()
	err := mem.Put(context.Background(), &store.Result{
		Score:           82,
		Level:           scorer.LevelProficient,
		Breakdown:       scorer.Breakdown{Clarity: 21, Depth: 20, Efficiency: 20, Creativity: 21},
		CertificateCode: "AIQ-7KQ2M9XA",
		Timestamp:       time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	tool := NewVerifyTool(certificate.NewVerifier(mem))

	tests := []struct {
		code   string
		valid  bool
		status string
	}{
		{" aiq-7kq2m9xa ", true, certificate.StatusVerified},
		{"AIQ-00000000", false, certificate.StatusNotFound},
		{"nope", false, certificate.StatusInvalidFormat},
	}
	for _, tt := range tests {
		result, err := tool.Handle(context.Background(), callRequest(map[string]any{"code": tt.code}))
		if err != nil {
			t.Fatalf("Handle(%q): %v", tt.code, err)
		}
		var got certificate.Verification
		if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Valid != tt.valid || got.Status != tt.status {
			t.Errorf("Verify(%q) = %+v, want valid=%v status=%q", tt.code, got, tt.valid, tt.status)
		}
	}
}

func TestVerifyTool_MissingCode(t *testing.T) {
	tool := NewVerifyTool(certificate.NewVerifier(store.NewMemory()))
	result, _ := tool.Handle(context.Background(), callRequest(map[string]any{}))
	if !result.IsError {
		t.Error("expected tool error when code is missing")
	}
}

func TestNew_RegistersTools(t *testing.T) {
	s := New("test", certificate.NewVerifier(store.NewMemory()))
	for _, name := range []string{"aiq_evaluate", "aiq_aggregate", "aiq_verify"} {
		if s.GetTool(name) == nil {
			t.Errorf("tool %s not registered", name)
		}
	}
}
