package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, res *mcp.GetPromptResult) string {
	t.Helper()
	if len(res.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(res.Messages))
	}
	tc, ok := res.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", res.Messages[0].Content)
	}
	return tc.Text
}

func TestMemoryContextPrompt_Definition(t *testing.T) {
	def := NewMemoryContextPrompt().Definition()
	if def.Name != "memory-context" {
		t.Errorf("prompt name = %q, want memory-context", def.Name)
	}
	if len(def.Arguments) != 1 || def.Arguments[0].Name != "user_id" {
		t.Errorf("arguments = %+v, want [user_id]", def.Arguments)
	}
	if def.Arguments[0].Required {
		t.Error("user_id should be optional")
	}
}

func TestMemoryContextPrompt_Handle(t *testing.T) {
	tests := []struct {
		name string
		args map[string]string
		want string
	}{
		{"explicit user", map[string]string{"user_id": "u1"}, "user_id='u1'"},
		{"empty user defaults", map[string]string{"user_id": ""}, "user_id='default'"},
		{"no arguments", nil, "user_id='default'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.GetPromptRequest{}
			req.Params.Arguments = tt.args

			res, err := NewMemoryContextPrompt().Handle(context.Background(), req)
			if err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			text := promptText(t, res)
			if !strings.Contains(text, tt.want) {
				t.Errorf("prompt text missing %q:\n%s", tt.want, text)
			}
			if !strings.Contains(text, "`get-memories`") {
				t.Error("prompt should name the get-memories tool")
			}
			if res.Messages[0].Role != mcp.RoleUser {
				t.Errorf("role = %q, want user", res.Messages[0].Role)
			}
		})
	}
}
