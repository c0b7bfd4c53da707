package mcptools

import (
	"context"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/mark3labs/mcp-go/mcp"
)

// ─── RememberTool ───────────────────────────────────────────────────────────

// RememberTool handles the remember MCP tool.
type RememberTool struct {
	svc *memory.Service
}

// NewRememberTool creates a RememberTool.
func NewRememberTool(svc *memory.Service) *RememberTool {
	return &RememberTool{svc: svc}
}

// Definition returns the MCP tool definition for remember.
func (t *RememberTool) Definition() mcp.Tool {
	return mcp.NewTool("remember",
		mcp.WithDescription(memory.RememberDescription),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("memory",
			mcp.Required(),
			mcp.Description("The information to remember."),
		),
		mcp.WithString("user_id",
			mcp.Description("The ID of the user to remember information for (default: default)."),
		),
	)
}

// Handle processes the remember tool call.
func (t *RememberTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := t.svc.Remember(ctx, memory.RememberParams{
		UserID: req.GetString("user_id", ""),
		Memory: req.GetString("memory", ""),
	})
	if err != nil {
		return toolError(err)
	}
	return jsonResult(struct {
		Message string `json:"message"`
		memory.Record
	}{"Memory saved successfully.", rec})
}

// ─── GetMemoriesTool ────────────────────────────────────────────────────────

// GetMemoriesTool handles the get-memories MCP tool.
type GetMemoriesTool struct {
	svc *memory.Service
}

// NewGetMemoriesTool creates a GetMemoriesTool.
func NewGetMemoriesTool(svc *memory.Service) *GetMemoriesTool {
	return &GetMemoriesTool{svc: svc}
}

// Definition returns the MCP tool definition for get-memories.
func (t *GetMemoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("get-memories",
		mcp.WithDescription(memory.ListDescription),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("user_id",
			mcp.Description("The ID of the user to retrieve memories for (default: default)."),
		),
	)
}

// Handle processes the get-memories tool call.
func (t *GetMemoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recs, err := t.svc.List(ctx, req.GetString("user_id", ""))
	if err != nil {
		return toolError(err)
	}
	return jsonResult(recs)
}

// ─── ForgetTool ─────────────────────────────────────────────────────────────

// ForgetTool handles the forget MCP tool.
type ForgetTool struct {
	svc *memory.Service
}

// NewForgetTool creates a ForgetTool.
func NewForgetTool(svc *memory.Service) *ForgetTool {
	return &ForgetTool{svc: svc}
}

// Definition returns the MCP tool definition for forget.
func (t *ForgetTool) Definition() mcp.Tool {
	return mcp.NewTool("forget",
		mcp.WithDescription(memory.ForgetDescription),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("memory_id",
			mcp.Required(),
			mcp.Description("The ID of the memory to delete."),
		),
		mcp.WithString("user_id",
			mcp.Description("The ID of the user whose memory is to be deleted (default: default)."),
		),
	)
}

// Handle processes the forget tool call.
func (t *ForgetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := t.svc.Forget(ctx, req.GetString("user_id", ""), req.GetString("memory_id", ""))
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText("Memory deleted successfully."), nil
}

// ─── ForgetAllTool ──────────────────────────────────────────────────────────

// ForgetAllTool handles the forget-all MCP tool. Unlike the other memory
// tools, user_id is required and has no default.
type ForgetAllTool struct {
	svc *memory.Service
}

// NewForgetAllTool creates a ForgetAllTool.
func NewForgetAllTool(svc *memory.Service) *ForgetAllTool {
	return &ForgetAllTool{svc: svc}
}

// Definition returns the MCP tool definition for forget-all.
func (t *ForgetAllTool) Definition() mcp.Tool {
	return mcp.NewTool("forget-all",
		mcp.WithDescription(memory.ForgetAllDescription),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user whose memories are to be deleted."),
		),
	)
}

// Handle processes the forget-all tool call.
func (t *ForgetAllTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := t.svc.ForgetAll(ctx, req.GetString("user_id", ""))
	if err != nil {
		return toolError(err)
	}
	return jsonResult(struct {
		Message      string `json:"message"`
		DeletedCount int64  `json:"deleted_count"`
	}{"All memories deleted successfully.", n})
}
