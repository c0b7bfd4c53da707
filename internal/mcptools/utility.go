package mcptools

import (
	"context"

	"github.com/HendryAvila/assistant-tools/internal/utility"
	"github.com/mark3labs/mcp-go/mcp"
)

// AddTool handles the add MCP tool.
type AddTool struct{}

// NewAddTool creates an AddTool.
func NewAddTool() *AddTool {
	return &AddTool{}
}

// Definition returns the MCP tool definition for add.
func (t *AddTool) Definition() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription(utility.AddDescription),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("The first number to add."),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("The second number to add."),
		),
	)
}

// Handle processes the add tool call.
func (t *AddTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := numberArg(req, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := numberArg(req, "b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sum, err := utility.Add(a, b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(utility.FormatNumber(sum)), nil
}

// DatetimeTool handles the datetime MCP tool.
type DatetimeTool struct {
	clock utility.Clock
}

// NewDatetimeTool creates a DatetimeTool. A nil clock reads the wall clock.
func NewDatetimeTool(clock utility.Clock) *DatetimeTool {
	return &DatetimeTool{clock: clock}
}

// Definition returns the MCP tool definition for datetime.
func (t *DatetimeTool) Definition() mcp.Tool {
	return mcp.NewTool("datetime",
		mcp.WithDescription(utility.DatetimeDescription),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle processes the datetime tool call.
func (t *DatetimeTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.clock.Now()), nil
}
