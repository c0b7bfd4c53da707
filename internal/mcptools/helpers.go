// Package mcptools exposes the assistant tools as MCP tool handlers.
//
// Each tool follows the same shape:
//   - a struct holding its dependencies, injected via constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() processes the request and returns a result
//
// Domain failures are returned as tool errors, never as Go errors, so the
// assistant sees the same messages an HTTP caller would.
package mcptools

import (
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/HendryAvila/assistant-tools/internal/utility"
	"github.com/mark3labs/mcp-go/mcp"
)

// numberArg extracts a numeric argument. Clients may send JSON numbers or
// numeric strings; both are accepted.
func numberArg(req mcp.CallToolRequest, key string) (float64, error) {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		return v, nil
	case string:
		return utility.ParseOperand(key, v)
	case nil:
		return utility.ParseOperand(key, "")
	default:
		return 0, fmt.Errorf("%w: `%s` must be a number, got %T", utility.ErrInvalidNumber, key, v)
	}
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError reports a memory failure with its caller-safe message.
func toolError(err error) (*mcp.CallToolResult, error) {
	e := memory.AsError(err, "Internal error.")
	text := e.Message
	if e.Details != "" {
		text += "\n\n" + e.Details
	}
	return mcp.NewToolResultError(text), nil
}
