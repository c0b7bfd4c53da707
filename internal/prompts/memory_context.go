// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/HendryAvila/assistant-tools/internal/memory"
	"github.com/mark3labs/mcp-go/mcp"
)

// MemoryContextPrompt handles the memory-context MCP prompt.
// It asks the AI to load a user's memories before continuing the conversation.
type MemoryContextPrompt struct{}

// NewMemoryContextPrompt creates a MemoryContextPrompt.
func NewMemoryContextPrompt() *MemoryContextPrompt {
	return &MemoryContextPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *MemoryContextPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("memory-context",
		mcp.WithPromptDescription(
			"Load what has been remembered about a user and keep it up to date "+
				"for the rest of the conversation.",
		),
		mcp.WithArgument("user_id",
			mcp.ArgumentDescription("The user whose memories to load. Default: default"),
		),
	)
}

// Handle processes the memory-context prompt request.
func (p *MemoryContextPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	userID := memory.DefaultUserID
	if args := req.Params.Arguments; args != nil {
		if id, ok := args["user_id"]; ok && id != "" {
			userID = id
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Memory context for %s", userID),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run `get-memories` with user_id='%s' and use what you find as background for this conversation.\n\n"+
						"Then, as we talk:\n"+
						"1. When I share a lasting preference or fact about myself, save it with `remember` (user_id='%s')\n"+
						"2. Write each memory as one short third-person statement\n"+
						"3. If a memory becomes wrong, delete it with `forget` using its memory_id before saving the correction\n"+
						"4. Only call `forget-all` if I explicitly ask you to erase everything",
					userID, userID,
				)),
			},
		},
	}, nil
}
