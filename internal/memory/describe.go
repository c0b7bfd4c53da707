package memory

// Operation descriptions shared by the HTTP and MCP surfaces.
const (
	RememberDescription = "The `remember` tool persists information across conversations. " +
		"Write whatever you want to remember as a short third-person statement about the user; " +
		"it will be available in future conversations.\n\n" +
		"Example memories, in the style to follow:\n\n" +
		"- `Is an experienced developer and prefers direct and short answers without explanations of basic concepts.`\n" +
		"- `Uses ESLint and Prettier for their current projects. They prefer using Yarn.`\n" +
		"- `Likes eating sashimi.`\n" +
		"- `Prefers well-considered opinions over superficial neutrality.`"

	ListDescription      = "Retrieve memories that have been saved for a user."
	ForgetDescription    = "Delete a specific memory for a user using user_id and memory_id."
	ForgetAllDescription = "Delete all memories for a specific user using user_id."
)
