package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	// ContextSeparator joins retrieved chunk contents into the prompt context.
	ContextSeparator = "\n\n"
)
