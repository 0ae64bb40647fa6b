package response

// Outer-layer fallback strings. Provider failures are recovered internally by
// the chain; these surface only after every backend has been tried, keyed by
// the most actionable degradation observed.
const (
	MsgQuotaExceeded = "I've reached my API usage limit. Please try again later or check your API billing settings."

	MsgAuthError = "Please check your AI provider API key configuration in the environment variables."

	MsgModelUnavailable = "The AI model is currently unavailable. Please try again later."

	MsgGreeting = "Hello! I'm here to help you with questions about your documents."

	MsgThanks = "You're welcome! Is there anything else you'd like to know?"

	MsgDocumentAck = "This appears to be a document you've uploaded. I can help answer questions about its content."

	MsgNoContext = "I'm here to help you with questions about your uploaded documents. Please try asking something specific about your PDF content."

	MsgProcessingTrouble = "I'm having trouble processing your request right now. Please try again in a moment."
)
