package llm

// Prompt is the system message sent with every completion request.
const Prompt = "You are a funny assistant."

// DefaultModel is used when no model name is configured.
const DefaultModel = "gpt-3.5-turbo"
