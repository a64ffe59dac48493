// Package prompt is the centralized prompt library for LLM interactions.
// Prompts can be overridden from JSON files at runtime; built-in census
// prompts cover every role so the engine runs without a resources directory.
package prompt

// Template represents a reusable prompt with metadata.
type Template struct {
	ID           string `json:"id"`            // e.g. "narrative.data_answer"
	Name         string `json:"name"`          // Human-readable name
	Category     string `json:"category"`      // narrative, chat, policy
	Description  string `json:"description"`   // Purpose of the prompt
	SystemPrompt string `json:"system_prompt"` // System prompt content
	Version      string `json:"version"`       // Version for tracking changes
}
