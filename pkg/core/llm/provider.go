package llm

import (
	"context"
)

// Provider is the interface for all LLM providers. The pipeline treats text
// generation as an opaque capability: given a prompt and a system prompt it
// returns prose, and it may fail (timeout, quota, malformed output) — every
// caller carries a deterministic fallback that does not depend on it.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats.
	AdaptInstructions(rawInstructions string) string
}
