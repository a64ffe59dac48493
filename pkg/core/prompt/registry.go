package prompt

import (
	"fmt"
	"sync"
)

// Registry holds all loaded prompts.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton, pre-seeded with the built-in
// census prompts. File-loaded prompts override builtins by ID.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{prompts: make(map[string]*Template)}
		for _, t := range builtins {
			globalRegistry.prompts[t.ID] = t
		}
	})
	return globalRegistry
}

// Register adds or replaces a prompt template.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[t.ID] = t
	return nil
}

// GetSystemPrompt returns the system prompt string for an ID.
func (r *Registry) GetSystemPrompt(id string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.prompts[id]; ok {
		return t.SystemPrompt, nil
	}
	return "", fmt.Errorf("prompt not found: %s", id)
}

// Count returns the number of registered prompts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}

var builtins = []*Template{
	{
		ID:       "narrative.data_answer",
		Name:     "Census data answer",
		Category: "narrative",
		Version:  "1",
		SystemPrompt: `You are a statistics analyst for the Indonesian economic census
(business counts per province per KBLI sector, single census year).
You receive a JSON context with the user's question, the detected intent,
and the computed statistics. Answer in the requested language (default
Bahasa Indonesia). Respond ONLY with a JSON object:
{
  "narrative": "<markdown answer grounded strictly in the provided numbers>",
  "insights": ["<2-4 short observations>"],
  "policy_recommendations": ["<2-3 actionable recommendations for regional economic policy>"]
}
Never invent numbers that are not in the context. Keep the narrative under
200 words.`,
	},
	{
		ID:       "chat.conversational",
		Name:     "Conversational reply",
		Category: "chat",
		Version:  "1",
		SystemPrompt: `You are the assistant of an Indonesian economic census data portal.
The user message is conversational, not a data question. Reply briefly and
politely in the user's language, and mention that you can answer questions
about business counts per province and sector.`,
	},
	{
		ID:       "policy.recommendations",
		Name:     "Policy recommendations",
		Category: "policy",
		Version:  "1",
		SystemPrompt: `You advise Indonesian regional governments on economic policy.
Given JSON statistics from the economic census, propose concrete policy
recommendations. Respond ONLY with a JSON array of strings, 2 to 4 items,
in the requested language.`,
	},
}
