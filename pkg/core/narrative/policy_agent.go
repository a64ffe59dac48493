package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"census_insight/pkg/core/prompt"
	"census_insight/pkg/core/utils"
)

// PolicyAgent generates policy recommendations on a dedicated Gemini client,
// independent of the provider serving the narrative. Losing it only loses
// LLM-authored policies; the template fallback still fills the field.
type PolicyAgent struct {
	client    *genai.Client
	modelName string
}

// NewPolicyAgent builds the agent from GEMINI_API_KEY. Callers should treat
// an error as "run without the agent".
func NewPolicyAgent(ctx context.Context) (*PolicyAgent, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set, policy agent disabled")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create policy agent client: %w", err)
	}

	modelName := os.Getenv("POLICY_AGENT_MODEL")
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &PolicyAgent{client: client, modelName: modelName}, nil
}

// Close releases the underlying client.
func (a *PolicyAgent) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

// Recommend asks for a JSON array of policy recommendations grounded in the
// statistics of one request.
func (a *PolicyAgent) Recommend(ctx context.Context, req Request) ([]string, error) {
	system, err := prompt.Get().GetSystemPrompt("policy.recommendations")
	if err != nil {
		return nil, err
	}

	contextJSON, err := json.Marshal(struct {
		Language   string      `json:"language"`
		Statistics interface{} `json:"statistics"`
	}{Language: req.Language, Statistics: req.Statistics})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy context: %w", err)
	}

	model := a.client.GenerativeModel(a.modelName)
	model.SetTemperature(0.7)

	fullPrompt := fmt.Sprintf("%s\n\nContext:\n%s", system, string(contextJSON))
	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("policy agent returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	var policies []string
	if _, err := utils.SmartParse(utils.CleanMarkdown(sb.String()), &policies); err != nil {
		return nil, fmt.Errorf("POLICY_PARSE_FAILED: %v", err)
	}
	return policies, nil
}
