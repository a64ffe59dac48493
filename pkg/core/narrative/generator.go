// Package narrative turns a computed analysis into natural-language output:
// a markdown narrative, short insights, and policy recommendations. The LLM
// path may fail at any time; a deterministic template fallback per aggregate
// type always produces a usable answer.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"census_insight/pkg/core/agent"
	"census_insight/pkg/core/aggregate"
	"census_insight/pkg/core/analysis"
	"census_insight/pkg/core/intent"
	"census_insight/pkg/core/prompt"
	"census_insight/pkg/core/utils"
)

// Request is the bounded, JSON-serializable context handed to the text
// generation capability.
type Request struct {
	Query      string            `json:"query"`
	Language   string            `json:"language"`
	Intent     intent.Intent     `json:"intent"`
	Statistics *analysis.Result  `json:"statistics"`
	Aggregated *aggregate.Result `json:"aggregated"`
	Reference  string            `json:"reference,omitempty"`
}

// Output is what the pipeline attaches to the response.
type Output struct {
	Narrative    string   `json:"narrative"`
	Insights     []string `json:"insights"`
	Policies     []string `json:"policy_recommendations"`
	UsedFallback bool     `json:"used_fallback"`
}

// llmAnswer is the JSON shape the narrative prompt asks the model for.
type llmAnswer struct {
	Narrative string   `json:"narrative"`
	Insights  []string `json:"insights"`
	Policies  []string `json:"policy_recommendations"`
}

type Generator struct {
	mgr       *agent.Manager
	policy    *PolicyAgent
	reference string
}

func NewGenerator(mgr *agent.Manager) *Generator {
	return &Generator{mgr: mgr}
}

// SetPolicyAgent wires the optional dedicated policy recommendation agent.
func (g *Generator) SetPolicyAgent(pa *PolicyAgent) {
	g.policy = pa
}

// SetReference sets default grounding text (e.g. an official press release)
// attached to every narrative request that does not carry its own.
func (g *Generator) SetReference(text string) {
	g.reference = text
}

// Generate produces the narrative output for one analysis. Every failure
// mode (provider error, unusable output) degrades to the deterministic
// fallback; Generate itself never fails.
func (g *Generator) Generate(ctx context.Context, req Request) Output {
	if req.Language == "" {
		req.Language = "id"
	}
	if req.Reference == "" {
		req.Reference = g.reference
	}

	out, err := g.generateLLM(ctx, req)
	if err != nil {
		fmt.Printf("[FALLBACK] narrative generation failed: %v\n", err)
		out = Fallback(req)
	}

	if len(out.Policies) == 0 && g.policy != nil {
		policies, perr := g.policy.Recommend(ctx, req)
		if perr != nil {
			fmt.Printf("[FALLBACK] policy agent failed: %v\n", perr)
		} else {
			out.Policies = policies
		}
	}
	if len(out.Policies) == 0 {
		out.Policies = FallbackPolicies(req)
	}
	return out
}

func (g *Generator) generateLLM(ctx context.Context, req Request) (Output, error) {
	if g.mgr == nil {
		return Output{}, fmt.Errorf("no agent manager configured")
	}

	contextJSON, err := json.Marshal(req)
	if err != nil {
		return Output{}, fmt.Errorf("failed to marshal narrative context: %w", err)
	}

	system, err := prompt.Get().GetSystemPrompt("narrative.data_answer")
	if err != nil {
		return Output{}, err
	}

	raw, err := g.mgr.ExecutePrompt(ctx, "narrative", string(contextJSON), system, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return Output{}, err
	}

	var answer llmAnswer
	if _, err := utils.SmartParse(utils.CleanMarkdown(raw), &answer); err != nil {
		return Output{}, fmt.Errorf("NARRATIVE_PARSE_FAILED: %v", err)
	}
	if answer.Narrative == "" || !utils.ValidateMarkdown(answer.Narrative) {
		return Output{}, fmt.Errorf("NARRATIVE_UNUSABLE: model returned no renderable narrative")
	}

	return Output{
		Narrative: utils.CleanMarkdown(answer.Narrative),
		Insights:  answer.Insights,
		Policies:  answer.Policies,
	}, nil
}

// Conversational answers a non-data query. The LLM reply is preferred; a
// canned bilingual reply covers provider failure.
func (g *Generator) Conversational(ctx context.Context, query, language string) string {
	if g.mgr != nil {
		system, err := prompt.Get().GetSystemPrompt("chat.conversational")
		if err == nil {
			reply, err := g.mgr.ExecutePrompt(ctx, "chat", query, system, nil)
			if err == nil && reply != "" {
				return utils.CleanMarkdown(reply)
			}
			fmt.Printf("[FALLBACK] conversational reply failed: %v\n", err)
		}
	}
	if language == "en" {
		return "Hello! I can answer questions about the Indonesian economic census: business counts per province and per KBLI sector. Try asking, for example, which province has the most businesses."
	}
	return "Halo! Saya dapat menjawab pertanyaan seputar data sensus ekonomi: jumlah usaha per provinsi dan per sektor KBLI. Coba tanyakan misalnya provinsi mana dengan jumlah usaha terbanyak."
}
