package narrative

import (
	"context"
	"strings"
	"testing"

	"census_insight/pkg/core/analysis"
	"census_insight/pkg/core/intent"
)

func TestGenerateFallsBackWithoutProvider(t *testing.T) {
	g := NewGenerator(nil)

	out := g.Generate(context.Background(), Request{
		Query: "provinsi mana dengan jumlah usaha terbanyak?",
		Statistics: &analysis.Result{
			Type:      intent.TypeRanking,
			Available: true,
			TopProvinces: []analysis.TopEntry{
				{Province: "JAWA BARAT", Total: 4600000, Percentage: 52.6},
			},
			Concentration: 100,
			GrandTotal:    4600000,
		},
	})

	if !out.UsedFallback {
		t.Fatal("no provider configured, the fallback must serve the answer")
	}
	if !strings.Contains(out.Narrative, "JAWA BARAT") {
		t.Errorf("fallback narrative should carry the data, got %q", out.Narrative)
	}
	if len(out.Policies) == 0 {
		t.Error("policy recommendations must be backfilled by the template fallback")
	}
}

func TestConversationalCannedReply(t *testing.T) {
	g := NewGenerator(nil)

	id := g.Conversational(context.Background(), "halo", "id")
	if !strings.Contains(id, "sensus") {
		t.Errorf("indonesian canned reply should describe the dataset, got %q", id)
	}
	en := g.Conversational(context.Background(), "hello", "en")
	if !strings.Contains(en, "census") {
		t.Errorf("english canned reply should describe the dataset, got %q", en)
	}
	if id == en {
		t.Error("replies must differ per language")
	}
}

func TestGenerateAppliesDefaultReference(t *testing.T) {
	g := NewGenerator(nil)
	g.SetReference("Rilis resmi: jumlah usaha nasional tumbuh.")

	out := g.Generate(context.Background(), Request{
		Statistics: &analysis.Result{Type: intent.TypeTrend, Available: true},
	})
	if !out.UsedFallback || out.Narrative == "" {
		t.Errorf("reference must not interfere with fallback, got %+v", out)
	}
}
