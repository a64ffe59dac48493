package pipeline

import (
	"context"
	"strings"
	"testing"

	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
	"census_insight/pkg/core/narrative"
)

// fakeFetcher answers through a caller-supplied function and records every
// intent it was asked for.
type fakeFetcher struct {
	fn    func(it intent.Intent) []census.SectorRecord
	calls []intent.Intent
}

func (f *fakeFetcher) Fetch(_ context.Context, it intent.Intent) []census.SectorRecord {
	f.calls = append(f.calls, it)
	return f.fn(it)
}

type stubNarrator struct{}

func (stubNarrator) Generate(_ context.Context, req narrative.Request) narrative.Output {
	return narrative.Fallback(req)
}

func (stubNarrator) Conversational(_ context.Context, _, _ string) string {
	return "Halo! Ada yang bisa dibantu?"
}

func fullDataset() []census.SectorRecord {
	return []census.SectorRecord{
		{Province: "JAWA BARAT", Total: 4600000, Sectors: map[string]int{"A": 310000, "G": 2100000}},
		{Province: "JAWA TIMUR", Total: 4400000, Sectors: map[string]int{"A": 350000, "G": 2000000}},
		{Province: "ACEH", Total: 520000, Sectors: map[string]int{"A": 90000, "G": 230000}},
	}
}

func TestRunConversationalGate(t *testing.T) {
	fetcher := &fakeFetcher{fn: func(intent.Intent) []census.SectorRecord {
		t.Error("fetcher must not be called for a conversational query")
		return nil
	}}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "halo apa kabar", "id")
	if !resp.Conversational {
		t.Fatal("expected conversational response")
	}
	if resp.Answer == "" {
		t.Error("conversational answer must not be empty")
	}
	if resp.Intent != nil || resp.Statistics != nil {
		t.Error("conversational response must not carry analytics")
	}
}

func TestRunDataQueryEndToEnd(t *testing.T) {
	fetcher := &fakeFetcher{fn: func(it intent.Intent) []census.SectorRecord {
		return fullDataset()
	}}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "provinsi mana dengan jumlah usaha terbanyak?", "id")
	if resp.Conversational || resp.NoData {
		t.Fatalf("expected analytic response, got %+v", resp)
	}
	if resp.Intent == nil || resp.Intent.Type != intent.TypeRanking {
		t.Fatalf("expected ranking intent, got %+v", resp.Intent)
	}
	if resp.DataPoints != 3 {
		t.Errorf("expected 3 data points, got %d", resp.DataPoints)
	}
	if !strings.Contains(resp.Answer, "JAWA BARAT") {
		t.Errorf("answer should name the leader, got %q", resp.Answer)
	}
	if len(resp.Visualizations) == 0 {
		t.Error("ranking response should carry a chart")
	}
	if !resp.NarrativeFallback {
		t.Error("stub narrator always falls back")
	}
}

func TestRunFallbackBroadensProvinces(t *testing.T) {
	// Records exist only when no province filter is set. The reported intent
	// must be the broadened one actually used for retrieval.
	fetcher := &fakeFetcher{fn: func(it intent.Intent) []census.SectorRecord {
		if len(it.Provinces) > 0 {
			return nil
		}
		return fullDataset()
	}}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "berapa jumlah usaha di gorontalo", "id")
	if resp.NoData {
		t.Fatal("broadened fetch succeeded, must not report no-data")
	}
	if resp.Intent == nil {
		t.Fatal("expected intent in response")
	}
	if len(resp.Intent.Provinces) != 0 {
		t.Errorf("reported intent must be the broadened one, got provinces %v", resp.Intent.Provinces)
	}
	if len(fetcher.calls) != 2 {
		t.Fatalf("expected 2 fetches (original then broadened), got %d", len(fetcher.calls))
	}
	if len(fetcher.calls[0].Provinces) == 0 {
		t.Error("first fetch must carry the original province filter")
	}
}

func TestRunFallbackOverviewTier(t *testing.T) {
	fetcher := &fakeFetcher{fn: func(it intent.Intent) []census.SectorRecord {
		if it.Type == intent.TypeOverview {
			return fullDataset()
		}
		return nil
	}}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "bagaimana distribusi usaha per sektor", "id")
	if resp.NoData {
		t.Fatal("overview tier succeeded, must not report no-data")
	}
	if resp.Intent == nil || resp.Intent.Type != intent.TypeOverview {
		t.Fatalf("expected overview intent after tier 3, got %+v", resp.Intent)
	}
}

func TestRunNoData(t *testing.T) {
	fetcher := &fakeFetcher{fn: func(intent.Intent) []census.SectorRecord { return nil }}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "berapa jumlah usaha sektor pertanian di aceh", "id")
	if !resp.NoData {
		t.Fatal("expected no-data response")
	}
	if resp.Conversational {
		t.Error("no-data is distinct from conversational")
	}
	if !strings.Contains(resp.Answer, "tidak ditemukan") {
		t.Errorf("no-data answer should explain the miss, got %q", resp.Answer)
	}
	if resp.Statistics != nil || len(resp.Visualizations) != 0 {
		t.Error("no-data response must not carry analytics")
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	fetcher := &fakeFetcher{fn: func(intent.Intent) []census.SectorRecord {
		panic("backend exploded")
	}}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "berapa jumlah usaha di bali", "id")
	if !resp.Conversational {
		t.Fatal("panic must degrade to a conversational reply")
	}
	if resp.Answer == "" {
		t.Error("degraded reply must not be empty")
	}
}

func TestRunSingleProvinceBecomesDetail(t *testing.T) {
	fetcher := &fakeFetcher{fn: func(it intent.Intent) []census.SectorRecord {
		if len(it.Provinces) == 1 && it.Provinces[0] == "BALI" {
			return []census.SectorRecord{
				{Province: "BALI", Total: 560000, Sectors: map[string]int{
					"A": 50000, "G": 210000, "I": 140000}},
			}
		}
		return fullDataset()
	}}
	o := NewOrchestrator(fetcher, stubNarrator{})

	resp := o.Run(context.Background(), "berapa jumlah usaha di bali", "id")
	if resp.Statistics == nil {
		t.Fatal("expected statistics")
	}
	if resp.Statistics.Type != intent.TypeProvinceDetail {
		t.Fatalf("single-province lookup should analyze as province_detail, got %s", resp.Statistics.Type)
	}
	if !strings.Contains(resp.Answer, "BALI") {
		t.Errorf("answer should profile BALI, got %q", resp.Answer)
	}
	if len(resp.Statistics.LocationQuotients) == 0 {
		t.Error("province detail should carry location quotients")
	}
}
