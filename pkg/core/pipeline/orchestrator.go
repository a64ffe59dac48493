// Package pipeline wires one query end to end: classify intent, fetch
// records with fallback broadening, aggregate, analyze, enrich, then produce
// narrative and chart specifications. One request is one sequential pass; no
// state crosses requests.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"census_insight/pkg/core/aggregate"
	"census_insight/pkg/core/analysis"
	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
	"census_insight/pkg/core/narrative"
	"census_insight/pkg/core/viz"
)

// RecordFetcher retrieves census records for an intent. Implementations must
// not fail: backend errors are logged inside and surfaced as an empty list,
// which drives the fallback tiers here.
type RecordFetcher interface {
	Fetch(ctx context.Context, it intent.Intent) []census.SectorRecord
}

// Narrator produces the natural-language layer. The default implementation
// is *narrative.Generator; tests substitute a deterministic one.
type Narrator interface {
	Generate(ctx context.Context, req narrative.Request) narrative.Output
	Conversational(ctx context.Context, query, language string) string
}

// Response is the final pipeline output appended to the chat transcript.
type Response struct {
	Answer                string           `json:"answer"`
	Insights              []string         `json:"insights,omitempty"`
	PolicyRecommendations []string         `json:"policy_recommendations,omitempty"`
	Visualizations        []viz.Chart      `json:"visualizations,omitempty"`
	DataPoints            int              `json:"data_points"`
	Intent                *intent.Intent   `json:"intent,omitempty"`
	Statistics            *analysis.Result `json:"statistics,omitempty"`
	NoData                bool             `json:"no_data,omitempty"`
	NarrativeFallback     bool             `json:"narrative_fallback,omitempty"`
	Conversational        bool             `json:"conversational,omitempty"`
}

// Orchestrator runs the analytic pipeline.
type Orchestrator struct {
	fetcher  RecordFetcher
	narrator Narrator
}

func NewOrchestrator(fetcher RecordFetcher, narrator Narrator) *Orchestrator {
	return &Orchestrator{fetcher: fetcher, narrator: narrator}
}

// Run executes one query. No error ever reaches the caller: an unexpected
// panic anywhere in classify→retrieve→aggregate→analyze degrades to a
// conversational response.
func (o *Orchestrator) Run(ctx context.Context, query, language string) (resp Response) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[PIPELINE] unexpected failure, degrading to conversational reply: %v\n", r)
			resp = Response{
				Answer:         o.narrator.Conversational(ctx, query, language),
				Conversational: true,
			}
		}
	}()

	if !intent.IsDataQuery(query) {
		return Response{
			Answer:         o.narrator.Conversational(ctx, query, language),
			Conversational: true,
		}
	}

	it := intent.Classify(query)
	records, usedIntent, noData := o.fetchWithFallback(ctx, it)
	if noData {
		return Response{
			Answer: "Maaf, data yang sesuai dengan pertanyaan Anda tidak ditemukan dalam sensus. Coba sebutkan provinsi atau sektor yang lain.",
			Intent: &usedIntent,
			NoData: true,
		}
	}

	agg := aggregate.Aggregate(records, usedIntent)
	stats := analysis.Analyze(agg)
	analysis.Enrich(stats, agg)
	charts := viz.Build(stats, agg)

	narr := o.narrator.Generate(ctx, narrative.Request{
		Query:      query,
		Language:   language,
		Intent:     usedIntent,
		Statistics: stats,
		Aggregated: agg,
	})

	fmt.Printf("[PIPELINE] query answered in %v (intent=%s, records=%d, fallback=%v)\n",
		time.Since(start), usedIntent.Type, len(records), narr.UsedFallback)

	return Response{
		Answer:                narr.Narrative,
		Insights:              narr.Insights,
		PolicyRecommendations: narr.Policies,
		Visualizations:        charts,
		DataPoints:            len(records),
		Intent:                &usedIntent,
		Statistics:            stats,
		NarrativeFallback:     narr.UsedFallback,
	}
}

// fetchWithFallback is the three-tier degrade-gracefully retrieval:
//
//  1. fetch with the classified intent;
//  2. if empty and provinces were specified, clear the province filter and
//     re-fetch — the broadened intent becomes authoritative downstream;
//  3. if still empty, fetch the unfiltered overview;
//  4. if even that is empty the dataset has nothing, report no-data.
//
// Intents are never mutated in place; each tier constructs a replacement.
func (o *Orchestrator) fetchWithFallback(ctx context.Context, it intent.Intent) ([]census.SectorRecord, intent.Intent, bool) {
	records := o.fetcher.Fetch(ctx, it)
	if len(records) > 0 {
		return records, it, false
	}

	if len(it.Provinces) > 0 {
		broadened := it.WithoutProvinces()
		records = o.fetcher.Fetch(ctx, broadened)
		if len(records) > 0 {
			fmt.Printf("[PIPELINE] no records for provinces %v, broadened to all provinces\n", it.Provinces)
			return records, broadened, false
		}
	}

	overview := intent.Overview()
	records = o.fetcher.Fetch(ctx, overview)
	if len(records) > 0 {
		fmt.Printf("[PIPELINE] filters exhausted, answering with dataset overview\n")
		return records, overview, false
	}

	return nil, it, true
}
