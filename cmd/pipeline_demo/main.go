// pipeline_demo runs the analytic pipeline against an embedded dataset with
// the deterministic narrator. No network, no database: useful for smoke
// checks and for demoing the fallback answers.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
	"census_insight/pkg/core/narrative"
	"census_insight/pkg/core/pipeline"
)

// memoryFetcher serves the embedded records the way the store would.
type memoryFetcher struct {
	records []census.SectorRecord
}

func (f *memoryFetcher) Fetch(_ context.Context, it intent.Intent) []census.SectorRecord {
	var matched []census.SectorRecord
	for _, r := range f.records {
		if len(it.Provinces) > 0 && !contains(it.Provinces, r.Province) {
			continue
		}
		matched = append(matched, r)
	}
	return census.ApplySectorFilter(matched, it.Sectors)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// templateNarrator always uses the deterministic fallback.
type templateNarrator struct{}

func (templateNarrator) Generate(_ context.Context, req narrative.Request) narrative.Output {
	return narrative.Fallback(req)
}

func (templateNarrator) Conversational(_ context.Context, _, language string) string {
	if language == "en" {
		return "Hello! Ask me about business counts per province and sector."
	}
	return "Halo! Tanyakan jumlah usaha per provinsi dan sektor."
}

func main() {
	fetcher := &memoryFetcher{records: sampleRecords()}
	orchestrator := pipeline.NewOrchestrator(fetcher, templateNarrator{})

	queries := []string{
		"provinsi mana dengan jumlah usaha terbanyak?",
		"berapa jumlah usaha sektor pertanian di aceh",
		"bandingkan jumlah usaha di jawa barat dan jawa timur",
		"bagaimana distribusi usaha per sektor?",
		"berapa jumlah usaha di bali",
		"halo, apa kabar?",
	}

	ctx := context.Background()
	for _, q := range queries {
		fmt.Printf("\n=== %q ===\n", q)
		resp := orchestrator.Run(ctx, q, "id")
		out, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(out))
	}
}

func sampleRecords() []census.SectorRecord {
	return []census.SectorRecord{
		{Province: "JAWA BARAT", ProvinceCode: "32", Total: 4600000, Sectors: map[string]int{
			"A": 310000, "C": 820000, "G": 2100000, "I": 640000, "H": 210000, "P": 150000}},
		{Province: "JAWA TIMUR", ProvinceCode: "35", Total: 4400000, Sectors: map[string]int{
			"A": 350000, "C": 790000, "G": 2000000, "I": 610000, "H": 190000, "P": 140000}},
		{Province: "JAWA TENGAH", ProvinceCode: "33", Total: 4100000, Sectors: map[string]int{
			"A": 330000, "C": 760000, "G": 1850000, "I": 560000, "H": 170000, "P": 130000}},
		{Province: "DKI JAKARTA", ProvinceCode: "31", Total: 1200000, Sectors: map[string]int{
			"C": 130000, "G": 520000, "I": 180000, "J": 70000, "K": 60000, "M": 50000}},
		{Province: "ACEH", ProvinceCode: "11", Total: 520000, Sectors: map[string]int{
			"A": 90000, "C": 60000, "G": 230000, "I": 70000, "H": 20000}},
		{Province: "BALI", ProvinceCode: "51", Total: 560000, Sectors: map[string]int{
			"A": 50000, "C": 70000, "G": 210000, "I": 140000, "R": 30000}},
	}
}
