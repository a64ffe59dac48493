package analysis

import (
	"math"
	"testing"

	"census_insight/pkg/core/aggregate"
	"census_insight/pkg/core/intent"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestAnalyzeRankingPercentages(t *testing.T) {
	agg := &aggregate.Result{
		Type: intent.TypeRanking,
		Ranking: []aggregate.RankEntry{
			{Province: "JAWA BARAT", Total: 500000},
			{Province: "DKI JAKARTA", Total: 450000},
		},
	}

	res := Analyze(agg)
	if !res.Available {
		t.Fatal("expected available analysis")
	}
	if len(res.TopProvinces) != 2 {
		t.Fatalf("expected 2 top entries, got %d", len(res.TopProvinces))
	}
	if res.TopProvinces[0].Province != "JAWA BARAT" {
		t.Errorf("expected JAWA BARAT first, got %s", res.TopProvinces[0].Province)
	}
	// 500000 / 950000 * 100
	if !almostEqual(res.TopProvinces[0].Percentage, 52.6315) {
		t.Errorf("expected ~52.63%%, got %f", res.TopProvinces[0].Percentage)
	}
	// With fewer than 3 entries the top-3 concentration covers everything.
	if !almostEqual(res.Concentration, 100) {
		t.Errorf("expected concentration 100, got %f", res.Concentration)
	}
	if res.GrandTotal != 950000 {
		t.Errorf("expected grand total 950000, got %d", res.GrandTotal)
	}
}

func TestAnalyzeRankingConcentrationBounds(t *testing.T) {
	agg := &aggregate.Result{
		Type: intent.TypeRanking,
		Ranking: []aggregate.RankEntry{
			{Province: "P1", Total: 400}, {Province: "P2", Total: 300},
			{Province: "P3", Total: 200}, {Province: "P4", Total: 100},
		},
	}

	res := Analyze(agg)
	// top 3 sum = 900 of 1000
	if !almostEqual(res.Concentration, 90) {
		t.Errorf("expected concentration 90, got %f", res.Concentration)
	}
	if res.Concentration < 0 || res.Concentration > 100 {
		t.Errorf("concentration out of bounds: %f", res.Concentration)
	}
	if len(res.TopProvinces) != 3 {
		t.Errorf("expected top capped at 3, got %d", len(res.TopProvinces))
	}
}

func TestAnalyzeComparisonExtrema(t *testing.T) {
	agg := &aggregate.Result{
		Type: intent.TypeComparison,
		Comparison: []aggregate.CompareEntry{
			{Province: "JAWA BARAT", Total: 4600000},
			{Province: "JAWA TIMUR", Total: 4400000},
			{Province: "ACEH", Total: 520000},
		},
	}

	res := Analyze(agg)
	if res.Max == nil || res.Max.Province != "JAWA BARAT" {
		t.Errorf("expected max JAWA BARAT, got %+v", res.Max)
	}
	if res.Min == nil || res.Min.Province != "ACEH" {
		t.Errorf("expected min ACEH, got %+v", res.Min)
	}
	wantAvg := float64(4600000+4400000+520000) / 3
	if !almostEqual(res.Average, wantAvg) {
		t.Errorf("expected average %f, got %f", wantAvg, res.Average)
	}
	if res.Count != 3 {
		t.Errorf("expected count 3, got %d", res.Count)
	}
}

func TestAnalyzeComparisonTieGoesToFirst(t *testing.T) {
	agg := &aggregate.Result{
		Type: intent.TypeComparison,
		Comparison: []aggregate.CompareEntry{
			{Province: "FIRST", Total: 100},
			{Province: "SECOND", Total: 100},
		},
	}
	res := Analyze(agg)
	if res.Max.Province != "FIRST" || res.Min.Province != "FIRST" {
		t.Errorf("ties must resolve to the first entry, got max=%s min=%s",
			res.Max.Province, res.Min.Province)
	}
}

func TestAnalyzeDistributionPercentagesSumToHundred(t *testing.T) {
	agg := &aggregate.Result{
		Type: intent.TypeDistribution,
		Distribution: map[string]aggregate.SectorTotal{
			"A": {Total: 300, Name: "Pertanian"},
			"C": {Total: 200, Name: "Industri Pengolahan"},
			"G": {Total: 500, Name: "Perdagangan"},
		},
	}

	res := Analyze(agg)
	if res.TopSector == nil || res.TopSector.Code != "G" {
		t.Fatalf("expected top sector G, got %+v", res.TopSector)
	}
	sum := 0.0
	for _, s := range res.DistributionDetail {
		sum += s.Percentage
	}
	if !almostEqual(sum, 100) {
		t.Errorf("percentages should sum to 100, got %f", sum)
	}
	// Descending by total.
	for i := 1; i < len(res.DistributionDetail); i++ {
		if res.DistributionDetail[i].Total > res.DistributionDetail[i-1].Total {
			t.Errorf("detail not sorted descending at %d", i)
		}
	}
}

func TestAnalyzeDistributionAllZeros(t *testing.T) {
	// Explicitly requested sectors can all be zero. The guarded percentage
	// keeps this from dividing by zero.
	agg := &aggregate.Result{
		Type: intent.TypeDistribution,
		Distribution: map[string]aggregate.SectorTotal{
			"B": {Total: 0, Name: "Pertambangan dan Penggalian"},
		},
	}
	res := Analyze(agg)
	if !res.Available {
		t.Fatal("zero totals are still an available analysis")
	}
	if res.DistributionDetail[0].Percentage != 0 {
		t.Errorf("expected guarded 0%%, got %f", res.DistributionDetail[0].Percentage)
	}
}

func TestAnalyzeProvinceDetailRanksSectors(t *testing.T) {
	agg := &aggregate.Result{
		Type: intent.TypeProvinceDetail,
		Detail: &aggregate.ProvinceDetail{
			Province: "BALI",
			Total:    1000,
			Sectors:  map[string]int{"A": 100, "G": 600, "I": 300},
		},
	}

	res := Analyze(agg)
	if res.Detail == nil {
		t.Fatal("expected province detail stats")
	}
	if res.Detail.Sectors[0].Code != "G" {
		t.Errorf("expected G first, got %s", res.Detail.Sectors[0].Code)
	}
	if !almostEqual(res.Detail.Sectors[0].Percentage, 60) {
		t.Errorf("expected 60%%, got %f", res.Detail.Sectors[0].Percentage)
	}
	if res.TopSector == nil || res.TopSector.Code != "G" {
		t.Errorf("expected top sector G, got %+v", res.TopSector)
	}
}

func TestAnalyzeUnknownTypeSentinel(t *testing.T) {
	res := Analyze(&aggregate.Result{Type: intent.TypeTrend})
	if res.Available {
		t.Error("trend aggregate must yield the unavailable sentinel")
	}
	if res.Note == "" {
		t.Error("sentinel must carry a note")
	}
}

func TestAnalyzeEmptyAggregates(t *testing.T) {
	for _, typ := range []intent.Type{intent.TypeRanking, intent.TypeComparison, intent.TypeDistribution} {
		res := Analyze(&aggregate.Result{Type: typ})
		if res.Available {
			t.Errorf("empty %s aggregate must be unavailable", typ)
		}
	}
}

func TestPercentGuardsZeroDenominator(t *testing.T) {
	if got := percent(10, 0); got != 0 {
		t.Errorf("expected 0 for zero denominator, got %f", got)
	}
	if got := percent(1, 4); !almostEqual(got, 25) {
		t.Errorf("expected 25, got %f", got)
	}
}
