package aggregate

import (
	"testing"

	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
)

func rec(province string, total int, sectors map[string]int) census.SectorRecord {
	return census.SectorRecord{Province: province, Total: total, Sectors: sectors}
}

func TestAggregateRankingTopTenStable(t *testing.T) {
	// 12 provinces, two tied at 500. Stable sort keeps retrieval order
	// between the tied pair and only 10 entries survive.
	records := []census.SectorRecord{
		rec("P01", 100, nil), rec("P02", 200, nil), rec("P03", 300, nil),
		rec("P04", 400, nil), rec("TIE_FIRST", 500, nil), rec("TIE_SECOND", 500, nil),
		rec("P07", 700, nil), rec("P08", 800, nil), rec("P09", 900, nil),
		rec("P10", 1000, nil), rec("P11", 1100, nil), rec("P12", 1200, nil),
	}

	res := Aggregate(records, intent.Intent{Type: intent.TypeRanking})
	if res.Type != intent.TypeRanking {
		t.Fatalf("expected ranking result, got %s", res.Type)
	}
	if len(res.Ranking) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(res.Ranking))
	}
	if res.Ranking[0].Province != "P12" || res.Ranking[0].Total != 1200 {
		t.Errorf("expected P12 first, got %+v", res.Ranking[0])
	}
	// Tied entries sit at positions 6 and 7 and preserve input order.
	if res.Ranking[6].Province != "TIE_FIRST" || res.Ranking[7].Province != "TIE_SECOND" {
		t.Errorf("tie order not stable: %s then %s", res.Ranking[6].Province, res.Ranking[7].Province)
	}
	for i := 1; i < len(res.Ranking); i++ {
		if res.Ranking[i].Total > res.Ranking[i-1].Total {
			t.Errorf("ranking not descending at %d: %d > %d", i, res.Ranking[i].Total, res.Ranking[i-1].Total)
		}
	}
}

func TestAggregateRankingUsesFilteredTotal(t *testing.T) {
	records := []census.SectorRecord{
		{Province: "BIG_BUT_FILTERED", Total: 9000, FilteredTotal: 10, Filtered: true},
		{Province: "SMALL_UNFILTERED", Total: 100, FilteredTotal: 100, Filtered: true},
	}
	res := Aggregate(records, intent.Intent{Type: intent.TypeRanking, Sectors: []string{"A"}})
	if res.Ranking[0].Province != "SMALL_UNFILTERED" {
		t.Errorf("expected filtered totals to drive the ranking, got %+v", res.Ranking)
	}
}

func TestAggregateComparisonBreakdown(t *testing.T) {
	records := []census.SectorRecord{
		rec("JAWA BARAT", 500, map[string]int{"A": 120, "G": 300}),
		rec("JAWA TIMUR", 450, map[string]int{"A": 150, "G": 250}),
	}
	it := intent.Intent{
		Type:      intent.TypeComparison,
		Provinces: []string{"JAWA BARAT", "JAWA TIMUR"},
		Sectors:   []string{"A"},
	}

	res := Aggregate(records, it)
	if res.Type != intent.TypeComparison {
		t.Fatalf("expected comparison, got %s", res.Type)
	}
	if len(res.Comparison) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res.Comparison))
	}
	if res.Comparison[0].Breakdown["A"] != 120 {
		t.Errorf("expected breakdown A=120, got %d", res.Comparison[0].Breakdown["A"])
	}
	if res.Comparison[1].Breakdown["A"] != 150 {
		t.Errorf("expected breakdown A=150, got %d", res.Comparison[1].Breakdown["A"])
	}
}

func TestAggregateComparisonNoSectorsOmitsBreakdown(t *testing.T) {
	records := []census.SectorRecord{
		rec("ACEH", 100, map[string]int{"A": 60}),
		rec("BALI", 200, map[string]int{"A": 40}),
	}
	res := Aggregate(records, intent.Intent{Type: intent.TypeComparison})
	for _, e := range res.Comparison {
		if e.Breakdown != nil {
			t.Errorf("expected nil breakdown without sector filter, got %v", e.Breakdown)
		}
	}
}

func TestAggregateSingleRecordRetagsProvinceDetail(t *testing.T) {
	records := []census.SectorRecord{
		rec("BALI", 560000, map[string]int{"A": 50000, "G": 210000, "I": 140000}),
	}
	res := Aggregate(records, intent.Intent{Type: intent.TypeComparison, Provinces: []string{"BALI"}})

	if res.Type != intent.TypeProvinceDetail {
		t.Fatalf("expected province_detail retag, got %s", res.Type)
	}
	if res.Detail == nil || res.Detail.Province != "BALI" {
		t.Fatalf("expected BALI detail, got %+v", res.Detail)
	}
	if res.Detail.Total != 560000 {
		t.Errorf("expected total 560000, got %d", res.Detail.Total)
	}
	if res.Detail.Sectors["G"] != 210000 {
		t.Errorf("expected sector G 210000, got %d", res.Detail.Sectors["G"])
	}
}

func TestAggregateSingleRecordWithSectorFilterStaysComparison(t *testing.T) {
	records := []census.SectorRecord{
		{Province: "ACEH", Total: 520000, FilteredTotal: 90000, Filtered: true,
			Sectors: map[string]int{"A": 90000}},
	}
	it := intent.Intent{Type: intent.TypeComparison, Provinces: []string{"ACEH"}, Sectors: []string{"A"}}

	res := Aggregate(records, it)
	if res.Type != intent.TypeComparison {
		t.Fatalf("sector-filtered single record must not retag, got %s", res.Type)
	}
	if len(res.Comparison) != 1 || res.Comparison[0].Total != 90000 {
		t.Errorf("expected one entry with filtered total 90000, got %+v", res.Comparison)
	}
}

func TestAggregateDistributionOmitsImplicitZeros(t *testing.T) {
	records := []census.SectorRecord{
		rec("ACEH", 100, map[string]int{"A": 60, "G": 40}),
		rec("BALI", 80, map[string]int{"A": 30, "G": 50}),
	}
	res := Aggregate(records, intent.Intent{Type: intent.TypeDistribution})

	if len(res.Distribution) != 2 {
		t.Fatalf("expected only non-zero sectors, got %d", len(res.Distribution))
	}
	if res.Distribution["A"].Total != 90 {
		t.Errorf("expected A=90, got %d", res.Distribution["A"].Total)
	}
	if res.Distribution["G"].Total != 90 {
		t.Errorf("expected G=90, got %d", res.Distribution["G"].Total)
	}
	if res.Distribution["A"].Name == "" {
		t.Error("sector name must be resolved")
	}
}

func TestAggregateDistributionKeepsExplicitZero(t *testing.T) {
	records := []census.SectorRecord{
		rec("ACEH", 100, map[string]int{"A": 100}),
	}
	it := intent.Intent{Type: intent.TypeDistribution, Sectors: []string{"A", "B"}}

	res := Aggregate(records, it)
	b, ok := res.Distribution["B"]
	if !ok {
		t.Fatal("explicitly requested sector B must stay in the result")
	}
	if b.Total != 0 {
		t.Errorf("expected B=0, got %d", b.Total)
	}
}

func TestAggregateDistributionAllZerosIsEmpty(t *testing.T) {
	// No explicit sectors, every sector value zero: the distribution comes
	// back empty and the analyzer turns that into its sentinel downstream.
	records := []census.SectorRecord{
		rec("ACEH", 0, map[string]int{"A": 0, "G": 0}),
	}
	res := Aggregate(records, intent.Intent{Type: intent.TypeDistribution})
	if len(res.Distribution) != 0 {
		t.Errorf("expected empty distribution, got %v", res.Distribution)
	}
}

func TestAggregateTrendPlaceholder(t *testing.T) {
	res := Aggregate(nil, intent.Intent{Type: intent.TypeTrend})
	if res.Type != intent.TypeTrend {
		t.Fatalf("expected trend result, got %s", res.Type)
	}
	if res.TrendNote == "" {
		t.Error("trend placeholder note must be set")
	}
	if res.Ranking != nil || res.Comparison != nil || res.Distribution != nil {
		t.Error("trend result must not fabricate data")
	}
}

func TestAggregateOverviewRetag(t *testing.T) {
	records := []census.SectorRecord{
		rec("ACEH", 100, nil),
		rec("BALI", 200, nil),
	}
	res := Aggregate(records, intent.Intent{Type: intent.TypeOverview})
	if res.Type != intent.TypeOverview {
		t.Fatalf("expected overview type, got %s", res.Type)
	}
	if len(res.Comparison) != 2 {
		t.Errorf("expected comparison entries under overview, got %d", len(res.Comparison))
	}
}
