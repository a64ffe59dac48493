// Package aggregate transforms retrieved census records into the aggregate
// shape the query intent asked for. All computation is in-memory arithmetic
// over at most a few hundred province records.
package aggregate

import (
	"sort"

	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
)

const rankingLimit = 10

// Aggregate dispatches purely on the intent type. It never fails; an intent
// type with no aggregation path comes back as an empty Result carrying only
// the type tag, which the analyzer turns into its "no analysis" sentinel.
func Aggregate(records []census.SectorRecord, it intent.Intent) *Result {
	switch it.Type {
	case intent.TypeRanking:
		return aggregateRanking(records, it)
	case intent.TypeComparison, intent.TypeProvinceDetail:
		return aggregateComparison(records, it)
	case intent.TypeOverview:
		res := aggregateComparison(records, it)
		res.Type = intent.TypeOverview
		return res
	case intent.TypeDistribution:
		return aggregateDistribution(records, it)
	case intent.TypeTrend:
		// Single-year dataset: a trend can not be computed and must not be
		// fabricated. The placeholder keeps the shape for a future
		// multi-year extension.
		return &Result{
			Type:      intent.TypeTrend,
			TrendNote: "dataset sensus satu tahun: data temporal tidak cukup untuk analisis tren",
			Records:   records,
		}
	default:
		return &Result{Type: it.Type, Records: records}
	}
}

// aggregateRanking sorts descending by effective total and keeps the top 10.
// The sort is stable so ties preserve retrieval order.
func aggregateRanking(records []census.SectorRecord, it intent.Intent) *Result {
	ranked := make([]census.SectorRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EffectiveTotal() > ranked[j].EffectiveTotal()
	})
	if len(ranked) > rankingLimit {
		ranked = ranked[:rankingLimit]
	}

	entries := make([]RankEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, RankEntry{Province: r.Province, Total: r.EffectiveTotal()})
	}
	return &Result{Type: intent.TypeRanking, Ranking: entries, Records: records}
}

// aggregateComparison emits one entry per record. A comparison over exactly
// one record with no sector filter is retagged province_detail: a
// single-province lookup carries the full sector list so downstream analysis
// can rank sectors inside the province.
func aggregateComparison(records []census.SectorRecord, it intent.Intent) *Result {
	if len(records) == 1 && len(it.Sectors) == 0 {
		r := records[0]
		sectors := make(map[string]int, len(r.Sectors))
		for code, v := range r.Sectors {
			sectors[code] = v
		}
		return &Result{
			Type:    intent.TypeProvinceDetail,
			Detail:  &ProvinceDetail{Province: r.Province, Total: r.Total, Sectors: sectors},
			Records: records,
		}
	}

	entries := make([]CompareEntry, 0, len(records))
	for _, r := range records {
		entry := CompareEntry{Province: r.Province, Total: r.EffectiveTotal()}
		if len(it.Sectors) > 0 {
			entry.Breakdown = make(map[string]int, len(it.Sectors))
			for _, code := range it.Sectors {
				entry.Breakdown[code] = r.SectorValue(code)
			}
		}
		entries = append(entries, entry)
	}
	return &Result{Type: intent.TypeComparison, Comparison: entries, Records: records}
}

// aggregateDistribution sums each in-scope sector across all records. Over
// "all sectors" the zero sectors are omitted; explicitly requested sectors
// stay in the result even at 0.
func aggregateDistribution(records []census.SectorRecord, it intent.Intent) *Result {
	scope := it.Sectors
	explicit := len(scope) > 0
	if !explicit {
		scope = census.SectorCodes
	}

	dist := make(map[string]SectorTotal, len(scope))
	for _, code := range scope {
		sum := 0
		for _, r := range records {
			sum += r.SectorValue(code)
		}
		if sum == 0 && !explicit {
			continue
		}
		dist[code] = SectorTotal{Total: sum, Name: census.SectorName(code)}
	}
	return &Result{Type: intent.TypeDistribution, Distribution: dist, Records: records}
}
