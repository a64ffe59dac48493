// Package analysis computes the statistical summary of an aggregate and the
// derived metrics (province x sector matrix, location quotients) layered on
// top of it.
package analysis

import (
	"sort"

	"census_insight/pkg/core/aggregate"
	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
)

// TopEntry is a ranked province with its share of the grand total.
type TopEntry struct {
	Province   string  `json:"provinsi"`
	Total      int     `json:"total"`
	Percentage float64 `json:"persentase"`
}

// SectorStat is one sector's contribution inside a distribution or a
// single-province detail.
type SectorStat struct {
	Code       string  `json:"kode"`
	Name       string  `json:"nama"`
	Total      int     `json:"total"`
	Percentage float64 `json:"persentase"`
}

// ProvinceStats summarizes a single-province lookup.
type ProvinceStats struct {
	Province string       `json:"provinsi"`
	Total    int          `json:"total"`
	Sectors  []SectorStat `json:"sektor"`
}

// Result holds the statistics for one aggregate shape. Fields are populated
// per Type; Matrix and LocationQuotients only appear after enrichment.
// Available is false for aggregate shapes without a handler ("no analysis"),
// which is valid degraded output, not an error.
type Result struct {
	Type      intent.Type `json:"type"`
	Available bool        `json:"available"`
	Note      string      `json:"note,omitempty"`

	// ranking
	TopProvinces  []TopEntry `json:"top_provinces,omitempty"`
	Concentration float64    `json:"concentration,omitempty"`

	// comparison / overview
	Max        *TopEntry `json:"max,omitempty"`
	Min        *TopEntry `json:"min,omitempty"`
	Average    float64   `json:"average,omitempty"`
	GrandTotal int       `json:"grand_total,omitempty"`
	Count      int       `json:"count,omitempty"`

	// distribution
	TopSector          *SectorStat  `json:"top_sector,omitempty"`
	DistributionDetail []SectorStat `json:"distribution_detail,omitempty"`

	// province_detail
	Detail *ProvinceStats `json:"province_detail,omitempty"`

	// enrichment
	Matrix            *Matrix   `json:"matrix,omitempty"`
	LocationQuotients []LQEntry `json:"location_quotients,omitempty"`
}

// Analyze dispatches on the aggregate type. Unknown shapes yield the
// "no analysis available" sentinel and the pipeline proceeds with a
// degraded narrative.
func Analyze(agg *aggregate.Result) *Result {
	switch agg.Type {
	case intent.TypeRanking:
		return analyzeRanking(agg)
	case intent.TypeComparison, intent.TypeOverview:
		return analyzeComparison(agg)
	case intent.TypeDistribution:
		return analyzeDistribution(agg)
	case intent.TypeProvinceDetail:
		return analyzeProvinceDetail(agg)
	default:
		return &Result{Type: agg.Type, Available: false, Note: "no analysis available for this aggregate type"}
	}
}

// analyzeRanking reports the top 3 with percentage of the grand total over
// ALL ranked entries (not just the top 3) and the top-3 concentration ratio.
func analyzeRanking(agg *aggregate.Result) *Result {
	if len(agg.Ranking) == 0 {
		return &Result{Type: agg.Type, Available: false, Note: "no ranking data"}
	}

	grand := 0
	for _, e := range agg.Ranking {
		grand += e.Total
	}

	topN := 3
	if len(agg.Ranking) < topN {
		topN = len(agg.Ranking)
	}
	top := make([]TopEntry, 0, topN)
	topSum := 0
	for _, e := range agg.Ranking[:topN] {
		top = append(top, TopEntry{
			Province:   e.Province,
			Total:      e.Total,
			Percentage: percent(e.Total, grand),
		})
		topSum += e.Total
	}

	return &Result{
		Type:          agg.Type,
		Available:     true,
		TopProvinces:  top,
		Concentration: percent(topSum, grand),
		GrandTotal:    grand,
		Count:         len(agg.Ranking),
	}
}

// analyzeComparison reports extrema (ties go to the first-encountered entry),
// the arithmetic mean, grand total and count.
func analyzeComparison(agg *aggregate.Result) *Result {
	if len(agg.Comparison) == 0 {
		return &Result{Type: agg.Type, Available: false, Note: "no comparison data"}
	}

	grand := 0
	maxEntry := agg.Comparison[0]
	minEntry := agg.Comparison[0]
	for _, e := range agg.Comparison {
		grand += e.Total
		if e.Total > maxEntry.Total {
			maxEntry = e
		}
		if e.Total < minEntry.Total {
			minEntry = e
		}
	}

	count := len(agg.Comparison)
	avg := 0.0
	if count > 0 {
		avg = float64(grand) / float64(count)
	}

	return &Result{
		Type:       agg.Type,
		Available:  true,
		Max:        &TopEntry{Province: maxEntry.Province, Total: maxEntry.Total, Percentage: percent(maxEntry.Total, grand)},
		Min:        &TopEntry{Province: minEntry.Province, Total: minEntry.Total, Percentage: percent(minEntry.Total, grand)},
		Average:    avg,
		GrandTotal: grand,
		Count:      count,
	}
}

// analyzeDistribution sorts sector totals descending and reports the top
// sector plus percentage-of-total for the full sorted order.
func analyzeDistribution(agg *aggregate.Result) *Result {
	if len(agg.Distribution) == 0 {
		return &Result{Type: agg.Type, Available: false, Note: "no distribution data"}
	}

	grand := 0
	for _, st := range agg.Distribution {
		grand += st.Total
	}

	detail := make([]SectorStat, 0, len(agg.Distribution))
	for code, st := range agg.Distribution {
		detail = append(detail, SectorStat{
			Code:       code,
			Name:       st.Name,
			Total:      st.Total,
			Percentage: percent(st.Total, grand),
		})
	}
	sort.SliceStable(detail, func(i, j int) bool {
		if detail[i].Total != detail[j].Total {
			return detail[i].Total > detail[j].Total
		}
		return detail[i].Code < detail[j].Code
	})

	top := detail[0]
	return &Result{
		Type:               agg.Type,
		Available:          true,
		TopSector:          &top,
		DistributionDetail: detail,
		GrandTotal:         grand,
		Count:              len(detail),
	}
}

// analyzeProvinceDetail ranks the sectors inside one province.
func analyzeProvinceDetail(agg *aggregate.Result) *Result {
	if agg.Detail == nil {
		return &Result{Type: agg.Type, Available: false, Note: "no province detail"}
	}

	d := agg.Detail
	stats := make([]SectorStat, 0, len(d.Sectors))
	for code, v := range d.Sectors {
		stats = append(stats, SectorStat{
			Code:       code,
			Name:       census.SectorName(code),
			Total:      v,
			Percentage: percent(v, d.Total),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Code < stats[j].Code
	})

	res := &Result{
		Type:       agg.Type,
		Available:  true,
		GrandTotal: d.Total,
		Count:      len(stats),
		Detail:     &ProvinceStats{Province: d.Province, Total: d.Total, Sectors: stats},
	}
	if len(stats) > 0 {
		top := stats[0]
		res.TopSector = &top
	}
	return res
}

// percent is the guarded percentage: a zero denominator yields 0, never a
// division by zero.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
