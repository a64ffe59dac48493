package analysis

import (
	"fmt"
	"sort"

	"census_insight/pkg/core/aggregate"
	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
)

const (
	matrixMaxProvinces = 10
	matrixMaxSectors   = 8

	// lqBaselineShare is the assumed national share of any single sector.
	// This is a documented approximation: a true location quotient needs the
	// real national per-sector denominator, the fixed 5% stand-in assumes a
	// uniform spread across 20 sectors. Tests pin this behavior; replacing
	// it with a computed denominator is a deliberate behavioral change.
	lqBaselineShare = 0.05
)

// Matrix is the province x sector heatmap payload. Values are
// [sectorIndex, provinceIndex, count] triples; both indices point into the
// Sectors/Provinces label lists. Emission order is province rank major,
// canonical sector order minor.
type Matrix struct {
	Provinces []string `json:"provinces"`
	Sectors   []string `json:"sectors"`
	Values    [][3]int `json:"values"`
}

// LQEntry is the location quotient of one sector within a province.
// LQ > 1 indicates relative specialization.
type LQEntry struct {
	Code  string  `json:"kode"`
	Name  string  `json:"nama"`
	Share float64 `json:"share"`
	LQ    float64 `json:"lq"`
}

// Enrich layers the derived metrics onto an analysis result. The two
// computations are independent and failure-isolated: a panic in one is
// logged and that metric omitted, the analysis itself is returned intact.
func Enrich(res *Result, agg *aggregate.Result) *Result {
	if res == nil || agg == nil {
		return res
	}

	if agg.Type == intent.TypeOverview || agg.Type == intent.TypeComparison {
		safely("matrix", func() {
			res.Matrix = buildMatrix(agg.Records)
		})
	}
	if agg.Type == intent.TypeProvinceDetail && agg.Detail != nil {
		safely("location_quotient", func() {
			res.LocationQuotients = computeLocationQuotients(agg.Detail)
		})
	}
	return res
}

// buildMatrix takes the top 10 provinces by grand total and the first 8
// sector codes in canonical order and emits the dense triple list.
func buildMatrix(records []census.SectorRecord) *Matrix {
	if len(records) == 0 {
		return nil
	}

	ranked := make([]census.SectorRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	if len(ranked) > matrixMaxProvinces {
		ranked = ranked[:matrixMaxProvinces]
	}

	sectors := census.SectorCodes
	if len(sectors) > matrixMaxSectors {
		sectors = sectors[:matrixMaxSectors]
	}

	m := &Matrix{
		Provinces: make([]string, 0, len(ranked)),
		Sectors:   make([]string, 0, len(sectors)),
		Values:    make([][3]int, 0, len(ranked)*len(sectors)),
	}
	for _, code := range sectors {
		m.Sectors = append(m.Sectors, census.SectorShortName(code))
	}
	for pi, r := range ranked {
		m.Provinces = append(m.Provinces, r.Province)
		for si, code := range sectors {
			m.Values = append(m.Values, [3]int{si, pi, r.SectorValue(code)})
		}
	}
	return m
}

// computeLocationQuotients divides each sector's in-province share by the
// fixed assumed national share.
func computeLocationQuotients(d *aggregate.ProvinceDetail) []LQEntry {
	if d.Total == 0 {
		return nil
	}

	codes := make([]string, 0, len(d.Sectors))
	for code := range d.Sectors {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]LQEntry, 0, len(codes))
	for _, code := range codes {
		share := float64(d.Sectors[code]) / float64(d.Total)
		entries = append(entries, LQEntry{
			Code:  code,
			Name:  census.SectorName(code),
			Share: share,
			LQ:    share / lqBaselineShare,
		})
	}
	return entries
}

// safely runs one enrichment computation, converting a panic into a logged
// warning so a single failed metric never aborts the response.
func safely(label string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[WARNING] enrichment %s failed: %v\n", label, r)
		}
	}()
	fn()
}
