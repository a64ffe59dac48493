package aggregate

import (
	"census_insight/pkg/core/census"
	"census_insight/pkg/core/intent"
)

// RankEntry is one row of a ranking aggregate, ordered by effective total.
type RankEntry struct {
	Province string `json:"provinsi"`
	Total    int    `json:"total"`
}

// CompareEntry is one province of a comparison aggregate. Breakdown is only
// populated when the intent named specific sectors.
type CompareEntry struct {
	Province  string         `json:"provinsi"`
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"per_sektor,omitempty"`
}

// SectorTotal is the distribution value for one sector across all records.
type SectorTotal struct {
	Total int    `json:"total"`
	Name  string `json:"nama"`
}

// ProvinceDetail carries the full sector list of a single-province lookup.
type ProvinceDetail struct {
	Province string         `json:"provinsi"`
	Total    int            `json:"total"`
	Sectors  map[string]int `json:"sektor"`
}

// Result is the intent-shaped aggregate. Exactly one of the payload fields
// is populated, selected by Type. Records preserves the retrieval-ordered
// input for enrichment; it is not part of the JSON shape.
type Result struct {
	Type         intent.Type            `json:"type"`
	Ranking      []RankEntry            `json:"ranking,omitempty"`
	Comparison   []CompareEntry         `json:"comparison,omitempty"`
	Distribution map[string]SectorTotal `json:"distribution,omitempty"`
	Detail       *ProvinceDetail        `json:"province_detail,omitempty"`
	TrendNote    string                 `json:"trend_note,omitempty"`

	Records []census.SectorRecord `json:"-"`
}
