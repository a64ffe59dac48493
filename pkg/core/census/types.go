package census

// SectorRecord is one denormalized census row: business counts per KBLI
// sector for a single province, plus the precomputed grand total.
type SectorRecord struct {
	Province     string         `json:"provinsi"`
	ProvinceCode string         `json:"kode_provinsi"`
	Sectors      map[string]int `json:"sektor"`
	Total        int            `json:"total"`

	// FilteredTotal is the sum over the intent's requested sectors only.
	// It is populated by retrieval when the query names sectors; Filtered
	// distinguishes a genuine zero from "no filter applied".
	FilteredTotal int  `json:"filtered_total,omitempty"`
	Filtered      bool `json:"-"`
}

// EffectiveTotal is the value every ranking and comparison sorts on:
// the sector-filtered sum when a filter was applied, the grand total otherwise.
func (r *SectorRecord) EffectiveTotal() int {
	if r.Filtered {
		return r.FilteredTotal
	}
	return r.Total
}

// SectorValue returns the business count for one sector code, 0 when absent.
func (r *SectorRecord) SectorValue(code string) int {
	return r.Sectors[code]
}

// NormalizeValue coerces a raw per-sector value into an integer count.
// Legacy rows store the count either as a bare number or nested under a
// name key ({"jumlah": N} or {"count": N}); anything malformed becomes 0.
func NormalizeValue(raw interface{}) int {
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case map[string]interface{}:
		for _, key := range []string{"jumlah", "count", "value"} {
			if inner, ok := v[key]; ok {
				return NormalizeValue(inner)
			}
		}
		return 0
	default:
		return 0
	}
}
