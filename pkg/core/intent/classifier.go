// Package intent turns a free-text query into a structured interpretation:
// an intent type plus the provinces and sectors the query mentions. It is
// purely keyword-driven; there is no parsing, negation handling, or numeric
// disambiguation.
package intent

import (
	"sort"
	"strings"

	"census_insight/pkg/core/census"
)

// Type enumerates the aggregation shapes the pipeline knows how to produce.
type Type string

const (
	TypeComparison     Type = "comparison"
	TypeRanking        Type = "ranking"
	TypeTrend          Type = "trend"
	TypeDistribution   Type = "distribution"
	TypeOverview       Type = "overview"
	TypeProvinceDetail Type = "province_detail"
)

// Intent is the structured interpretation of one query. Empty Provinces or
// Sectors means "all". An Intent is never mutated after construction; the
// pipeline builds replacement intents during fallback broadening.
type Intent struct {
	Type        Type     `json:"intent_type"`
	Provinces   []string `json:"provinces"`
	Sectors     []string `json:"sectors"`
	Aggregation string   `json:"aggregation"`
}

// WithoutProvinces returns a copy of the intent with the province filter
// cleared, used by the tier-2 retrieval fallback.
func (i Intent) WithoutProvinces() Intent {
	i.Provinces = nil
	return i
}

// Overview is the tier-3 fallback intent: no filters at all.
func Overview() Intent {
	return Intent{Type: TypeOverview, Aggregation: "sum"}
}

// typeRule is one entry of the ordered intent-type table. Rules are checked
// top to bottom; the first keyword hit wins.
type typeRule struct {
	result   Type
	keywords []string
}

var typeRules = []typeRule{
	{TypeComparison, []string{"bandingkan", "dibandingkan", "dibanding", "perbandingan", "versus", " vs ", "compare", "comparison"}},
	{TypeRanking, []string{"tertinggi", "terbanyak", "terbesar", "teratas", "terendah", "tersedikit", "terkecil", "peringkat", "ranking", "urutan", "top"}},
	{TypeTrend, []string{"tren", "trend", "perkembangan", "pertumbuhan", "dari tahun ke tahun"}},
	{TypeDistribution, []string{"distribusi", "sebaran", "persebaran", "komposisi", "proporsi", "persentase"}},
}

// quantityWords signal a "how many / how much / total" style question.
var quantityWords = []string{"berapa", "jumlah", "total", "banyaknya", "how many", "how much"}

// whichOneWords signal a "which one" construction ("provinsi mana ...").
var whichOneWords = []string{"mana yang", "yang mana", "provinsi mana", "sektor mana", "which"}

// dataWords mark a query as analytic even without a province or sector hit.
var dataWords = []string{
	"usaha", "bisnis", "umkm", "data", "sensus", "ekonomi", "sektor",
	"provinsi", "statistik", "grafik", "chart", "visualisasi", "berapa",
	"jumlah", "total", "distribusi", "perbandingan", "tertinggi", "terbanyak",
}

// conversationalWords mark greetings and small talk.
var conversationalWords = []string{
	"halo", "hai", "hello", "hi", "selamat pagi", "selamat siang",
	"selamat sore", "selamat malam", "terima kasih", "makasih", "thanks",
	"siapa kamu", "apa kabar", "kamu siapa", "bisa apa",
}

// Classify maps a free-text query to an Intent. It never fails: a query with
// no recognizable signal yields the default distribution intent with empty
// province and sector sets.
func Classify(query string) Intent {
	q := strings.ToLower(query)

	result := Intent{
		Type:        TypeDistribution,
		Provinces:   ExtractProvinces(q),
		Sectors:     ExtractSectors(q),
		Aggregation: "sum",
	}

	for _, rule := range typeRules {
		if containsAny(q, rule.keywords) {
			result.Type = rule.result
			break
		}
	}

	// Quantity-asking override: "berapa jumlah usaha X di Y" is a lookup,
	// not a distribution, whenever exactly one province is named.
	if containsAny(q, quantityWords) {
		switch {
		case len(result.Provinces) == 1 && len(result.Sectors) >= 1:
			result.Type = TypeComparison
		case len(result.Provinces) == 1:
			result.Type = TypeComparison
		case len(result.Provinces) == 0 && len(result.Sectors) >= 1:
			result.Type = TypeDistribution
		}
	}

	// "Which one" with no province named is a ranking question.
	if containsAny(q, whichOneWords) && len(result.Provinces) == 0 {
		result.Type = TypeRanking
	}

	return result
}

// IsDataQuery decides whether a query enters the analytic pipeline at all.
// Only a pure conversational query (small-talk hit, no data keyword, no
// province, no sector) is answered conversationally.
func IsDataQuery(query string) bool {
	q := strings.ToLower(query)

	if containsAny(q, dataWords) {
		return true
	}
	if len(ExtractProvinces(q)) > 0 || len(ExtractSectors(q)) > 0 {
		return true
	}
	if containsAny(q, conversationalWords) {
		return false
	}
	// No signal either way: let the pipeline try and fall back on its own.
	return true
}

// ExtractProvinces scans the lowercased query against the province alias
// table, longest alias first, and returns all distinct canonical names found.
func ExtractProvinces(q string) []string {
	return scanTable(q, census.ProvinceAliases)
}

// ExtractSectors scans the lowercased query against the sector keyword table.
func ExtractSectors(q string) []string {
	return scanTable(q, census.SectorKeywords)
}

// scanTable is the shared longest-match-first substring scan. Result order
// follows the length-descending key list, not query order; duplicates are
// collapsed and shorter aliases of an already-claimed span are skipped by
// blanking the matched text.
func scanTable(q string, table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	var found []string
	seen := make(map[string]bool)
	remaining := q
	for _, key := range keys {
		if !strings.Contains(remaining, key) {
			continue
		}
		remaining = strings.ReplaceAll(remaining, key, " ")
		canonical := table[key]
		if !seen[canonical] {
			seen[canonical] = true
			found = append(found, canonical)
		}
	}
	return found
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
