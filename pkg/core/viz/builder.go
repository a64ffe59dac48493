// Package viz maps an enriched analysis into declarative chart descriptors
// for client-side rendering. Building is a pure function of the analysis
// data; the generated chart IDs are the only non-deterministic field.
package viz

import (
	"fmt"

	"github.com/google/uuid"

	"census_insight/pkg/core/aggregate"
	"census_insight/pkg/core/analysis"
	"census_insight/pkg/core/intent"
)

// Chart types understood by the frontend.
const (
	TypeBar     = "bar"
	TypePie     = "pie"
	TypeHeatmap = "heatmap"
	TypeRadar   = "radar"
)

// PieEntry is one slice of a pie chart.
type PieEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Heatmap carries the matrix triples with their axis labels.
type Heatmap struct {
	XLabels []string `json:"x_labels"`
	YLabels []string `json:"y_labels"`
	Values  [][3]int `json:"values"`
}

// Radar carries per-indicator values on a shared scale.
type Radar struct {
	Indicators []string  `json:"indicators"`
	Values     []float64 `json:"values"`
	Max        float64   `json:"max"`
}

// Chart is one declarative chart specification.
type Chart struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Categories []string   `json:"categories,omitempty"`
	Series     []float64  `json:"series,omitempty"`
	SeriesName string     `json:"series_name,omitempty"`
	Pie        []PieEntry `json:"pie,omitempty"`
	Heatmap    *Heatmap   `json:"heatmap,omitempty"`
	Radar      *Radar     `json:"radar,omitempty"`
}

// Build produces the chart list for one analysis/aggregate pair.
func Build(res *analysis.Result, agg *aggregate.Result) []Chart {
	if res == nil || agg == nil || !res.Available {
		return nil
	}

	var charts []Chart
	switch agg.Type {
	case intent.TypeRanking:
		if c := rankingBar(agg); c != nil {
			charts = append(charts, *c)
		}
	case intent.TypeComparison, intent.TypeOverview:
		if c := comparisonBar(agg); c != nil {
			charts = append(charts, *c)
		}
	case intent.TypeDistribution:
		if c := distributionPie(res); c != nil {
			charts = append(charts, *c)
		}
	case intent.TypeProvinceDetail:
		if c := detailBar(res); c != nil {
			charts = append(charts, *c)
		}
	}

	if res.Matrix != nil && len(res.Matrix.Values) > 0 {
		charts = append(charts, Chart{
			ID:    uuid.NewString(),
			Type:  TypeHeatmap,
			Title: "Sebaran Usaha per Sektor dan Provinsi",
			Heatmap: &Heatmap{
				XLabels: res.Matrix.Sectors,
				YLabels: res.Matrix.Provinces,
				Values:  res.Matrix.Values,
			},
		})
	}
	if len(res.LocationQuotients) > 0 {
		charts = append(charts, lqRadar(res))
	}
	return charts
}

func rankingBar(agg *aggregate.Result) *Chart {
	if len(agg.Ranking) == 0 {
		return nil
	}
	c := &Chart{
		ID:         uuid.NewString(),
		Type:       TypeBar,
		Title:      fmt.Sprintf("Top %d Provinsi berdasarkan Jumlah Usaha", len(agg.Ranking)),
		SeriesName: "Jumlah Usaha",
	}
	for _, e := range agg.Ranking {
		c.Categories = append(c.Categories, e.Province)
		c.Series = append(c.Series, float64(e.Total))
	}
	return c
}

func comparisonBar(agg *aggregate.Result) *Chart {
	if len(agg.Comparison) == 0 {
		return nil
	}
	c := &Chart{
		ID:         uuid.NewString(),
		Type:       TypeBar,
		Title:      "Perbandingan Jumlah Usaha antar Provinsi",
		SeriesName: "Jumlah Usaha",
	}
	for _, e := range agg.Comparison {
		c.Categories = append(c.Categories, e.Province)
		c.Series = append(c.Series, float64(e.Total))
	}
	return c
}

func distributionPie(res *analysis.Result) *Chart {
	if len(res.DistributionDetail) == 0 {
		return nil
	}
	c := &Chart{
		ID:    uuid.NewString(),
		Type:  TypePie,
		Title: "Distribusi Usaha per Sektor",
	}
	for _, s := range res.DistributionDetail {
		c.Pie = append(c.Pie, PieEntry{Name: s.Name, Value: float64(s.Total)})
	}
	return c
}

func detailBar(res *analysis.Result) *Chart {
	if res.Detail == nil || len(res.Detail.Sectors) == 0 {
		return nil
	}
	c := &Chart{
		ID:         uuid.NewString(),
		Type:       TypeBar,
		Title:      fmt.Sprintf("Komposisi Sektor Usaha di %s", res.Detail.Province),
		SeriesName: "Jumlah Usaha",
	}
	limit := len(res.Detail.Sectors)
	if limit > 10 {
		limit = 10
	}
	for _, s := range res.Detail.Sectors[:limit] {
		c.Categories = append(c.Categories, s.Name)
		c.Series = append(c.Series, float64(s.Total))
	}
	return c
}

// lqRadar plots up to 8 location quotients; the axis max is scaled to the
// largest LQ so specialization above 1.0 stays readable.
func lqRadar(res *analysis.Result) Chart {
	entries := res.LocationQuotients
	if len(entries) > 8 {
		entries = entries[:8]
	}
	radar := &Radar{Max: 1}
	for _, e := range entries {
		radar.Indicators = append(radar.Indicators, e.Name)
		radar.Values = append(radar.Values, e.LQ)
		if e.LQ > radar.Max {
			radar.Max = e.LQ
		}
	}
	title := "Location Quotient per Sektor"
	if res.Detail != nil {
		title = fmt.Sprintf("Location Quotient Sektor di %s", res.Detail.Province)
	}
	return Chart{
		ID:    uuid.NewString(),
		Type:  TypeRadar,
		Title: title,
		Radar: radar,
	}
}
