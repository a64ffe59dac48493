package narrative

import (
	"fmt"
	"strings"

	"census_insight/pkg/core/intent"
)

// Fallback renders the deterministic, template-based answer for one
// aggregate type. It consumes only the statistical summary, never the
// external text-generation capability.
func Fallback(req Request) Output {
	out := Output{UsedFallback: true}
	res := req.Statistics

	if res == nil || !res.Available {
		out.Narrative = "Maaf, tidak ada analisis yang dapat dihitung untuk pertanyaan ini."
		if res != nil && res.Note != "" {
			out.Narrative = fmt.Sprintf("Maaf, analisis tidak tersedia: %s.", res.Note)
		}
		return out
	}

	switch res.Type {
	case intent.TypeRanking:
		var b strings.Builder
		b.WriteString("**Peringkat provinsi berdasarkan jumlah usaha:**\n\n")
		for i, e := range res.TopProvinces {
			fmt.Fprintf(&b, "%d. %s — %s usaha (%.1f%%)\n", i+1, e.Province, formatInt(e.Total), e.Percentage)
		}
		fmt.Fprintf(&b, "\nTiga provinsi teratas mencakup %.1f%% dari total %s usaha.", res.Concentration, formatInt(res.GrandTotal))
		out.Narrative = b.String()
		if len(res.TopProvinces) > 0 {
			top := res.TopProvinces[0]
			out.Insights = append(out.Insights,
				fmt.Sprintf("%s memimpin dengan %.1f%% dari total usaha.", top.Province, top.Percentage),
				fmt.Sprintf("Konsentrasi tiga besar mencapai %.1f%%.", res.Concentration))
		}

	case intent.TypeComparison, intent.TypeOverview:
		var b strings.Builder
		b.WriteString("**Perbandingan jumlah usaha antar provinsi:**\n\n")
		if res.Max != nil {
			fmt.Fprintf(&b, "- Tertinggi: %s dengan %s usaha\n", res.Max.Province, formatInt(res.Max.Total))
		}
		if res.Min != nil {
			fmt.Fprintf(&b, "- Terendah: %s dengan %s usaha\n", res.Min.Province, formatInt(res.Min.Total))
		}
		fmt.Fprintf(&b, "- Rata-rata: %s usaha dari %d provinsi\n", formatInt(int(res.Average)), res.Count)
		fmt.Fprintf(&b, "- Total keseluruhan: %s usaha", formatInt(res.GrandTotal))
		out.Narrative = b.String()
		if res.Max != nil && res.Min != nil && res.Min.Total > 0 {
			ratio := float64(res.Max.Total) / float64(res.Min.Total)
			out.Insights = append(out.Insights,
				fmt.Sprintf("Selisih tertinggi-terendah mencapai %.1f kali lipat.", ratio))
		}

	case intent.TypeDistribution:
		var b strings.Builder
		b.WriteString("**Distribusi usaha per sektor:**\n\n")
		limit := len(res.DistributionDetail)
		if limit > 5 {
			limit = 5
		}
		for _, s := range res.DistributionDetail[:limit] {
			fmt.Fprintf(&b, "- %s: %s usaha (%.1f%%)\n", s.Name, formatInt(s.Total), s.Percentage)
		}
		if res.TopSector != nil {
			fmt.Fprintf(&b, "\nSektor %s mendominasi dengan %.1f%% dari total usaha.", res.TopSector.Name, res.TopSector.Percentage)
			out.Insights = append(out.Insights,
				fmt.Sprintf("Sektor %s adalah yang terbesar (%.1f%%).", res.TopSector.Name, res.TopSector.Percentage))
		}
		out.Narrative = b.String()

	case intent.TypeProvinceDetail:
		var b strings.Builder
		d := res.Detail
		fmt.Fprintf(&b, "**Profil usaha %s:**\n\nTotal %s usaha tercatat.\n\nSektor terbesar:\n", d.Province, formatInt(d.Total))
		limit := len(d.Sectors)
		if limit > 5 {
			limit = 5
		}
		for _, s := range d.Sectors[:limit] {
			fmt.Fprintf(&b, "- %s: %s usaha (%.1f%%)\n", s.Name, formatInt(s.Total), s.Percentage)
		}
		for _, lq := range res.LocationQuotients {
			if lq.LQ > 1.5 {
				out.Insights = append(out.Insights,
					fmt.Sprintf("%s menunjukkan spesialisasi relatif pada sektor %s (LQ %.2f).", d.Province, lq.Name, lq.LQ))
			}
		}
		out.Narrative = b.String()

	case intent.TypeTrend:
		out.Narrative = "Data sensus hanya mencakup satu tahun, sehingga analisis tren belum dapat dihitung. Silakan ajukan pertanyaan peringkat, perbandingan, atau distribusi."

	default:
		out.Narrative = "Maaf, bentuk analisis ini belum didukung."
	}

	return out
}

// FallbackPolicies returns generic but analysis-aware recommendations when
// neither the narrative model nor the policy agent produced any.
func FallbackPolicies(req Request) []string {
	res := req.Statistics
	if res == nil || !res.Available {
		return nil
	}

	var policies []string
	switch res.Type {
	case intent.TypeRanking:
		if res.Concentration > 50 {
			policies = append(policies,
				"Dorong pemerataan melalui insentif investasi di provinsi di luar tiga besar.")
		}
		policies = append(policies,
			"Perkuat infrastruktur pendukung usaha di provinsi dengan jumlah usaha rendah.")
	case intent.TypeComparison, intent.TypeOverview:
		policies = append(policies,
			"Gunakan provinsi berkinerja tertinggi sebagai acuan praktik baik bagi provinsi lain.",
			"Prioritaskan program kemitraan usaha antar provinsi dengan kesenjangan terbesar.")
	case intent.TypeDistribution:
		if res.TopSector != nil {
			policies = append(policies,
				fmt.Sprintf("Jaga daya saing sektor %s sebagai penopang utama.", res.TopSector.Name))
		}
		policies = append(policies,
			"Diversifikasi dukungan pembiayaan ke sektor dengan kontribusi kecil namun potensial.")
	case intent.TypeProvinceDetail:
		for _, lq := range res.LocationQuotients {
			if lq.LQ > 1.5 {
				policies = append(policies,
					fmt.Sprintf("Kembangkan klaster usaha sektor %s yang menjadi keunggulan daerah.", lq.Name))
				break
			}
		}
		policies = append(policies,
			"Sederhanakan perizinan usaha mikro dan kecil di tingkat provinsi.")
	}
	return policies
}

// formatInt renders an integer with Indonesian-style thousand separators.
func formatInt(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return sign + s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ".")
}
