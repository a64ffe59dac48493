package census

// ProvinceAliases maps lowercase name variants and common abbreviations to
// the canonical uppercase province name used as the record key. Multi-word
// variants must win over their substrings ("papua barat" before "papua"),
// which the longest-match-first scan in the classifier guarantees.
var ProvinceAliases = map[string]string{
	"aceh":                      "ACEH",
	"nanggroe aceh":             "ACEH",
	"sumatera utara":            "SUMATERA UTARA",
	"sumut":                     "SUMATERA UTARA",
	"medan":                     "SUMATERA UTARA",
	"sumatera barat":            "SUMATERA BARAT",
	"sumbar":                    "SUMATERA BARAT",
	"riau":                      "RIAU",
	"kepulauan riau":            "KEPULAUAN RIAU",
	"kepri":                     "KEPULAUAN RIAU",
	"jambi":                     "JAMBI",
	"sumatera selatan":          "SUMATERA SELATAN",
	"sumsel":                    "SUMATERA SELATAN",
	"palembang":                 "SUMATERA SELATAN",
	"bengkulu":                  "BENGKULU",
	"lampung":                   "LAMPUNG",
	"bangka belitung":           "KEPULAUAN BANGKA BELITUNG",
	"babel":                     "KEPULAUAN BANGKA BELITUNG",
	"dki jakarta":               "DKI JAKARTA",
	"jakarta":                   "DKI JAKARTA",
	"dki":                       "DKI JAKARTA",
	"jawa barat":                "JAWA BARAT",
	"jabar":                     "JAWA BARAT",
	"bandung":                   "JAWA BARAT",
	"jawa tengah":               "JAWA TENGAH",
	"jateng":                    "JAWA TENGAH",
	"semarang":                  "JAWA TENGAH",
	"yogyakarta":                "DI YOGYAKARTA",
	"jogja":                     "DI YOGYAKARTA",
	"diy":                       "DI YOGYAKARTA",
	"jawa timur":                "JAWA TIMUR",
	"jatim":                     "JAWA TIMUR",
	"surabaya":                  "JAWA TIMUR",
	"banten":                    "BANTEN",
	"bali":                      "BALI",
	"nusa tenggara barat":       "NUSA TENGGARA BARAT",
	"ntb":                       "NUSA TENGGARA BARAT",
	"lombok":                    "NUSA TENGGARA BARAT",
	"nusa tenggara timur":       "NUSA TENGGARA TIMUR",
	"ntt":                       "NUSA TENGGARA TIMUR",
	"kalimantan barat":          "KALIMANTAN BARAT",
	"kalbar":                    "KALIMANTAN BARAT",
	"kalimantan tengah":         "KALIMANTAN TENGAH",
	"kalteng":                   "KALIMANTAN TENGAH",
	"kalimantan selatan":        "KALIMANTAN SELATAN",
	"kalsel":                    "KALIMANTAN SELATAN",
	"kalimantan timur":          "KALIMANTAN TIMUR",
	"kaltim":                    "KALIMANTAN TIMUR",
	"kalimantan utara":          "KALIMANTAN UTARA",
	"kaltara":                   "KALIMANTAN UTARA",
	"sulawesi utara":            "SULAWESI UTARA",
	"sulut":                     "SULAWESI UTARA",
	"sulawesi tengah":           "SULAWESI TENGAH",
	"sulteng":                   "SULAWESI TENGAH",
	"sulawesi selatan":          "SULAWESI SELATAN",
	"sulsel":                    "SULAWESI SELATAN",
	"makassar":                  "SULAWESI SELATAN",
	"sulawesi tenggara":         "SULAWESI TENGGARA",
	"sultra":                    "SULAWESI TENGGARA",
	"gorontalo":                 "GORONTALO",
	"sulawesi barat":            "SULAWESI BARAT",
	"sulbar":                    "SULAWESI BARAT",
	"maluku utara":              "MALUKU UTARA",
	"malut":                     "MALUKU UTARA",
	"maluku":                    "MALUKU",
	"papua barat":               "PAPUA BARAT",
	"papua":                     "PAPUA",
}

// CanonicalProvince returns the canonical uppercase name for a known alias,
// or "" when the alias is not in the table.
func CanonicalProvince(alias string) string {
	return ProvinceAliases[alias]
}
