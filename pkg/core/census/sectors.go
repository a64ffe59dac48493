// Package census holds the static vocabulary of the economic census dataset:
// the 21 KBLI category codes, the province name table, and the denormalized
// per-province record type everything downstream operates on.
package census

// SectorCodes is the canonical ordering of the 21 KBLI category codes.
// Matrix enrichment and "all sectors" iteration follow this order.
var SectorCodes = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K",
	"L", "M", "N", "O", "P", "Q", "R", "S", "T", "U",
}

// SectorNames maps each KBLI code to its full category name.
var SectorNames = map[string]string{
	"A": "Pertanian, Kehutanan, dan Perikanan",
	"B": "Pertambangan dan Penggalian",
	"C": "Industri Pengolahan",
	"D": "Pengadaan Listrik, Gas, Uap/Air Panas, dan Udara Dingin",
	"E": "Pengadaan Air, Pengelolaan Sampah, Limbah, dan Daur Ulang",
	"F": "Konstruksi",
	"G": "Perdagangan Besar dan Eceran; Reparasi dan Perawatan Mobil dan Sepeda Motor",
	"H": "Pengangkutan dan Pergudangan",
	"I": "Penyediaan Akomodasi dan Penyediaan Makan Minum",
	"J": "Informasi dan Komunikasi",
	"K": "Aktivitas Keuangan dan Asuransi",
	"L": "Real Estat",
	"M": "Aktivitas Profesional, Ilmiah, dan Teknis",
	"N": "Aktivitas Penyewaan dan Sewa Guna Usaha, Ketenagakerjaan, Agen Perjalanan, dan Penunjang Usaha Lainnya",
	"O": "Administrasi Pemerintahan, Pertahanan, dan Jaminan Sosial Wajib",
	"P": "Pendidikan",
	"Q": "Aktivitas Kesehatan Manusia dan Aktivitas Sosial",
	"R": "Kesenian, Hiburan, dan Rekreasi",
	"S": "Aktivitas Jasa Lainnya",
	"T": "Aktivitas Rumah Tangga sebagai Pemberi Kerja",
	"U": "Aktivitas Badan Internasional dan Badan Ekstra Internasional Lainnya",
}

// SectorShortNames maps each code to a compact label for chart axes.
var SectorShortNames = map[string]string{
	"A": "Pertanian",
	"B": "Pertambangan",
	"C": "Industri Pengolahan",
	"D": "Listrik & Gas",
	"E": "Air & Limbah",
	"F": "Konstruksi",
	"G": "Perdagangan",
	"H": "Transportasi",
	"I": "Akomodasi & Makan Minum",
	"J": "Informasi & Komunikasi",
	"K": "Keuangan & Asuransi",
	"L": "Real Estat",
	"M": "Jasa Profesional",
	"N": "Jasa Penyewaan",
	"O": "Administrasi Pemerintahan",
	"P": "Pendidikan",
	"Q": "Kesehatan",
	"R": "Kesenian & Hiburan",
	"S": "Jasa Lainnya",
	"T": "Rumah Tangga",
	"U": "Badan Internasional",
}

// SectorKeywords maps topical query words to a KBLI code. Detection is a
// longest-match-first substring scan, so multi-word keys win over their parts.
var SectorKeywords = map[string]string{
	"pertanian":        "A",
	"perkebunan":       "A",
	"perikanan":        "A",
	"kehutanan":        "A",
	"peternakan":       "A",
	"pertambangan":     "B",
	"tambang":          "B",
	"penggalian":       "B",
	"migas":            "B",
	"industri":         "C",
	"manufaktur":       "C",
	"pengolahan":       "C",
	"pabrik":           "C",
	"listrik":          "D",
	"energi":           "D",
	"pengelolaan air":  "E",
	"limbah":           "E",
	"sampah":           "E",
	"daur ulang":       "E",
	"konstruksi":       "F",
	"bangunan":         "F",
	"perdagangan":      "G",
	"dagang":           "G",
	"toko":             "G",
	"ritel":            "G",
	"eceran":           "G",
	"bengkel":          "G",
	"transportasi":     "H",
	"angkutan":         "H",
	"logistik":         "H",
	"pergudangan":      "H",
	"hotel":            "I",
	"akomodasi":        "I",
	"restoran":         "I",
	"kuliner":          "I",
	"makan minum":      "I",
	"penginapan":       "I",
	"warung makan":     "I",
	"telekomunikasi":   "J",
	"komunikasi":       "J",
	"internet":         "J",
	"keuangan":         "K",
	"bank":             "K",
	"asuransi":         "K",
	"koperasi":         "K",
	"real estat":       "L",
	"properti":         "L",
	"konsultan":        "M",
	"profesional":      "M",
	"penelitian":       "M",
	"penyewaan":        "N",
	"rental":           "N",
	"agen perjalanan":  "N",
	"travel":           "N",
	"pemerintahan":     "O",
	"pendidikan":       "P",
	"sekolah":          "P",
	"pelatihan":        "P",
	"kesehatan":        "Q",
	"rumah sakit":      "Q",
	"klinik":           "Q",
	"kesenian":         "R",
	"hiburan":          "R",
	"rekreasi":         "R",
	"wisata":           "R",
	"salon":            "S",
	"jasa lainnya":     "S",
	"rumah tangga":     "T",
	"badan internasional": "U",
}

// SectorName returns the full category name, falling back to the code itself
// for anything outside the vocabulary.
func SectorName(code string) string {
	if name, ok := SectorNames[code]; ok {
		return name
	}
	return code
}

// SectorShortName returns the compact chart label for a code.
func SectorShortName(code string) string {
	if name, ok := SectorShortNames[code]; ok {
		return name
	}
	return code
}
