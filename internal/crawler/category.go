package crawler

import "strings"

// CategoryDefault is assigned when no category keyword matches a title.
const CategoryDefault = "Lainnya"

// categoryRules maps category keywords to category names. Rules are
// checked in order and the first match wins, so the order is part of the
// categorization contract.
var categoryRules = []struct {
	name     string
	keywords []string
}{
	{"Pemerintahan", []string{
		"bupati", "dprd", "pemkab", "peraturan", "perda", "kpu", "pilkada",
		"pemerintah", "kabupaten", "sekda",
	}},
	{"Ekonomi", []string{
		"ekonomi", "investasi", "pasar", "umkm", "industri", "pertanian",
		"ekspor", "impor",
	}},
	{"Olahraga", []string{
		"olahraga", "sepakbola", "voli", "turnamen", "liga", "futsal",
		"piala", "pertandingan",
	}},
	{"Hukum", []string{
		"hukum", "kriminal", "polisi", "pengadilan", "kasus", "kejaksaan",
		"penangkapan", "sidang",
	}},
}

// Categorize assigns a category to an article title by keyword match.
func Categorize(title string) string {
	if title == "" {
		return CategoryDefault
	}

	lowered := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.name
			}
		}
	}
	return CategoryDefault
}
