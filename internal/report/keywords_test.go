package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diskominfo-jombang/newsmon/internal/report"
)

func TestKeywordExtractor_Top(t *testing.T) {
	t.Parallel()

	titles := []string{
		"Banjir melanda Jombang",
		"Jombang siaga banjir",
		"Festival budaya Jombang",
	}

	extractor := report.NewKeywordExtractor(3, []string{"melanda", "siaga"})
	counts := extractor.Top(titles, 10)

	require.GreaterOrEqual(t, len(counts), 4)

	require.Equal(t, "jombang", counts[0].Keyword)
	require.Equal(t, 3, counts[0].Count)
	require.Equal(t, "banjir", counts[1].Keyword)
	require.Equal(t, 2, counts[1].Count)

	// Remaining singletons rank below and break ties alphabetically.
	require.Equal(t, "budaya", counts[2].Keyword)
	require.Equal(t, 1, counts[2].Count)
	require.Equal(t, "festival", counts[3].Keyword)
	require.Equal(t, 1, counts[3].Count)
}

func TestKeywordExtractor_TopIsDeterministic(t *testing.T) {
	t.Parallel()

	titles := []string{
		"Banjir melanda Jombang",
		"Jombang siaga banjir",
		"Festival budaya Jombang",
	}
	extractor := report.NewKeywordExtractor(3, []string{"melanda", "siaga"})

	first := extractor.Top(titles, 10)
	for range 20 {
		require.Equal(t, first, extractor.Top(titles, 10))
	}
}

func TestKeywordExtractor_TopN(t *testing.T) {
	t.Parallel()

	extractor := report.NewKeywordExtractor(3, nil)
	counts := extractor.Top([]string{"satu dua tiga empat lima enam"}, 2)
	require.Len(t, counts, 2)
}

func TestKeywordExtractor_Tokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lower cases and strips punctuation",
			text: "Banjir, Melanda: JOMBANG!",
			want: []string{"banjir", "melanda", "jombang"},
		},
		{
			name: "drops stop words",
			text: "banjir yang melanda di Jombang",
			want: []string{"banjir", "melanda", "jombang"},
		},
		{
			name: "drops short tokens",
			text: "PN Jombang",
			want: []string{"jombang"},
		},
		{
			name: "digits separate tokens",
			text: "covid19 varian2024baru",
			want: []string{"covid", "varian", "baru"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	extractor := report.NewKeywordExtractor(3, nil)

	for i := range tests {
		test := &tests[i]
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, test.want, extractor.Tokenize(test.text))
		})
	}
}
