package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

func TestRenderProducesPDF(t *testing.T) {
	t.Parallel()

	data := &Data{
		GeneratedAt: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
		Days:        7,
		Trend: []domain.DailyCount{
			{Day: "2024-05-01", Count: 2},
			{Day: "2024-05-02", Count: 1},
		},
		Keywords: []domain.KeywordCount{
			{Keyword: "jombang", Count: 3},
			{Keyword: "banjir", Count: 2},
		},
		Recent: []domain.Article{
			{
				Source:      "beritajombang.com",
				Title:       "Banjir melanda Jombang",
				PublishedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
			},
		},
	}

	out, err := Render(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output must start with the PDF magic bytes")
}

func TestRenderEmptySnapshot(t *testing.T) {
	t.Parallel()

	out, err := Render(&Data{GeneratedAt: time.Now(), Days: 7})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
