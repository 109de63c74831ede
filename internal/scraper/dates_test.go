package scraper_test

import (
	"testing"
	"time"

	"github.com/diskominfo-jombang/newsmon/internal/scraper"
)

func TestParsePublished(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			name: "rfc3339",
			text: "2024-05-01T08:00:00Z",
			want: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso date only",
			text: "2024-05-01",
			want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "slash date",
			text: "01/05/2024",
			want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "indonesian long date",
			text: "25 Agustus 2025",
			want: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "indonesian date inside surrounding text",
			text: "Diterbitkan pada 3 Mei 2024 oleh redaksi",
			want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "impossible indonesian date",
			text: "31 Februari 2025",
			ok:   false,
		},
		{
			name: "empty",
			text: "",
			ok:   false,
		},
		{
			name: "garbage",
			text: "kemarin sore",
			ok:   false,
		},
	}

	for i := range tests {
		test := &tests[i]
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, ok := scraper.ParsePublished(test.text)
			if ok != test.ok {
				t.Fatalf("ParsePublished(%q) ok = %v, want %v", test.text, ok, test.ok)
			}
			if test.ok && !got.Equal(test.want) {
				t.Errorf("ParsePublished(%q) = %v, want %v", test.text, got, test.want)
			}
		})
	}
}
