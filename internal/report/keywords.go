// Package report provides read-only reporting over the article store:
// daily trend, keyword frequencies, recent articles and source health.
package report

import (
	"regexp"
	"sort"
	"strings"

	"github.com/diskominfo-jombang/newsmon/internal/domain"
)

// tokenRe matches runs of Unicode letters; digits and punctuation separate
// tokens.
var tokenRe = regexp.MustCompile(`\p{L}+`)

// defaultStopwords is the built-in Indonesian stop-word list applied to
// title tokens before counting.
var defaultStopwords = strings.Fields(`
yang dan di ke dari untuk dengan pada adalah itu ini atau juga tidak karena
sebagai dalam akan oleh sudah bisa kami kita mereka saya aku ia para serta
hanya lebih masih agar namun sehingga telah pun suatu tiap kepada tanpa antara
kalau bila jadi tentang sebuah lah kah si punya ada bukan supaya saat sedang
belum baru lama usai kemudian lalu maka hingga setelah sebelum meski meskipun
jika ketika dimana demi per atas bawah
`)

// KeywordExtractor tokenizes article titles and counts token frequencies.
// Tokenization rules (case folding, minimum token length, stop-words) are
// fixed at construction and documented in the configuration defaults.
type KeywordExtractor struct {
	stopwords      map[string]struct{}
	minTokenLength int
}

// NewKeywordExtractor creates an extractor with the built-in Indonesian
// stop-words plus extra, dropping tokens shorter than minTokenLength runes.
func NewKeywordExtractor(minTokenLength int, extra []string) *KeywordExtractor {
	stopwords := make(map[string]struct{}, len(defaultStopwords)+len(extra))
	for _, w := range defaultStopwords {
		stopwords[w] = struct{}{}
	}
	for _, w := range extra {
		stopwords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	return &KeywordExtractor{
		stopwords:      stopwords,
		minTokenLength: minTokenLength,
	}
}

// Tokenize lower-cases text and splits it into letter-run tokens, dropping
// stop-words and tokens below the minimum length.
func (e *KeywordExtractor) Tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len([]rune(tok)) < e.minTokenLength {
			continue
		}
		if _, stop := e.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Top counts token frequencies across titles and returns the topN most
// frequent keywords, ordered by count descending then keyword ascending so
// the result is deterministic.
func (e *KeywordExtractor) Top(titles []string, topN int) []domain.KeywordCount {
	freq := make(map[string]int)
	for _, title := range titles {
		for _, tok := range e.Tokenize(title) {
			freq[tok]++
		}
	}

	counts := make([]domain.KeywordCount, 0, len(freq))
	for keyword, count := range freq {
		counts = append(counts, domain.KeywordCount{Keyword: keyword, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Keyword < counts[j].Keyword
	})

	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}
