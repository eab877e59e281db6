// Package relevance scores text against category keyword sets and orders
// categories by aggregate relevance. Scoring is raw case-insensitive
// substring counting with no tokenization or word-boundary checks.
package relevance

import (
	"sort"
	"strings"

	"github.com/ingrediq/docintel-cli/internal/catalog"
)

// Score returns the total number of case-insensitive occurrences of the
// category's keywords in text. Empty text scores 0.
func Score(text, category string) int {
	return CountKeywords(text, catalog.Keywords(category))
}

// CountKeywords sums substring occurrence counts for each keyword in text.
func CountKeywords(text string, keywords []string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, kw := range keywords {
		total += strings.Count(lower, strings.ToLower(kw))
	}
	return total
}

// Density returns keyword hits per 1000 characters of text.
func Density(keywordCount, textLen int) float64 {
	if textLen <= 0 {
		return 0
	}
	return float64(keywordCount) * 1000 / float64(textLen)
}

// Order sorts categories by their keyword score over the whole corpus,
// highest first. The sort is stable: ties keep the input relative order.
// Zero-score categories are still returned, last.
func Order(corpus string, categories []string) []string {
	scores := make(map[string]int, len(categories))
	for _, cat := range categories {
		scores[cat] = Score(corpus, cat)
	}

	ordered := make([]string, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})
	return ordered
}
