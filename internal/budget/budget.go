// Package budget selects document content for a category under a token
// budget. Token counts are estimated as len(text)/4; this crude heuristic is
// load-bearing — the 100-token partial-segment rule and the chars-per-token
// back-conversion are calibrated against it, so it must not be swapped for a
// real tokenizer.
package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ingrediq/docintel-cli/internal/model"
	"github.com/ingrediq/docintel-cli/internal/relevance"
)

// DefaultMaxTokens is the default prompt content budget.
const DefaultMaxTokens = 6000

// TruncationMarker is appended whenever a segment is cut to fit the budget,
// so humans reviewing raw prompts can see that content was dropped.
const TruncationMarker = "\n[... content truncated ...]"

// minPartialTokens is the smallest leftover budget worth filling with a
// truncated segment prefix.
const minPartialTokens = 100

// segmentSeparator splits a combined corpus into per-document segments.
const segmentSeparator = "\n\n" + model.DocumentMarker

// EstimateTokens approximates the token count of text as len(text)/4.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// Select combines the documents and returns category-relevant content that
// fits within maxTokens.
func Select(docs []model.Document, category string, maxTokens int) string {
	return SelectFromCorpus(model.CombineDocuments(docs), category, maxTokens)
}

// SelectFromCorpus picks content from an already-combined corpus.
//
// Per-document segments with no category keywords are replaced by a stub
// naming the document, never dropped outright. If the assembled content still
// exceeds the budget, segments are re-ranked by keyword count then density
// and accumulated greedily; the first segment that would overflow is cut to
// the remaining budget when at least 100 tokens remain. The result is
// non-empty for any non-empty corpus.
func SelectFromCorpus(corpus, category string, maxTokens int) string {
	header, segments := splitSegments(corpus)

	var sections []string
	if strings.TrimSpace(header) != "" {
		sections = append(sections, header)
	}

	for _, seg := range segments {
		if relevance.Score(seg, category) > 0 {
			sections = append(sections, seg)
			continue
		}
		firstLine, _, _ := strings.Cut(seg, "\n")
		sections = append(sections, fmt.Sprintf("%s\n\n[Document analyzed but no explicit %s keywords found]", firstLine, category))
	}

	combined := strings.Join(sections, "\n\n")
	if EstimateTokens(combined) <= maxTokens {
		return combined
	}

	return prioritize(sections, category, maxTokens)
}

// splitSegments separates leading header text from per-document segments.
// A corpus without document markers is treated as a single scored segment.
func splitSegments(corpus string) (header string, segments []string) {
	chunks := strings.Split(corpus, segmentSeparator)
	if len(chunks) == 1 {
		return "", []string{corpus}
	}
	segments = make([]string, 0, len(chunks)-1)
	for _, c := range chunks[1:] {
		segments = append(segments, model.DocumentMarker+c)
	}
	return chunks[0], segments
}

type scoredSection struct {
	text    string
	count   int
	density float64
}

// prioritize re-ranks all sections (header included) by keyword relevance
// and packs them greedily into the budget.
func prioritize(sections []string, category string, maxTokens int) string {
	scored := make([]scoredSection, len(sections))
	for i, s := range sections {
		count := relevance.Score(s, category)
		scored[i] = scoredSection{
			text:    s,
			count:   count,
			density: relevance.Density(count, len(s)),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].count != scored[j].count {
			return scored[i].count > scored[j].count
		}
		return scored[i].density > scored[j].density
	})

	var kept []string
	current := 0
	for _, s := range scored {
		tokens := EstimateTokens(s.text)
		if current+tokens <= maxTokens {
			kept = append(kept, s.text)
			current += tokens
			continue
		}
		if remaining := maxTokens - current; remaining > minPartialTokens {
			kept = append(kept, truncate(s.text, remaining*4)+TruncationMarker)
		}
		break
	}

	// A budget too small for even a partial segment still yields a visible,
	// marked prefix of the most relevant section.
	if len(kept) == 0 && len(scored) > 0 {
		kept = append(kept, truncate(scored[0].text, maxTokens*4)+TruncationMarker)
	}

	return strings.Join(kept, "\n\n")
}

func truncate(s string, maxChars int) string {
	if maxChars >= len(s) {
		return s
	}
	return s[:maxChars]
}
