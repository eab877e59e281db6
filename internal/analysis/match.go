package analysis

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ingrediq/docintel-cli/internal/model"
)

// Resolution pairs a canonical question with the record resolved for it.
// Record is nil when no match was found; the presentation layer must still
// render the question with an explicit "not analyzed" placeholder.
type Resolution struct {
	Question string
	Record   *model.AnalysisRecord
}

var foldCaser = cases.Fold()

func normalizeQuestion(q string) string {
	return strings.TrimSpace(foldCaser.String(q))
}

// Resolve matches every canonical question to a parsed record. The output
// has exactly one entry per canonical question, in canonical order; nothing
// is dropped, reordered, or deduplicated. Matching cascade, first hit wins:
// exact case-folded equality, substring containment either way (first record
// in order), then the record at the same index. The substring tier is
// deliberately permissive to tolerate model paraphrasing.
func Resolve(canonical []string, records []model.AnalysisRecord) []Resolution {
	byKey := make(map[string]int, len(records))
	var keyOrder []string
	for i, rec := range records {
		key := normalizeQuestion(rec.Question)
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = i // later duplicates win, first position kept
	}

	out := make([]Resolution, 0, len(canonical))
	for i, question := range canonical {
		res := Resolution{Question: question}

		key := normalizeQuestion(question)
		if idx, ok := byKey[key]; ok {
			res.Record = &records[idx]
		}

		if res.Record == nil {
			for _, recKey := range keyOrder {
				if strings.Contains(recKey, key) || strings.Contains(key, recKey) {
					idx := byKey[recKey]
					res.Record = &records[idx]
					break
				}
			}
		}

		if res.Record == nil && i < len(records) {
			res.Record = &records[i]
		}

		out = append(out, res)
	}
	return out
}
