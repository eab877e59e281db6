package model

import "strings"

// NoDataAnswer is the sentinel answer the model is instructed to return when
// a question cannot be answered from the documents.
const NoDataAnswer = "No data available to answer this question"

// UnspecifiedSource is the default provenance when the model omits a Source line.
const UnspecifiedSource = "Source not specified"

// AnalysisRecord is one (question, answer, source) triple recovered from the
// model's answer sheet. Question may be a paraphrase of a canonical question.
type AnalysisRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Source   string `json:"source"`
}

// HasData reports whether the record carries a real answer rather than the
// no-data sentinel.
func (r AnalysisRecord) HasData() bool {
	return !strings.Contains(r.Answer, "No data available")
}

// AnalysisResult maps a category to the ordered records parsed for it.
// A key present with zero records means the category was analyzed and
// produced no structured results; an absent key means it was never analyzed.
type AnalysisResult map[string][]AnalysisRecord

// Answered counts records with real answers for one category.
func (ar AnalysisResult) Answered(category string) int {
	n := 0
	for _, rec := range ar[category] {
		if rec.HasData() {
			n++
		}
	}
	return n
}

// CategorySummary describes one category's outcome in a run.
type CategorySummary struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Answered int    `json:"answered"`
}

// RunSummary aggregates per-category outcomes for a completed run.
type RunSummary struct {
	Categories    []CategorySummary `json:"categories"`
	TotalRecords  int               `json:"total_records"`
	TotalAnswered int               `json:"total_answered"`
}

// Summarize computes a RunSummary over the given category order. Categories
// absent from the result are skipped.
func (ar AnalysisResult) Summarize(order []string) RunSummary {
	var s RunSummary
	for _, cat := range order {
		recs, ok := ar[cat]
		if !ok {
			continue
		}
		answered := ar.Answered(cat)
		s.Categories = append(s.Categories, CategorySummary{
			Category: cat,
			Total:    len(recs),
			Answered: answered,
		})
		s.TotalRecords += len(recs)
		s.TotalAnswered += answered
	}
	return s
}
