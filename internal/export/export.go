package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ingrediq/docintel-cli/internal/analysis"
	"github.com/ingrediq/docintel-cli/internal/catalog"
	"github.com/ingrediq/docintel-cli/internal/model"
)

// AnalysisCSV writes a completed run as flat CSV rows, one per canonical
// question: Category, Question, Answer, Source.
func AnalysisCSV(w io.Writer, result *model.RunResult) error {
	if result == nil {
		return eris.New("export: run has no result")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Category", "Question", "Answer", "Source"}); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for _, category := range result.CategoryOrder {
		records, ok := result.Analysis[category]
		if !ok {
			continue
		}
		for _, res := range analysis.Resolve(catalog.Questions(category), records) {
			answer, source := model.NoDataAnswer, model.UnspecifiedSource
			if res.Record != nil {
				answer, source = res.Record.Answer, res.Record.Source
			}
			if err := cw.Write([]string{categoryTitle(category), res.Question, answer, source}); err != nil {
				return eris.Wrap(err, "export: write csv row")
			}
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// analysisDocument is the JSON export shape for one run.
type analysisDocument struct {
	GeneratedOn   string               `json:"generated_on"`
	Model         string               `json:"model"`
	CategoryOrder []string             `json:"category_order"`
	Summary       model.RunSummary     `json:"summary"`
	Analysis      model.AnalysisResult `json:"analysis"`
}

// AnalysisJSON renders a completed run as indented JSON.
func AnalysisJSON(result *model.RunResult) ([]byte, error) {
	if result == nil {
		return nil, eris.New("export: run has no result")
	}
	doc := analysisDocument{
		GeneratedOn:   time.Now().UTC().Format("2006-01-02 15:04:05"),
		Model:         result.Model,
		CategoryOrder: result.CategoryOrder,
		Summary:       result.Summary,
		Analysis:      result.Analysis,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	return out, eris.Wrap(err, "export: marshal analysis")
}

// OCRText renders extracted documents as one markdown report.
func OCRText(docs []model.Document) string {
	var b strings.Builder
	b.WriteString("# Document Intelligence System - OCR Results\n\n")
	b.WriteString(fmt.Sprintf("Generated on: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Total Documents Processed: %d\n\n", len(docs)))
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	for i, doc := range docs {
		b.WriteString(fmt.Sprintf("## Document %d: %s\n\n", i+1, doc.DisplayName))
		b.WriteString(fmt.Sprintf("**File:** %s\n\n", doc.DisplayName))
		b.WriteString(doc.RawText)
		b.WriteString("\n\n")
	}
	return b.String()
}

// ocrDocument is the JSON export shape for OCR output.
type ocrDocument struct {
	Metadata  ocrMetadata `json:"metadata"`
	Documents []ocrEntry  `json:"documents"`
}

type ocrMetadata struct {
	GeneratedOn     string `json:"generated_on"`
	TotalDocuments  int    `json:"total_documents"`
	TotalCharacters int    `json:"total_characters"`
}

type ocrEntry struct {
	Index    int    `json:"index"`
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

// OCRJSON renders extracted documents as indented JSON with metadata.
func OCRJSON(docs []model.Document) ([]byte, error) {
	out := ocrDocument{
		Metadata: ocrMetadata{
			GeneratedOn:    time.Now().UTC().Format("2006-01-02 15:04:05"),
			TotalDocuments: len(docs),
		},
		Documents: make([]ocrEntry, 0, len(docs)),
	}
	for i, doc := range docs {
		out.Metadata.TotalCharacters += len(doc.RawText)
		out.Documents = append(out.Documents, ocrEntry{
			Index:    i + 1,
			FileName: doc.DisplayName,
			Content:  doc.RawText,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	return data, eris.Wrap(err, "export: marshal ocr results")
}
