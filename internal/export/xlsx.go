// Package export renders completed runs as XLSX workbooks, CSV, JSON, and
// plain text for downstream consumers.
package export

import (
	"fmt"
	"regexp"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ingrediq/docintel-cli/internal/analysis"
	"github.com/ingrediq/docintel-cli/internal/catalog"
	"github.com/ingrediq/docintel-cli/internal/model"
	"github.com/ingrediq/docintel-cli/internal/tables"
)

// Excel sheet names cap out at 31 characters and reject most punctuation.
var sheetNameRe = regexp.MustCompile(`[^\w\s-]`)

var titleCaser = cases.Title(language.English)

func sheetName(name string, fallback string) string {
	cleaned := sheetNameRe.ReplaceAllString(name, "")
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

func categoryTitle(category string) string {
	if category == catalog.GMO {
		return "GMO"
	}
	return titleCaser.String(category)
}

// BuildWorkbook assembles an XLSX workbook for a completed run: a summary
// sheet, one sheet per analyzed category with the full canonical question
// list, and one sheet per document holding its extracted tables.
func BuildWorkbook(docs []model.Document, result *model.RunResult) (*xlsx.File, error) {
	if result == nil {
		return nil, eris.New("export: run has no result")
	}

	f := xlsx.NewFile()

	if err := addSummarySheet(f, result); err != nil {
		return nil, err
	}

	for _, category := range result.CategoryOrder {
		records, ok := result.Analysis[category]
		if !ok {
			continue
		}
		if err := addCategorySheet(f, category, records); err != nil {
			return nil, err
		}
	}

	for i, doc := range docs {
		extracted := tables.Extract(doc.RawText, doc.DisplayName)
		if len(extracted) == 0 {
			continue
		}
		name := sheetName(doc.DisplayName, fmt.Sprintf("Document_%d", i+1))
		if err := addTablesSheet(f, name, extracted); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(path string, docs []model.Document, result *model.RunResult) error {
	f, err := BuildWorkbook(docs, result)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook %s", path)
	}
	return nil
}

func addSummarySheet(f *xlsx.File, result *model.RunResult) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Category", "Questions", "Answered", "Coverage"} {
		header.AddCell().Value = h
	}

	for _, cs := range result.Summary.Categories {
		row := sheet.AddRow()
		row.AddCell().Value = categoryTitle(cs.Category)
		row.AddCell().SetInt(cs.Total)
		row.AddCell().SetInt(cs.Answered)
		coverage := 0.0
		if cs.Total > 0 {
			coverage = float64(cs.Answered) / float64(cs.Total)
		}
		row.AddCell().Value = fmt.Sprintf("%.0f%%", coverage*100)
	}

	totals := sheet.AddRow()
	totals.AddCell().Value = "Total"
	totals.AddCell().SetInt(result.Summary.TotalRecords)
	totals.AddCell().SetInt(result.Summary.TotalAnswered)
	totals.AddCell().Value = ""

	meta := sheet.AddRow()
	meta.AddCell().Value = "Model"
	meta.AddCell().Value = result.Model

	return nil
}

func addCategorySheet(f *xlsx.File, category string, records []model.AnalysisRecord) error {
	sheet, err := f.AddSheet(sheetName(categoryTitle(category), category))
	if err != nil {
		return eris.Wrapf(err, "export: add sheet %s", category)
	}

	header := sheet.AddRow()
	for _, h := range []string{"Question", "Answer", "Source"} {
		header.AddCell().Value = h
	}

	// Every canonical question gets a row, matched or not.
	for _, res := range analysis.Resolve(catalog.Questions(category), records) {
		row := sheet.AddRow()
		row.AddCell().Value = res.Question
		if res.Record != nil {
			row.AddCell().Value = res.Record.Answer
			row.AddCell().Value = res.Record.Source
		} else {
			row.AddCell().Value = model.NoDataAnswer
			row.AddCell().Value = model.UnspecifiedSource
		}
	}
	return nil
}

func addTablesSheet(f *xlsx.File, name string, extracted []model.ExtractedTable) error {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return eris.Wrapf(err, "export: add sheet %s", name)
	}

	for i, table := range extracted {
		if i > 0 {
			sheet.AddRow() // spacer between tables
		}

		title := sheet.AddRow()
		title.AddCell().Value = table.Name

		header := sheet.AddRow()
		for _, col := range table.Columns {
			header.AddCell().Value = col
		}
		for _, dataRow := range table.Rows {
			row := sheet.AddRow()
			for _, cell := range dataRow {
				row.AddCell().Value = cell
			}
		}
	}
	return nil
}
