// Package tables mines tabular structure out of raw OCR text. It is
// best-effort text mining over whitespace/pipe-delimited lines, not a
// guaranteed-correct table parser: malformed input yields fewer (or zero)
// tables, never an error.
package tables

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ingrediq/docintel-cli/internal/model"
)

// cellSplitRe cuts a line into fields on runs of 2+ spaces, tabs, or pipes.
var cellSplitRe = regexp.MustCompile(`\s{2,}|\t|\|`)

// headerIndicators mark a row as a likely column header when any of them
// appears in its joined text.
var headerIndicators = []string{
	"heavy metal", "symbol", "specification", "vendor", "ingredient",
	"energy", "protein", "fat", "nutrient", "value", "unit",
	"test", "parameter", "method", "result", "limit",
	"name", "description", "code", "date",
}

// Extract scans raw OCR text for blank-line-delimited blocks that look like
// tables and normalizes each into a rectangular ExtractedTable. A block
// qualifies only with at least two rows of at least two cells each.
func Extract(rawText, documentName string) []model.ExtractedTable {
	var out []model.ExtractedTable

	var rows [][]string
	var header []string

	flush := func() {
		if len(rows) >= 2 {
			if table, ok := buildTable(rows, header, documentName); ok {
				out = append(out, table)
			}
		}
		rows = nil
		header = nil
	}

	for _, rawLine := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			flush()
			continue
		}

		cells := splitCells(line)
		if len(cells) < 2 {
			continue
		}

		if header == nil && len(rows) == 0 && isLikelyHeaderRow(cells) {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}
	flush()

	return out
}

// splitCells cuts a line into cleaned, non-empty cell values.
func splitCells(line string) []string {
	var cells []string
	for _, part := range cellSplitRe.Split(line, -1) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if cleaned := cleanCell(part); cleaned != "" {
			cells = append(cells, cleaned)
		}
	}
	return cells
}

// cleanCell strips surrounding whitespace plus leading/trailing dollar signs
// and colons left behind by OCR.
func cleanCell(value string) string {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimLeft(cleaned, "$")
	cleaned = strings.TrimRight(cleaned, "$")
	cleaned = strings.TrimLeft(cleaned, ":")
	cleaned = strings.TrimRight(cleaned, ":")
	return strings.TrimSpace(cleaned)
}

// isLikelyHeaderRow reports whether a row reads like column headers.
func isLikelyHeaderRow(cells []string) bool {
	joined := strings.ToLower(strings.Join(cells, " "))
	for _, indicator := range headerIndicators {
		if strings.Contains(joined, indicator) {
			return true
		}
	}
	return false
}

// buildTable normalizes raw rows into a rectangular table. Column count is
// the mode across rows; longer rows are truncated, shorter ones right-padded,
// and rows under two cells dropped. The result is discarded when no data
// rows survive or the first column is entirely blank.
func buildTable(rawRows [][]string, header []string, documentName string) (model.ExtractedTable, bool) {
	width := modeColumnCount(rawRows)
	if width < 2 {
		return model.ExtractedTable{}, false
	}

	var rows [][]string
	for _, row := range rawRows {
		if len(row) < 2 {
			continue
		}
		normalized := make([]string, width)
		copy(normalized, row)
		rows = append(rows, normalized)
	}
	if len(rows) < 2 {
		return model.ExtractedTable{}, false
	}

	var columns []string
	switch {
	case len(header) == width:
		columns = header
	case rowLooksLikeHeader(rows[0]):
		columns = rows[0]
		rows = rows[1:]
	default:
		columns = syntheticColumns(width)
	}
	columns = dedupeColumns(columns)

	rows = dropBlankRows(rows)
	if len(rows) == 0 || firstColumnBlank(rows) {
		return model.ExtractedTable{}, false
	}

	name := tableName(columns, rows)
	return model.ExtractedTable{
		Name:     name,
		Type:     tableType(columns),
		Columns:  columns,
		Rows:     rows,
		Document: documentName,
	}, true
}

// modeColumnCount returns the most frequent row width; ties go to the width
// seen first.
func modeColumnCount(rows [][]string) int {
	counts := make(map[int]int)
	var order []int
	for _, row := range rows {
		if counts[len(row)] == 0 {
			order = append(order, len(row))
		}
		counts[len(row)]++
	}

	best, bestCount := 0, 0
	for _, width := range order {
		if counts[width] > bestCount {
			best, bestCount = width, counts[width]
		}
	}
	return best
}

// rowLooksLikeHeader treats a digit-free first row as column names.
func rowLooksLikeHeader(row []string) bool {
	for _, cell := range row {
		if strings.ContainsAny(cell, "0123456789") {
			return false
		}
	}
	return true
}

func syntheticColumns(width int) []string {
	cols := make([]string, width)
	for i := range cols {
		cols[i] = fmt.Sprintf("Column_%d", i+1)
	}
	return cols
}

// dedupeColumns replaces empty or colliding column names with their
// positional synthetic name.
func dedupeColumns(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, len(columns))
	for i, col := range columns {
		if col == "" || seen[col] {
			col = fmt.Sprintf("Column_%d", i+1)
		}
		seen[col] = true
		out[i] = col
	}
	return out
}

// dropBlankRows removes rows whose first cell is empty.
func dropBlankRows(rows [][]string) [][]string {
	var kept [][]string
	for _, row := range rows {
		if strings.TrimSpace(row[0]) != "" {
			kept = append(kept, row)
		}
	}
	return kept
}

func firstColumnBlank(rows [][]string) bool {
	for _, row := range rows {
		if strings.TrimSpace(row[0]) != "" {
			return false
		}
	}
	return true
}

// sampleText joins column names and the first few data rows for sniffing.
func sampleText(columns []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, " "))
	for i, row := range rows {
		if i >= 3 {
			break
		}
		b.WriteByte(' ')
		b.WriteString(strings.Join(row, " "))
	}
	return strings.ToLower(b.String())
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// tableName sniffs a descriptive name from column names and leading rows.
func tableName(columns []string, rows [][]string) string {
	sample := sampleText(columns, rows)
	switch {
	case containsAny(sample, []string{"heavy", "metal", "arsenic", "lead", "mercury"}):
		return "Heavy Metals Analysis"
	case containsAny(sample, []string{"energy", "protein", "fat", "carbohydrate", "nutrition"}):
		return "Nutritional Information"
	case containsAny(sample, []string{"test", "method", "specification", "parameter"}):
		return "Test Specifications"
	case containsAny(sample, []string{"allergen", "gluten", "dairy"}):
		return "Allergen Information"
	default:
		return "Document Data Table"
	}
}

// tableType tags the table for grouping in exports.
func tableType(columns []string) string {
	joined := strings.ToLower(strings.Join(columns, " "))
	switch {
	case strings.Contains(joined, "heavy") || strings.Contains(joined, "metal"):
		return "heavy_metals"
	case strings.Contains(joined, "nutrition") || strings.Contains(joined, "energy"):
		return "nutritional"
	case strings.Contains(joined, "test") || strings.Contains(joined, "method"):
		return "testing"
	default:
		return "general"
	}
}
