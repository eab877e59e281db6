package model

// ExtractedTable is a typed table mined from raw OCR text. Every row has
// exactly len(Columns) cells and column names are unique.
type ExtractedTable struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	Document string     `json:"document"`
}
