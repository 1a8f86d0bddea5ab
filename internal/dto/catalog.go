package dto

// ImportResult summarises a catalog file ingestion.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
