package domain

// ImportResult is the summary returned for one import request. It is never
// stored.
type ImportResult struct {
	Success  bool     `json:"success"`
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}
