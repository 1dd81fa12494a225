package study

// ImportResult holds the outcome of a bulk import.
type ImportResult struct {
	Added   int
	Skipped int
	Invalid int
}
