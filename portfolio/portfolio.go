// Package portfolio loads the portfolio CSV that maps tech stacks to
// showcase links, used to attach relevant work samples to generated emails.
package portfolio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Entry is one row of the portfolio: a tech stack description and the
// links that showcase work done with it.
type Entry struct {
	Techstack string
	Links     string
}

// Load reads a portfolio CSV with Techstack,Links columns. A header row is
// skipped when present; blank rows are ignored.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		stack := strings.TrimSpace(rec[0])
		links := strings.TrimSpace(rec[1])
		if i == 0 && strings.EqualFold(stack, "techstack") {
			continue
		}
		if stack == "" && links == "" {
			continue
		}
		entries = append(entries, Entry{Techstack: stack, Links: links})
	}
	return entries, nil
}
