package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/battincik/superthanks-calc/pkg/finding"
)

// Report is the persisted result of one scan.
type Report struct {
	URL         string             `json:"url"`
	VideoID     string             `json:"videoId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Totals      map[string]float64 `json:"totals"`
	Count       int                `json:"count"`
	Findings    []Entry            `json:"findings"`
}

// Entry is one finding as it appears in the report, amounts rounded to
// 2 decimals.
type Entry struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Author   string  `json:"author"`
	Snippet  string  `json:"snippet"`
}

// Build snapshots the run state into a report. Findings keep their order
// of first observation.
func Build(state *finding.RunState, pageURL, videoID string) *Report {
	findings := state.Findings()
	entries := make([]Entry, 0, len(findings))
	for _, f := range findings {
		entries = append(entries, Entry{
			Currency: f.Currency,
			Amount:   f.Amount.Round(2).InexactFloat64(),
			Author:   f.Author,
			Snippet:  f.Snippet,
		})
	}
	return &Report{
		URL:         pageURL,
		VideoID:     videoID,
		GeneratedAt: time.Now().UTC(),
		Totals:      state.SnapshotTotals(),
		Count:       len(entries),
		Findings:    entries,
	}
}

// WriteTo writes the report as indented JSON. Totals keys come out
// lexicographically sorted because encoding/json sorts map keys.
func (r *Report) WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// Write persists the report to path.
func (r *Report) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := r.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}
