package finding

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/battincik/superthanks-calc/pkg/amount"
)

// maxSnippetRunes caps how much of the source text a Finding retains.
const maxSnippetRunes = 200

// Finding is one extracted (currency, amount, author, snippet)
// observation. Never mutated once appended to a RunState.
type Finding struct {
	Currency string
	Amount   decimal.Decimal
	Author   string
	Snippet  string
}

// BlockMeta carries the caller-supplied context for a text block.
type BlockMeta struct {
	Author string
	Badge  bool // donation-badge marker detected alongside the block
}

// fingerprint derives the dedup key. Two findings with the same
// currency, 2-decimal amount, trimmed author and trimmed snippet are the
// same observation.
func (f Finding) fingerprint() string {
	h := sha256.New()
	for _, part := range []string{
		f.Currency,
		f.Amount.StringFixed(2),
		strings.TrimSpace(f.Author),
		strings.TrimSpace(f.Snippet),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Snippet collapses whitespace and truncates the text to the retained
// snippet length. Truncation is rune-based so multi-byte comment text
// never splits mid-character.
func Snippet(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) > maxSnippetRunes {
		return string(runes[:maxSnippetRunes])
	}
	return collapsed
}

// RunState holds all mutable state for a single scan: the seen-set, the
// ordered findings log and the per-currency running totals. All mutation
// goes through Ingest under one mutex, so a parallel collector can share
// a RunState safely; reads return copies.
type RunState struct {
	mu       sync.Mutex
	detector *Detector
	seen     map[string]struct{}
	findings []Finding
	totals   map[string]decimal.Decimal
}

// NewRunState creates an empty run state gated by the given detector.
func NewRunState(detector *Detector) *RunState {
	return &RunState{
		detector: detector,
		seen:     make(map[string]struct{}),
		totals:   make(map[string]decimal.Decimal),
	}
}

// Ingest scans one text block and returns only the findings that were
// new to this run. Blocks that fail detection contribute nothing;
// matches whose number does not parse are skipped. Nothing here is
// fatal.
func (s *RunState) Ingest(block string, meta BlockMeta) []Finding {
	if !s.detector.Detect(block, meta) {
		return nil
	}

	snippet := Snippet(block)

	s.mu.Lock()
	defer s.mu.Unlock()

	var added []Finding
	for _, m := range amount.Matches(block) {
		code := amount.NormalizeCurrency(m.Currency)
		if code == "" {
			continue
		}
		value, err := amount.Parse(m.Number)
		if err != nil {
			continue
		}
		f := Finding{Currency: code, Amount: value, Author: meta.Author, Snippet: snippet}
		key := f.fingerprint()
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		s.findings = append(s.findings, f)
		s.totals[code] = s.totals[code].Add(value)
		added = append(added, f)
	}
	return added
}

// SnapshotTotals returns the per-currency totals rounded to 2 decimals.
// Rounding happens only here; internal sums stay exact so many small
// additions cannot compound rounding error.
func (s *RunState) SnapshotTotals() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]float64, len(s.totals))
	for code, sum := range s.totals {
		out[code] = sum.Round(2).InexactFloat64()
	}
	return out
}

// Findings returns the retained findings in order of first observation.
func (s *RunState) Findings() []Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Finding(nil), s.findings...)
}

// Count returns the number of retained findings.
func (s *RunState) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.findings)
}
