package finding

import (
	"strings"

	"github.com/battincik/superthanks-calc/pkg/amount"
)

// Predicate is one independent donation-relevance signal.
type Predicate func(block string, meta BlockMeta) bool

// DefaultKeywords are substrings that mark a block as a Super Thanks
// mention on their own.
var DefaultKeywords = []string{
	"super thanks",
	"superthanks",
	"süper teşekkürler",
	"süper teşekkür",
}

// DefaultThanksWords are the thanks-family words used by the currency
// co-occurrence signal.
var DefaultThanksWords = []string{
	"thanks",
	"thank you",
	"teşekkür",
	"tesekkur",
	"merci",
	"gracias",
	"danke",
	"obrigado",
	"arigato",
}

// Detector decides whether a text block is plausibly a Super Thanks
// mention. It is a short-circuit OR over an open list of predicates,
// biased toward recall: an ordinary price mention next to an incidental
// "thanks" will pass, and that is accepted.
type Detector struct {
	predicates []Predicate
}

// NewDetector builds a detector from the three standard signals: keyword
// substring match, caller-supplied badge marker, and currency marker
// co-occurring with a thanks-family word. Empty lists fall back to the
// defaults.
func NewDetector(keywords, thanksWords []string) *Detector {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if len(thanksWords) == 0 {
		thanksWords = DefaultThanksWords
	}
	return &Detector{predicates: []Predicate{
		keywordPredicate(keywords),
		badgePredicate,
		cooccurrencePredicate(thanksWords),
	}}
}

// Add appends a custom predicate to the detector's signal list.
func (d *Detector) Add(p Predicate) {
	d.predicates = append(d.predicates, p)
}

// Detect reports whether any signal fires for the block.
func (d *Detector) Detect(block string, meta BlockMeta) bool {
	for _, p := range d.predicates {
		if p(block, meta) {
			return true
		}
	}
	return false
}

func keywordPredicate(keywords []string) Predicate {
	lowered := lowerAll(keywords)
	return func(block string, _ BlockMeta) bool {
		return containsAny(strings.ToLower(block), lowered)
	}
}

func badgePredicate(_ string, meta BlockMeta) bool {
	return meta.Badge
}

func cooccurrencePredicate(thanksWords []string) Predicate {
	lowered := lowerAll(thanksWords)
	return func(block string, _ BlockMeta) bool {
		if !amount.HasCurrencyMarker(block) {
			return false
		}
		return containsAny(strings.ToLower(block), lowered)
	}
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
