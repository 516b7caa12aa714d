package amount

import "regexp"

// Recognition grammar: <currency><optional-space><number> or
// <number><optional-space><currency>. Multi-character symbols come first
// in the alternation so "R$" is not consumed as a bare "$". Numbers allow
// dot/comma/space/NBSP grouping every 3 digits with an optional 1-2 digit
// fraction, or a digit run followed by a thousand word.
//
// Alphabetic codes carry a word boundary only on the side away from the
// number: digits are word characters, so an attached form like "100TL"
// or "TL100" has no boundary between digit and letter and a two-sided \b
// could never match it. The boundary that remains still rejects codes
// embedded in words ("COUNTRY").
const (
	symbolPattern       = `R\$|A\$|C\$|HK\$|NT\$|[₺$€£¥₹₩₫₦₱]`
	codeList            = `TRY|TL|USD|EUR|GBP|JPY|INR|KRW|VND|NGN|PHP|BRL|AUD|CAD`
	codeLeadingPattern  = `(?i:\b(?:` + codeList + `))`
	codeTrailingPattern = `(?i:(?:` + codeList + `)\b)`
	numberPattern       = `\d+\s?(?i:bin|thousand)\b|\d+(?:[.,\x{00a0}\x{202f} ]\d{3})*(?:[.,]\d{1,2})?`
	gapPattern          = `[\x{00a0}\x{202f} ]?`
)

var (
	matchRE = regexp.MustCompile(
		`(` + symbolPattern + `|` + codeLeadingPattern + `)` + gapPattern + `(` + numberPattern + `)` +
			`|(` + numberPattern + `)` + gapPattern + `(` + symbolPattern + `|` + codeTrailingPattern + `)`)

	currencyRE = regexp.MustCompile(
		symbolPattern +
			`|(?i:\b(?:` + codeList + `)\b)` +
			`|(?i:\d(?:` + codeList + `)\b)` +
			`|(?i:\b(?:` + codeList + `)\d)`)
)

// Match is one currency+number occurrence found in a text block, with
// both tokens still in their raw form.
type Match struct {
	Currency string
	Number   string
}

// Matches scans a text block for all non-overlapping currency+amount
// occurrences, in left-to-right order.
func Matches(text string) []Match {
	groups := matchRE.FindAllStringSubmatch(text, -1)
	out := make([]Match, 0, len(groups))
	for _, g := range groups {
		if g[1] != "" {
			out = append(out, Match{Currency: g[1], Number: g[2]})
		} else {
			out = append(out, Match{Currency: g[4], Number: g[3]})
		}
	}
	return out
}

// HasCurrencyMarker reports whether the text contains any known currency
// symbol or code.
func HasCurrencyMarker(text string) bool {
	return currencyRE.MatchString(text)
}
