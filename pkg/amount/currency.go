package amount

import "strings"

// currencyTable maps raw currency markers (symbols and alphabetic codes)
// to canonical ISO 4217 codes. Code lookups are case-insensitive.
var currencyTable = map[string]string{
	"₺":   "TRY",
	"TL":  "TRY",
	"TRY": "TRY",
	"$":   "USD",
	"USD": "USD",
	"€":   "EUR",
	"EUR": "EUR",
	"£":   "GBP",
	"GBP": "GBP",
	"¥":   "JPY",
	"JPY": "JPY",
	"₹":   "INR",
	"INR": "INR",
	"₩":   "KRW",
	"KRW": "KRW",
	"₫":   "VND",
	"VND": "VND",
	"₦":   "NGN",
	"NGN": "NGN",
	"₱":   "PHP",
	"PHP": "PHP",
	"R$":  "BRL",
	"BRL": "BRL",
	"A$":  "AUD",
	"AUD": "AUD",
	"C$":  "CAD",
	"CAD": "CAD",
	"HK$": "HKD",
	"NT$": "TWD",
}

// NormalizeCurrency resolves a raw currency marker to its canonical
// 3-letter code. Unknown tokens pass through unchanged so unrecognized
// formats stay visible in the output instead of being dropped.
func NormalizeCurrency(token string) string {
	trimmed := strings.TrimSpace(token)
	if code, ok := currencyTable[strings.ToUpper(trimmed)]; ok {
		return code
	}
	return trimmed
}
