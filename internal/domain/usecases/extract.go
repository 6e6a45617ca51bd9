package usecases

import (
	"strings"
	"unicode"

	"github.com/finquery/finquery-go/internal/domain/entities"
)

// fillerWords are stripped from finance queries when no ticker-shaped token
// is present; whatever remains is treated as a company or asset name.
var fillerWords = map[string]struct{}{
	"what": {}, "is": {}, "the": {}, "price": {}, "of": {},
	"how": {}, "much": {}, "worth": {}, "current": {},
	"right": {}, "now": {}, "trading": {}, "at": {},
}

// Extract pulls a candidate entity phrase out of the query, category-aware.
// Pure text policy with no capability calls. A nil result means the query
// held no usable text; the caller then resolves the original query instead,
// which maximizes resolver recall.
func Extract(query string, category entities.Category) *entities.RawEntity {
	if category == entities.CategoryWeather {
		// Location names are not reliably isolatable by token shape;
		// the full query goes to resolution unchanged.
		return &entities.RawEntity{Text: query, Category: category}
	}

	if ticker, ok := firstTickerToken(query); ok {
		return &entities.RawEntity{Text: ticker, Category: category}
	}

	if name := stripFiller(query); name != "" {
		return &entities.RawEntity{Text: name, Category: category}
	}

	return nil
}

// firstTickerToken scans whitespace-delimited tokens for one that, after
// stripping non-letters, is fully upper-case and 2-6 characters long.
func firstTickerToken(query string) (string, bool) {
	for _, tok := range strings.Fields(query) {
		letters := keepLetters(tok)
		if len(letters) < 2 || len(letters) > 6 {
			continue
		}
		if letters == strings.ToUpper(letters) {
			return letters, true
		}
	}
	return "", false
}

func keepLetters(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// stripFiller removes filler words and trailing punctuation, keeping the
// remaining words in their original order and casing.
func stripFiller(query string) string {
	var kept []string
	for _, tok := range strings.Fields(query) {
		tok = strings.TrimRight(tok, ".,!?;:")
		if tok == "" {
			continue
		}
		if _, filler := fillerWords[strings.ToLower(tok)]; filler {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
