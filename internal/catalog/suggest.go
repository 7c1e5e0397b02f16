package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"storefront-catalog-service/internal/domain"
)

// MaxSuggestions caps the live-search suggestion list.
const MaxSuggestions = 8

// Suggestion pairs a matching product with a display string in which the
// matched part of the name is wrapped in <mark> tags for the search box.
type Suggestion struct {
	Product domain.Product `json:"product"`
	Display string         `json:"display"`
}

// Suggest matches the live query against the full collection (not the
// filtered view) using the same substring rule as the search filter, capped
// at MaxSuggestions results. A blank query yields no suggestions.
func Suggest(products []domain.Product, query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	out := make([]Suggestion, 0, MaxSuggestions)
	for _, p := range products {
		if !matchesSearch(p, q) {
			continue
		}
		out = append(out, Suggestion{Product: p, Display: highlight(p.Name, q)})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// highlight wraps the first case-insensitive occurrence of query in text
// with <mark> tags. query must already be lowercase. The match may be in the
// category or subcategory only, in which case the name is returned unchanged.
//
// Lowercasing a rune can change its byte length, so an offset found in the
// lowered copy cannot slice the original directly; each lowered byte records
// the original rune offset it came from.
func highlight(text, query string) string {
	var lowered strings.Builder
	lowered.Grow(len(text))
	origin := make([]int, 0, len(text)+1)
	for i, r := range text {
		low := unicode.ToLower(r)
		for n := utf8.RuneLen(low); n > 0; n-- {
			origin = append(origin, i)
		}
		lowered.WriteRune(low)
	}
	origin = append(origin, len(text))

	idx := strings.Index(lowered.String(), query)
	if idx < 0 {
		return text
	}
	start := origin[idx]
	end := origin[idx+len(query)]
	return text[:start] + "<mark>" + text[start:end] + "</mark>" + text[end:]
}
