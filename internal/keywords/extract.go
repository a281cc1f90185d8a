// Package keywords extracts salient terms from free-text job descriptions.
package keywords

import (
	"sort"
	"strings"
)

// MaxKeywords is the default cap on the number of extracted terms.
const MaxKeywords = 30

// minTokenLength is exclusive: tokens of this length or shorter are dropped.
const minTokenLength = 2

// stopWords is the closed list of common function words excluded from
// extraction. Matching is exact against the lower-cased token.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "you": {}, "your": {},
	"our": {}, "this": {}, "that": {}, "will": {}, "are": {}, "as": {},
	"to": {}, "in": {}, "of": {}, "a": {}, "an": {}, "on": {}, "or": {},
	"we": {}, "they": {}, "be": {}, "is": {}, "at": {}, "by": {}, "from": {},
}

// Extract tokenizes a job description into at most MaxKeywords distinct
// lower-case terms, ranked by descending frequency. Ties keep first-occurrence
// order (stable sort over the discovery-ordered token list). Characters other
// than letters, digits, '+', '.', '#' and space are treated as separators, so
// tokens like "c++", "c#" and "3.7" survive intact. An empty or all-noise
// input yields an empty slice.
func Extract(text string) []string {
	return ExtractTop(text, MaxKeywords)
}

// ExtractTop behaves like Extract with a caller-supplied cap.
func ExtractTop(text string, limit int) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == '+' || r == '.' || r == '#':
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))

	counts := make(map[string]int)
	var order []string // distinct tokens in discovery order
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= minTokenLength {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

// IsStopWord reports whether the token is in the fixed stop-word list.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}
