// Package text provides the tokenize-and-filter and term-normalization
// transforms shared by collection indexing and query time. Both sides
// must run the exact same pipeline, or vectors built from them stop
// being comparable.
package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

// Tokenize lower-cases s, extracts Unicode word runs (dropping digits
// and punctuation), and removes English stop words. Deterministic for
// a given input.
func Tokenize(s string) []string {
	lower := strings.ToLower(norm.NFC.String(s))
	raw := wordPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
		"of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were",
		"be", "been", "being", "it", "this", "that", "these", "those", "from",
		"up", "down", "over", "under", "again", "further", "than", "so", "such",
		"into", "about", "between", "through", "during", "before", "after",
		"above", "below", "out", "off", "own", "same", "too", "very", "can",
		"will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
