package text

import "github.com/reiver/go-porterstemmer"

// Stem reduces token to its Porter stem. The stemmer can panic on
// malformed input, in which case the token is passed through unchanged;
// a token that stems to the empty string is also passed through.
func Stem(token string) (stem string) {
	defer func() {
		if recover() != nil {
			stem = token
		}
	}()
	stem = porterstemmer.StemString(token)
	if stem == "" {
		stem = token
	}
	return stem
}
