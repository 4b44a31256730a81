package relevance

import "math"

// termStats builds the term-frequency matrix (one row per document,
// normalized by the document's own token count) and the smoothed
// inverse-document-frequency vector (1 + ln(N/df)) for docs over a
// fixed vocabulary. Tokens outside vocab are skipped. A document with
// no tokens yields an all-zero row rather than a division error.
//
// The same function serves query time: a keyphrase is passed as a
// one-document collection against the frozen collection vocabulary,
// which gives its TF row and a query-side IDF of 1 for every term the
// phrase contains.
func termStats(docs [][]string, vocab vocabulary) (tf [][]float64, idf []float64) {
	n := len(docs)
	df := make([]int, len(vocab))
	tf = make([][]float64, n)
	for i, tokens := range docs {
		row := make([]float64, len(vocab))
		for _, tok := range tokens {
			j, ok := vocab[tok]
			if !ok {
				continue
			}
			if row[j] == 0 {
				df[j]++
			}
			row[j]++
		}
		total := float64(len(tokens))
		if total == 0 {
			total = 1
		}
		for j := range row {
			row[j] /= total
		}
		tf[i] = row
	}
	idf = make([]float64, len(vocab))
	for j, d := range df {
		if d > 0 {
			idf[j] = 1 + math.Log(float64(n)/float64(d))
		}
	}
	return tf, idf
}

// weigh multiplies a TF vector elementwise by an IDF vector into a
// fresh slice, leaving both inputs untouched.
func weigh(tf, idf []float64) []float64 {
	out := make([]float64, len(tf))
	for i := range tf {
		out[i] = tf[i] * idf[i]
	}
	return out
}
