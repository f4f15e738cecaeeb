package seqindex

import "errors"

var ErrLengthMismatch = errors.New("seqindex: suffix array length does not match text length")

// BWTransform derives the Burrows-Wheeler Transform of text from its
// suffix array: B[i] = text[(SA[i]-1+n) mod n], the symbol preceding
// each suffix in suffix-array order. The sentinel convention of
// BuildSuffixArray carries over, so the transform is invertible.
func BWTransform[S comparable](text []S, sa []int) ([]S, error) {
	if len(sa) != len(text) {
		return nil, ErrLengthMismatch
	}
	n := len(text)
	b := make([]S, n)
	for i, p := range sa {
		b[i] = text[(p-1+n)%n]
	}
	return b, nil
}

// InvertBWTransform reconstructs the sentinel-terminated text from its
// Burrows-Wheeler Transform alone. It rebuilds the LF mapping with a
// counting sort over the alphabet and walks it from the sentinel row,
// emitting the text back to front.
func InvertBWTransform[S comparable](b []S, alphabet Alphabet[S]) ([]S, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(b)
	ranks := make([]int32, n)
	count := make([]int, alphabet.Size())
	for i, s := range b {
		r, ok := alphabet.Rank(s)
		if !ok {
			return nil, ErrUnknownSymbol
		}
		ranks[i] = int32(r)
		count[r]++
	}

	// Turn the frequencies into first-occurrence indexes in the sorted
	// first column.
	sum := 0
	for c, v := range count {
		count[c] = sum
		sum += v
	}

	// lf[i] is the row of the sorted rotation matrix reached by
	// prepending b[i], i.e. the row holding the suffix one position to
	// the left.
	lf := make([]int, n)
	for i, r := range ranks {
		lf[i] = count[r]
		count[r]++
	}

	// Row 0 is the rotation starting at the sentinel; its last column
	// holds the text's final real symbol, and each LF step moves one
	// symbol further left.
	out := make([]S, n)
	idx := 0
	for i := n - 2; i >= 0; i-- {
		out[i] = b[idx]
		idx = lf[idx]
	}
	out[n-1] = b[idx]
	return out, nil
}
