package seqindex

import "errors"

var (
	ErrEmptyInput      = errors.New("seqindex: input text is empty")
	ErrUnknownSymbol   = errors.New("seqindex: symbol is not part of the alphabet")
	ErrMissingSentinel = errors.New("seqindex: text must end with a unique minimum sentinel symbol")
)

// BuildSuffixArray returns the suffix array of text: the permutation of
// [0, n) that sorts the positions by the lexicographic order of the
// suffix starting at each, using induced sorting in O(n) time.
//
// The final symbol of text must be a sentinel: strictly smaller than
// every other symbol and occurring exactly once. The sentinel breaks
// all ties, so the suffix order is total. A text consisting of the bare
// sentinel is fine; an empty text is not.
func BuildSuffixArray[S comparable](text []S, alphabet Alphabet[S]) ([]int, error) {
	ranks, err := rankSequence(text, alphabet)
	if err != nil {
		return nil, err
	}
	sa32 := saisInts(ranks, alphabet.Size())
	sa := make([]int, len(sa32))
	for i, v := range sa32 {
		sa[i] = int(v)
	}
	return sa, nil
}

// rankSequence maps text to dense alphabet ranks and verifies the
// sentinel precondition.
func rankSequence[S comparable](text []S, alphabet Alphabet[S]) ([]int32, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	ranks := make([]int32, len(text))
	for i, s := range text {
		r, ok := alphabet.Rank(s)
		if !ok {
			return nil, ErrUnknownSymbol
		}
		ranks[i] = int32(r)
	}
	last := ranks[len(ranks)-1]
	for _, r := range ranks[:len(ranks)-1] {
		if r <= last {
			return nil, ErrMissingSentinel
		}
	}
	return ranks, nil
}
