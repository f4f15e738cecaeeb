package seqindex

import (
	"math/bits"
	"slices"
)

// FMIndex answers substring count and locate queries over a text
// without ever scanning it, by backward search over the Burrows-Wheeler
// Transform. It keeps the full suffix array resident and a dense
// occurrence table with an entry per symbol per position: O(n*k)
// memory in exchange for constant-time rank lookups, the same trade as
// keeping the whole suffix array instead of sampling it.
//
// An FMIndex is immutable once built; queries never mutate it, so a
// single index may serve any number of concurrent readers without
// locking.
type FMIndex[S comparable] struct {
	alphabet Alphabet[S]
	bwt      []int32        // transform of the rank sequence, in SA order
	sa       []int          // full suffix array, retained for Locate
	c        []int          // c[r] = number of text symbols with rank < r
	occ      []*PackedArray // occ[r] entry i = occurrences of r in bwt[0..i)
	n        int
}

// NewFMIndex builds an index over text, which must follow the sentinel
// convention of BuildSuffixArray: the final symbol is the unique
// minimum. Construction is O(n*k) time and memory for an alphabet of
// cardinality k.
func NewFMIndex[S comparable](text []S, alphabet Alphabet[S]) (*FMIndex[S], error) {
	ranks, err := rankSequence(text, alphabet)
	if err != nil {
		return nil, err
	}
	n := len(ranks)
	k := alphabet.Size()
	sa32 := saisInts(ranks, k)

	sa := make([]int, n)
	bwt := make([]int32, n)
	for i, p := range sa32 {
		sa[i] = int(p)
		bwt[i] = ranks[(int(p)-1+n)%n]
	}

	c := make([]int, k+1)
	for _, r := range ranks {
		c[r+1]++
	}
	for r := 0; r < k; r++ {
		c[r+1] += c[r]
	}

	// One packed column per symbol, n+1 entries each, every entry wide
	// enough for a count up to n.
	width := uint(bits.Len(uint(n)))
	occ := make([]*PackedArray, k)
	for r := range occ {
		col := newPacked(width)
		col.extend(n + 1)
		var cnt uint64
		for i, x := range bwt {
			if x == int32(r) {
				cnt++
			}
			col.set(i+1, cnt)
		}
		occ[r] = col
	}

	return &FMIndex[S]{
		alphabet: alphabet,
		bwt:      bwt,
		sa:       sa,
		c:        c,
		occ:      occ,
		n:        n,
	}, nil
}

// Len returns the indexed text length, sentinel included.
func (f *FMIndex[S]) Len() int {
	return f.n
}

// Count returns how many times pattern occurs in the text. The empty
// pattern matches every suffix and counts n.
func (f *FMIndex[S]) Count(pattern []S) (int, error) {
	lo, hi, err := f.search(pattern)
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// Locate returns the starting offset of every occurrence of pattern.
// Offsets come out in suffix-array order, not ascending text order;
// the order is repeatable for a given index.
func (f *FMIndex[S]) Locate(pattern []S) ([]int, error) {
	lo, hi, err := f.search(pattern)
	if err != nil || lo >= hi {
		return nil, err
	}
	out := make([]int, hi-lo)
	copy(out, f.sa[lo:hi])
	return out, nil
}

// Reconstruct rebuilds the original text, sentinel included, from the
// transform and the rank tables alone, by repeated LF-mapping from the
// sentinel row.
func (f *FMIndex[S]) Reconstruct() []S {
	out := make([]S, f.n)
	idx := 0
	for i := f.n - 2; i >= 0; i-- {
		r := f.bwt[idx]
		out[i] = f.alphabet.Symbol(int(r))
		idx = f.c[r] + int(f.occ[r].get(idx))
	}
	out[f.n-1] = f.alphabet.Symbol(int(f.bwt[idx]))
	return out
}

// BWT returns a copy of the Burrows-Wheeler Transform as symbols.
func (f *FMIndex[S]) BWT() []S {
	out := make([]S, f.n)
	for i, r := range f.bwt {
		out[i] = f.alphabet.Symbol(int(r))
	}
	return out
}

// SuffixArray returns a copy of the underlying suffix array.
func (f *FMIndex[S]) SuffixArray() []int {
	return slices.Clone(f.sa)
}

// search narrows the suffix-array range [lo, hi) one pattern symbol at
// a time, from the last symbol to the first. The whole pattern is rank
// mapped up front so an out-of-alphabet symbol reports ErrUnknownSymbol
// even when the range empties before reaching it.
func (f *FMIndex[S]) search(pattern []S) (int, int, error) {
	ranks := make([]int32, len(pattern))
	for i, s := range pattern {
		r, ok := f.alphabet.Rank(s)
		if !ok {
			return 0, 0, ErrUnknownSymbol
		}
		ranks[i] = int32(r)
	}
	lo, hi := 0, f.n
	for i := len(ranks) - 1; i >= 0; i-- {
		r := ranks[i]
		lo = f.c[r] + int(f.occ[r].get(lo))
		hi = f.c[r] + int(f.occ[r].get(hi))
		if lo >= hi {
			return 0, 0, nil
		}
	}
	return lo, hi, nil
}
