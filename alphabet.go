package seqindex

import (
	"cmp"
	"errors"
	"slices"
)

var ErrBadAlphabet = errors.New("seqindex: alphabet symbols must be distinct and strictly increasing")

// Alphabet is the capability the index structures need from a symbol
// type: a bijection between symbols and dense integer ranks in
// [0, Size()), respecting the symbol order, plus the declared
// cardinality used to size the count and occurrence tables.
//
// Rank(Symbol(r)) must return (r, true) for every rank in range, and
// ranks must order the same way the symbols do.
type Alphabet[S comparable] interface {
	// Rank returns the dense rank of s, or false if s is not part of
	// the alphabet.
	Rank(s S) (int, bool)
	// Symbol is the inverse of Rank for in-range ranks.
	Symbol(rank int) S
	// Size returns the alphabet cardinality.
	Size() int
}

// Bytes is the full byte alphabet: every byte is its own rank, in byte
// order. Texts over Bytes can use 0x00 as the sentinel since it sorts
// below every other value.
var Bytes Alphabet[byte] = byteAlphabet{}

type byteAlphabet struct{}

func (byteAlphabet) Rank(b byte) (int, bool) { return int(b), true }
func (byteAlphabet) Symbol(rank int) byte    { return byte(rank) }
func (byteAlphabet) Size() int               { return 256 }

// SliceAlphabet is a dense alphabet over an explicit symbol list, for
// callers indexing a handful of symbols (nucleotides, amino acids) where
// a 256-entry byte alphabet would waste table space.
type SliceAlphabet[S cmp.Ordered] struct {
	symbols []S
	ranks   map[S]int
}

// NewSliceAlphabet builds an alphabet from the given symbols. The list
// must be non-empty and strictly increasing, so that ranks inherit the
// symbol order; the first symbol is the minimum and is the natural
// sentinel choice.
func NewSliceAlphabet[S cmp.Ordered](symbols []S) (*SliceAlphabet[S], error) {
	if len(symbols) == 0 {
		return nil, ErrBadAlphabet
	}
	ranks := make(map[S]int, len(symbols))
	for i, s := range symbols {
		if i > 0 && symbols[i-1] >= s {
			return nil, ErrBadAlphabet
		}
		ranks[s] = i
	}
	return &SliceAlphabet[S]{symbols: slices.Clone(symbols), ranks: ranks}, nil
}

func (a *SliceAlphabet[S]) Rank(s S) (int, bool) {
	r, ok := a.ranks[s]
	return r, ok
}

func (a *SliceAlphabet[S]) Symbol(rank int) S {
	return a.symbols[rank]
}

func (a *SliceAlphabet[S]) Size() int {
	return len(a.symbols)
}
