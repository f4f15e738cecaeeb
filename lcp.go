package seqindex

import "github.com/viniciusth/rmq"

// BuildLCPArray runs Kasai's algorithm in O(n) time: entry i is the
// length of the longest common prefix between the suffixes at SA[i]
// and SA[i+1], so the result has n-1 entries.
func BuildLCPArray[S comparable](text []S, sa []int) ([]int, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	if len(sa) != len(text) {
		return nil, ErrLengthMismatch
	}
	rank := make([]int, len(sa))
	for i := range sa {
		rank[sa[i]] = i
	}

	lcp := make([]int, len(sa)-1)
	l := 0
	for i := range sa {
		if rank[i]+1 == len(sa) {
			l = 0
			continue
		}
		j := sa[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp, nil
}

// LCPIndex answers longest-common-prefix queries between arbitrary
// suffixes in O(1), via range-minimum queries over the LCP array.
// Immutable once built; safe for concurrent readers.
type LCPIndex struct {
	rank []int
	lcp  []int
	rmq  *rmq.RMQHybridNaive[int]
	n    int
}

// NewLCPIndex builds the LCP array for text and its suffix array and
// wraps it in a range-minimum structure. Costs 2n extra integers on
// top of the suffix array.
func NewLCPIndex[S comparable](text []S, sa []int) (*LCPIndex, error) {
	lcp, err := BuildLCPArray(text, sa)
	if err != nil {
		return nil, err
	}
	rank := make([]int, len(sa))
	for i := range sa {
		rank[sa[i]] = i
	}
	x := &LCPIndex{rank: rank, lcp: lcp, n: len(sa)}
	if len(lcp) > 0 {
		x.rmq = rmq.NewRMQHybridNaive(lcp)
	}
	return x, nil
}

// Common returns the length of the longest common prefix of the
// suffixes starting at text positions i and j.
func (x *LCPIndex) Common(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= x.n || j >= x.n {
		return 0, ErrIndexOutOfBounds
	}
	if i == j {
		return x.n - i, nil
	}
	ri, rj := x.rank[i], x.rank[j]
	if ri > rj {
		ri, rj = rj, ri
	}
	return x.lcp[x.rmq.Query(ri, rj-1)], nil
}
