package seqindex

import "slices"

// Suffix type codes stored in a width-2 PackedArray during
// classification. The zero value is S, so a fresh type map starts
// all-S and the backward classification scan only ever flips positions
// to L or promotes an S to LMS.
const (
	typeS uint64 = iota
	typeL
	typeLMS
)

// saisFrame holds one level of the SA-IS reduction. The recursion on
// the summary string runs on an explicit frame stack instead of the
// call stack, so deeply reducing inputs cannot grow the goroutine
// stack without bound.
type saisFrame struct {
	text []int32 // dense ranks; the final element is the unique minimum
	k    int     // number of distinct rank values
	sa   []int32 // output permutation, len == len(text)

	// Produced by reduce, consumed by finish.
	types        *PackedArray
	heads, tails []int32
	summaryIndex []int32
	summarySA    []int32
	child        *saisFrame
	done         bool
}

// saisInts computes the suffix array of a dense rank sequence whose
// final element is the unique minimum sentinel, by induced sorting.
// O(n) time, O(n) extra space beyond the output.
func saisInts(text []int32, k int) []int32 {
	root := &saisFrame{text: text, k: k, sa: make([]int32, len(text))}
	stack := []*saisFrame{root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.child != nil {
			// The reduced problem is solved; its suffix array is the
			// sorted order of this level's LMS suffixes.
			f.summarySA = f.child.sa
			f.child = nil
		} else if f.summarySA == nil && !f.done {
			if child := f.reduce(); child != nil {
				f.child = child
				stack = append(stack, child)
				continue
			}
		}
		if !f.done {
			f.finish()
		}
		stack = stack[:len(stack)-1]
	}
	return root.sa
}

// reduce runs the first half of one SA-IS level: classification, the
// approximate LMS sort, and LMS substring naming. It returns a child
// frame when duplicate LMS substrings force a recursion, otherwise it
// resolves the summary suffix array directly.
func (f *saisFrame) reduce() *saisFrame {
	n := len(f.text)
	if n == 1 {
		f.sa[0] = 0
		f.done = true
		return nil
	}

	// Classify every position, scanning from the end; the sentinel
	// keeps its zero-value S type. An S position whose left neighbor
	// is L is promoted to LMS.
	types := newPacked(2)
	types.extend(n)
	for i := n - 2; i >= 0; i-- {
		if f.text[i] > f.text[i+1] || (f.text[i] == f.text[i+1] && types.get(i+1) == typeL) {
			if types.get(i+1) == typeS {
				types.set(i+1, typeLMS)
			}
			types.set(i, typeL)
		}
	}

	// Bucket boundaries from symbol frequencies: heads[c] is the first
	// slot of c's bucket, tails[c] one past the last.
	heads := make([]int32, f.k)
	tails := make([]int32, f.k)
	for _, c := range f.text {
		tails[c]++
	}
	var total int32
	for c := range tails {
		heads[c] = total
		total += tails[c]
		tails[c] = total
	}
	f.types, f.heads, f.tails = types, heads, tails

	// Approximate pass: drop the LMS positions at their bucket tails,
	// then induce. The result orders LMS substrings exactly, though not
	// yet the LMS suffixes.
	for i := range f.sa {
		f.sa[i] = -1
	}
	bt := slices.Clone(tails)
	for i := 0; i < n; i++ {
		if types.get(i) != typeLMS {
			continue
		}
		c := f.text[i]
		bt[c]--
		f.sa[bt[c]] = int32(i)
	}
	induceL(f.text, f.sa, heads, types)
	induceS(f.text, f.sa, tails, types)

	// Name the LMS substrings in sorted order; equal substrings share
	// a name. sa[0] is the sentinel suffix and seeds name 0.
	names := make([]int32, n)
	for i := range names {
		names[i] = -1
	}
	var name int32
	last := int(f.sa[0])
	names[last] = 0
	numLMS := 1
	for i := 1; i < n; i++ {
		pos := int(f.sa[i])
		if types.get(pos) != typeLMS {
			continue
		}
		if !equalLMS(f.text, types, last, pos) {
			name++
		}
		last = pos
		names[pos] = name
		numLMS++
	}

	// The summary string is the names in text order; it ends with the
	// sentinel's name 0, its own unique minimum.
	summary := make([]int32, 0, numLMS)
	f.summaryIndex = make([]int32, 0, numLMS)
	for i, nm := range names {
		if nm < 0 {
			continue
		}
		f.summaryIndex = append(f.summaryIndex, int32(i))
		summary = append(summary, nm)
	}

	if int(name)+1 < len(summary) {
		// Duplicate LMS substrings: their relative suffix order is not
		// settled by the substring sort, so recurse on the summary.
		return &saisFrame{text: summary, k: int(name) + 1, sa: make([]int32, len(summary))}
	}

	// All LMS substrings are distinct, so the summary suffix array is
	// the inverse permutation of the names.
	f.summarySA = make([]int32, len(summary))
	for i, nm := range summary {
		f.summarySA[nm] = int32(i)
	}
	return nil
}

// finish places the fully sorted LMS suffixes at their bucket tails and
// runs the two induction passes once more to settle every suffix.
func (f *saisFrame) finish() {
	for i := range f.sa {
		f.sa[i] = -1
	}
	bt := slices.Clone(f.tails)
	for i := len(f.summarySA) - 1; i >= 0; i-- {
		pos := f.summaryIndex[f.summarySA[i]]
		c := f.text[pos]
		bt[c]--
		f.sa[bt[c]] = pos
	}
	induceL(f.text, f.sa, f.heads, f.types)
	induceS(f.text, f.sa, f.tails, f.types)
	f.done = true
	f.types = nil
}

// induceL fills in L-type suffixes left to right: every placed entry
// sa[i] = j proves that j-1, when L-type, sorts next into the head of
// its symbol's bucket.
func induceL(text []int32, sa []int32, heads []int32, types *PackedArray) {
	bh := slices.Clone(heads)
	for i := 0; i < len(sa); i++ {
		j := sa[i] - 1
		if j < 0 || types.get(int(j)) != typeL {
			continue
		}
		c := text[j]
		sa[bh[c]] = j
		bh[c]++
	}
}

// induceS is the mirror pass, right to left into bucket tails, placing
// the S-type (including LMS) suffixes.
func induceS(text []int32, sa []int32, tails []int32, types *PackedArray) {
	bt := slices.Clone(tails)
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i] - 1
		if j < 0 || types.get(int(j)) == typeL {
			continue
		}
		c := text[j]
		bt[c]--
		sa[bt[c]] = j
	}
}

// equalLMS reports whether the LMS substrings starting at a and b are
// identical, comparing symbols until the next LMS boundary on both
// sides. The sentinel's substring is unique by construction.
func equalLMS(text []int32, types *PackedArray, a, b int) bool {
	n := len(text)
	if a == n-1 || b == n-1 {
		return false
	}
	for i := 0; ; i++ {
		aLMS := types.get(a+i) == typeLMS
		bLMS := types.get(b+i) == typeLMS
		if i > 0 && aLMS && bLMS {
			return true
		}
		if aLMS != bLMS || text[a+i] != text[b+i] {
			return false
		}
	}
}
