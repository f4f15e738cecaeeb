package seqindex

import (
	"errors"
	"iter"
)

var (
	ErrInvalidBitWidth  = errors.New("seqindex: bit width must be between 1 and 63")
	ErrValueOutOfRange  = errors.New("seqindex: value does not fit in the configured bit width")
	ErrIndexOutOfBounds = errors.New("seqindex: index out of bounds")
)

const wordBits = 64

// PackedArray stores unsigned integers of a fixed bit width back to back
// inside 64-bit words, so values that need fewer bits than a machine word
// don't each burn a full word. A nucleotide alphabet fits in 2 bits per
// symbol instead of 8, a 32x reduction against a word-per-symbol layout.
//
// A value may straddle two adjacent words; reads and writes reassemble or
// distribute the bits across both without disturbing neighboring values.
// The width cannot be a full word: shift arithmetic on a 64-bit value by
// 64 bits is a degenerate case we'd rather reject than special-case.
//
// A PackedArray is mutable and not safe for concurrent use without
// external synchronization.
type PackedArray struct {
	words  []uint64
	width  uint
	mask   uint64
	length int
}

// NewPackedArray returns an empty array holding values of the given bit
// width. The width must be between 1 and 63 inclusive.
func NewPackedArray(width uint) (*PackedArray, error) {
	if width == 0 || width >= wordBits {
		return nil, ErrInvalidBitWidth
	}
	return newPacked(width), nil
}

// newPacked skips the width validation for internal callers whose widths
// are known constants or derived from a length.
func newPacked(width uint) *PackedArray {
	return &PackedArray{width: width, mask: 1<<width - 1}
}

// Len returns the number of logical elements, not the number of backing
// words.
func (p *PackedArray) Len() int {
	return p.length
}

// Push appends one element. The array is left unchanged if the value does
// not fit in the configured width.
func (p *PackedArray) Push(value uint64) error {
	if value&^p.mask != 0 {
		return ErrValueOutOfRange
	}
	p.grow(1)
	p.length++
	p.set(p.length-1, value)
	return nil
}

// Get returns the element at the given index.
func (p *PackedArray) Get(index int) (uint64, error) {
	if index < 0 || index >= p.length {
		return 0, ErrIndexOutOfBounds
	}
	return p.get(index), nil
}

// Set overwrites the element at the given index in place.
func (p *PackedArray) Set(index int, value uint64) error {
	if index < 0 || index >= p.length {
		return ErrIndexOutOfBounds
	}
	if value&^p.mask != 0 {
		return ErrValueOutOfRange
	}
	p.set(index, value)
	return nil
}

// FillWith appends count copies of value in a single pass, growing the
// backing buffer once up front. A count of zero or less is a no-op.
func (p *PackedArray) FillWith(count int, value uint64) error {
	if value&^p.mask != 0 {
		return ErrValueOutOfRange
	}
	if count <= 0 {
		return nil
	}
	p.grow(count)
	if value == 0 {
		// Bits past the logical end are always zero, so appending
		// zeros only needs the length bump.
		p.length += count
		return nil
	}
	for i := 0; i < count; i++ {
		p.length++
		p.set(p.length-1, value)
	}
	return nil
}

// Values returns a lazy iterator over the decoded elements in index
// order. The sequence is restartable: ranging over it again starts from
// index zero.
func (p *PackedArray) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i < p.length; i++ {
			if !yield(p.get(i)) {
				return
			}
		}
	}
}

// extend appends count zero elements without validation, for internal
// callers building fixed-size scratch tables. Bits past the logical end
// are always zero, so only the length moves.
func (p *PackedArray) extend(count int) {
	p.grow(count)
	p.length += count
}

// grow ensures the backing buffer can hold count more elements.
func (p *PackedArray) grow(count int) {
	end := int((uint(p.length+count)*p.width + wordBits - 1) / wordBits)
	for len(p.words) < end {
		p.words = append(p.words, 0)
	}
}

func (p *PackedArray) get(index int) uint64 {
	pos := uint(index) * p.width
	word, shift := pos/wordBits, pos%wordBits
	v := p.words[word] >> shift
	if shift+p.width > wordBits {
		v |= p.words[word+1] << (wordBits - shift)
	}
	return v & p.mask
}

func (p *PackedArray) set(index int, value uint64) {
	pos := uint(index) * p.width
	word, shift := pos/wordBits, pos%wordBits
	// Shifting the mask by more than 63 truncates to zero, which is
	// exactly the "no low bits in this word" case.
	p.words[word] = p.words[word]&^(p.mask<<shift) | value<<shift
	if shift+p.width > wordBits {
		used := wordBits - shift
		p.words[word+1] = p.words[word+1]&^(p.mask>>used) | value>>used
	}
}
