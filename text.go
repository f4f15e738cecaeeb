package seqindex

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("seqindex: invalid UTF-8 encoding in input text")
	ErrInvalidText = errors.New("seqindex: input text contains the NUL sentinel byte")
)

// 0x00 never appears in valid UTF-8 text handed to us (we reject it),
// and it sorts below every other byte, so it serves as the sentinel.
const textSentinel = 0x00

// TextIndexBuilder configures an FM-index over a Unicode string with
// the byte alphabet. Sentinel handling and text preparation live here
// so callers hand in plain strings.
type TextIndexBuilder struct {
	text          string
	caseSensitive bool
	normalize     bool
}

func NewTextIndexBuilder(text string) *TextIndexBuilder {
	return &TextIndexBuilder{
		text:      text,
		normalize: true,
	}
}

// Makes the search case sensitive.
func (b *TextIndexBuilder) CaseSensitive() *TextIndexBuilder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the text with NFC.
func (b *TextIndexBuilder) SkipNormalization() *TextIndexBuilder {
	b.normalize = false
	return b
}

func (b *TextIndexBuilder) Build() (*TextIndex, error) {
	if !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}
	if strings.IndexByte(b.text, textSentinel) >= 0 {
		return nil, ErrInvalidText
	}

	prepared := applyTransforms(b.text, b.caseSensitive, b.normalize)
	data := make([]byte, 0, len(prepared)+1)
	data = append(data, prepared...)
	data = append(data, textSentinel)

	fm, err := NewFMIndex(data, Bytes)
	if err != nil {
		return nil, err
	}
	return &TextIndex{
		fm:            fm,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}, nil
}

func applyTransforms(text string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	if normalize {
		text = norm.NFC.String(text)
	}
	return text
}

// TextIndex is the string-facing surface of FMIndex. Patterns go
// through the same case and normalization transforms as the indexed
// text, and reported offsets are byte offsets into the transformed
// text. Immutable once built; safe for concurrent readers.
type TextIndex struct {
	fm            *FMIndex[byte]
	caseSensitive bool
	normalize     bool
}

// Count returns how many times pattern occurs in the indexed text.
// The empty pattern matches every suffix, sentinel included.
func (x *TextIndex) Count(pattern string) (int, error) {
	p := applyTransforms(pattern, x.caseSensitive, x.normalize)
	return x.fm.Count([]byte(p))
}

// Locate returns the byte offsets of every occurrence of pattern, in
// suffix-array order.
func (x *TextIndex) Locate(pattern string) ([]int, error) {
	p := applyTransforms(pattern, x.caseSensitive, x.normalize)
	return x.fm.Locate([]byte(p))
}

// Text reconstructs the transformed text the index was built over,
// without the sentinel.
func (x *TextIndex) Text() string {
	data := x.fm.Reconstruct()
	return string(data[:len(data)-1])
}
