package seqindex

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func naiveCommonPrefix(text []byte, i, j int) int {
	l := 0
	for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
		l++
	}
	return l
}

func TestBuildLCPArrayBanana(t *testing.T) {
	text := []byte("banana$")
	sa, err := BuildSuffixArray(text, Bytes)
	if err != nil {
		t.Fatal(err)
	}
	lcp, err := BuildLCPArray(text, sa)
	if err != nil {
		t.Fatal(err)
	}
	// Suffixes in order: $, a$, ana$, anana$, banana$, na$, nana$.
	want := []int{0, 1, 3, 0, 0, 2}
	if !slices.Equal(lcp, want) {
		t.Errorf("BuildLCPArray = %v, want %v", lcp, want)
	}
}

func TestBuildLCPArrayErrors(t *testing.T) {
	if _, err := BuildLCPArray[byte](nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty text: got %v, want ErrEmptyInput", err)
	}
	if _, err := BuildLCPArray([]byte("ab$"), []int{2, 0}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short sa: got %v, want ErrLengthMismatch", err)
	}
}

func TestLCPIndexCommon(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 40; trial++ {
		text := randomSentinelText(r, "ab", 1+r.Intn(120))
		sa, err := BuildSuffixArray(text, Bytes)
		if err != nil {
			t.Fatal(err)
		}
		x, err := NewLCPIndex(text, sa)
		if err != nil {
			t.Fatal(err)
		}
		for q := 0; q < 200; q++ {
			i, j := r.Intn(len(text)), r.Intn(len(text))
			got, err := x.Common(i, j)
			if err != nil {
				t.Fatal(err)
			}
			if want := naiveCommonPrefix(text, i, j); got != want {
				t.Fatalf("text %q: Common(%d, %d) = %d, want %d", text, i, j, got, want)
			}
		}
	}
}

func TestLCPIndexBounds(t *testing.T) {
	text := []byte("abab$")
	sa, err := BuildSuffixArray(text, Bytes)
	if err != nil {
		t.Fatal(err)
	}
	x, err := NewLCPIndex(text, sa)
	if err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if _, err := x.Common(pair[0], pair[1]); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Common(%d, %d) = %v, want ErrIndexOutOfBounds", pair[0], pair[1], err)
		}
	}
	if got, err := x.Common(2, 2); err != nil || got != 3 {
		t.Errorf("Common(2, 2) = %d, %v; want 3, nil", got, err)
	}
}
