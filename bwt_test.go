package seqindex

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestBWTransformBanana(t *testing.T) {
	text := []byte("banana$")
	sa, err := BuildSuffixArray(text, Bytes)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BWTransform(text, sa)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "annb$aa" {
		t.Errorf("BWTransform(banana$) = %q, want %q", b, "annb$aa")
	}
}

func TestBWTransformLengthMismatch(t *testing.T) {
	if _, err := BWTransform([]byte("abc$"), []int{0, 1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestInvertBWTransform(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		text := randomSentinelText(r, "acgt", r.Intn(300))
		sa, err := BuildSuffixArray(text, Bytes)
		if err != nil {
			t.Fatal(err)
		}
		b, err := BWTransform(text, sa)
		if err != nil {
			t.Fatal(err)
		}
		got, err := InvertBWTransform(b, Bytes)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, text) {
			t.Fatalf("round trip of %q gave %q", text, got)
		}
	}
}

func TestInvertBWTransformBareSentinel(t *testing.T) {
	got, err := InvertBWTransform([]byte("$"), Bytes)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "$" {
		t.Errorf("got %q, want %q", got, "$")
	}
}

func TestInvertBWTransformErrors(t *testing.T) {
	if _, err := InvertBWTransform(nil, Bytes); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input: got %v, want ErrEmptyInput", err)
	}
	alphabet, err := NewSliceAlphabet([]byte("$ab"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := InvertBWTransform([]byte("ax$"), alphabet); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("unknown symbol: got %v, want ErrUnknownSymbol", err)
	}
}
