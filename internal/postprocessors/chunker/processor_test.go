package chunker

import (
	"errors"
	"reflect"
	"testing"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

func seq(s string) domain.Sequence {
	out := make(domain.Sequence, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i:i+1])
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("valid size", func(t *testing.T) {
		p, err := New(500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ChunkSize() != 500 {
			t.Errorf("expected chunkSize 500, got %d", p.ChunkSize())
		}
	})

	t.Run("zero rejected", func(t *testing.T) {
		_, err := New(0)
		if !errors.Is(err, domain.ErrInvalidChunkSize) {
			t.Errorf("expected ErrInvalidChunkSize, got %v", err)
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := New(-4)
		if !errors.Is(err, domain.ErrInvalidChunkSize) {
			t.Errorf("expected ErrInvalidChunkSize, got %v", err)
		}
	})
}

func TestProcessor_Name(t *testing.T) {
	p, _ := New(1)
	if p.Name() != "chunker" {
		t.Errorf("expected name 'chunker', got '%s'", p.Name())
	}
}

func TestProcessor_Process_Empty(t *testing.T) {
	p, _ := New(3)

	result := p.Process(nil)

	if len(result.Quotient) != 0 {
		t.Errorf("expected empty quotient, got %v", result.Quotient)
	}
	if result.Remainder == nil || len(result.Remainder) != 0 {
		t.Errorf("expected non-nil empty remainder, got %#v", result.Remainder)
	}
	if result.Quotient == nil {
		t.Error("expected non-nil quotient")
	}
}

func TestProcessor_Process_ExactChunkSize(t *testing.T) {
	p, _ := New(2)

	result := p.Process(seq("a1B2c3"))

	want := []domain.Sequence{{"a", "1"}, {"B", "2"}, {"c", "3"}}
	if !reflect.DeepEqual(result.Quotient, want) {
		t.Errorf("expected quotient %v, got %v", want, result.Quotient)
	}
	if len(result.Remainder) != 0 {
		t.Errorf("expected empty remainder, got %v", result.Remainder)
	}
}

func TestProcessor_Process_WithRemainder(t *testing.T) {
	p, _ := New(4)

	result := p.Process(seq("a1B2c3"))

	want := []domain.Sequence{{"a", "1", "B", "2"}}
	if !reflect.DeepEqual(result.Quotient, want) {
		t.Errorf("expected quotient %v, got %v", want, result.Quotient)
	}
	if !reflect.DeepEqual(result.Remainder, domain.Sequence{"c", "3"}) {
		t.Errorf("expected remainder [c 3], got %v", result.Remainder)
	}
}

func TestProcessor_Process_ShorterThanChunk(t *testing.T) {
	p, _ := New(10)

	result := p.Process(seq("Hi"))

	if len(result.Quotient) != 0 {
		t.Errorf("expected empty quotient, got %v", result.Quotient)
	}
	if !reflect.DeepEqual(result.Remainder, domain.Sequence{"H", "i"}) {
		t.Errorf("expected remainder [H i], got %v", result.Remainder)
	}
}

func TestProcessor_Process_SizeOne(t *testing.T) {
	p, _ := New(1)

	result := p.Process(seq("Hi"))

	want := []domain.Sequence{{"H"}, {"i"}}
	if !reflect.DeepEqual(result.Quotient, want) {
		t.Errorf("expected quotient %v, got %v", want, result.Quotient)
	}
	if len(result.Remainder) != 0 {
		t.Errorf("expected empty remainder, got %v", result.Remainder)
	}
}

func TestProcessor_Process_Invariants(t *testing.T) {
	input := seq("aA1bB2cC3dD4eE5fF6gG7hH8iI9jJ0kK")

	for n := 1; n <= len(input)+2; n++ {
		p, _ := New(n)
		result := p.Process(input)

		for i, q := range result.Quotient {
			if len(q) != n {
				t.Errorf("n=%d: segment %d has length %d", n, i, len(q))
			}
		}
		if len(result.Remainder) >= n {
			t.Errorf("n=%d: remainder length %d not below chunk size", n, len(result.Remainder))
		}
		if got := len(result.Quotient)*n + len(result.Remainder); got != len(input) {
			t.Errorf("n=%d: expected %d elements, got %d", n, len(input), got)
		}
		if result.Len() != len(input) {
			t.Errorf("n=%d: Len() = %d, want %d", n, result.Len(), len(input))
		}
	}
}

func TestProcessor_Process_SegmentsIndependent(t *testing.T) {
	p, _ := New(2)
	input := seq("abcd")

	result := p.Process(input)
	_ = append(result.Quotient[0], "x")

	if result.Quotient[1][0] != "c" {
		t.Errorf("appending to a segment modified its neighbour: %v", result.Quotient)
	}
}

func TestProcessor_Process_Restartable(t *testing.T) {
	p, _ := New(3)
	input := seq("abcdefg")

	first := p.Process(input)
	second := p.Process(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
}
