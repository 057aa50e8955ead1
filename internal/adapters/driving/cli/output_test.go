package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

func TestFormatSequence(t *testing.T) {
	assert.Equal(t, "[]", formatSequence(nil))
	assert.Equal(t, "['c', '3']", formatSequence(domain.Sequence{"c", "3"}))
}

func TestFormatChunks(t *testing.T) {
	assert.Equal(t, "[]", formatChunks(nil))
	assert.Equal(t, "[['H'], ['i']]", formatChunks([]domain.Sequence{{"H"}, {"i"}}))
}

func TestFormatSequence_WrapsLongLists(t *testing.T) {
	seq := make(domain.Sequence, 20)
	for i := range seq {
		seq[i] = "x"
	}

	got := formatSequence(seq)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 20)
	assert.Equal(t, "['x',", lines[0])
	assert.Equal(t, " 'x',", lines[1])
	assert.Equal(t, " 'x']", lines[19])
}

func TestFormatSequence_FitsOnOneLine(t *testing.T) {
	// 16 items render as 80 characters exactly
	seq := make(domain.Sequence, 16)
	for i := range seq {
		seq[i] = "y"
	}

	got := formatSequence(seq)

	assert.Len(t, got, 80)
	assert.NotContains(t, got, "\n")
}

func TestHeading_PlainWhenNotTerminal(t *testing.T) {
	assert.Equal(t, "Quotient", heading(new(bytes.Buffer), "Quotient"))
	assert.False(t, isTerminal(new(bytes.Buffer)))
}

func repeatSequence(c string, n int) domain.Sequence {
	seq := make(domain.Sequence, n)
	for i := range seq {
		seq[i] = c
	}
	return seq
}

func TestFormatChunks_WrapsOuterOnly(t *testing.T) {
	// Each 15-item chunk is 75 characters and still fits after the indent.
	chunks := []domain.Sequence{repeatSequence("a", 15), repeatSequence("b", 15)}

	got := formatChunks(chunks)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "["+formatSequence(chunks[0])+",", lines[0])
	assert.Equal(t, " "+formatSequence(chunks[1])+"]", lines[1])
}

func TestFormatChunks_NestedWrapIndentsByDepth(t *testing.T) {
	chunks := []domain.Sequence{repeatSequence("a", 16), repeatSequence("b", 16)}

	got := formatChunks(chunks)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 32)
	assert.Equal(t, "[['a',", lines[0])
	assert.Equal(t, "  'a',", lines[1])
	assert.Equal(t, "  'a'],", lines[15])
	assert.Equal(t, " ['b',", lines[16])
	assert.Equal(t, "  'b',", lines[17])
	assert.Equal(t, "  'b']]", lines[31])
}

func TestFormatChunks_SingleChunkCountsClosingBracket(t *testing.T) {
	// Alone the chunk is 80 characters, but the outer bracket pushes it past the width.
	got := formatChunks([]domain.Sequence{repeatSequence("y", 16)})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "[['y',", lines[0])
	assert.Equal(t, "  'y']]", lines[15])
}
