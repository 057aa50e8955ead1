package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
)

type stubNormaliser struct {
	mode domain.Mode
	text string
}

func (s *stubNormaliser) Mode() domain.Mode { return s.mode }

func (s *stubNormaliser) Normalise(_ context.Context, _ *domain.RawContent) (*driven.NormaliseResult, error) {
	return &driven.NormaliseResult{Text: s.text}, nil
}

func TestNewRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Modes())

	_, err := r.Get(domain.ModeHTML)
	require.ErrorIs(t, err, domain.ErrInvalidMode)
	assert.Contains(t, err.Error(), "registered: none")
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t, []domain.Mode{domain.ModeHTML, domain.ModeText}, r.Modes())

	for _, mode := range domain.AllModes() {
		n, err := r.Get(mode)
		require.NoError(t, err)
		assert.Equal(t, mode, n.Mode())
	}
}

func TestRegistry_GetUnknownMode(t *testing.T) {
	r := NewDefaultRegistry()

	n, err := r.Get("markdown")

	assert.Nil(t, n)
	require.ErrorIs(t, err, domain.ErrInvalidMode)
	assert.Contains(t, err.Error(), `"markdown" (registered: html, text)`)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(&stubNormaliser{mode: domain.ModeText, text: "stub"})

	n, err := r.Get(domain.ModeText)
	require.NoError(t, err)

	result, err := n.Normalise(context.Background(), &domain.RawContent{})
	require.NoError(t, err)
	assert.Equal(t, "stub", result.Text)
	assert.Len(t, r.Modes(), 2)
}

// TestDefaults_StripAccordingToMode checks both built-ins on the same input
func TestDefaults_StripAccordingToMode(t *testing.T) {
	r := NewDefaultRegistry()
	raw := &domain.RawContent{Content: []byte("<p>Hi</p>")}

	htmlN, err := r.Get(domain.ModeHTML)
	require.NoError(t, err)
	res, err := htmlN.Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Hi", res.Text)

	textN, err := r.Get(domain.ModeText)
	require.NoError(t, err)
	res, err = textN.Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", res.Text)
}
