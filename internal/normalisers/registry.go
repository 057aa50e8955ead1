package normalisers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
	"github.com/custodia-labs/quotient/internal/normalisers/html"
	"github.com/custodia-labs/quotient/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry maps parse modes to their normalisers.
type Registry struct {
	normalisers map[domain.Mode]driven.Normaliser
}

// NewRegistry creates an empty normaliser registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make(map[domain.Mode]driven.Normaliser),
	}
}

// NewDefaultRegistry creates a registry with the built-in normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// RegisterDefaults registers the html and text normalisers.
func RegisterDefaults(r *Registry) {
	r.Register(html.New())
	r.Register(plaintext.New())
}

// Register adds a normaliser, replacing any existing one for the same mode.
func (r *Registry) Register(n driven.Normaliser) {
	r.normalisers[n.Mode()] = n
}

// Get returns the normaliser for mode.
func (r *Registry) Get(mode domain.Mode) (driven.Normaliser, error) {
	n, ok := r.normalisers[mode]
	if !ok {
		return nil, fmt.Errorf("%w: no normaliser for %q (registered: %s)", domain.ErrInvalidMode, mode, joinModes(r.Modes()))
	}
	return n, nil
}

// Modes returns all registered modes in sorted order.
func (r *Registry) Modes() []domain.Mode {
	modes := make([]domain.Mode, 0, len(r.normalisers))
	for m := range r.normalisers {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

func joinModes(modes []domain.Mode) string {
	if len(modes) == 0 {
		return "none"
	}
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
