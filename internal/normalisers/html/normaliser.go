package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/quotient/internal/core/domain"
	"github.com/custodia-labs/quotient/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser strips markup tags from HTML content.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Mode returns the parse mode this normaliser handles.
func (n *Normaliser) Mode() domain.Mode {
	return domain.ModeHTML
}

// Normalise removes all tags from the raw content.
// The title is read from the original markup before tags are removed.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawContent) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := raw.Text()

	return &driven.NormaliseResult{
		Text:  StripTags(content),
		Title: extractHTMLTitle(content),
	}, nil
}

// Pre-compiled regular expressions for HTML parsing performance.
var (
	titleTag = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	anyTag   = regexp.MustCompile(`<.*?>`)
)

// StripTags removes every substring matching <.*?>.
// A tag split across lines is left in place because . does not match \n.
func StripTags(content string) string {
	return anyTag.ReplaceAllString(content, "")
}

// extractHTMLTitle returns the decoded <title> text, or "" if there is none.
func extractHTMLTitle(content string) string {
	matches := titleTag.FindStringSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	title := strings.TrimSpace(matches[1])
	return html.UnescapeString(title)
}
