package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/quotient/internal/core/domain"
)

// prettyWidth is the line width before lists wrap to one item per line.
const prettyWidth = 80

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

func outputReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func outputReport(cmd *cobra.Command, report *domain.Report) error {
	out := cmd.OutOrStdout()
	result := report.Analysis.Result

	_, err := fmt.Fprintf(out, "%s\n%s\n%s\n%s\n",
		heading(out, "Quotient"),
		formatChunks(result.Quotient),
		heading(out, "Remainder"),
		formatSequence(result.Remainder),
	)
	return err
}

// formatChunks renders chunks as a nested list, e.g. [['a', '1'], ['B', '2']].
func formatChunks(chunks []domain.Sequence) string {
	items := make([]listNode, len(chunks))
	for i, c := range chunks {
		items[i] = sequenceNode(c)
	}
	return listNode{items: items, list: true}.format()
}

// formatSequence renders a sequence as a list of quoted characters.
func formatSequence(seq domain.Sequence) string {
	return sequenceNode(seq).format()
}

// listNode is either a quoted leaf or a list of nodes.
type listNode struct {
	leaf  string
	items []listNode
	list  bool
}

func sequenceNode(seq domain.Sequence) listNode {
	items := make([]listNode, len(seq))
	for i, c := range seq {
		items[i] = listNode{leaf: "'" + c + "'"}
	}
	return listNode{items: items, list: true}
}

func (n listNode) repr() string {
	if !n.list {
		return n.leaf
	}
	parts := make([]string, len(n.items))
	for i, it := range n.items {
		parts[i] = it.repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (n listNode) format() string {
	var b strings.Builder
	n.write(&b, 0, 0)
	return b.String()
}

// write keeps a list on one line when it fits in prettyWidth, counting
// the indent and the closing characters still to come (allowance).
// Otherwise each item goes on its own line, one column past the bracket.
func (n listNode) write(b *strings.Builder, indent, allowance int) {
	rep := n.repr()
	if !n.list || len(rep) <= prettyWidth-indent-allowance {
		b.WriteString(rep)
		return
	}

	b.WriteByte('[')
	inner := indent + 1
	for i, it := range n.items {
		if i > 0 {
			b.WriteString(",\n")
			b.WriteString(strings.Repeat(" ", inner))
		}
		// Non-final items are followed by a comma, the last one by every
		// bracket that closes after it.
		itemAllowance := 1
		if i == len(n.items)-1 {
			itemAllowance = allowance + 1
		}
		it.write(b, inner, itemAllowance)
	}
	b.WriteByte(']')
}

func heading(w io.Writer, title string) string {
	if isTerminal(w) {
		return headingStyle.Render(title)
	}
	return title
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
