// Package report prints the filters matched for each rule asset.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/engine/stringify"
	"go.trai.ch/extq/internal/ui/style"
	"go.trai.ch/extq/internal/ui/term"
)

// Printer writes match results as filter-list lines: "+ <filter>" for matched
// filters and "- <exception>" for the exception overriding a cosmetic match.
type Printer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w, or to stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{out: term.NewOutput(w)}
}

// Print writes the result of a matched asset. Other outcomes print nothing.
func (p *Printer) Print(outcome domain.AssetOutcome) error {
	if outcome.Status != domain.OutcomeMatched {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	result := outcome.Result
	summary := fmt.Sprintf("[info] matched %d network filters and %d cosmetic filters",
		len(result.NetworkFilters), len(result.CosmeticMatches))
	if err := p.line(summary, style.Cyan); err != nil {
		return err
	}

	for _, f := range result.NetworkFilters {
		if err := p.line(style.Plus+" "+stringify.Render(f), style.Green); err != nil {
			return err
		}
	}

	for _, m := range result.CosmeticMatches {
		if err := p.line(style.Plus+" "+stringify.Render(m.Filter), style.Green); err != nil {
			return err
		}
		if m.Exception == nil {
			continue
		}
		if err := p.line(style.Minus+" "+stringify.Render(*m.Exception), style.Red); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) line(text string, color lipgloss.Color) error {
	styled := p.out.String(text).Foreground(termenv.RGBColor(string(color))).String()
	_, err := p.out.WriteString(styled + "\n")
	return err
}
