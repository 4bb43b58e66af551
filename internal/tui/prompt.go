package tui

import (
	"fmt"
	"io"

	"luckywheel/internal/present"

	"github.com/charmbracelet/huh"
)

// HuhPrompter asks the user to confirm leaving for a chosen site.
type HuhPrompter struct {
	input      io.Reader
	output     io.Writer
	accessible bool
}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// WithInput reads answers from r in accessible mode, for scripts and tests.
func (p *HuhPrompter) WithInput(r io.Reader) *HuhPrompter {
	p.input = r
	p.accessible = true
	return p
}

func (p *HuhPrompter) WithOutput(w io.Writer) *HuhPrompter {
	p.output = w
	return p
}

// ConfirmVisit shows the record and returns whether to open it.
func (p *HuhPrompter) ConfirmVisit(rec present.DisplayRecord) (bool, error) {
	visit := true

	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("You got %s! Go there now?", rec.Title)).
		Description(rec.CanonicalURL).
		Affirmative("Go to website").
		Negative("Not now").
		Value(&visit)

	form := huh.NewForm(
		huh.NewGroup(confirm),
	).WithTheme(huh.ThemeCatppuccin())

	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}
	if p.accessible {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}
	return visit, nil
}
