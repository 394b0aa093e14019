package controller

import (
	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	improvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	regressedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	neutralStyle   = lipgloss.NewStyle().Faint(true)
	newStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// StyledUI is a SimpleUI that colours deltas and conclusions for terminals.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	ui := NewSimpleUI(cmd)
	ui.paint = paintClassification

	return &StyledUI{SimpleUI: ui}
}

func paintClassification(class m.Classification, text string) string {
	switch class {
	case m.Improved:
		return improvedStyle.Render(text)
	case m.Regressed:
		return regressedStyle.Render(text)
	case m.New:
		return newStyle.Render(text)
	default:
		return neutralStyle.Render(text)
	}
}
