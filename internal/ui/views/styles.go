package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Loading   lipgloss.Style
	Header    lipgloss.Style
	Network   lipgloss.Style
	Platform  lipgloss.Style
	TagBadge  lipgloss.Style
	Value     lipgloss.Style
	Address   lipgloss.Style
	Link      lipgloss.Style
	Timestamp lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Loading:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Network:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		Platform:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		TagBadge:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Address:   lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Underline(true), // cyan
		Timestamp: lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
