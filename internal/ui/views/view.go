package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chainfeed/internal/domain"
	"chainfeed/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width             int
	Height            int
	Phase             state.Phase
	LastQuery         string
	Activities        []domain.Activity
	ErrorMessage      string
	ShowFullAddresses bool

	// Pre-rendered component views supplied by the model
	TextInputView string
	SpinnerView   string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	activityRender *ActivityRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		activityRender: NewActivityRenderer(styles),
	}
}

// Styles exposes the style set for components the model owns (spinner etc.)
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderHeader produces the title and the query input line.
func (r *Renderer) RenderHeader(vs ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("chainfeed"))
	b.WriteString("\n")
	b.WriteString(r.styles.Prompt.Render("Account: "))
	b.WriteString(vs.TextInputView)
	return b.String()
}

// RenderStatus produces the status region for the current phase: the
// loading line, the error message, the empty-result message, or the
// result count header.
func (r *Renderer) RenderStatus(vs ViewState) string {
	switch vs.Phase {
	case state.PhaseLoading:
		return r.styles.Loading.Render(vs.SpinnerView + "Loading...")
	case state.PhaseError:
		return r.styles.Error.Render(vs.ErrorMessage)
	case state.PhaseResults:
		if len(vs.Activities) == 0 {
			return r.styles.Dim.Render(fmt.Sprintf("%s has no activities", vs.LastQuery))
		}
		return r.styles.Header.Render(CountHeader(vs.LastQuery, len(vs.Activities)))
	default:
		return r.styles.Dim.Render("Type an account address and press enter")
	}
}

// RenderActivityList produces the list body shown below the count header.
// Only called with a non-empty result set; the model feeds it to the
// scrolling viewport.
func (r *Renderer) RenderActivityList(vs ViewState) string {
	items := make([]string, 0, len(vs.Activities))
	for _, a := range vs.Activities {
		items = append(items, r.activityRender.Render(a, vs.ShowFullAddresses))
	}
	return strings.Join(items, "\n\n")
}

// RenderFooter produces the help line at the bottom of the screen.
func (r *Renderer) RenderFooter(vs ViewState) string {
	if vs.HelpView != "" {
		return vs.HelpView
	}
	return r.styles.Help.Render("enter submit • esc clear • q quit")
}

// Render assembles the complete frame from header, status, list and footer.
func (r *Renderer) Render(vs ViewState, listView string) string {
	sections := []string{
		r.RenderHeader(vs),
		r.styles.Status.Render(r.RenderStatus(vs)),
	}
	if vs.Phase == state.PhaseResults && len(vs.Activities) > 0 {
		sections = append(sections, listView)
	}
	sections = append(sections, r.RenderFooter(vs))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return r.styles.Main.Render(content)
}
