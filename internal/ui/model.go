package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"chainfeed/internal/domain"
	"chainfeed/internal/eventbus"
	"chainfeed/internal/ui/state"
	"chainfeed/internal/ui/views"
)

// fetchFailedMessage is the single user-facing message for any fetch
// failure; the cause goes to the log only.
const fetchFailedMessage = "Failed to fetch data"

// ActivityFetcher supplies account activities from the data API
type ActivityFetcher interface {
	FetchActivities(ctx context.Context, account string, limit int) ([]domain.Activity, error)
}

// keyMap defines the key bindings shown in help
type keyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Clear}, {k.Toggle, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "full addresses")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	fetcher ActivityFetcher
	state   *state.AppState

	limit          int
	requestTimeout time.Duration // 0 means no deadline
	initialQuery   string

	// UI-specific state not in AppState
	width    int
	height   int
	input    textinput.Model
	spin     spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	renderer *views.Renderer
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, fetcher ActivityFetcher, limit int, requestTimeout time.Duration) *Model {
	renderer := views.NewRenderer()

	input := textinput.New()
	input.Placeholder = "0x..."
	input.Prompt = "" // prompt is rendered by the view layer
	input.CharLimit = 128
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = renderer.Styles().Loading

	vp := viewport.New(80, 20)
	// Letter and vi-style bindings would collide with typing into the
	// always-focused query input.
	vp.KeyMap = viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	if limit <= 0 {
		limit = 20
	}

	return &Model{
		bus:            bus,
		fetcher:        fetcher,
		state:          state.NewAppState(),
		limit:          limit,
		requestTimeout: requestTimeout,
		input:          input,
		spin:           spin,
		viewport:       vp,
		help:           help.New(),
		keys:           defaultKeyMap(),
		renderer:       renderer,
	}
}

// SetInitialQuery queues an account to be submitted as soon as the program
// starts (the optional CLI positional argument).
func (m *Model) SetInitialQuery(account string) {
	m.initialQuery = account
}

// State exposes the presenter state for inspection in tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialQuery != "" {
		m.input.SetValue(m.initialQuery)
		if cmd := m.submit(m.initialQuery); cmd != nil {
			cmds = append(cmds, cmd, m.spin.Tick)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportSize()
		m.refreshList()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.state.Reset()
			m.bus.Publish(eventbus.QueryClearedEvent{})
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			cmd := m.submit(m.input.Value())
			if cmd != nil {
				return m, tea.Batch(cmd, m.spin.Tick)
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.state.ShowFullAddresses = !m.state.ShowFullAddresses
			m.refreshList()
			return m, nil
		}

		// Everything else edits the input or scrolls the list
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.viewport, cmd = m.viewport.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.state.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case activitiesMsg:
		return m.handleActivities(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit processes a confirmed query. The text is taken verbatim; a blank
// query resets the presenter without touching the network.
func (m *Model) submit(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" {
		m.state.Reset()
		m.bus.Publish(eventbus.QueryClearedEvent{})
		return nil
	}

	seq := m.state.BeginFetch()
	m.bus.Publish(eventbus.QuerySubmittedEvent{Account: query, Seq: seq})
	return m.fetchActivities(seq, query)
}

// fetchActivities runs the collaborator call off the update loop and
// reports back with the submission's sequence number.
func (m *Model) fetchActivities(seq uint64, account string) tea.Cmd {
	fetcher := m.fetcher
	limit := m.limit
	timeout := m.requestTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		activities, err := fetcher.FetchActivities(ctx, account, limit)
		return activitiesMsg{seq: seq, account: account, activities: activities, err: err}
	}
}

// handleActivities applies a fetch outcome to the presenter state
func (m *Model) handleActivities(msg activitiesMsg) (tea.Model, tea.Cmd) {
	applied := m.state.CompleteFetch(msg.seq, msg.account, msg.activities, msg.err, fetchFailedMessage)
	if !applied {
		log.Printf("Dropping stale fetch result for %s (seq %d, latest %d)", msg.account, msg.seq, m.state.Seq)
		return m, nil
	}

	if msg.err != nil {
		log.Printf("Fetch failed for %s: %v", msg.account, msg.err)
		m.bus.Publish(eventbus.FetchFailedEvent{Account: msg.account, Err: msg.err, Seq: msg.seq})
		return m, nil
	}

	m.bus.Publish(eventbus.ActivitiesLoadedEvent{Account: msg.account, Count: len(msg.activities), Seq: msg.seq})
	m.refreshList()
	m.viewport.GotoTop()
	return m, nil
}

// refreshList re-renders the viewport content from the current result set
func (m *Model) refreshList() {
	if m.state.Phase != state.PhaseResults || len(m.state.Activities) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderer.RenderActivityList(m.viewState()))
}

// updateViewportSize fits the list viewport under the header and status
// chrome. The frame uses a fixed number of rows around the list.
func (m *Model) updateViewportSize() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	height := m.height - 10
	if height < 3 {
		height = 3
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m *Model) viewState() views.ViewState {
	return views.ViewState{
		Width:             m.width,
		Height:            m.height,
		Phase:             m.state.Phase,
		LastQuery:         m.state.LastQuery,
		Activities:        m.state.Activities,
		ErrorMessage:      m.state.ErrorMessage,
		ShowFullAddresses: m.state.ShowFullAddresses,
		TextInputView:     m.input.View(),
		SpinnerView:       m.spin.View(),
		HelpView:          m.help.View(m.keys),
	}
}

// View renders the UI
func (m *Model) View() string {
	vs := m.viewState()
	return m.renderer.Render(vs, m.viewport.View())
}
