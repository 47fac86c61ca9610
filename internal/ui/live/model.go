package live

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickInterval = 250 * time.Millisecond

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// Model is the Bubble Tea model of a session: it reduces run events into
// State and redraws the run table on every event and clock tick.
type Model struct {
	opts   Options
	events <-chan Event
	state  State
	runs   table.Model
	now    time.Time
}

// EventMsg wraps a session event for Bubble Tea.
type EventMsg struct {
	Event Event
}

type tickMsg time.Time

// NewModel builds a model that consumes events until the channel closes.
func NewModel(events <-chan Event, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	runs := table.New(
		table.WithColumns(defaultColumns()),
		table.WithFocused(false),
	)
	runs.SetStyles(tableStyles(opts.NoColor))
	return Model{opts: opts, events: events, runs: runs, now: time.Now()}
}

// State returns the reduced session state.
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.next(), m.tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.state = Reduce(m.state, msg.Event)
		m.refresh()
		if m.state.Finished {
			return m, tea.Quit
		}
		return m, m.next()
	case tickMsg:
		m.now = time.Time(msg)
		m.refresh()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.runs.SetColumns(columnsForWidth(msg.Width))
		m.runs.SetWidth(msg.Width)
		m.runs.SetHeight(max(msg.Height-4, 1))
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	lines := []string{
		renderHeader(m.state, m.now, m.opts.NoColor),
		renderSummary(m.state, m.opts.NoColor),
		m.runs.View(),
	}
	if footer := renderFooter(m.state, m.opts.NoColor); footer != "" {
		lines = append(lines, footer)
	}
	return strings.Join(lines, "\n")
}

// refresh rebuilds the table rows from state.
func (m *Model) refresh() {
	m.runs.SetRows(rowsForState(m.state, m.now, m.opts.NoColor))
}

// next waits for the following event; a closed channel quits the program.
func (m Model) next() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.QuitMsg{}
		}
		return EventMsg{Event: event}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
