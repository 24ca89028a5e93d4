package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/minicodemonkey/bells/internal/config"
	"github.com/minicodemonkey/bells/internal/generate"
)

// GenerateEventMsg wraps a generator event for the Bubble Tea model.
type GenerateEventMsg struct {
	Event generate.Event
}

// GenerateFinishedMsg is sent when the generator's event channel closes.
type GenerateFinishedMsg struct{}

type cueRow struct {
	cue    config.Cue
	status CueStatus
	path   string
	err    error
}

// Model is the Bubble Tea model showing bell generation progress.
type Model struct {
	rows   []cueRow
	events <-chan generate.Event
	done   bool
}

// NewModel creates a Model for the catalog's cues fed by events.
func NewModel(cat *config.Catalog, events <-chan generate.Event) Model {
	rows := make([]cueRow, len(cat.Cues))
	for i, cue := range cat.Cues {
		rows[i] = cueRow{cue: cue}
	}
	return Model{rows: rows, events: events}
}

// Init starts listening for generator events.
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GenerateEventMsg:
		m.apply(msg.Event)
		return m, m.listenForEvents()
	case GenerateFinishedMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) apply(e generate.Event) {
	if e.Index < 0 || e.Index >= len(m.rows) {
		return
	}
	row := &m.rows[e.Index]
	switch e.Type {
	case generate.EventStarted:
		row.status = StatusInProgress
	case generate.EventWritten:
		row.status = StatusWritten
		row.path = e.Path
	case generate.EventFailed:
		row.status = StatusFailed
		row.err = e.Err
	}
}

func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.events
		if !ok {
			return GenerateFinishedMsg{}
		}
		return GenerateEventMsg{Event: e}
	}
}

// Failed returns the number of cues that failed.
func (m Model) Failed() int {
	n := 0
	for _, r := range m.rows {
		if r.status == StatusFailed {
			n++
		}
	}
	return n
}

// View renders the cue list and, once finished, a summary line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Generating meditation bells..."))
	b.WriteString("\n\n")

	for i, r := range m.rows {
		fmt.Fprintf(&b, " %s %d. %s %s\n",
			GetStatusIcon(r.status),
			i+1,
			cueNameStyle.Render(r.cue.Name),
			mutedStyle.Render(cueDetail(r.cue)))
		switch {
		case r.err != nil:
			b.WriteString("     " + errorStyle.Render(r.err.Error()) + "\n")
		case r.path != "":
			b.WriteString("     " + mutedStyle.Render(r.path) + "\n")
		}
	}

	if m.done {
		b.WriteString("\n" + RenderSummary(len(m.rows), m.Failed()) + "\n")
	}
	return b.String()
}

func cueDetail(cue config.Cue) string {
	return fmt.Sprintf("- %s (%g Hz, %gs)", cue.Description, cue.Frequency, cue.Duration)
}

// RenderLine renders a single event as a styled line for non-interactive output.
// Started events render as an empty string.
func RenderLine(e generate.Event) string {
	switch e.Type {
	case generate.EventWritten:
		return fmt.Sprintf("%s Generated: %s %s", GetStatusIcon(StatusWritten), e.Path, mutedStyle.Render(cueDetail(e.Cue)))
	case generate.EventFailed:
		return fmt.Sprintf("%s Failed: %s %s", GetStatusIcon(StatusFailed), cueNameStyle.Render(e.Cue.Name), errorStyle.Render(fmt.Sprint(e.Err)))
	default:
		return ""
	}
}

// RenderSummary renders the closing line for a run of total cues.
func RenderSummary(total, failed int) string {
	if failed > 0 {
		return summaryErrorStyle.Render(fmt.Sprintf("%d of %d meditation bells failed.", failed, total))
	}
	return summaryCompleteStyle.Render("All meditation bells generated successfully!")
}
