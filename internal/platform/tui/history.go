package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

const maxHistory = 100

// HistorySource reads recorded results.
type HistorySource interface {
	RecentMatches(limit int) ([]storage.MatchRecord, error)
	Standings() (storage.Standings, error)
}

var _ HistorySource = (*storage.Store)(nil)

// HistoryFor returns store as a HistorySource, or nil when the store is not open.
func HistoryFor(store *storage.Store) HistorySource {
	if store == nil {
		return nil
	}
	return store
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists recent matches and overall standings.
type HistoryModel struct {
	source    HistorySource
	matches   []storage.MatchRecord
	standings storage.Standings
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates the history screen and loads results from source.
// A nil source shows an empty history.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Mode", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 8},
		{Title: "Rounds", Width: 6},
		{Title: "Result", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *HistoryModel) load() {
	m.matches, m.standings, m.loadErr = nil, storage.Standings{}, nil
	if m.source != nil {
		matches, err := m.source.RecentMatches(maxHistory)
		if err != nil {
			m.loadErr = err
		} else {
			m.matches = matches
		}
		if st, err := m.source.Standings(); err == nil {
			m.standings = st
		}
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, r := range m.matches {
		rows[i] = MatchRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// MatchRow formats a match for tabular display.
func MatchRow(r storage.MatchRecord) []string {
	return []string{
		r.CreatedAt.Local().Format("Jan 02 15:04"),
		r.Difficulty,
		fmt.Sprintf("%d-%d", r.Score1, r.Score2),
		WinnerLabel(r.Winner),
		fmt.Sprintf("%d", r.Rounds),
		r.EndReason,
	}
}

// WinnerLabel names a match or round winner.
func WinnerLabel(id core.PlayerID) string {
	if id == core.NoPlayer {
		return "-"
	}
	return id.String()
}

// StandingsLine summarizes standings on one line.
func StandingsLine(st storage.Standings) string {
	return fmt.Sprintf("Matches %d (abandoned %d) | Match wins P1 %d  P2 %d | Rounds P1 %d  P2 %d  draws %d",
		st.Matches, st.Abandoned, st.MatchWins1, st.MatchWins2, st.RoundWins1, st.RoundWins2, st.DrawRounds)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("MATCH HISTORY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(StandingsLine(m.standings), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.loadErr != nil:
		content = menuDetailStyle.Padding(1, 2).Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.matches) == 0:
		content = menuDetailStyle.Padding(1, 2).Render("No matches recorded yet.\nWin a round to start the record!")
	default:
		content = m.table.View()
	}
	box := boxStyle.Render(content)
	pad := strings.Repeat(" ", max(0, (m.width-lipgloss.Width(box))/2))
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(pad + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory shows the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(source HistorySource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewHistoryModel(source, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
