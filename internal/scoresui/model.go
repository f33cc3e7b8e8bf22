// Package scoresui provides the Bubble Tea score browser.
package scoresui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuimole/internal/model"
	"github.com/verte-zerg/tuimole/internal/scores"
	"github.com/verte-zerg/tuimole/internal/store"
)

const (
	tabOverview = iota
	tabHistory
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	plotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea scores UI.
type Model struct {
	store  *store.Store
	filter model.RoundFilter

	report scores.Report
	errMsg string

	tabs      []string
	activeTab int
	overview  viewport.Model
	history   table.Model

	width  int
	height int
}

// NewModel constructs a scores UI model.
func NewModel(st *store.Store, filter model.RoundFilter) *Model {
	m := &Model{
		store:    st,
		filter:   filter,
		tabs:     []string{"Overview", "History"},
		overview: viewport.New(0, 0),
		history:  buildHistoryTable(nil, 0, 1),
	}
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabHistory {
				m.history.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabHistory {
				m.history.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabHistory {
				var cmd tea.Cmd
				m.history, cmd = m.history.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.overview, cmd = m.overview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	var body string
	if m.activeTab == tabHistory {
		if len(m.report.Rounds) == 0 {
			body = "No rounds recorded yet."
		} else {
			body = m.history.View()
		}
	} else {
		body = m.overview.View()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabHistory {
		m.history.Focus()
	} else {
		m.history.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	return headerStyle.Render("Nav: left/right  Scroll: up/down  Quit: q")
}

func (m *Model) updateLayout() {
	header := m.renderTabs()
	bodyHeight := m.height - lipgloss.Height(header) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.history.SetWidth(m.width)
	m.history.SetHeight(bodyHeight)
	m.overview.SetContent(m.renderOverview())
}

func (m *Model) refreshReport() {
	report, err := scores.BuildReport(context.Background(), m.store, m.filter)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.report = report
	m.history = buildHistoryTable(report.Rounds, m.width, maxInt(1, m.height-3))
	m.overview.SetContent(m.renderOverview())
}

func (m *Model) renderOverview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("High Scores"))
	b.WriteString("\n")
	if len(m.report.Bests) == 0 {
		b.WriteString("None yet. Go whack some moles.\n")
	} else {
		for _, line := range scores.FormatBests(m.report.Bests) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(m.report.Summary()))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Score History"))
	b.WriteString("\n")
	width := m.width
	if width <= 0 {
		width = scores.TerminalWidth()
	}
	b.WriteString(plotStyle.Render(scores.Plot(m.report.ScoreSeries(), width, 8)))
	return b.String()
}

func buildHistoryTable(rounds []model.RoundRecord, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Played", Width: 17},
		{Title: "Mode", Width: 8},
		{Title: "Key", Width: 8},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Level", Width: 6},
	}
	rows := make([]table.Row, 0, len(rounds))
	// Newest first in the table.
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		rows = append(rows, table.Row{
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
			string(r.Mode),
			r.Key,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%ds", int(r.Duration/time.Second)),
			fmt.Sprintf("%d", r.Level),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A"))
	t.SetStyles(styles)
	return t
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
