// Package tui renders a live room session in the terminal: the transcript
// feed with partials and translations, plus room status in the chrome.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	session "github.com/koscakluka/liveroom-core/core"
	"github.com/koscakluka/liveroom-core/core/transcript"
)

type TranscriptMsg []transcript.Entry

type ConnectionMsg string

type HostStatusMsg string

type ParticipantCountMsg int

type NoticeMsg string

type RoomLeftMsg struct{}

var (
	chromeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)
	timestampStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	partialStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	translationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Italic(true)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	viewport viewport.Model
	ready    bool
	updates  chan tea.Msg

	coordinator *session.Coordinator

	connection   string
	hostStatus   string
	participants int
	notice       string
	entries      []transcript.Entry
}

func newModel(coordinator *session.Coordinator, updates chan tea.Msg) model {
	return model{
		updates:     updates,
		coordinator: coordinator,
		connection:  string(coordinator.ConnectionState()),
		entries:     coordinator.Transcript(),
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func waitForUpdate(updates chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		verticalMarginHeight := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMarginHeight)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(m.transcriptView())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMarginHeight
		}

	case TranscriptMsg:
		m.entries = msg
		m.viewport.SetContent(m.transcriptView())
		m.viewport.GotoBottom()
		cmds = append(cmds, waitForUpdate(m.updates))

	case ConnectionMsg:
		m.connection = string(msg)
		cmds = append(cmds, waitForUpdate(m.updates))

	case HostStatusMsg:
		m.hostStatus = string(msg)
		cmds = append(cmds, waitForUpdate(m.updates))

	case ParticipantCountMsg:
		m.participants = int(msg)
		cmds = append(cmds, waitForUpdate(m.updates))

	case NoticeMsg:
		m.notice = string(msg)
		cmds = append(cmds, waitForUpdate(m.updates))

	case RoomLeftMsg:
		return m, tea.Quit
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if !m.ready {
		return "\n  Connecting..."
	}
	return fmt.Sprintf(
		"%s\n%s\n%s",
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m model) headerView() string {
	label := fmt.Sprintf("Room %s", m.coordinator.RoomCode())
	if role := m.coordinator.Role(); role != session.RoleNone {
		label = fmt.Sprintf("%s · %s", label, role)
	}
	title := chromeStyle.Render(label)
	line := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(title)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, line)
}

func (m model) footerView() string {
	status := m.connection
	if m.hostStatus != "" {
		status = fmt.Sprintf("%s · host %s", status, m.hostStatus)
	}
	if m.participants > 0 {
		status = fmt.Sprintf("%s · %d listening", status, m.participants)
	}
	if m.notice != "" {
		status = fmt.Sprintf("%s · %s", status, noticeStyle.Render(m.notice))
	}

	info := chromeStyle.Render(status)
	line := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(info)))
	return lipgloss.JoinHorizontal(lipgloss.Center, line, info)
}

// transcriptView renders entries oldest to newest. The feed delivers them
// newest first.
func (m model) transcriptView() string {
	var content strings.Builder
	for i := len(m.entries) - 1; i >= 0; i-- {
		entry := m.entries[i]

		text := m.wrap(entry.Text)
		if !entry.IsFinal {
			text = partialStyle.Render(text + "…")
		}

		content.WriteString(timestampStyle.Render(entry.Timestamp.Format("15:04:05")))
		content.WriteString(" ")
		content.WriteString(text)
		content.WriteString("\n")

		if entry.Translation != "" {
			content.WriteString("         ")
			content.WriteString(translationStyle.Render(m.wrap(entry.Translation)))
			content.WriteString("\n")
		}
	}
	return content.String()
}

func (m model) wrap(text string) string {
	if m.viewport.Width <= 10 {
		return text
	}
	return wordwrap.String(text, m.viewport.Width-10)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Run drives the terminal view until the user quits or the session ends.
// The feed's options must have been passed to the coordinator's constructor.
func Run(coordinator *session.Coordinator, feed *Feed) error {
	p := tea.NewProgram(
		newModel(coordinator, feed.updates),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
