package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/views"
)

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReminderFiredMsg:
		return m.enterAlert(msg.Reminder)

	case alertDismissedMsg:
		return m.dismissAlert()

	case alertCueMsg:
		return m.handleCue()

	case remindersMsg:
		m.reminders = msg.reminders
		if m.home.cursor >= len(m.reminders) {
			m.home.cursor = len(m.reminders) - 1
		}
		if m.home.cursor < 0 {
			m.home.cursor = 0
		}
		return m, nil

	case savedMsg:
		m.status = m.bundle.T("save_success")
		m.view = ViewHome
		return m, m.refreshCmd()

	case deletedMsg:
		m.status = fmt.Sprintf("%s: %d", m.bundle.T("done"), msg.count)
		m.home.selected = map[string]bool{}
		m.home.managing = false
		return m, m.refreshCmd()

	case statusMsg:
		m.status = msg.text
		return m, nil

	case errMsg:
		m.status = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.paletteOpen {
			return m.updatePalette(msg)
		}
		switch m.view {
		case ViewAlert:
			return m.updateAlert(msg)
		case ViewCompose:
			return m.updateCompose(msg)
		default:
			return m.updateHome(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body, footer string
	switch m.view {
	case ViewAlert:
		body = m.alertBody()
		footer = m.alertFooter()
	case ViewCompose:
		body = m.composeBody()
		footer = m.composeFooter()
	default:
		body = m.homeBody()
		footer = m.homeFooter()
	}

	if m.paletteOpen {
		body += "\n\n/ " + m.paletteInput.View()
	}

	return views.RenderApp(views.AppData{
		Header:     m.bundle.T("app_name"),
		Body:       body,
		StatusLine: m.status,
		Footer:     footer,
	})
}

func (m Model) refreshCmd() tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		reminders, err := eng.List(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return remindersMsg{reminders: reminders}
	}
}
