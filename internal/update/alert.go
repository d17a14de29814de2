package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/model"
	"github.com/kocpc001/multimedia-reminder/internal/views"
)

// enterAlert switches to the alert screen. A fire arriving while an alert
// is already up replaces it; the cue loop keeps running either way.
func (m Model) enterAlert(rem model.Reminder) (tea.Model, tea.Cmd) {
	m.alert.reminder = rem
	m.view = ViewAlert
	m.status = ""
	if m.alert.cueRunning {
		return m, nil
	}
	m.alert.cueRunning = true
	return m, m.cueCmd()
}

func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Snooze dismisses like complete does; it does not reschedule.
	case "enter", "esc", "c", "s":
		return m.dismissAlert()
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) dismissAlert() (tea.Model, tea.Cmd) {
	m.alert.cueRunning = false
	m.view = ViewHome
	return m, m.refreshCmd()
}

// handleCue rings the terminal bell and reschedules itself while the alert
// screen is up. Dismissal lets the chain die out.
func (m Model) handleCue() (tea.Model, tea.Cmd) {
	if m.view != ViewAlert {
		m.alert.cueRunning = false
		return m, nil
	}
	return m, tea.Batch(ringBell, m.cueCmd())
}

func (m Model) cueCmd() tea.Cmd {
	return tea.Tick(m.cueInterval, func(time.Time) tea.Msg {
		return alertCueMsg{}
	})
}

func ringBell() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m Model) alertBody() string {
	rem := m.alert.reminder

	var content string
	switch rem.Kind {
	case model.KindText:
		content = views.RenderMarkdown(rem.TextContent)
	case model.KindVoice:
		content = fmt.Sprintf("voice memo, %d bytes", len(rem.Payload))
	case model.KindDoodle:
		content = fmt.Sprintf("doodle, %d bytes", len(rem.Payload))
	}

	return views.RenderAlert(views.AlertData{
		Title:   m.bundle.T("alert_title"),
		When:    rem.ScheduledAt.Local().Format(timeLayout),
		Kind:    string(rem.Kind),
		Content: content,
	})
}

func (m Model) alertFooter() string {
	return fmt.Sprintf("enter %s  s %s", m.bundle.T("complete"), m.bundle.T("snooze"))
}
