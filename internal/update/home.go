package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/model"
	"github.com/kocpc001/multimedia-reminder/internal/views"
)

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.home.cursor < len(m.reminders)-1 {
			m.home.cursor++
		}
		return m, nil

	case "k", "up":
		if m.home.cursor > 0 {
			m.home.cursor--
		}
		return m, nil

	case "a":
		return m.enterCompose()

	case "m":
		m.home.managing = !m.home.managing
		if !m.home.managing {
			m.home.selected = map[string]bool{}
		}
		return m, nil

	case "x", " ":
		if m.home.managing && m.home.cursor < len(m.reminders) {
			id := m.reminders[m.home.cursor].ID
			if m.home.selected[id] {
				delete(m.home.selected, id)
			} else {
				m.home.selected[id] = true
			}
		}
		return m, nil

	case "d":
		if !m.home.managing {
			return m, nil
		}
		ids := make([]string, 0, len(m.home.selected))
		for id := range m.home.selected {
			ids = append(ids, id)
		}
		if len(ids) == 0 && m.home.cursor < len(m.reminders) {
			ids = append(ids, m.reminders[m.home.cursor].ID)
		}
		if len(ids) == 0 {
			return m, nil
		}
		return m, m.deleteCmd(ids)

	case "enter", "o":
		if m.home.cursor < len(m.reminders) {
			return m, m.openCmd(m.reminders[m.home.cursor].ID)
		}
		return m, nil

	case "/":
		m.paletteOpen = true
		m.paletteInput.SetValue("")
		m.paletteInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) homeBody() string {
	items := make([]views.HomeItemData, 0, len(m.reminders))
	upcoming := 0
	for i, rem := range m.reminders {
		if rem.Status == model.StatusPending {
			upcoming++
		}
		items = append(items, views.HomeItemData{
			ID:       rem.ID,
			When:     rem.ScheduledAt.Local().Format(timeLayout),
			Kind:     string(rem.Kind),
			Preview:  previewFor(rem),
			Past:     rem.Status == model.StatusCompleted,
			Cursor:   i == m.home.cursor,
			Selected: m.home.selected[rem.ID],
			ShowBox:  m.home.managing,
		})
	}
	return views.RenderHome(views.HomeData{
		Upcoming:   upcoming,
		Items:      items,
		EmptyTitle: m.bundle.T("no_reminders_title"),
		EmptyDesc:  m.bundle.T("no_reminders_desc"),
	})
}

func (m Model) homeFooter() string {
	if m.home.managing {
		return fmt.Sprintf("x %s  d %s  m %s", m.bundle.T("manage"), "delete", m.bundle.T("done"))
	}
	return fmt.Sprintf("a %s  enter open  m %s  / cmd  q quit", m.bundle.T("new_reminder"), m.bundle.T("manage"))
}

func previewFor(rem model.Reminder) string {
	switch rem.Kind {
	case model.KindText:
		s := rem.TextContent
		if len(s) > 24 {
			s = s[:24] + "…"
		}
		return s
	case model.KindVoice:
		return fmt.Sprintf("voice memo (%d bytes)", len(rem.Payload))
	case model.KindDoodle:
		return fmt.Sprintf("doodle (%d bytes)", len(rem.Payload))
	}
	return ""
}

func (m Model) deleteCmd(ids []string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		if err := eng.Delete(context.Background(), ids...); err != nil {
			return errMsg{err: err}
		}
		return deletedMsg{count: len(ids)}
	}
}

func (m Model) openCmd(id string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		if err := eng.Open(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}
