package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/engine"
	"github.com/kocpc001/multimedia-reminder/internal/model"
	"github.com/kocpc001/multimedia-reminder/internal/views"
)

var composeKinds = []model.Kind{model.KindVoice, model.KindText, model.KindDoodle}

func (m Model) enterCompose() (tea.Model, tea.Cmd) {
	m.view = ViewCompose
	m.compose.tab = 0
	m.compose.focus = focusTime
	m.compose.sync = false
	m.compose.timeInput.SetValue("")
	m.compose.timeInput.Focus()
	m.compose.noteArea.SetValue("")
	m.compose.noteArea.Blur()
	m.compose.pathInput.SetValue("")
	m.compose.pathInput.Blur()
	m.doodle.Reset()
	m.status = ""
	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancelCompose()

	case "ctrl+s":
		return m.submitCompose()

	case "ctrl+k":
		m.compose.tab = (m.compose.tab + 1) % len(composeKinds)
		return m.syncComposeFocus(), nil

	case "ctrl+g":
		m.compose.sync = !m.compose.sync
		return m, nil

	case "tab":
		if m.compose.focus == focusTime {
			m.compose.focus = focusContent
		} else {
			m.compose.focus = focusTime
		}
		return m.syncComposeFocus(), nil
	}

	if m.compose.focus == focusContent && composeKinds[m.compose.tab] == model.KindVoice {
		if msg.String() == "r" {
			return m.toggleRecording()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case m.compose.focus == focusTime:
		m.compose.timeInput, cmd = m.compose.timeInput.Update(msg)
	case composeKinds[m.compose.tab] == model.KindText:
		m.compose.noteArea, cmd = m.compose.noteArea.Update(msg)
	case composeKinds[m.compose.tab] == model.KindDoodle:
		m.compose.pathInput, cmd = m.compose.pathInput.Update(msg)
	}
	return m, cmd
}

func (m Model) syncComposeFocus() Model {
	m.compose.timeInput.Blur()
	m.compose.noteArea.Blur()
	m.compose.pathInput.Blur()
	if m.compose.focus == focusTime {
		m.compose.timeInput.Focus()
		return m
	}
	switch composeKinds[m.compose.tab] {
	case model.KindText:
		m.compose.noteArea.Focus()
	case model.KindDoodle:
		m.compose.pathInput.Focus()
	}
	return m
}

func (m Model) cancelCompose() (tea.Model, tea.Cmd) {
	if m.recorder != nil && m.recorder.Recording() {
		m.recorder.Cancel()
	}
	m.doodle.Reset()
	m.view = ViewHome
	m.status = ""
	return m, nil
}

func (m Model) toggleRecording() (tea.Model, tea.Cmd) {
	if m.recorder == nil {
		m.status = m.bundle.T("mic_error")
		return m, nil
	}
	if m.recorder.Recording() {
		// Leave the recorder running until save so Stop returns the bytes
		// exactly once. Recording stops on submit or cancel.
		return m, nil
	}
	if err := m.recorder.Start(context.Background()); err != nil {
		m.status = m.bundle.T("mic_error")
		return m, nil
	}
	m.status = m.bundle.T("recording")
	return m, nil
}

// submitCompose assembles a draft from the active tab and hands it to the
// engine. Buffers are consumed and reset only after a successful save.
func (m Model) submitCompose() (tea.Model, tea.Cmd) {
	when, err := time.ParseInLocation(timeLayout, m.compose.timeInput.Value(), time.Local)
	if err != nil {
		m.status = m.bundle.T("error_no_time")
		return m, nil
	}

	draft := engine.Draft{
		ScheduledAt:   when,
		Kind:          composeKinds[m.compose.tab],
		SyncRequested: m.compose.sync,
	}

	switch draft.Kind {
	case model.KindVoice:
		if m.recorder == nil || !m.recorder.Recording() {
			m.status = m.bundle.T("error_no_content")
			return m, nil
		}
		data, err := m.recorder.Stop()
		if err != nil {
			m.status = m.bundle.T("mic_error")
			return m, nil
		}
		draft.Payload = data

	case model.KindText:
		draft.TextContent = m.compose.noteArea.Value()

	case model.KindDoodle:
		if err := m.doodle.ImportFile(m.compose.pathInput.Value()); err != nil {
			m.status = m.bundle.T("error_no_content")
			return m, nil
		}
		draft.Payload = m.doodle.Bytes()
		m.doodle.Reset()
	}

	return m, m.saveCmd(draft)
}

func (m Model) saveCmd(draft engine.Draft) tea.Cmd {
	eng := m.eng
	bundle := m.bundle
	return func() tea.Msg {
		rem, err := eng.Save(context.Background(), draft)
		if err != nil {
			return statusMsg{text: bundle.T("error_no_content")}
		}
		return savedMsg{reminder: rem}
	}
}

func (m Model) composeBody() string {
	tabs := []string{m.bundle.T("tab_voice"), m.bundle.T("tab_text"), m.bundle.T("tab_doodle")}

	var tabView string
	switch composeKinds[m.compose.tab] {
	case model.KindVoice:
		if m.recorder != nil && m.recorder.Recording() {
			tabView = m.bundle.T("recording")
		} else {
			tabView = m.bundle.T("tap_to_record")
		}
	case model.KindText:
		tabView = m.compose.noteArea.View()
	case model.KindDoodle:
		tabView = m.compose.pathInput.View()
	}

	return views.RenderCompose(views.ComposeData{
		Title:     m.bundle.T("new_reminder"),
		WhenLabel: m.bundle.T("when"),
		TimeView:  m.compose.timeInput.View(),
		Tabs:      tabs,
		ActiveTab: m.compose.tab,
		TabView:   tabView,
		Sync:      m.compose.sync,
		SyncLabel: m.bundle.T("sync_gcal"),
	})
}

func (m Model) composeFooter() string {
	return fmt.Sprintf("ctrl+s %s  ctrl+k tab  ctrl+g sync  esc %s",
		m.bundle.T("save"), m.bundle.T("cancel"))
}
