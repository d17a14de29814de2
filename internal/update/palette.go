package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/commands"
	"github.com/kocpc001/multimedia-reminder/internal/i18n"
)

func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.paletteOpen = false
		return m, nil
	case "enter":
		input := m.paletteInput.Value()
		m.paletteOpen = false
		return m.runCommand(input)
	}
	var cmd tea.Cmd
	m.paletteInput, cmd = m.paletteInput.Update(msg)
	return m, cmd
}

// runCommand parses the palette input and dispatches it. Handlers queue the
// follow-up tea.Cmd rather than touching the store directly.
func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	var next tea.Cmd
	handlers := commands.Handlers{
		Open: func(args commands.OpenArgs) (commands.Result, error) {
			next = m.openCmd(args.ID)
			return commands.Result{}, nil
		},
		Delete: func(args commands.DeleteArgs) (commands.Result, error) {
			next = m.deleteCmd(args.IDs)
			return commands.Result{}, nil
		},
		List: func() (commands.Result, error) {
			next = m.refreshCmd()
			return commands.Result{Message: fmt.Sprintf("%d reminders", len(m.reminders))}, nil
		},
		Lang: func(args commands.LangArgs) (commands.Result, error) {
			m.bundle = i18n.NewBundle(args.Code)
			return commands.Result{Message: m.bundle.T("app_name")}, nil
		},
	}

	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if res.Message != "" {
		m.status = res.Message
	}
	return m, next
}
