// Package update holds the terminal UI: the bubbletea model, its message
// loop and the presenter adapter the reminder engine fires into.
package update

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/capture"
	"github.com/kocpc001/multimedia-reminder/internal/engine"
	"github.com/kocpc001/multimedia-reminder/internal/i18n"
	"github.com/kocpc001/multimedia-reminder/internal/model"
)

const timeLayout = "2006-01-02 15:04"

const defaultCueInterval = time.Second

type View string

const (
	ViewHome    View = "home"
	ViewCompose View = "compose"
	ViewAlert   View = "alert"
)

type composeFocus int

const (
	focusTime composeFocus = iota
	focusContent
)

// Messages crossing the program boundary. ReminderFiredMsg is sent by the
// engine through the ProgramPresenter; the rest are internal.
type (
	ReminderFiredMsg struct{ Reminder model.Reminder }

	alertDismissedMsg struct{}
	alertCueMsg       struct{}

	remindersMsg struct{ reminders []model.Reminder }
	savedMsg     struct{ reminder model.Reminder }
	deletedMsg   struct{ count int }
	statusMsg    struct{ text string }
	errMsg       struct{ err error }
)

type composeState struct {
	timeInput textinput.Model
	noteArea  textarea.Model
	pathInput textinput.Model
	tab       int
	focus     composeFocus
	sync      bool
}

type homeState struct {
	cursor   int
	managing bool
	selected map[string]bool
}

type alertState struct {
	reminder   model.Reminder
	cueRunning bool
}

type Model struct {
	eng      *engine.Engine
	bundle   *i18n.Bundle
	recorder *capture.AudioRecorder
	doodle   capture.DoodleImporter

	view        View
	reminders   []model.Reminder
	home        homeState
	compose     composeState
	alert       alertState
	status      string
	cueInterval time.Duration

	paletteOpen  bool
	paletteInput textinput.Model

	quitting bool
}

type Deps struct {
	Engine      *engine.Engine
	Bundle      *i18n.Bundle
	Recorder    *capture.AudioRecorder
	CueInterval time.Duration
}

func NewModel(deps Deps) Model {
	bundle := deps.Bundle
	if bundle == nil {
		bundle = i18n.NewBundle("en")
	}
	cue := deps.CueInterval
	if cue <= 0 {
		cue = defaultCueInterval
	}

	ti := textinput.New()
	ti.Placeholder = timeLayout
	ti.CharLimit = len(timeLayout)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = bundle.T("placeholder_text")
	ta.SetHeight(4)

	pi := textinput.New()
	pi.Placeholder = "doodle.png"

	pal := textinput.New()
	pal.Placeholder = "open <id> | delete <id...> | list | lang <code>"

	return Model{
		eng:      deps.Engine,
		bundle:   bundle,
		recorder: deps.Recorder,
		view:     ViewHome,
		home:     homeState{selected: map[string]bool{}},
		compose: composeState{
			timeInput: ti,
			noteArea:  ta,
			pathInput: pi,
		},
		cueInterval:  cue,
		paletteInput: pal,
	}
}

// ProgramPresenter bridges the engine to the running bubbletea program.
// Present is safe to call before Attach; fires are simply dropped until a
// program is wired in.
type ProgramPresenter struct {
	mu   sync.Mutex
	prog *tea.Program
}

func NewProgramPresenter() *ProgramPresenter { return &ProgramPresenter{} }

func (p *ProgramPresenter) Attach(prog *tea.Program) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prog = prog
}

func (p *ProgramPresenter) Present(r model.Reminder) {
	p.mu.Lock()
	prog := p.prog
	p.mu.Unlock()
	if prog != nil {
		prog.Send(ReminderFiredMsg{Reminder: r})
	}
}

func (p *ProgramPresenter) Dismiss() {
	p.mu.Lock()
	prog := p.prog
	p.mu.Unlock()
	if prog != nil {
		prog.Send(alertDismissedMsg{})
	}
}
