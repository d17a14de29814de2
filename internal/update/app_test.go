package update

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kocpc001/multimedia-reminder/internal/engine"
	"github.com/kocpc001/multimedia-reminder/internal/i18n"
	"github.com/kocpc001/multimedia-reminder/internal/model"
	"github.com/kocpc001/multimedia-reminder/internal/storage"
)

func setupModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "app-test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	eng := engine.New(repo, NewProgramPresenter())
	m := NewModel(Deps{Engine: eng, Bundle: i18n.NewBundle("en")})
	return m, eng
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T", next)
	}
	return out, cmd
}

// drive runs a command and feeds any resulting message back into the model.
func drive(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		m, cmd = step(t, m, msg)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHomeShowsEmptyState(t *testing.T) {
	m, _ := setupModel(t)
	m = drive(t, m, m.Init())

	out := m.View()
	if !strings.Contains(out, "No Reminders Yet") {
		t.Fatalf("expected empty state, got:\n%s", out)
	}
}

func TestReminderFiredShowsAlertWithCue(t *testing.T) {
	m, _ := setupModel(t)

	rem := model.Reminder{
		ID:          "rem-1",
		ScheduledAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		Kind:        model.KindText,
		TextContent: "water the plants",
		Status:      model.StatusPending,
	}
	m, cmd := step(t, m, ReminderFiredMsg{Reminder: rem})
	if m.view != ViewAlert {
		t.Fatalf("expected alert view, got %s", m.view)
	}
	if cmd == nil {
		t.Fatal("expected a cue command to start")
	}
	if out := m.View(); !strings.Contains(out, "water the plants") {
		t.Fatalf("alert should render payload, got:\n%s", out)
	}

	// The cue keeps rescheduling while the alert is up.
	m, cmd = step(t, m, alertCueMsg{})
	if cmd == nil {
		t.Fatal("cue should reschedule while alert is visible")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != ViewHome {
		t.Fatalf("dismiss should return home, got %s", m.view)
	}
	m, cmd = step(t, m, alertCueMsg{})
	if cmd != nil {
		t.Fatal("cue should stop after dismissal")
	}
}

func TestSnoozeKeyBehavesLikeDismiss(t *testing.T) {
	m, eng := setupModel(t)
	ctx := context.Background()

	saved, err := eng.Save(ctx, engine.Draft{
		ScheduledAt: time.Now().Add(time.Hour),
		Kind:        model.KindText,
		TextContent: "stretch",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	m, _ = step(t, m, ReminderFiredMsg{Reminder: saved})
	m, _ = step(t, m, keyRune('s'))
	if m.view != ViewHome {
		t.Fatalf("snooze should dismiss, got view %s", m.view)
	}

	// Snooze never reschedules: the stored time is untouched.
	reminders, err := eng.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reminders) != 1 || !reminders[0].ScheduledAt.Equal(saved.ScheduledAt) {
		t.Fatalf("scheduled time changed: %#v", reminders)
	}
}

func TestNewFireReplacesActiveAlert(t *testing.T) {
	m, _ := setupModel(t)

	first := model.Reminder{ID: "a", Kind: model.KindText, TextContent: "first", Status: model.StatusPending, ScheduledAt: time.Now()}
	second := model.Reminder{ID: "b", Kind: model.KindText, TextContent: "second", Status: model.StatusPending, ScheduledAt: time.Now()}

	m, _ = step(t, m, ReminderFiredMsg{Reminder: first})
	m, cmd := step(t, m, ReminderFiredMsg{Reminder: second})
	if cmd != nil {
		t.Fatal("second fire must not start a second cue loop")
	}
	if m.alert.reminder.ID != "b" {
		t.Fatalf("expected alert superseded by %q, showing %q", "b", m.alert.reminder.ID)
	}
}

func TestComposeSavesTextReminder(t *testing.T) {
	m, eng := setupModel(t)
	ctx := context.Background()

	m, _ = step(t, m, keyRune('a'))
	if m.view != ViewCompose {
		t.Fatalf("expected compose view, got %s", m.view)
	}

	m.compose.timeInput.SetValue("2026-02-09 13:00")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlK}) // voice -> text
	m.compose.noteArea.SetValue("buy milk")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected save command")
	}
	m = drive(t, m, cmd)

	if m.view != ViewHome {
		t.Fatalf("save should return home, got %s", m.view)
	}
	if !strings.Contains(m.status, "saved") {
		t.Fatalf("expected save status, got %q", m.status)
	}

	reminders, err := eng.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reminders) != 1 || reminders[0].TextContent != "buy milk" || reminders[0].Status != model.StatusPending {
		t.Fatalf("unexpected stored reminder: %#v", reminders)
	}
}

func TestComposeRejectsMissingTime(t *testing.T) {
	m, _ := setupModel(t)

	m, _ = step(t, m, keyRune('a'))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("missing time must not save")
	}
	if m.view != ViewCompose {
		t.Fatalf("expected to stay in compose, got %s", m.view)
	}
	if m.status == "" {
		t.Fatal("expected a validation status")
	}
}

func TestPaletteDeleteRemovesReminder(t *testing.T) {
	m, eng := setupModel(t)
	ctx := context.Background()

	saved, err := eng.Save(ctx, engine.Draft{
		ScheduledAt: time.Now().Add(time.Hour),
		Kind:        model.KindText,
		TextContent: "old note",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	m = drive(t, m, m.Init())

	m, _ = step(t, m, keyRune('/'))
	if !m.paletteOpen {
		t.Fatal("expected palette to open")
	}
	m.paletteInput.SetValue("delete " + saved.ID)
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, m, cmd)

	reminders, err := eng.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reminders) != 0 {
		t.Fatalf("expected empty store, got %#v", reminders)
	}
}

func TestPaletteLangSwitch(t *testing.T) {
	m, _ := setupModel(t)

	m, _ = step(t, m, keyRune('/'))
	m.paletteInput.SetValue("lang zh-TW")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.bundle.Lang() != "zh-TW" {
		t.Fatalf("expected zh-TW bundle, got %s", m.bundle.Lang())
	}
	if !strings.Contains(m.View(), "提醒我") {
		t.Fatal("expected localized header after lang switch")
	}
}

func TestManageModeBulkDelete(t *testing.T) {
	m, eng := setupModel(t)
	ctx := context.Background()

	for _, note := range []string{"one", "two"} {
		if _, err := eng.Save(ctx, engine.Draft{
			ScheduledAt: time.Now().Add(time.Hour),
			Kind:        model.KindText,
			TextContent: note,
		}); err != nil {
			t.Fatalf("save %q: %v", note, err)
		}
	}
	m = drive(t, m, m.Init())

	m, _ = step(t, m, keyRune('m'))
	m, _ = step(t, m, keyRune('x'))
	m, _ = step(t, m, keyRune('j'))
	m, _ = step(t, m, keyRune('x'))
	m, cmd := step(t, m, keyRune('d'))
	m = drive(t, m, cmd)

	reminders, err := eng.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reminders) != 0 {
		t.Fatalf("expected both deleted, got %#v", reminders)
	}
}
