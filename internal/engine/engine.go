package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"
	"go.uber.org/zap"

	"github.com/kocpc001/multimedia-reminder/internal/model"
	"github.com/kocpc001/multimedia-reminder/internal/storage"
)

const defaultScanInterval = 10 * time.Second

var ErrValidation = errors.New("engine: invalid reminder input")

// Presenter renders a reminder's payload and drives the repeating attention
// cue. Present must not block; the cue keeps repeating until Dismiss, which
// is always user-triggered — the engine never auto-dismisses.
type Presenter interface {
	Present(model.Reminder)
	Dismiss()
}

// LinkOpener produces and opens the external calendar link for a reminder.
// It is fire-and-forget: failures never roll back a save.
type LinkOpener interface {
	Open(model.Reminder) error
}

// Draft is the user input to Save. The engine assigns the id and the
// initial pending status.
type Draft struct {
	ScheduledAt   time.Time
	Kind          model.Kind
	Payload       []byte
	TextContent   string
	SyncRequested bool
}

type Engine struct {
	repo      storage.Repository
	presenter Presenter
	notifier  Notifier
	calendar  LinkOpener
	clk       clock.Clock
	interval  time.Duration
	log       *zap.SugaredLogger

	mu      sync.Mutex
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
}

type Option func(*Engine)

// WithClock injects the time source so tests can simulate time passage.
func WithClock(clk clock.Clock) Option {
	return func(e *Engine) { e.clk = clk }
}

func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) { e.log = log }
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithCalendar(c LinkOpener) Option {
	return func(e *Engine) { e.calendar = c }
}

func New(repo storage.Repository, presenter Presenter, opts ...Option) *Engine {
	e := &Engine{
		repo:      repo,
		presenter: presenter,
		notifier:  NoopNotifier{},
		clk:       clock.New(),
		interval:  defaultScanInterval,
		log:       zap.NewNop().Sugar(),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Save validates the draft, assigns a fresh id and writes the reminder as
// pending. When the draft requests calendar sync the link is opened after
// the record is durable; a link failure is logged and otherwise ignored.
func (e *Engine) Save(ctx context.Context, in Draft) (model.Reminder, error) {
	rem := model.Reminder{
		ID:            uuid.NewString(),
		ScheduledAt:   in.ScheduledAt,
		Kind:          in.Kind,
		Payload:       in.Payload,
		TextContent:   in.TextContent,
		SyncRequested: in.SyncRequested,
		Status:        model.StatusPending,
	}
	if err := rem.Validate(); err != nil {
		return model.Reminder{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := e.repo.PutReminder(ctx, toRecord(rem)); err != nil {
		return model.Reminder{}, fmt.Errorf("save reminder: %w", err)
	}

	if rem.SyncRequested && e.calendar != nil {
		go func(r model.Reminder) {
			if err := e.calendar.Open(r); err != nil {
				e.log.Warnw("calendar link open failed", "id", r.ID, "err", err)
			}
		}(rem)
	}

	return rem, nil
}

// Scan performs one due-detection pass: every pending reminder whose
// scheduled time has arrived is presented, then flipped to completed.
// Records are visited in ascending scheduled order and a failure on one
// record never aborts the rest of the pass.
func (e *Engine) Scan(ctx context.Context) error {
	records, err := e.repo.ListReminders(ctx)
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}

	now := e.clk.Now()
	for _, record := range records {
		rem := fromRecord(record)
		if !rem.Due(now) {
			continue
		}

		e.presenter.Present(rem)
		if err := e.notifier.Send("Reminder", "You have a new reminder!"); err != nil {
			e.log.Debugw("notification skipped", "id", rem.ID, "err", err)
		}

		rem.Status = model.StatusCompleted
		if err := e.repo.PutReminder(ctx, toRecord(rem)); err != nil {
			e.log.Errorw("mark reminder completed failed", "id", rem.ID, "err", err)
			continue
		}
		e.log.Infow("reminder fired", "id", rem.ID, "scheduled_at", rem.ScheduledAt)
	}
	return nil
}

// Open presents the reminder with the given id regardless of its status.
// This is the deep-link and manual-preview entry point: it never mutates
// status and is silently a no-op when the id is unknown.
func (e *Engine) Open(ctx context.Context, id string) error {
	record, err := e.repo.GetReminder(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		e.log.Infow("reminder not found locally", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get reminder: %w", err)
	}
	e.presenter.Present(fromRecord(record))
	return nil
}

// List returns all reminders ascending by scheduled time.
func (e *Engine) List(ctx context.Context) ([]model.Reminder, error) {
	records, err := e.repo.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Reminder, 0, len(records))
	for _, record := range records {
		out = append(out, fromRecord(record))
	}
	return out, nil
}

// Delete removes reminders unconditionally, whatever their status.
func (e *Engine) Delete(ctx context.Context, ids ...string) error {
	var firstErr error
	for _, id := range ids {
		if err := e.repo.DeleteReminder(ctx, id); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete reminder %s: %w", id, err)
		}
	}
	return firstErr
}

// Start launches the recurring due-scan. The loop runs until Stop.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop terminates the scan loop and waits for it to exit.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) loop() {
	defer close(e.doneCh)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := e.Scan(context.Background()); err != nil {
				// Next tick is the implicit retry.
				e.log.Errorw("due scan failed", "err", err)
			}
		case <-e.stopCh:
			return
		}
	}
}

func toRecord(r model.Reminder) storage.Reminder {
	return storage.Reminder{
		ID:            r.ID,
		ScheduledAt:   r.ScheduledAt,
		Kind:          string(r.Kind),
		Payload:       r.Payload,
		TextContent:   r.TextContent,
		SyncRequested: r.SyncRequested,
		Status:        string(r.Status),
	}
}

func fromRecord(r storage.Reminder) model.Reminder {
	return model.Reminder{
		ID:            r.ID,
		ScheduledAt:   r.ScheduledAt,
		Kind:          model.Kind(r.Kind),
		Payload:       r.Payload,
		TextContent:   r.TextContent,
		SyncRequested: r.SyncRequested,
		Status:        model.Status(r.Status),
	}
}
