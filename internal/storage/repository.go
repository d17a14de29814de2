package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the durable reminder store. PutReminder is a full-record
// upsert; ListReminders returns records ascending by scheduled time, which
// both the due-scan and the home list depend on. DeleteReminder is
// idempotent and succeeds when the id is absent.
type Repository interface {
	PutReminder(ctx context.Context, in Reminder) error
	GetReminder(ctx context.Context, id string) (Reminder, error)
	ListReminders(ctx context.Context) ([]Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
}
