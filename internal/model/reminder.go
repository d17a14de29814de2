package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidKind    = errors.New("model: invalid reminder kind")
	ErrInvalidStatus  = errors.New("model: invalid reminder status")
	ErrMissingContent = errors.New("model: reminder content missing for kind")
)

type Kind string

const (
	KindVoice  Kind = "voice"
	KindText   Kind = "text"
	KindDoodle Kind = "doodle"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindVoice, KindText, KindDoodle:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// Reminder is the sole persisted entity. ID and ScheduledAt are set once at
// creation and never mutated; Status only ever moves pending -> completed.
type Reminder struct {
	ID            string
	ScheduledAt   time.Time
	Kind          Kind
	Payload       []byte
	TextContent   string
	SyncRequested bool
	Status        Status
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: reminder id is required")
	}
	if r.ScheduledAt.IsZero() {
		return errors.New("model: reminder scheduled_at is required")
	}
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, r.Kind)
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, r.Status)
	}
	switch r.Kind {
	case KindText:
		if strings.TrimSpace(r.TextContent) == "" {
			return fmt.Errorf("%w: %q", ErrMissingContent, r.Kind)
		}
		if len(r.Payload) > 0 {
			return fmt.Errorf("model: binary payload not allowed for kind %q", r.Kind)
		}
	case KindVoice, KindDoodle:
		if len(r.Payload) == 0 {
			return fmt.Errorf("%w: %q", ErrMissingContent, r.Kind)
		}
		if r.TextContent != "" {
			return fmt.Errorf("model: text content not allowed for kind %q", r.Kind)
		}
	}
	return nil
}

// Due reports whether the reminder should fire at the given instant.
// Completed reminders are never due again.
func (r Reminder) Due(now time.Time) bool {
	return r.Status == StatusPending && !r.ScheduledAt.After(now)
}
