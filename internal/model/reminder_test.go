package model

import (
	"errors"
	"testing"
	"time"
)

func TestReminderValidateSuccess(t *testing.T) {
	rem := Reminder{
		ID:          "rem-1",
		ScheduledAt: time.Date(2026, 2, 9, 13, 0, 0, 0, time.UTC),
		Kind:        KindText,
		TextContent: "pick up groceries",
		Status:      StatusPending,
	}
	if err := rem.Validate(); err != nil {
		t.Fatalf("expected valid reminder, got error: %v", err)
	}
}

func TestReminderValidateInvalidKind(t *testing.T) {
	rem := Reminder{
		ID:          "rem-1",
		ScheduledAt: time.Date(2026, 2, 9, 13, 0, 0, 0, time.UTC),
		Kind:        Kind("video"),
		Status:      StatusPending,
	}
	err := rem.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got: %v", err)
	}
}

func TestReminderValidateContentMatchesKind(t *testing.T) {
	base := Reminder{
		ID:          "rem-1",
		ScheduledAt: time.Date(2026, 2, 9, 13, 0, 0, 0, time.UTC),
		Status:      StatusPending,
	}

	voice := base
	voice.Kind = KindVoice
	if err := voice.Validate(); !errors.Is(err, ErrMissingContent) {
		t.Fatalf("expected ErrMissingContent for empty voice payload, got: %v", err)
	}
	voice.Payload = []byte{0x1a, 0x45}
	if err := voice.Validate(); err != nil {
		t.Fatalf("expected valid voice reminder, got: %v", err)
	}

	doodle := base
	doodle.Kind = KindDoodle
	doodle.Payload = []byte{0x89, 'P', 'N', 'G'}
	doodle.TextContent = "stray text"
	if err := doodle.Validate(); err == nil {
		t.Fatal("expected error for doodle carrying text content")
	}

	text := base
	text.Kind = KindText
	text.TextContent = "note"
	text.Payload = []byte{1}
	if err := text.Validate(); err == nil {
		t.Fatal("expected error for text reminder carrying binary payload")
	}
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	rem := Reminder{Status: StatusPending, ScheduledAt: now.Add(-time.Second)}
	if !rem.Due(now) {
		t.Fatal("expected overdue pending reminder to be due")
	}
	rem.ScheduledAt = now
	if !rem.Due(now) {
		t.Fatal("expected reminder scheduled exactly now to be due")
	}
	rem.ScheduledAt = now.Add(time.Second)
	if rem.Due(now) {
		t.Fatal("expected future reminder to not be due")
	}
	rem.ScheduledAt = now.Add(-time.Hour)
	rem.Status = StatusCompleted
	if rem.Due(now) {
		t.Fatal("expected completed reminder to never be due")
	}
}

func TestKindAndStatusIsValid(t *testing.T) {
	for _, k := range []Kind{KindVoice, KindText, KindDoodle} {
		if !k.IsValid() {
			t.Fatalf("expected valid kind: %q", k)
		}
	}
	if Kind("gif").IsValid() {
		t.Fatal("expected invalid kind")
	}
	for _, s := range []Status{StatusPending, StatusCompleted} {
		if !s.IsValid() {
			t.Fatalf("expected valid status: %q", s)
		}
	}
	if Status("snoozed").IsValid() {
		t.Fatal("expected invalid status")
	}
}
