package storage

import "time"

// Reminder is the persisted record layout. ScheduledAt is stored as integer
// epoch milliseconds; exactly one of Payload and TextContent is populated
// depending on Kind. External tooling (export/import) relies on this shape.
type Reminder struct {
	ID            string
	ScheduledAt   time.Time
	Kind          string
	Payload       []byte
	TextContent   string
	SyncRequested bool
	Status        string
}
