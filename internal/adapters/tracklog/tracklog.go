// Package tracklog defines the append-only interaction log used for
// analytics. Appends may happen concurrently from in-flight requests and
// must never corrupt or lose entries; ordering across concurrent
// requests is best-effort. Append failures are the caller's to swallow:
// analytics must never fail the operation that produced them.
package tracklog

import (
	"context"
	"time"
)

// Default log configuration constants.
const (
	defaultCapacity = 10000
)

// Entry is one recorded interaction.
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Detail    map[string]any `json:"details"`
}

// Log provides concurrency-safe append and read access.
type Log interface {
	// Append records one interaction. Returns an error only when the log
	// has been closed.
	Append(ctx context.Context, action string, detail map[string]any) error

	// Entries returns a copy of the recorded entries, oldest first.
	Entries(ctx context.Context) []Entry

	// Len returns the current number of entries.
	Len(ctx context.Context) int
}
