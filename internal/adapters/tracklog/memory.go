package tracklog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryLog implements Log with a mutex-guarded ring: once capacity is
// reached, the oldest entries are dropped. The log is an analytics sink,
// so bounded memory wins over completeness.
type InMemoryLog struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	closed   bool
}

// Option applies a configuration option to the InMemoryLog.
type Option func(*InMemoryLog)

// WithCapacity bounds the number of retained entries.
func WithCapacity(n int) Option {
	return func(l *InMemoryLog) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// NewInMemoryLog creates a bounded in-memory interaction log.
func NewInMemoryLog(opts ...Option) *InMemoryLog {
	l := &InMemoryLog{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.entries = make([]Entry, 0, l.capacity)
	return l
}

// Append implements Log.
func (l *InMemoryLog) Append(_ context.Context, action string, detail map[string]any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	if len(l.entries) >= l.capacity {
		// Drop the oldest entry to stay within bounds.
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}

	l.entries = append(l.entries, Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Detail:    detail,
	})
	return nil
}

// Entries implements Log.
func (l *InMemoryLog) Entries(_ context.Context) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len implements Log.
func (l *InMemoryLog) Len(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Close stops further appends. Reads remain valid.
func (l *InMemoryLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}
