package spritecut

import (
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

const (
	// LogLifetime is how long a message stays on screen.
	LogLifetime = 3 * time.Second
	// LogFade is the tail of LogLifetime over which a message fades out.
	LogFade = 500 * time.Millisecond
)

// LogEntry is a transient on-screen message.
type LogEntry struct {
	// ID is the handle the display uses to drop the entry.
	ID      uuid.UUID
	Message string
	IsError bool
	Color   Color
	Expiry  time.Time

	alpha float64
	fade  *gween.Tween
}

// Alpha returns the entry's current opacity in [0, 1].
func (e *LogEntry) Alpha() float64 {
	return e.alpha
}

// LogBoard collects user-facing messages, fades them out and drops them once
// they expire. Every message is mirrored to the structured logger.
type LogBoard struct {
	entries []*LogEntry
	now     func() time.Time
	logger  *zap.Logger

	// OnExpire, if set, is called for each entry as it is removed.
	OnExpire func(*LogEntry)
}

// NewLogBoard creates a board reading time from now.
func NewLogBoard(now func() time.Time, logger *zap.Logger) *LogBoard {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogBoard{now: now, logger: logger}
}

// Notify implements Notifier.
func (b *LogBoard) Notify(message string, isError bool) {
	b.Add(message, isError)
}

// Add posts a message and returns its entry.
func (b *LogBoard) Add(message string, isError bool) *LogEntry {
	c := ColorLogInfo
	if isError {
		c = ColorLogError
		b.logger.Warn("editor message", zap.String("message", message))
	} else {
		b.logger.Info("editor message", zap.String("message", message))
	}
	e := &LogEntry{
		ID:      uuid.New(),
		Message: message,
		IsError: isError,
		Color:   c,
		Expiry:  b.now().Add(LogLifetime),
		alpha:   1,
		fade:    gween.New(1, 0, float32(LogFade.Seconds()), ease.InQuad),
	}
	b.entries = append(b.entries, e)
	return e
}

// Entries returns the live entries, oldest first. The returned slice MUST NOT
// be mutated.
func (b *LogBoard) Entries() []*LogEntry {
	return b.entries
}

// Update fades entries in the last LogFade of their lifetime and removes
// entries whose expiry has passed.
func (b *LogBoard) Update() {
	now := b.now()
	kept := b.entries[:0]
	for _, e := range b.entries {
		if !now.Before(e.Expiry) {
			if b.OnExpire != nil {
				b.OnExpire(e)
			}
			continue
		}
		if into := now.Sub(e.Expiry.Add(-LogFade)); into >= 0 {
			v, _ := e.fade.Set(float32(into.Seconds()))
			e.alpha = clamp01(float64(v))
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(b.entries); i++ {
		b.entries[i] = nil
	}
	b.entries = kept
}

// Remove drops the entry with the given handle, reporting whether it was
// found.
func (b *LogBoard) Remove(id uuid.UUID) bool {
	for i, e := range b.entries {
		if e.ID == id {
			copy(b.entries[i:], b.entries[i+1:])
			b.entries[len(b.entries)-1] = nil
			b.entries = b.entries[:len(b.entries)-1]
			return true
		}
	}
	return false
}
