package spritecut

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw counts.
// Only populated when the editor runs in debug mode.
type debugStats struct {
	tickTime   time.Duration
	drawTime   time.Duration
	frameCount int
}

// debugLog writes the last frame's stats at debug level.
func (e *Editor) debugLog() {
	if !e.debug {
		return
	}
	e.logger.Debug("frame",
		zap.Duration("tick", e.stats.tickTime),
		zap.Duration("draw", e.stats.drawTime),
		zap.Duration("total", e.stats.tickTime+e.stats.drawTime),
		zap.Int("frames_drawn", e.stats.frameCount),
		zap.Int("tracks", e.Store.Len()),
		zap.Int("messages", len(e.Logs.Entries())),
		zap.Stringer("gesture", e.input.gesture),
		zap.Bool("playing", e.Playing),
		zap.Int("fps", e.fps.Value()),
	)
}
