package spritecut

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
	syntheticWheel
)

// syntheticEvent is a single injected input event. Pointer coordinates are
// raw screen coordinates and go through the viewport exactly like real
// mouse input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	key              ebiten.Key
	delta            float64
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued event is consumed by one tick.
func (e *Editor) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind: syntheticPointer, screenX: x, screenY: y, pressed: true,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (e *Editor) InjectMove(x, y float64) {
	e.InjectPress(x, y)
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind: syntheticPointer, screenX: x, screenY: y, pressed: false,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// InjectKey queues a key press or release.
func (e *Editor) InjectKey(k ebiten.Key, pressed bool) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind: syntheticKey, key: k, pressed: pressed,
	})
}

// InjectChord presses keys in order and releases them in reverse, e.g.
// InjectChord(ebiten.KeyControlLeft, ebiten.KeyZ).
func (e *Editor) InjectChord(keys ...ebiten.Key) {
	for _, k := range keys {
		e.InjectKey(k, true)
	}
	for i := len(keys) - 1; i >= 0; i-- {
		e.InjectKey(keys[i], false)
	}
}

// InjectWheel queues a vertical wheel movement. Positive zooms in.
func (e *Editor) InjectWheel(dy float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticWheel, delta: dy})
}

// InjectPending returns the number of queued synthetic events.
func (e *Editor) InjectPending() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// the same handlers as device input. Returns true if an event was consumed.
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		e.processPointer(evt.screenX, evt.screenY, evt.pressed)
	case syntheticKey:
		if evt.pressed {
			e.keyDown(evt.key)
		} else {
			e.keyUp(evt.key)
		}
	case syntheticWheel:
		e.wheel(evt.delta)
	}
	return true
}
