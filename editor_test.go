package spritecut

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

// newTestEditor returns an editor on a fake clock that exports into a
// temporary directory.
func newTestEditor(t *testing.T) (*Editor, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	e := NewEditor(EditorOptions{ExportDir: t.TempDir(), Now: clk.Now})
	return e, clk
}

// drain runs processInput until the inject queue is empty.
func drain(e *Editor) {
	for e.InjectPending() > 0 {
		e.processInput()
	}
}

func TestNewEditorDefaults(t *testing.T) {
	e, _ := newTestEditor(t)
	if e.View.Scale != 1 {
		t.Errorf("Scale = %v, want 1", e.View.Scale)
	}
	if e.View.Offset != (Point{100, 100}) || e.View.Position != (Point{100, 100}) {
		t.Errorf("camera = %v/%v, want (100,100)", e.View.Offset, e.View.Position)
	}
	if e.Store.Len() != 0 || e.Playing || e.Form.Open {
		t.Error("new editor should have no tracks, not play and have the form closed")
	}
	if e.Sheet.Loaded() {
		t.Error("new editor should have no image")
	}
}

func TestTickTimersRunWhileEditing(t *testing.T) {
	e, clk := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	for i := 0; i < 3; i++ {
		e.Store.AppendFrame("walk", Frame{X: i * 10, Y: 0, W: 10, H: 10})
	}
	tr, _ := e.Store.Track("walk")
	checkOrder := func(want ...int) {
		t.Helper()
		for i, f := range tr.Frames() {
			if f.X != want[i] {
				t.Errorf("frame %d X = %d, want %d", i, f.X, want[i])
			}
		}
	}

	// Editing charges the timer but never reorders frames.
	clk.Advance(250 * time.Millisecond)
	e.Tick()
	if got := e.Store.Meta("walk").Timer; got != 250 {
		t.Errorf("Timer in edit mode = %v, want 250", got)
	}
	checkOrder(0, 10, 20)

	// The charged timer fires on the first playback tick.
	e.TogglePlayback()
	clk.Advance(16 * time.Millisecond)
	e.Tick()
	if got := e.Store.Meta("walk").Timer; got != 0 {
		t.Errorf("Timer after first playback tick = %v, want 0", got)
	}
	checkOrder(10, 20, 0)

	clk.Advance(100 * time.Millisecond)
	e.Tick()
	if got := e.Store.Meta("walk").Timer; got != 100 {
		t.Errorf("Timer = %v, want 100", got)
	}
	clk.Advance(100 * time.Millisecond)
	e.Tick()
	checkOrder(20, 0, 10)
}

func TestTickExpiresLogs(t *testing.T) {
	e, clk := newTestEditor(t)
	e.Logs.Add("hello", false)
	clk.Advance(2 * time.Second)
	e.Tick()
	if len(e.Logs.Entries()) != 1 {
		t.Fatalf("entries after 2s = %d, want 1", len(e.Logs.Entries()))
	}
	clk.Advance(time.Second)
	e.Tick()
	if len(e.Logs.Entries()) != 0 {
		t.Errorf("entries after 3s = %d, want 0", len(e.Logs.Entries()))
	}
}

func TestUpdateTerminatesAfterQuit(t *testing.T) {
	e, _ := newTestEditor(t)
	if err := e.Update(); err != nil {
		t.Fatalf("Update = %v, want nil", err)
	}
	e.Quit()
	if err := e.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Quit = %v, want Termination", err)
	}
}

func TestSetSheetNil(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetSheet(NewSheet(image.NewRGBA(image.Rect(0, 0, 8, 8)), "a.png"))
	if !e.Sheet.Loaded() {
		t.Fatal("sheet should be loaded")
	}
	e.SetSheet(nil)
	if e.Sheet.Loaded() {
		t.Error("sheet should be cleared")
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

func TestLayoutFollowsWindow(t *testing.T) {
	e, _ := newTestEditor(t)
	w, h := e.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}
