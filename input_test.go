package spritecut

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func lastLog(e *Editor) string {
	entries := e.Logs.Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].Message
}

func TestDrawFrame(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)

	// Camera at (100,100), scale 1: screen (110,110) is image (10,10).
	e.InjectDrag(110, 110, 140, 130, 4)
	drain(e)

	tr, _ := e.Store.Track("walk")
	if tr.Len() != 1 {
		t.Fatalf("frames = %d, want 1", tr.Len())
	}
	want := Frame{X: 10, Y: 10, W: 30, H: 20}
	if got := tr.Frames()[0]; got != want {
		t.Errorf("frame = %+v, want %+v", got, want)
	}
	if e.input.gesture != gestureIdle {
		t.Errorf("gesture = %v, want idle", e.input.gesture)
	}
}

func TestDrawFrameUpLeft(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)

	e.InjectDrag(140, 130, 110, 110, 2)
	drain(e)

	tr, _ := e.Store.Track("walk")
	got := tr.Frames()[0]
	if got != (Frame{X: 40, Y: 30, W: -30, H: -20}) {
		t.Errorf("frame = %+v, want anchor (40,30) extent (-30,-20)", got)
	}
	if n := got.Normalize(); n != (Frame{X: 10, Y: 10, W: 30, H: 20}) {
		t.Errorf("Normalize = %+v", n)
	}
}

func TestDrawFrameScaled(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	e.InjectWheel(1)
	e.InjectWheel(1) // scale 2
	drain(e)

	// At scale 2, screen (220,220) is scaled (110,110), image (10,10).
	e.InjectDrag(220, 220, 260, 240, 2)
	drain(e)

	tr, _ := e.Store.Track("walk")
	want := Frame{X: 10, Y: 10, W: 20, H: 10}
	if got := tr.Frames()[0]; got != want {
		t.Errorf("frame = %+v, want %+v", got, want)
	}
}

func TestDrawWithoutTracks(t *testing.T) {
	e, _ := newTestEditor(t)
	e.InjectClick(150, 150)
	drain(e)

	if got := lastLog(e); got != "You need to create at least one track." {
		t.Errorf("log = %q", got)
	}
	if !e.Logs.Entries()[0].IsError {
		t.Error("log should be an error")
	}
}

func TestDrawWithoutSelection(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("a", 100)
	e.Store.CreateTrack("b", 100)
	e.RemoveSelected()

	e.InjectClick(150, 150)
	drain(e)

	if got := lastLog(e); got != "No track is selected." {
		t.Errorf("log = %q", got)
	}
	a, _ := e.Store.Track("a")
	if a.Len() != 0 {
		t.Errorf("frames on a = %d, want 0", a.Len())
	}
}

func TestPanWithSpace(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)

	e.InjectKey(PanKey, true)
	e.InjectDrag(200, 200, 250, 220, 3)
	e.InjectKey(PanKey, false)
	drain(e)

	if e.View.Offset != (Point{150, 120}) {
		t.Errorf("Offset = %v, want (150,120)", e.View.Offset)
	}
	if e.View.Position != e.View.Offset {
		t.Errorf("Position = %v, want committed %v", e.View.Position, e.View.Offset)
	}
	tr, _ := e.Store.Track("walk")
	if tr.Len() != 0 {
		t.Errorf("pan drew %d frames", tr.Len())
	}

	// A second pan starts from the committed position.
	e.InjectKey(PanKey, true)
	e.InjectDrag(100, 100, 90, 100, 2)
	e.InjectKey(PanKey, false)
	drain(e)
	if e.View.Offset != (Point{140, 120}) {
		t.Errorf("Offset after second pan = %v, want (140,120)", e.View.Offset)
	}
}

func TestRealReleaseDuringScriptedTick(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	e.live = true
	var released []ebiten.Key
	e.input.justReleased = func(dst []ebiten.Key) []ebiten.Key {
		dst = append(dst, released...)
		released = nil
		return dst
	}

	e.InjectKey(PanKey, true)
	drain(e)
	if !e.input.pressed(PanKey) {
		t.Fatal("pan key not held")
	}

	// The key comes up on a tick that consumes a synthetic event.
	released = []ebiten.Key{PanKey}
	e.InjectMove(0, 0)
	drain(e)
	if e.input.pressed(PanKey) {
		t.Fatal("pan key still held after its release")
	}

	e.InjectDrag(110, 110, 140, 130, 2)
	drain(e)
	tr, _ := e.Store.Track("walk")
	if tr.Len() != 1 {
		t.Errorf("frames = %d, want 1: the press should draw, not pan", tr.Len())
	}
}

func TestPanWorksDuringPlayback(t *testing.T) {
	e, _ := newTestEditor(t)
	e.TogglePlayback()
	e.InjectKey(PanKey, true)
	e.InjectDrag(0, 0, 10, 10, 2)
	drain(e)
	if e.View.Offset != (Point{110, 110}) {
		t.Errorf("Offset = %v, want (110,110)", e.View.Offset)
	}
}

func TestPlaybackBlocksDrawing(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	e.InjectKey(ebiten.KeyP, true)
	e.InjectKey(ebiten.KeyP, false)
	e.InjectDrag(110, 110, 140, 130, 3)
	drain(e)

	if !e.Playing {
		t.Fatal("P should start playback")
	}
	tr, _ := e.Store.Track("walk")
	if tr.Len() != 0 {
		t.Errorf("frames = %d, want 0", tr.Len())
	}
	if len(e.Logs.Entries()) != 0 {
		t.Errorf("unexpected log %q", lastLog(e))
	}
}

func TestPlaybackEndsDrawGesture(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	e.InjectPress(110, 110)
	e.InjectMove(120, 120)
	drain(e)

	e.TogglePlayback()
	e.TogglePlayback()
	e.InjectMove(150, 150)
	e.InjectRelease(150, 150)
	drain(e)

	tr, _ := e.Store.Track("walk")
	if got := tr.Frames()[0]; got.W != 10 || got.H != 10 {
		t.Errorf("frame = %+v, want it frozen at 10x10", got)
	}
}

func TestUndoChord(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	e.InjectDrag(110, 110, 140, 130, 2)
	e.InjectDrag(150, 110, 180, 130, 2)
	e.InjectChord(ebiten.KeyControlLeft, ebiten.KeyZ)
	drain(e)

	tr, _ := e.Store.Track("walk")
	if tr.Len() != 1 {
		t.Fatalf("frames = %d, want 1", tr.Len())
	}
	if got := tr.Frames()[0].X; got != 10 {
		t.Errorf("remaining frame X = %d, want 10", got)
	}

	// Z alone does nothing.
	e.InjectChord(ebiten.KeyZ)
	drain(e)
	if tr.Len() != 1 {
		t.Errorf("plain Z removed a frame")
	}
}

func TestUndoWithoutTracks(t *testing.T) {
	e, _ := newTestEditor(t)
	e.InjectChord(ebiten.KeyMetaLeft, ebiten.KeyZ)
	drain(e)
	if got := lastLog(e); got != "You need to create at least one track." {
		t.Errorf("log = %q", got)
	}
}

func TestZoomWheel(t *testing.T) {
	e, _ := newTestEditor(t)
	e.InjectWheel(1)
	drain(e)
	if e.View.Scale != 1.5 {
		t.Errorf("Scale = %v, want 1.5", e.View.Scale)
	}
	for i := 0; i < 4; i++ {
		e.InjectWheel(-1)
	}
	drain(e)
	if e.View.Scale != MinScale {
		t.Errorf("Scale = %v, want %v", e.View.Scale, MinScale)
	}
}

func TestTabCyclesSelection(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("a", 100)
	e.Store.CreateTrack("b", 100)
	e.InjectChord(ebiten.KeyTab)
	drain(e)
	if got := e.Store.SelectedName(); got != "a" {
		t.Errorf("selected = %q, want a", got)
	}
}

func TestDeleteKeyRemovesTrack(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("a", 100)
	e.InjectChord(ebiten.KeyDelete)
	drain(e)
	if e.Store.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Store.Len())
	}
	if got := lastLog(e); got != "Removed a" {
		t.Errorf("log = %q", got)
	}
}

func TestFormFlow(t *testing.T) {
	e, _ := newTestEditor(t)
	e.InjectChord(ebiten.KeyN)
	drain(e)
	if !e.Form.Open || e.Form.Name != "track0" || e.Form.Rate != "100" {
		t.Fatalf("form = %+v", e.Form)
	}

	// Keys are routed to the form while it is open.
	e.InjectChord(ebiten.KeyP)
	drain(e)
	if e.Playing {
		t.Error("P toggled playback with the form open")
	}

	e.InjectChord(ebiten.KeyEnter)
	drain(e)
	if e.Form.Open {
		t.Error("form should close after submit")
	}
	tr, err := e.Store.Track("track0")
	if err != nil {
		t.Fatal(err)
	}
	if tr.UpdateRate != 100 {
		t.Errorf("UpdateRate = %d, want 100", tr.UpdateRate)
	}
	if e.Store.SelectedName() != "track0" {
		t.Error("new track should be selected")
	}
}

func TestFormRejectsBadRate(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Form.Show(0)
	e.Form.Rate = "fast"
	e.InjectChord(ebiten.KeyEnter)
	drain(e)
	if !e.Form.Open {
		t.Error("form should stay open")
	}
	if e.Store.Len() != 0 {
		t.Error("no track should be created")
	}
	if len(e.Logs.Entries()) != 1 || !e.Logs.Entries()[0].IsError {
		t.Error("expected one error log")
	}
}

func TestPressIgnoredWhileFormOpen(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 200)
	e.Form.Show(1)
	e.InjectDrag(110, 110, 140, 130, 2)
	drain(e)
	tr, _ := e.Store.Track("walk")
	if tr.Len() != 0 {
		t.Errorf("frames = %d, want 0", tr.Len())
	}
}

func TestEscapeClosesForm(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Form.Show(0)
	e.InjectChord(ebiten.KeyEscape)
	drain(e)
	if e.Form.Open {
		t.Error("Esc should close the form")
	}
}
