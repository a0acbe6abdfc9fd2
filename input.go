package spritecut

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// PanKey held while pressing the left button pans instead of drawing.
const PanKey = ebiten.KeySpace

// gesture is the phase of the current left-button interaction.
type gesture uint8

const (
	gestureIdle gesture = iota // no button held, or the press was rejected
	gesturePan                 // dragging the camera
	gestureDraw                // sizing the frame appended on press
)

func (g gesture) String() string {
	switch g {
	case gesturePan:
		return "pan"
	case gestureDraw:
		return "draw"
	default:
		return "idle"
	}
}

// inputState is the controller's view of the devices. Keys are tracked as a
// set of pressed ebiten keys; the left mouse button is its own field.
type inputState struct {
	keys      map[ebiten.Key]bool
	mouseLeft bool

	// last and start are in viewport-scaled space.
	last  Point
	start Point
	// startWorld is start in image-local space, the anchor of a drawn frame.
	startWorld Point
	gesture    gesture
	drawTrack  string

	keyBuf  []ebiten.Key
	charBuf []rune

	// justReleased reports keys released on this tick.
	justReleased func([]ebiten.Key) []ebiten.Key
}

func newInputState() inputState {
	return inputState{
		keys:         make(map[ebiten.Key]bool),
		justReleased: inpututil.AppendJustReleasedKeys,
	}
}

func (in *inputState) pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.keys[k] {
			return true
		}
	}
	return false
}

func (in *inputState) ctrl() bool {
	return in.pressed(ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight)
}

// processInput is called once per tick. A queued synthetic event replaces
// real device input for that tick, except that real key releases are always
// applied so no key stays held. Devices are only polled once Run has
// attached the editor to a window.
func (e *Editor) processInput() {
	injected := e.processInjectedInput()
	if !e.live {
		return
	}
	if injected {
		e.releaseKeys()
		return
	}

	in := &e.input
	// The key that opens the form must not also be typed into it.
	formWasOpen := e.Form.Open
	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		e.keyDown(k)
	}
	e.releaseKeys()
	if formWasOpen && e.Form.Open {
		in.charBuf = ebiten.AppendInputChars(in.charBuf[:0])
		e.Form.Type(in.charBuf)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		e.wheel(dy)
	}

	mx, my := ebiten.CursorPosition()
	e.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if dropped := ebiten.DroppedFiles(); dropped != nil {
		sheet, err := LoadSheetFS(dropped)
		if err != nil {
			e.Logs.Add(err.Error(), true)
		} else {
			e.SetSheet(sheet)
			e.Logs.Add("Loaded "+sheet.Path, false)
		}
	}
}

func (e *Editor) releaseKeys() {
	in := &e.input
	in.keyBuf = in.justReleased(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		e.keyUp(k)
	}
}

// processPointer turns the left-button level into press, move and release
// transitions. A release also moves the pointer to where it happened, so a
// drag always ends sized to the release point.
func (e *Editor) processPointer(sx, sy float64, pressed bool) {
	in := &e.input
	switch {
	case pressed && !in.mouseLeft:
		e.pointerDown(sx, sy)
	case !pressed && in.mouseLeft:
		e.pointerMove(sx, sy)
		e.pointerUp(sx, sy)
	default:
		e.pointerMove(sx, sy)
	}
}

// pointerDown starts a pan when PanKey is held, otherwise appends a 1x1
// frame to the selected track and starts sizing it. Presses during playback
// and presses with nothing to draw into start no gesture.
func (e *Editor) pointerDown(sx, sy float64) {
	in := &e.input
	in.mouseLeft = true
	in.start = e.View.Scaled(sx, sy)
	in.last = in.start
	in.startWorld = e.View.ToWorld(sx, sy)
	in.gesture = gestureIdle

	if e.Form.Open {
		return
	}
	if in.pressed(PanKey) {
		e.View.BeginPan(in.start)
		in.gesture = gesturePan
		return
	}
	if e.Playing {
		return
	}

	t, err := e.Store.Selected()
	if err != nil {
		e.reportEditError(err)
		return
	}
	f := Frame{X: in.startWorld.X, Y: in.startWorld.Y, W: 1, H: 1}
	if err := e.Store.AppendFrame(t.Name, f); err != nil {
		e.reportEditError(err)
		return
	}
	in.gesture = gestureDraw
	in.drawTrack = t.Name
}

// pointerMove pans the camera or resizes the frame being drawn. The frame's
// extent is measured from where the drag started, so it goes negative when
// the pointer moves up or left of the anchor.
func (e *Editor) pointerMove(sx, sy float64) {
	in := &e.input
	p := e.View.Scaled(sx, sy)
	in.last = p
	if !in.mouseLeft {
		return
	}
	switch in.gesture {
	case gesturePan:
		e.View.UpdatePan(p)
	case gestureDraw:
		if e.Playing {
			return
		}
		cur := e.View.ToWorld(sx, sy)
		d := cur.Sub(in.startWorld)
		if err := e.Store.ResizeLastFrame(in.drawTrack, d.X, d.Y); err != nil {
			// The track went away mid-drag.
			in.gesture = gestureIdle
		}
	}
}

// pointerUp ends any gesture. The camera position is committed on every
// release, whatever the gesture was.
func (e *Editor) pointerUp(sx, sy float64) {
	in := &e.input
	in.mouseLeft = false
	in.last = e.View.Scaled(sx, sy)
	if in.gesture == gestureDraw && e.debug {
		if t, err := e.Store.Track(in.drawTrack); err == nil {
			if f, ok := t.Current(); ok {
				e.logger.Debug("frame committed", zap.String("track", t.Name),
					zap.Int("x", f.X), zap.Int("y", f.Y), zap.Int("w", f.W), zap.Int("h", f.H))
			}
		}
	}
	in.gesture = gestureIdle
	in.drawTrack = ""
	e.View.CommitPan()
}

// keyDown records k as held and runs its binding.
func (e *Editor) keyDown(k ebiten.Key) {
	in := &e.input
	in.keys[k] = true

	if e.Form.Open {
		e.formKey(k)
		return
	}

	switch {
	case k == ebiten.KeyZ && in.ctrl():
		e.Undo()
	case k == ebiten.KeyEscape:
		e.Form.Close()
	case k == ebiten.KeyN:
		e.Form.Show(e.Store.Len())
	case k == ebiten.KeyTab:
		if err := e.Store.SelectNext(); err != nil {
			e.reportEditError(err)
		}
	case k == ebiten.KeyDelete:
		e.RemoveSelected()
	case k == ebiten.KeyP:
		e.TogglePlayback()
	case k == ebiten.KeyE:
		e.ExportNow()
	case k == ebiten.KeyF12:
		e.Screenshot("manual")
	}
}

func (e *Editor) keyUp(k ebiten.Key) {
	delete(e.input.keys, k)
}

// formKey handles editing keys while the create-track form is open.
func (e *Editor) formKey(k ebiten.Key) {
	switch k {
	case ebiten.KeyEscape:
		e.Form.Close()
	case ebiten.KeyTab:
		e.Form.NextField()
	case ebiten.KeyBackspace:
		e.Form.Backspace()
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		if _, err := e.Form.Submit(e.Store); err != nil {
			e.Logs.Add(err.Error(), true)
		}
	}
}

func (e *Editor) wheel(dy float64) {
	e.View.Zoom(dy)
}

// Undo drops the last frame of the selected track and abandons any frame
// being drawn.
func (e *Editor) Undo() {
	t, err := e.Store.Selected()
	if err != nil {
		e.reportEditError(err)
		return
	}
	if e.input.gesture == gestureDraw {
		e.input.gesture = gestureIdle
	}
	_ = e.Store.UndoLastFrame(t.Name)
}

// RemoveSelected deletes the selected track.
func (e *Editor) RemoveSelected() {
	t, err := e.Store.Selected()
	if err != nil {
		e.reportEditError(err)
		return
	}
	if e.input.drawTrack == t.Name {
		e.input.gesture = gestureIdle
	}
	_ = e.Store.RemoveTrack(t.Name)
	e.Logs.Add("Removed "+t.Name, false)
}

// TogglePlayback switches between editing and playback. Starting playback
// ends a frame being drawn; a pan in progress carries on.
func (e *Editor) TogglePlayback() {
	e.Playing = !e.Playing
	if e.Playing && e.input.gesture == gestureDraw {
		e.input.gesture = gestureIdle
	}
}

// reportEditError turns a store error into an on-screen message.
func (e *Editor) reportEditError(err error) {
	var noTracks *NoTracksExistError
	var noSel *NoTrackSelectedError
	switch {
	case errors.As(err, &noTracks):
		e.Logs.Add("You need to create at least one track.", true)
	case errors.As(err, &noSel):
		e.Logs.Add("No track is selected.", true)
	default:
		e.Logs.Add(err.Error(), true)
	}
}
