package spritecut

import (
	"image/color"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const (
	// PlaybackGutter is the world-space distance between tracks laid out
	// side by side during playback.
	PlaybackGutter = 300
	// DefaultCamera is where the image origin starts in viewport-scaled
	// space.
	DefaultCamera = 100
)

// EditorOptions configures NewEditor.
type EditorOptions struct {
	// ExportDir receives example.txt and the exported images.
	ExportDir string
	// ScreenshotDir receives screenshots. Defaults to ExportDir/screenshots.
	ScreenshotDir string
	// Clipboard copies the exported JSON to the system clipboard.
	Clipboard bool
	// Debug logs per-frame timing at debug level.
	Debug  bool
	Logger *zap.Logger
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Editor is the whole editor state: tracks, viewport, input, logs and the
// source image. It implements ebiten.Game.
type Editor struct {
	Store *TrackStore
	View  *Viewport
	Logs  *LogBoard
	Form  TrackForm
	Sheet *Sheet
	// Playing switches drawing from frame overlays to animated tracks.
	Playing bool
	// ClearColor fills the screen before drawing.
	ClearColor Color

	exporter        Exporter
	screenshotDir   string
	screenshotQueue []string

	input       inputState
	injectQueue []syntheticEvent
	script      *ScriptRunner
	watcher     *SheetWatcher
	fps         FPSCounter

	now      func() time.Time
	lastTime time.Time
	quit     bool
	live     bool

	logger *zap.Logger
	debug  bool
	stats  debugStats

	face   text.Face
	width  int
	height int
}

// NewEditor creates an editor with no tracks and no image.
func NewEditor(opts EditorOptions) *Editor {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	shots := opts.ScreenshotDir
	if shots == "" {
		shots = filepath.Join(opts.ExportDir, "screenshots")
	}

	logs := NewLogBoard(now, logger)
	e := &Editor{
		Store:      NewTrackStore(logs),
		View:       NewViewport(DefaultCamera, DefaultCamera),
		Logs:       logs,
		ClearColor: Color{0.12, 0.12, 0.14, 1},
		exporter: Exporter{
			Dir:       opts.ExportDir,
			Clipboard: opts.Clipboard,
			Logger:    logger,
		},
		screenshotDir: shots,
		input:         newInputState(),
		fps:           FPSCounter{Interval: DefaultFPSInterval},
		now:           now,
		lastTime:      now(),
		logger:        logger,
		debug:         opts.Debug,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
	return e
}

// SetSheet replaces the source image.
func (e *Editor) SetSheet(s *Sheet) {
	if e.Sheet != nil && e.Sheet != s {
		e.Sheet.dispose()
	}
	e.Sheet = s
	if s == nil {
		return
	}
	w, h := s.Size()
	e.logger.Info("image loaded", zap.String("path", s.Path), zap.Int("width", w), zap.Int("height", h))
}

// LoadImageFile loads the source image from path.
func (e *Editor) LoadImageFile(path string) error {
	s, err := LoadSheet(path)
	if err != nil {
		return err
	}
	e.SetSheet(s)
	return nil
}

// WatchImage reloads the source image whenever the file at path changes.
func (e *Editor) WatchImage(path string) error {
	w, err := WatchSheet(path, e.logger)
	if err != nil {
		return err
	}
	if e.watcher != nil {
		_ = e.watcher.Close()
	}
	e.watcher = w
	return nil
}

// SetScript attaches a script runner; it is stepped at the start of every
// tick.
func (e *Editor) SetScript(r *ScriptRunner) {
	e.script = r
}

// Close releases the image watcher and GPU resources.
func (e *Editor) Close() error {
	var err error
	if e.watcher != nil {
		err = e.watcher.Close()
		e.watcher = nil
	}
	e.Sheet.dispose()
	return err
}

// Quit makes the next Update end the game loop.
func (e *Editor) Quit() {
	e.quit = true
}

// FPS returns the last sampled frame rate.
func (e *Editor) FPS() int {
	return e.fps.Value()
}

// Tick runs one update step: measure the time since the previous tick,
// sample FPS, apply script and device input, pick up a reloaded image,
// run the track timers and expire messages. Timers run in both modes but
// frames only rotate during playback.
func (e *Editor) Tick() {
	now := e.now()
	elapsed := now.Sub(e.lastTime)
	e.lastTime = now
	dt := float64(elapsed) / float64(time.Millisecond)

	e.fps.Sample(dt)

	if e.script != nil {
		e.script.step(e)
	}
	e.processInput()

	if e.watcher != nil {
		if s := e.watcher.Poll(); s != nil {
			e.SetSheet(s)
		}
	}

	for _, t := range e.Store.Tracks() {
		if e.Playing {
			_ = e.Store.Advance(t.Name, dt)
		} else {
			_ = e.Store.Accumulate(t.Name, dt)
		}
	}

	e.Logs.Update()
}

// Update implements ebiten.Game.
func (e *Editor) Update() error {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	e.Tick()
	if e.debug {
		e.stats.tickTime = time.Since(t0)
	}
	if e.quit || (e.script != nil && e.script.Done() && e.script.ExitOnDone) {
		return ebiten.Termination
	}
	return nil
}

// Layout implements ebiten.Game. The canvas always matches the window.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (e *Editor) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	screen.Fill(e.ClearColor.RGBA())
	if e.Playing {
		e.drawPlayback(screen)
	} else {
		e.drawEdit(screen)
	}
	e.drawHUD(screen)

	if e.debug {
		e.stats.drawTime = time.Since(t0)
		e.debugLog()
	}

	e.flushScreenshots(screen)
}

// colorOf returns the draw color for a track.
func (e *Editor) colorOf(t *Track) color.Color {
	if m := e.Store.Meta(t.Name); m != nil {
		return m.DisplayColor().RGBA()
	}
	return MustParseHexColor(FallbackTrackColor).RGBA()
}
