package spritecut

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Screenshot asks for the next rendered frame to be saved under label. The
// capture happens after the HUD is drawn, so the file shows exactly what was
// on screen. F12 calls it with the label "manual".
func (e *Editor) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label, named
// <timestamp>_<label>.png, into the screenshot directory.
func (e *Editor) flushScreenshots(screen *ebiten.Image) {
	if len(e.screenshotQueue) == 0 {
		return
	}
	labels := e.screenshotQueue
	e.screenshotQueue = e.screenshotQueue[:0]

	if err := os.MkdirAll(e.screenshotDir, 0o755); err != nil {
		e.Logs.Add(fmt.Sprintf("spritecut: screenshot dir: %v", err), true)
		return
	}
	frame := captureFrame(screen)

	stamp := e.now().Format("20060102_150405")
	for _, label := range labels {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		out := filepath.Join(e.screenshotDir, name)
		if err := writePNG(out, frame); err != nil {
			e.logger.Error("save screenshot", zap.String("path", out), zap.Error(err))
			e.Logs.Add(err.Error(), true)
			continue
		}
		e.Logs.Add("Saved "+out, false)
	}
}

// captureFrame copies the screen into straight-alpha memory. ReadPixels
// yields premultiplied RGBA; draw.Draw does the conversion.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	r := screen.Bounds()
	pm := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	screen.ReadPixels(pm.Pix)
	out := image.NewNRGBA(pm.Rect)
	draw.Draw(out, out.Rect, pm, image.Point{}, draw.Src)
	return out
}

// writePNG saves img to path. Exports and screenshots both go through here.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spritecut: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("spritecut: %w", cerr)
		}
	}()
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("spritecut: encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel maps a track name or screenshot label onto a safe file name
// stem: ASCII letters, digits, '-' and '.' survive, anything else becomes '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
