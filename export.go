package spritecut

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Export file names, relative to the export directory.
const (
	ExportFileName   = "example.txt"
	OverviewFileName = "example.png"
	stripSuffix      = "_strip.png"
)

// ExportedTrack is one element of the export document. Frames are
// normalized: X, Y is the top-left corner and W, H are non-negative.
type ExportedTrack struct {
	Name       string  `json:"name"`
	UpdateRate int     `json:"updateRate"`
	Frames     []Frame `json:"frames"`
}

// Snapshot returns the store's tracks in export form, in store order.
func Snapshot(s *TrackStore) []ExportedTrack {
	out := make([]ExportedTrack, 0, s.Len())
	for _, t := range s.Tracks() {
		frames := make([]Frame, 0, t.Len())
		for _, f := range t.Frames() {
			frames = append(frames, f.Normalize())
		}
		out = append(out, ExportedTrack{Name: t.Name, UpdateRate: t.UpdateRate, Frames: frames})
	}
	return out
}

// ExportJSON serializes the store as
//
//	[{"name": ..., "updateRate": ..., "frames": [{"x","y","w","h"}, ...]}, ...]
func ExportJSON(s *TrackStore) ([]byte, error) {
	data, err := json.Marshal(Snapshot(s))
	if err != nil {
		return nil, fmt.Errorf("spritecut: encode tracks: %w", err)
	}
	return data, nil
}

// ParseExport reads a document written by ExportJSON.
func ParseExport(data []byte) ([]ExportedTrack, error) {
	var tracks []ExportedTrack
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("spritecut: failed to parse export: %w", err)
	}
	for i := range tracks {
		if tracks[i].Frames == nil {
			tracks[i].Frames = []Frame{}
		}
	}
	return tracks, nil
}

// Exporter writes export artifacts to Dir.
type Exporter struct {
	Dir string
	// Clipboard also copies the JSON to the system clipboard. Failures are
	// logged and do not fail the export.
	Clipboard bool
	Logger    *zap.Logger
}

// ExportResult lists the files written by Export.
type ExportResult struct {
	JSONPath     string
	OverviewPath string
	StripPaths   []string
	Copied       bool
}

// Export writes the JSON document and, when the sheet is loaded, the
// overview image and one sprite strip per non-empty track.
func (x *Exporter) Export(s *TrackStore, sheet *Sheet) (ExportResult, error) {
	var res ExportResult
	logger := x.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := ExportJSON(s)
	if err != nil {
		return res, err
	}
	dir := x.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("spritecut: export dir: %w", err)
	}
	res.JSONPath = filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(res.JSONPath, data, 0o644); err != nil {
		return res, fmt.Errorf("spritecut: write export: %w", err)
	}

	if x.Clipboard && !clipboard.Unsupported {
		if err := clipboard.WriteAll(string(data)); err != nil {
			logger.Warn("copy export to clipboard", zap.Error(err))
		} else {
			res.Copied = true
		}
	}

	src := sheet.Image()
	if !sheet.Loaded() {
		logger.Info("export written", zap.String("path", res.JSONPath), zap.Int("tracks", s.Len()))
		return res, nil
	}

	res.OverviewPath = filepath.Join(dir, OverviewFileName)
	if err := writePNG(res.OverviewPath, RenderOverview(src, s)); err != nil {
		return res, fmt.Errorf("spritecut: overview: %w", err)
	}

	for _, t := range s.Tracks() {
		strip := RenderStrip(src, t)
		if strip == nil {
			continue
		}
		p := filepath.Join(dir, sanitizeLabel(t.Name)+stripSuffix)
		if err := writePNG(p, strip); err != nil {
			return res, fmt.Errorf("spritecut: strip %q: %w", t.Name, err)
		}
		res.StripPaths = append(res.StripPaths, p)
	}

	logger.Info("export written",
		zap.String("path", res.JSONPath),
		zap.Int("tracks", s.Len()),
		zap.Int("strips", len(res.StripPaths)),
		zap.Bool("clipboard", res.Copied))
	return res, nil
}

// ExportNow runs the editor's exporter and reports the outcome on screen.
func (e *Editor) ExportNow() {
	res, err := e.exporter.Export(e.Store, e.Sheet)
	if err != nil {
		e.Logs.Add(err.Error(), true)
		return
	}
	e.Logs.Add(fmt.Sprintf("Exported %d tracks to %s", e.Store.Len(), res.JSONPath), false)
}

// RenderOverview draws every track's frames over a copy of the source image,
// outlined in the track color. Frames are image-local, so the copy is moved
// to a zero origin first; the result always starts at (0,0).
func RenderOverview(src image.Image, s *TrackStore) image.Image {
	b := src.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Rect, src, b.Min, draw.Src)
	dc := gg.NewContextForRGBA(base)
	dc.SetLineWidth(1)
	for _, t := range s.Tracks() {
		m := s.Meta(t.Name)
		if m == nil {
			continue
		}
		dc.SetColor(m.DisplayColor().RGBA())
		for _, f := range t.Frames() {
			n := f.Normalize()
			if n.Empty() {
				continue
			}
			// Half-pixel inset keeps the 1px outline on the frame's own
			// border pixels.
			dc.DrawRectangle(float64(n.X)+0.5, float64(n.Y)+0.5,
				float64(n.W)-1, float64(n.H)-1)
			dc.Stroke()
		}
	}
	return dc.Image()
}

// RenderStrip lays the track's frames out left to right in playback order,
// top-aligned. Returns nil when the track has nothing to show.
func RenderStrip(src image.Image, t *Track) *image.NRGBA {
	b := src.Bounds()
	var rects []image.Rectangle
	width, height := 0, 0
	for _, f := range t.Frames() {
		r := f.Bounds().Add(b.Min).Intersect(b)
		if r.Empty() {
			continue
		}
		rects = append(rects, r)
		width += r.Dx()
		height = max(height, r.Dy())
	}
	if len(rects) == 0 {
		return nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, r := range rects {
		draw.Copy(dst, image.Pt(x, 0), src, r, draw.Src, nil)
		x += r.Dx()
	}
	return dst
}
