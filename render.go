package spritecut

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// outline is a frame rectangle in screen space.
type outline struct {
	x, y, w, h float64
	clr        color.Color
}

// segment is a grid line in screen space.
type segment struct {
	x0, y0, x1, y1 float64
}

// playbackSprite is one track's current frame during playback: the crop in
// image space and the screen position of its top-left corner.
type playbackSprite struct {
	crop image.Rectangle
	x, y float64
}

// drawEdit draws the source image under the camera, the pixel grid when
// zoomed in far enough, and every track's frames outlined in its color.
func (e *Editor) drawEdit(screen *ebiten.Image) {
	v := e.View
	if tex := e.Sheet.texture(); tex != nil {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(v.Scale, v.Scale)
		op.GeoM.Translate(v.ToScreen(0, 0))
		screen.DrawImage(tex, op)

		clr := ColorBlack.RGBA()
		for _, s := range e.gridLines() {
			vector.StrokeLine(screen, float32(s.x0), float32(s.y0), float32(s.x1), float32(s.y1), 1, clr, false)
		}
	}

	outlines := e.frameOutlines()
	for _, o := range outlines {
		vector.StrokeRect(screen, float32(o.x), float32(o.y), float32(o.w), float32(o.h), 1, o.clr, false)
	}
	e.stats.frameCount = len(outlines)
}

// frameOutlines returns every track's frames, normalized, in screen space.
func (e *Editor) frameOutlines() []outline {
	v := e.View
	var out []outline
	for _, t := range e.Store.Tracks() {
		clr := e.colorOf(t)
		for _, f := range t.Frames() {
			n := f.Normalize()
			x, y := v.ToScreen(float64(n.X), float64(n.Y))
			out = append(out, outline{x: x, y: y, w: float64(n.W) * v.Scale, h: float64(n.H) * v.Scale, clr: clr})
		}
	}
	return out
}

// gridLines returns one line per source pixel column and row across the
// image. Nil below GridScale or without an image.
func (e *Editor) gridLines() []segment {
	v := e.View
	if !v.ShowGrid() || !e.Sheet.Loaded() {
		return nil
	}
	w, h := e.Sheet.Size()
	ox, oy := v.ToScreen(0, 0)
	sw := float64(w) * v.Scale
	sh := float64(h) * v.Scale

	lines := make([]segment, 0, w+h)
	for i := 0.0; i < sw; i += v.Scale {
		lines = append(lines, segment{ox + i, oy, ox + i, oy + sh})
	}
	for i := 0.0; i < sh; i += v.Scale {
		lines = append(lines, segment{ox, oy + i, ox + sw, oy + i})
	}
	return lines
}

// drawPlayback draws the current frame of each track cropped from the
// source image.
func (e *Editor) drawPlayback(screen *ebiten.Image) {
	tex := e.Sheet.texture()
	if tex == nil {
		return
	}
	sprites := e.playbackSprites()
	for _, sp := range sprites {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(e.View.Scale, e.View.Scale)
		op.GeoM.Translate(sp.x, sp.y)
		screen.DrawImage(tex.SubImage(sp.crop).(*ebiten.Image), op)
	}
	e.stats.frameCount = len(sprites)
}

// playbackSprites lays the tracks out side by side, PlaybackGutter world
// units apart in track order. Each shows its current frame clipped to the
// image; tracks with no frame or a crop outside the image are skipped but
// keep their slot.
func (e *Editor) playbackSprites() []playbackSprite {
	if !e.Sheet.Loaded() {
		return nil
	}
	w, h := e.Sheet.Size()
	bounds := image.Rect(0, 0, w, h)
	var out []playbackSprite
	for i, t := range e.Store.Tracks() {
		f, ok := t.Current()
		if !ok {
			continue
		}
		r := f.Bounds().Intersect(bounds)
		if r.Empty() {
			continue
		}
		x, y := e.View.playbackOrigin(i)
		out = append(out, playbackSprite{crop: r, x: x, y: y})
	}
	return out
}

// playbackOrigin is the screen position of the i-th track during playback.
func (v *Viewport) playbackOrigin(i int) (x, y float64) {
	return float64(v.Offset.X+PlaybackGutter*i) * v.Scale, float64(v.Offset.Y) * v.Scale
}
