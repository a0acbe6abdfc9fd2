package spritecut

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight = 16
	hudMargin     = 8
	hudTrackWidth = 260
	formWidth     = 320
	formHeight    = 110
)

const helpLine = "N new track | Tab select | Del remove | drag draw | Space+drag pan | wheel zoom | Ctrl+Z undo | P play | E export | F12 screenshot"

// drawHUD draws the status readouts, the track list, the messages, the help
// line and the create-track form.
func (e *Editor) drawHUD(screen *ebiten.Image) {
	in := &e.input
	v := e.View
	world := in.last.Sub(v.Offset)

	status := []string{
		fmt.Sprintf("mouse_pos X: %d, Y: %d", in.last.X, in.last.Y),
		fmt.Sprintf("mouse_ii_pos X: %d, Y: %d", world.X, world.Y),
		fmt.Sprintf("camera_pos X: %d, Y: %d", v.Position.X, v.Position.Y),
		fmt.Sprintf("camera_offset X: %d, Y: %d", v.Offset.X, v.Offset.Y),
		fmt.Sprintf("scale: %g", v.Scale),
		fmt.Sprintf("FPS: %d", e.fps.Value()),
	}
	if !e.Sheet.Loaded() {
		status = append(status, "no image loaded (drop a file on the window)")
	}
	if e.Playing {
		status = append(status, "playing")
	}
	y := hudMargin
	for _, s := range status {
		e.drawText(screen, s, hudMargin, y, ColorWhite)
		y += hudLineHeight
	}

	// Track list on the right.
	x := e.width - hudTrackWidth
	y = hudMargin
	for _, t := range e.Store.Tracks() {
		marker := "  "
		if t.Name == e.Store.SelectedName() {
			marker = "> "
		}
		c := ColorWhite
		if m := e.Store.Meta(t.Name); m != nil {
			c = m.DisplayColor()
		}
		e.drawText(screen, fmt.Sprintf("%s%s  %dms  %d frames", marker, t.Name, t.UpdateRate, t.Len()), x, y, c)
		y += hudLineHeight
	}

	// Messages, newest at the bottom, above the help line.
	y = e.height - hudMargin - 2*hudLineHeight
	entries := e.Logs.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		le := entries[i]
		e.drawText(screen, le.Message, hudMargin, y, le.Color.WithAlpha(le.Alpha()))
		y -= hudLineHeight
	}

	e.drawText(screen, helpLine, hudMargin, e.height-hudMargin-hudLineHeight, Color{0.7, 0.7, 0.7, 1})

	if e.Form.Open {
		e.drawForm(screen)
	}
}

func (e *Editor) drawForm(screen *ebiten.Image) {
	x := float32(e.width-formWidth) / 2
	y := float32(e.height-formHeight) / 2
	vector.DrawFilledRect(screen, x, y, formWidth, formHeight, Color{0.05, 0.05, 0.08, 0.95}.RGBA(), false)
	vector.StrokeRect(screen, x, y, formWidth, formHeight, 1, ColorWhite.RGBA(), false)

	name, rate := e.Form.Name, e.Form.Rate
	if e.Form.Field == FieldName {
		name += "_"
	} else {
		rate += "_"
	}
	tx, ty := int(x)+12, int(y)+12
	e.drawText(screen, "Create track", tx, ty, ColorWhite)
	e.drawText(screen, "name: "+name, tx, ty+2*hudLineHeight, ColorWhite)
	e.drawText(screen, "update rate (ms): "+rate, tx, ty+3*hudLineHeight, ColorWhite)
	e.drawText(screen, "Enter create | Tab field | Esc cancel", tx, ty+5*hudLineHeight, Color{0.7, 0.7, 0.7, 1})
}

func (e *Editor) drawText(dst *ebiten.Image, s string, x, y int, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(dst, s, e.face, op)
}
