package spritecut

import "math"

const (
	// MinScale is the smallest zoom the viewport allows.
	MinScale = 0.5
	// ZoomStep is the scale change per wheel notch.
	ZoomStep = 0.5
	// GridScale is the zoom at which the per-pixel grid appears.
	GridScale = 7.0
)

// Viewport maps pointer coordinates to image-local coordinates using a scale
// factor and a camera offset. Offset follows a pan drag live; Position is the
// offset as of the last commit and is the base the next pan starts from.
type Viewport struct {
	// Scale is the zoom factor. Never below MinScale.
	Scale float64
	// Offset is where the image origin sits in viewport-scaled space.
	Offset Point
	// Position is the committed Offset.
	Position Point

	panOrigin Point
}

// NewViewport creates a viewport at scale 1 with the camera at (x, y).
func NewViewport(x, y int) *Viewport {
	return &Viewport{
		Scale:    1,
		Offset:   Point{x, y},
		Position: Point{x, y},
	}
}

// Scaled converts raw pointer coordinates into viewport-scaled space.
func (v *Viewport) Scaled(sx, sy float64) Point {
	return Point{int(math.Trunc(sx / v.Scale)), int(math.Trunc(sy / v.Scale))}
}

// ToWorld converts raw pointer coordinates to image-local coordinates.
func (v *Viewport) ToWorld(sx, sy float64) Point {
	return v.Scaled(sx, sy).Sub(v.Offset)
}

// ToScreen converts image-local coordinates to screen pixels.
func (v *Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return (x + float64(v.Offset.X)) * v.Scale, (y + float64(v.Offset.Y)) * v.Scale
}

// Zoom steps the scale in for a positive delta and out for a negative one,
// never going below MinScale. A zero delta leaves the scale unchanged.
func (v *Viewport) Zoom(delta float64) {
	switch {
	case delta > 0:
		v.Scale += ZoomStep
	case delta < 0:
		v.Scale -= ZoomStep
	default:
		return
	}
	v.Scale = math.Max(MinScale, v.Scale)
}

// BeginPan records p, in viewport-scaled space, as the drag origin.
func (v *Viewport) BeginPan(p Point) {
	v.panOrigin = p
}

// UpdatePan moves the camera by the distance from the drag origin to p.
func (v *Viewport) UpdatePan(p Point) {
	v.Offset = v.Position.Add(p.Sub(v.panOrigin))
}

// CommitPan makes the current offset the base for the next pan.
func (v *Viewport) CommitPan() {
	v.Position = v.Offset
}

// ShowGrid reports whether the zoom is high enough for the pixel grid.
func (v *Viewport) ShowGrid() bool {
	return v.Scale >= GridScale
}
