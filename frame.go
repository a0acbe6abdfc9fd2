package spritecut

import "image"

// Point is an integer position in viewport-scaled or image-local space.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Frame is a rectangle in image-local coordinates. X and Y hold the anchor
// where the drag started and W, H the signed extent from it, so a frame drawn
// up or to the left has a negative width or height until it is normalized.
type Frame struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Normalize returns the canonical rectangle covering the same pixels, with
// non-negative width and height and the top-left corner in X, Y.
func (f Frame) Normalize() Frame {
	if f.W < 0 {
		f.X += f.W
		f.W = -f.W
	}
	if f.H < 0 {
		f.Y += f.H
		f.H = -f.H
	}
	return f
}

// Empty reports whether the frame covers no pixels.
func (f Frame) Empty() bool {
	return f.W == 0 || f.H == 0
}

// Bounds returns the normalized frame as an image.Rectangle, suitable for
// SubImage cropping.
func (f Frame) Bounds() image.Rectangle {
	n := f.Normalize()
	return image.Rect(n.X, n.Y, n.X+n.W, n.Y+n.H)
}
