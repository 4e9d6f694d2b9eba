package canvas

import "image"

// Rect is the logical state of one drawn rectangle.
type Rect struct {
	ID     HandleID
	Bounds image.Rectangle
	Color  string
	// Rotating is set once the rectangle is enrolled for spinning and stays
	// set until it is swept. It is informational; RotationScheduler decides
	// enrollment from its own set.
	Rotating bool
}

func (r *Rect) Width() int  { return r.Bounds.Dx() }
func (r *Rect) Height() int { return r.Bounds.Dy() }

// Area is width*height of the stored bounds.
func (r *Rect) Area() int {
	return r.Width() * r.Height()
}

// Valid reports whether both sides are strictly positive.
func (r *Rect) Valid() bool {
	return r.Width() > 0 && r.Height() > 0
}

// spanning returns the axis-aligned box covering a and b.
func spanning(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: b}.Canon()
}
