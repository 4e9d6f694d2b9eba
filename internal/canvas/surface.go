// Package canvas holds the rectangle lifecycle: drawing gestures, the
// registry of live rectangles, rotation scheduling and closest-area repaint.
// Rendering is delegated to a Surface.
package canvas

import (
	"image"
	"time"
)

// HandleID identifies a rendered rectangle owned by a Surface.
type HandleID string

// Surface renders rectangle handles. It is never consulted for geometry.
type Surface interface {
	CreateHandle(pos image.Point, color string) HandleID
	Reposition(h HandleID, bounds image.Rectangle)
	Recolor(h HandleID, color string)
	// Spin starts a one-shot rotation animation of the given angle.
	Spin(h HandleID, degrees float64, d time.Duration)
	// Destroy removes the handle. Destroying an unknown handle is a no-op.
	Destroy(h HandleID)
}

// Clock supplies the current time for rotation deadlines.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
