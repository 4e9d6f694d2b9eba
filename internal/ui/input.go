package ui

import (
	"image"
	"time"

	"github.com/example/spinrect/internal/canvas"
)

// clickTracker turns completed clicks into double-clicks. A click is a
// release close to its press; two clicks close in time and space make a
// double-click. Each press remembers the handle its gesture created so the
// caller can keep those handles out of double-click routing.
type clickTracker struct {
	interval time.Duration
	distance int

	pressAt   image.Point
	pressID   canvas.HandleID
	lastClick image.Point
	lastID    canvas.HandleID
	lastTime  time.Time
	armed     bool
}

func newClickTracker(interval time.Duration, distance int) *clickTracker {
	return &clickTracker{interval: interval, distance: distance}
}

func (c *clickTracker) press(p image.Point, id canvas.HandleID) {
	c.pressAt = p
	c.pressID = id
}

// release reports whether this release completes a double-click and, if so,
// the handles created by its two clicks.
func (c *clickTracker) release(p image.Point, now time.Time) (bool, []canvas.HandleID) {
	if !c.near(c.pressAt, p) {
		c.armed = false
		return false, nil
	}
	if c.armed && now.Sub(c.lastTime) <= c.interval && c.near(c.lastClick, p) {
		c.armed = false
		return true, []canvas.HandleID{c.lastID, c.pressID}
	}
	c.armed = true
	c.lastClick = p
	c.lastID = c.pressID
	c.lastTime = now
	return false, nil
}

func (c *clickTracker) near(a, b image.Point) bool {
	d := a.Sub(b)
	return d.X*d.X+d.Y*d.Y <= c.distance*c.distance
}
