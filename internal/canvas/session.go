package canvas

import "image"

type sessionState int

const (
	sessionIdle sessionState = iota
	sessionDrawing
)

// DrawSession tracks a single press-move-release gesture.
type DrawSession struct {
	state   sessionState
	origin  image.Point
	current *Rect
}

// Begin starts a gesture at origin, creating a zero-size handle. It returns
// false while another gesture is active; the active one keeps its rectangle.
func (d *DrawSession) Begin(origin image.Point, surface Surface, color string) bool {
	if d.state != sessionIdle {
		return false
	}
	d.origin = origin
	d.current = &Rect{
		ID:     surface.CreateHandle(origin, color),
		Bounds: image.Rectangle{Min: origin, Max: origin},
		Color:  color,
	}
	d.state = sessionDrawing
	return true
}

// Update stretches the rectangle to span origin and p, whatever the drag
// direction.
func (d *DrawSession) Update(p image.Point, surface Surface) {
	if d.state != sessionDrawing {
		return
	}
	d.current.Bounds = spanning(d.origin, p)
	surface.Reposition(d.current.ID, d.current.Bounds)
}

// End closes the gesture and hands back the rectangle to commit.
func (d *DrawSession) End() (*Rect, bool) {
	if d.state != sessionDrawing {
		return nil, false
	}
	r := d.current
	d.current = nil
	d.state = sessionIdle
	return r, true
}

func (d *DrawSession) Active() bool { return d.state == sessionDrawing }

// Current returns the in-progress rectangle, or nil when idle.
func (d *DrawSession) Current() *Rect { return d.current }

// abort drops the in-progress rectangle without committing it.
func (d *DrawSession) abort() *Rect {
	r := d.current
	d.current = nil
	d.state = sessionIdle
	return r
}
