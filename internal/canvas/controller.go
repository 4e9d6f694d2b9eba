package canvas

import (
	"image"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source for rotation deadlines.
func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithColorSource sets where gesture and repaint colors come from.
func WithColorSource(src ColorSource) Option {
	return func(ctl *Controller) { ctl.colors = src }
}

// WithLogger sets the parent logger; the controller adds a component field.
func WithLogger(log zerolog.Logger) Option {
	return func(ctl *Controller) { ctl.log = log }
}

// WithRotation overrides the spin duration and angle.
func WithRotation(d time.Duration, degrees float64) Option {
	return func(ctl *Controller) {
		ctl.rotationDuration = d
		ctl.rotationDegrees = degrees
	}
}

// Stats is a point-in-time count of canvas state.
type Stats struct {
	Live     int
	Rotating int
	Pending  int
	Drawing  bool
}

// Controller owns every piece of canvas state and is driven by input events
// and Tick. It is not safe for concurrent use; call it from the goroutine
// that delivers input.
type Controller struct {
	surface Surface
	clock   Clock
	colors  ColorSource
	log     zerolog.Logger

	rotationDuration time.Duration
	rotationDegrees  float64

	registry *Registry
	timers   *Scheduler
	rotation *RotationScheduler
	session  DrawSession
	closed   bool
}

func New(surface Surface, opts ...Option) *Controller {
	ctl := &Controller{
		surface:          surface,
		clock:            SystemClock(),
		colors:           NextColor,
		log:              zerolog.Nop(),
		rotationDuration: DefaultRotationDuration,
		rotationDegrees:  DefaultRotationDegrees,
		registry:         NewRegistry(),
		timers:           NewScheduler(),
	}
	for _, opt := range opts {
		opt(ctl)
	}
	ctl.log = ctl.log.With().Str("component", "canvas").Logger()
	ctl.rotation = NewRotationScheduler(ctl.registry, surface, ctl.timers, ctl.clock, ctl.log)
	ctl.rotation.duration = ctl.rotationDuration
	ctl.rotation.degrees = ctl.rotationDegrees
	return ctl
}

// PointerDown starts a drawing gesture at p.
func (c *Controller) PointerDown(p image.Point) {
	if c.closed {
		return
	}
	if !c.session.Begin(p, c.surface, c.colors()) {
		c.log.Debug().Interface("point", p).Msg("press ignored, gesture already active")
		return
	}
	c.log.Debug().Str("handle", string(c.session.Current().ID)).Interface("origin", p).Msg("gesture started")
}

func (c *Controller) PointerMove(p image.Point) {
	if c.closed {
		return
	}
	c.session.Update(p, c.surface)
}

// PointerUp commits the active gesture's rectangle, arming it for
// double-click.
func (c *Controller) PointerUp() {
	if c.closed {
		return
	}
	r, ok := c.session.End()
	if !ok {
		return
	}
	c.registry.Add(r)
	c.log.Debug().
		Str("handle", string(r.ID)).
		Int("width", r.Width()).
		Int("height", r.Height()).
		Msg("rectangle committed")
}

// DoubleClick spins the committed rectangle h. It reports whether a new
// rotation started.
func (c *Controller) DoubleClick(h HandleID) bool {
	if c.closed {
		return false
	}
	r, ok := c.registry.Get(h)
	if !ok {
		return false
	}
	return c.rotation.Enroll(r)
}

// DoubleClickAt routes a double-click at p to the topmost rectangle there.
// Handles in exclude are passed over, so the gestures that made up the
// double-click cannot catch it themselves.
func (c *Controller) DoubleClickAt(p image.Point, exclude ...HandleID) bool {
	if c.closed {
		return false
	}
	r, ok := c.registry.HitTest(p, exclude...)
	if !ok {
		return false
	}
	return c.rotation.Enroll(r)
}

// Repaint gives the two rectangles with the closest areas one fresh color.
// With fewer than two valid rectangles it does nothing.
func (c *Controller) Repaint() {
	if c.closed {
		return
	}
	for _, r := range c.registry.PruneInvalid() {
		c.surface.Destroy(r.ID)
	}
	a, b, ok := ClosestPair(c.registry.ValidEntries())
	if !ok {
		return
	}
	color := c.colors()
	for _, r := range []*Rect{a, b} {
		r.Color = color
		c.surface.Recolor(r.ID, color)
	}
	c.log.Debug().
		Str("first", string(a.ID)).
		Str("second", string(b.ID)).
		Str("color", color).
		Msg("repainted closest pair")
}

// Tick fires rotation completions that are due at now.
func (c *Controller) Tick(now time.Time) {
	if c.closed {
		return
	}
	c.timers.Advance(now)
}

// Clear cancels every rotation and destroys every handle, including one
// being drawn.
func (c *Controller) Clear() {
	c.rotation.reset()
	c.timers.CancelAll()
	if r := c.session.abort(); r != nil {
		c.surface.Destroy(r.ID)
	}
	for _, r := range c.registry.Snapshot() {
		c.surface.Destroy(r.ID)
	}
	c.registry.Clear()
	c.log.Debug().Msg("canvas cleared")
}

// Close clears the canvas and ignores every later event.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.Clear()
	c.closed = true
}

// ActiveHandle returns the handle of the gesture in progress.
func (c *Controller) ActiveHandle() (HandleID, bool) {
	if r := c.session.Current(); r != nil {
		return r.ID, true
	}
	return "", false
}

func (c *Controller) Stats() Stats {
	return Stats{
		Live:     c.registry.Len(),
		Rotating: c.rotation.Rotating(),
		Pending:  c.rotation.Pending(),
		Drawing:  c.session.Active(),
	}
}

// Snapshot returns the committed rectangles followed by the one being drawn.
func (c *Controller) Snapshot() []Rect {
	out := c.registry.Snapshot()
	if r := c.session.Current(); r != nil {
		out = append(out, *r)
	}
	return out
}
