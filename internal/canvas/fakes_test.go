package canvas

import (
	"fmt"
	"image"
	"time"
)

type fakeHandle struct {
	bounds image.Rectangle
	color  string
	spins  int
}

// fakeSurface records every call so tests can assert on rendering side effects.
type fakeSurface struct {
	next      int
	handles   map[HandleID]*fakeHandle
	destroyed []HandleID
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{handles: make(map[HandleID]*fakeHandle)}
}

func (f *fakeSurface) CreateHandle(pos image.Point, color string) HandleID {
	f.next++
	id := HandleID(fmt.Sprintf("h%d", f.next))
	f.handles[id] = &fakeHandle{bounds: image.Rectangle{Min: pos, Max: pos}, color: color}
	return id
}

func (f *fakeSurface) Reposition(h HandleID, bounds image.Rectangle) {
	if fh, ok := f.handles[h]; ok {
		fh.bounds = bounds
	}
}

func (f *fakeSurface) Recolor(h HandleID, color string) {
	if fh, ok := f.handles[h]; ok {
		fh.color = color
	}
}

func (f *fakeSurface) Spin(h HandleID, _ float64, _ time.Duration) {
	if fh, ok := f.handles[h]; ok {
		fh.spins++
	}
}

func (f *fakeSurface) Destroy(h HandleID) {
	delete(f.handles, h)
	f.destroyed = append(f.destroyed, h)
}

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *manualClock) Now() time.Time { return m.now }

func (m *manualClock) Advance(d time.Duration) { m.now = m.now.Add(d) }

// sequentialColors hands out "#000001", "#000002", ...
func sequentialColors() ColorSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("#%06X", n)
	}
}

// drawRect performs a full gesture from a to b and returns the new handle.
func drawRect(c *Controller, s *fakeSurface, a, b image.Point) HandleID {
	c.PointerDown(a)
	c.PointerMove(b)
	c.PointerUp()
	return HandleID(fmt.Sprintf("h%d", s.next))
}
