package ui

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSurface_HandleLifecycle(t *testing.T) {
	s := newSurface(newStepClock(), zerolog.Nop())

	a := s.CreateHandle(image.Pt(5, 5), "#FF0000")
	b := s.CreateHandle(image.Pt(0, 0), "#00FF00")
	_, err := uuid.Parse(string(a))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	assert.Empty(t, s.visible(), "zero-size handles are not drawn")

	s.Reposition(a, image.Rect(5, 5, 20, 30))
	s.Reposition(b, image.Rect(0, 0, 10, 10))
	vis := s.visible()
	require.Len(t, vis, 2)
	assert.Equal(t, a, vis[0].id)
	assert.Equal(t, b, vis[1].id)

	s.Recolor(a, "#0000FF")
	r, g, bl, _ := s.handles[a].fill.RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, bl})

	s.Destroy(a)
	s.Destroy(a)
	s.Destroy("unknown")
	require.Len(t, s.visible(), 1)
	assert.Equal(t, b, s.visible()[0].id)
}

func TestSurface_BadColorFallsBack(t *testing.T) {
	s := newSurface(newStepClock(), zerolog.Nop())
	id := s.CreateHandle(image.Pt(0, 0), "nope")
	assert.Equal(t, color.White, s.handles[id].fill)
}

func TestSurface_SpinAngle(t *testing.T) {
	clk := newStepClock()
	s := newSurface(clk, zerolog.Nop())
	id := s.CreateHandle(image.Pt(0, 0), "#FFFFFF")
	s.Reposition(id, image.Rect(0, 0, 10, 10))
	h := s.handles[id]

	assert.Zero(t, h.angle(clk.Now()))
	s.Spin(id, 360, 3*time.Second)

	assert.InDelta(t, 0, h.angle(clk.Now()), 1e-9)
	clk.Advance(1500 * time.Millisecond)
	assert.InDelta(t, 180, h.angle(clk.Now()), 1e-9)
	clk.Advance(time.Hour)
	assert.InDelta(t, 360, h.angle(clk.Now()), 1e-9)
}

func TestSurface_ShapesOffset(t *testing.T) {
	s := newSurface(newStepClock(), zerolog.Nop())
	id := s.CreateHandle(image.Pt(10, 100), "#ABCDEF")
	s.Reposition(id, image.Rect(10, 100, 30, 140))

	shapes := s.shapes(time.Now(), image.Pt(0, -80))
	require.Len(t, shapes, 1)
	assert.Equal(t, image.Rect(10, 20, 30, 60), shapes[0].Bounds)
	assert.Equal(t, "#ABCDEF", shapes[0].Color)
}
