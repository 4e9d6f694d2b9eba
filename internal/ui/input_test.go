package ui

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/spinrect/internal/canvas"
)

func click(c *clickTracker, p image.Point, id canvas.HandleID, at time.Time) bool {
	c.press(p, id)
	double, _ := c.release(p, at)
	return double
}

func TestClickTracker(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("two quick clicks", func(t *testing.T) {
		c := newClickTracker(400*time.Millisecond, 5)
		assert.False(t, click(c, image.Pt(10, 10), "a", base))
		c.press(image.Pt(12, 11), "b")
		double, own := c.release(image.Pt(12, 11), base.Add(200*time.Millisecond))
		assert.True(t, double)
		assert.Equal(t, []canvas.HandleID{"a", "b"}, own)
	})

	t.Run("third click starts over", func(t *testing.T) {
		c := newClickTracker(400*time.Millisecond, 5)
		click(c, image.Pt(10, 10), "a", base)
		click(c, image.Pt(10, 10), "b", base.Add(100*time.Millisecond))
		assert.False(t, click(c, image.Pt(10, 10), "c", base.Add(200*time.Millisecond)))
	})

	t.Run("too slow", func(t *testing.T) {
		c := newClickTracker(400*time.Millisecond, 5)
		click(c, image.Pt(10, 10), "a", base)
		assert.False(t, click(c, image.Pt(10, 10), "b", base.Add(time.Second)))
	})

	t.Run("too far apart", func(t *testing.T) {
		c := newClickTracker(400*time.Millisecond, 5)
		click(c, image.Pt(10, 10), "a", base)
		assert.False(t, click(c, image.Pt(30, 10), "b", base.Add(100*time.Millisecond)))
	})

	t.Run("drag is not a click", func(t *testing.T) {
		c := newClickTracker(400*time.Millisecond, 5)
		click(c, image.Pt(10, 10), "a", base)
		c.press(image.Pt(10, 10), "b")
		double, own := c.release(image.Pt(60, 60), base.Add(100*time.Millisecond))
		assert.False(t, double)
		assert.Nil(t, own)
		assert.False(t, click(c, image.Pt(10, 10), "c", base.Add(200*time.Millisecond)))
	})
}
