package canvas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectOf(id string, x, y, w, h int) *Rect {
	return &Rect{ID: HandleID(id), Bounds: image.Rect(x, y, x+w, y+h)}
}

func TestRegistry_AddRemove(t *testing.T) {
	g := NewRegistry()
	a := rectOf("a", 0, 0, 10, 10)
	g.Add(a)
	g.Add(a)
	assert.Equal(t, 1, g.Len(), "duplicate add must not duplicate the entry")

	assert.True(t, g.Remove("a"))
	assert.False(t, g.Remove("a"), "second remove is a no-op")
	assert.False(t, g.Remove("missing"))
	assert.Zero(t, g.Len())
}

func TestRegistry_ValidEntriesPrunes(t *testing.T) {
	g := NewRegistry()
	g.Add(rectOf("a", 0, 0, 10, 10))
	g.Add(rectOf("flat", 5, 5, 10, 0))
	g.Add(rectOf("thin", 5, 5, 0, 10))
	g.Add(rectOf("b", 0, 0, 3, 4))

	valid := g.ValidEntries()
	require.Len(t, valid, 2)
	assert.Equal(t, HandleID("a"), valid[0].ID)
	assert.Equal(t, HandleID("b"), valid[1].ID)

	assert.Equal(t, 2, g.Len(), "invalid entries are removed from the registry itself")
	_, ok := g.Get("flat")
	assert.False(t, ok)
}

func TestRegistry_HitTestPrefersNewest(t *testing.T) {
	g := NewRegistry()
	g.Add(rectOf("under", 0, 0, 100, 100))
	g.Add(rectOf("over", 50, 50, 100, 100))

	r, ok := g.HitTest(image.Pt(60, 60))
	require.True(t, ok)
	assert.Equal(t, HandleID("over"), r.ID)

	r, ok = g.HitTest(image.Pt(10, 10))
	require.True(t, ok)
	assert.Equal(t, HandleID("under"), r.ID)

	_, ok = g.HitTest(image.Pt(500, 500))
	assert.False(t, ok)

	r, ok = g.HitTest(image.Pt(60, 60), "over")
	require.True(t, ok)
	assert.Equal(t, HandleID("under"), r.ID)

	_, ok = g.HitTest(image.Pt(60, 60), "over", "under")
	assert.False(t, ok)
}

func TestRegistry_SnapshotIsCopy(t *testing.T) {
	g := NewRegistry()
	g.Add(rectOf("a", 0, 0, 10, 10))
	snap := g.Snapshot()
	snap[0].Color = "#FFFFFF"

	r, _ := g.Get("a")
	assert.Empty(t, r.Color)
}
