package canvas

import (
	"image"
	"slices"
)

// Registry is the authoritative list of committed rectangles.
type Registry struct {
	rects []*Rect
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends r unless a rectangle with the same handle is already present.
func (g *Registry) Add(r *Rect) {
	if r == nil || g.index(r.ID) >= 0 {
		return
	}
	g.rects = append(g.rects, r)
}

// Remove drops the rectangle with handle id. Removing an absent handle is a no-op.
func (g *Registry) Remove(id HandleID) bool {
	i := g.index(id)
	if i < 0 {
		return false
	}
	g.rects = append(g.rects[:i], g.rects[i+1:]...)
	return true
}

func (g *Registry) Get(id HandleID) (*Rect, bool) {
	i := g.index(id)
	if i < 0 {
		return nil, false
	}
	return g.rects[i], true
}

func (g *Registry) Len() int { return len(g.rects) }

// ValidEntries prunes every member without a strictly positive width and
// height and returns the survivors in order. The pruning is permanent.
func (g *Registry) ValidEntries() []*Rect {
	g.PruneInvalid()
	out := make([]*Rect, len(g.rects))
	copy(out, g.rects)
	return out
}

// PruneInvalid removes members with a zero width or height and returns them.
func (g *Registry) PruneInvalid() []*Rect {
	var dropped []*Rect
	kept := g.rects[:0]
	for _, r := range g.rects {
		if r.Valid() {
			kept = append(kept, r)
		} else {
			dropped = append(dropped, r)
		}
	}
	for i := len(kept); i < len(g.rects); i++ {
		g.rects[i] = nil
	}
	g.rects = kept
	return dropped
}

// HitTest returns the most recently added rectangle whose bounds contain p,
// skipping the handles in exclude.
func (g *Registry) HitTest(p image.Point, exclude ...HandleID) (*Rect, bool) {
	for i := len(g.rects) - 1; i >= 0; i-- {
		r := g.rects[i]
		if p.In(r.Bounds) && !slices.Contains(exclude, r.ID) {
			return r, true
		}
	}
	return nil, false
}

// Snapshot returns value copies of the members in order.
func (g *Registry) Snapshot() []Rect {
	out := make([]Rect, len(g.rects))
	for i, r := range g.rects {
		out[i] = *r
	}
	return out
}

func (g *Registry) Clear() {
	g.rects = nil
}

func (g *Registry) index(id HandleID) int {
	for i, r := range g.rects {
		if r.ID == id {
			return i
		}
	}
	return -1
}
