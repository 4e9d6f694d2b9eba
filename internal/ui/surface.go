package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/example/spinrect/internal/canvas"
	"github.com/example/spinrect/internal/export"
)

type spin struct {
	start    time.Time
	degrees  float64
	duration time.Duration
}

type handle struct {
	id     canvas.HandleID
	bounds image.Rectangle
	hex    string
	fill   color.Color
	spin   *spin
}

// surface keeps the render state of every handle. Handles draw in creation
// order, so newer rectangles sit on top.
type surface struct {
	clock   canvas.Clock
	log     zerolog.Logger
	handles map[canvas.HandleID]*handle
	order   []canvas.HandleID
}

func newSurface(clock canvas.Clock, log zerolog.Logger) *surface {
	return &surface{
		clock:   clock,
		log:     log,
		handles: make(map[canvas.HandleID]*handle),
	}
}

func (s *surface) CreateHandle(pos image.Point, hex string) canvas.HandleID {
	id := canvas.HandleID(uuid.NewString())
	s.handles[id] = &handle{
		id:     id,
		bounds: image.Rectangle{Min: pos, Max: pos},
		hex:    hex,
		fill:   s.parse(hex),
	}
	s.order = append(s.order, id)
	return id
}

func (s *surface) Reposition(id canvas.HandleID, bounds image.Rectangle) {
	if h, ok := s.handles[id]; ok {
		h.bounds = bounds
	}
}

func (s *surface) Recolor(id canvas.HandleID, hex string) {
	if h, ok := s.handles[id]; ok {
		h.hex = hex
		h.fill = s.parse(hex)
	}
}

func (s *surface) Spin(id canvas.HandleID, degrees float64, d time.Duration) {
	if h, ok := s.handles[id]; ok {
		h.spin = &spin{start: s.clock.Now(), degrees: degrees, duration: d}
	}
}

func (s *surface) Destroy(id canvas.HandleID) {
	if _, ok := s.handles[id]; !ok {
		return
	}
	delete(s.handles, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *surface) parse(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		s.log.Warn().Str("color", hex).Err(err).Msg("unparseable color, using white")
		return color.White
	}
	return c
}

// angle returns the current rotation of h in degrees. A finished spin rests
// at its final angle.
func (h *handle) angle(now time.Time) float64 {
	if h.spin == nil || h.spin.duration <= 0 {
		return 0
	}
	t := float64(now.Sub(h.spin.start)) / float64(h.spin.duration)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return h.spin.degrees * t
}

// visible lists handles with a non-empty area in draw order.
func (s *surface) visible() []*handle {
	out := make([]*handle, 0, len(s.order))
	for _, id := range s.order {
		if h := s.handles[id]; !h.bounds.Empty() {
			out = append(out, h)
		}
	}
	return out
}

// shapes lists visible handles in draw order, shifted by offset.
func (s *surface) shapes(now time.Time, offset image.Point) []export.Shape {
	vis := s.visible()
	out := make([]export.Shape, 0, len(vis))
	for _, h := range vis {
		out = append(out, export.Shape{
			Bounds: h.bounds.Add(offset),
			Color:  h.hex,
			Angle:  h.angle(now),
		})
	}
	return out
}
