package canvas

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultRotationDuration = 3 * time.Second
	DefaultRotationDegrees  = 360.0
)

// RotationScheduler spins rectangles and removes them once they finish.
// Removals are batched: pending rectangles are swept only when no rotation
// is in flight, so one wave of overlapping spins disappears together.
type RotationScheduler struct {
	registry *Registry
	surface  Surface
	timers   *Scheduler
	clock    Clock
	log      zerolog.Logger

	duration time.Duration
	degrees  float64

	rotating map[HandleID]*Rect
	pending  []*Rect
}

func NewRotationScheduler(registry *Registry, surface Surface, timers *Scheduler, clock Clock, log zerolog.Logger) *RotationScheduler {
	return &RotationScheduler{
		registry: registry,
		surface:  surface,
		timers:   timers,
		clock:    clock,
		log:      log,
		duration: DefaultRotationDuration,
		degrees:  DefaultRotationDegrees,
		rotating: make(map[HandleID]*Rect),
	}
}

// Enroll starts rotating r. It returns false, doing nothing, when r is
// already rotating.
func (s *RotationScheduler) Enroll(r *Rect) bool {
	if r == nil {
		return false
	}
	if _, ok := s.rotating[r.ID]; ok {
		return false
	}
	r.Rotating = true
	s.rotating[r.ID] = r
	s.surface.Spin(r.ID, s.degrees, s.duration)
	s.timers.Schedule(r.ID, s.clock.Now().Add(s.duration), func() {
		s.complete(r)
	})
	s.log.Debug().Str("handle", string(r.ID)).Dur("duration", s.duration).Msg("rotation started")
	return true
}

func (s *RotationScheduler) complete(r *Rect) {
	delete(s.rotating, r.ID)
	s.pending = append(s.pending, r)
	if len(s.rotating) == 0 {
		s.sweep()
	}
}

func (s *RotationScheduler) sweep() {
	for _, r := range s.pending {
		s.surface.Destroy(r.ID)
		s.registry.Remove(r.ID)
	}
	s.log.Debug().Int("count", len(s.pending)).Msg("swept finished rotations")
	s.pending = nil
}

func (s *RotationScheduler) Rotating() int { return len(s.rotating) }
func (s *RotationScheduler) Pending() int  { return len(s.pending) }

// reset cancels every armed rotation and forgets pending deletions. Handles
// are left for the caller to destroy.
func (s *RotationScheduler) reset() {
	for id := range s.rotating {
		s.timers.Cancel(id)
	}
	s.rotating = make(map[HandleID]*Rect)
	s.pending = nil
}
