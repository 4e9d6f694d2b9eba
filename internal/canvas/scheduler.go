package canvas

import (
	"sort"
	"time"
)

type task struct {
	id  HandleID
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler is a deadline queue of one-shot tasks keyed by handle. It never
// runs anything on its own: tasks fire from Advance, on the caller's goroutine.
type Scheduler struct {
	tasks []*task
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arms fn to fire at due. An existing task for id is replaced.
func (s *Scheduler) Schedule(id HandleID, due time.Time, fn func()) {
	s.Cancel(id)
	s.seq++
	t := &task{id: id, due: due, seq: s.seq, fn: fn}
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due.After(due)
	})
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

// Cancel disarms the task for id and reports whether one was pending.
func (s *Scheduler) Cancel(id HandleID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = nil
	return n
}

func (s *Scheduler) Pending(id HandleID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return true
		}
	}
	return false
}

func (s *Scheduler) Len() int { return len(s.tasks) }

// Advance fires every task due at or before now, earliest first, and returns
// how many fired. Tasks with equal deadlines fire in the order they were
// scheduled.
func (s *Scheduler) Advance(now time.Time) int {
	fired := 0
	for len(s.tasks) > 0 && !s.tasks[0].due.After(now) {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		t.fn()
		fired++
	}
	return fired
}
