package canvas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_FiresInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var order []string

	s.Schedule("late", base.Add(3*time.Second), func() { order = append(order, "late") })
	s.Schedule("early", base.Add(time.Second), func() { order = append(order, "early") })
	s.Schedule("tie", base.Add(3*time.Second), func() { order = append(order, "tie") })

	assert.Zero(t, s.Advance(base))
	assert.Equal(t, 1, s.Advance(base.Add(time.Second)))
	assert.Equal(t, 2, s.Advance(base.Add(10*time.Second)))
	assert.Equal(t, []string{"early", "late", "tie"}, order)
	assert.Zero(t, s.Len())
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fired := false
	s.Schedule("a", base, func() { fired = true })

	assert.True(t, s.Pending("a"))
	assert.True(t, s.Cancel("a"))
	assert.False(t, s.Cancel("a"))
	s.Advance(base.Add(time.Hour))
	assert.False(t, fired)
}

func TestScheduler_RescheduleReplaces(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	s.Schedule("a", base, func() { calls++ })
	s.Schedule("a", base.Add(time.Second), func() { calls += 10 })

	assert.Equal(t, 1, s.Len())
	s.Advance(base.Add(time.Second))
	assert.Equal(t, 10, calls)
}

func TestScheduler_TaskMaySchedule(t *testing.T) {
	s := NewScheduler()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fired := 0
	s.Schedule("a", base, func() {
		fired++
		s.Schedule("b", base, func() { fired++ })
	})

	assert.Equal(t, 2, s.Advance(base))
	assert.Equal(t, 2, fired)
}
