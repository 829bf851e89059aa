package archive

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hiddenhistories/archive/app/debounce"
)

type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	deadline time.Duration
	f        func()
	stopped  bool
}

func (t *manualTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) debounce.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &manualTimer{deadline: c.now + d, f: f}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, timer := range c.timers {
		if !timer.stopped && timer.deadline <= c.now {
			timer.stopped = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.f()
	}
}

func TestSearchSession_DebouncedRecomputation(t *testing.T) {
	store := NewStore()
	store.Replace(NewSnapshot([]*FamilyRecord{
		{ID: "1", FamilyName: "Thomas", ChildrenNames: "Elizabeth Eckford", TimePeriod: "1957-1960"},
	}, nil, DegradationNone, ""))

	clock := &manualClock{}

	var delivered []SearchResults
	session := NewSearchSessionWithClock(store, 300*time.Millisecond, func(r SearchResults) {
		delivered = append(delivered, r)
	}, clock)

	// Rapid keystrokes: only the final query is ever evaluated.
	for _, q := range []string{"e", "ec", "eckford"} {
		session.Type(q)
		clock.Advance(50 * time.Millisecond)
	}
	require.Empty(t, delivered)

	clock.Advance(300 * time.Millisecond)
	require.Len(t, delivered, 1)
	require.True(t, delivered[0].Active)
	require.Len(t, delivered[0].Families, 1)
	require.Equal(t, "Thomas", delivered[0].Families[0].FamilyName)
}

func TestSearchSession_ClearedInputDeactivatesSearch(t *testing.T) {
	store := NewStore()
	clock := &manualClock{}

	var delivered []SearchResults
	session := NewSearchSessionWithClock(store, 300*time.Millisecond, func(r SearchResults) {
		delivered = append(delivered, r)
	}, clock)

	session.Type("")
	clock.Advance(300 * time.Millisecond)

	require.Len(t, delivered, 1)
	require.False(t, delivered[0].Active)
	require.Empty(t, delivered[0].Families)
}

func TestSearchSession_CloseStopsDelivery(t *testing.T) {
	store := NewStore()
	clock := &manualClock{}

	var delivered []SearchResults
	session := NewSearchSessionWithClock(store, 300*time.Millisecond, func(r SearchResults) {
		delivered = append(delivered, r)
	}, clock)

	session.Type("eckford")
	session.Close()
	clock.Advance(time.Second)

	require.Empty(t, delivered, "no results may be delivered after Close")
}
