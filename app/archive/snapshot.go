package archive

import (
	"sync"
	"time"
)

// Degradation describes how much of the CMS content survived the last fetch.
type Degradation string

const (
	DegradationNone    Degradation = "none"
	DegradationPartial Degradation = "partial_degraded"
	DegradationTotal   Degradation = "total_unavailable"
)

// Snapshot is one immutable data-load epoch: the normalized collections plus
// the timeline assembled from them. Consumers read it concurrently without
// locking; a refresh produces a whole new snapshot.
type Snapshot struct {
	Epoch       int64
	FetchedAt   time.Time
	Families    []*FamilyRecord
	Stories     []*StoryRecord
	Timeline    map[string]*YearBucket
	Degradation Degradation
	Notice      string
}

// NewSnapshot assembles the timeline for the given collections. Epoch is
// assigned by the store on replacement.
func NewSnapshot(families []*FamilyRecord, stories []*StoryRecord, degradation Degradation, notice string) *Snapshot {
	return &Snapshot{
		FetchedAt:   time.Now().UTC(),
		Families:    families,
		Stories:     stories,
		Timeline:    NewAssembler().Run(families),
		Degradation: degradation,
		Notice:      notice,
	}
}

// Store holds the current snapshot. Replacement is atomic from each reader's
// perspective: a reader sees either the old or the new snapshot in full.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	epoch   int64
}

func NewStore() *Store {
	return &Store{
		current: NewSnapshot([]*FamilyRecord{}, []*StoryRecord{}, DegradationTotal, "Archive has not been loaded yet."),
	}
}

func (s *Store) Replace(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	snap.Epoch = s.epoch
	s.current = snap
}

func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}
