package archive

import (
	"time"

	"github.com/hiddenhistories/archive/app/debounce"
)

// SearchSession drives one interactive search overlay: raw keystrokes go in,
// debounced SearchResults come out through the callback. Recomputation is
// bounded to once per pause in typing, and the evaluated query always
// reflects the latest keystroke.
type SearchSession struct {
	store     *Store
	searcher  *Searcher
	debouncer *debounce.Debouncer
	onResults func(SearchResults)
}

func NewSearchSession(store *Store, quiet time.Duration, onResults func(SearchResults)) *SearchSession {
	s := &SearchSession{
		store:     store,
		searcher:  NewSearcher(),
		onResults: onResults,
	}
	s.debouncer = debounce.New(quiet, s.run)
	return s
}

// NewSearchSessionWithClock injects a controllable clock for tests.
func NewSearchSessionWithClock(store *Store, quiet time.Duration, onResults func(SearchResults), clock debounce.Clock) *SearchSession {
	s := &SearchSession{
		store:     store,
		searcher:  NewSearcher(),
		onResults: onResults,
	}
	s.debouncer = debounce.NewWithClock(quiet, s.run, clock)
	return s
}

// Type feeds one raw input value into the session.
func (s *SearchSession) Type(query string) {
	s.debouncer.Input(query)
}

// Close cancels any pending recomputation. No results are delivered after
// Close returns the session to the caller.
func (s *SearchSession) Close() {
	s.debouncer.Stop()
}

func (s *SearchSession) run(query string) {
	snap := s.store.Current()
	s.onResults(s.searcher.Run(query, snap.Families, snap.Stories, snap.Timeline))
}
