package archive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_InitialSnapshotIsEmptyButUsable(t *testing.T) {
	store := NewStore()

	snap := store.Current()
	require.NotNil(t, snap)
	require.Empty(t, snap.Families)
	require.Empty(t, snap.Stories)
	require.Equal(t, DegradationTotal, snap.Degradation)
}

func TestStore_ReplaceAssignsIncreasingEpochs(t *testing.T) {
	store := NewStore()

	first := NewSnapshot([]*FamilyRecord{{ID: "1", FamilyName: "Eckford", TimePeriod: "1957"}}, nil, DegradationNone, "")
	store.Replace(first)
	require.Equal(t, int64(1), store.Current().Epoch)

	second := NewSnapshot(nil, nil, DegradationTotal, "unavailable")
	store.Replace(second)
	require.Equal(t, int64(2), store.Current().Epoch)
	require.Equal(t, "unavailable", store.Current().Notice)
}

func TestNewSnapshot_AssemblesTimeline(t *testing.T) {
	snap := NewSnapshot([]*FamilyRecord{
		{ID: "1", FamilyName: "Eckford", TimePeriod: "1957-1960"},
	}, nil, DegradationNone, "")

	require.NotNil(t, snap.Timeline)
	require.Contains(t, snap.Timeline, "1957")
	require.Len(t, snap.Timeline["1957"].Families, 1)
	require.False(t, snap.FetchedAt.IsZero())
}

func TestStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := store.Current()
				// A snapshot with families must always have its timeline.
				if len(snap.Families) > 0 && snap.Timeline == nil {
					t.Error("Reader observed a partially constructed snapshot")
					return
				}
			}
		}()
	}

	for j := 0; j < 50; j++ {
		store.Replace(NewSnapshot([]*FamilyRecord{{ID: "1", FamilyName: "Eckford", TimePeriod: "1957"}}, nil, DegradationNone, ""))
	}

	wg.Wait()
}
