package tasks

import (
	"context"
	"testing"

	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/cms"
)

// MockFetcher implements ArchiveFetcher for testing
type MockFetcher struct {
	result *cms.FetchResult
	calls  int
}

func (m *MockFetcher) FetchAllShared(ctx context.Context) *cms.FetchResult {
	m.calls++
	return m.result
}

func TestRefreshArchiveTaskReplacesSnapshot(t *testing.T) {
	store := archive.NewStore()
	fetcher := &MockFetcher{
		result: &cms.FetchResult{
			Families: []*archive.FamilyRecord{
				{ID: "1", FamilyName: "Eckford", TimePeriod: "1957-1960"},
			},
			Stories:     []*archive.StoryRecord{},
			Degradation: archive.DegradationNone,
		},
	}

	task := NewRefreshArchiveTask(fetcher, store)
	err := task.Execute(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	snap := store.Current()
	if len(snap.Families) != 1 {
		t.Errorf("Expected 1 family in snapshot, got %d", len(snap.Families))
	}
	if snap.Epoch != 1 {
		t.Errorf("Expected epoch 1, got %d", snap.Epoch)
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected 1 fetch, got %d", fetcher.calls)
	}
}

func TestRefreshArchiveTaskTotalDegradationReturnsError(t *testing.T) {
	store := archive.NewStore()
	fetcher := &MockFetcher{
		result: &cms.FetchResult{
			Degradation: archive.DegradationTotal,
			Notice:      "Unable to connect to archive database. Please check your connection or try again later.",
		},
	}

	task := NewRefreshArchiveTask(fetcher, store)
	err := task.Execute(context.Background())
	if err == nil {
		t.Error("Expected error for total degradation")
	}

	// Snapshot is still replaced so the notice reaches readers.
	snap := store.Current()
	if snap.Epoch != 1 {
		t.Errorf("Expected epoch 1, got %d", snap.Epoch)
	}
	if snap.Notice == "" {
		t.Error("Expected degradation notice on snapshot")
	}
}

func TestRefreshArchiveTaskPartialDegradationSucceeds(t *testing.T) {
	store := archive.NewStore()
	fetcher := &MockFetcher{
		result: &cms.FetchResult{
			Families:    []*archive.FamilyRecord{{ID: "1", FamilyName: "Walls"}},
			Degradation: archive.DegradationPartial,
			Notice:      "Some archive content may be temporarily unavailable.",
		},
	}

	task := NewRefreshArchiveTask(fetcher, store)
	if err := task.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for partial degradation, got: %v", err)
	}
}

func TestRefreshArchiveTaskCancelledContext(t *testing.T) {
	store := archive.NewStore()
	fetcher := &MockFetcher{result: &cms.FetchResult{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := NewRefreshArchiveTask(fetcher, store)
	if err := task.Execute(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if fetcher.calls != 0 {
		t.Errorf("Expected no fetch after cancellation, got %d", fetcher.calls)
	}
}

func TestTaskRetryBookkeeping(t *testing.T) {
	task := NewTask(TaskTypeRefreshArchive)

	if task.ID == "" {
		t.Error("Expected non-empty task ID")
	}
	if task.GetDuration() != 0 {
		t.Error("Expected zero duration before Start")
	}

	for i := 0; i < DefaultMaxRetries; i++ {
		if !task.CanRetry() {
			t.Fatalf("Expected CanRetry true at retry %d", i)
		}
		task.IncrementRetryCount()
	}

	if task.CanRetry() {
		t.Error("Expected CanRetry false after max retries")
	}

	other := NewTask(TaskTypeRefreshArchive)
	if other.ID == task.ID {
		t.Error("Expected unique task IDs")
	}
}
