package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/cms"
)

type ArchiveFetcher interface {
	FetchAllShared(ctx context.Context) *cms.FetchResult
}

type RefreshArchiveTask struct {
	Task
	fetcher ArchiveFetcher
	store   *archive.Store
}

func NewRefreshArchiveTask(fetcher ArchiveFetcher, store *archive.Store) *RefreshArchiveTask {
	return &RefreshArchiveTask{
		Task:    NewTask(TaskTypeRefreshArchive),
		fetcher: fetcher,
		store:   store,
	}
}

func (t *RefreshArchiveTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result := t.fetcher.FetchAllShared(ctx)

	snap := archive.NewSnapshot(result.Families, result.Stories, result.Degradation, result.Notice)
	t.store.Replace(snap)

	slog.Info("Task completed",
		"type", "RefreshArchive",
		"duration", t.GetDuration(),
		"families", len(snap.Families),
		"stories", len(snap.Stories),
		"degradation", string(snap.Degradation))

	if snap.Degradation == archive.DegradationTotal {
		return fmt.Errorf("archive refresh degraded to fallback content")
	}

	return nil
}
