package api

import (
	"context"

	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/chat"
	"github.com/hiddenhistories/archive/app/tasks"
)

// ChatClientInterface is the slice of the completion client the handlers need.
type ChatClientInterface interface {
	Configured() bool
	Ask(ctx context.Context, question string, history []chat.Message, snap *archive.Snapshot) (string, error)
}

var _ ChatClientInterface = (*chat.Client)(nil)

type Handler struct {
	store      *archive.Store
	searcher   *archive.Searcher
	filterer   *archive.Filterer
	chatClient ChatClientInterface
	scheduler  tasks.TaskSchedulerInterface
	fetcher    tasks.ArchiveFetcher
}

type chatRequest struct {
	Question string         `json:"question" binding:"required"`
	History  []chat.Message `json:"history"`
}
