package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/chat"
	"github.com/hiddenhistories/archive/app/tasks"
)

func NewHandler(store *archive.Store, chatClient ChatClientInterface,
	scheduler tasks.TaskSchedulerInterface, fetcher tasks.ArchiveFetcher) *Handler {
	return &Handler{
		store:      store,
		searcher:   archive.NewSearcher(),
		filterer:   archive.NewFilterer(),
		chatClient: chatClient,
		scheduler:  scheduler,
		fetcher:    fetcher,
	}
}

func (h *Handler) GetFamilies(c *gin.Context) {
	snap := h.store.Current()

	c.JSON(http.StatusOK, gin.H{
		"families":    snap.Families,
		"total":       len(snap.Families),
		"degradation": snap.Degradation,
		"notice":      snap.Notice,
		"fetched_at":  snap.FetchedAt.Format(time.RFC3339),
	})
}

func (h *Handler) GetStories(c *gin.Context) {
	snap := h.store.Current()

	c.JSON(http.StatusOK, gin.H{
		"stories":     snap.Stories,
		"total":       len(snap.Stories),
		"degradation": snap.Degradation,
		"notice":      snap.Notice,
		"fetched_at":  snap.FetchedAt.Format(time.RFC3339),
	})
}

// GetTimeline returns the flattened timeline, optionally narrowed by the
// category filter and a free-text query. Both narrow at once: an event must
// satisfy the filter and match the query.
func (h *Handler) GetTimeline(c *gin.Context) {
	snap := h.store.Current()

	category := c.Query("category")
	query := c.Query("q")

	events := archive.Flatten(snap.Timeline)

	if strings.TrimSpace(query) != "" {
		results := h.searcher.Run(query, snap.Families, snap.Stories, snap.Timeline)
		events = results.Timeline
	}

	events = h.filterer.Run(events, category)

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total":       len(events),
		"category":    category,
		"degradation": snap.Degradation,
		"notice":      snap.Notice,
	})
}

func (h *Handler) Search(c *gin.Context) {
	snap := h.store.Current()
	query := c.Query("q")

	results := h.searcher.Run(query, snap.Families, snap.Stories, snap.Timeline)

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	})
}

// PostChat proxies one question to the completion API with the archive digest
// attached. Any upstream failure turns into the fixed fallback message so the
// endpoint never surfaces a raw error to visitors.
func (h *Handler) PostChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing question"})
		return
	}

	snap := h.store.Current()

	answer, err := h.chatClient.Ask(c.Request.Context(), req.Question, req.History, snap)
	fallback := false
	if err != nil {
		slog.Error("Chat request failed", "error", err)
		answer = chat.FallbackMessage
		fallback = true
	}

	c.JSON(http.StatusOK, gin.H{
		"message": chat.Message{
			ID:      uuid.NewString(),
			Role:    chat.RoleAssistant,
			Content: answer,
		},
		"fallback": fallback,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	snap := h.store.Current()

	health := map[string]interface{}{
		"timestamp":   time.Now().In(time.Local).Format(time.RFC3339),
		"families":    len(snap.Families),
		"stories":     len(snap.Stories),
		"degradation": snap.Degradation,
		"epoch":       snap.Epoch,
		"chat":        h.chatClient.Configured(),
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) APIRefreshArchive(c *gin.Context) {
	task := tasks.NewRefreshArchiveTask(h.fetcher, h.store)

	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Error enqueueing refresh task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue refresh task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Archive refresh enqueued",
		"task": gin.H{
			"id":   task.ID,
			"type": task.Type,
		},
	})
}
