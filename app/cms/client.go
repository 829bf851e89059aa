package cms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/hiddenhistories/archive/app/archive"
	"github.com/hiddenhistories/archive/app/cfg"
	"golang.org/x/sync/singleflight"
)

const (
	familiesPath = "/api/families?populate=*"
	storiesPath  = "/api/stories?populate=*"

	// User-facing notices for degraded fetches.
	NoticePartial = "Some archive content may be temporarily unavailable."
	NoticeTotal   = "Unable to connect to archive database. Please check your connection or try again later."
)

// Client fetches the family and story collections from the CMS. It never
// returns an error past its boundary: every network, timeout, and parse
// failure is folded into the FetchResult's degradation level.
type Client struct {
	httpClient   *http.Client
	decoder      *Decoder
	baseURL      string
	userAgent    string
	timeout      time.Duration
	retries      int
	fallbackMode string
	backoffUnit  time.Duration
	group        singleflight.Group
}

func NewClient(httpClient *http.Client) *Client {
	c := cfg.Get()

	return &Client{
		httpClient:   httpClient,
		decoder:      NewDecoder(c.CMSBaseUrl),
		baseURL:      c.CMSBaseUrl,
		userAgent:    c.UserAgent,
		timeout:      time.Duration(c.FetchTimeout) * time.Second,
		retries:      c.FetchRetries,
		fallbackMode: c.FallbackMode,
		backoffUnit:  time.Second,
	}
}

// FetchAll issues the two collection fetches concurrently, each with its own
// timeout and retry budget. Failure of one collection does not block or fail
// the other.
func (c *Client) FetchAll(ctx context.Context) *FetchResult {
	var (
		wg       sync.WaitGroup
		families []*archive.FamilyRecord
		stories  []*archive.StoryRecord
		famErr   error
		stoErr   error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		body, err := c.fetchCollection(ctx, familiesPath)
		if err != nil {
			famErr = err
			return
		}
		families, famErr = c.decoder.DecodeFamilies(body)
	}()

	go func() {
		defer wg.Done()
		body, err := c.fetchCollection(ctx, storiesPath)
		if err != nil {
			stoErr = err
			return
		}
		stories, stoErr = c.decoder.DecodeStories(body)
	}()

	wg.Wait()

	result := &FetchResult{
		Families:    families,
		Stories:     stories,
		Degradation: archive.DegradationNone,
	}

	switch {
	case famErr != nil && stoErr != nil:
		slog.Error("Both CMS collections unavailable", "families_error", famErr, "stories_error", stoErr)
		result.Degradation = archive.DegradationTotal
		result.Notice = NoticeTotal
		result.Families = c.fallbackFamilies()
		result.Stories = c.fallbackStories()

	case famErr != nil:
		slog.Warn("Families collection unavailable, continuing with stories", "error", famErr)
		result.Degradation = archive.DegradationPartial
		result.Notice = NoticePartial
		result.Families = c.fallbackFamilies()

	case stoErr != nil:
		slog.Warn("Stories collection unavailable, continuing with families", "error", stoErr)
		result.Degradation = archive.DegradationPartial
		result.Notice = NoticePartial
		result.Stories = c.fallbackStories()
	}

	if result.Families == nil {
		result.Families = []*archive.FamilyRecord{}
	}
	if result.Stories == nil {
		result.Stories = []*archive.StoryRecord{}
	}

	return result
}

// FetchAllShared collapses concurrent refreshes into a single CMS round trip;
// every caller gets the same result.
func (c *Client) FetchAllShared(ctx context.Context) *FetchResult {
	v, _, _ := c.group.Do("fetch-all", func() (interface{}, error) {
		return c.FetchAll(ctx), nil
	})
	return v.(*FetchResult)
}

func (c *Client) fetchCollection(ctx context.Context, path string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			// Linear backoff: 1s, then 2s.
			delay := time.Duration(attempt) * c.backoffUnit
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.fetchOnce(ctx, path)
		if err == nil {
			return body, nil
		}

		lastErr = err
		slog.Warn("CMS fetch attempt failed", "path", path, "attempt", attempt+1, "error", err)
	}

	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, path string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Cache-defeating query parameter on every call.
	url := fmt.Sprintf("%s%s&_t=%d", c.baseURL, path, time.Now().UnixNano())

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Expires", "0")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func (c *Client) fallbackFamilies() []*archive.FamilyRecord {
	if c.fallbackMode != "seed" {
		return []*archive.FamilyRecord{}
	}

	families, _, err := archive.LoadSeed()
	if err != nil {
		slog.Error("Failed to load seed dataset", "error", err)
		return []*archive.FamilyRecord{}
	}
	return families
}

func (c *Client) fallbackStories() []*archive.StoryRecord {
	if c.fallbackMode != "seed" {
		return []*archive.StoryRecord{}
	}

	_, stories, err := archive.LoadSeed()
	if err != nil {
		slog.Error("Failed to load seed dataset", "error", err)
		return []*archive.StoryRecord{}
	}
	return stories
}
