package state

import (
	"context"
	"strings"
	"sync"

	"github.com/gameshelf/gameshelf/internal/events"
	"github.com/gameshelf/gameshelf/internal/logging"
	"github.com/gameshelf/gameshelf/internal/models"
)

// ListController owns the current list query and guarantees that the
// published ViewState stream reflects only the most recently requested
// query's outcome, never an older one that resolved later.
//
// Every operation that changes a parameter captures a snapshot of the query
// and a fresh sequence number, publishes a Loading view synchronously, then
// fetches in the background. When a response arrives it is discarded if a
// newer sequence number has been issued since ("last request wins").
// Thread-safe for concurrent access.
type ListController struct {
	ds       DataSource
	eventBus *events.EventBus
	logger   *logging.Logger

	mu    sync.Mutex
	query Query
	seq   uint64
	view  ViewState
}

// NewListController creates a controller starting from the given query.
// The initial view is a synthetic Loading state with an empty page; call
// Refresh to issue the first request.
func NewListController(ds DataSource, eventBus *events.EventBus, initial Query) *ListController {
	q := initial.normalized()
	return &ListController{
		ds:       ds,
		eventBus: eventBus,
		logger:   logging.NewLogger("list-controller"),
		query:    q,
		view: ViewState{
			Status:       StatusLoading,
			AppliedQuery: q,
		},
	}
}

// CurrentView returns the current view snapshot. Callers must not mutate
// the page items.
func (c *ListController) CurrentView() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// CurrentQuery returns the controller's current (possibly not yet applied)
// query parameters.
func (c *ListController) CurrentQuery() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetSearchTerm sets the free-text filter and resets to the first page.
func (c *ListController) SetSearchTerm(ctx context.Context, term string) {
	c.mu.Lock()
	c.query.SearchTerm = strings.TrimSpace(term)
	c.query.PageIndex = 1
	seq, q, view := c.beginRequestLocked()
	c.mu.Unlock()

	c.publish(view)
	go c.fetch(ctx, seq, q)
}

// SetSort changes the sort field and resets to the first page. The sort
// direction is unchanged. An unknown field is ignored.
func (c *ListController) SetSort(ctx context.Context, field string) {
	if !models.IsSortField(field) {
		c.logger.Warn().Str("field", field).Msg("ignoring unknown sort field")
		return
	}

	c.mu.Lock()
	c.query.SortBy = field
	c.query.PageIndex = 1
	seq, q, view := c.beginRequestLocked()
	c.mu.Unlock()

	c.publish(view)
	go c.fetch(ctx, seq, q)
}

// ToggleSortDirection flips the sort direction. The page position is kept:
// direction-only changes deliberately do not reset to page 1.
func (c *ListController) ToggleSortDirection(ctx context.Context) {
	c.mu.Lock()
	c.query.SortDescending = !c.query.SortDescending
	seq, q, view := c.beginRequestLocked()
	c.mu.Unlock()

	c.publish(view)
	go c.fetch(ctx, seq, q)
}

// SetPageSize changes the page size and resets to the first page. A size
// outside the allowed set falls back to the default.
func (c *ListController) SetPageSize(ctx context.Context, size int) {
	if !models.IsPageSize(size) {
		c.logger.Warn().Int("size", size).Int("fallback", models.DefaultPageSize).
			Msg("page size not in allowed set")
		size = models.DefaultPageSize
	}

	c.mu.Lock()
	c.query.PageSize = size
	c.query.PageIndex = 1
	seq, q, view := c.beginRequestLocked()
	c.mu.Unlock()

	c.publish(view)
	go c.fetch(ctx, seq, q)
}

// GoToPage requests the given page as-is; only the lower bound is enforced.
// An out-of-range page is sent to the server and its answer (an empty tail
// or a clamped page) is accepted as authoritative.
func (c *ListController) GoToPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.query.PageIndex = page
	seq, q, view := c.beginRequestLocked()
	c.mu.Unlock()

	c.publish(view)
	go c.fetch(ctx, seq, q)
}

// Refresh re-issues the query for the current parameters without changing
// any of them, e.g. after an external edit of the underlying records.
func (c *ListController) Refresh(ctx context.Context) {
	c.mu.Lock()
	seq, q, view := c.beginRequestLocked()
	c.mu.Unlock()

	c.publish(view)
	go c.fetch(ctx, seq, q)
}

// beginRequestLocked issues a new sequence number, snapshots the query and
// installs the Loading view. Must hold the lock.
func (c *ListController) beginRequestLocked() (uint64, Query, ViewState) {
	c.seq++
	q := c.query
	view := ViewState{
		Status:       StatusLoading,
		AppliedQuery: q,
	}
	c.view = view
	return c.seq, q, view
}

// fetch performs the query and reconciles its outcome.
func (c *ListController) fetch(ctx context.Context, seq uint64, q Query) {
	page, err := c.ds.Query(ctx, q.SearchTerm, q.SortBy, q.SortDescending, q.PageIndex, q.PageSize)
	c.complete(seq, q, page, err)
}

// complete publishes the outcome of request seq, unless a newer request has
// been issued since, in which case the response is dropped silently.
func (c *ListController) complete(seq uint64, q Query, page *models.Page, err error) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.logger.Debug().
			Uint64("seq", seq).
			Str("search", q.SearchTerm).
			Int("page", q.PageIndex).
			Msg("discarding stale response")
		return
	}

	var view ViewState
	if err != nil {
		c.logger.Error().Err(err).
			Str("search", q.SearchTerm).
			Str("sort", q.SortBy).
			Int("page", q.PageIndex).
			Msg("catalog query failed")
		view = ViewState{
			Status:       StatusError,
			ErrorMessage: ListErrorMessage,
			AppliedQuery: q,
		}
	} else {
		view = ViewState{
			Status:       StatusSuccess,
			Page:         *page,
			AppliedQuery: q,
		}
		// The server's echoed page index is authoritative; adopt it so
		// subsequent navigation starts from what was actually served.
		if page.PageIndex >= 1 {
			c.query.PageIndex = page.PageIndex
		}
	}

	c.view = view
	c.mu.Unlock()

	c.publish(view)
}

func (c *ListController) publish(view ViewState) {
	if c.eventBus != nil {
		c.eventBus.Publish(NewListViewChangedEvent(view))
	}
}
