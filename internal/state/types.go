// Package state provides observable view-state controllers for GameShelf.
// Controllers own the current query parameters, talk to the catalog service,
// and emit events when the derived view changes, allowing any frontend to
// subscribe and redraw accordingly.
package state

import (
	"context"
	"time"

	"github.com/gameshelf/gameshelf/internal/events"
	"github.com/gameshelf/gameshelf/internal/models"
)

// DataSource is the catalog access contract consumed by the controllers.
// It is implemented by the api package; tests substitute fakes.
type DataSource interface {
	// Query fetches one page of records. An empty search means no filter.
	Query(ctx context.Context, search string, sortBy string, sortDescending bool, pageIndex, pageSize int) (*models.Page, error)

	// GetByID fetches a single record.
	GetByID(ctx context.Context, id int64) (*models.VideoGame, error)

	// Update submits changed fields for an existing record.
	Update(ctx context.Context, upd models.VideoGameUpdate) error
}

// Status is the lifecycle phase of a list view.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Stable user-facing error messages. The underlying cause is logged but
// never shown; the frontend renders exactly these strings.
const (
	ListErrorMessage = "Failed to load games. Please try again."
	LoadErrorMessage = "Failed to load game. Please try again."
	SaveErrorMessage = "Failed to save game. Please try again."
)

// ViewState is the single value a frontend consumes to render the list.
// AppliedQuery is the query that actually produced Page, which may lag the
// controller's current query while a newer request is in flight.
// Frontends must treat ViewState as a read-only snapshot.
type ViewState struct {
	Status       Status
	Page         models.Page
	ErrorMessage string
	AppliedQuery Query
}

// State event types
const (
	EventListViewChanged  events.EventType = "list_view_changed"
	EventEditStateChanged events.EventType = "edit_state_changed"
)

// ListViewChangedEvent is published every time the list view settles or
// starts loading.
type ListViewChangedEvent struct {
	events.BaseEvent
	View ViewState
}

// NewListViewChangedEvent creates a new ListViewChangedEvent.
func NewListViewChangedEvent(view ViewState) *ListViewChangedEvent {
	return &ListViewChangedEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventListViewChanged,
			Time:      time.Now(),
		},
		View: view,
	}
}

// EditStateChangedEvent is published when the edit flow state changes.
type EditStateChangedEvent struct {
	events.BaseEvent
	State EditState
}

// NewEditStateChangedEvent creates a new EditStateChangedEvent.
func NewEditStateChangedEvent(st EditState) *EditStateChangedEvent {
	return &EditStateChangedEvent{
		BaseEvent: events.BaseEvent{
			EventType: EventEditStateChanged,
			Time:      time.Now(),
		},
		State: st,
	}
}
