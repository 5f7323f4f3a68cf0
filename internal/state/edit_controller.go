package state

import (
	"context"
	"sync"

	"github.com/gameshelf/gameshelf/internal/events"
	"github.com/gameshelf/gameshelf/internal/logging"
	"github.com/gameshelf/gameshelf/internal/models"
	"github.com/gameshelf/gameshelf/internal/validation"
)

// EditStatus is the lifecycle phase of an edit flow.
type EditStatus string

const (
	EditIdle    EditStatus = "idle"
	EditLoading EditStatus = "loading"
	EditReady   EditStatus = "ready"
	EditSaved   EditStatus = "saved"
	EditError   EditStatus = "error"
)

// EditState is the single value a frontend consumes to render the edit
// form. Game is the record as loaded; Draft is the submitted or prefilled
// working copy. FieldErrors is non-nil only after a rejected submit.
type EditState struct {
	Status       EditStatus
	Game         *models.VideoGame
	Draft        models.VideoGameUpdate
	FieldErrors  validation.FieldErrors
	ErrorMessage string
}

// EditController drives the load-edit-save flow for a single record.
// Outcomes are surfaced through the published EditState, never as return
// values; frontends subscribe or poll State. Thread-safe.
type EditController struct {
	ds       DataSource
	eventBus *events.EventBus
	logger   *logging.Logger

	mu    sync.Mutex
	state EditState
}

// NewEditController creates an idle edit controller.
func NewEditController(ds DataSource, eventBus *events.EventBus) *EditController {
	return &EditController{
		ds:       ds,
		eventBus: eventBus,
		logger:   logging.NewLogger("edit-controller"),
		state:    EditState{Status: EditIdle},
	}
}

// State returns the current edit state snapshot.
func (c *EditController) State() EditState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the record to edit. On success the draft is prefilled from
// the loaded record; on failure the state carries a stable error message
// and an empty draft.
func (c *EditController) Load(ctx context.Context, id int64) {
	c.setState(EditState{Status: EditLoading})

	game, err := c.ds.GetByID(ctx, id)
	if err != nil {
		c.logger.Error().Err(err).Int64("id", id).Msg("loading game failed")
		c.setState(EditState{
			Status:       EditError,
			ErrorMessage: LoadErrorMessage,
		})
		return
	}

	c.setState(EditState{
		Status: EditReady,
		Game:   game,
		Draft:  models.UpdateFrom(*game),
	})
}

// NewDraft returns a copy of the current draft for the caller to modify
// before submitting.
func (c *EditController) NewDraft() models.VideoGameUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Draft
}

// Submit validates the draft and, if clean, sends the update. Validation
// failures never reach the network: the state keeps the rejected draft and
// its per-field errors so the form can be corrected and resubmitted. A
// transport failure likewise preserves the draft.
func (c *EditController) Submit(ctx context.Context, draft models.VideoGameUpdate) {
	c.mu.Lock()
	game := c.state.Game
	c.mu.Unlock()

	if fieldErrs := validation.ValidateUpdate(draft); fieldErrs != nil {
		c.logger.Debug().Int64("id", draft.ID).Int("violations", len(fieldErrs)).
			Msg("rejecting invalid draft")
		c.setState(EditState{
			Status:      EditReady,
			Game:        game,
			Draft:       draft,
			FieldErrors: fieldErrs,
		})
		return
	}

	c.setState(EditState{
		Status: EditLoading,
		Game:   game,
		Draft:  draft,
	})

	if err := c.ds.Update(ctx, draft); err != nil {
		c.logger.Error().Err(err).Int64("id", draft.ID).Msg("saving game failed")
		c.setState(EditState{
			Status:       EditError,
			Game:         game,
			Draft:        draft,
			ErrorMessage: SaveErrorMessage,
		})
		return
	}

	c.setState(EditState{
		Status: EditSaved,
		Game:   game,
		Draft:  draft,
	})
}

func (c *EditController) setState(st EditState) {
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()

	if c.eventBus != nil {
		c.eventBus.Publish(NewEditStateChangedEvent(st))
	}
}
