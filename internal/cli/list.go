// Package cli provides the one-shot listing command.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gameshelf/gameshelf/internal/config"
	"github.com/gameshelf/gameshelf/internal/constants"
	"github.com/gameshelf/gameshelf/internal/events"
	"github.com/gameshelf/gameshelf/internal/progress"
	"github.com/gameshelf/gameshelf/internal/state"
)

// queryFromConfig builds the starting query from the browse defaults in the
// configuration file.
func queryFromConfig(cfg *config.Config) state.Query {
	q := state.DefaultQuery()
	q.SortBy = cfg.Browse.SortBy
	q.SortDescending = cfg.Browse.SortDescending
	q.PageSize = cfg.Browse.PageSize
	return q
}

// waitForSettledView drains the event channel until the list view leaves
// the loading state or the context is cancelled.
func waitForSettledView(ctx context.Context, ch <-chan events.Event) (state.ViewState, error) {
	for {
		select {
		case ev := <-ch:
			lv, ok := ev.(*state.ListViewChangedEvent)
			if !ok || lv.View.Status == state.StatusLoading {
				continue
			}
			return lv.View, nil
		case <-ctx.Done():
			return state.ViewState{}, ctx.Err()
		case <-time.After(constants.HTTPRequestTimeout + 5*time.Second):
			return state.ViewState{}, fmt.Errorf("timed out waiting for the catalog")
		}
	}
}

// newListCmd creates the 'list' command.
func newListCmd() *cobra.Command {
	var (
		search   string
		sortBy   string
		desc     bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games from the catalog",
		Long: `Fetch and print one page of the catalog.

Examples:
  gameshelf list
  gameshelf list --search zelda
  gameshelf list --sort price --desc --page 2 --page-size 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAPIClient()
			if err != nil {
				return err
			}

			q := queryFromConfig(client.GetConfig())
			q.SearchTerm = search
			if cmd.Flags().Changed("sort") {
				q.SortBy = sortBy
			}
			if cmd.Flags().Changed("desc") {
				q.SortDescending = desc
			}
			if cmd.Flags().Changed("page") {
				q.PageIndex = page
			}
			if cmd.Flags().Changed("page-size") {
				q.PageSize = pageSize
			}

			bus := events.NewEventBus(constants.EventBusDefaultBuffer)
			defer bus.Close()
			ch := bus.Subscribe(state.EventListViewChanged)

			ctrl := state.NewListController(client, bus, q)

			spinner := progress.NewSpinner("Fetching games...")
			ctrl.Refresh(GetContext())
			view, err := waitForSettledView(GetContext(), ch)
			spinner.Stop()
			if err != nil {
				return err
			}

			if view.Status == state.StatusError {
				return fmt.Errorf("%s", view.ErrorMessage)
			}
			renderView(os.Stdout, view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by free-text search term")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort field (title, publisher, releaseDate, rating, price)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort in descending order")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Games per page (5, 10, 20 or 50)")

	return cmd
}
