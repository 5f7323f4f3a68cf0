// Package cli provides the interactive browse session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gameshelf/gameshelf/internal/constants"
	"github.com/gameshelf/gameshelf/internal/events"
	"github.com/gameshelf/gameshelf/internal/models"
	"github.com/gameshelf/gameshelf/internal/state"
)

const browseHelp = `Commands:
  n              next page
  p              previous page
  page N         jump to page N
  search TERM    filter by TERM (empty clears the filter)
  sort FIELD     sort by title, publisher, releaseDate, rating or price
  dir            toggle sort direction
  size N         set page size (5, 10, 20 or 50)
  refresh        reload the current page
  help           show this help
  q              quit`

// parseBrowseInput splits an input line into a command word and its
// argument. The command is lowercased; the argument keeps its case.
func parseBrowseInput(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

// newBrowseCmd creates the 'browse' command.
func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Start an interactive paging session. Each command re-queries the
catalog and redraws the page; type 'help' for the command list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getAPIClient()
			if err != nil {
				return err
			}

			bus := events.NewEventBus(constants.EventBusDefaultBuffer)
			defer bus.Close()
			ch := bus.Subscribe(state.EventListViewChanged)

			ctx := GetContext()
			ctrl := state.NewListController(client, bus, queryFromConfig(client.GetConfig()))

			fmt.Println(browseHelp)
			fmt.Println()

			ctrl.Refresh(ctx)
			if err := settleAndRender(ctx, ch); err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}

				word, arg := parseBrowseInput(scanner.Text())
				switch word {
				case "":
					continue
				case "q", "quit", "exit":
					return nil
				case "help":
					fmt.Println(browseHelp)
					continue
				case "n":
					ctrl.GoToPage(ctx, ctrl.CurrentQuery().PageIndex+1)
				case "p":
					ctrl.GoToPage(ctx, ctrl.CurrentQuery().PageIndex-1)
				case "page":
					n, err := strconv.Atoi(arg)
					if err != nil {
						fmt.Println("Usage: page N")
						continue
					}
					ctrl.GoToPage(ctx, n)
				case "search":
					ctrl.SetSearchTerm(ctx, arg)
				case "sort":
					if !models.IsSortField(arg) {
						fmt.Printf("Unknown sort field %q. Fields: %s\n",
							arg, strings.Join(models.SortFields, ", "))
						continue
					}
					ctrl.SetSort(ctx, arg)
				case "dir":
					ctrl.ToggleSortDirection(ctx)
				case "size":
					n, err := strconv.Atoi(arg)
					if err != nil {
						fmt.Println("Usage: size N")
						continue
					}
					ctrl.SetPageSize(ctx, n)
				case "refresh":
					ctrl.Refresh(ctx)
				default:
					fmt.Printf("Unknown command %q. Type 'help' for the command list.\n", word)
					continue
				}

				if err := settleAndRender(ctx, ch); err != nil {
					return err
				}
			}
		},
	}

	return cmd
}

// settleAndRender waits for the in-flight request to settle and redraws.
// Error views are rendered, not returned; the session stays usable.
func settleAndRender(ctx context.Context, ch <-chan events.Event) error {
	view, err := waitForSettledView(ctx, ch)
	if err != nil {
		return err
	}
	fmt.Println()
	renderView(os.Stdout, view)
	fmt.Println()
	return nil
}
