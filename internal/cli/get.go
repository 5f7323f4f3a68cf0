// Package cli provides the single-record lookup command.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gameshelf/gameshelf/internal/api"
)

// newGetCmd creates the 'get' command.
func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			game, err := client.GetByID(GetContext(), id)
			if err != nil {
				if api.IsNotFoundError(err) {
					return fmt.Errorf("game %d not found", id)
				}
				return fmt.Errorf("failed to fetch game %d: %w", id, err)
			}

			renderGameDetail(os.Stdout, game)
			return nil
		},
	}

	return cmd
}
