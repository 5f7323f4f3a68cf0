// Package cli provides the edit command.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gameshelf/gameshelf/internal/state"
)

// newEditCmd creates the 'edit' command.
func newEditCmd() *cobra.Command {
	var (
		title       string
		publisher   string
		releaseDate string
		genre       string
		platform    string
		description string
		rating      float64
		price       float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a game's fields",
		Long: `Load a game, change fields and save it back.

With field flags the change is applied directly:
  gameshelf edit 42 --title "Celeste" --price 19.99

Without flags each field is prompted interactively; press Enter to keep
the current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			ctx := GetContext()
			ctrl := state.NewEditController(client, nil)

			ctrl.Load(ctx, id)
			if st := ctrl.State(); st.Status == state.EditError {
				return fmt.Errorf("%s", st.ErrorMessage)
			}

			draft := ctrl.NewDraft()

			flagged := false
			for _, name := range []string{"title", "publisher", "release-date", "genre", "platform", "description", "rating", "price"} {
				if cmd.Flags().Changed(name) {
					flagged = true
					break
				}
			}

			if flagged {
				if cmd.Flags().Changed("title") {
					draft.Title = title
				}
				if cmd.Flags().Changed("publisher") {
					draft.Publisher = publisher
				}
				if cmd.Flags().Changed("release-date") {
					t, err := time.Parse("2006-01-02", releaseDate)
					if err != nil {
						return fmt.Errorf("invalid release date %q, expected YYYY-MM-DD", releaseDate)
					}
					draft.ReleaseDate = &t
				}
				if cmd.Flags().Changed("genre") {
					draft.Genre = genre
				}
				if cmd.Flags().Changed("platform") {
					draft.Platform = platform
				}
				if cmd.Flags().Changed("description") {
					draft.Description = description
				}
				if cmd.Flags().Changed("rating") {
					r := rating
					draft.Rating = &r
				}
				if cmd.Flags().Changed("price") {
					p := price
					draft.Price = &p
				}
			} else {
				fmt.Printf("Editing game %d (press Enter to keep the current value)\n\n", id)
				reader := bufio.NewReader(os.Stdin)
				draft.Title = promptString(reader, "Title", draft.Title)
				draft.Publisher = promptString(reader, "Publisher", draft.Publisher)
				draft.ReleaseDate = promptDate(reader, "Release date", draft.ReleaseDate)
				draft.Genre = promptString(reader, "Genre", draft.Genre)
				draft.Platform = promptString(reader, "Platform", draft.Platform)
				draft.Description = promptString(reader, "Description", draft.Description)
				draft.Rating = promptFloat(reader, "Rating", draft.Rating)
				draft.Price = promptFloat(reader, "Price", draft.Price)
			}

			ctrl.Submit(ctx, draft)

			st := ctrl.State()
			switch st.Status {
			case state.EditSaved:
				fmt.Printf("✓ Saved game %d\n", id)
				return nil
			case state.EditError:
				return fmt.Errorf("%s", st.ErrorMessage)
			default:
				fmt.Println("❌ The game was not saved:")
				printFieldErrors(st)
				return fmt.Errorf("validation failed")
			}
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&publisher, "publisher", "", "New publisher")
	cmd.Flags().StringVar(&releaseDate, "release-date", "", "New release date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&genre, "genre", "", "New genre")
	cmd.Flags().StringVar(&platform, "platform", "", "New platform")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().Float64Var(&rating, "rating", 0, "New rating (0-10)")
	cmd.Flags().Float64Var(&price, "price", 0, "New price")

	return cmd
}

func printFieldErrors(st state.EditState) {
	fields := make([]string, 0, len(st.FieldErrors))
	for field := range st.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("  %s: %s\n", field, st.FieldErrors[field])
	}
}
