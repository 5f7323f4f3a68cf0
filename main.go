// GameShelf - CLI browser and editor for a video game catalog service.
//
// All functionality lives behind cobra subcommands; run with no arguments
// to see help. Configuration is read from ~/.config/gameshelf/config with
// environment overrides (GAMESHELF_API_URL, GAMESHELF_API_KEY).
package main

import (
	"os"

	"github.com/gameshelf/gameshelf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
