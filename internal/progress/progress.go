// Package progress provides spinner feedback for in-flight catalog
// requests in CLI mode. Output goes to stderr so piped stdout stays clean,
// and everything degrades to a no-op when stderr is not a terminal.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Spinner shows an indeterminate spinner while a request is in flight.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner creates a spinner with the given description. On a
// non-terminal stderr the spinner stays silent.
func NewSpinner(description string) *Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return &Spinner{}
	}
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(100),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Spinner{bar: bar}
}

// Describe updates the spinner text.
func (s *Spinner) Describe(desc string) {
	if s.bar != nil {
		s.bar.Describe(desc)
	}
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if s.bar != nil {
		_ = s.bar.Finish()
		_ = s.bar.Clear()
		fmt.Fprint(os.Stderr, "\r")
	}
}
