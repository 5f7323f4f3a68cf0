// Package cli provides list rendering helpers shared by list and browse.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gameshelf/gameshelf/internal/models"
	"github.com/gameshelf/gameshelf/internal/state"
)

// renderView writes the settled list view: a header, one row per game and a
// pagination footer. Error views render their message instead.
func renderView(w io.Writer, view state.ViewState) {
	if view.Status == state.StatusError {
		fmt.Fprintf(w, "❌ %s\n", view.ErrorMessage)
		return
	}

	page := view.Page
	if page.IsEmpty() {
		fmt.Fprintln(w, "No games found.")
		fmt.Fprint(w, renderFooter(view))
		return
	}

	fmt.Fprintf(w, "%-6s %-32s %-22s %-12s %-7s %-9s %s\n",
		"ID", "TITLE", "PUBLISHER", "RELEASED", "RATING", "PRICE", "PLATFORM")
	for _, g := range page.Items {
		fmt.Fprintf(w, "%-6d %-32s %-22s %-12s %-7s %-9s %s\n",
			g.ID,
			truncate(g.Title, 32),
			truncate(g.Publisher, 22),
			formatDate(g.ReleaseDate),
			formatFloat(g.Rating, "%.1f"),
			formatFloat(g.Price, "$%.2f"),
			g.Platform)
	}
	fmt.Fprint(w, renderFooter(view))
}

// renderFooter formats the pagination line, e.g. "Page 3/10 (95 games)  «
// 1 2 [3] 4 5 »". The window is centered on the current page.
func renderFooter(view state.ViewState) string {
	page := view.Page
	if page.TotalPages == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nPage %d/%d (%d games)  ", page.PageIndex, page.TotalPages, page.TotalCount)

	if page.HasPreviousPage() {
		b.WriteString("« ")
	}
	for _, p := range state.PageWindow(page.PageIndex, page.TotalPages, state.DefaultPageWindow) {
		if p == page.PageIndex {
			fmt.Fprintf(&b, "[%d] ", p)
		} else {
			fmt.Fprintf(&b, "%d ", p)
		}
	}
	if page.HasNextPage() {
		b.WriteString("»")
	}
	b.WriteString("\n")
	return b.String()
}

// renderGameDetail writes the full record, one field per line.
func renderGameDetail(w io.Writer, g *models.VideoGame) {
	fmt.Fprintf(w, "Game Details:\n")
	fmt.Fprintf(w, "  ID: %d\n", g.ID)
	fmt.Fprintf(w, "  Title: %s\n", g.Title)
	fmt.Fprintf(w, "  Publisher: %s\n", g.Publisher)
	fmt.Fprintf(w, "  Released: %s\n", formatDate(g.ReleaseDate))
	fmt.Fprintf(w, "  Genre: %s\n", g.Genre)
	fmt.Fprintf(w, "  Platform: %s\n", g.Platform)
	fmt.Fprintf(w, "  Rating: %s\n", formatFloat(g.Rating, "%.1f"))
	fmt.Fprintf(w, "  Price: %s\n", formatFloat(g.Price, "$%.2f"))
	fmt.Fprintf(w, "  Active: %t\n", g.IsActive)
	if g.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", g.Description)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatFloat(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
