package state

// DefaultPageWindow is the number of page links shown around the current page.
const DefaultPageWindow = 5

// PageWindow returns the bounded, ascending run of page numbers to display
// as pagination controls, centered on currentPage when possible. The result
// has length min(maxVisible, totalPages) and is empty when totalPages is 0.
// It is a pure function of its arguments so frontends can recompute it
// without touching controller internals.
func PageWindow(currentPage, totalPages, maxVisible int) []int {
	if totalPages <= 0 || maxVisible <= 0 {
		return nil
	}

	start := currentPage - maxVisible/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > totalPages {
		// Hit the upper bound; pull the window back down so it keeps
		// maxVisible entries whenever totalPages allows.
		end = totalPages
		start = end - maxVisible + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
