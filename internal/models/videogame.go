// Package models defines data structures for the GameShelf catalog client.
package models

import "time"

// VideoGame represents a single catalog record as returned by the service.
type VideoGame struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Publisher   string     `json:"publisher,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	Genre       string     `json:"genre,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Description string     `json:"description,omitempty"`
	Platform    string     `json:"platform,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	IsActive    bool       `json:"isActive"`
}

// VideoGameUpdate carries the mutable fields for an update request.
// Title is required; all other fields are optional and omitted when unset.
// IsActive is server-managed and intentionally absent.
type VideoGameUpdate struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Publisher   string     `json:"publisher,omitempty"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	Genre       string     `json:"genre,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Description string     `json:"description,omitempty"`
	Platform    string     `json:"platform,omitempty"`
	Price       *float64   `json:"price,omitempty"`
}

// UpdateFrom builds an update draft pre-populated from an existing record.
func UpdateFrom(g VideoGame) VideoGameUpdate {
	return VideoGameUpdate{
		ID:          g.ID,
		Title:       g.Title,
		Publisher:   g.Publisher,
		ReleaseDate: g.ReleaseDate,
		Genre:       g.Genre,
		Rating:      g.Rating,
		Description: g.Description,
		Platform:    g.Platform,
		Price:       g.Price,
	}
}

// Page is one server-returned batch of records plus paging metadata.
// The server also sends hasPreviousPage/hasNextPage flags; we derive them
// from PageIndex/TotalPages instead so they can never disagree.
type Page struct {
	Items      []VideoGame `json:"items"`
	PageIndex  int         `json:"pageIndex"`
	TotalPages int         `json:"totalPages"`
	TotalCount int         `json:"totalCount"`
}

// HasPreviousPage reports whether a page precedes this one.
func (p *Page) HasPreviousPage() bool { return p.PageIndex > 1 }

// HasNextPage reports whether a page follows this one.
func (p *Page) HasNextPage() bool { return p.PageIndex < p.TotalPages }

// IsEmpty reports whether the page carries no records.
func (p *Page) IsEmpty() bool { return len(p.Items) == 0 }
