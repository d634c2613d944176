//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"time"
)

// BookBookmark is a saved book with a denormalized snapshot of its listing.
type BookBookmark struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	BookID       string          `json:"bookId"`
	BookData     json.RawMessage `json:"bookData"`
	BookmarkedAt time.Time       `json:"bookmarkedAt"`
	LastReadPage *int            `json:"lastReadPage,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
}

// NewBookBookmark is the insert shape for a BookBookmark.
type NewBookBookmark struct {
	UserID       string          `json:"userId" validate:"required"`
	BookID       string          `json:"bookId" validate:"required"`
	BookData     json.RawMessage `json:"bookData"`
	LastReadPage *int            `json:"lastReadPage,omitempty" validate:"omitempty,min=0"`
	Notes        *string         `json:"notes,omitempty"`
}

// Build materializes the insert shape with the given id and bookmark time.
func (n NewBookBookmark) Build(id string, now time.Time) *BookBookmark {
	data := n.BookData
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return &BookBookmark{
		ID:           id,
		UserID:       n.UserID,
		BookID:       n.BookID,
		BookData:     data,
		BookmarkedAt: now,
		LastReadPage: n.LastReadPage,
		Notes:        n.Notes,
	}
}

// BookBookmarkPatch is a partial update; nil fields are preserved.
type BookBookmarkPatch struct {
	BookData     *json.RawMessage `json:"bookData,omitempty"`
	LastReadPage *int             `json:"lastReadPage,omitempty" validate:"omitempty,min=0"`
	Notes        *string          `json:"notes,omitempty"`
}

// Apply merges the patch into b.
func (pt *BookBookmarkPatch) Apply(b *BookBookmark, _ time.Time) {
	set(&b.BookData, pt.BookData)
	if pt.LastReadPage != nil {
		page := *pt.LastReadPage
		b.LastReadPage = &page
	}
	if pt.Notes != nil {
		notes := *pt.Notes
		b.Notes = &notes
	}
}
