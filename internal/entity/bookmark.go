// Package entity defines the entities and errors used in the application.
// It includes the Bookmark struct, which represents a stored URL owned by a single
// user together with its public short code, and the error taxonomy shared by
// the use case, repository and delivery layers.
package entity

import "time"

// Bookmark represents a URL saved by a user.
type Bookmark struct {
	ID        int64     // ID is the unique identifier of the bookmark in the database.
	URL       string    // URL is the absolute URL the short code redirects to.
	ShortCode string    // ShortCode is the public redirect key, generated once at creation.
	Body      string    // Body is an optional free-text annotation.
	Visits    int64     // Visits is the number of successful redirects through the short code.
	UserID    string    // UserID is the identity of the owner as issued by the identity provider.
	CreatedAt time.Time // CreatedAt is the timestamp when the bookmark was created.
	UpdatedAt time.Time // UpdatedAt is the timestamp of the last committed mutation.
}

// BookmarkPage is a single page of an owner's bookmarks.
type BookmarkPage struct {
	Items []*Bookmark
	Meta  PageMeta
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	Page       int
	Pages      int
	TotalCount int64
	PrevPage   *int
	NextPage   *int
	HasPrev    bool
	HasNext    bool
}
