// Package repository declares the persistence contracts the use case layer
// depends on. Implementations live under internal/adapter/repository.
package repository

import (
	"context"

	"github.com/vadimbarashkov/bookmarker/internal/entity"
	"github.com/vadimbarashkov/bookmarker/internal/pagination"
)

// BookmarkRepository defines the persistence access patterns for bookmarks.
// Lookups that find nothing return entity.ErrBookmarkNotFound.
type BookmarkRepository interface {
	// FindByURL returns the bookmark holding url, regardless of owner.
	FindByURL(ctx context.Context, url string) (*entity.Bookmark, error)

	// FindByShortCode returns the bookmark with the given short code, regardless of owner.
	FindByShortCode(ctx context.Context, shortCode string) (*entity.Bookmark, error)

	// FindByOwnerAndID returns the bookmark only if it exists and belongs to userID.
	FindByOwnerAndID(ctx context.Context, userID string, id int64) (*entity.Bookmark, error)

	// ListByOwner returns one page of userID's bookmarks in creation order and the
	// owner's total bookmark count.
	ListByOwner(ctx context.Context, userID string, p pagination.Params) ([]*entity.Bookmark, int64, error)

	// Insert stores a new bookmark and returns it with store-assigned fields.
	// Unique violations are reported as entity.ErrURLExists or entity.ErrShortCodeExists.
	Insert(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error)

	// Update commits the URL and body of b and refreshes updated_at.
	Update(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error)

	// Delete removes b from the store.
	Delete(ctx context.Context, b *entity.Bookmark) error

	// IncrementVisits atomically adds one to the visit counter of the bookmark
	// with the given short code and returns the updated bookmark.
	IncrementVisits(ctx context.Context, shortCode string) (*entity.Bookmark, error)
}

// TxFunc is run by Store.WithinTx and Store.ReadTx with a repository bound to the transaction.
type TxFunc func(ctx context.Context, repo BookmarkRepository) error

// Store is a BookmarkRepository that can also scope several calls to a single
// transaction. The transaction commits when fn returns nil and rolls back otherwise.
type Store interface {
	BookmarkRepository
	WithinTx(ctx context.Context, fn TxFunc) error

	// ReadTx runs fn in a read-only transaction in which every statement sees
	// the same snapshot.
	ReadTx(ctx context.Context, fn TxFunc) error
}
