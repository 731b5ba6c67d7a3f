// Package usecase implements the bookmark lifecycle: owner-scoped CRUD with
// global URL uniqueness, short-code assignment and public short-code resolution.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarker/internal/entity"
	"github.com/vadimbarashkov/bookmarker/internal/pagination"
	"github.com/vadimbarashkov/bookmarker/internal/repository"
)

const maxRetries = 5

// urlRule accepts absolute http(s) URLs with a host.
const urlRule = "required,max=2048,http_url"

// ErrMaxRetriesExceeded is returned when the maximum number of retries for generating a short code is exceeded.
var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short code")

type shortCodeGenerator interface {
	Generate() (string, error)
}

// BookmarkUseCase coordinates bookmark operations on behalf of an authenticated
// caller. Owner-scoped operations never distinguish "does not exist" from
// "belongs to someone else": both are entity.ErrBookmarkNotFound.
type BookmarkUseCase struct {
	store    repository.Store
	gen      shortCodeGenerator
	validate *validator.Validate
}

func NewBookmarkUseCase(store repository.Store, gen shortCodeGenerator) *BookmarkUseCase {
	return &BookmarkUseCase{
		store:    store,
		gen:      gen,
		validate: validator.New(),
	}
}

func (uc *BookmarkUseCase) validateURL(rawURL string) error {
	if err := uc.validate.Var(rawURL, urlRule); err != nil {
		return entity.ErrInvalidURL
	}
	return nil
}

// ensureURLAvailable fails with entity.ErrURLExists if a bookmark other than
// selfID already holds url. Pass selfID 0 when creating.
func ensureURLAvailable(ctx context.Context, repo repository.BookmarkRepository, url string, selfID int64) error {
	existing, err := repo.FindByURL(ctx, url)
	if errors.Is(err, entity.ErrBookmarkNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return entity.ErrURLExists
	}
	return nil
}

// ensureShortCodeAvailable fails with entity.ErrShortCodeExists if shortCode
// is already assigned. The unique index still guards the insert itself.
func ensureShortCodeAvailable(ctx context.Context, repo repository.BookmarkRepository, shortCode string) error {
	_, err := repo.FindByShortCode(ctx, shortCode)
	if errors.Is(err, entity.ErrBookmarkNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return entity.ErrShortCodeExists
}

// CreateBookmark stores url for userID under a freshly generated short code.
// Each attempt runs in its own transaction: a failed insert aborts the
// transaction it ran in, so a short-code collision is retried in a new one.
func (uc *BookmarkUseCase) CreateBookmark(ctx context.Context, userID, url, body string) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.CreateBookmark"

	if err := uc.validateURL(url); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := 0; i < maxRetries; i++ {
		shortCode, err := uc.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		var created *entity.Bookmark

		err = uc.store.WithinTx(ctx, func(ctx context.Context, repo repository.BookmarkRepository) error {
			if err := ensureURLAvailable(ctx, repo, url, 0); err != nil {
				return err
			}
			if err := ensureShortCodeAvailable(ctx, repo, shortCode); err != nil {
				return err
			}

			var err error
			created, err = repo.Insert(ctx, &entity.Bookmark{
				URL:       url,
				ShortCode: shortCode,
				Body:      body,
				UserID:    userID,
			})
			return err
		})
		if err != nil {
			if errors.Is(err, entity.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to create bookmark: %w", op, err)
		}

		return created, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ListBookmarks returns one page of userID's bookmarks. The count and the page
// are read from one snapshot.
func (uc *BookmarkUseCase) ListBookmarks(ctx context.Context, userID string, page, perPage int) (*entity.BookmarkPage, error) {
	const op = "usecase.BookmarkUseCase.ListBookmarks"

	p := pagination.Normalize(page, perPage)

	var (
		items []*entity.Bookmark
		total int64
	)

	err := uc.store.ReadTx(ctx, func(ctx context.Context, repo repository.BookmarkRepository) error {
		var err error
		items, total, err = repo.ListByOwner(ctx, userID, p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list bookmarks: %w", op, err)
	}

	if items == nil {
		items = []*entity.Bookmark{}
	}

	return &entity.BookmarkPage{
		Items: items,
		Meta:  pagination.Meta(p, total),
	}, nil
}

func (uc *BookmarkUseCase) GetBookmark(ctx context.Context, userID string, id int64) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.GetBookmark"

	b, err := uc.store.FindByOwnerAndID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get bookmark: %w", op, err)
	}

	return b, nil
}

// UpdateBookmark replaces the URL and body of one of userID's bookmarks. The
// short code, visit count and owner are left untouched.
func (uc *BookmarkUseCase) UpdateBookmark(ctx context.Context, userID string, id int64, url, body string) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.UpdateBookmark"

	var updated *entity.Bookmark

	err := uc.store.WithinTx(ctx, func(ctx context.Context, repo repository.BookmarkRepository) error {
		b, err := repo.FindByOwnerAndID(ctx, userID, id)
		if err != nil {
			return err
		}

		if err := uc.validateURL(url); err != nil {
			return err
		}

		if err := ensureURLAvailable(ctx, repo, url, b.ID); err != nil {
			return err
		}

		b.URL = url
		b.Body = body

		updated, err = repo.Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update bookmark: %w", op, err)
	}

	return updated, nil
}

func (uc *BookmarkUseCase) DeleteBookmark(ctx context.Context, userID string, id int64) error {
	const op = "usecase.BookmarkUseCase.DeleteBookmark"

	err := uc.store.WithinTx(ctx, func(ctx context.Context, repo repository.BookmarkRepository) error {
		b, err := repo.FindByOwnerAndID(ctx, userID, id)
		if err != nil {
			return err
		}

		return repo.Delete(ctx, b)
	})
	if err != nil {
		return fmt.Errorf("%s: failed to delete bookmark: %w", op, err)
	}

	return nil
}

// ResolveShortCode counts one visit of shortCode and returns its bookmark.
// It is public: no ownership filter applies.
func (uc *BookmarkUseCase) ResolveShortCode(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.ResolveShortCode"

	b, err := uc.store.IncrementVisits(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return b, nil
}
