// Package postgres implements repository.Store on top of PostgreSQL using sqlx
// and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/bookmarker/internal/entity"
	"github.com/vadimbarashkov/bookmarker/internal/pagination"
	"github.com/vadimbarashkov/bookmarker/internal/repository"
)

const (
	uniqueViolationErrCode = "23505"

	shortCodeConstraint = "bookmarks_short_code_key"
	urlConstraint       = "bookmarks_url_key"
)

const columns = `id, url, short_code, body, visits, user_id, created_at, updated_at`

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationErrCode
}

// uniqueViolationToEntity maps a unique violation to the domain error for the
// violated constraint.
func uniqueViolationToEntity(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == shortCodeConstraint {
		return entity.ErrShortCodeExists
	}
	return entity.ErrURLExists
}

type bookmarkDB struct {
	ID        int64     `db:"id"`
	URL       string    `db:"url"`
	ShortCode string    `db:"short_code"`
	Body      string    `db:"body"`
	Visits    int64     `db:"visits"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (b *bookmarkDB) toEntity() *entity.Bookmark {
	return &entity.Bookmark{
		ID:        b.ID,
		URL:       b.URL,
		ShortCode: b.ShortCode,
		Body:      b.Body,
		Visits:    b.Visits,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BookmarkRepository implements repository.Store. A repository created with
// NewBookmarkRepository runs statements on the pool; the one passed to a
// WithinTx callback runs them on that transaction.
type BookmarkRepository struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

var _ repository.Store = (*BookmarkRepository)(nil)

func NewBookmarkRepository(db *sqlx.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db, q: db}
}

func (r *BookmarkRepository) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	const op = "adapter.repository.postgres.BookmarkRepository.WithinTx"
	return r.runTx(ctx, op, nil, fn)
}

// ReadTx runs fn under REPEATABLE READ so a count and the page read after it
// agree.
func (r *BookmarkRepository) ReadTx(ctx context.Context, fn repository.TxFunc) error {
	const op = "adapter.repository.postgres.BookmarkRepository.ReadTx"
	return r.runTx(ctx, op, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (r *BookmarkRepository) runTx(ctx context.Context, op string, opts *sql.TxOptions, fn repository.TxFunc) (err error) {
	// Already bound to a transaction: join it.
	if r.db == nil {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, &BookmarkRepository{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%s: failed to rollback transaction: %w", op, errors.Join(err, rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

func (r *BookmarkRepository) FindByURL(ctx context.Context, url string) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.FindByURL"
	const query = `SELECT ` + columns + ` FROM bookmarks WHERE url = $1`

	return r.getOne(ctx, op, query, url)
}

func (r *BookmarkRepository) FindByShortCode(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.FindByShortCode"
	const query = `SELECT ` + columns + ` FROM bookmarks WHERE short_code = $1`

	return r.getOne(ctx, op, query, shortCode)
}

func (r *BookmarkRepository) FindByOwnerAndID(ctx context.Context, userID string, id int64) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.FindByOwnerAndID"
	const query = `SELECT ` + columns + ` FROM bookmarks WHERE id = $1 AND user_id = $2`

	return r.getOne(ctx, op, query, id, userID)
}

func (r *BookmarkRepository) ListByOwner(ctx context.Context, userID string, p pagination.Params) ([]*entity.Bookmark, int64, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.ListByOwner"
	const countQuery = `SELECT count(*) FROM bookmarks WHERE user_id = $1`
	const listQuery = `SELECT ` + columns + ` FROM bookmarks WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`

	var total int64

	if err := sqlx.GetContext(ctx, r.q, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("%s: failed to count bookmarks: %w", op, err)
	}

	var rows []bookmarkDB

	if err := sqlx.SelectContext(ctx, r.q, &rows, listQuery, userID, p.Limit(), p.Offset()); err != nil {
		return nil, 0, fmt.Errorf("%s: failed to select from bookmarks table: %w", op, err)
	}

	items := make([]*entity.Bookmark, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toEntity())
	}

	return items, total, nil
}

func (r *BookmarkRepository) Insert(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.Insert"
	const query = `INSERT INTO bookmarks(url, short_code, body, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	var row bookmarkDB

	if err := sqlx.GetContext(ctx, r.q, &row, query, b.URL, b.ShortCode, b.Body, b.UserID); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, uniqueViolationToEntity(err))
		}

		return nil, fmt.Errorf("%s: failed to insert into bookmarks table: %w", op, err)
	}

	return row.toEntity(), nil
}

func (r *BookmarkRepository) Update(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.Update"
	const query = `UPDATE bookmarks
		SET url = $1, body = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + columns

	var row bookmarkDB

	if err := sqlx.GetContext(ctx, r.q, &row, query, b.URL, b.Body, b.ID, b.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
		}
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, uniqueViolationToEntity(err))
		}

		return nil, fmt.Errorf("%s: failed to update bookmarks table row: %w", op, err)
	}

	return row.toEntity(), nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, b *entity.Bookmark) error {
	const op = "adapter.repository.postgres.BookmarkRepository.Delete"
	const query = `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`

	res, err := r.q.ExecContext(ctx, query, b.ID, b.UserID)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from bookmarks table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}

	return nil
}

// IncrementVisits is a single UPDATE so concurrent redirects of one code are
// serialized by the row lock and none of the increments is lost.
func (r *BookmarkRepository) IncrementVisits(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.IncrementVisits"
	const query = `UPDATE bookmarks
		SET visits = visits + 1, updated_at = now()
		WHERE short_code = $1
		RETURNING ` + columns

	return r.getOne(ctx, op, query, shortCode)
}

func (r *BookmarkRepository) getOne(ctx context.Context, op, query string, args ...any) (*entity.Bookmark, error) {
	var row bookmarkDB

	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from bookmarks table: %w", op, err)
	}

	return row.toEntity(), nil
}
