package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/bookmarker/internal/entity"
	"github.com/vadimbarashkov/bookmarker/internal/pagination"
	"github.com/vadimbarashkov/bookmarker/internal/repository"
)

func TestIsUniqueViolationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation error",
			err:  &pgconn.PgError{Code: uniqueViolationErrCode},
			want: true,
		},
		{
			name: "wrapped unique violation error",
			err:  errors.Join(errors.New("context"), &pgconn.PgError{Code: uniqueViolationErrCode}),
			want: true,
		},
		{
			name: "not unique violation error",
			err:  &pgconn.PgError{Code: "unknown error code"},
			want: false,
		},
		{
			name: "not PgError",
			err:  errors.New("unknown error"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolationError(tt.err))
		})
	}
}

type BookmarkRepositoryTestSuite struct {
	suite.Suite
	errUnknown      error
	errAffectedRows error
	columns         []string
	mock            sqlmock.Sqlmock
	repo            *BookmarkRepository
}

func (suite *BookmarkRepositoryTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.errAffectedRows = errors.New("affected rows error")
	suite.columns = []string{"id", "url", "short_code", "body", "visits", "user_id", "created_at", "updated_at"}
}

func (suite *BookmarkRepositoryTestSuite) SetupSubTest() {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := sqlx.NewDb(mockDB, "sqlmock")
	suite.T().Cleanup(func() {
		db.Close()
	})

	suite.mock = mock
	suite.repo = NewBookmarkRepository(db)
}

func (suite *BookmarkRepositoryTestSuite) TearDownSubTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BookmarkRepositoryTestSuite) row(id int64, url, shortCode string, visits int64) *sqlmock.Rows {
	return sqlmock.NewRows(suite.columns).
		AddRow(id, url, shortCode, "note", visits, "user-1", time.Time{}, time.Time{})
}

func (suite *BookmarkRepositoryTestSuite) TestWithinTx() {
	suite.Run("begin error", func() {
		suite.mock.ExpectBegin().WillReturnError(suite.errUnknown)

		err := suite.repo.WithinTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			suite.Fail("callback must not run")
			return nil
		})

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("callback error rolls back", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectRollback()

		err := suite.repo.WithinTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			return entity.ErrURLExists
		})

		suite.ErrorIs(err, entity.ErrURLExists)
	})

	suite.Run("commit", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE url`).
			WithArgs("https://example.com").
			WillReturnError(sql.ErrNoRows)
		suite.mock.ExpectCommit()

		err := suite.repo.WithinTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			_, err := repo.FindByURL(ctx, "https://example.com")
			if errors.Is(err, entity.ErrBookmarkNotFound) {
				return nil
			}
			return err
		})

		suite.NoError(err)
	})

	suite.Run("nested call joins transaction", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectCommit()

		err := suite.repo.WithinTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			store, ok := repo.(repository.Store)
			suite.Require().True(ok)

			return store.WithinTx(ctx, func(ctx context.Context, repo repository.BookmarkRepository) error {
				return nil
			})
		})

		suite.NoError(err)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestReadTx() {
	suite.Run("begin error", func() {
		suite.mock.ExpectBegin().WillReturnError(suite.errUnknown)

		err := suite.repo.ReadTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			suite.Fail("callback must not run")
			return nil
		})

		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("count and page in one transaction", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT count\(\*\) FROM bookmarks`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE user_id = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
			WithArgs("user-1", 5, 0).
			WillReturnRows(sqlmock.NewRows(suite.columns))
		suite.mock.ExpectCommit()

		err := suite.repo.ReadTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			_, _, err := repo.ListByOwner(ctx, "user-1", pagination.Params{Page: 1, PerPage: 5})
			return err
		})

		suite.NoError(err)
	})

	suite.Run("callback error rolls back", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectRollback()

		err := suite.repo.ReadTx(context.Background(), func(ctx context.Context, repo repository.BookmarkRepository) error {
			return suite.errUnknown
		})

		suite.ErrorIs(err, suite.errUnknown)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestFindByURL() {
	suite.Run("bookmark not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE url`).
			WithArgs("https://example.com").
			WillReturnError(sql.ErrNoRows)

		b, err := suite.repo.FindByURL(context.Background(), "https://example.com")

		suite.ErrorIs(err, entity.ErrBookmarkNotFound)
		suite.ErrorIs(err, entity.ErrNotFound)
		suite.Nil(b)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE url`).
			WithArgs("https://example.com").
			WillReturnError(suite.errUnknown)

		b, err := suite.repo.FindByURL(context.Background(), "https://example.com")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(b)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE url`).
			WithArgs("https://example.com").
			WillReturnRows(suite.row(1, "https://example.com", "abc234", 0))

		b, err := suite.repo.FindByURL(context.Background(), "https://example.com")

		suite.NoError(err)
		suite.Equal(int64(1), b.ID)
		suite.Equal("https://example.com", b.URL)
		suite.Equal("abc234", b.ShortCode)
		suite.Equal("user-1", b.UserID)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestFindByShortCode() {
	suite.Run("bookmark not found", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE short_code`).
			WithArgs("abc234").
			WillReturnError(sql.ErrNoRows)

		b, err := suite.repo.FindByShortCode(context.Background(), "abc234")

		suite.ErrorIs(err, entity.ErrBookmarkNotFound)
		suite.Nil(b)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE short_code`).
			WithArgs("abc234").
			WillReturnRows(suite.row(1, "https://example.com", "abc234", 3))

		b, err := suite.repo.FindByShortCode(context.Background(), "abc234")

		suite.NoError(err)
		suite.Equal("abc234", b.ShortCode)
		suite.Equal(int64(3), b.Visits)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestFindByOwnerAndID() {
	suite.Run("other owner", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE id = \$1 AND user_id = \$2`).
			WithArgs(int64(1), "user-2").
			WillReturnError(sql.ErrNoRows)

		b, err := suite.repo.FindByOwnerAndID(context.Background(), "user-2", 1)

		suite.ErrorIs(err, entity.ErrBookmarkNotFound)
		suite.Nil(b)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE id = \$1 AND user_id = \$2`).
			WithArgs(int64(1), "user-1").
			WillReturnRows(suite.row(1, "https://example.com", "abc234", 0))

		b, err := suite.repo.FindByOwnerAndID(context.Background(), "user-1", 1)

		suite.NoError(err)
		suite.Equal(int64(1), b.ID)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestListByOwner() {
	p := pagination.Params{Page: 2, PerPage: 5}

	suite.Run("count error", func() {
		suite.mock.ExpectQuery(`SELECT count\(\*\) FROM bookmarks`).
			WithArgs("user-1").
			WillReturnError(suite.errUnknown)

		items, total, err := suite.repo.ListByOwner(context.Background(), "user-1", p)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(items)
		suite.Zero(total)
	})

	suite.Run("select error", func() {
		suite.mock.ExpectQuery(`SELECT count\(\*\) FROM bookmarks`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE user_id = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
			WithArgs("user-1", 5, 5).
			WillReturnError(suite.errUnknown)

		items, _, err := suite.repo.ListByOwner(context.Background(), "user-1", p)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(items)
	})

	suite.Run("empty page", func() {
		suite.mock.ExpectQuery(`SELECT count\(\*\) FROM bookmarks`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE user_id = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
			WithArgs("user-1", 5, 5).
			WillReturnRows(sqlmock.NewRows(suite.columns))

		items, total, err := suite.repo.ListByOwner(context.Background(), "user-1", p)

		suite.NoError(err)
		suite.NotNil(items)
		suite.Empty(items)
		suite.Zero(total)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(6, "https://example.com/6", "abc236", "", 0, "user-1", time.Time{}, time.Time{}).
			AddRow(7, "https://example.com/7", "abc237", "", 2, "user-1", time.Time{}, time.Time{})

		suite.mock.ExpectQuery(`SELECT count\(\*\) FROM bookmarks`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		suite.mock.ExpectQuery(`SELECT (.+) FROM bookmarks WHERE user_id = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
			WithArgs("user-1", 5, 5).
			WillReturnRows(rows)

		items, total, err := suite.repo.ListByOwner(context.Background(), "user-1", p)

		suite.NoError(err)
		suite.Equal(int64(7), total)
		suite.Len(items, 2)
		suite.Equal(int64(6), items[0].ID)
		suite.Equal(int64(2), items[1].Visits)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestInsert() {
	b := &entity.Bookmark{URL: "https://example.com", ShortCode: "abc234", Body: "note", UserID: "user-1"}

	suite.Run("short code exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO bookmarks`).
			WithArgs(b.URL, b.ShortCode, b.Body, b.UserID).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: shortCodeConstraint})

		got, err := suite.repo.Insert(context.Background(), b)

		suite.ErrorIs(err, entity.ErrShortCodeExists)
		suite.ErrorIs(err, entity.ErrConflict)
		suite.Nil(got)
	})

	suite.Run("url exists", func() {
		suite.mock.ExpectQuery(`INSERT INTO bookmarks`).
			WithArgs(b.URL, b.ShortCode, b.Body, b.UserID).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: urlConstraint})

		got, err := suite.repo.Insert(context.Background(), b)

		suite.ErrorIs(err, entity.ErrURLExists)
		suite.Nil(got)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`INSERT INTO bookmarks`).
			WithArgs(b.URL, b.ShortCode, b.Body, b.UserID).
			WillReturnError(suite.errUnknown)

		got, err := suite.repo.Insert(context.Background(), b)

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(got)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`INSERT INTO bookmarks`).
			WithArgs(b.URL, b.ShortCode, b.Body, b.UserID).
			WillReturnRows(suite.row(1, b.URL, b.ShortCode, 0))

		got, err := suite.repo.Insert(context.Background(), b)

		suite.NoError(err)
		suite.Equal(int64(1), got.ID)
		suite.Equal("abc234", got.ShortCode)
		suite.Zero(got.Visits)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestUpdate() {
	b := &entity.Bookmark{ID: 1, URL: "https://example.org", Body: "new", UserID: "user-1"}

	suite.Run("bookmark not found", func() {
		suite.mock.ExpectQuery(`UPDATE bookmarks`).
			WithArgs(b.URL, b.Body, b.ID, b.UserID).
			WillReturnError(sql.ErrNoRows)

		got, err := suite.repo.Update(context.Background(), b)

		suite.ErrorIs(err, entity.ErrBookmarkNotFound)
		suite.Nil(got)
	})

	suite.Run("url exists", func() {
		suite.mock.ExpectQuery(`UPDATE bookmarks`).
			WithArgs(b.URL, b.Body, b.ID, b.UserID).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationErrCode, ConstraintName: urlConstraint})

		got, err := suite.repo.Update(context.Background(), b)

		suite.ErrorIs(err, entity.ErrURLExists)
		suite.Nil(got)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE bookmarks`).
			WithArgs(b.URL, b.Body, b.ID, b.UserID).
			WillReturnRows(suite.row(1, b.URL, "abc234", 4))

		got, err := suite.repo.Update(context.Background(), b)

		suite.NoError(err)
		suite.Equal("https://example.org", got.URL)
		suite.Equal("abc234", got.ShortCode)
		suite.Equal(int64(4), got.Visits)
	})
}

func (suite *BookmarkRepositoryTestSuite) TestDelete() {
	b := &entity.Bookmark{ID: 1, UserID: "user-1"}

	suite.Run("unknown error", func() {
		suite.mock.ExpectExec(`DELETE FROM bookmarks`).
			WithArgs(b.ID, b.UserID).
			WillReturnError(suite.errUnknown)

		suite.ErrorIs(suite.repo.Delete(context.Background(), b), suite.errUnknown)
	})

	suite.Run("rows affected error", func() {
		suite.mock.ExpectExec(`DELETE FROM bookmarks`).
			WithArgs(b.ID, b.UserID).
			WillReturnResult(sqlmock.NewErrorResult(suite.errAffectedRows))

		suite.ErrorIs(suite.repo.Delete(context.Background(), b), suite.errAffectedRows)
	})

	suite.Run("bookmark not found", func() {
		suite.mock.ExpectExec(`DELETE FROM bookmarks`).
			WithArgs(b.ID, b.UserID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		suite.ErrorIs(suite.repo.Delete(context.Background(), b), entity.ErrBookmarkNotFound)
	})

	suite.Run("success", func() {
		suite.mock.ExpectExec(`DELETE FROM bookmarks`).
			WithArgs(b.ID, b.UserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		suite.NoError(suite.repo.Delete(context.Background(), b))
	})
}

func (suite *BookmarkRepositoryTestSuite) TestIncrementVisits() {
	suite.Run("bookmark not found", func() {
		suite.mock.ExpectQuery(`UPDATE bookmarks\s+SET visits = visits \+ 1`).
			WithArgs("abc234").
			WillReturnError(sql.ErrNoRows)

		b, err := suite.repo.IncrementVisits(context.Background(), "abc234")

		suite.ErrorIs(err, entity.ErrBookmarkNotFound)
		suite.Nil(b)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`UPDATE bookmarks\s+SET visits = visits \+ 1`).
			WithArgs("abc234").
			WillReturnError(suite.errUnknown)

		b, err := suite.repo.IncrementVisits(context.Background(), "abc234")

		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(b)
	})

	suite.Run("success", func() {
		suite.mock.ExpectQuery(`UPDATE bookmarks\s+SET visits = visits \+ 1`).
			WithArgs("abc234").
			WillReturnRows(suite.row(1, "https://example.com", "abc234", 1))

		b, err := suite.repo.IncrementVisits(context.Background(), "abc234")

		suite.NoError(err)
		suite.Equal(int64(1), b.Visits)
		suite.Equal("https://example.com", b.URL)
	})
}

func TestBookmarkRepository(t *testing.T) {
	suite.Run(t, new(BookmarkRepositoryTestSuite))
}
