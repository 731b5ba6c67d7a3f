// Package memory implements repository.Store in process memory. It is meant
// for local development and tests; data does not survive a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vadimbarashkov/bookmarker/internal/entity"
	"github.com/vadimbarashkov/bookmarker/internal/pagination"
	"github.com/vadimbarashkov/bookmarker/internal/repository"
)

// Store is a thread-safe in-memory bookmark store. Transactions run under the
// store lock against a copy of the data that replaces the original on commit.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

var _ repository.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{state: newState(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.state.clone()
	tx.now = s.now

	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.state = tx
	return nil
}

// ReadTx runs fn against a copy of the data that is discarded afterwards.
func (s *Store) ReadTx(ctx context.Context, fn repository.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	snapshot.now = s.now

	return fn(ctx, snapshot)
}

func (s *Store) FindByURL(ctx context.Context, url string) (*entity.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FindByURL(ctx, url)
}

func (s *Store) FindByShortCode(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FindByShortCode(ctx, shortCode)
}

func (s *Store) FindByOwnerAndID(ctx context.Context, userID string, id int64) (*entity.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FindByOwnerAndID(ctx, userID, id)
}

func (s *Store) ListByOwner(ctx context.Context, userID string, p pagination.Params) ([]*entity.Bookmark, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ListByOwner(ctx, userID, p)
}

func (s *Store) Insert(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.now = s.now
	return s.state.Insert(ctx, b)
}

func (s *Store) Update(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.now = s.now
	return s.state.Update(ctx, b)
}

func (s *Store) Delete(ctx context.Context, b *entity.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Delete(ctx, b)
}

func (s *Store) IncrementVisits(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.now = s.now
	return s.state.IncrementVisits(ctx, shortCode)
}

// state holds the data and implements the repository without locking.
type state struct {
	nextID    int64
	bookmarks map[int64]*entity.Bookmark
	byURL     map[string]int64
	byCode    map[string]int64
	now       func() time.Time
}

func newState() *state {
	return &state{
		nextID:    1,
		bookmarks: make(map[int64]*entity.Bookmark),
		byURL:     make(map[string]int64),
		byCode:    make(map[string]int64),
		now:       time.Now,
	}
}

func (st *state) clone() *state {
	c := &state{
		nextID:    st.nextID,
		bookmarks: make(map[int64]*entity.Bookmark, len(st.bookmarks)),
		byURL:     make(map[string]int64, len(st.byURL)),
		byCode:    make(map[string]int64, len(st.byCode)),
		now:       st.now,
	}
	for id, b := range st.bookmarks {
		c.bookmarks[id] = copyOf(b)
	}
	for k, v := range st.byURL {
		c.byURL[k] = v
	}
	for k, v := range st.byCode {
		c.byCode[k] = v
	}
	return c
}

func copyOf(b *entity.Bookmark) *entity.Bookmark {
	c := *b
	return &c
}

func (st *state) lookup(op string, id int64, ok bool) (*entity.Bookmark, error) {
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}
	return copyOf(st.bookmarks[id]), nil
}

func (st *state) FindByURL(ctx context.Context, url string) (*entity.Bookmark, error) {
	id, ok := st.byURL[url]
	return st.lookup("adapter.repository.memory.FindByURL", id, ok)
}

func (st *state) FindByShortCode(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	id, ok := st.byCode[shortCode]
	return st.lookup("adapter.repository.memory.FindByShortCode", id, ok)
}

func (st *state) FindByOwnerAndID(ctx context.Context, userID string, id int64) (*entity.Bookmark, error) {
	b, ok := st.bookmarks[id]
	return st.lookup("adapter.repository.memory.FindByOwnerAndID", id, ok && b.UserID == userID)
}

func (st *state) ListByOwner(ctx context.Context, userID string, p pagination.Params) ([]*entity.Bookmark, int64, error) {
	owned := make([]*entity.Bookmark, 0)
	for _, b := range st.bookmarks {
		if b.UserID == userID {
			owned = append(owned, b)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	items := make([]*entity.Bookmark, 0)
	if offset := p.Offset(); offset >= 0 && offset < len(owned) {
		for _, b := range owned[offset:min(offset+p.Limit(), len(owned))] {
			items = append(items, copyOf(b))
		}
	}

	return items, int64(len(owned)), nil
}

func (st *state) Insert(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	const op = "adapter.repository.memory.Insert"

	if _, ok := st.byURL[b.URL]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLExists)
	}
	if _, ok := st.byCode[b.ShortCode]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
	}

	now := st.now()
	stored := &entity.Bookmark{
		ID:        st.nextID,
		URL:       b.URL,
		ShortCode: b.ShortCode,
		Body:      b.Body,
		UserID:    b.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.nextID++

	st.bookmarks[stored.ID] = stored
	st.byURL[stored.URL] = stored.ID
	st.byCode[stored.ShortCode] = stored.ID

	return copyOf(stored), nil
}

func (st *state) Update(ctx context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
	const op = "adapter.repository.memory.Update"

	stored, ok := st.bookmarks[b.ID]
	if !ok || stored.UserID != b.UserID {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}
	if id, ok := st.byURL[b.URL]; ok && id != b.ID {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLExists)
	}

	delete(st.byURL, stored.URL)
	stored.URL = b.URL
	stored.Body = b.Body
	stored.UpdatedAt = st.now()
	st.byURL[stored.URL] = stored.ID

	return copyOf(stored), nil
}

func (st *state) Delete(ctx context.Context, b *entity.Bookmark) error {
	const op = "adapter.repository.memory.Delete"

	stored, ok := st.bookmarks[b.ID]
	if !ok || stored.UserID != b.UserID {
		return fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}

	delete(st.bookmarks, stored.ID)
	delete(st.byURL, stored.URL)
	delete(st.byCode, stored.ShortCode)

	return nil
}

func (st *state) IncrementVisits(ctx context.Context, shortCode string) (*entity.Bookmark, error) {
	const op = "adapter.repository.memory.IncrementVisits"

	id, ok := st.byCode[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}

	stored := st.bookmarks[id]
	stored.Visits++
	stored.UpdatedAt = st.now()

	return copyOf(stored), nil
}
