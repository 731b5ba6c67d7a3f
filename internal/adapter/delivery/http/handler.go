package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarker/internal/auth"
	"github.com/vadimbarashkov/bookmarker/internal/entity"
	"github.com/vadimbarashkov/bookmarker/internal/pagination"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type bookmarkUseCase interface {
	CreateBookmark(ctx context.Context, userID, url, body string) (*entity.Bookmark, error)
	ListBookmarks(ctx context.Context, userID string, page, perPage int) (*entity.BookmarkPage, error)
	GetBookmark(ctx context.Context, userID string, id int64) (*entity.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID string, id int64, url, body string) (*entity.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID string, id int64) error
	ResolveShortCode(ctx context.Context, shortCode string) (*entity.Bookmark, error)
}

type redirectObserver interface {
	ObserveRedirect(found bool)
}

type bookmarkHandler struct {
	useCase  bookmarkUseCase
	validate *validator.Validate
}

func newBookmarkHandler(useCase bookmarkUseCase, validate *validator.Validate) *bookmarkHandler {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &bookmarkHandler{
		useCase:  useCase,
		validate: validate,
	}
}

// decodeRequest reads and validates a bookmark payload. It writes the 400
// response itself and reports false when the request must not proceed.
func (h *bookmarkHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (bookmarkRequest, bool) {
	var req bookmarkRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return req, false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return req, false
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return req, false
	}

	return req, true
}

// respondError writes the client-facing form of err. Errors outside the
// domain taxonomy are logged with op and hidden behind a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, resp, ok := errorToResponse(err)
	if !ok {
		httplog.LogEntrySetFields(r.Context(), map[string]any{
			"op":  op,
			"err": err,
		})
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

// bookmarkID parses the {id} URL parameter. A malformed id cannot name any
// bookmark, so it is answered like an unknown one.
func bookmarkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, bookmarkNotFoundResponse)
		return 0, false
	}
	return id, true
}

// callerID returns the authenticated user. The route is always mounted behind
// auth.Authenticator; a missing id is a wiring bug and answered with 500.
func callerID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, r, op, errors.New("caller identity missing from request context"))
		return "", false
	}
	return userID, true
}

func (h *bookmarkHandler) createBookmark(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.bookmarkHandler.createBookmark"

	userID, ok := callerID(w, r, op)
	if !ok {
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	b, err := h.useCase.CreateBookmark(r.Context(), userID, req.URL, req.Body)
	if err != nil {
		respondError(w, r, op, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toBookmarkResponse(b))
}

func (h *bookmarkHandler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.bookmarkHandler.listBookmarks"

	userID, ok := callerID(w, r, op)
	if !ok {
		return
	}

	p := pagination.FromQuery(r.URL.Query())

	page, err := h.useCase.ListBookmarks(r.Context(), userID, p.Page, p.PerPage)
	if err != nil {
		respondError(w, r, op, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkListResponse(page))
}

func (h *bookmarkHandler) getBookmark(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.bookmarkHandler.getBookmark"

	userID, ok := callerID(w, r, op)
	if !ok {
		return
	}

	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	b, err := h.useCase.GetBookmark(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, op, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkResponse(b))
}

func (h *bookmarkHandler) updateBookmark(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.bookmarkHandler.updateBookmark"

	userID, ok := callerID(w, r, op)
	if !ok {
		return
	}

	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	b, err := h.useCase.UpdateBookmark(r.Context(), userID, id, req.URL, req.Body)
	if err != nil {
		respondError(w, r, op, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkResponse(b))
}

func (h *bookmarkHandler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.bookmarkHandler.deleteBookmark"

	userID, ok := callerID(w, r, op)
	if !ok {
		return
	}

	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	if err := h.useCase.DeleteBookmark(r.Context(), userID, id); err != nil {
		respondError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// redirectHandler serves the public short links. Unknown codes get the plain
// 404 page rather than a JSON error.
type redirectHandler struct {
	useCase  bookmarkUseCase
	observer redirectObserver
}

func (h *redirectHandler) redirect(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.redirectHandler.redirect"

	shortCode := chi.URLParam(r, "shortCode")

	b, err := h.useCase.ResolveShortCode(r.Context(), shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			h.observer.ObserveRedirect(false)
			http.NotFound(w, r)
			return
		}

		httplog.LogEntrySetFields(r.Context(), map[string]any{
			"op":  op,
			"err": err,
		})

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.observer.ObserveRedirect(true)
	http.Redirect(w, r, b.URL, http.StatusFound)
}
