package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarker/internal/entity"
)

// bookmarkRequest is the payload of create and update requests. The URL is
// checked by the use case, after the ownership lookup on update.
type bookmarkRequest struct {
	URL  string `json:"url"`
	Body string `json:"body" validate:"max=4096"`
}

// bookmarkResponse is the public representation of a bookmark.
type bookmarkResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	ShortURL  string    `json:"short_url"`
	Visit     int64     `json:"visit"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBookmarkResponse(b *entity.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:        b.ID,
		URL:       b.URL,
		ShortURL:  b.ShortCode,
		Visit:     b.Visits,
		Body:      b.Body,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type pageMetaResponse struct {
	Page       int   `json:"page"`
	Pages      int   `json:"pages"`
	TotalCount int64 `json:"total_count"`
	PrevPage   *int  `json:"prev_page"`
	NextPage   *int  `json:"next_page"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type bookmarkListResponse struct {
	Data []bookmarkResponse `json:"data"`
	Meta pageMetaResponse   `json:"meta"`
}

func toBookmarkListResponse(p *entity.BookmarkPage) bookmarkListResponse {
	data := make([]bookmarkResponse, 0, len(p.Items))
	for _, b := range p.Items {
		data = append(data, toBookmarkResponse(b))
	}

	return bookmarkListResponse{
		Data: data,
		Meta: pageMetaResponse{
			Page:       p.Meta.Page,
			Pages:      p.Meta.Pages,
			TotalCount: p.Meta.TotalCount,
			PrevPage:   p.Meta.PrevPage,
			NextPage:   p.Meta.NextPage,
			HasNext:    p.Meta.HasNext,
			HasPrev:    p.Meta.HasPrev,
		},
	}
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Error   string            `json:"error"`
	Details []validationError `json:"details,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse   = errorResponse{Error: "empty request body"}
	invalidRequestBodyResponse = errorResponse{Error: "invalid request body"}
	bookmarkNotFoundResponse   = errorResponse{Error: "bookmark not found"}
	serverErrorResponse        = errorResponse{Error: "server error occurred"}
)

// domainErrors maps domain errors to the status and body clients see. Order
// matters: concrete errors come before the kinds they wrap.
var domainErrors = []struct {
	err    error
	status int
	resp   errorResponse
}{
	{entity.ErrInvalidURL, http.StatusBadRequest, errorResponse{Error: "enter a valid url"}},
	{entity.ErrURLExists, http.StatusConflict, errorResponse{Error: "url already exists"}},
	{entity.ErrShortCodeExists, http.StatusConflict, errorResponse{Error: "short code exists"}},
	{entity.ErrBookmarkNotFound, http.StatusNotFound, bookmarkNotFoundResponse},
	{entity.ErrValidation, http.StatusBadRequest, errorResponse{Error: "validation error"}},
	{entity.ErrConflict, http.StatusConflict, errorResponse{Error: "conflict"}},
	{entity.ErrNotFound, http.StatusNotFound, errorResponse{Error: "not found"}},
}

// errorToResponse classifies err. ok is false for errors that are not part of
// the domain taxonomy; those become a 500 without details.
func errorToResponse(err error) (status int, resp errorResponse, ok bool) {
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return d.status, d.resp, true
		}
	}
	return http.StatusInternalServerError, serverErrorResponse, false
}

// messageForTag returns a user-friendly message based on the validation tag.
func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "max":
		return "value is too long"
	default:
		return "invalid value"
	}
}

func validationErrorResponse(err error) errorResponse {
	var details []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			details = append(details, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return errorResponse{
		Error:   "validation error",
		Details: details,
	}
}
