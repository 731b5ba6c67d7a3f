package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
)

type ctxKey struct{}

type verifier interface {
	Verify(token string) (string, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

var unauthorizedResponse = errorResponse{Error: "unauthorized"}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}

func parseBearer(header string) string {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}

// Authenticator rejects requests without a valid bearer token with 401 and
// stores the token subject in the request context otherwise.
func Authenticator(v verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "auth.Authenticator"

			token := parseBearer(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w, r)
				return
			}

			userID, err := v.Verify(token)
			if err != nil {
				httplog.LogEntrySetFields(r.Context(), map[string]any{
					"op":  op,
					"err": err,
				})
				unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, unauthorizedResponse)
}
