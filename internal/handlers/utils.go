package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type contextKey string

const contextUserIDKey contextKey = "user_id"

// userIDHeader carries the caller's identity as an opaque integer. The
// request layer supplies it; nothing here authenticates it.
const userIDHeader = "X-User-Id"

var validate = validator.New()

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RequireUser extracts the caller's identity from the X-User-Id header and
// injects it into the request context. Requests without a valid positive
// integer id are rejected.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(userIDHeader))
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID < 1 {
			writeError(w, http.StatusBadRequest, "missing or invalid user id")
			return
		}

		ctx := context.WithValue(r.Context(), contextUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(contextUserIDKey).(int64)
	if !ok || userID < 1 {
		return 0, errors.New("missing user id")
	}
	return userID, nil
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
