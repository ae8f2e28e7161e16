package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"stockboard/internal/util"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondWithError maps service errors to a status code. Anything unknown is
// logged and reported as a 500 with fallback as the message.
func (h *Handlers) respondWithError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, util.ErrInvalidInput):
		WriteError(w, util.ErrInvalidInput.Error(), http.StatusBadRequest)
	case errors.Is(err, util.ErrUsernameTaken):
		WriteError(w, "username is already in use", http.StatusConflict)
	case errors.Is(err, util.ErrInvalidCredentials):
		WriteError(w, util.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, util.ErrTokenMissing):
		WriteError(w, util.ErrTokenMissing.Error(), http.StatusUnauthorized)
	case errors.Is(err, util.ErrTokenExpired):
		WriteError(w, util.ErrTokenExpired.Error(), http.StatusUnauthorized)
	case errors.Is(err, util.ErrTokenInvalid):
		WriteError(w, util.ErrTokenInvalid.Error(), http.StatusUnauthorized)
	case errors.Is(err, util.ErrInvalidAuthor):
		WriteError(w, util.ErrInvalidAuthor.Error(), http.StatusBadRequest)
	case errors.Is(err, util.ErrPostNotFound):
		WriteError(w, util.ErrPostNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, util.ErrStorageDisabled):
		WriteError(w, util.ErrStorageDisabled.Error(), http.StatusServiceUnavailable)
	default:
		h.logger().Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		WriteError(w, fallback, http.StatusInternalServerError)
	}
}

func (h *Handlers) logger() *slog.Logger {
	if h.Logger == nil {
		return util.GetLogger()
	}
	return h.Logger
}

// decodeJSON reads the request body into dst. An empty body leaves dst unchanged.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
