package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// maxBodyBytes caps request bodies read by the handlers.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("HTTP: failed to encode response", "status", status, "error", err.Error())
	}
}

func writeDetail(w http.ResponseWriter, log *logger.Logger, status int, detail string) {
	writeJSON(w, log, status, errorResponse{Detail: detail})
}

// writeError maps domain errors to HTTP statuses. Anything unclassified is
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeDetail(w, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeDetail(w, log, http.StatusNotFound, notFoundDetail(err))
	case errors.Is(err, domain.ErrConflict):
		writeDetail(w, log, http.StatusBadRequest, conflictDetail(err))
	case errors.Is(err, domain.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, log, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, log, http.StatusUnauthorized, "could not validate credentials")
	case errors.Is(err, domain.ErrInactiveUser):
		writeDetail(w, log, http.StatusForbidden, domain.ErrInactiveUser.Error())
	default:
		log.With("request_id", middleware.GetReqID(r.Context())).Error("HTTP: unhandled error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
		writeDetail(w, log, http.StatusInternalServerError, domain.ErrInternal.Error())
	}
}

func notFoundDetail(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrBlogNotFound):
		return domain.ErrBlogNotFound.Error()
	}
	return domain.ErrNotFound.Error()
}

func conflictDetail(err error) string {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return "username already registered"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email already registered"
	}
	return "resource already exists"
}

// pathID parses the {id} URL parameter. Malformed ids never reach the services.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid id: must be a UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key + ": must be an integer")
	}
	return v, nil
}

func queryBool(r *http.Request, key string, def bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("invalid " + key + ": must be a boolean")
	}
	return v, nil
}
