package http

import (
	"net/http"

	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/core/services"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type UserHandler struct {
	service ports.UserService
	logger  *logger.Logger
}

func NewUserHandler(service ports.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// GetMe godoc
// @Summary      Returns the authenticated user
// @Tags         users
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeDetail(w, h.logger, http.StatusUnauthorized, "missing user context")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", services.DefaultLimit)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	start, err := queryInt(r, "start", services.DefaultStart)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	users, err := h.service.List(r.Context(), ports.ListUsersInput{Limit: limit, Start: start})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, nonNil(users))
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
