package http

import (
	"mime"
	"net/http"

	"github.com/vncsmyrnk/blog/internal/core/domain"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/logger"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type signupRequest struct {
	Username string        `json:"username"`
	Email    string        `json:"email"`
	FullName string        `json:"full_name"`
	Password string        `json:"password"`
	Gender   domain.Gender `json:"gender"`
	Role     domain.Role   `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary      Registers a new user
// @Description  Creates a user with a hashed password. Username and email must be unused.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDetail(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Signup(r.Context(), ports.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, user)
}

// Login godoc
// @Summary      Exchanges credentials for a bearer token
// @Description  Accepts a JSON body or an OAuth2 password form with username and password.
// @Tags         auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200
// @Failure      401
// @Failure      403
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLogin(w, r)
	if !ok || req.Username == "" || req.Password == "" {
		writeDetail(w, h.logger, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, token)
}

func (h *AuthHandler) decodeLogin(w http.ResponseWriter, r *http.Request) (loginRequest, bool) {
	var req loginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := decodeJSON(w, r, &req); err != nil {
			return req, false
		}
		return req, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return req, false
	}
	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	return req, true
}
