package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/careerpath/internal/logger"
	"github.com/jonathan/careerpath/internal/server/middleware"
	"github.com/jonathan/careerpath/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	validate    *validator.Validate
	log         *logger.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, validate *validator.Validate, log *logger.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, validate: validate, log: log}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeJSON(r, &req, h.validate); err != nil {
		fail(h.log, w, r, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		fail(h.log, w, r, err)
		return
	}
	h.issue(w, r, http.StatusCreated, user)
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, &req, h.validate); err != nil {
		fail(h.log, w, r, err)
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		fail(h.log, w, r, err)
		return
	}
	h.issue(w, r, http.StatusOK, user)
}

// Logout destroys the session behind the request's token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionID(r)
	if err != nil {
		writeError(h.log, w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.userService.EndSession(r.Context(), sessionID); err != nil {
		fail(h.log, w, r, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(h.log, w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.userService.Current(r.Context(), userID)
	if err != nil {
		fail(h.log, w, r, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, user.Public())
}

// issue starts a session for user and writes the {user, token} response.
func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, status int, user *types.User) {
	token, err := h.userService.StartSession(r.Context(), user)
	if err != nil {
		fail(h.log, w, r, err)
		return
	}
	writeJSON(h.log, w, status, types.LoginResponse{User: user.Public(), Token: token})
}
