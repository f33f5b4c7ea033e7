package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/auth"
)

const msgLoginFailed = "invalid username or password"

// Authenticator verifies admin credentials and manages the session cookie.
type Authenticator interface {
	Login(username, password string) (string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	auth   Authenticator
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(a Authenticator, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthHandler{auth: a, logger: logger}
}

// Login handles POST /api/public/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		// A malformed stored hash is an operator problem; the caller still
		// sees a plain login failure.
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.ErrorContext(r.Context(), "login unavailable", slog.Any("error", err))
		}
		writeJSON(w, r, http.StatusUnauthorized, dto.LoginResponse{Success: false, Message: msgLoginFailed})
		return
	}

	h.auth.SetCookie(w, token)
	writeJSON(w, r, http.StatusOK, dto.LoginResponse{Success: true})
}

// Logout handles POST /api/public/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.ClearCookie(w)
	writeJSON(w, r, http.StatusOK, dto.LoginResponse{Success: true})
}
