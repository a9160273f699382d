package handler

import (
	"net/http"

	"github.com/obaro89/afridev-backend/internal/middleware"
	"github.com/obaro89/afridev-backend/internal/service"
	"github.com/obaro89/afridev-backend/internal/transport"
)

type AuthHandler struct{ S *service.AuthService }

func NewAuthHandler(s *service.AuthService) *AuthHandler { return &AuthHandler{s} }

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	tok, err := h.S.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, tokenResponse{Token: tok})
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	tok, err := h.S.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, tokenResponse{Token: tok})
}

// Me handles GET /api/auth.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.S.Me(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, u)
}
