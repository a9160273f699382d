package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/obaro89/afridev-backend/internal/middleware"
	"github.com/obaro89/afridev-backend/internal/service"
	"github.com/obaro89/afridev-backend/internal/transport"
)

type PostHandler struct{ S *service.PostService }

func NewPostHandler(s *service.PostService) *PostHandler { return &PostHandler{s} }

type textRequest struct {
	Text string `json:"text"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	p, err := h.S.Create(r.Context(), middleware.UserID(r.Context()), req.Text)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.S.List(r.Context())
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.S.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.S.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteMsg(w, http.StatusOK, "Post removed")
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	likes, applied, err := h.S.Like(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if !applied {
		transport.WriteMsg(w, http.StatusOK, "Post has already been liked.")
		return
	}
	transport.WriteJSON(w, http.StatusOK, likes)
}

// Unlike answers 200 with an empty body when a like was removed.
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	removed, err := h.S.Unlike(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	if !removed {
		transport.WriteMsg(w, http.StatusOK, "Post has not been liked")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	comments, err := h.S.AddComment(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, comments)
}

func (h *PostHandler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	comments, err := h.S.RemoveComment(r.Context(), middleware.UserID(r.Context()),
		chi.URLParam(r, "id"), chi.URLParam(r, "comment_id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, comments)
}
