package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/middleware"
	"github.com/obaro89/afridev-backend/internal/service"
	"github.com/obaro89/afridev-backend/internal/transport"
)

// ProfileHandler exposes the profile aggregate and the GitHub lookup.
type ProfileHandler struct {
	S      *service.ProfileService
	GitHub *service.GitHubClient
}

func NewProfileHandler(s *service.ProfileService, gh *service.GitHubClient) *ProfileHandler {
	return &ProfileHandler{S: s, GitHub: gh}
}

func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.S.GetMine(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

// Upsert handles POST /api/profile. Social links arrive as flat fields.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Company        string `json:"company"`
		Website        string `json:"website"`
		Location       string `json:"location"`
		Bio            string `json:"bio"`
		Status         string `json:"status"`
		GitHubUsername string `json:"githubusername"`
		Skills         csv    `json:"skills"`
		YouTube        string `json:"youtube"`
		Twitter        string `json:"twitter"`
		Facebook       string `json:"facebook"`
		LinkedIn       string `json:"linkedin"`
		Instagram      string `json:"instagram"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	p, err := h.S.Upsert(r.Context(), middleware.UserID(r.Context()), domain.ProfileFields{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GitHubUsername: req.GitHubUsername,
		Skills:         string(req.Skills),
		Social: domain.Social{
			YouTube:   req.YouTube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			LinkedIn:  req.LinkedIn,
			Instagram: req.Instagram,
		},
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.S.List(r.Context())
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.S.GetByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

// Delete removes the caller's profile and account.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.S.Delete(r.Context(), middleware.UserID(r.Context())); err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteMsg(w, http.StatusOK, "User deleted")
}

type datedEntry struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Company  string `json:"company"`
		Location string `json:"location"`
		datedEntry
	}
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	p, err := h.S.AddExperience(r.Context(), middleware.UserID(r.Context()), domain.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	p, err := h.S.RemoveExperience(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "exp_id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		datedEntry
	}
	if err := decodeJSON(w, r, &req); err != nil {
		transport.WriteError(w, r, err)
		return
	}

	p, err := h.S.AddEducation(r.Context(), middleware.UserID(r.Context()), domain.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	p, err := h.S.RemoveEducation(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "edu_id"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

// GitHubRepos relays the upstream repository list unchanged.
func (h *ProfileHandler) GitHubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.GitHub.Repos(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		transport.WriteError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, repos)
}
