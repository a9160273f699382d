package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/observability"
)

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.Log.Error("failed to encode response", zap.Error(err))
	}
}

// WriteMsg writes the {"msg": ...} body used for every non-validation outcome.
func WriteMsg(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"msg": msg})
}

// WriteFieldErrors writes the {"errors": [...]} body for rejected input.
func WriteFieldErrors(w http.ResponseWriter, status int, fields []domain.FieldError) {
	WriteJSON(w, status, map[string][]domain.FieldError{"errors": fields})
}
