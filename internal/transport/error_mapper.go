package transport

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/observability"
)

// profileScoped not-found errors keep the 400 status existing clients expect.
var profileScoped = []error{
	domain.ErrProfileNotFound,
	domain.ErrProfileMissing,
	domain.ErrExperienceNotFound,
}

// WriteError renders err according to its domain.Kind. Untagged errors are
// logged and hidden behind a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		observability.GetLogger(r.Context()).Error("internal_error",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		WriteMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	switch de.Kind {
	case domain.KindValidation, domain.KindConflict:
		fields := de.Fields
		if len(fields) == 0 {
			fields = []domain.FieldError{{Msg: de.Msg}}
		}
		WriteFieldErrors(w, http.StatusBadRequest, fields)
	case domain.KindUnauthenticated, domain.KindInvalidToken, domain.KindUnauthorized:
		WriteMsg(w, http.StatusUnauthorized, de.Msg)
	case domain.KindNotFound:
		WriteMsg(w, notFoundStatus(err), de.Msg)
	case domain.KindUpstream:
		WriteMsg(w, http.StatusNotFound, de.Msg)
	default:
		observability.GetLogger(r.Context()).Error("internal_error", zap.Error(err))
		WriteMsg(w, http.StatusInternalServerError, "Server Error")
	}
}

func notFoundStatus(err error) int {
	for _, target := range profileScoped {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusNotFound
}
