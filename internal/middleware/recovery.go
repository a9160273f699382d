package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/obaro89/afridev-backend/internal/observability"
	"github.com/obaro89/afridev-backend/internal/transport"
)

func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					observability.GetLogger(r.Context()).Error("panic_recovered",
						zap.Any("error", rec),
						zap.String("request_id", chimw.GetReqID(r.Context())),
						zap.Stack("stack"),
					)
					transport.WriteMsg(w, http.StatusInternalServerError, "Server Error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
