package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kasuboski/moviedb/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// LogMiddleware attaches a request scoped logger carrying the path and a request id
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			log := s.baseLogger.With("request_path", r.URL.Path, "method", r.Method, "id", id)
			w.Header().Set(requestIDHeader, id)
			log.Debug("handling request")
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}
