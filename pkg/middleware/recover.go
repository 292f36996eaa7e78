package middleware

import (
	"net/http"

	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 instead of killing the server.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					utils.ResponseInternalError(w, "Something went wrong")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
