package middleware

import (
	"net/http"
	"strings"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT verifies the Bearer access token and puts the subject user id on
// the request context. The "Bearer " prefix is mandatory; a bare token is
// rejected.
func AuthJWT(jwtManager *utils.JWTManager, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "access_denied", "Access denied")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "access_denied", "Access denied")
				return
			}

			userID, err := jwtManager.VerifyAccessToken(parts[1])
			if err != nil {
				log.Warn("Access token rejected", zap.Error(err))
				utils.ResponseUnauthorized(w, "access_denied", "Access denied")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to callers whose stored role is in the allow
// list. The role is read from the database on every request, so a demotion
// takes effect immediately even for tokens issued before it.
func RequireRole(users repository.UserRepository, log *zap.Logger, roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "access_denied", "Access denied")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				log.Error("Failed to load user for role check",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Something went wrong")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "access_denied", "Access denied")
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Warn("Role not allowed",
				zap.String("user_id", userID.String()),
				zap.String("role", string(user.Role)),
			)
			utils.ResponseForbidden(w, "not_authorized", "You don't have access to this resource")
		})
	}
}
