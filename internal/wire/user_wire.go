package wire

import (
	"shop-backend/internal/adaptor"
	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserRoutes registers account administration routes, all admin-gated.
func UserRoutes(router *chi.Mux, handler *adaptor.UserHandler, repo *repository.Repository, jwtManager *utils.JWTManager, log *zap.Logger) {
	router.Route("/user", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtManager, log))
		r.Use(middleware.RequireRole(repo.User, log, entity.RoleAdmin))

		r.Get("/", handler.GetAll)
		r.Get("/{id}", handler.GetByID)
		r.Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}
