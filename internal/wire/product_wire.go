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

// ProductRoutes registers catalog routes. Reading needs a valid token;
// writing additionally needs the admin or productManager role.
func ProductRoutes(router *chi.Mux, handler *adaptor.ProductHandler, repo *repository.Repository, jwtManager *utils.JWTManager, log *zap.Logger) {
	router.Route("/product", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtManager, log))

		r.Get("/", handler.GetAll)
		r.Get("/{id}", handler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(repo.User, log, entity.RoleAdmin, entity.RoleProductManager))

			r.Post("/", handler.Create)
			r.Put("/{id}", handler.Update)
			r.Delete("/{id}", handler.Delete)
		})
	})
}
