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

// CartRoutes registers cart routes. Every route needs a valid token; the
// list-all view is for admins only.
func CartRoutes(router *chi.Mux, handler *adaptor.CartHandler, repo *repository.Repository, jwtManager *utils.JWTManager, log *zap.Logger) {
	router.Route("/cart", func(r chi.Router) {
		r.Use(middleware.AuthJWT(jwtManager, log))

		r.Get("/", handler.GetOwn)
		r.Post("/", handler.AddItem)
		r.Delete("/{id}", handler.Delete)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(repo.User, log, entity.RoleAdmin))

			r.Get("/all", handler.GetAll)
		})
	})
}
