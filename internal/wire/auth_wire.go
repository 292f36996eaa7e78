package wire

import (
	"shop-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// AuthRoutes registers the account routes. All of them are public:
// change-password authenticates with the old password and the reset
// confirmation authenticates with the emailed token.
func AuthRoutes(router *chi.Mux, handler *adaptor.AuthHandler) {
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.Refresh)
		r.Post("/change-password", handler.ChangePassword)
		r.Post("/reset-password", handler.ResetPassword)
		r.Post("/reset-password/{userId}/{token}", handler.ConfirmReset)
	})
}
