package wire

import (
	"time"

	"shop-backend/internal/adaptor"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/mailer"
	"shop-backend/pkg/middleware"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph: repositories in, router out.
func Wiring(repo *repository.Repository, config *utils.Config, log *zap.Logger) *App {
	jwtManager := utils.NewJWTManager(
		config.JWT.Secret,
		config.JWT.RefreshSecret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
		time.Duration(config.JWT.RefreshExpiryDays)*24*time.Hour,
	)

	mail := mailer.NewSMTPMailer(config.Email, log)

	service := usecase.NewService(repo, config, jwtManager, mail, log)
	handler := adaptor.NewHandler(service, log)

	router := chi.NewRouter()
	router.Use(middleware.Recover(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS)

	router.Get("/health", adaptor.HealthCheck)

	AuthRoutes(router, handler.Auth)
	ProductRoutes(router, handler.Product, repo, jwtManager, log)
	CartRoutes(router, handler.Cart, repo, jwtManager, log)
	UserRoutes(router, handler.User, repo, jwtManager, log)

	return &App{Router: router}
}
