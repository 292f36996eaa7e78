package usecase

import (
	"shop-backend/internal/data/repository"
	"shop-backend/pkg/mailer"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles all use cases behind one constructor so wiring stays in
// a single place.
type Service struct {
	Auth    AuthService
	Product ProductService
	Cart    CartService
	User    UserService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	jwt *utils.JWTManager,
	mail mailer.Mailer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, jwt, mail, log),
		Product: NewProductService(repo, log),
		Cart:    NewCartService(repo, log),
		User:    NewUserService(repo, config, log),
	}
}
