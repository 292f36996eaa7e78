package repository

import (
	"shop-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Product    ProductRepository
	Cart       CartRepository
	ResetToken ResetTokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Product:    NewProductRepository(db, log),
		Cart:       NewCartRepository(db, log),
		ResetToken: NewResetTokenRepository(db, log),
	}
}

// orderClause whitelists sortable timestamp columns and direction so query
// parameters never reach the SQL string unchecked.
func orderClause(order, sort string) string {
	switch order {
	case "created_at", "updated_at", "modified_on":
	default:
		order = "created_at"
	}

	if sort != "asc" && sort != "ASC" {
		sort = "DESC"
	} else {
		sort = "ASC"
	}

	return order + " " + sort
}
