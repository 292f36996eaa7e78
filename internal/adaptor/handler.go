package adaptor

import (
	"errors"
	"net/http"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

// Handler bundles all HTTP adaptors.
type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Cart    *CartHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Cart:    NewCartHandler(service.Cart, log),
		User:    NewUserHandler(service.User, log),
	}
}

// respondError maps a domain error to its HTTP status and stable code.
// Unrecognized errors have already been logged with context at the layer
// that produced them, so here they collapse to a plain 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, entity.ErrEmailExists):
		utils.ResponseConflict(w, "email_exists", err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "invalid_credentials", err.Error())
	case errors.Is(err, entity.ErrAccessDenied):
		utils.ResponseUnauthorized(w, "access_denied", err.Error())
	case errors.Is(err, entity.ErrNotAuthorized):
		utils.ResponseForbidden(w, "not_authorized", err.Error())
	case errors.Is(err, entity.ErrUserNotFound):
		utils.ResponseNotFound(w, "user_not_found", err.Error())
	case errors.Is(err, entity.ErrProductNotFound):
		utils.ResponseNotFound(w, "product_not_found", err.Error())
	case errors.Is(err, entity.ErrCartNotFound):
		utils.ResponseNotFound(w, "cart_not_found", err.Error())
	case errors.Is(err, entity.ErrProductMismatch):
		utils.ResponseUnprocessable(w, "product_mismatch", err.Error(), nil)
	case errors.Is(err, entity.ErrInvalidResetLink):
		utils.ResponseBadRequest(w, "invalid_reset_link", err.Error(), nil)
	default:
		log.Error("Unhandled error", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}

// listParams reads the shared ?page=&limit=&order=&sort= query parameters.
func listParams(r *http.Request) *request.ListRequest {
	return &request.ListRequest{
		Page:  utils.ParseInt(r.URL.Query().Get("page"), 1),
		Limit: utils.ParseInt(r.URL.Query().Get("limit"), 10),
		Order: r.URL.Query().Get("order"),
		Sort:  r.URL.Query().Get("sort"),
	}
}
