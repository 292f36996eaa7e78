package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-backend/internal/dto/request"
	"shop-backend/internal/usecase"
	"shop-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// AddItem handles POST /cart. The cart is always the caller's own, resolved
// from the access token.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "access_denied", "Access denied")
		return
	}

	var req request.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_body", "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseUnprocessable(w, "validation_failed", "Validation failed", errs)
		return
	}

	result, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Cart updated successfully", result)
}

// GetOwn handles GET /cart
func (h *CartHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "access_denied", "Access denied")
		return
	}

	result, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved successfully", result)
}

// GetAll handles GET /cart/all (admin only)
func (h *CartHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllCarts(r.Context(), listParams(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Carts retrieved successfully", result)
}

// Delete handles DELETE /cart/{id}
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid cart id", nil)
		return
	}

	if err := h.service.DeleteCart(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Cart deleted successfully", nil)
}
