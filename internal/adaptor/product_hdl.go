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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// Create handles POST /product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_body", "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseUnprocessable(w, "validation_failed", "Validation failed", errs)
		return
	}

	result, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Product created successfully", result)
}

// GetByID handles GET /product/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid product id", nil)
		return
	}

	result, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", result)
}

// GetAll handles GET /product
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllProducts(r.Context(), listParams(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", result)
}

// Update handles PUT /product/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid product id", nil)
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_body", "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseUnprocessable(w, "validation_failed", "Validation failed", errs)
		return
	}

	result, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", result)
}

// Delete handles DELETE /product/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid product id", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
