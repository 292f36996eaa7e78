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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Create handles POST /user
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_body", "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseUnprocessable(w, "validation_failed", "Validation failed", errs)
		return
	}

	result, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "User created successfully", result)
}

// GetByID handles GET /user/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid user id", nil)
		return
	}

	result, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", result)
}

// GetAll handles GET /user
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllUsers(r.Context(), listParams(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", result)
}

// Update handles PUT /user/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid user id", nil)
		return
	}

	var req request.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid_body", "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ResponseUnprocessable(w, "validation_failed", "Validation failed", errs)
		return
	}

	result, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", result)
}

// Delete handles DELETE /user/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid_id", "Invalid user id", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}
