package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/internal/dto/request"
	"naryn-restaurants/internal/dto/response"
	"naryn-restaurants/internal/usecase"
	"naryn-restaurants/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log,
	}
}

// GetRestaurants handles GET /api/restaurants
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.GetRestaurants(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "Restaurants retrieved", restaurants)
}

// GetRestaurantByID handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		h.handleServiceError(w, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant retrieved", restaurant)
}

// CreateRestaurant handles POST /api/restaurants
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	requesterID, role, ok := h.requesterFromContext(w, r)
	if !ok {
		return
	}

	var req request.RestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	restaurantID, err := h.service.CreateRestaurant(r.Context(), requesterID, role, &req)
	if err != nil {
		h.handleServiceError(w, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "Restaurant and metadata created successfully",
		response.RestaurantCreatedResponse{RestaurantID: restaurantID})
}

// UpdateRestaurant handles PUT /api/restaurants/{id}
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	requesterID, role, ok := h.requesterFromContext(w, r)
	if !ok {
		return
	}

	var req request.RestaurantUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateRestaurant(r.Context(), restaurantID, requesterID, role, &req); err != nil {
		h.handleServiceError(w, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated successfully", nil)
}

// DeleteRestaurant handles DELETE /api/restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	requesterID, role, ok := h.requesterFromContext(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRestaurant(r.Context(), restaurantID, requesterID, role); err != nil {
		h.handleServiceError(w, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant deleted successfully", nil)
}

// parseID membaca path param {id}
func (h *RestaurantHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")

	restaurantID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid restaurant id", nil)
		return 0, false
	}

	return restaurantID, true
}

// requesterFromContext membaca identity hasil auth middleware
func (h *RestaurantHandler) requesterFromContext(w http.ResponseWriter, r *http.Request) (int64, entity.UserRole, bool) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Access denied")
		return 0, "", false
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Access denied")
		return 0, "", false
	}

	return requesterID, entity.UserRole(role), true
}

// handleServiceError maps sentinel errors to HTTP status
func (h *RestaurantHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, usecase.ErrAlreadyOwnsRestaurant):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
