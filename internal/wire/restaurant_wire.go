package wire

import (
	"naryn-restaurants/internal/adaptor"
	"naryn-restaurants/pkg/middleware"
	"naryn-restaurants/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireRestaurant configures restaurant routes.
// Reads are public, mutations require a bearer token.
func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT, log)

	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/restaurants", restaurantHandler.GetRestaurants)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurantByID)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/restaurants", restaurantHandler.CreateRestaurant)
	r.With(auth).Put("/api/restaurants/{id}", restaurantHandler.UpdateRestaurant)
	r.With(auth).Delete("/api/restaurants/{id}", restaurantHandler.DeleteRestaurant)
}
