package adaptor

import (
	"naryn-restaurants/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Restaurant *RestaurantHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Restaurant: NewRestaurantHandler(service.Restaurant, log),
	}
}
