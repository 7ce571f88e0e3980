package usecase

import (
	"naryn-restaurants/internal/data/repository"
	"naryn-restaurants/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Restaurant RestaurantService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Restaurant: NewRestaurantService(repo, log),
	}
}
