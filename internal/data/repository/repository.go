package repository

import (
	"errors"

	"naryn-restaurants/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User            UserRepository
	Restaurant      RestaurantRepository
	Amenity         AmenityRepository
	CuisineType     CuisineTypeRepository
	PaymentMethod   PaymentMethodRepository
	ServiceLanguage ServiceLanguageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:            NewUserRepository(db, log),
		Restaurant:      NewRestaurantRepository(db, log),
		Amenity:         NewAmenityRepository(db, log),
		CuisineType:     NewCuisineTypeRepository(db, log),
		PaymentMethod:   NewPaymentMethodRepository(db, log),
		ServiceLanguage: NewServiceLanguageRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation (23505)
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
