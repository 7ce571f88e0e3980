package repository

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/pkg/database"

	"go.uber.org/zap"
)

type AmenityRepository interface {
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Amenity, error)
}

type amenityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAmenityRepository(db database.PgxIface, log *zap.Logger) AmenityRepository {
	return &amenityRepository{
		db:  db,
		log: log.With(zap.String("repository", "amenity")),
	}
}

func (r *amenityRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Amenity, error) {
	query := `
		SELECT a.amenity_id, a.amenity_name
		FROM amenities a
		INNER JOIN restaurant_amenities ra ON a.amenity_id = ra.amenity_id
		WHERE ra.restaurant_id = $1
		ORDER BY a.amenity_name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find amenities by restaurant ID",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find amenities by restaurant id: %w", err)
	}
	defer rows.Close()

	var amenities []*entity.Amenity
	for rows.Next() {
		var amenity entity.Amenity
		if err := rows.Scan(&amenity.ID, &amenity.Name); err != nil {
			r.log.Error("Failed to scan amenity row", zap.Error(err))
			return nil, fmt.Errorf("scan amenity row: %w", err)
		}
		amenities = append(amenities, &amenity)
	}

	return amenities, nil
}
