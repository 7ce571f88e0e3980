package repository

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/pkg/database"

	"go.uber.org/zap"
)

type CuisineTypeRepository interface {
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.CuisineType, error)
}

type cuisineTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCuisineTypeRepository(db database.PgxIface, log *zap.Logger) CuisineTypeRepository {
	return &cuisineTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "cuisine_type")),
	}
}

func (r *cuisineTypeRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.CuisineType, error) {
	query := `
		SELECT ct.cuisine_type_id, ct.cuisine_name
		FROM cuisine_types ct
		INNER JOIN restaurant_cuisine_types rct ON ct.cuisine_type_id = rct.cuisine_type_id
		WHERE rct.restaurant_id = $1
		ORDER BY ct.cuisine_name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find cuisine types by restaurant ID",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find cuisine types by restaurant id: %w", err)
	}
	defer rows.Close()

	var cuisineTypes []*entity.CuisineType
	for rows.Next() {
		var cuisineType entity.CuisineType
		if err := rows.Scan(&cuisineType.ID, &cuisineType.Name); err != nil {
			r.log.Error("Failed to scan cuisine type row", zap.Error(err))
			return nil, fmt.Errorf("scan cuisine type row: %w", err)
		}
		cuisineTypes = append(cuisineTypes, &cuisineType)
	}

	return cuisineTypes, nil
}
