package repository

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/pkg/database"

	"go.uber.org/zap"
)

type ServiceLanguageRepository interface {
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.ServiceLanguage, error)
}

type serviceLanguageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceLanguageRepository(db database.PgxIface, log *zap.Logger) ServiceLanguageRepository {
	return &serviceLanguageRepository{
		db:  db,
		log: log.With(zap.String("repository", "service_language")),
	}
}

func (r *serviceLanguageRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.ServiceLanguage, error) {
	query := `
		SELECT sl.language_id, sl.language_name
		FROM service_languages sl
		INNER JOIN restaurant_service_languages rsl ON sl.language_id = rsl.language_id
		WHERE rsl.restaurant_id = $1
		ORDER BY sl.language_name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find service languages by restaurant ID",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find service languages by restaurant id: %w", err)
	}
	defer rows.Close()

	var languages []*entity.ServiceLanguage
	for rows.Next() {
		var language entity.ServiceLanguage
		if err := rows.Scan(&language.ID, &language.Name); err != nil {
			r.log.Error("Failed to scan service language row", zap.Error(err))
			return nil, fmt.Errorf("scan service language row: %w", err)
		}
		languages = append(languages, &language)
	}

	return languages, nil
}
