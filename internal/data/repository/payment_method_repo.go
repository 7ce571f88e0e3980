package repository

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/pkg/database"

	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.PaymentMethod, error)
}

type paymentMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func (r *paymentMethodRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT pm.payment_method_id, pm.method_name
		FROM payment_methods pm
		INNER JOIN restaurant_payment_methods rpm ON pm.payment_method_id = rpm.payment_method_id
		WHERE rpm.restaurant_id = $1
		ORDER BY pm.method_name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find payment methods by restaurant ID",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find payment methods by restaurant id: %w", err)
	}
	defer rows.Close()

	var methods []*entity.PaymentMethod
	for rows.Next() {
		var method entity.PaymentMethod
		if err := rows.Scan(&method.ID, &method.Name); err != nil {
			r.log.Error("Failed to scan payment method row", zap.Error(err))
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		methods = append(methods, &method)
	}

	return methods, nil
}
