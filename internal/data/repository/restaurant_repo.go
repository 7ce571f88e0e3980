package repository

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RestaurantRepository interface {
	// Write path. Insert restoran + seluruh association sets dalam satu transaksi.
	CreateWithAssociations(ctx context.Context, restaurant *entity.Restaurant, sets entity.AssociationSets) (int64, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id int64) error

	// Read path
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	FindAllSummaries(ctx context.Context) ([]*entity.RestaurantSummary, error)
	CountByOwnerID(ctx context.Context, ownerID int64) (int64, error)
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

// CreateWithAssociations inserts the scalar row plus the four join-table sets
// atomically. Any failure rolls back the whole write, so a reader never sees a
// restaurant without its associations.
func (r *restaurantRepository) CreateWithAssociations(ctx context.Context, restaurant *entity.Restaurant, sets entity.AssociationSets) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return 0, fmt.Errorf("begin create restaurant tx: %w", err)
	}

	query := `
		INSERT INTO restaurants (name, address, contact_general, contact_uca, delivery_available,
		                         delivery_zone_id, booth_capacity, hall_capacity, table_capacity,
		                         entertainment, smoking_policy_id, alcohol_policy_id, average_bill,
		                         restroom_available, social_instagram, surveillance_camera,
		                         year_established, certificates, owner_id, operating_hours_id,
		                         service_charge_id, table_reservation_policy_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING restaurant_id
	`

	var restaurantID int64
	err = tx.QueryRow(ctx, query,
		restaurant.Name,
		restaurant.Address,
		restaurant.ContactGeneral,
		restaurant.ContactUCA,
		restaurant.DeliveryAvailable,
		restaurant.DeliveryZoneID,
		restaurant.BoothCapacity,
		restaurant.HallCapacity,
		restaurant.TableCapacity,
		restaurant.Entertainment,
		restaurant.SmokingPolicyID,
		restaurant.AlcoholPolicyID,
		restaurant.AverageBill,
		restaurant.RestroomAvailable,
		restaurant.SocialInstagram,
		restaurant.SurveillanceCamera,
		restaurant.YearEstablished,
		restaurant.Certificates,
		restaurant.OwnerID,
		restaurant.OperatingHoursID,
		restaurant.ServiceChargeID,
		restaurant.TableReservationPolicyID,
	).Scan(&restaurantID)

	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to insert restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
			zap.Int64("owner_id", restaurant.OwnerID),
		)
		return 0, fmt.Errorf("insert restaurant %s: %w", restaurant.Name, err)
	}

	// Join-table bulk inserts. Empty set tidak menulis apa-apa.
	joins := []struct {
		table  string
		column string
		ids    []int64
	}{
		{"restaurant_amenities", "amenity_id", sets.AmenityIDs},
		{"restaurant_cuisine_types", "cuisine_type_id", sets.CuisineTypeIDs},
		{"restaurant_payment_methods", "payment_method_id", sets.PaymentMethodIDs},
		{"restaurant_service_languages", "language_id", sets.LanguageIDs},
	}

	for _, join := range joins {
		if err := insertAssociations(ctx, tx, join.table, join.column, restaurantID, join.ids); err != nil {
			tx.Rollback(ctx)
			r.log.Error("Failed to insert restaurant associations",
				zap.Error(err),
				zap.Int64("restaurant_id", restaurantID),
				zap.String("table", join.table),
			)
			return 0, fmt.Errorf("insert %s for restaurant %d: %w", join.table, restaurantID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to commit restaurant create",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return 0, fmt.Errorf("commit create restaurant %d: %w", restaurantID, err)
	}

	r.log.Info("Restaurant created",
		zap.Int64("restaurant_id", restaurantID),
		zap.Int64("owner_id", restaurant.OwnerID),
		zap.Int("amenities", len(sets.AmenityIDs)),
		zap.Int("cuisine_types", len(sets.CuisineTypeIDs)),
		zap.Int("payment_methods", len(sets.PaymentMethodIDs)),
		zap.Int("languages", len(sets.LanguageIDs)),
	)

	return restaurantID, nil
}

// insertAssociations melakukan satu bulk insert multi-VALUES ke join table
func insertAssociations(ctx context.Context, tx pgx.Tx, table, column string, restaurantID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf("INSERT INTO %s (restaurant_id, %s) VALUES ", table, column)
	args := []interface{}{}

	for i, id := range ids {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
		args = append(args, restaurantID, id)
	}

	_, err := tx.Exec(ctx, query, args...)
	return err
}

func (r *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, address, contact_general, contact_uca, delivery_available,
		       delivery_zone_id, booth_capacity, hall_capacity, table_capacity, entertainment,
		       smoking_policy_id, alcohol_policy_id, average_bill, restroom_available,
		       social_instagram, surveillance_camera, year_established, certificates, owner_id,
		       operating_hours_id, service_charge_id, table_reservation_policy_id
		FROM restaurants
		WHERE restaurant_id = $1
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.ContactGeneral,
		&restaurant.ContactUCA,
		&restaurant.DeliveryAvailable,
		&restaurant.DeliveryZoneID,
		&restaurant.BoothCapacity,
		&restaurant.HallCapacity,
		&restaurant.TableCapacity,
		&restaurant.Entertainment,
		&restaurant.SmokingPolicyID,
		&restaurant.AlcoholPolicyID,
		&restaurant.AverageBill,
		&restaurant.RestroomAvailable,
		&restaurant.SocialInstagram,
		&restaurant.SurveillanceCamera,
		&restaurant.YearEstablished,
		&restaurant.Certificates,
		&restaurant.OwnerID,
		&restaurant.OperatingHoursID,
		&restaurant.ServiceChargeID,
		&restaurant.TableReservationPolicyID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return nil, fmt.Errorf("find restaurant by ID %d: %w", id, err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindAllSummaries(ctx context.Context) ([]*entity.RestaurantSummary, error) {
	query := `
		SELECT r.restaurant_id, r.name, r.address, r.contact_general, r.delivery_available,
		       dz.zone_name AS delivery_zone, sp.policy_name AS smoking_policy,
		       ap.policy_name AS alcohol_policy, r.average_bill
		FROM restaurants r
		LEFT JOIN delivery_zones dz ON r.delivery_zone_id = dz.delivery_zone_id
		LEFT JOIN smoking_policies sp ON r.smoking_policy_id = sp.smoking_policy_id
		LEFT JOIN alcohol_policies ap ON r.alcohol_policy_id = ap.alcohol_policy_id
		ORDER BY r.restaurant_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find restaurant summaries", zap.Error(err))
		return nil, fmt.Errorf("find restaurant summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*entity.RestaurantSummary
	for rows.Next() {
		var summary entity.RestaurantSummary
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Address,
			&summary.ContactGeneral,
			&summary.DeliveryAvailable,
			&summary.DeliveryZone,
			&summary.SmokingPolicy,
			&summary.AlcoholPolicy,
			&summary.AverageBill,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant summary row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant summary row: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate restaurant summaries: %w", err)
	}

	return summaries, nil
}

func (r *restaurantRepository) CountByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE owner_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count restaurants by owner ID",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
		)
		return 0, fmt.Errorf("count restaurants by owner ID %d: %w", ownerID, err)
	}

	return count, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, address = $3, contact_general = $4, contact_uca = $5,
		    delivery_available = $6, delivery_zone_id = $7, booth_capacity = $8,
		    hall_capacity = $9, table_capacity = $10, entertainment = $11,
		    smoking_policy_id = $12, alcohol_policy_id = $13, average_bill = $14,
		    restroom_available = $15, social_instagram = $16, surveillance_camera = $17,
		    year_established = $18, certificates = $19, operating_hours_id = $20,
		    service_charge_id = $21, table_reservation_policy_id = $22
		WHERE restaurant_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.ContactGeneral,
		restaurant.ContactUCA,
		restaurant.DeliveryAvailable,
		restaurant.DeliveryZoneID,
		restaurant.BoothCapacity,
		restaurant.HallCapacity,
		restaurant.TableCapacity,
		restaurant.Entertainment,
		restaurant.SmokingPolicyID,
		restaurant.AlcoholPolicyID,
		restaurant.AverageBill,
		restaurant.RestroomAvailable,
		restaurant.SocialInstagram,
		restaurant.SurveillanceCamera,
		restaurant.YearEstablished,
		restaurant.Certificates,
		restaurant.OperatingHoursID,
		restaurant.ServiceChargeID,
		restaurant.TableReservationPolicyID,
	)

	if err != nil {
		r.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurant.ID),
		)
		return fmt.Errorf("update restaurant %d: %w", restaurant.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %d not found", restaurant.ID)
	}

	return nil
}

// Delete removes the restaurant row; join rows cascade via schema rules
func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM restaurants WHERE restaurant_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return fmt.Errorf("delete restaurant %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %d not found", id)
	}

	r.log.Info("Restaurant deleted", zap.Int64("restaurant_id", id))
	return nil
}
