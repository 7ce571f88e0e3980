package entity

type Restaurant struct {
	ID                       int64    `db:"restaurant_id"`
	Name                     string   `db:"name"`
	Address                  *string  `db:"address"`
	ContactGeneral           *string  `db:"contact_general"`
	ContactUCA               *string  `db:"contact_uca"`
	DeliveryAvailable        bool     `db:"delivery_available"`
	DeliveryZoneID           *int64   `db:"delivery_zone_id"`
	BoothCapacity            *int     `db:"booth_capacity"`
	HallCapacity             *int     `db:"hall_capacity"`
	TableCapacity            *int     `db:"table_capacity"`
	Entertainment            *string  `db:"entertainment"`
	SmokingPolicyID          *int64   `db:"smoking_policy_id"`
	AlcoholPolicyID          *int64   `db:"alcohol_policy_id"`
	AverageBill              *float64 `db:"average_bill"`
	RestroomAvailable        bool     `db:"restroom_available"`
	SocialInstagram          *string  `db:"social_instagram"`
	SurveillanceCamera       bool     `db:"surveillance_camera"`
	YearEstablished          *int     `db:"year_established"`
	Certificates             *string  `db:"certificates"`
	OwnerID                  int64    `db:"owner_id"`
	OperatingHoursID         *int64   `db:"operating_hours_id"`
	ServiceChargeID          *int64   `db:"service_charge_id"`
	TableReservationPolicyID *int64   `db:"table_reservation_policy_id"`
}

// AssociationSets kumpulan id relasi many-to-many milik satu restaurant.
// Ditulis hanya saat create, satu transaksi dengan row restaurant.
type AssociationSets struct {
	AmenityIDs       []int64
	CuisineTypeIDs   []int64
	PaymentMethodIDs []int64
	LanguageIDs      []int64
}

// RestaurantSummary read model untuk listing, nama zone/policy sudah di-join
type RestaurantSummary struct {
	ID                int64    `db:"restaurant_id"`
	Name              string   `db:"name"`
	Address           *string  `db:"address"`
	ContactGeneral    *string  `db:"contact_general"`
	DeliveryAvailable bool     `db:"delivery_available"`
	DeliveryZone      *string  `db:"delivery_zone"`
	SmokingPolicy     *string  `db:"smoking_policy"`
	AlcoholPolicy     *string  `db:"alcohol_policy"`
	AverageBill       *float64 `db:"average_bill"`
}
