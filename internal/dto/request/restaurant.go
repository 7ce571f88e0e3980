package request

type RestaurantRequest struct {
	Name                     string   `json:"name" validate:"required,min=1,max=200"`
	Address                  *string  `json:"address,omitempty"`
	ContactGeneral           *string  `json:"contact_general,omitempty"`
	ContactUCA               *string  `json:"contact_uca,omitempty"`
	DeliveryAvailable        bool     `json:"delivery_available"`
	DeliveryZoneID           *int64   `json:"delivery_zone_id,omitempty"`
	BoothCapacity            *int     `json:"booth_capacity,omitempty" validate:"omitempty,gte=0"`
	HallCapacity             *int     `json:"hall_capacity,omitempty" validate:"omitempty,gte=0"`
	TableCapacity            *int     `json:"table_capacity,omitempty" validate:"omitempty,gte=0"`
	Entertainment            *string  `json:"entertainment,omitempty"`
	SmokingPolicyID          *int64   `json:"smoking_policy_id,omitempty"`
	AlcoholPolicyID          *int64   `json:"alcohol_policy_id,omitempty"`
	AverageBill              *float64 `json:"average_bill,omitempty" validate:"omitempty,gte=0"`
	RestroomAvailable        bool     `json:"restroom_available"`
	SocialInstagram          *string  `json:"social_instagram,omitempty"`
	SurveillanceCamera       bool     `json:"surveillance_camera"`
	YearEstablished          *int     `json:"year_established,omitempty"`
	Certificates             *string  `json:"certificates,omitempty"`
	OwnerID                  *int64   `json:"owner_id,omitempty"`
	OperatingHoursID         *int64   `json:"operating_hours_id,omitempty"`
	ServiceChargeID          *int64   `json:"service_charge_id,omitempty"`
	TableReservationPolicyID *int64   `json:"table_reservation_policy_id,omitempty"`

	// Association sets, ditulis satu transaksi dengan row restaurant
	AmenityIDs       []int64 `json:"amenities,omitempty"`
	CuisineTypeIDs   []int64 `json:"cuisine_type_ids,omitempty"`
	PaymentMethodIDs []int64 `json:"payment_method_ids,omitempty"`
	LanguageIDs      []int64 `json:"language_ids,omitempty"`
}

// RestaurantUpdateRequest: allow-list eksplisit field yang boleh di-update.
// owner_id sengaja tidak termasuk, transfer kepemilikan bukan operasi yang didukung.
type RestaurantUpdateRequest struct {
	Name                     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address                  *string  `json:"address,omitempty"`
	ContactGeneral           *string  `json:"contact_general,omitempty"`
	ContactUCA               *string  `json:"contact_uca,omitempty"`
	DeliveryAvailable        *bool    `json:"delivery_available,omitempty"`
	DeliveryZoneID           *int64   `json:"delivery_zone_id,omitempty"`
	BoothCapacity            *int     `json:"booth_capacity,omitempty" validate:"omitempty,gte=0"`
	HallCapacity             *int     `json:"hall_capacity,omitempty" validate:"omitempty,gte=0"`
	TableCapacity            *int     `json:"table_capacity,omitempty" validate:"omitempty,gte=0"`
	Entertainment            *string  `json:"entertainment,omitempty"`
	SmokingPolicyID          *int64   `json:"smoking_policy_id,omitempty"`
	AlcoholPolicyID          *int64   `json:"alcohol_policy_id,omitempty"`
	AverageBill              *float64 `json:"average_bill,omitempty" validate:"omitempty,gte=0"`
	RestroomAvailable        *bool    `json:"restroom_available,omitempty"`
	SocialInstagram          *string  `json:"social_instagram,omitempty"`
	SurveillanceCamera       *bool    `json:"surveillance_camera,omitempty"`
	YearEstablished          *int     `json:"year_established,omitempty"`
	Certificates             *string  `json:"certificates,omitempty"`
	OperatingHoursID         *int64   `json:"operating_hours_id,omitempty"`
	ServiceChargeID          *int64   `json:"service_charge_id,omitempty"`
	TableReservationPolicyID *int64   `json:"table_reservation_policy_id,omitempty"`
}
