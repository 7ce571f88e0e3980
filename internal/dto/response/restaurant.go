package response

import (
	"naryn-restaurants/internal/data/entity"
)

type RestaurantSummaryResponse struct {
	ID                int64    `json:"restaurant_id"`
	Name              string   `json:"name"`
	Address           *string  `json:"address,omitempty"`
	ContactGeneral    *string  `json:"contact_general,omitempty"`
	DeliveryAvailable bool     `json:"delivery_available"`
	DeliveryZone      *string  `json:"delivery_zone,omitempty"`
	SmokingPolicy     *string  `json:"smoking_policy,omitempty"`
	AlcoholPolicy     *string  `json:"alcohol_policy,omitempty"`
	AverageBill       *float64 `json:"average_bill,omitempty"`
}

// RestaurantDetailResponse: scalar row + empat association name lists
type RestaurantDetailResponse struct {
	ID                       int64    `json:"restaurant_id"`
	Name                     string   `json:"name"`
	Address                  *string  `json:"address,omitempty"`
	ContactGeneral           *string  `json:"contact_general,omitempty"`
	ContactUCA               *string  `json:"contact_uca,omitempty"`
	DeliveryAvailable        bool     `json:"delivery_available"`
	DeliveryZoneID           *int64   `json:"delivery_zone_id,omitempty"`
	BoothCapacity            *int     `json:"booth_capacity,omitempty"`
	HallCapacity             *int     `json:"hall_capacity,omitempty"`
	TableCapacity            *int     `json:"table_capacity,omitempty"`
	Entertainment            *string  `json:"entertainment,omitempty"`
	SmokingPolicyID          *int64   `json:"smoking_policy_id,omitempty"`
	AlcoholPolicyID          *int64   `json:"alcohol_policy_id,omitempty"`
	AverageBill              *float64 `json:"average_bill,omitempty"`
	RestroomAvailable        bool     `json:"restroom_available"`
	SocialInstagram          *string  `json:"social_instagram,omitempty"`
	SurveillanceCamera       bool     `json:"surveillance_camera"`
	YearEstablished          *int     `json:"year_established,omitempty"`
	Certificates             *string  `json:"certificates,omitempty"`
	OwnerID                  int64    `json:"owner_id"`
	OperatingHoursID         *int64   `json:"operating_hours_id,omitempty"`
	ServiceChargeID          *int64   `json:"service_charge_id,omitempty"`
	TableReservationPolicyID *int64   `json:"table_reservation_policy_id,omitempty"`

	Amenities        []string `json:"amenities"`
	Cuisines         []string `json:"cuisines"`
	PaymentMethods   []string `json:"payment_methods"`
	ServiceLanguages []string `json:"service_languages"`
}

type RestaurantCreatedResponse struct {
	RestaurantID int64 `json:"restaurant_id"`
}

// Helper converters

func RestaurantSummaryToResponse(summary *entity.RestaurantSummary) RestaurantSummaryResponse {
	return RestaurantSummaryResponse{
		ID:                summary.ID,
		Name:              summary.Name,
		Address:           summary.Address,
		ContactGeneral:    summary.ContactGeneral,
		DeliveryAvailable: summary.DeliveryAvailable,
		DeliveryZone:      summary.DeliveryZone,
		SmokingPolicy:     summary.SmokingPolicy,
		AlcoholPolicy:     summary.AlcoholPolicy,
		AverageBill:       summary.AverageBill,
	}
}

func RestaurantToDetailResponse(restaurant *entity.Restaurant, amenities, cuisines, paymentMethods, languages []string) RestaurantDetailResponse {
	return RestaurantDetailResponse{
		ID:                       restaurant.ID,
		Name:                     restaurant.Name,
		Address:                  restaurant.Address,
		ContactGeneral:           restaurant.ContactGeneral,
		ContactUCA:               restaurant.ContactUCA,
		DeliveryAvailable:        restaurant.DeliveryAvailable,
		DeliveryZoneID:           restaurant.DeliveryZoneID,
		BoothCapacity:            restaurant.BoothCapacity,
		HallCapacity:             restaurant.HallCapacity,
		TableCapacity:            restaurant.TableCapacity,
		Entertainment:            restaurant.Entertainment,
		SmokingPolicyID:          restaurant.SmokingPolicyID,
		AlcoholPolicyID:          restaurant.AlcoholPolicyID,
		AverageBill:              restaurant.AverageBill,
		RestroomAvailable:        restaurant.RestroomAvailable,
		SocialInstagram:          restaurant.SocialInstagram,
		SurveillanceCamera:       restaurant.SurveillanceCamera,
		YearEstablished:          restaurant.YearEstablished,
		Certificates:             restaurant.Certificates,
		OwnerID:                  restaurant.OwnerID,
		OperatingHoursID:         restaurant.OperatingHoursID,
		ServiceChargeID:          restaurant.ServiceChargeID,
		TableReservationPolicyID: restaurant.TableReservationPolicyID,
		Amenities:                amenities,
		Cuisines:                 cuisines,
		PaymentMethods:           paymentMethods,
		ServiceLanguages:         languages,
	}
}
