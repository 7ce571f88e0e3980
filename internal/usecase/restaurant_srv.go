package usecase

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/internal/data/repository"
	"naryn-restaurants/internal/dto/request"
	"naryn-restaurants/internal/dto/response"
	"naryn-restaurants/pkg/utils"

	"go.uber.org/zap"
)

type RestaurantService interface {
	GetRestaurants(ctx context.Context) ([]response.RestaurantSummaryResponse, error)
	GetRestaurantByID(ctx context.Context, restaurantID int64) (*response.RestaurantDetailResponse, error)
	CreateRestaurant(ctx context.Context, requesterID int64, role entity.UserRole, req *request.RestaurantRequest) (int64, error)
	UpdateRestaurant(ctx context.Context, restaurantID, requesterID int64, role entity.UserRole, req *request.RestaurantUpdateRequest) error
	DeleteRestaurant(ctx context.Context, restaurantID, requesterID int64, role entity.UserRole) error
}

type restaurantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRestaurantService(
	repo *repository.Repository,
	log *zap.Logger,
) RestaurantService {
	return &restaurantService{
		repo: repo,
		log:  log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]response.RestaurantSummaryResponse, error) {
	summaries, err := s.repo.Restaurant.FindAllSummaries(ctx)
	if err != nil {
		s.log.Error("Failed to get restaurant summaries", zap.Error(err))
		return nil, fmt.Errorf("get restaurants: %w", err)
	}

	responses := make([]response.RestaurantSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = response.RestaurantSummaryToResponse(summary)
	}

	s.log.Debug("Restaurants retrieved", zap.Int("count", len(responses)))

	return responses, nil
}

// GetRestaurantByID composes the scalar row with the four association name
// lists. The reads are independent; no transaction for the read path.
func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID int64) (*response.RestaurantDetailResponse, error) {
	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		s.log.Error("Failed to get restaurant by ID",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant by id: %w", err)
	}
	if restaurant == nil {
		return nil, ErrNotFound
	}

	amenities, err := s.repo.Amenity.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant amenities: %w", err)
	}

	cuisines, err := s.repo.CuisineType.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant cuisine types: %w", err)
	}

	paymentMethods, err := s.repo.PaymentMethod.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant payment methods: %w", err)
	}

	languages, err := s.repo.ServiceLanguage.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant service languages: %w", err)
	}

	amenityNames := make([]string, len(amenities))
	for i, amenity := range amenities {
		amenityNames[i] = amenity.Name
	}

	cuisineNames := make([]string, len(cuisines))
	for i, cuisine := range cuisines {
		cuisineNames[i] = cuisine.Name
	}

	methodNames := make([]string, len(paymentMethods))
	for i, method := range paymentMethods {
		methodNames[i] = method.Name
	}

	languageNames := make([]string, len(languages))
	for i, language := range languages {
		languageNames[i] = language.Name
	}

	detail := response.RestaurantToDetailResponse(restaurant, amenityNames, cuisineNames, methodNames, languageNames)
	return &detail, nil
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, requesterID int64, role entity.UserRole, req *request.RestaurantRequest) (int64, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create restaurant validation failed", zap.Any("errors", errs))
		return 0, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Role gate
	if !CanCreate(role) {
		s.log.Warn("Create restaurant denied",
			zap.Int64("requester_id", requesterID),
			zap.String("role", string(role)),
		)
		return 0, ErrForbidden
	}

	// 3. Tentukan owner. Owner membuat untuk dirinya sendiri,
	// moderator wajib menyebut owner di body.
	var ownerID int64
	switch role {
	case entity.RoleOwner:
		ownerID = requesterID
	case entity.RoleModerator:
		if req.OwnerID == nil {
			return 0, fmt.Errorf("%w: owner_id is required", ErrValidation)
		}
		ownerID = *req.OwnerID
	}

	// 4. Fast-path check batas satu restaurant per owner. UNIQUE (owner_id)
	// di schema tetap guard otoritatif kalau dua request lolos bersamaan.
	if role == entity.RoleOwner {
		count, err := s.repo.Restaurant.CountByOwnerID(ctx, ownerID)
		if err != nil {
			s.log.Error("Failed to count restaurants for owner",
				zap.Error(err),
				zap.Int64("owner_id", ownerID),
			)
			return 0, fmt.Errorf("check owner restaurants: %w", err)
		}
		if count > 0 {
			s.log.Warn("Owner already has a restaurant", zap.Int64("owner_id", ownerID))
			return 0, ErrAlreadyOwnsRestaurant
		}
	}

	// 5. Atomic write: scalar row + association sets
	restaurant := &entity.Restaurant{
		Name:                     req.Name,
		Address:                  req.Address,
		ContactGeneral:           req.ContactGeneral,
		ContactUCA:               req.ContactUCA,
		DeliveryAvailable:        req.DeliveryAvailable,
		DeliveryZoneID:           req.DeliveryZoneID,
		BoothCapacity:            req.BoothCapacity,
		HallCapacity:             req.HallCapacity,
		TableCapacity:            req.TableCapacity,
		Entertainment:            req.Entertainment,
		SmokingPolicyID:          req.SmokingPolicyID,
		AlcoholPolicyID:          req.AlcoholPolicyID,
		AverageBill:              req.AverageBill,
		RestroomAvailable:        req.RestroomAvailable,
		SocialInstagram:          req.SocialInstagram,
		SurveillanceCamera:       req.SurveillanceCamera,
		YearEstablished:          req.YearEstablished,
		Certificates:             req.Certificates,
		OwnerID:                  ownerID,
		OperatingHoursID:         req.OperatingHoursID,
		ServiceChargeID:          req.ServiceChargeID,
		TableReservationPolicyID: req.TableReservationPolicyID,
	}

	sets := entity.AssociationSets{
		AmenityIDs:       req.AmenityIDs,
		CuisineTypeIDs:   req.CuisineTypeIDs,
		PaymentMethodIDs: req.PaymentMethodIDs,
		LanguageIDs:      req.LanguageIDs,
	}

	restaurantID, err := s.repo.Restaurant.CreateWithAssociations(ctx, restaurant, sets)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			// Dua create dari owner yang sama lolos fast-path check bersamaan
			s.log.Warn("Owner uniqueness conflict on insert", zap.Int64("owner_id", ownerID))
			return 0, ErrAlreadyOwnsRestaurant
		}
		s.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
			zap.String("name", req.Name),
		)
		return 0, fmt.Errorf("create restaurant: %w", err)
	}

	return restaurantID, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID, requesterID int64, role entity.UserRole, req *request.RestaurantUpdateRequest) error {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update restaurant validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find existing restaurant
	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("find restaurant: %w", err)
	}
	if restaurant == nil {
		return ErrNotFound
	}

	// 3. Authorization
	if !CanMutate(role, restaurant.OwnerID == requesterID) {
		s.log.Warn("Update restaurant denied",
			zap.Int64("restaurant_id", restaurantID),
			zap.Int64("requester_id", requesterID),
			zap.String("role", string(role)),
		)
		return ErrForbidden
	}

	// 4. Apply partial updates only for provided fields
	applyRestaurantUpdate(restaurant, req)

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return fmt.Errorf("update restaurant: %w", err)
	}

	s.log.Info("Restaurant updated",
		zap.Int64("restaurant_id", restaurantID),
		zap.Int64("requester_id", requesterID),
	)

	return nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID, requesterID int64, role entity.UserRole) error {
	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("find restaurant: %w", err)
	}
	if restaurant == nil {
		return ErrNotFound
	}

	if !CanMutate(role, restaurant.OwnerID == requesterID) {
		s.log.Warn("Delete restaurant denied",
			zap.Int64("restaurant_id", restaurantID),
			zap.Int64("requester_id", requesterID),
			zap.String("role", string(role)),
		)
		return ErrForbidden
	}

	if err := s.repo.Restaurant.Delete(ctx, restaurantID); err != nil {
		s.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return fmt.Errorf("delete restaurant: %w", err)
	}

	return nil
}

// applyRestaurantUpdate menyalin field non-nil dari request ke entity.
// Hanya field di allow-list update DTO yang bisa berubah.
func applyRestaurantUpdate(restaurant *entity.Restaurant, req *request.RestaurantUpdateRequest) {
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = req.Address
	}
	if req.ContactGeneral != nil {
		restaurant.ContactGeneral = req.ContactGeneral
	}
	if req.ContactUCA != nil {
		restaurant.ContactUCA = req.ContactUCA
	}
	if req.DeliveryAvailable != nil {
		restaurant.DeliveryAvailable = *req.DeliveryAvailable
	}
	if req.DeliveryZoneID != nil {
		restaurant.DeliveryZoneID = req.DeliveryZoneID
	}
	if req.BoothCapacity != nil {
		restaurant.BoothCapacity = req.BoothCapacity
	}
	if req.HallCapacity != nil {
		restaurant.HallCapacity = req.HallCapacity
	}
	if req.TableCapacity != nil {
		restaurant.TableCapacity = req.TableCapacity
	}
	if req.Entertainment != nil {
		restaurant.Entertainment = req.Entertainment
	}
	if req.SmokingPolicyID != nil {
		restaurant.SmokingPolicyID = req.SmokingPolicyID
	}
	if req.AlcoholPolicyID != nil {
		restaurant.AlcoholPolicyID = req.AlcoholPolicyID
	}
	if req.AverageBill != nil {
		restaurant.AverageBill = req.AverageBill
	}
	if req.RestroomAvailable != nil {
		restaurant.RestroomAvailable = *req.RestroomAvailable
	}
	if req.SocialInstagram != nil {
		restaurant.SocialInstagram = req.SocialInstagram
	}
	if req.SurveillanceCamera != nil {
		restaurant.SurveillanceCamera = *req.SurveillanceCamera
	}
	if req.YearEstablished != nil {
		restaurant.YearEstablished = req.YearEstablished
	}
	if req.Certificates != nil {
		restaurant.Certificates = req.Certificates
	}
	if req.OperatingHoursID != nil {
		restaurant.OperatingHoursID = req.OperatingHoursID
	}
	if req.ServiceChargeID != nil {
		restaurant.ServiceChargeID = req.ServiceChargeID
	}
	if req.TableReservationPolicyID != nil {
		restaurant.TableReservationPolicyID = req.TableReservationPolicyID
	}
}
