package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/internal/dto/request"
)

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func int64Ptr(i int64) *int64    { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool       { return &b }

func validCreateRequest() *request.RestaurantRequest {
	return &request.RestaurantRequest{
		Name:              "Kara-Suu Ashkana",
		Address:           strPtr("12 Lenin St, Naryn"),
		ContactGeneral:    strPtr("+996700112233"),
		DeliveryAvailable: true,
		BoothCapacity:     intPtr(4),
		HallCapacity:      intPtr(60),
		AverageBill:       floatPtr(450),
		YearEstablished:   intPtr(2015),
		AmenityIDs:        []int64{1, 3},
		CuisineTypeIDs:    []int64{2},
		PaymentMethodIDs:  []int64{1, 2},
		LanguageIDs:       []int64{1, 2, 3},
	}
}

func TestCreateRestaurantAsOwner(t *testing.T) {
	service, store := newTestRestaurantService()

	id, err := service.CreateRestaurant(context.Background(), 10, entity.RoleOwner, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}
	if id == 0 {
		t.Fatal("CreateRestaurant() returned zero id")
	}

	stored, ok := store.restaurants[id]
	if !ok {
		t.Fatalf("restaurant %d not stored", id)
	}
	if stored.OwnerID != 10 {
		t.Errorf("stored owner = %d, want 10 (requester id)", stored.OwnerID)
	}
	if stored.Name != "Kara-Suu Ashkana" {
		t.Errorf("stored name = %q", stored.Name)
	}

	sets := store.sets[id]
	if len(sets.AmenityIDs) != 2 || len(sets.CuisineTypeIDs) != 1 ||
		len(sets.PaymentMethodIDs) != 2 || len(sets.LanguageIDs) != 3 {
		t.Errorf("association sets not stored with restaurant: %+v", sets)
	}
}

func TestCreateRestaurantOwnerSecondCreateRejected(t *testing.T) {
	service, store := newTestRestaurantService()
	ctx := context.Background()

	if _, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest()); err != nil {
		t.Fatalf("first CreateRestaurant() error = %v", err)
	}

	second := validCreateRequest()
	second.Name = "Second Place"
	_, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, second)
	if !errors.Is(err, ErrAlreadyOwnsRestaurant) {
		t.Fatalf("second CreateRestaurant() error = %v, want ErrAlreadyOwnsRestaurant", err)
	}
	if len(store.restaurants) != 1 {
		t.Errorf("store has %d restaurants after rejected create, want 1", len(store.restaurants))
	}
}

func TestCreateRestaurantModeratorRequiresOwnerID(t *testing.T) {
	service, _ := newTestRestaurantService()

	req := validCreateRequest()
	req.OwnerID = nil
	_, err := service.CreateRestaurant(context.Background(), 1, entity.RoleModerator, req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateRestaurant() error = %v, want ErrValidation", err)
	}
}

func TestCreateRestaurantModeratorForOwner(t *testing.T) {
	service, store := newTestRestaurantService()

	req := validCreateRequest()
	req.OwnerID = int64Ptr(42)
	id, err := service.CreateRestaurant(context.Background(), 1, entity.RoleModerator, req)
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}
	if store.restaurants[id].OwnerID != 42 {
		t.Errorf("stored owner = %d, want 42 (from request body)", store.restaurants[id].OwnerID)
	}
}

func TestCreateRestaurantUnknownRoleForbidden(t *testing.T) {
	service, store := newTestRestaurantService()

	_, err := service.CreateRestaurant(context.Background(), 5, entity.UserRole("guest"), validCreateRequest())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("CreateRestaurant() error = %v, want ErrForbidden", err)
	}
	if len(store.restaurants) != 0 {
		t.Errorf("store has %d restaurants after forbidden create, want 0", len(store.restaurants))
	}
}

func TestCreateRestaurantValidation(t *testing.T) {
	service, _ := newTestRestaurantService()

	req := validCreateRequest()
	req.Name = ""
	_, err := service.CreateRestaurant(context.Background(), 10, entity.RoleOwner, req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateRestaurant() error = %v, want ErrValidation", err)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo, _, _ := newFakeRepository()
	service := newServiceFromRepo(repo)
	ctx := context.Background()

	req := validCreateRequest()
	id, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, req)
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	detail, err := service.GetRestaurantByID(ctx, id)
	if err != nil {
		t.Fatalf("GetRestaurantByID() error = %v", err)
	}

	if detail.ID != id {
		t.Errorf("detail.ID = %d, want %d", detail.ID, id)
	}
	if detail.Name != req.Name {
		t.Errorf("detail.Name = %q, want %q", detail.Name, req.Name)
	}
	if detail.OwnerID != 10 {
		t.Errorf("detail.OwnerID = %d, want 10", detail.OwnerID)
	}
	if detail.Address == nil || *detail.Address != *req.Address {
		t.Errorf("detail.Address = %v, want %q", detail.Address, *req.Address)
	}

	assertNames(t, "amenities", detail.Amenities, []string{"amenity-1", "amenity-3"})
	assertNames(t, "cuisines", detail.Cuisines, []string{"cuisine-2"})
	assertNames(t, "payment methods", detail.PaymentMethods, []string{"method-1", "method-2"})
	assertNames(t, "service languages", detail.ServiceLanguages, []string{"language-1", "language-2", "language-3"})
}

func assertNames(t *testing.T, label string, got, want []string) {
	t.Helper()
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", label, got, want)
			return
		}
	}
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	service, _ := newTestRestaurantService()

	_, err := service.GetRestaurantByID(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetRestaurantByID() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRestaurantPartial(t *testing.T) {
	service, store := newTestRestaurantService()
	ctx := context.Background()

	id, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	update := &request.RestaurantUpdateRequest{
		Name:        strPtr("Renamed Ashkana"),
		AverageBill: floatPtr(600),
	}
	if err := service.UpdateRestaurant(ctx, id, 10, entity.RoleOwner, update); err != nil {
		t.Fatalf("UpdateRestaurant() error = %v", err)
	}

	stored := store.restaurants[id]
	if stored.Name != "Renamed Ashkana" {
		t.Errorf("name = %q after update", stored.Name)
	}
	if stored.AverageBill == nil || *stored.AverageBill != 600 {
		t.Errorf("average bill = %v after update, want 600", stored.AverageBill)
	}
	// Untouched fields keep their values
	if stored.Address == nil || *stored.Address != "12 Lenin St, Naryn" {
		t.Errorf("address changed unexpectedly: %v", stored.Address)
	}
	if !stored.DeliveryAvailable {
		t.Error("delivery_available changed unexpectedly")
	}
	if stored.OwnerID != 10 {
		t.Errorf("owner changed unexpectedly: %d", stored.OwnerID)
	}
}

func TestUpdateRestaurantByNonOwningOwner(t *testing.T) {
	service, store := newTestRestaurantService()
	ctx := context.Background()

	id, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	update := &request.RestaurantUpdateRequest{Name: strPtr("Hijacked")}
	err = service.UpdateRestaurant(ctx, id, 11, entity.RoleOwner, update)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("UpdateRestaurant() error = %v, want ErrForbidden", err)
	}
	if store.restaurants[id].Name != "Kara-Suu Ashkana" {
		t.Errorf("restaurant modified despite forbidden update: %q", store.restaurants[id].Name)
	}
}

func TestUpdateRestaurantByModerator(t *testing.T) {
	service, store := newTestRestaurantService()
	ctx := context.Background()

	id, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	update := &request.RestaurantUpdateRequest{SurveillanceCamera: boolPtr(true)}
	if err := service.UpdateRestaurant(ctx, id, 1, entity.RoleModerator, update); err != nil {
		t.Fatalf("UpdateRestaurant() as moderator error = %v", err)
	}
	if !store.restaurants[id].SurveillanceCamera {
		t.Error("surveillance_camera not updated by moderator")
	}
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	service, _ := newTestRestaurantService()

	err := service.UpdateRestaurant(context.Background(), 999, 1, entity.RoleModerator, &request.RestaurantUpdateRequest{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateRestaurant() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	service, store := newTestRestaurantService()
	ctx := context.Background()

	id, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	// Another owner cannot delete it
	if err := service.DeleteRestaurant(ctx, id, 11, entity.RoleOwner); !errors.Is(err, ErrForbidden) {
		t.Fatalf("DeleteRestaurant() by non-owner error = %v, want ErrForbidden", err)
	}
	if _, ok := store.restaurants[id]; !ok {
		t.Fatal("restaurant deleted despite forbidden delete")
	}

	// The owner can
	if err := service.DeleteRestaurant(ctx, id, 10, entity.RoleOwner); err != nil {
		t.Fatalf("DeleteRestaurant() by owner error = %v", err)
	}
	if _, ok := store.restaurants[id]; ok {
		t.Fatal("restaurant still stored after delete")
	}
	if _, ok := store.sets[id]; ok {
		t.Fatal("association sets still stored after delete")
	}
}

func TestDeleteRestaurantByModerator(t *testing.T) {
	service, store := newTestRestaurantService()
	ctx := context.Background()

	id, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	if err := service.DeleteRestaurant(ctx, id, 1, entity.RoleModerator); err != nil {
		t.Fatalf("DeleteRestaurant() as moderator error = %v", err)
	}
	if len(store.restaurants) != 0 {
		t.Error("restaurant still stored after moderator delete")
	}
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	service, _ := newTestRestaurantService()

	err := service.DeleteRestaurant(context.Background(), 999, 1, entity.RoleModerator)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteRestaurant() error = %v, want ErrNotFound", err)
	}
}

func TestGetRestaurants(t *testing.T) {
	service, _ := newTestRestaurantService()
	ctx := context.Background()

	if _, err := service.CreateRestaurant(ctx, 10, entity.RoleOwner, validCreateRequest()); err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}
	second := validCreateRequest()
	second.Name = "Dostuk Cafe"
	if _, err := service.CreateRestaurant(ctx, 11, entity.RoleOwner, second); err != nil {
		t.Fatalf("CreateRestaurant() error = %v", err)
	}

	summaries, err := service.GetRestaurants(ctx)
	if err != nil {
		t.Fatalf("GetRestaurants() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("GetRestaurants() returned %d summaries, want 2", len(summaries))
	}
}
