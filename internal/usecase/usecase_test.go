package usecase

import (
	"context"
	"fmt"

	"naryn-restaurants/internal/data/entity"
	"naryn-restaurants/internal/data/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces.

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, exists := f.users[user.Email]; exists {
		return fmt.Errorf("create user %s: %w", user.Email, &pgconn.PgError{Code: "23505"})
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, exists := f.users[email]
	if !exists {
		return nil, nil
	}
	found := *user
	return &found, nil
}

type fakeRestaurantRepo struct {
	restaurants map[int64]*entity.Restaurant
	sets        map[int64]entity.AssociationSets
	nextID      int64
	createErr   error
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{
		restaurants: map[int64]*entity.Restaurant{},
		sets:        map[int64]entity.AssociationSets{},
	}
}

func (f *fakeRestaurantRepo) CreateWithAssociations(_ context.Context, restaurant *entity.Restaurant, sets entity.AssociationSets) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	// Mirrors the schema-level UNIQUE (owner_id) guard
	for _, existing := range f.restaurants {
		if existing.OwnerID == restaurant.OwnerID {
			return 0, fmt.Errorf("insert restaurant %s: %w", restaurant.Name, &pgconn.PgError{Code: "23505"})
		}
	}
	f.nextID++
	stored := *restaurant
	stored.ID = f.nextID
	f.restaurants[f.nextID] = &stored
	f.sets[f.nextID] = sets
	return f.nextID, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	if _, exists := f.restaurants[restaurant.ID]; !exists {
		return fmt.Errorf("restaurant %d not found", restaurant.ID)
	}
	stored := *restaurant
	f.restaurants[restaurant.ID] = &stored
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id int64) error {
	if _, exists := f.restaurants[id]; !exists {
		return fmt.Errorf("restaurant %d not found", id)
	}
	delete(f.restaurants, id)
	delete(f.sets, id)
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	restaurant, exists := f.restaurants[id]
	if !exists {
		return nil, nil
	}
	found := *restaurant
	return &found, nil
}

func (f *fakeRestaurantRepo) FindAllSummaries(_ context.Context) ([]*entity.RestaurantSummary, error) {
	var summaries []*entity.RestaurantSummary
	for _, restaurant := range f.restaurants {
		summaries = append(summaries, &entity.RestaurantSummary{
			ID:                restaurant.ID,
			Name:              restaurant.Name,
			Address:           restaurant.Address,
			ContactGeneral:    restaurant.ContactGeneral,
			DeliveryAvailable: restaurant.DeliveryAvailable,
			AverageBill:       restaurant.AverageBill,
		})
	}
	return summaries, nil
}

func (f *fakeRestaurantRepo) CountByOwnerID(_ context.Context, ownerID int64) (int64, error) {
	var count int64
	for _, restaurant := range f.restaurants {
		if restaurant.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

// Reference repos derive names from the stored association sets.

type fakeAmenityRepo struct{ store *fakeRestaurantRepo }

func (f *fakeAmenityRepo) FindByRestaurantID(_ context.Context, restaurantID int64) ([]*entity.Amenity, error) {
	var amenities []*entity.Amenity
	for _, id := range f.store.sets[restaurantID].AmenityIDs {
		amenities = append(amenities, &entity.Amenity{ID: id, Name: fmt.Sprintf("amenity-%d", id)})
	}
	return amenities, nil
}

type fakeCuisineTypeRepo struct{ store *fakeRestaurantRepo }

func (f *fakeCuisineTypeRepo) FindByRestaurantID(_ context.Context, restaurantID int64) ([]*entity.CuisineType, error) {
	var cuisines []*entity.CuisineType
	for _, id := range f.store.sets[restaurantID].CuisineTypeIDs {
		cuisines = append(cuisines, &entity.CuisineType{ID: id, Name: fmt.Sprintf("cuisine-%d", id)})
	}
	return cuisines, nil
}

type fakePaymentMethodRepo struct{ store *fakeRestaurantRepo }

func (f *fakePaymentMethodRepo) FindByRestaurantID(_ context.Context, restaurantID int64) ([]*entity.PaymentMethod, error) {
	var methods []*entity.PaymentMethod
	for _, id := range f.store.sets[restaurantID].PaymentMethodIDs {
		methods = append(methods, &entity.PaymentMethod{ID: id, Name: fmt.Sprintf("method-%d", id)})
	}
	return methods, nil
}

type fakeServiceLanguageRepo struct{ store *fakeRestaurantRepo }

func (f *fakeServiceLanguageRepo) FindByRestaurantID(_ context.Context, restaurantID int64) ([]*entity.ServiceLanguage, error) {
	var languages []*entity.ServiceLanguage
	for _, id := range f.store.sets[restaurantID].LanguageIDs {
		languages = append(languages, &entity.ServiceLanguage{ID: id, Name: fmt.Sprintf("language-%d", id)})
	}
	return languages, nil
}

func newFakeRepository() (*repository.Repository, *fakeRestaurantRepo, *fakeUserRepo) {
	restaurants := newFakeRestaurantRepo()
	users := newFakeUserRepo()
	repo := &repository.Repository{
		User:            users,
		Restaurant:      restaurants,
		Amenity:         &fakeAmenityRepo{store: restaurants},
		CuisineType:     &fakeCuisineTypeRepo{store: restaurants},
		PaymentMethod:   &fakePaymentMethodRepo{store: restaurants},
		ServiceLanguage: &fakeServiceLanguageRepo{store: restaurants},
	}
	return repo, restaurants, users
}

func newServiceFromRepo(repo *repository.Repository) RestaurantService {
	return NewRestaurantService(repo, zap.NewNop())
}

func newTestRestaurantService() (RestaurantService, *fakeRestaurantRepo) {
	repo, restaurants, _ := newFakeRepository()
	return newServiceFromRepo(repo), restaurants
}
