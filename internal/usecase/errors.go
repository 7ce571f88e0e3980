package usecase

import "errors"

// Sentinel errors, dipetakan ke HTTP status oleh adaptor via errors.Is
var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("restaurant not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrEmailTaken            = errors.New("email already registered")
	ErrForbidden             = errors.New("unauthorized role")
	ErrAlreadyOwnsRestaurant = errors.New("owners can create only one restaurant")
)
