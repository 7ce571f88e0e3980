package usecase

import (
	"testing"

	"naryn-restaurants/internal/data/entity"
)

func TestCanCreate(t *testing.T) {
	tests := []struct {
		name string
		role entity.UserRole
		want bool
	}{
		{"moderator allowed", entity.RoleModerator, true},
		{"owner allowed", entity.RoleOwner, true},
		{"empty role denied", entity.UserRole(""), false},
		{"unknown role denied", entity.UserRole("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreate(tt.role); got != tt.want {
				t.Errorf("CanCreate(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.UserRole
		isOwner bool
		want    bool
	}{
		{"moderator on any restaurant", entity.RoleModerator, false, true},
		{"moderator on own restaurant", entity.RoleModerator, true, true},
		{"owner on own restaurant", entity.RoleOwner, true, true},
		{"owner on someone else's restaurant", entity.RoleOwner, false, false},
		{"unknown role even as target owner", entity.UserRole("guest"), true, false},
		{"empty role", entity.UserRole(""), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(tt.role, tt.isOwner); got != tt.want {
				t.Errorf("CanMutate(%q, %v) = %v, want %v", tt.role, tt.isOwner, got, tt.want)
			}
		})
	}
}
