package usecase

import (
	"naryn-restaurants/internal/data/entity"
)

// Pure authorization policy untuk mutasi restaurant.
// Satu primitive dipakai oleh create, update, dan delete.

// CanCreate: moderator selalu boleh; owner boleh (batas satu restaurant
// dicek terpisah lewat repository sebelum insert); role lain ditolak.
func CanCreate(role entity.UserRole) bool {
	switch role {
	case entity.RoleModerator, entity.RoleOwner:
		return true
	default:
		return false
	}
}

// CanMutate: moderator selalu boleh; owner hanya untuk restaurant miliknya.
func CanMutate(role entity.UserRole, isOwnerOfTarget bool) bool {
	switch role {
	case entity.RoleModerator:
		return true
	case entity.RoleOwner:
		return isOwnerOfTarget
	default:
		return false
	}
}
