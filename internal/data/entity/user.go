package entity

type UserRole string

const (
	RoleOwner     UserRole = "owner"
	RoleModerator UserRole = "moderator"
)

type User struct {
	ID           int64    `db:"id"`
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
