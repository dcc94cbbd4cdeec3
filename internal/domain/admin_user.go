package domain

import "time"

// AdminRole tags the privileges of a back-office account.
type AdminRole string

const (
	AdminRoleAdmin  AdminRole = "admin"
	AdminRoleEditor AdminRole = "editor"
)

// Valid reports whether the role is one of the known tags.
func (r AdminRole) Valid() bool {
	return r == AdminRoleAdmin || r == AdminRoleEditor
}

// AdminUser is a provisioned back-office account.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         AdminRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
