package models

import "time"

// Roles known to the panel
const (
	RoleSuperAdmin   = "super_admin"
	RoleAdmin        = "admin"
	RoleSocietyAdmin = "society_admin"
	RoleStaff        = "staff"
	RoleResident     = "resident"
)

// Roles lists every role in privilege order
var Roles = []string{RoleSuperAdmin, RoleAdmin, RoleSocietyAdmin, RoleStaff, RoleResident}

// IsValidRole reports whether role is one of Roles
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSocietyScopedRole reports whether role belongs to a single society
func IsSocietyScopedRole(role string) bool {
	switch role {
	case RoleSocietyAdmin, RoleStaff, RoleResident:
		return true
	}
	return false
}

// User is an account of the society API
type User struct {
	ID        uint       `json:"id" example:"1"`
	Name      string     `json:"name" example:"Asha Kulkarni"`
	Email     string     `json:"email" example:"asha@example.com"`
	Phone     string     `json:"phone,omitempty" example:"9876543210"`
	Role      string     `json:"role" example:"society_admin"`
	SocietyID *uint      `json:"societyId,omitempty" example:"1"`
	Flat      string     `json:"flat,omitempty" example:"B-402"`
	Avatar    string     `json:"avatar,omitempty"`
	IsActive  *bool      `json:"isActive,omitempty" example:"true"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// AuthResult is the result of a successful login
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
