package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"      // Full access, dashboard and exports
	RoleSupervisor Role = "supervisor" // Verifies attendance, manages employees
	RoleEmployee   Role = "employee"   // Records own attendance
)

// Elevated reports whether the role may act on other employees' records.
func Elevated(r Role) bool {
	return r == RoleAdmin || r == RoleSupervisor
}

type User struct {
	ID               string
	Username         string
	PasswordHash     string
	FullName         string
	Role             Role
	DepartmentID     *string
	IsIntern         bool
	StartDate        time.Time
	ProfileImagePath *string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	DepartmentName *string
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.FullName) != "" {
		return u.FullName
	}
	return u.Username
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if user has the supervisor role
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor
}

// IsElevated checks if user may edit and verify other employees' attendance
func (u *User) IsElevated() bool {
	return Elevated(u.Role)
}
