package entities

import (
	"time"
)

// UserRole represents the access level of a clinic user
type UserRole string

const (
	UserRolePrincipal UserRole = "PRINCIPAL"
	UserRoleDoctor    UserRole = "DOCTOR"
	UserRoleStaff     UserRole = "STAFF"
)

// User represents a clinic user account
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Role       UserRole  `json:"role"`
	Password   string    `json:"password,omitempty"`
	LastAccess time.Time `json:"last_access"`
}

// Reminder represents a shared to-do note on the clinic dashboard
type Reminder struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	CreatedByID string    `json:"created_by_id"`
}
