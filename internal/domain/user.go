package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifiers. Admins manage employees and targets; employees log
// activities and loans and read their own progress.
const (
	RoleAdmin    = 1
	RoleEmployee = 2
)

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"password,omitempty"`
	RoleID       int        `json:"role_id"`
	EmployeeName string     `json:"employee_name"`
	Active       bool       `json:"active"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID           string  `json:"id"`
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	RoleID       *int    `json:"role_id"`
	EmployeeName *string `json:"employee_name"`
	Active       *bool   `json:"active"`
	Deleted      *bool   `json:"deleted"`
}

type Claims struct {
	UserID           string
	UserName         string
	UserEmployeeName string
	UserRoleID       int
	UserActive       bool
	jwt.RegisteredClaims
}
