package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleSeller     = 3
)

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	ID      int     `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Active  *bool   `json:"active"`
	RoleID  *int    `json:"role_id"`
	Deleted *bool   `json:"deleted"`
}

// Claims carrega a identidade autenticada. UserID é o dono de toda
// configuração e lançamento semanal acessado na requisição.
type Claims struct {
	UserID       int
	UserName     string
	UserUsername string
	UserEmail    string
	UserRoleID   int
	jwt.RegisteredClaims
}
