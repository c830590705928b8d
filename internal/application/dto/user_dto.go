package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// IsStaff/IsSuperuser nil significa "valor por defecto".
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	IsConfirmed bool   `json:"is_confirmed"`
	IsStaff     *bool  `json:"is_staff,omitempty"`
	IsSuperuser *bool  `json:"is_superuser,omitempty"`
}

// UserResponse salida pública de un usuario (GET /v1/auth/me/).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDetail salida administrativa (CLI).
type UserDetail struct {
	UserResponse
	IsActive    bool       `json:"is_active"`
	IsConfirmed bool       `json:"is_confirmed"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	ClientIDs   []int64    `json:"clients"`
}
