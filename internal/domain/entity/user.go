package entity

import "time"

// User representa un usuario del sistema. Pertenece a uno o varios Client vía ClientUser.
type User struct {
	ID           int64
	Email        string // único, normalizado
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	IsActive     bool
	IsConfirmed  bool
	IsStaff      bool
	IsSuperuser  bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
