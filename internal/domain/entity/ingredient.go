package entity

import "time"

// Ingredient pertenece a un Client; (Name, ClientID) es único.
type Ingredient struct {
	TenantOwned
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
