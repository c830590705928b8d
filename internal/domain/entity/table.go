package entity

import "time"

// Estados de disponibilidad compartidos por Table y Dish.
const (
	StatusAvailable   = "AVAILABLE"
	StatusUnavailable = "UNAVAILABLE"
)

// ValidAvailability informa si s es AVAILABLE o UNAVAILABLE.
func ValidAvailability(s string) bool {
	return s == StatusAvailable || s == StatusUnavailable
}

// Table es una mesa del restaurante; (Number, ClientID) es único.
type Table struct {
	TenantOwned
	ID          int64
	Number      int
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
