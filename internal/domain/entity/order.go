package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order.
const (
	OrderReceived  = "RECEIVED"
	OrderPreparing = "PREPARING"
	OrderDone      = "DONE"
	// OrderCancelled existe como constante pero no es un estado seleccionable.
	OrderCancelled = "CANCELLED"
)

// ValidOrderStatus informa si s es uno de los estados seleccionables (sin CANCELLED).
func ValidOrderStatus(s string) bool {
	return s == OrderReceived || s == OrderPreparing || s == OrderDone
}

// CanTransition aplica la máquina de estados lineal RECEIVED → PREPARING → DONE.
func CanTransition(from, to string) bool {
	switch from {
	case OrderReceived:
		return to == OrderPreparing
	case OrderPreparing:
		return to == OrderDone
	}
	return false
}

// Order es un pedido de una mesa.
type Order struct {
	TenantOwned
	ID               int64
	TableID          int64
	Description      string
	Status           string
	CreatedBy        int64
	StartPreparation *time.Time
	EndPreparation   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Dishes se carga al leer el pedido completo.
	Dishes []*OrderDish
}

// OrderDish es una línea del pedido con sus modificadores de ingredientes.
type OrderDish struct {
	TenantOwned
	ID          int64
	OrderID     int64
	DishID      int64
	Quantity    int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	AdditionalIngredients []*Ingredient
	RemovedIngredients    []*Ingredient
	// Dish se carga al leer la línea.
	Dish *Dish
}

// Subtotal devuelve precio × cantidad si el plato está cargado.
func (d *OrderDish) Subtotal() decimal.Decimal {
	if d.Dish == nil {
		return decimal.Zero
	}
	return d.Dish.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// OrderHistory es una fila de auditoría (append-only) de un cambio de estado.
type OrderHistory struct {
	TenantOwned
	ID          int64
	OrderID     int64
	Status      string
	Description string
	Timestamp   time.Time
	ChangedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tipos de modificador de ingredientes de una línea.
const (
	ModifierAdditional = "additional"
	ModifierRemoved    = "removed"
)
