package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish es un plato del menú; (Name, ClientID) es único. Price tiene 2 decimales.
type Dish struct {
	TenantOwned
	ID          int64
	Name        string
	Description string
	Status      string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Ingredients se carga al leer el plato (ordenados por nombre); no se persiste en dishes.
	Ingredients []*Ingredient
}

// IngredientDish asocia un Ingredient a un Dish.
// No tiene client_id propio: el tenant se deriva del plato.
type IngredientDish struct {
	ID           int64
	DishID       int64
	IngredientID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
