package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableRequest entrada de create/update de mesa. Status vacío = AVAILABLE.
type TableRequest struct {
	Number      *int   `json:"number"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TableResponse salida de una mesa.
type TableResponse struct {
	ID          int64  `json:"id"`
	Number      int    `json:"number"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// IngredientRequest entrada de create/update de ingrediente.
type IngredientRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DishRequest entrada de create/update de plato. Ingredients son ids del mismo client.
type DishRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Price       *decimal.Decimal `json:"price"`
	Ingredients []int64          `json:"ingredients"`
}

// DishResponse salida de un plato con sus ingredientes ordenados por nombre.
type DishResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Price       string               `json:"price"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// DishSummary representación anidada de un plato en una línea de pedido.
type DishSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// IngredientDishRequest entrada para asociar un ingrediente a un plato.
type IngredientDishRequest struct {
	Dish       int64 `json:"dish"`
	Ingredient int64 `json:"ingredient"`
}

// IngredientDishResponse salida de la asociación (dish e ingredient son de solo escritura).
type IngredientDishResponse struct {
	ID int64 `json:"id"`
}

// OrderDishInput línea de un pedido nuevo.
type OrderDishInput struct {
	Dish                 int64   `json:"dish"`
	Quantity             *int    `json:"quantity"`
	Description          string  `json:"description"`
	AdditionalIngredient []int64 `json:"additional_ingredient"`
	RemovedIngredient    []int64 `json:"removed_ingredient"`
}

// CreateOrderRequest entrada de POST /v1/order/orders/.
type CreateOrderRequest struct {
	Table       int64            `json:"table"`
	Description string           `json:"description"`
	Dishes      []OrderDishInput `json:"dishes"`
}

// UpdateOrderRequest cambios parciales de un pedido; un cambio de Status pasa por la máquina de estados.
type UpdateOrderRequest struct {
	Table       *int64  `json:"table"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ChangeStatusRequest entrada de POST /v1/order/orders/:id/status/.
type ChangeStatusRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// OrderResponse salida de un pedido con sus líneas.
type OrderResponse struct {
	ID               int64               `json:"id"`
	Table            int64               `json:"table"`
	Description      string              `json:"description"`
	Status           string              `json:"status"`
	CreatedBy        int64               `json:"created_by"`
	StartPreparation *time.Time          `json:"start_preparation"`
	EndPreparation   *time.Time          `json:"end_preparation"`
	Dishes           []OrderDishResponse `json:"dishes"`
}

// OrderSummary representación anidada del pedido en una línea.
type OrderSummary struct {
	ID          int64  `json:"id"`
	Table       int64  `json:"table"`
	Description string `json:"description"`
	CreatedBy   int64  `json:"created_by"`
}

// OrderDishUpdateRequest cambios de una línea existente.
type OrderDishUpdateRequest struct {
	Quantity    *int    `json:"quantity"`
	Description *string `json:"description"`
}

// OrderDishResponse salida de una línea de pedido.
type OrderDishResponse struct {
	ID                   int64                `json:"id"`
	Dish                 DishSummary          `json:"dish"`
	Order                OrderSummary         `json:"order"`
	Description          string               `json:"description"`
	Quantity             int                  `json:"quantity"`
	AdditionalIngredient []IngredientResponse `json:"additional_ingredient"`
	RemovedIngredient    []IngredientResponse `json:"removed_ingredient"`
}

// OrderHistoryResponse una fila de la bitácora de estados.
type OrderHistoryResponse struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	ChangedBy   int64     `json:"changed_by"`
}

// CreateOrderDishRequest entrada de POST /v1/order/order-dishes/: una línea sobre un pedido existente.
type CreateOrderDishRequest struct {
	Order int64 `json:"order"`
	OrderDishInput
}
