package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para Order (sin líneas).
type OrderRepository interface {
	ScopedRepository[entity.Order]
	// GetForUpdate bloquea la fila del pedido (SELECT ... FOR UPDATE) dentro de una transacción.
	GetForUpdate(ctx context.Context, clientID, id int64) (*entity.Order, error)
}

// OrderDishRepository puerto de persistencia para las líneas de un pedido.
type OrderDishRepository interface {
	ScopedRepository[entity.OrderDish]
	ListByOrder(ctx context.Context, clientID, orderID int64) ([]*entity.OrderDish, error)
	// AddIngredients agrega modificadores (entity.ModifierAdditional o entity.ModifierRemoved).
	AddIngredients(ctx context.Context, orderDishID int64, kind string, ingredientIDs []int64) error
	ListIngredients(ctx context.Context, clientID, orderDishID int64, kind string) ([]*entity.Ingredient, error)
}

// OrderHistoryRepository bitácora append-only de estados del pedido.
type OrderHistoryRepository interface {
	Append(ctx context.Context, h *entity.OrderHistory) error
	// ListByOrder ordena por timestamp e id ascendentes.
	ListByOrder(ctx context.Context, clientID, orderID int64) ([]*entity.OrderHistory, error)
}
