package order

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// Repos agrupa los repositorios del agregado de pedidos. Dentro de TxRunner.RunOrder
// todos están atados a la misma transacción.
type Repos struct {
	Tables           repository.TableRepository
	Ingredients      repository.IngredientRepository
	Dishes           repository.DishRepository
	IngredientDishes repository.IngredientDishRepository
	Orders           repository.OrderRepository
	OrderDishes      repository.OrderDishRepository
	History          repository.OrderHistoryRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(r Repos) error) error
}

// TicketRenderer genera la comanda de cocina de un pedido.
type TicketRenderer interface {
	RenderTicket(ctx context.Context, t Ticket) ([]byte, error)
}

// Ticket datos de la comanda.
type Ticket struct {
	Client *entity.Client
	Table  *entity.Table
	Order  *entity.Order
}
