package memory

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/application/order"
)

var _ order.TxRunner = (*Store)(nil)

// Repos devuelve los repositorios del agregado de pedidos sobre este almacén.
func (s *Store) Repos() order.Repos {
	return order.Repos{
		Tables:           s.Tables(),
		Ingredients:      s.Ingredients(),
		Dishes:           s.Dishes(),
		IngredientDishes: s.IngredientDishes(),
		Orders:           s.Orders(),
		OrderDishes:      s.OrderDishes(),
		History:          s.OrderHistory(),
	}
}

// RunOrder implementa order.TxRunner con RunInTx.
func (s *Store) RunOrder(ctx context.Context, fn func(r order.Repos) error) error {
	return s.RunInTx(ctx, func() error { return fn(s.Repos()) })
}
