package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restaurante-api/internal/application/order"
)

// Ensure TxRunner implements order.TxRunner.
var _ order.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// NewOrderRepos devuelve los repositorios del agregado de pedidos sobre q (pool o tx).
func NewOrderRepos(q Querier) order.Repos {
	return order.Repos{
		Tables:           NewTableRepository(q),
		Ingredients:      NewIngredientRepository(q),
		Dishes:           NewDishRepository(q),
		IngredientDishes: NewIngredientDishRepository(q),
		Orders:           NewOrderRepository(q),
		OrderDishes:      NewOrderDishRepository(q),
		History:          NewOrderHistoryRepository(q),
	}
}

// RunOrder inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(repos order.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
