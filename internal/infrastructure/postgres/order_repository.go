package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository        = (*OrderRepo)(nil)
	_ repository.OrderDishRepository    = (*OrderDishRepo)(nil)
	_ repository.OrderHistoryRepository = (*OrderHistoryRepo)(nil)
)

// OrderRepo pedidos sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, client_id, table_id, description, status, created_by, start_preparation, end_preparation,
	created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.ClientID, &o.TableID, &o.Description, &o.Status, &o.CreatedBy,
		&o.StartPreparation, &o.EndPreparation, &o.CreatedAt, &o.UpdatedAt)
	return &o, err
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (client_id, table_id, description, status, created_by, start_preparation, end_preparation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		o.ClientID, o.TableID, o.Description, o.Status, o.CreatedBy, o.StartPreparation, o.EndPreparation,
		o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return writeErr("insert order", err)
	}
	return nil
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET table_id = $3, description = $4, status = $5, start_preparation = $6,
			end_preparation = $7, updated_at = $8
		WHERE id = $1 AND client_id = $2`,
		o.ID, o.ClientID, o.TableID, o.Description, o.Status, o.StartPreparation, o.EndPreparation, o.UpdatedAt,
	)
	if err != nil {
		return writeErr("update order", err)
	}
	return affected(tag)
}

func (r *OrderRepo) GetByID(ctx context.Context, clientID, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND client_id = $2`, id, clientID))
	return noRows(o, err, "get order")
}

// GetForUpdate bloquea la fila hasta el fin de la transacción.
func (r *OrderRepo) GetForUpdate(ctx context.Context, clientID, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND client_id = $2 FOR UPDATE`, id, clientID))
	return noRows(o, err, "get order for update")
}

func (r *OrderRepo) List(ctx context.Context, clientID int64) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE client_id = $1 ORDER BY id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return collect(rows, scanOrder)
}

// Delete borra el pedido; el historial cae por ON DELETE CASCADE y las líneas lo impiden.
func (r *OrderRepo) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return deleteErr("delete order", err)
	}
	return affected(tag)
}

// OrderDishRepo líneas de pedido sobre PostgreSQL.
type OrderDishRepo struct {
	q Querier
}

// NewOrderDishRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderDishRepository(q Querier) *OrderDishRepo {
	return &OrderDishRepo{q: q}
}

const orderDishColumns = `id, client_id, order_id, dish_id, quantity, description, created_at, updated_at`

func scanOrderDish(row pgx.Row) (*entity.OrderDish, error) {
	var d entity.OrderDish
	err := row.Scan(&d.ID, &d.ClientID, &d.OrderID, &d.DishID, &d.Quantity, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *OrderDishRepo) Create(ctx context.Context, d *entity.OrderDish) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders_dishes (client_id, order_id, dish_id, quantity, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		d.ClientID, d.OrderID, d.DishID, d.Quantity, d.Description, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return writeErr("insert order_dish", err)
	}
	return nil
}

func (r *OrderDishRepo) Update(ctx context.Context, d *entity.OrderDish) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders_dishes SET quantity = $3, description = $4, updated_at = $5
		WHERE id = $1 AND client_id = $2`,
		d.ID, d.ClientID, d.Quantity, d.Description, d.UpdatedAt,
	)
	if err != nil {
		return writeErr("update order_dish", err)
	}
	return affected(tag)
}

func (r *OrderDishRepo) GetByID(ctx context.Context, clientID, id int64) (*entity.OrderDish, error) {
	d, err := scanOrderDish(r.q.QueryRow(ctx,
		`SELECT `+orderDishColumns+` FROM orders_dishes WHERE id = $1 AND client_id = $2`, id, clientID))
	return noRows(d, err, "get order_dish")
}

func (r *OrderDishRepo) List(ctx context.Context, clientID int64) ([]*entity.OrderDish, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+orderDishColumns+` FROM orders_dishes WHERE client_id = $1 ORDER BY id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list order_dishes: %w", err)
	}
	return collect(rows, scanOrderDish)
}

func (r *OrderDishRepo) ListByOrder(ctx context.Context, clientID, orderID int64) ([]*entity.OrderDish, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+orderDishColumns+` FROM orders_dishes WHERE client_id = $1 AND order_id = $2 ORDER BY id`,
		clientID, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order_dishes by order: %w", err)
	}
	return collect(rows, scanOrderDish)
}

func (r *OrderDishRepo) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders_dishes WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return deleteErr("delete order_dish", err)
	}
	return affected(tag)
}

// AddIngredients inserta los modificadores en una sola sentencia; los repetidos se ignoran.
func (r *OrderDishRepo) AddIngredients(ctx context.Context, orderDishID int64, kind string, ingredientIDs []int64) error {
	if kind != entity.ModifierAdditional && kind != entity.ModifierRemoved {
		return domain.Invalid("kind", "tipo de modificador inválido")
	}
	if len(ingredientIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders_dishes_ingredients (order_dish_id, ingredient_id, kind)
		SELECT $1, unnest($2::bigint[]), $3
		ON CONFLICT DO NOTHING`, orderDishID, ingredientIDs, kind)
	if err != nil {
		return writeErr("insert order_dish ingredients", err)
	}
	return nil
}

func (r *OrderDishRepo) ListIngredients(ctx context.Context, clientID, orderDishID int64, kind string) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+ingredientColumns+`
		FROM orders_dishes_ingredients m
		JOIN ingredients i ON i.id = m.ingredient_id
		JOIN orders_dishes od ON od.id = m.order_dish_id
		WHERE m.order_dish_id = $1 AND m.kind = $2 AND od.client_id = $3
		ORDER BY i.id`, orderDishID, kind, clientID)
	if err != nil {
		return nil, fmt.Errorf("list order_dish ingredients: %w", err)
	}
	return collect(rows, scanIngredient)
}

// OrderHistoryRepo bitácora de estados sobre PostgreSQL.
type OrderHistoryRepo struct {
	q Querier
}

// NewOrderHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderHistoryRepository(q Querier) *OrderHistoryRepo {
	return &OrderHistoryRepo{q: q}
}

func (r *OrderHistoryRepo) Append(ctx context.Context, h *entity.OrderHistory) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders_history (order_id, client_id, status, description, timestamp, changed_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		h.OrderID, h.ClientID, h.Status, h.Description, h.Timestamp, h.ChangedBy, h.CreatedAt, h.UpdatedAt,
	).Scan(&h.ID)
	if err != nil {
		return writeErr("insert order_history", err)
	}
	return nil
}

func (r *OrderHistoryRepo) ListByOrder(ctx context.Context, clientID, orderID int64) ([]*entity.OrderHistory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, client_id, status, description, timestamp, changed_by, created_at, updated_at
		FROM orders_history
		WHERE client_id = $1 AND order_id = $2
		ORDER BY timestamp, id`, clientID, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order_history: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.OrderHistory, error) {
		var h entity.OrderHistory
		err := row.Scan(&h.ID, &h.OrderID, &h.ClientID, &h.Status, &h.Description, &h.Timestamp, &h.ChangedBy,
			&h.CreatedAt, &h.UpdatedAt)
		return &h, err
	})
}
