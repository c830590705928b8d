package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository        = (*OrderRepo)(nil)
	_ repository.OrderDishRepository    = (*OrderDishRepo)(nil)
	_ repository.OrderHistoryRepository = (*OrderHistoryRepo)(nil)
)

// OrderRepo pedidos en memoria.
type OrderRepo struct{ *scoped[entity.Order] }

// Orders devuelve el repositorio de pedidos.
func (s *Store) Orders() *OrderRepo {
	return &OrderRepo{&scoped[entity.Order]{
		s:        s,
		table:    "orders",
		rows:     func(d *state) map[int64]entity.Order { return d.orders },
		id:       func(v *entity.Order) *int64 { return &v.ID },
		clientOf: func(v entity.Order) int64 { return v.ClientID },
		check: func(d *state, v *entity.Order) error {
			if _, ok := d.clients[v.ClientID]; !ok {
				return domain.ErrNotFound
			}
			if !exists(d.tables, v.TableID, nil) || !exists(d.users, v.CreatedBy, nil) {
				return domain.ErrNotFound
			}
			return nil
		},
		deletable: func(d *state, id int64) error {
			for _, line := range d.orderDishes {
				if line.OrderID == id {
					return domain.ErrConflict
				}
			}
			return nil
		},
		cascade: func(d *state, id int64) {
			for hid, h := range d.history {
				if h.OrderID == id {
					delete(d.history, hid)
				}
			}
		},
		strip: func(v *entity.Order) { v.Dishes = nil },
	}}
}

// GetForUpdate en memoria equivale a GetByID: las transacciones ya están serializadas.
func (r *OrderRepo) GetForUpdate(ctx context.Context, clientID, id int64) (*entity.Order, error) {
	return r.GetByID(ctx, clientID, id)
}

// OrderDishRepo líneas de pedido en memoria.
type OrderDishRepo struct{ *scoped[entity.OrderDish] }

// OrderDishes devuelve el repositorio de líneas de pedido.
func (s *Store) OrderDishes() *OrderDishRepo {
	return &OrderDishRepo{&scoped[entity.OrderDish]{
		s:        s,
		table:    "orders_dishes",
		rows:     func(d *state) map[int64]entity.OrderDish { return d.orderDishes },
		id:       func(v *entity.OrderDish) *int64 { return &v.ID },
		clientOf: func(v entity.OrderDish) int64 { return v.ClientID },
		check: func(d *state, v *entity.OrderDish) error {
			if _, ok := d.clients[v.ClientID]; !ok {
				return domain.ErrNotFound
			}
			if !exists(d.orders, v.OrderID, nil) || !exists(d.dishes, v.DishID, nil) {
				return domain.ErrNotFound
			}
			return nil
		},
		cascade: func(d *state, id int64) {
			d.modifiers = filterModifiers(d.modifiers, func(m modifier) bool { return m.orderDishID != id })
		},
		strip: func(v *entity.OrderDish) {
			v.AdditionalIngredients, v.RemovedIngredients, v.Dish = nil, nil, nil
		},
	}}
}

// ListByOrder líneas del pedido por id ascendente.
func (r *OrderDishRepo) ListByOrder(_ context.Context, clientID, orderID int64) ([]*entity.OrderDish, error) {
	out := []*entity.OrderDish{}
	err := r.s.with(func(d *state) error {
		keep := func(v entity.OrderDish) bool { return v.ClientID == clientID && v.OrderID == orderID }
		for _, id := range sortedByID(d.orderDishes, keep) {
			v := d.orderDishes[id]
			out = append(out, &v)
		}
		return nil
	})
	return out, err
}

func (r *OrderDishRepo) AddIngredients(_ context.Context, orderDishID int64, kind string, ingredientIDs []int64) error {
	if kind != entity.ModifierAdditional && kind != entity.ModifierRemoved {
		return domain.Invalid("kind", "tipo de modificador inválido")
	}
	return r.s.with(func(d *state) error {
		if !exists(d.orderDishes, orderDishID, nil) {
			return domain.ErrNotFound
		}
		for _, ingID := range ingredientIDs {
			if !exists(d.ingredients, ingID, nil) {
				return domain.ErrNotFound
			}
			dup := false
			for _, m := range d.modifiers {
				if m.orderDishID == orderDishID && m.ingredientID == ingID && m.kind == kind {
					dup = true
					break
				}
			}
			if !dup {
				d.modifiers = append(d.modifiers, modifier{orderDishID: orderDishID, ingredientID: ingID, kind: kind})
			}
		}
		return nil
	})
}

func (r *OrderDishRepo) ListIngredients(_ context.Context, clientID, orderDishID int64, kind string) ([]*entity.Ingredient, error) {
	out := []*entity.Ingredient{}
	err := r.s.with(func(d *state) error {
		if !exists(d.orderDishes, orderDishID, func(v entity.OrderDish) bool { return v.ClientID == clientID }) {
			return nil
		}
		for _, m := range d.modifiers {
			if m.orderDishID != orderDishID || m.kind != kind {
				continue
			}
			if ing, ok := d.ingredients[m.ingredientID]; ok {
				out = append(out, &ing)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

// OrderHistoryRepo bitácora de estados en memoria.
type OrderHistoryRepo struct{ s *Store }

// OrderHistory devuelve el repositorio de la bitácora.
func (s *Store) OrderHistory() *OrderHistoryRepo { return &OrderHistoryRepo{s: s} }

func (r *OrderHistoryRepo) Append(_ context.Context, h *entity.OrderHistory) error {
	return r.s.with(func(d *state) error {
		if !exists(d.orders, h.OrderID, nil) || !exists(d.users, h.ChangedBy, nil) {
			return domain.ErrNotFound
		}
		h.ID = d.next("orders_history")
		d.history[h.ID] = *h
		return nil
	})
}

func (r *OrderHistoryRepo) ListByOrder(_ context.Context, clientID, orderID int64) ([]*entity.OrderHistory, error) {
	out := []*entity.OrderHistory{}
	err := r.s.with(func(d *state) error {
		for _, h := range d.history {
			if h.ClientID == clientID && h.OrderID == orderID {
				h := h
				out = append(out, &h)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, err
}
