// Package memory implementa los puertos de repositorio en memoria, con las mismas reglas de unicidad
// y de integridad referencial que el esquema PostgreSQL. Se usa en tests y en ejecución local.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

type modifier struct {
	orderDishID  int64
	ingredientID int64
	kind         string
}

type state struct {
	seqs             map[string]int64
	users            map[int64]entity.User
	clients          map[int64]entity.Client
	members          map[[2]int64]entity.ClientUser
	tables           map[int64]entity.Table
	ingredients      map[int64]entity.Ingredient
	dishes           map[int64]entity.Dish
	ingredientDishes map[int64]entity.IngredientDish
	orders           map[int64]entity.Order
	orderDishes      map[int64]entity.OrderDish
	modifiers        []modifier
	history          map[int64]entity.OrderHistory
}

func newState() *state {
	return &state{
		seqs:             map[string]int64{},
		users:            map[int64]entity.User{},
		clients:          map[int64]entity.Client{},
		members:          map[[2]int64]entity.ClientUser{},
		tables:           map[int64]entity.Table{},
		ingredients:      map[int64]entity.Ingredient{},
		dishes:           map[int64]entity.Dish{},
		ingredientDishes: map[int64]entity.IngredientDish{},
		orders:           map[int64]entity.Order{},
		orderDishes:      map[int64]entity.OrderDish{},
		history:          map[int64]entity.OrderHistory{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	copyMap(c.users, s.users)
	copyMap(c.clients, s.clients)
	copyMap(c.members, s.members)
	copyMap(c.tables, s.tables)
	copyMap(c.ingredients, s.ingredients)
	copyMap(c.dishes, s.dishes)
	copyMap(c.ingredientDishes, s.ingredientDishes)
	copyMap(c.orders, s.orders)
	copyMap(c.orderDishes, s.orderDishes)
	copyMap(c.history, s.history)
	c.modifiers = append([]modifier(nil), s.modifiers...)
	return c
}

func copyMap[K comparable, V any](dst, src map[K]V) {
	for k, v := range src {
		dst[k] = v
	}
}

func (s *state) next(table string) int64 {
	s.seqs[table]++
	return s.seqs[table]
}

// Store guarda todas las tablas. Las transacciones se serializan entre sí y revierten
// restaurando una copia del estado completo: una escritura directa (fuera de RunInTx)
// concurrente con una transacción que falla se pierde. En tests paralelos, o todas las
// escrituras concurrentes van por RunInTx/RunOrder o ninguna corre junto a una transacción.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data *state
	now  func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newState(), now: time.Now}
}

func (s *Store) with(fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Count devuelve el número de filas de una tabla (nombres de tabla del esquema SQL).
func (s *Store) Count(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch table {
	case "users":
		return len(s.data.users)
	case "clients":
		return len(s.data.clients)
	case "client_users":
		return len(s.data.members)
	case "tables":
		return len(s.data.tables)
	case "ingredients":
		return len(s.data.ingredients)
	case "dishes":
		return len(s.data.dishes)
	case "ingredients_dishes":
		return len(s.data.ingredientDishes)
	case "orders":
		return len(s.data.orders)
	case "orders_dishes":
		return len(s.data.orderDishes)
	case "orders_dishes_ingredients":
		return len(s.data.modifiers)
	case "orders_history":
		return len(s.data.history)
	}
	return 0
}

// RunInTx ejecuta fn; si devuelve error (o entra en pánico) el estado vuelve al de antes.
func (s *Store) RunInTx(ctx context.Context, fn func() error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	rollback := func() {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
	}
	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		rollback()
		return err
	}
	return nil
}

func sortedByID[T any](m map[int64]T, keep func(T) bool) []int64 {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
