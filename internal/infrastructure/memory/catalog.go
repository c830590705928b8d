package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var (
	_ repository.TableRepository          = (*TableRepo)(nil)
	_ repository.IngredientRepository     = (*IngredientRepo)(nil)
	_ repository.DishRepository           = (*DishRepo)(nil)
	_ repository.IngredientDishRepository = (*IngredientDishRepo)(nil)
)

// TableRepo mesas en memoria.
type TableRepo struct{ *scoped[entity.Table] }

// Tables devuelve el repositorio de mesas.
func (s *Store) Tables() *TableRepo {
	return &TableRepo{&scoped[entity.Table]{
		s:        s,
		table:    "tables",
		rows:     func(d *state) map[int64]entity.Table { return d.tables },
		id:       func(v *entity.Table) *int64 { return &v.ID },
		clientOf: func(v entity.Table) int64 { return v.ClientID },
		check: func(d *state, v *entity.Table) error {
			if _, ok := d.clients[v.ClientID]; !ok {
				return domain.ErrNotFound
			}
			for _, t := range d.tables {
				if t.ID != v.ID && t.ClientID == v.ClientID && t.Number == v.Number {
					return domain.ErrDuplicate
				}
			}
			return nil
		},
		deletable: func(d *state, id int64) error {
			for _, o := range d.orders {
				if o.TableID == id {
					return domain.ErrConflict
				}
			}
			return nil
		},
	}}
}

// IngredientRepo ingredientes en memoria.
type IngredientRepo struct{ *scoped[entity.Ingredient] }

// Ingredients devuelve el repositorio de ingredientes.
func (s *Store) Ingredients() *IngredientRepo {
	return &IngredientRepo{&scoped[entity.Ingredient]{
		s:        s,
		table:    "ingredients",
		rows:     func(d *state) map[int64]entity.Ingredient { return d.ingredients },
		id:       func(v *entity.Ingredient) *int64 { return &v.ID },
		clientOf: func(v entity.Ingredient) int64 { return v.ClientID },
		check: func(d *state, v *entity.Ingredient) error {
			if _, ok := d.clients[v.ClientID]; !ok {
				return domain.ErrNotFound
			}
			for _, i := range d.ingredients {
				if i.ID != v.ID && i.ClientID == v.ClientID && i.Name == v.Name {
					return domain.ErrDuplicate
				}
			}
			return nil
		},
		deletable: func(d *state, id int64) error {
			for _, link := range d.ingredientDishes {
				if link.IngredientID == id {
					return domain.ErrConflict
				}
			}
			return nil
		},
		cascade: func(d *state, id int64) {
			d.modifiers = filterModifiers(d.modifiers, func(m modifier) bool { return m.ingredientID != id })
		},
	}}
}

// ListByDish ingredientes del plato ordenados por nombre.
func (r *IngredientRepo) ListByDish(_ context.Context, clientID, dishID int64) ([]*entity.Ingredient, error) {
	out := []*entity.Ingredient{}
	err := r.s.with(func(d *state) error {
		dish, ok := d.dishes[dishID]
		if !ok || dish.ClientID != clientID {
			return nil
		}
		for _, link := range d.ingredientDishes {
			if link.DishID != dishID {
				continue
			}
			if ing, ok := d.ingredients[link.IngredientID]; ok {
				out = append(out, &ing)
			}
		}
		return nil
	})
	sortIngredients(out)
	return out, err
}

func sortIngredients(list []*entity.Ingredient) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return strings.Compare(list[i].Name, list[j].Name) < 0
		}
		return list[i].ID < list[j].ID
	})
}

// DishRepo platos en memoria.
type DishRepo struct{ *scoped[entity.Dish] }

// Dishes devuelve el repositorio de platos.
func (s *Store) Dishes() *DishRepo {
	return &DishRepo{&scoped[entity.Dish]{
		s:        s,
		table:    "dishes",
		rows:     func(d *state) map[int64]entity.Dish { return d.dishes },
		id:       func(v *entity.Dish) *int64 { return &v.ID },
		clientOf: func(v entity.Dish) int64 { return v.ClientID },
		check: func(d *state, v *entity.Dish) error {
			if _, ok := d.clients[v.ClientID]; !ok {
				return domain.ErrNotFound
			}
			for _, x := range d.dishes {
				if x.ID != v.ID && x.ClientID == v.ClientID && x.Name == v.Name {
					return domain.ErrDuplicate
				}
			}
			return nil
		},
		deletable: func(d *state, id int64) error {
			for _, link := range d.ingredientDishes {
				if link.DishID == id {
					return domain.ErrConflict
				}
			}
			for _, line := range d.orderDishes {
				if line.DishID == id {
					return domain.ErrConflict
				}
			}
			return nil
		},
		strip: func(v *entity.Dish) { v.Ingredients = nil },
	}}
}

// IngredientDishRepo asociaciones plato-ingrediente en memoria.
type IngredientDishRepo struct{ s *Store }

// IngredientDishes devuelve el repositorio de asociaciones plato-ingrediente.
func (s *Store) IngredientDishes() *IngredientDishRepo { return &IngredientDishRepo{s: s} }

func (r *IngredientDishRepo) Create(_ context.Context, link *entity.IngredientDish) error {
	return r.s.with(func(d *state) error {
		if !exists(d.dishes, link.DishID, nil) || !exists(d.ingredients, link.IngredientID, nil) {
			return domain.ErrNotFound
		}
		link.ID = d.next("ingredients_dishes")
		d.ingredientDishes[link.ID] = *link
		return nil
	})
}

func (r *IngredientDishRepo) GetByID(_ context.Context, clientID, id int64) (*entity.IngredientDish, error) {
	var out *entity.IngredientDish
	err := r.s.with(func(d *state) error {
		link, ok := d.ingredientDishes[id]
		if ok && exists(d.dishes, link.DishID, func(x entity.Dish) bool { return x.ClientID == clientID }) {
			out = &link
		}
		return nil
	})
	return out, err
}

func (r *IngredientDishRepo) Delete(_ context.Context, clientID, id int64) error {
	return r.s.with(func(d *state) error {
		link, ok := d.ingredientDishes[id]
		if !ok || !exists(d.dishes, link.DishID, func(x entity.Dish) bool { return x.ClientID == clientID }) {
			return domain.ErrNotFound
		}
		delete(d.ingredientDishes, id)
		return nil
	})
}

func filterModifiers(in []modifier, keep func(modifier) bool) []modifier {
	out := in[:0]
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
