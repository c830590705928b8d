package memory

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// scoped implementa repository.ScopedRepository[T] sobre un mapa del estado.
type scoped[T any] struct {
	s        *Store
	table    string
	rows     func(d *state) map[int64]T
	id       func(v *T) *int64
	clientOf func(v T) int64
	// check valida unicidad y claves foráneas antes de escribir v.
	check func(d *state, v *T) error
	// deletable devuelve domain.ErrConflict si hay filas que restringen el borrado.
	deletable func(d *state, id int64) error
	// cascade borra dependientes con ON DELETE CASCADE.
	cascade func(d *state, id int64)
	// strip limpia relaciones cargadas que no se persisten en la tabla.
	strip func(v *T)
}

func (r *scoped[T]) Create(_ context.Context, v *T) error {
	return r.s.with(func(d *state) error {
		if err := r.check(d, v); err != nil {
			return err
		}
		row := *v
		if r.strip != nil {
			r.strip(&row)
		}
		id := d.next(r.table)
		*r.id(&row) = id
		*r.id(v) = id
		r.rows(d)[id] = row
		return nil
	})
}

func (r *scoped[T]) Update(_ context.Context, v *T) error {
	return r.s.with(func(d *state) error {
		id := *r.id(v)
		cur, ok := r.rows(d)[id]
		if !ok || r.clientOf(cur) != r.clientOf(*v) {
			return domain.ErrNotFound
		}
		if err := r.check(d, v); err != nil {
			return err
		}
		row := *v
		if r.strip != nil {
			r.strip(&row)
		}
		r.rows(d)[id] = row
		return nil
	})
}

func (r *scoped[T]) GetByID(_ context.Context, clientID, id int64) (*T, error) {
	var out *T
	err := r.s.with(func(d *state) error {
		if v, ok := r.rows(d)[id]; ok && r.clientOf(v) == clientID {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *scoped[T]) List(_ context.Context, clientID int64) ([]*T, error) {
	out := []*T{}
	err := r.s.with(func(d *state) error {
		rows := r.rows(d)
		for _, id := range sortedByID(rows, func(v T) bool { return r.clientOf(v) == clientID }) {
			v := rows[id]
			out = append(out, &v)
		}
		return nil
	})
	return out, err
}

func (r *scoped[T]) Delete(_ context.Context, clientID, id int64) error {
	return r.s.with(func(d *state) error {
		v, ok := r.rows(d)[id]
		if !ok || r.clientOf(v) != clientID {
			return domain.ErrNotFound
		}
		if r.deletable != nil {
			if err := r.deletable(d, id); err != nil {
				return err
			}
		}
		if r.cascade != nil {
			r.cascade(d, id)
		}
		delete(r.rows(d), id)
		return nil
	})
}

func exists[T any](m map[int64]T, id int64, same func(T) bool) bool {
	v, ok := m[id]
	return ok && (same == nil || same(v))
}
