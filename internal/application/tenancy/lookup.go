package tenancy

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Finder resuelve un recurso por (clientID, id). Lo cumple cualquier ScopedRepository.
type Finder[T any] interface {
	GetByID(ctx context.Context, clientID, id int64) (*T, error)
}

// Lookup resuelve la referencia id del campo field dentro del client del contexto.
// Una referencia a otro client es indistinguible de una inexistente: domain.ErrNotFound.
func Lookup[T any, PT interface {
	*T
	Owned
}](ctx context.Context, f Finder[T], field string, id int64) (*T, error) {
	s, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, domain.Invalid(field, "id inválido")
	}
	v, err := f.GetByID(ctx, s.ClientID, id)
	if err != nil {
		return nil, err
	}
	if v == nil || PT(v).TenantID() != s.ClientID {
		return nil, fmt.Errorf("%s %d: %w", field, id, domain.ErrNotFound)
	}
	return v, nil
}

// LookupAll resuelve todas las referencias; falla en la primera que no exista. Ignora ids repetidos.
func LookupAll[T any, PT interface {
	*T
	Owned
}](ctx context.Context, f Finder[T], field string, ids []int64) ([]*T, error) {
	seen := make(map[int64]bool, len(ids))
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		v, err := Lookup[T, PT](ctx, f, field, id)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
