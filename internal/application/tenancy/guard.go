package tenancy

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// Owned lo implementan las entidades con client_id (vía entity.TenantOwned).
type Owned interface {
	TenantID() int64
	SetTenantID(id int64)
}

// Guard envuelve un ScopedRepository y aplica el contrato de tenant en cada operación:
// filtra por el client del contexto, lo fija en Create/Update e ignora filas ajenas.
type Guard[T any, PT interface {
	*T
	Owned
}] struct {
	repo repository.ScopedRepository[T]
}

// NewGuard construye el guard. Uso: tenancy.NewGuard[entity.Table](repo).
func NewGuard[T any, PT interface {
	*T
	Owned
}](repo repository.ScopedRepository[T]) *Guard[T, PT] {
	return &Guard[T, PT]{repo: repo}
}

// Create fija el client del contexto sobre v (pisando cualquier valor recibido) y persiste.
func (g *Guard[T, PT]) Create(ctx context.Context, v *T) error {
	s, err := FromContext(ctx)
	if err != nil {
		return err
	}
	PT(v).SetTenantID(s.ClientID)
	return g.repo.Create(ctx, v)
}

// Update igual que Create: el client del contexto manda.
func (g *Guard[T, PT]) Update(ctx context.Context, v *T) error {
	s, err := FromContext(ctx)
	if err != nil {
		return err
	}
	PT(v).SetTenantID(s.ClientID)
	return g.repo.Update(ctx, v)
}

// Get devuelve domain.ErrNotFound si el recurso no existe o es de otro client.
func (g *Guard[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	s, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}
	v, err := g.repo.GetByID(ctx, s.ClientID, id)
	if err != nil {
		return nil, err
	}
	if v == nil || PT(v).TenantID() != s.ClientID {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// List devuelve solo filas del client del contexto, en el orden del repositorio (id ascendente).
func (g *Guard[T, PT]) List(ctx context.Context) ([]*T, error) {
	s, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := g.repo.List(ctx, s.ClientID)
	if err != nil {
		return nil, err
	}
	out := list[:0]
	for _, v := range list {
		if PT(v).TenantID() == s.ClientID {
			out = append(out, v)
		}
	}
	return out, nil
}

// Delete borra dentro del client del contexto.
func (g *Guard[T, PT]) Delete(ctx context.Context, id int64) error {
	s, err := FromContext(ctx)
	if err != nil {
		return err
	}
	return g.repo.Delete(ctx, s.ClientID, id)
}
