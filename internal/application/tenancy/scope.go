// Package tenancy aplica el aislamiento por tenant a todo acceso a recursos.
//
// El tenant siempre sale del token validado (Scope en el contexto), nunca de la entrada del cliente:
// las lecturas filtran por él y las escrituras lo fijan sobre la entidad.
package tenancy

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// Scope identifica al actor autenticado: el usuario y el client del token.
type Scope struct {
	UserID   int64
	ClientID int64
}

type scopeKey struct{}

// WithScope devuelve un contexto que transporta s.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext extrae el Scope. Sin Scope válido devuelve domain.ErrTokenInvalid.
func FromContext(ctx context.Context) (Scope, error) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || s.ClientID <= 0 || s.UserID <= 0 {
		return Scope{}, fmt.Errorf("tenancy: contexto sin tenant: %w", domain.ErrTokenInvalid)
	}
	return s, nil
}
