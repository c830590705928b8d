package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ClientRepository es el directorio de tenants y de sus membresías.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)

	// AddMember es idempotente: si la membresía ya existe no hace nada.
	AddMember(ctx context.Context, clientID, userID int64) error
	// RemoveMember devuelve domain.ErrNotFound si la membresía no existía.
	RemoveMember(ctx context.Context, clientID, userID int64) error
	IsMember(ctx context.Context, clientID, userID int64) (bool, error)
	ListClientIDs(ctx context.Context, userID int64) ([]int64, error)
}
