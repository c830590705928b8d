package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/slug"
)

// ClientUseCase administra el directorio de tenants y sus membresías.
type ClientUseCase struct {
	repo  repository.ClientRepository
	users repository.UserRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository, users repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, users: users}
}

// Create da de alta un client. El slug se deriva del nombre si no se indica.
// Devuelve domain.ErrDuplicate si el slug ya existe.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}
	var v domain.Validator
	v.Check(strings.TrimSpace(in.Name) != "", "name", "requerido")
	v.Check(slug.Valid(s), "slug", "solo minúsculas, dígitos y guiones")
	v.Check(in.DocumentType == "" || entity.ValidDocumentType(in.DocumentType), "document_type", "debe ser CPF o CNPJ")
	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		Name:           strings.TrimSpace(in.Name),
		Slug:           s,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		Address:        in.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// GetByID obtiene un client por ID; domain.ErrNotFound si no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return entityToClientResponse(client), nil
}

// List lista todos los clients por id.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToClientResponse(c))
	}
	return items, nil
}

// AddMember asocia el usuario (por email) al client. Es idempotente.
func (uc *ClientUseCase) AddMember(ctx context.Context, clientID int64, email string) error {
	user, err := uc.users.GetByEmail(ctx, slug.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.AddMember(ctx, clientID, user.ID)
}

// RemoveMember revoca la membresía. Los tokens ya emitidos para ese client dejan de servir.
func (uc *ClientUseCase) RemoveMember(ctx context.Context, clientID int64, email string) error {
	user, err := uc.users.GetByEmail(ctx, slug.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.RemoveMember(ctx, clientID, user.ID)
}

func entityToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		Phone:          c.Phone,
		Address:        c.Address,
		CreatedAt:      c.CreatedAt,
	}
}
