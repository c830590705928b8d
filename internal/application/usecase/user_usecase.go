package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/slug"
)

const (
	minPasswordLen = 8
	// bcrypt rechaza más de 72 bytes.
	maxPasswordLen = 72
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo    repository.UserRepository
	clients repository.ClientRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, clients repository.ClientRepository) *UserUseCase {
	return &UserUseCase{repo: repo, clients: clients}
}

// CreateUser normaliza el email, hashea el password con bcrypt y persiste un usuario activo.
// Por defecto no es staff ni superuser.
func (uc *UserUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserDetail, error) {
	email := slug.NormalizeEmail(in.Email)
	var v domain.Validator
	v.Check(email != "", "email", "requerido")
	v.Check(len(in.Password) >= minPasswordLen, "password", "mínimo 8 caracteres")
	v.Check(len(in.Password) <= maxPasswordLen, "password", "máximo 72 bytes")
	if err := v.Err(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		IsActive:     true,
		IsConfirmed:  in.IsConfirmed,
		IsStaff:      in.IsStaff != nil && *in.IsStaff,
		IsSuperuser:  in.IsSuperuser != nil && *in.IsSuperuser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserDetail(user, nil), nil
}

// CreateSuperuser crea un usuario staff y superuser. Rechaza is_staff o is_superuser en falso.
func (uc *UserUseCase) CreateSuperuser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserDetail, error) {
	if in.IsStaff != nil && !*in.IsStaff {
		return nil, domain.Invalid("is_staff", "un superuser debe ser staff")
	}
	if in.IsSuperuser != nil && !*in.IsSuperuser {
		return nil, domain.Invalid("is_superuser", "un superuser debe tener is_superuser")
	}
	yes := true
	in.IsStaff, in.IsSuperuser = &yes, &yes
	return uc.CreateUser(ctx, in)
}

// GetByEmail devuelve el usuario con sus clients; domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserDetail, error) {
	user, err := uc.repo.GetByEmail(ctx, slug.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	ids, err := uc.clients.ListClientIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return entityToUserDetail(user, ids), nil
}

func entityToUserDetail(u *entity.User, clientIDs []int64) *dto.UserDetail {
	if clientIDs == nil {
		clientIDs = []int64{}
	}
	return &dto.UserDetail{
		UserResponse: dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email},
		IsActive:     u.IsActive,
		IsConfirmed:  u.IsConfirmed,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
		LastLogin:    u.LastLogin,
		ClientIDs:    clientIDs,
	}
}
