// Package auth emite tokens ligados a un client y autentica las peticiones que los presentan.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
	"github.com/jhoicas/Restaurante-api/pkg/slug"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret          string
	Issuer          string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	UpdateLastLogin bool
}

// AuthUseCase casos de uso de autenticación: login, refresh y validación del access token.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	clientRepo repository.ClientRepository
	jwtCfg     JWTConfig
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, clientRepo repository.ClientRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, clientRepo: clientRepo, jwtCfg: jwtCfg, now: time.Now}
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// dummyPasswordHash iguala el tiempo de respuesta cuando el email no existe.
func dummyPasswordHash() []byte {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("restaurante-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// Login verifica credenciales y membresía en in.ClientID y emite el par access/refresh.
// Credenciales inválidas o usuario inactivo: domain.ErrAuthentication.
// Usuario válido sin membresía en el client: domain.ErrInvalidTenant.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.TokenRequest) (*dto.TokenResponse, error) {
	var v domain.Validator
	v.Check(in.Email != "", "email", "requerido")
	v.Check(in.Password != "", "password", "requerido")
	v.Check(in.ClientID > 0, "client_id", "requerido")
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, slug.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(in.Password))
		return nil, domain.ErrAuthentication
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrAuthentication
	}
	if !user.IsActive {
		return nil, domain.ErrAuthentication
	}

	member, err := uc.clientRepo.IsMember(ctx, in.ClientID, user.ID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.ErrInvalidTenant
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.TypeAccess, user.ID, in.ClientID, uc.jwtCfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.TypeRefresh, user.ID, in.ClientID, uc.jwtCfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	if uc.jwtCfg.UpdateLastLogin {
		if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, uc.now()); err != nil {
			return nil, fmt.Errorf("actualizar last_login: %w", err)
		}
	}
	return &dto.TokenResponse{Access: access, Refresh: refresh, ClientID: in.ClientID}, nil
}

// Refresh emite un access token nuevo con el mismo client del refresh token.
// Revalida que el usuario siga activo y siga siendo miembro del client.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if in.Refresh == "" {
		return nil, domain.Invalid("refresh", "requerido")
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, in.Refresh, jwt.TypeRefresh)
	if err != nil {
		return nil, tokenError(err)
	}
	if _, err := uc.resolve(ctx, claims.UserID, claims.ClientID); err != nil {
		return nil, err
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.TypeAccess, claims.UserID, claims.ClientID, uc.jwtCfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Access: access}, nil
}

// Authenticate valida un access token y revalida la membresía contra el directorio.
// Una membresía revocada después de emitir el token devuelve domain.ErrTenantMembership.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (tenancy.Scope, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token, jwt.TypeAccess)
	if err != nil {
		return tenancy.Scope{}, tokenError(err)
	}
	if _, err := uc.resolve(ctx, claims.UserID, claims.ClientID); err != nil {
		return tenancy.Scope{}, err
	}
	return tenancy.Scope{UserID: claims.UserID, ClientID: claims.ClientID}, nil
}

func (uc *AuthUseCase) resolve(ctx context.Context, userID, clientID int64) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	member, err := uc.clientRepo.IsMember(ctx, clientID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.ErrTenantMembership
	}
	return user, nil
}

// Me devuelve el usuario autenticado del contexto.
func (uc *AuthUseCase) Me(ctx context.Context) (*dto.UserResponse, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, scope.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func tokenError(err error) error {
	if errors.Is(err, jwt.ErrExpired) {
		return fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
}
