package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
)

const secret = "secret-de-pruebas-suficientemente-largo"

var cfg = auth.JWTConfig{
	Secret:          secret,
	Issuer:          "restaurante-api-test",
	AccessTTL:       5 * time.Minute,
	RefreshTTL:      time.Hour,
	UpdateLastLogin: true,
}

// newAuth crea los clients 1..9 y el usuario a@x.com miembro de 7 y 9.
func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store, *entity.User) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for i := 1; i <= 9; i++ {
		require.NoError(t, store.Clients().Create(ctx, &entity.Client{Name: fmt.Sprint("c", i), Slug: fmt.Sprint("c", i)}))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("p"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Email: "a@x.com", Name: "Ana", PasswordHash: string(hash), IsActive: true}
	require.NoError(t, store.Users().Create(ctx, u))
	require.NoError(t, store.Clients().AddMember(ctx, 7, u.ID))
	require.NoError(t, store.Clients().AddMember(ctx, 9, u.ID))
	return auth.NewAuthUseCase(store.Users(), store.Clients(), cfg), store, u
}

func TestLogin_ClientDelUsuario(t *testing.T) {
	uc, store, u := newAuth(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.TokenRequest{Email: "a@x.com", Password: "p", ClientID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ClientID)
	assert.NotEmpty(t, out.Refresh)

	claims, err := jwt.Parse(secret, out.Access, jwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ClientID)
	assert.Equal(t, u.ID, claims.UserID)

	stored, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin, "el login actualiza last_login")
}

func TestLogin_ClientAjeno(t *testing.T) {
	uc, _, _ := newAuth(t)
	_, err := uc.Login(context.Background(), dto.TokenRequest{Email: "a@x.com", Password: "p", ClientID: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidTenant)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, store, u := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.TokenRequest{Email: "a@x.com", Password: "mal", ClientID: 7})
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	_, err = uc.Login(ctx, dto.TokenRequest{Email: "nadie@x.com", Password: "p", ClientID: 7})
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	store.Users().SetActive(u.ID, false)
	_, err = uc.Login(ctx, dto.TokenRequest{Email: "a@x.com", Password: "p", ClientID: 7})
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	_, err = uc.Login(ctx, dto.TokenRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticate_MembresiaRevocada(t *testing.T) {
	uc, store, u := newAuth(t)
	ctx := context.Background()
	out, err := uc.Login(ctx, dto.TokenRequest{Email: "a@x.com", Password: "p", ClientID: 9})
	require.NoError(t, err)

	scope, err := uc.Authenticate(ctx, out.Access)
	require.NoError(t, err)
	assert.Equal(t, tenancy.Scope{UserID: u.ID, ClientID: 9}, scope)

	require.NoError(t, store.Clients().RemoveMember(ctx, 9, u.ID))
	_, err = uc.Authenticate(ctx, out.Access)
	assert.ErrorIs(t, err, domain.ErrTenantMembership)

	_, err = uc.Refresh(ctx, dto.RefreshRequest{Refresh: out.Refresh})
	assert.ErrorIs(t, err, domain.ErrTenantMembership)
}

func TestAuthenticate_TokensInvalidos(t *testing.T) {
	uc, store, u := newAuth(t)
	ctx := context.Background()

	_, err := uc.Authenticate(ctx, "no-es-un-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	expired, err := jwt.Generate(secret, cfg.Issuer, jwt.TypeAccess, u.ID, 7, -time.Minute)
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	refresh, err := jwt.Generate(secret, cfg.Issuer, jwt.TypeRefresh, u.ID, 7, time.Minute)
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, refresh)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid, "un refresh no autentica peticiones")

	access, err := jwt.Generate(secret, cfg.Issuer, jwt.TypeAccess, u.ID, 7, time.Minute)
	require.NoError(t, err)
	store.Users().SetActive(u.ID, false)
	_, err = uc.Authenticate(ctx, access)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRefresh_ConservaClient(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()
	out, err := uc.Login(ctx, dto.TokenRequest{Email: "a@x.com", Password: "p", ClientID: 9})
	require.NoError(t, err)

	ref, err := uc.Refresh(ctx, dto.RefreshRequest{Refresh: out.Refresh})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, ref.Access, jwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.ClientID)

	_, err = uc.Refresh(ctx, dto.RefreshRequest{Refresh: out.Access})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid, "un access no sirve como refresh")
}

func TestMe(t *testing.T) {
	uc, _, u := newAuth(t)
	ctx := tenancy.WithScope(context.Background(), tenancy.Scope{UserID: u.ID, ClientID: 7})
	me, err := uc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.UserResponse{ID: u.ID, Name: "Ana", Email: "a@x.com"}, *me)

	_, err = uc.Me(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
