package tenancy_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

func setup(t *testing.T, clients int) (*memory.Store, []context.Context) {
	t.Helper()
	store := memory.NewStore()
	bg := context.Background()
	u := &entity.User{Email: "a@x.com", IsActive: true}
	require.NoError(t, store.Users().Create(bg, u))

	ctxs := make([]context.Context, 0, clients)
	for i := 0; i < clients; i++ {
		c := &entity.Client{Name: "c", Slug: "c-" + string(rune('a'+i))}
		require.NoError(t, store.Clients().Create(bg, c))
		ctxs = append(ctxs, tenancy.WithScope(bg, tenancy.Scope{UserID: u.ID, ClientID: c.ID}))
	}
	return store, ctxs
}

func TestFromContext_SinScope(t *testing.T) {
	_, err := tenancy.FromContext(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = tenancy.FromContext(tenancy.WithScope(context.Background(), tenancy.Scope{UserID: 1}))
	assert.ErrorIs(t, err, domain.ErrTokenInvalid, "client_id 0 no es un tenant")
}

func TestGuard_CreateIgnoraClientRecibido(t *testing.T) {
	store, ctxs := setup(t, 2)
	guard := tenancy.NewGuard[entity.Table](store.Tables())
	a, b := ctxs[0], ctxs[1]
	sb, _ := tenancy.FromContext(b)

	tbl := &entity.Table{Number: 1, Status: entity.StatusAvailable}
	tbl.ClientID = sb.ClientID
	require.NoError(t, guard.Create(a, tbl))

	sa, _ := tenancy.FromContext(a)
	assert.Equal(t, sa.ClientID, tbl.ClientID, "el client del token pisa al del cuerpo")

	_, err := guard.Get(b, tbl.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuard_UpdateDeFilaAjena(t *testing.T) {
	store, ctxs := setup(t, 2)
	guard := tenancy.NewGuard[entity.Ingredient](store.Ingredients())
	ing := &entity.Ingredient{Name: "Sal"}
	require.NoError(t, guard.Create(ctxs[0], ing))

	ing.Name = "Azúcar"
	assert.ErrorIs(t, guard.Update(ctxs[1], ing), domain.ErrNotFound)
	assert.ErrorIs(t, guard.Delete(ctxs[1], ing.ID), domain.ErrNotFound)

	got, err := guard.Get(ctxs[0], ing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sal", got.Name)
}

func TestLookup(t *testing.T) {
	store, ctxs := setup(t, 2)
	guard := tenancy.NewGuard[entity.Ingredient](store.Ingredients())
	ing := &entity.Ingredient{Name: "Sal"}
	require.NoError(t, guard.Create(ctxs[0], ing))

	got, err := tenancy.Lookup[entity.Ingredient](ctxs[0], store.Ingredients(), "ingredient", ing.ID)
	require.NoError(t, err)
	assert.Equal(t, ing.ID, got.ID)

	_, err = tenancy.Lookup[entity.Ingredient](ctxs[1], store.Ingredients(), "ingredient", ing.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "ingredient")

	_, err = tenancy.Lookup[entity.Ingredient](ctxs[0], store.Ingredients(), "ingredient", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, err := tenancy.LookupAll[entity.Ingredient](ctxs[0], store.Ingredients(), "ingredients", []int64{ing.ID, ing.ID})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// Para cualquier reparto de mesas entre tenants, List solo devuelve las del tenant del contexto.
func TestGuard_ListNuncaMezclaTenants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("List(ctx) ⊆ tenant(ctx)", prop.ForAll(
		func(owners []int) bool {
			store, ctxs := setup(t, 3)
			guard := tenancy.NewGuard[entity.Table](store.Tables())
			want := make([]int, 3)
			for i, o := range owners {
				if err := guard.Create(ctxs[o], &entity.Table{Number: i + 1, Status: entity.StatusAvailable}); err != nil {
					return false
				}
				want[o]++
			}
			for i, ctx := range ctxs {
				s, _ := tenancy.FromContext(ctx)
				list, err := guard.List(ctx)
				if err != nil || len(list) != want[i] {
					return false
				}
				for _, tbl := range list {
					if tbl.ClientID != s.ClientID {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}
