package order_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

type fixture struct {
	store *memory.Store
	uc    *order.UseCase
	user  int64
	ctxA  context.Context
	ctxB  context.Context
}

func newFixture(t *testing.T, renderer order.TicketRenderer) *fixture {
	t.Helper()
	store := memory.NewStore()
	bg := context.Background()

	u := &entity.User{Email: "mozo@example.com", Name: "Mozo", IsActive: true}
	require.NoError(t, store.Users().Create(bg, u))
	a := &entity.Client{Name: "Cantina A", Slug: "cantina-a"}
	b := &entity.Client{Name: "Cantina B", Slug: "cantina-b"}
	require.NoError(t, store.Clients().Create(bg, a))
	require.NoError(t, store.Clients().Create(bg, b))
	require.NoError(t, store.Clients().AddMember(bg, a.ID, u.ID))
	require.NoError(t, store.Clients().AddMember(bg, b.ID, u.ID))

	return &fixture{
		store: store,
		uc:    order.NewUseCase(store.Repos(), store, store.Clients(), renderer),
		user:  u.ID,
		ctxA:  tenancy.WithScope(bg, tenancy.Scope{UserID: u.ID, ClientID: a.ID}),
		ctxB:  tenancy.WithScope(bg, tenancy.Scope{UserID: u.ID, ClientID: b.ID}),
	}
}

func intp(v int) *int { return &v }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (f *fixture) table(t *testing.T, ctx context.Context, number int) int64 {
	t.Helper()
	out, err := f.uc.CreateTable(ctx, dto.TableRequest{Number: intp(number), Description: "salón"})
	require.NoError(t, err)
	return out.ID
}

func (f *fixture) ingredient(t *testing.T, ctx context.Context, name string) int64 {
	t.Helper()
	out, err := f.uc.CreateIngredient(ctx, dto.IngredientRequest{Name: name, Description: name})
	require.NoError(t, err)
	return out.ID
}

func (f *fixture) dish(t *testing.T, ctx context.Context, name string, ingredients ...int64) int64 {
	t.Helper()
	out, err := f.uc.CreateDish(ctx, dto.DishRequest{
		Name:        name,
		Description: name,
		Price:       price("25.50"),
		Ingredients: ingredients,
	})
	require.NoError(t, err)
	return out.ID
}
