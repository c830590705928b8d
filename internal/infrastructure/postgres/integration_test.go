//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcontainers "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "restaurante",
				"POSTGRES_PASSWORD": "restaurante",
				"POSTGRES_DB":       "restaurante",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "no se pudo iniciar el contenedor de postgres")
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://restaurante:restaurante@%s:%s/restaurante?sslmode=disable", host, port.Port()),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Migrate(ctx, pool), "el esquema es idempotente")
	return pool
}

func count(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

func TestPostgres_AgregadosAtomicos(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	users := postgres.NewUserRepository(pool)
	clients := postgres.NewClientRepository(pool)
	now := time.Now()
	u := &entity.User{Email: "a@x.com", PasswordHash: "x", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, users.Create(ctx, u))
	assert.ErrorIs(t, users.Create(ctx, &entity.User{Email: "A@x.com", PasswordHash: "x", CreatedAt: now, UpdatedAt: now}), domain.ErrDuplicate)

	a := &entity.Client{Name: "A", Slug: "a", CreatedAt: now, UpdatedAt: now}
	b := &entity.Client{Name: "B", Slug: "b", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, clients.Create(ctx, a))
	require.NoError(t, clients.Create(ctx, b))
	require.NoError(t, clients.AddMember(ctx, a.ID, u.ID))
	require.NoError(t, clients.AddMember(ctx, a.ID, u.ID))
	ok, err := clients.IsMember(ctx, a.ID, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	uc := order.NewUseCase(postgres.NewOrderRepos(pool), postgres.NewTxRunner(pool), clients, nil)
	ctxA := tenancy.WithScope(ctx, tenancy.Scope{UserID: u.ID, ClientID: a.ID})
	ctxB := tenancy.WithScope(ctx, tenancy.Scope{UserID: u.ID, ClientID: b.ID})
	one := 1

	tbl, err := uc.CreateTable(ctxA, dto.TableRequest{Number: &one, Description: "salón"})
	require.NoError(t, err)
	_, err = uc.CreateTable(ctxA, dto.TableRequest{Number: &one, Description: "salón"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.CreateTable(ctxB, dto.TableRequest{Number: &one, Description: "salón"})
	assert.NoError(t, err)

	ing, err := uc.CreateIngredient(ctxA, dto.IngredientRequest{Name: "Queijo", Description: "mussarela"})
	require.NoError(t, err)
	price := decimal.RequireFromString("30.00")

	_, err = uc.CreateDish(ctxA, dto.DishRequest{Name: "Pizza", Description: "forno", Price: &price, Ingredients: []int64{ing.ID, 99999}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, count(t, pool, "dishes"))

	dish, err := uc.CreateDish(ctxA, dto.DishRequest{Name: "Pizza", Description: "forno", Price: &price, Ingredients: []int64{ing.ID}})
	require.NoError(t, err)
	assert.Equal(t, "30.00", dish.Price)
	require.Len(t, dish.Ingredients, 1)

	two := 2
	items := []dto.OrderDishInput{
		{Dish: dish.ID, Quantity: &two, AdditionalIngredient: []int64{ing.ID}},
		{Dish: dish.ID, Quantity: &one},
		{Dish: 424242, Quantity: &one},
		{Dish: dish.ID, Quantity: &one},
		{Dish: dish.ID, Quantity: &one},
	}
	_, err = uc.CreateOrder(ctxA, dto.CreateOrderRequest{Table: tbl.ID, Dishes: items})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, count(t, pool, "orders"))
	assert.Equal(t, 0, count(t, pool, "orders_dishes"))
	assert.Equal(t, 0, count(t, pool, "orders_dishes_ingredients"))

	created, err := uc.CreateOrder(ctxA, dto.CreateOrderRequest{Table: tbl.ID, Dishes: items[:1]})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderReceived, created.Status)
	require.Len(t, created.Dishes, 1)
	assert.Equal(t, 2, created.Dishes[0].Quantity)
	require.Len(t, created.Dishes[0].AdditionalIngredient, 1)

	_, err = uc.ChangeStatus(ctxA, created.ID, dto.ChangeStatusRequest{Status: entity.OrderPreparing})
	require.NoError(t, err)
	history, err := uc.History(ctxA, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	_, err = uc.GetOrder(ctxB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteTable(ctxA, tbl.ID), domain.ErrConflict)
	assert.ErrorIs(t, uc.DeleteIngredient(ctxA, ing.ID), domain.ErrConflict)
}
