// Command restaurantectl administra el directorio de la API: clients, usuarios y membresías.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func main() {
	cmd := newRootCommand(connectPostgres)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// connectPostgres abre el pool con la configuración DB_* / DATABASE_URL.
func connectPostgres(ctx context.Context) (*services, error) {
	pool, err := postgres.NewPool(ctx, config.LoadDB())
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	return &services{
		clients: usecase.NewClientUseCase(clientRepo, userRepo),
		users:   usecase.NewUserUseCase(userRepo, clientRepo),
		migrate: func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
		close:   pool.Close,
	}, nil
}
