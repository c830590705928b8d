package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ScopedRepository es el contrato común de los recursos que pertenecen a un Client.
//
// Create y Update escriben el ClientID que trae la entidad; Update, GetByID y Delete
// filtran por (id, clientID), de modo que una fila de otro tenant se comporta como inexistente.
// GetByID devuelve (nil, nil) si no hay fila; Update y Delete devuelven domain.ErrNotFound.
// List ordena por id ascendente.
type ScopedRepository[T any] interface {
	Create(ctx context.Context, v *T) error
	Update(ctx context.Context, v *T) error
	GetByID(ctx context.Context, clientID, id int64) (*T, error)
	List(ctx context.Context, clientID int64) ([]*T, error)
	Delete(ctx context.Context, clientID, id int64) error
}

// TableRepository puerto de persistencia para Table.
type TableRepository interface {
	ScopedRepository[entity.Table]
}

// IngredientRepository puerto de persistencia para Ingredient.
type IngredientRepository interface {
	ScopedRepository[entity.Ingredient]
	// ListByDish devuelve los ingredientes del plato ordenados por nombre.
	ListByDish(ctx context.Context, clientID, dishID int64) ([]*entity.Ingredient, error)
}

// DishRepository puerto de persistencia para Dish (sin ingredientes).
type DishRepository interface {
	ScopedRepository[entity.Dish]
}

// IngredientDishRepository puerto para la asociación plato-ingrediente.
// El tenant se verifica a través del plato.
type IngredientDishRepository interface {
	Create(ctx context.Context, link *entity.IngredientDish) error
	GetByID(ctx context.Context, clientID, id int64) (*entity.IngredientDish, error)
	Delete(ctx context.Context, clientID, id int64) error
}
