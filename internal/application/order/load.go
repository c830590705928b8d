package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// loadDish carga los ingredientes del plato (ordenados por nombre).
func loadDish(ctx context.Context, r Repos, d *entity.Dish) error {
	ings, err := r.Ingredients.ListByDish(ctx, d.ClientID, d.ID)
	if err != nil {
		return fmt.Errorf("listar ingredientes del plato %d: %w", d.ID, err)
	}
	d.Ingredients = ings
	return nil
}

// loadLine carga plato y modificadores de una línea.
func loadLine(ctx context.Context, r Repos, line *entity.OrderDish) error {
	dish, err := r.Dishes.GetByID(ctx, line.ClientID, line.DishID)
	if err != nil {
		return err
	}
	line.Dish = dish
	if line.AdditionalIngredients, err = r.OrderDishes.ListIngredients(ctx, line.ClientID, line.ID, entity.ModifierAdditional); err != nil {
		return err
	}
	if line.RemovedIngredients, err = r.OrderDishes.ListIngredients(ctx, line.ClientID, line.ID, entity.ModifierRemoved); err != nil {
		return err
	}
	return nil
}

// loadOrder carga las líneas del pedido con su detalle.
func loadOrder(ctx context.Context, r Repos, o *entity.Order) error {
	lines, err := r.OrderDishes.ListByOrder(ctx, o.ClientID, o.ID)
	if err != nil {
		return fmt.Errorf("listar líneas del pedido %d: %w", o.ID, err)
	}
	for _, line := range lines {
		if err := loadLine(ctx, r, line); err != nil {
			return err
		}
	}
	o.Dishes = lines
	return nil
}
