package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// CreateDish crea el plato y una asociación por ingrediente en una sola transacción.
// Un ingrediente inexistente o de otro client revierte todo (domain.ErrNotFound).
func (uc *UseCase) CreateDish(ctx context.Context, in dto.DishRequest) (*dto.DishResponse, error) {
	var v domain.Validator
	checkName(&v, in.Name)
	checkDescription(&v, in.Description)
	checkPrice(&v, in.Price)
	status := availability(&v, in.Status)
	if err := v.Err(); err != nil {
		return nil, err
	}

	now := uc.now()
	dish := &entity.Dish{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Status:      status,
		Price:       in.Price.Round(2),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.RunOrder(ctx, func(r Repos) error {
		if err := tenancy.NewGuard[entity.Dish](r.Dishes).Create(ctx, dish); err != nil {
			return fmt.Errorf("crear plato: %w", err)
		}
		if err := attachIngredients(ctx, r, dish, in.Ingredients, now); err != nil {
			return err
		}
		return loadDish(ctx, r, dish)
	})
	if err != nil {
		return nil, err
	}
	return toDishResponse(dish), nil
}

func attachIngredients(ctx context.Context, r Repos, dish *entity.Dish, ids []int64, now time.Time) error {
	ings, err := tenancy.LookupAll[entity.Ingredient](ctx, r.Ingredients, "ingredients", ids)
	if err != nil {
		return err
	}
	for _, ing := range ings {
		link := &entity.IngredientDish{DishID: dish.ID, IngredientID: ing.ID, CreatedAt: now, UpdatedAt: now}
		if err := r.IngredientDishes.Create(ctx, link); err != nil {
			return fmt.Errorf("asociar ingrediente %d: %w", ing.ID, err)
		}
	}
	return nil
}

// CreateOrder crea el pedido (RECEIVED), su primera fila de historial y todas las líneas con sus
// modificadores en una sola transacción. Cualquier línea inválida revierte el pedido completo.
// created_by siempre es el usuario del token.
func (uc *UseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateOrder(in); err != nil {
		return nil, err
	}

	now := uc.now()
	order := &entity.Order{
		TableID:     in.Table,
		Description: in.Description,
		Status:      entity.OrderReceived,
		CreatedBy:   scope.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunOrder(ctx, func(r Repos) error {
		if _, err := tenancy.Lookup[entity.Table](ctx, r.Tables, "table", in.Table); err != nil {
			return err
		}
		if err := tenancy.NewGuard[entity.Order](r.Orders).Create(ctx, order); err != nil {
			return fmt.Errorf("crear pedido: %w", err)
		}
		if err := appendHistory(ctx, r, order, scope.UserID, "", now); err != nil {
			return err
		}
		for i, item := range in.Dishes {
			if _, err := addLine(ctx, r, order, item, now); err != nil {
				return fmt.Errorf("dishes[%d]: %w", i, err)
			}
		}
		return loadOrder(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func validateOrder(in dto.CreateOrderRequest) error {
	var v domain.Validator
	v.Check(in.Table > 0, "table", "requerido")
	v.Check(in.Dishes != nil, "dishes", "requerido")
	for i, item := range in.Dishes {
		field := fmt.Sprintf("dishes[%d]", i)
		v.Check(item.Dish > 0, field+".dish", "requerido")
		checkQuantity(&v, field+".quantity", item.Quantity)
	}
	return v.Err()
}

func addLine(ctx context.Context, r Repos, order *entity.Order, item dto.OrderDishInput, now time.Time) (*entity.OrderDish, error) {
	if _, err := tenancy.Lookup[entity.Dish](ctx, r.Dishes, "dish", item.Dish); err != nil {
		return nil, err
	}
	added, err := tenancy.LookupAll[entity.Ingredient](ctx, r.Ingredients, "additional_ingredient", item.AdditionalIngredient)
	if err != nil {
		return nil, err
	}
	removed, err := tenancy.LookupAll[entity.Ingredient](ctx, r.Ingredients, "removed_ingredient", item.RemovedIngredient)
	if err != nil {
		return nil, err
	}

	line := &entity.OrderDish{
		OrderID:     order.ID,
		DishID:      item.Dish,
		Quantity:    *item.Quantity,
		Description: item.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tenancy.NewGuard[entity.OrderDish](r.OrderDishes).Create(ctx, line); err != nil {
		return nil, fmt.Errorf("crear línea: %w", err)
	}
	if len(added) > 0 {
		if err := r.OrderDishes.AddIngredients(ctx, line.ID, entity.ModifierAdditional, ids(added)); err != nil {
			return nil, err
		}
	}
	if len(removed) > 0 {
		if err := r.OrderDishes.AddIngredients(ctx, line.ID, entity.ModifierRemoved, ids(removed)); err != nil {
			return nil, err
		}
	}
	return line, nil
}

func ids(list []*entity.Ingredient) []int64 {
	out := make([]int64, 0, len(list))
	for _, i := range list {
		out = append(out, i.ID)
	}
	return out
}
