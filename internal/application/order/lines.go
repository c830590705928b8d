package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func (uc *UseCase) lines() *tenancy.Guard[entity.OrderDish, *entity.OrderDish] {
	return tenancy.NewGuard[entity.OrderDish](uc.repos.OrderDishes)
}

// lineResponse carga el detalle de la línea y el resumen de su pedido.
func lineResponse(ctx context.Context, r Repos, line *entity.OrderDish) (*dto.OrderDishResponse, error) {
	if err := loadLine(ctx, r, line); err != nil {
		return nil, err
	}
	order, err := r.Orders.GetByID(ctx, line.ClientID, line.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	out := toOrderDishResponse(order, line)
	return &out, nil
}

// CreateOrderDish agrega una línea a un pedido existente, con sus modificadores, en una transacción.
func (uc *UseCase) CreateOrderDish(ctx context.Context, in dto.CreateOrderDishRequest) (*dto.OrderDishResponse, error) {
	var v domain.Validator
	v.Check(in.Order > 0, "order", "requerido")
	v.Check(in.Dish > 0, "dish", "requerido")
	checkQuantity(&v, "quantity", in.Quantity)
	if err := v.Err(); err != nil {
		return nil, err
	}

	var out *dto.OrderDishResponse
	err := uc.tx.RunOrder(ctx, func(r Repos) error {
		order, err := tenancy.Lookup[entity.Order](ctx, r.Orders, "order", in.Order)
		if err != nil {
			return err
		}
		line, err := addLine(ctx, r, order, in.OrderDishInput, uc.now())
		if err != nil {
			return err
		}
		out, err = lineResponse(ctx, r, line)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *UseCase) GetOrderDish(ctx context.Context, id int64) (*dto.OrderDishResponse, error) {
	line, err := uc.lines().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return lineResponse(ctx, uc.repos, line)
}

func (uc *UseCase) ListOrderDishes(ctx context.Context) ([]*dto.OrderDishResponse, error) {
	list, err := uc.lines().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderDishResponse, 0, len(list))
	for _, line := range list {
		resp, err := lineResponse(ctx, uc.repos, line)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// UpdateOrderDish cambia cantidad y descripción de la línea.
func (uc *UseCase) UpdateOrderDish(ctx context.Context, id int64, in dto.OrderDishUpdateRequest) (*dto.OrderDishResponse, error) {
	if in.Quantity != nil {
		var v domain.Validator
		checkQuantity(&v, "quantity", in.Quantity)
		if err := v.Err(); err != nil {
			return nil, err
		}
	}
	line, err := uc.lines().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		line.Quantity = *in.Quantity
	}
	if in.Description != nil {
		line.Description = *in.Description
	}
	line.UpdatedAt = uc.now()
	if err := uc.lines().Update(ctx, line); err != nil {
		return nil, fmt.Errorf("actualizar línea: %w", err)
	}
	return lineResponse(ctx, uc.repos, line)
}

// DeleteOrderDish borra la línea y sus modificadores.
func (uc *UseCase) DeleteOrderDish(ctx context.Context, id int64) error {
	return uc.lines().Delete(ctx, id)
}

// CreateIngredientDish asocia un ingrediente a un plato; ambos deben ser del client del token.
func (uc *UseCase) CreateIngredientDish(ctx context.Context, in dto.IngredientDishRequest) (*dto.IngredientDishResponse, error) {
	dish, err := tenancy.Lookup[entity.Dish](ctx, uc.repos.Dishes, "dish", in.Dish)
	if err != nil {
		return nil, err
	}
	ing, err := tenancy.Lookup[entity.Ingredient](ctx, uc.repos.Ingredients, "ingredient", in.Ingredient)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	link := &entity.IngredientDish{DishID: dish.ID, IngredientID: ing.ID, CreatedAt: now, UpdatedAt: now}
	if err := uc.repos.IngredientDishes.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("asociar ingrediente: %w", err)
	}
	return &dto.IngredientDishResponse{ID: link.ID}, nil
}

func (uc *UseCase) GetIngredientDish(ctx context.Context, id int64) (*dto.IngredientDishResponse, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	link, err := uc.repos.IngredientDishes.GetByID(ctx, scope.ClientID, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.IngredientDishResponse{ID: link.ID}, nil
}

func (uc *UseCase) DeleteIngredientDish(ctx context.Context, id int64) error {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return err
	}
	return uc.repos.IngredientDishes.Delete(ctx, scope.ClientID, id)
}
