package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// GetOrder devuelve el pedido con sus líneas.
func (uc *UseCase) GetOrder(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := tenancy.NewGuard[entity.Order](uc.repos.Orders).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := loadOrder(ctx, uc.repos, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListOrders lista los pedidos del client con sus líneas.
func (uc *UseCase) ListOrders(ctx context.Context) ([]*dto.OrderResponse, error) {
	list, err := tenancy.NewGuard[entity.Order](uc.repos.Orders).List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		if err := loadOrder(ctx, uc.repos, o); err != nil {
			return nil, err
		}
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// UpdateOrder cambia mesa y descripción; un cambio de status pasa por la máquina de estados
// y se registra en el historial dentro de la misma transacción.
func (uc *UseCase) UpdateOrder(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if err := checkStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	var order *entity.Order
	err = uc.tx.RunOrder(ctx, func(r Repos) error {
		o, err := r.Orders.GetForUpdate(ctx, scope.ClientID, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		order = o
		if in.Table != nil {
			if _, err := tenancy.Lookup[entity.Table](ctx, r.Tables, "table", *in.Table); err != nil {
				return err
			}
			order.TableID = *in.Table
		}
		if in.Description != nil {
			order.Description = *in.Description
		}
		order.UpdatedAt = uc.now()
		if in.Status != nil && *in.Status != order.Status {
			if err := uc.transition(ctx, r, order, *in.Status, "", scope.UserID); err != nil {
				return err
			}
		} else if err := tenancy.NewGuard[entity.Order](r.Orders).Update(ctx, order); err != nil {
			return fmt.Errorf("actualizar pedido: %w", err)
		}
		return loadOrder(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// DeleteOrder borra el pedido y su historial. Un pedido con líneas devuelve domain.ErrConflict.
func (uc *UseCase) DeleteOrder(ctx context.Context, id int64) error {
	return tenancy.NewGuard[entity.Order](uc.repos.Orders).Delete(ctx, id)
}
