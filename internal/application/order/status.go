package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ChangeStatus avanza el pedido por RECEIVED → PREPARING → DONE y registra la fila de historial
// en la misma transacción. CANCELLED y los retrocesos devuelven domain.ErrInvalidTransition.
func (uc *UseCase) ChangeStatus(ctx context.Context, orderID int64, in dto.ChangeStatusRequest) (*dto.OrderResponse, error) {
	scope, err := tenancy.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(in.Status); err != nil {
		return nil, err
	}

	var order *entity.Order
	err = uc.tx.RunOrder(ctx, func(r Repos) error {
		o, err := r.Orders.GetForUpdate(ctx, scope.ClientID, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		order = o
		if err := uc.transition(ctx, r, order, in.Status, in.Description, scope.UserID); err != nil {
			return err
		}
		return loadOrder(ctx, r, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func checkStatus(status string) error {
	if status == entity.OrderCancelled {
		return fmt.Errorf("%s: %w", status, domain.ErrInvalidTransition)
	}
	if !entity.ValidOrderStatus(status) {
		return domain.Invalid("status", "debe ser RECEIVED, PREPARING o DONE")
	}
	return nil
}

// transition aplica el cambio sobre order (ya bloqueado), lo persiste y agrega el historial.
func (uc *UseCase) transition(ctx context.Context, r Repos, order *entity.Order, to, description string, userID int64) error {
	if !entity.CanTransition(order.Status, to) {
		return fmt.Errorf("%s → %s: %w", order.Status, to, domain.ErrInvalidTransition)
	}
	now := uc.now()
	switch to {
	case entity.OrderPreparing:
		order.StartPreparation = &now
	case entity.OrderDone:
		order.EndPreparation = &now
	}
	order.Status = to
	order.UpdatedAt = now
	if err := r.Orders.Update(ctx, order); err != nil {
		return fmt.Errorf("actualizar pedido: %w", err)
	}
	return appendHistory(ctx, r, order, userID, description, now)
}

func appendHistory(ctx context.Context, r Repos, order *entity.Order, userID int64, description string, now time.Time) error {
	h := &entity.OrderHistory{
		TenantOwned: entity.TenantOwned{ClientID: order.ClientID},
		OrderID:     order.ID,
		Status:      order.Status,
		Description: description,
		Timestamp:   now,
		ChangedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.History.Append(ctx, h); err != nil {
		return fmt.Errorf("registrar historial: %w", err)
	}
	return nil
}

// History devuelve la bitácora de estados del pedido, de la más antigua a la más reciente.
func (uc *UseCase) History(ctx context.Context, orderID int64) ([]dto.OrderHistoryResponse, error) {
	order, err := tenancy.NewGuard[entity.Order](uc.repos.Orders).Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repos.History.ListByOrder(ctx, order.ClientID, order.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, toHistoryResponse(h))
	}
	return out, nil
}
