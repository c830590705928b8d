package order

import (
	"context"
	"errors"

	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ErrTicketDisabled se devuelve si el caso de uso se construyó sin TicketRenderer.
var ErrTicketDisabled = errors.New("generación de comandas no configurada")

// Ticket genera la comanda de cocina (PDF) del pedido.
func (uc *UseCase) Ticket(ctx context.Context, orderID int64) ([]byte, error) {
	if uc.renderer == nil {
		return nil, ErrTicketDisabled
	}
	order, err := tenancy.NewGuard[entity.Order](uc.repos.Orders).Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := loadOrder(ctx, uc.repos, order); err != nil {
		return nil, err
	}
	table, err := uc.repos.Tables.GetByID(ctx, order.ClientID, order.TableID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	if table == nil || client == nil {
		return nil, domain.ErrNotFound
	}
	return uc.renderer.RenderTicket(ctx, Ticket{Client: client, Table: table, Order: order})
}
