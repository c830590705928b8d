package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func TestCanTransition_Lineal(t *testing.T) {
	assert.True(t, entity.CanTransition(entity.OrderReceived, entity.OrderPreparing))
	assert.True(t, entity.CanTransition(entity.OrderPreparing, entity.OrderDone))

	assert.False(t, entity.CanTransition(entity.OrderReceived, entity.OrderDone), "no se puede saltar PREPARING")
	assert.False(t, entity.CanTransition(entity.OrderPreparing, entity.OrderReceived), "no hay vuelta atrás")
	assert.False(t, entity.CanTransition(entity.OrderDone, entity.OrderPreparing))
	assert.False(t, entity.CanTransition(entity.OrderReceived, entity.OrderCancelled))
}

func TestValidOrderStatus_SinCancelled(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderDone))
	assert.False(t, entity.ValidOrderStatus(entity.OrderCancelled))
	assert.False(t, entity.ValidOrderStatus("received"))
}

func TestOrderDish_Subtotal(t *testing.T) {
	line := &entity.OrderDish{Quantity: 3}
	assert.True(t, line.Subtotal().IsZero(), "sin plato cargado el subtotal es cero")

	line.Dish = &entity.Dish{Price: decimal.RequireFromString("12.50")}
	assert.Equal(t, "37.50", line.Subtotal().StringFixed(2))
}

func TestTenantOwned(t *testing.T) {
	tbl := &entity.Table{Number: 1}
	tbl.SetTenantID(9)
	assert.Equal(t, int64(9), tbl.TenantID())
	assert.Equal(t, int64(9), tbl.ClientID)
}
