package order

import (
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func toTableResponse(t *entity.Table) *dto.TableResponse {
	return &dto.TableResponse{ID: t.ID, Number: t.Number, Status: t.Status, Description: t.Description}
}

func toIngredientResponse(i *entity.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{ID: i.ID, Name: i.Name, Description: i.Description}
}

func toIngredientList(list []*entity.Ingredient) []dto.IngredientResponse {
	out := make([]dto.IngredientResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toIngredientResponse(i))
	}
	return out
}

func toDishResponse(d *entity.Dish) *dto.DishResponse {
	return &dto.DishResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      d.Status,
		Price:       d.Price.StringFixed(2),
		Ingredients: toIngredientList(d.Ingredients),
	}
}

func toOrderSummary(o *entity.Order) dto.OrderSummary {
	return dto.OrderSummary{ID: o.ID, Table: o.TableID, Description: o.Description, CreatedBy: o.CreatedBy}
}

func toOrderDishResponse(o *entity.Order, line *entity.OrderDish) dto.OrderDishResponse {
	out := dto.OrderDishResponse{
		ID:                   line.ID,
		Order:                toOrderSummary(o),
		Description:          line.Description,
		Quantity:             line.Quantity,
		AdditionalIngredient: toIngredientList(line.AdditionalIngredients),
		RemovedIngredient:    toIngredientList(line.RemovedIngredients),
	}
	if line.Dish != nil {
		out.Dish = dto.DishSummary{
			ID:          line.Dish.ID,
			Name:        line.Dish.Name,
			Description: line.Dish.Description,
			Price:       line.Dish.Price.StringFixed(2),
		}
	} else {
		out.Dish = dto.DishSummary{ID: line.DishID}
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:               o.ID,
		Table:            o.TableID,
		Description:      o.Description,
		Status:           o.Status,
		CreatedBy:        o.CreatedBy,
		StartPreparation: o.StartPreparation,
		EndPreparation:   o.EndPreparation,
		Dishes:           make([]dto.OrderDishResponse, 0, len(o.Dishes)),
	}
	for _, line := range o.Dishes {
		out.Dishes = append(out.Dishes, toOrderDishResponse(o, line))
	}
	return out
}

func toHistoryResponse(h *entity.OrderHistory) dto.OrderHistoryResponse {
	return dto.OrderHistoryResponse{
		ID:          h.ID,
		Status:      h.Status,
		Description: h.Description,
		Timestamp:   h.Timestamp,
		ChangedBy:   h.ChangedBy,
	}
}
