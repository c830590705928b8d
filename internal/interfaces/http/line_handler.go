package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
)

// OrderDishHandler maneja las líneas de pedido sueltas.
type OrderDishHandler struct {
	uc *order.UseCase
}

// NewOrderDishHandler construye el handler.
func NewOrderDishHandler(uc *order.UseCase) *OrderDishHandler {
	return &OrderDishHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar una línea a un pedido
// @Tags         order-dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderDishRequest  true  "order, dish, quantity, modificadores"
// @Success      201   {object}  dto.OrderDishResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/order-dishes/ [post]
func (h *OrderDishHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderDishRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateOrderDish(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar líneas de pedido
// @Tags         order-dishes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderDishResponse
// @Router       /v1/order/order-dishes/ [get]
func (h *OrderDishHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrderDishes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea de pedido
// @Tags         order-dishes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.OrderDishResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/order-dishes/{id}/ [get]
func (h *OrderDishHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetOrderDish(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cantidad o descripción de una línea
// @Tags         order-dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID de la línea"
// @Param        body  body  dto.OrderDishUpdateRequest  true  "quantity, description"
// @Success      200   {object}  dto.OrderDishResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/order-dishes/{id}/ [patch]
func (h *OrderDishHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.OrderDishUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateOrderDish(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea de pedido
// @Tags         order-dishes
// @Security     Bearer
// @Param        id   path  int  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/order-dishes/{id}/ [delete]
func (h *OrderDishHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteOrderDish(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IngredientDishHandler asocia ingredientes a platos ya creados.
type IngredientDishHandler struct {
	uc *order.UseCase
}

// NewIngredientDishHandler construye el handler.
func NewIngredientDishHandler(uc *order.UseCase) *IngredientDishHandler {
	return &IngredientDishHandler{uc: uc}
}

// Create godoc
// @Summary      Asociar ingrediente a plato
// @Tags         ingredient-dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngredientDishRequest  true  "dish, ingredient"
// @Success      201   {object}  dto.IngredientDishResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/ingredient-dishes/ [post]
func (h *IngredientDishHandler) Create(c *fiber.Ctx) error {
	var in dto.IngredientDishRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateIngredientDish(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener asociación ingrediente-plato
// @Tags         ingredient-dishes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la asociación"
// @Success      200  {object}  dto.IngredientDishResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/ingredient-dishes/{id}/ [get]
func (h *IngredientDishHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetIngredientDish(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar ingrediente de un plato
// @Tags         ingredient-dishes
// @Security     Bearer
// @Param        id   path  int  true  "ID de la asociación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/ingredient-dishes/{id}/ [delete]
func (h *IngredientDishHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteIngredientDish(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
