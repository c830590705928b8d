package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
)

// TableHandler maneja las mesas del client autenticado.
type TableHandler struct {
	uc *order.UseCase
}

// NewTableHandler construye el handler.
func NewTableHandler(uc *order.UseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// Create godoc
// @Summary      Crear mesa
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TableRequest  true  "number, description, status"
// @Success      201   {object}  dto.TableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/order/tables/ [post]
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var in dto.TableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateTable(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mesas
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TableResponse
// @Router       /v1/order/tables/ [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTables(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mesa
// @Tags         tables
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la mesa"
// @Success      200  {object}  dto.TableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/tables/{id}/ [get]
func (h *TableHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetTable(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar mesa
// @Tags         tables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID de la mesa"
// @Param        body  body  dto.TableRequest  true  "number, description, status"
// @Success      200   {object}  dto.TableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/tables/{id}/ [put]
func (h *TableHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.TableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateTable(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar mesa
// @Tags         tables
// @Security     Bearer
// @Param        id   path  int  true  "ID de la mesa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /v1/order/tables/{id}/ [delete]
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteTable(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IngredientHandler maneja los ingredientes del client autenticado.
type IngredientHandler struct {
	uc *order.UseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *order.UseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngredientRequest  true  "name, description"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/order/ingredients/ [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateIngredient(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /v1/order/ingredients/ [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListIngredients(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ingrediente"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/ingredients/{id}/ [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetIngredient(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del ingrediente"
// @Param        body  body  dto.IngredientRequest  true  "name, description"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/ingredients/{id}/ [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.IngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateIngredient(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ingrediente
// @Tags         ingredients
// @Security     Bearer
// @Param        id   path  int  true  "ID del ingrediente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /v1/order/ingredients/{id}/ [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteIngredient(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DishHandler maneja los platos; el alta crea plato e ingredientes en una sola transacción.
type DishHandler struct {
	uc *order.UseCase
}

// NewDishHandler construye el handler.
func NewDishHandler(uc *order.UseCase) *DishHandler {
	return &DishHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plato con sus ingredientes
// @Tags         dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DishRequest  true  "name, description, status, price, ingredients"
// @Success      201   {object}  dto.DishResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/dishes/ [post]
func (h *DishHandler) Create(c *fiber.Ctx) error {
	var in dto.DishRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateDish(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar platos
// @Tags         dishes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DishResponse
// @Router       /v1/order/dishes/ [get]
func (h *DishHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListDishes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plato
// @Tags         dishes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del plato"
// @Success      200  {object}  dto.DishResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/order/dishes/{id}/ [get]
func (h *DishHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetDish(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plato
// @Description  Los ingredientes se administran en /v1/order/ingredient-dishes/.
// @Tags         dishes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del plato"
// @Param        body  body  dto.DishRequest  true  "name, description, status, price"
// @Success      200   {object}  dto.DishResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/order/dishes/{id}/ [put]
func (h *DishHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.DishRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateDish(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plato
// @Tags         dishes
// @Security     Bearer
// @Param        id   path  int  true  "ID del plato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /v1/order/dishes/{id}/ [delete]
func (h *DishHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteDish(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
