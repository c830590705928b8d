package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC  *auth.AuthUseCase
	OrderUC *order.UseCase
	Log     *logger.Logger
	Metrics *Metrics // nil: sin /metrics
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID(), RequestLogger(log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	v1 := app.Group("/v1")
	authenticated := []fiber.Handler{AuthMiddleware(deps.AuthUC), TenantScope()}

	// Auth
	authGroup := v1.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Post("/token/refresh", authHandler.Refresh)
	authGroup.Get("/me", append(authenticated, authHandler.Me)...)

	// Rutas protegidas: todo se filtra por el client del token
	protected := v1.Group("/order", authenticated...)

	tables := protected.Group("/tables")
	tableHandler := NewTableHandler(deps.OrderUC)
	tables.Get("/", tableHandler.List)
	tables.Post("/", tableHandler.Create)
	tables.Get("/:id", tableHandler.GetByID)
	tables.Put("/:id", tableHandler.Update)
	tables.Delete("/:id", tableHandler.Delete)

	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.OrderUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	dishes := protected.Group("/dishes")
	dishHandler := NewDishHandler(deps.OrderUC)
	dishes.Get("/", dishHandler.List)
	dishes.Post("/", dishHandler.Create)
	dishes.Get("/:id", dishHandler.GetByID)
	dishes.Put("/:id", dishHandler.Update)
	dishes.Delete("/:id", dishHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/status", orderHandler.ChangeStatus)
	orders.Get("/:id/history", orderHandler.History)
	orders.Get("/:id/ticket", orderHandler.Ticket)

	orderDishes := protected.Group("/order-dishes")
	orderDishHandler := NewOrderDishHandler(deps.OrderUC)
	orderDishes.Get("/", orderDishHandler.List)
	orderDishes.Post("/", orderDishHandler.Create)
	orderDishes.Get("/:id", orderDishHandler.GetByID)
	orderDishes.Patch("/:id", orderDishHandler.Update)
	orderDishes.Delete("/:id", orderDishHandler.Delete)

	ingredientDishes := protected.Group("/ingredient-dishes")
	ingredientDishHandler := NewIngredientDishHandler(deps.OrderUC)
	ingredientDishes.Post("/", ingredientDishHandler.Create)
	ingredientDishes.Get("/:id", ingredientDishHandler.GetByID)
	ingredientDishes.Delete("/:id", ingredientDishHandler.Delete)
}
