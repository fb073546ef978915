package routes

import (
	orderController "github.com/UD-Cloth/backend/controllers/orders"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App, ctl *orderController.Controller, auth *middlewares.Auth) {
	// Guest checkout is allowed: the order simply carries no user ref.
	app.Post("/api/orders", auth.OptionalAuth, ctl.CreateOrder)

	app.Get("/api/orders", auth.Protect, auth.AdminOnly, ctl.GetOrders)
	app.Get("/api/orders/export", auth.Protect, auth.AdminOnly, ctl.ExportOrders)
	app.Get("/api/orders/myorders", auth.Protect, ctl.GetMyOrders)
	app.Get("/api/orders/:id", auth.Protect, ctl.GetOrderById)
	app.Put("/api/orders/:id/deliver", auth.Protect, auth.AdminOnly, ctl.MarkDelivered)
}
