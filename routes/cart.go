package routes

import (
	cartController "github.com/UD-Cloth/backend/controllers/cart"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App, ctl *cartController.Controller, auth *middlewares.Auth) {
	app.Get("/api/cart", auth.Protect, ctl.GetCart)
	app.Post("/api/cart", auth.Protect, ctl.AddToCart)
	app.Delete("/api/cart", auth.Protect, ctl.ClearCart)
	app.Put("/api/cart/:variantId", auth.Protect, ctl.UpdateCartItem)
	app.Delete("/api/cart/:variantId", auth.Protect, ctl.RemoveFromCart)
}
