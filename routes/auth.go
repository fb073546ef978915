package routes

import (
	authController "github.com/UD-Cloth/backend/controllers/auth"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, ctl *authController.Controller, auth *middlewares.Auth) {
	app.Post("/api/auth/register", ctl.Register)
	app.Post("/api/auth/login", ctl.Login)

	app.Get("/api/auth/profile", auth.Protect, ctl.GetProfile)
	app.Put("/api/auth/profile", auth.Protect, ctl.UpdateProfile)
	app.Get("/api/auth/dashboard", auth.Protect, ctl.GetDashboard)

	app.Get("/api/auth/wishlist", auth.Protect, ctl.GetWishlist)
	app.Post("/api/auth/wishlist", auth.Protect, ctl.ToggleWishlist)
}
