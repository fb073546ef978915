package routes

import (
	categoryController "github.com/UD-Cloth/backend/controllers/categories"
	contactController "github.com/UD-Cloth/backend/controllers/contact"
	statsController "github.com/UD-Cloth/backend/controllers/stats"
	uploadController "github.com/UD-Cloth/backend/controllers/upload"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App, ctl *categoryController.Controller) {
	app.Get("/api/categories", ctl.GetCategories)
}

func StatsRoutes(app *fiber.App, ctl *statsController.Controller, auth *middlewares.Auth) {
	app.Get("/api/admin/stats", auth.Protect, auth.AdminOnly, ctl.GetStats)
}

func ContactRoutes(app *fiber.App, ctl *contactController.Controller) {
	app.Post("/api/contact", ctl.SubmitContact)
}

func UploadRoutes(app *fiber.App, ctl *uploadController.Controller, auth *middlewares.Auth) {
	app.Post("/api/upload", auth.Protect, auth.AdminOnly, ctl.UploadImage)
}
