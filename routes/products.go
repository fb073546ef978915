package routes

import (
	productController "github.com/UD-Cloth/backend/controllers/products"
	reviewController "github.com/UD-Cloth/backend/controllers/reviews"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/gofiber/fiber/v2"
)

func ProductRoutes(app *fiber.App, products *productController.Controller, reviews *reviewController.Controller, auth *middlewares.Auth) {
	app.Get("/api/products", products.GetProducts)
	// /search before /:id so "search" is not parsed as a product id.
	app.Get("/api/products/search", products.SearchProducts)
	app.Get("/api/products/:id", products.GetProductById)

	app.Post("/api/products", auth.Protect, auth.AdminOnly, products.CreateProduct)
	app.Put("/api/products/:id", auth.Protect, auth.AdminOnly, products.UpdateProduct)
	app.Delete("/api/products/:id", auth.Protect, auth.AdminOnly, products.DeleteProduct)

	app.Get("/api/products/:id/reviews", reviews.GetProductReviews)
	app.Post("/api/products/:id/reviews", auth.Protect, reviews.AddReview)
}
