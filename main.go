package main

import (
	"flag"
	"log"

	"github.com/UD-Cloth/backend/configs"
	authController "github.com/UD-Cloth/backend/controllers/auth"
	cartController "github.com/UD-Cloth/backend/controllers/cart"
	categoryController "github.com/UD-Cloth/backend/controllers/categories"
	contactController "github.com/UD-Cloth/backend/controllers/contact"
	orderController "github.com/UD-Cloth/backend/controllers/orders"
	productController "github.com/UD-Cloth/backend/controllers/products"
	reviewController "github.com/UD-Cloth/backend/controllers/reviews"
	statsController "github.com/UD-Cloth/backend/controllers/stats"
	uploadController "github.com/UD-Cloth/backend/controllers/upload"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/UD-Cloth/backend/routes"
	"github.com/UD-Cloth/backend/seed"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	runSeed := flag.Bool("seed", false, "load seed data and exit")
	flag.Parse()

	configs.LoadEnv()

	client := configs.ConnectDB()

	if *runSeed {
		if err := seed.Run(client); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := configs.EnsureIndexes(client); err != nil {
		log.Fatal(err)
	}

	secret := configs.EnvJWTSecret()

	auth := &middlewares.Auth{
		Secret: secret,
		Lookup: middlewares.MongoLookup(configs.GetCollection(client, "users")),
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(logger.New())

	app.Static("/uploads", uploadController.UploadsDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("UD Cloth API is running")
	})

	routes.AuthRoutes(app, authController.New(client, secret), auth)
	routes.ProductRoutes(app, productController.New(client), reviewController.New(client), auth)
	routes.CartRoutes(app, cartController.New(client), auth)
	routes.OrderRoutes(app, orderController.New(client), auth)
	routes.CategoryRoutes(app, categoryController.New(client))
	routes.StatsRoutes(app, statsController.New(client), auth)
	routes.ContactRoutes(app, contactController.New(client))
	routes.UploadRoutes(app, uploadController.New(), auth)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
