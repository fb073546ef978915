package categoryController

import (
	"context"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Controller struct {
	categories *mongo.Collection
}

func New(client *mongo.Client) *Controller {
	return &Controller{
		categories: configs.GetCollection(client, "categories"),
	}
}

func (ctl *Controller) GetCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories := []models.Category{}
	cursor, err := ctl.categories.Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching categories",
		})
	}
	if err := cursor.All(ctx, &categories); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing categories",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched categories",
		Result:  &fiber.Map{"data": categories},
	})
}
