package statsController

import (
	"context"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/responses"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Controller struct {
	orders   *mongo.Collection
	products *mongo.Collection
	users    *mongo.Collection
}

func New(client *mongo.Client) *Controller {
	return &Controller{
		orders:   configs.GetCollection(client, "orders"),
		products: configs.GetCollection(client, "products"),
		users:    configs.GetCollection(client, "users"),
	}
}

type dayBucket struct {
	Date    string  `bson:"_id" json:"date"`
	Count   int64   `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// GetStats computes the read-only admin dashboard numbers.
func (ctl *Controller) GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fail := func(message string) error {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: message,
		})
	}

	// Total revenue: sum of all order totals.
	revenuePipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
	}
	cursor, err := ctl.orders.Aggregate(ctx, revenuePipeline)
	if err != nil {
		return fail("Error computing revenue")
	}
	var revenueRows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &revenueRows); err != nil {
		return fail("Error computing revenue")
	}
	totalRevenue := 0.0
	if len(revenueRows) > 0 {
		totalRevenue = revenueRows[0].Total
	}

	totalOrders, err := ctl.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fail("Error counting orders")
	}
	totalProducts, err := ctl.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fail("Error counting products")
	}
	totalCustomers, err := ctl.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fail("Error counting customers")
	}

	// Daily buckets, ascending, at most 30.
	seriesPipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "createdAt", Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$createdAt"},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: 30}},
	}
	cursor, err = ctl.orders.Aggregate(ctx, seriesPipeline)
	if err != nil {
		return fail("Error computing order series")
	}
	ordersOverTime := []dayBucket{}
	if err := cursor.All(ctx, &ordersOverTime); err != nil {
		return fail("Error computing order series")
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched stats",
		Result: &fiber.Map{
			"data": fiber.Map{
				"totalRevenue":   totalRevenue,
				"totalOrders":    totalOrders,
				"totalProducts":  totalProducts,
				"totalCustomers": totalCustomers,
				"ordersOverTime": ordersOverTime,
			},
		},
	})
}
