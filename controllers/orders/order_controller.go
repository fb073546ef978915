package orderController

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Controller struct {
	orders *mongo.Collection
}

func New(client *mongo.Client) *Controller {
	return &Controller{
		orders: configs.GetCollection(client, "orders"),
	}
}

type OrderItemRequest struct {
	ProductId       string                  `json:"productId" validate:"required"`
	VariantId       string                  `json:"variantId" validate:"required"`
	Name            string                  `json:"name" validate:"required"`
	Image           string                  `json:"image"`
	Price           models.ItemPrice        `json:"price"`
	Quantity        int                     `json:"quantity" validate:"required,min=1"`
	SelectedOptions []models.SelectedOption `json:"selectedOptions"`
}

type CreateOrderRequest struct {
	Items         []OrderItemRequest  `json:"items" validate:"required,min=1,dive"`
	ShippingInfo  models.ShippingInfo `json:"shippingInfo"`
	PaymentMethod string              `json:"paymentMethod" validate:"required"`
	TotalPrice    float64             `json:"totalPrice" validate:"required,gt=0"`
}

// CreateOrder persists an immutable snapshot of the checkout. Guests are
// allowed: with no authenticated user the order carries no user ref.
func (ctl *Controller) CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody CreateOrderRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if msg := validators.Check(reqBody); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
		})
	}
	if strings.TrimSpace(reqBody.ShippingInfo.Address) == "" ||
		strings.TrimSpace(reqBody.ShippingInfo.City) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Shipping address and city are required",
		})
	}

	items := make([]models.OrderItem, 0, len(reqBody.Items))
	for _, item := range reqBody.Items {
		productId, err := primitive.ObjectIDFromHex(item.ProductId)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid product id in items",
			})
		}
		if item.SelectedOptions == nil {
			item.SelectedOptions = []models.SelectedOption{}
		}
		items = append(items, models.OrderItem{
			ProductId:       productId,
			VariantId:       item.VariantId,
			Name:            item.Name,
			Image:           item.Image,
			Price:           item.Price,
			Quantity:        item.Quantity,
			SelectedOptions: item.SelectedOptions,
		})
	}

	now := time.Now()
	order := models.Order{
		Id:            primitive.NewObjectID(),
		Items:         items,
		ShippingInfo:  reqBody.ShippingInfo,
		PaymentMethod: reqBody.PaymentMethod,
		TotalPrice:    reqBody.TotalPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if user := middlewares.CurrentUser(c); user != nil {
		order.User = &user.Id
	}

	if _, err := ctl.orders.InsertOne(ctx, order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Order created",
		Result:  &fiber.Map{"data": order},
	})
}

// GetMyOrders lists the authenticated user's orders, newest first.
func (ctl *Controller) GetMyOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	orders := []models.Order{}
	cursor, err := ctl.orders.Find(ctx, bson.M{"user": user.Id}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched orders",
		Result:  &fiber.Map{"data": orders},
	})
}

// GetOrders lists all orders (admin).
func (ctl *Controller) GetOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	orders := []models.Order{}
	cursor, err := ctl.orders.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched orders",
		Result:  &fiber.Map{"data": orders},
	})
}

// GetOrderById returns one order to its owner or an admin.
func (ctl *Controller) GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	orderId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var order models.Order
	if err := ctl.orders.FindOne(ctx, bson.M{"_id": orderId}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching order",
		})
	}

	if !user.IsAdmin && !order.OwnedBy(user.Id) {
		return c.Status(fiber.StatusForbidden).JSON(responses.APIResponse{
			Status:  fiber.StatusForbidden,
			Message: "Not authorized to view this order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched order",
		Result:  &fiber.Map{"data": order},
	})
}

// MarkDelivered flips the delivered flag, once. There is no
// un-delivering.
func (ctl *Controller) MarkDelivered(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	now := time.Now()
	var updated models.Order
	err = ctl.orders.FindOneAndUpdate(
		ctx,
		bson.M{"_id": orderId, "isDelivered": false},
		bson.M{"$set": bson.M{"isDelivered": true, "deliveredAt": now, "updatedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Either the order does not exist or it was already delivered.
		var existing models.Order
		if findErr := ctl.orders.FindOne(ctx, bson.M{"_id": orderId}).Decode(&existing); findErr != nil {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order already delivered",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Order delivered",
		Result:  &fiber.Map{"data": updated},
	})
}

// ExportOrders streams all orders as an Excel workbook (admin).
func (ctl *Controller) ExportOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orders := []models.Order{}
	cursor, err := ctl.orders.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing orders",
		})
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error creating Excel sheet",
		})
	}

	headers := []string{"ID", "User", "Customer", "Email", "Items", "Total", "Delivered", "DeliveredAt", "CreatedAt"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.Id.Hex())
		if o.User != nil {
			row.AddCell().SetValue(o.User.Hex())
		} else {
			row.AddCell().SetValue("guest")
		}
		row.AddCell().SetValue(strings.TrimSpace(o.ShippingInfo.FirstName + " " + o.ShippingInfo.LastName))
		row.AddCell().SetValue(o.ShippingInfo.Email)

		itemCount := 0
		for _, item := range o.Items {
			itemCount += item.Quantity
		}
		row.AddCell().SetValue(itemCount)
		row.AddCell().SetValue(o.TotalPrice)
		row.AddCell().SetValue(fmt.Sprintf("%t", o.IsDelivered))
		if o.DeliveredAt != nil {
			row.AddCell().SetValue(o.DeliveredAt.Format("2006-01-02 15:04:05"))
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Set("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error writing Excel file",
		})
	}
	return nil
}
