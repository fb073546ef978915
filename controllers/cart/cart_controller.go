package cartController

import (
	"context"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/validators"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Controller struct {
	carts    *mongo.Collection
	products *mongo.Collection
}

func New(client *mongo.Client) *Controller {
	return &Controller{
		carts:    configs.GetCollection(client, "carts"),
		products: configs.GetCollection(client, "products"),
	}
}

// getOrCreate loads the user's cart, creating an empty one on first
// access.
func (ctl *Controller) getOrCreate(ctx context.Context, userId primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart)
	if err == nil {
		return &cart, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now()
	cart = models.Cart{
		Id:        primitive.NewObjectID(),
		User:      userId,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := ctl.carts.InsertOne(ctx, cart); err != nil {
		// Concurrent first access: the unique user index rejects the
		// second insert, so reload the winner.
		if mongo.IsDuplicateKeyError(err) {
			if err := ctl.carts.FindOne(ctx, bson.M{"user": userId}).Decode(&cart); err != nil {
				return nil, err
			}
			return &cart, nil
		}
		return nil, err
	}
	return &cart, nil
}

// populate attaches product display documents to each cart line.
func (ctl *Controller) populate(ctx context.Context, cart *models.Cart) error {
	if len(cart.Items) == 0 {
		return nil
	}

	productIds := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		productIds = append(productIds, item.ProductId)
	}

	cursor, err := ctl.products.Find(ctx, bson.M{"_id": bson.M{"$in": productIds}})
	if err != nil {
		return err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return err
	}

	byId := make(map[primitive.ObjectID]*models.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}
	for i := range cart.Items {
		cart.Items[i].Product = byId[cart.Items[i].ProductId]
	}
	return nil
}

func (ctl *Controller) save(ctx context.Context, cart *models.Cart) error {
	_, err := ctl.carts.UpdateOne(ctx, bson.M{"_id": cart.Id}, bson.M{
		"$set": bson.M{"items": cart.Items, "updatedAt": time.Now()},
	})
	return err
}

func (ctl *Controller) respondWithCart(c *fiber.Ctx, ctx context.Context, status int, message string, cart *models.Cart) error {
	if err := ctl.populate(ctx, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart products",
		})
	}
	return c.Status(status).JSON(responses.APIResponse{
		Status:  status,
		Message: message,
		Result:  &fiber.Map{"data": cart},
	})
}

// GetCart returns the cart, creating an empty one on first access.
func (ctl *Controller) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	cart, err := ctl.getOrCreate(ctx, user.Id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	return ctl.respondWithCart(c, ctx, fiber.StatusOK, "Fetched cart", cart)
}

type AddToCartRequest struct {
	ProductId       string                  `json:"productId" validate:"required"`
	VariantId       string                  `json:"variantId" validate:"required"`
	VariantTitle    string                  `json:"variantTitle" validate:"required"`
	Price           models.ItemPrice        `json:"price"`
	Quantity        int                     `json:"quantity" validate:"required,min=1"`
	SelectedOptions []models.SelectedOption `json:"selectedOptions"`
}

// AddToCart merges the item by variantId: an existing line's quantity is
// incremented, a new variant is appended.
func (ctl *Controller) AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	var reqBody AddToCartRequest
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

	productId, err := primitive.ObjectIDFromHex(reqBody.ProductId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	if reqBody.Price.CurrencyCode == "" {
		reqBody.Price.CurrencyCode = "INR"
	}
	if reqBody.SelectedOptions == nil {
		reqBody.SelectedOptions = []models.SelectedOption{}
	}

	cart, err := ctl.getOrCreate(ctx, user.Id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	cart.Add(models.CartItem{
		ProductId:       productId,
		VariantId:       reqBody.VariantId,
		VariantTitle:    reqBody.VariantTitle,
		Price:           reqBody.Price,
		Quantity:        reqBody.Quantity,
		SelectedOptions: reqBody.SelectedOptions,
	})

	if err := ctl.save(ctx, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return ctl.respondWithCart(c, ctx, fiber.StatusCreated, "Added to cart", cart)
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity exactly; zero or less removes it.
func (ctl *Controller) UpdateCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)
	variantId := c.Params("variantId")

	var reqBody UpdateCartItemRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var cart models.Cart
	if err := ctl.carts.FindOne(ctx, bson.M{"user": user.Id}).Decode(&cart); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart not found",
		})
	}

	if !cart.SetQuantity(variantId, reqBody.Quantity) {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Item not found in cart",
		})
	}

	if err := ctl.save(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return ctl.respondWithCart(c, ctx, fiber.StatusOK, "Cart updated", &cart)
}

// RemoveFromCart drops a line by variantId.
func (ctl *Controller) RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)
	variantId := c.Params("variantId")

	var cart models.Cart
	if err := ctl.carts.FindOne(ctx, bson.M{"user": user.Id}).Decode(&cart); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart not found",
		})
	}

	cart.Remove(variantId)

	if err := ctl.save(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return ctl.respondWithCart(c, ctx, fiber.StatusOK, "Removed from cart", &cart)
}

// ClearCart empties the items; the cart document itself persists.
func (ctl *Controller) ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	var cart models.Cart
	if err := ctl.carts.FindOne(ctx, bson.M{"user": user.Id}).Decode(&cart); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart not found",
		})
	}

	cart.Items = []models.CartItem{}

	if err := ctl.save(ctx, &cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error clearing cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared",
	})
}
