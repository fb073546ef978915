package authController

import (
	"context"
	"strings"
	"time"

	"github.com/UD-Cloth/backend/configs"
	"github.com/UD-Cloth/backend/middlewares"
	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/utils"
	"github.com/UD-Cloth/backend/validators"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Controller struct {
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
	secret   string
}

func New(client *mongo.Client, secret string) *Controller {
	return &Controller{
		users:    configs.GetCollection(client, "users"),
		products: configs.GetCollection(client, "products"),
		orders:   configs.GetCollection(client, "orders"),
		secret:   secret,
	}
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (ctl *Controller) profilePayload(user *models.User, token string) fiber.Map {
	payload := fiber.Map{
		"_id":       user.Id.Hex(),
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"isAdmin":   user.IsAdmin,
	}
	if token != "" {
		payload["token"] = token
	}
	return payload
}

// Register creates a user and signs them in.
func (ctl *Controller) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody RegisterRequest
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

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))

	var existing models.User
	err := ctl.users.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User already exists",
		})
	} else if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
		})
	}

	hashed, err := utils.HashPassword(reqBody.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
		})
	}

	now := time.Now()
	newUser := models.User{
		Id:        primitive.NewObjectID(),
		FirstName: reqBody.FirstName,
		LastName:  reqBody.LastName,
		Email:     email,
		Password:  hashed,
		Phone:     reqBody.Phone,
		Wishlist:  []primitive.ObjectID{},
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := ctl.users.InsertOne(ctx, newUser); err != nil {
		// The unique email index is the authoritative duplicate guard.
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "User already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving user, please try again later",
		})
	}

	token, err := utils.CreateToken(ctl.secret, newUser.Id.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "User created successfully",
		Result:  &fiber.Map{"data": ctl.profilePayload(&newUser, token)},
	})
}

// Login verifies credentials and returns a fresh token.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody LoginRequest
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

	email := strings.ToLower(strings.TrimSpace(reqBody.Email))

	var user models.User
	err := ctl.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil || !utils.CheckPassword(reqBody.Password, user.Password) {
		// Same answer for unknown email and wrong password.
		return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	token, err := utils.CreateToken(ctl.secret, user.Id.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result:  &fiber.Map{"data": ctl.profilePayload(&user, token)},
	})
}

// GetProfile returns the authenticated user.
func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched profile",
		Result:  &fiber.Map{"data": user},
	})
}

type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Password   *string `json:"password" validate:"omitempty,min=8"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
}

// UpdateProfile applies only the fields present in the request.
func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	var reqBody UpdateProfileRequest
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

	update := bson.M{"updatedAt": time.Now()}
	if reqBody.FirstName != nil && *reqBody.FirstName != "" {
		update["firstName"] = *reqBody.FirstName
	}
	if reqBody.LastName != nil && *reqBody.LastName != "" {
		update["lastName"] = *reqBody.LastName
	}
	if reqBody.Password != nil && *reqBody.Password != "" {
		hashed, err := utils.HashPassword(*reqBody.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error hashing password",
			})
		}
		update["password"] = hashed
	}
	if reqBody.Phone != nil {
		update["phone"] = *reqBody.Phone
	}
	if reqBody.Address != nil {
		update["address"] = *reqBody.Address
	}
	if reqBody.City != nil {
		update["city"] = *reqBody.City
	}
	if reqBody.State != nil {
		update["state"] = *reqBody.State
	}
	if reqBody.PostalCode != nil {
		update["postalCode"] = *reqBody.PostalCode
	}

	var updated models.User
	err := ctl.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": user.Id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated",
		Result:  &fiber.Map{"data": updated},
	})
}

// GetDashboard returns the profile alongside recent order activity.
func (ctl *Controller) GetDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	orderCount, err := ctl.orders.CountDocuments(ctx, bson.M{"user": user.Id})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error counting orders",
		})
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(5)

	recentOrders := []models.Order{}
	cursor, err := ctl.orders.Find(ctx, bson.M{"user": user.Id}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}
	if err := cursor.All(ctx, &recentOrders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched dashboard",
		Result: &fiber.Map{
			"data": fiber.Map{
				"user":          user,
				"orderCount":    orderCount,
				"recentOrders":  recentOrders,
				"wishlistCount": len(user.Wishlist),
			},
		},
	})
}

func (ctl *Controller) populatedWishlist(ctx context.Context, user *models.User) ([]models.Product, error) {
	products := []models.Product{}
	if len(user.Wishlist) == 0 {
		return products, nil
	}

	cursor, err := ctl.products.Find(ctx, bson.M{"_id": bson.M{"$in": user.Wishlist}})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetWishlist returns the wishlist as full product documents.
func (ctl *Controller) GetWishlist(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	products, err := ctl.populatedWishlist(ctx, user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching wishlist",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched wishlist",
		Result:  &fiber.Map{"data": products},
	})
}

type ToggleWishlistRequest struct {
	ProductId string `json:"productId" validate:"required"`
}

// ToggleWishlist adds the product when absent, removes it when present.
func (ctl *Controller) ToggleWishlist(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	var reqBody ToggleWishlistRequest
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

	user.ToggleWishlist(productId)

	_, err = ctl.users.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{
		"$set": bson.M{"wishlist": user.Wishlist, "updatedAt": time.Now()},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating wishlist",
		})
	}

	products, err := ctl.populatedWishlist(ctx, user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching wishlist",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Wishlist updated",
		Result:  &fiber.Map{"data": products},
	})
}
