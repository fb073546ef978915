package reviewController

import (
	"context"
	"strings"
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Controller struct {
	reviews  *mongo.Collection
	products *mongo.Collection
	users    *mongo.Collection
}

func New(client *mongo.Client) *Controller {
	return &Controller{
		reviews:  configs.GetCollection(client, "reviews"),
		products: configs.GetCollection(client, "products"),
		users:    configs.GetCollection(client, "users"),
	}
}

// attachUserNames joins reviewer display names onto the reviews.
func (ctl *Controller) attachUserNames(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	userIds := make([]primitive.ObjectID, 0, len(reviews))
	for _, r := range reviews {
		userIds = append(userIds, r.User)
	}

	cursor, err := ctl.users.Find(ctx, bson.M{"_id": bson.M{"$in": userIds}})
	if err != nil {
		return err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return err
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.Id] = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	for i := range reviews {
		reviews[i].UserName = names[reviews[i].User]
	}
	return nil
}

// GetProductReviews lists a product's reviews newest first.
func (ctl *Controller) GetProductReviews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	reviews := []models.Review{}
	cursor, err := ctl.reviews.Find(ctx, bson.M{"product": productId}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching reviews",
		})
	}
	if err := cursor.All(ctx, &reviews); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing reviews",
		})
	}

	if err := ctl.attachUserNames(ctx, reviews); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching reviewers",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.APIResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched reviews",
		Result:  &fiber.Map{"data": reviews},
	})
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// AddReview inserts one review per (user, product) and recomputes the
// product's aggregate rating from all of its reviews.
func (ctl *Controller) AddReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := middlewares.CurrentUser(c)

	productId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product id",
		})
	}

	var reqBody AddReviewRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.Rating < 1 || reqBody.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Rating must be between 1 and 5",
		})
	}
	if strings.TrimSpace(reqBody.Comment) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Comment is required",
		})
	}
	if msg := validators.Check(reqBody); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
		})
	}

	var product models.Product
	if err := ctl.products.FindOne(ctx, bson.M{"_id": productId}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.APIResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
		})
	}

	err = ctl.reviews.FindOne(ctx, bson.M{"user": user.Id, "product": productId}).Err()
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Status:  fiber.StatusBadRequest,
			Message: "You have already reviewed this product",
		})
	} else if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking existing review",
		})
	}

	now := time.Now()
	review := models.Review{
		Id:        primitive.NewObjectID(),
		User:      user.Id,
		Product:   productId,
		Rating:    reqBody.Rating,
		Comment:   strings.TrimSpace(reqBody.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := ctl.reviews.InsertOne(ctx, review); err != nil {
		// The unique (user, product) index closes the race between the
		// existence check above and this insert.
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
				Status:  fiber.StatusBadRequest,
				Message: "You have already reviewed this product",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving review",
		})
	}

	// Full re-aggregation over all reviews for the product, written back
	// in the same logical operation.
	allReviews := []models.Review{}
	cursor, err := ctl.reviews.Find(ctx, bson.M{"product": productId})
	if err == nil {
		err = cursor.All(ctx, &allReviews)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error recomputing rating",
		})
	}

	_, err = ctl.products.UpdateOne(ctx, bson.M{"_id": productId}, bson.M{
		"$set": bson.M{
			"rating":      models.AverageRating(allReviews),
			"reviewCount": len(allReviews),
			"updatedAt":   now,
		},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.APIResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product rating",
		})
	}

	review.UserName = strings.TrimSpace(user.FirstName + " " + user.LastName)

	return c.Status(fiber.StatusCreated).JSON(responses.APIResponse{
		Status:  fiber.StatusCreated,
		Message: "Review added",
		Result:  &fiber.Map{"data": review},
	})
}
