package middlewares

import (
	"context"
	"strings"

	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/responses"
	"github.com/UD-Cloth/backend/utils"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const localsUserKey = "authUser"

// UserLookup resolves a user id from a verified token to the stored user.
type UserLookup func(ctx context.Context, id primitive.ObjectID) (*models.User, error)

// Auth carries what the gates need: the token secret and a way to load
// the referenced user. Identity travels on the request via Locals, never
// in package state.
type Auth struct {
	Secret string
	Lookup UserLookup
}

// MongoLookup builds a UserLookup over the users collection.
func MongoLookup(users *mongo.Collection) UserLookup {
	return func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
		var user models.User
		if err := users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
			return nil, err
		}
		return &user, nil
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(responses.APIResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
	})
}

// resolve extracts and verifies the bearer token and loads its user.
// Returns nil without error when no Authorization header is present.
func (a *Auth) resolve(c *fiber.Ctx) (*models.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, utils.ErrInvalidToken
	}

	userId, err := utils.ParseToken(a.Secret, parts[1])
	if err != nil {
		return nil, err
	}

	objectId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.Lookup(c.Context(), objectId)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Protect admits only requests carrying a valid bearer token whose user
// still exists, and stores the resolved user for downstream handlers.
func (a *Auth) Protect(c *fiber.Ctx) error {
	user, err := a.resolve(c)
	if err != nil {
		return unauthorized(c, "Not authorized, token failed")
	}
	if user == nil {
		return unauthorized(c, "Not authorized, no token")
	}

	c.Locals(localsUserKey, user)
	return c.Next()
}

// OptionalAuth resolves the user when a valid token is present but never
// rejects: guests proceed unauthenticated.
func (a *Auth) OptionalAuth(c *fiber.Ctx) error {
	if user, err := a.resolve(c); err == nil && user != nil {
		c.Locals(localsUserKey, user)
	}
	return c.Next()
}

// AdminOnly requires Protect to have run and the resolved user to be an
// admin.
func (a *Auth) AdminOnly(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil || !user.IsAdmin {
		return unauthorized(c, "Not authorized as an admin")
	}
	return c.Next()
}

// CurrentUser returns the user resolved by Protect or OptionalAuth, or
// nil for unauthenticated requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUserKey).(*models.User)
	return user
}
