package middlewares

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/UD-Cloth/backend/models"
	"github.com/UD-Cloth/backend/utils"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "middleware-test-secret"

func testAuth(users map[primitive.ObjectID]*models.User) *Auth {
	return &Auth{
		Secret: testSecret,
		Lookup: func(_ context.Context, id primitive.ObjectID) (*models.User, error) {
			if user, ok := users[id]; ok {
				return user, nil
			}
			return nil, errors.New("user not found")
		},
	}
}

func protectedApp(auth *Auth) *fiber.App {
	app := fiber.New()
	app.Get("/private", auth.Protect, func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Email)
	})
	app.Get("/admin", auth.Protect, auth.AdminOnly, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/open", auth.OptionalAuth, func(c *fiber.Ctx) error {
		if user := CurrentUser(c); user != nil {
			return c.SendString(user.Email)
		}
		return c.SendString("anonymous")
	})
	return app
}

func TestProtectMissingHeader(t *testing.T) {
	app := protectedApp(testAuth(nil))

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("got status %d, want 401", resp.StatusCode)
	}
}

func TestProtectMalformedHeader(t *testing.T) {
	app := protectedApp(testAuth(nil))

	for _, header := range []string{"Bearer", "Token abc", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("header %q: got status %d, want 401", header, resp.StatusCode)
		}
	}
}

func TestProtectInvalidToken(t *testing.T) {
	app := protectedApp(testAuth(nil))

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("got status %d, want 401", resp.StatusCode)
	}
}

func TestProtectUserGone(t *testing.T) {
	app := protectedApp(testAuth(nil))

	token, err := utils.CreateToken(testSecret, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("valid token for a deleted user: got status %d, want 401", resp.StatusCode)
	}
}

func TestProtectHappyPath(t *testing.T) {
	userId := primitive.NewObjectID()
	app := protectedApp(testAuth(map[primitive.ObjectID]*models.User{
		userId: {Id: userId, Email: "user@example.com"},
	}))

	token, err := utils.CreateToken(testSecret, userId.Hex())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("got status %d, want 200", resp.StatusCode)
	}
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	userId := primitive.NewObjectID()
	app := protectedApp(testAuth(map[primitive.ObjectID]*models.User{
		userId: {Id: userId, Email: "user@example.com"},
	}))

	token, err := utils.CreateToken(testSecret, userId.Hex())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("non-admin on admin route: got status %d, want 401", resp.StatusCode)
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	adminId := primitive.NewObjectID()
	app := protectedApp(testAuth(map[primitive.ObjectID]*models.User{
		adminId: {Id: adminId, Email: "admin@example.com", IsAdmin: true},
	}))

	token, err := utils.CreateToken(testSecret, adminId.Hex())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("admin on admin route: got status %d, want 200", resp.StatusCode)
	}
}

func TestOptionalAuthAnonymous(t *testing.T) {
	app := protectedApp(testAuth(nil))

	req := httptest.NewRequest("GET", "/open", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("anonymous optionalAuth request: got status %d, want 200", resp.StatusCode)
	}
}

func TestOptionalAuthBadTokenStillProceeds(t *testing.T) {
	app := protectedApp(testAuth(nil))

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("invalid token on optionalAuth route: got status %d, want 200", resp.StatusCode)
	}
}

func TestOptionalAuthResolvesUser(t *testing.T) {
	userId := primitive.NewObjectID()
	app := protectedApp(testAuth(map[primitive.ObjectID]*models.User{
		userId: {Id: userId, Email: "user@example.com"},
	}))

	token, err := utils.CreateToken(testSecret, userId.Hex())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("got status %d, want 200", resp.StatusCode)
	}
}
