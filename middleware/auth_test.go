package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, id uint, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return signed
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/protected", RequireRoles("admin", "receptionist"), func(c *fiber.Ctx) error {
		actor, ok := GetActor(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"id": actor.UserID, "role": actor.Role})
	})

	cases := []struct {
		role string
		want int
	}{
		{"receptionist", fiber.StatusOK},
		{"admin", fiber.StatusOK},
		{"staff", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", 7, tc.role))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != tc.want {
			t.Fatalf("role %s: expected %d, got %d", tc.role, tc.want, resp.StatusCode)
		}
	}
}

func TestRejectsMissingAndBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/protected", RequireAuthentication(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	noToken := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(noToken)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	badSecret := httptest.NewRequest("GET", "/protected", nil)
	badSecret.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", 7, "admin"))
	resp, err = app.Test(badSecret)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad signature, got %d", resp.StatusCode)
	}
}
