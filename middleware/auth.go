package middleware

import (
	"fmt"
	"os"
	"strings"

	"salon-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireRoles creates a middleware that only passes the listed roles.
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid token, any role.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated(nil)
}

// IsAuthenticated verifies the bearer token (falling back to the access
// cookie), checks the role against requiredRoles when given, and attaches the
// claims and the resolved actor to the request context.
func IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error":  "Invalid authorization header format",
				})
			}
			token = tokenParts[1]
		} else {
			token = c.Cookies("access")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error":  "Authorization token missing",
				})
			}
		}

		claims, err := VerifyJWT(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error":  "Invalid or expired token",
			})
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error":  "Invalid token claims",
			})
		}

		if len(requiredRoles) > 0 && !hasRole(actor.Role, requiredRoles) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error",
				"error":  "Insufficient permissions",
			})
		}

		c.Locals("user", claims)
		c.Locals("actor", actor)

		return c.Next()
	}
}

// VerifyJWT parses and validates an HS256 token with JWT_SECRET.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// GetActor returns the actor attached by IsAuthenticated.
func GetActor(c *fiber.Ctx) (types.Actor, bool) {
	actor, ok := c.Locals("actor").(types.Actor)
	return actor, ok
}

func actorFromClaims(claims jwt.MapClaims) (types.Actor, error) {
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return types.Actor{}, fmt.Errorf("id missing in claims")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return types.Actor{}, fmt.Errorf("role missing in claims")
	}
	return types.Actor{UserID: uint(id), Role: role}, nil
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
