package server

import (
	"strings"

	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	localClaims = "claims"
	localUserID = "userID"
	localRole   = "role"
)

// RequireRoles verifies the bearer token (falling back to the accessToken
// cookie) and checks the caller's role against the allowed set. Claims are
// stored in locals for downstream handlers.
func (s *Server) RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return models.NewUnauthorizedError("You are not authorized!")
		}

		claims, err := s.authService.VerifyAccess(tokenString)
		if err != nil {
			return err
		}

		allowed := false
		for _, r := range roles {
			if r == claims.Role {
				allowed = true
				break
			}
		}
		if !allowed {
			return models.NewForbiddenError("You are not permitted to view this route!!!")
		}

		c.Locals(localClaims, claims)
		c.Locals(localUserID, claims.UserID)
		c.Locals(localRole, claims.Role)
		ctx := middleware.WithUserID(c.UserContext(), claims.UserID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if header != "" {
		return header
	}
	return c.Cookies("accessToken")
}

func callerClaims(c *fiber.Ctx) *service.Claims {
	claims, _ := c.Locals(localClaims).(*service.Claims)
	return claims
}
