package server

import (
	"strconv"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewBadRequestError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

// parsePagination reads page/limit query parameters with sane bounds.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// bindBody parses the JSON body into dst and runs struct validation.
func bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return models.NewBadRequestError("Invalid request body")
	}
	return validation.Struct(dst)
}

func (s *Server) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	secure := s.isProduction()
	if accessToken != "" {
		c.Cookie(&fiber.Cookie{
			Name:     "accessToken",
			Value:    accessToken,
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
			Expires:  time.Now().Add(time.Duration(s.config.JWTAccessExpiresHrs) * time.Hour),
		})
	}
	if refreshToken != "" {
		c.Cookie(&fiber.Cookie{
			Name:     "refreshToken",
			Value:    refreshToken,
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
			Expires:  time.Now().Add(time.Duration(s.config.JWTRefreshExpiresHrs) * time.Hour),
		})
	}
}

func (s *Server) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   s.isProduction(),
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
		})
	}
}
