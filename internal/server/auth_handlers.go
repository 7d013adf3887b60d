package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Login authenticates with email and password, setting both token cookies.
func (s *Server) Login(c *fiber.Ctx) error {
	var req validation.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, tokens, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	s.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	return models.Respond(c, fiber.StatusOK, "User logged in successfully", fiber.Map{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user":         user,
	})
}

// RefreshToken exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated.
func (s *Server) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")
	if refreshToken == "" {
		return models.NewUnauthorizedError("No refresh token provided")
	}

	accessToken, err := s.authService.Refresh(c.UserContext(), refreshToken)
	if err != nil {
		return err
	}

	s.setAuthCookies(c, accessToken, "")
	return models.Respond(c, fiber.StatusOK, "Access token retrieved successfully", fiber.Map{
		"accessToken": accessToken,
	})
}

// Logout clears both token cookies.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearAuthCookies(c)
	return models.Respond(c, fiber.StatusOK, "User logged out successfully", nil)
}

// Register creates a credential account with role USER.
func (s *Server) Register(c *fiber.Ctx) error {
	var req validation.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Picture:  req.Picture,
	})
	if err != nil {
		return err
	}

	return models.Respond(c, fiber.StatusCreated, "User registered successfully", user)
}
