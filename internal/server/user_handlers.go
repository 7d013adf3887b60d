package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateUser is the admin endpoint for provisioning an account. It shares the
// registration payload and semantics.
func (s *Server) CreateUser(c *fiber.Ctx) error {
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

	return models.Respond(c, fiber.StatusCreated, "User created successfully", user)
}

// GetAllUsers lists users, newest first.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	users, err := s.userService.ListUsers(c.UserContext(), limit, (page-1)*limit)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// GetSingleUser returns one user by ID.
func (s *Server) GetSingleUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "User retrieved successfully", user)
}

// UpdateUser patches a user. Role-gated fields are enforced in the service
// against the caller's role from the verified token.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req validation.UpdateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	claims := callerClaims(c)
	if claims == nil {
		return models.NewUnauthorizedError("You are not authorized!")
	}

	user, err := s.userService.UpdateUser(c.UserContext(), id, service.UpdateUserInput{
		CallerRole: claims.Role,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		Picture:    req.Picture,
		Role:       req.Role,
		Status:     req.Status,
		IsVerified: req.IsVerified,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "User updated successfully", user)
}

// DeleteUser removes a user and, via cascade, their owned records.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "User deleted successfully", nil)
}
