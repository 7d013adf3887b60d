package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateProfile creates the one profile a user may have.
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req validation.CreateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	profile, err := s.profileService.CreateProfile(c.UserContext(), service.CreateProfileInput{
		UserID:     req.UserID,
		Title:      req.Title,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		Phone:      req.Phone,
		Location:   req.Location,
		Github:     req.Github,
		Linkedin:   req.Linkedin,
		Skills:     req.Skills,
		Experience: req.Experience,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusCreated, "Profile created successfully", profile)
}

// GetAllProfiles lists profiles, newest first.
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	profiles, err := s.profileService.ListProfiles(c.UserContext(), limit, (page-1)*limit)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Profiles retrieved successfully", profiles)
}

// GetSingleProfile returns one profile by ID.
func (s *Server) GetSingleProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	profile, err := s.profileService.GetProfile(c.UserContext(), id)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile patches a profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req validation.UpdateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	profile, err := s.profileService.UpdateProfile(c.UserContext(), id, service.UpdateProfileInput{
		Title:      req.Title,
		Bio:        req.Bio,
		Avatar:     req.Avatar,
		Phone:      req.Phone,
		Location:   req.Location,
		Github:     req.Github,
		Linkedin:   req.Linkedin,
		Skills:     req.Skills,
		Experience: req.Experience,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Profile updated successfully", profile)
}

// DeleteProfile removes a profile.
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.profileService.DeleteProfile(c.UserContext(), id); err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Profile deleted successfully", nil)
}
