package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateProject creates a portfolio project.
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var req validation.CreateProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	project, err := s.projectService.CreateProject(c.UserContext(), service.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		RepoLink:     req.RepoLink,
		LiveLink:     req.LiveLink,
		Features:     req.Features,
		Technologies: req.Technologies,
		AuthorID:     req.AuthorID,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusCreated, "Project created successfully", project)
}

// GetAllProjects lists projects, newest first.
func (s *Server) GetAllProjects(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	projects, err := s.projectService.ListProjects(c.UserContext(), limit, (page-1)*limit)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Projects retrieved successfully", projects)
}

// GetSingleProject returns one project by ID.
func (s *Server) GetSingleProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	project, err := s.projectService.GetProject(c.UserContext(), id)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Project retrieved successfully", project)
}

// UpdateProject patches a project.
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req validation.UpdateProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	project, err := s.projectService.UpdateProject(c.UserContext(), id, service.UpdateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		RepoLink:     req.RepoLink,
		LiveLink:     req.LiveLink,
		Features:     req.Features,
		Technologies: req.Technologies,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Project updated successfully", project)
}

// DeleteProject removes a project.
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.projectService.DeleteProject(c.UserContext(), id); err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Project deleted successfully", nil)
}
