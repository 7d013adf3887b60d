package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog creates a blog post.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req validation.CreateBlogRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	blog, err := s.blogService.CreateBlog(c.UserContext(), service.CreateBlogInput{
		Title:      req.Title,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		IsFeatured: req.IsFeatured,
		Tags:       req.Tags,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusCreated, "Blog created successfully", blog)
}

// GetAllBlogs returns a paginated blog list with optional search and
// isFeatured filters.
func (s *Server) GetAllBlogs(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	in := service.ListBlogsInput{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}
	switch c.Query("isFeatured") {
	case "true":
		v := true
		in.IsFeatured = &v
	case "false":
		v := false
		in.IsFeatured = &v
	}

	result, err := s.blogService.ListBlogs(c.UserContext(), in)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Blogs retrieved successfully", result)
}

// GetBlogStats returns the aggregate blog statistics.
func (s *Server) GetBlogStats(c *fiber.Ctx) error {
	stats, err := s.blogService.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Blog stats fetched successfully", stats)
}

// GetSingleBlog returns one blog, incrementing its view counter.
func (s *Server) GetSingleBlog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	blog, err := s.blogService.GetBlog(c.UserContext(), id)
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Blog retrieved successfully", blog)
}

// UpdateBlog patches a blog post.
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req validation.UpdateBlogRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	blog, err := s.blogService.UpdateBlog(c.UserContext(), id, service.UpdateBlogInput{
		Title:      req.Title,
		Content:    req.Content,
		Thumbnail:  req.Thumbnail,
		IsFeatured: req.IsFeatured,
		Tags:       req.Tags,
	})
	if err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Blog updated successfully", blog)
}

// DeleteBlog removes a blog post.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.blogService.DeleteBlog(c.UserContext(), id); err != nil {
		return err
	}
	return models.Respond(c, fiber.StatusOK, "Blog deleted successfully", nil)
}
