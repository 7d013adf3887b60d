package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// ProjectService implements project CRUD.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// CreateProjectInput is the payload for creating a project.
type CreateProjectInput struct {
	Title        string
	Description  string
	Thumbnail    *string
	RepoLink     *string
	LiveLink     *string
	Features     []string
	Technologies []string
	AuthorID     uint
}

// UpdateProjectInput carries the optional fields of a project update.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	Thumbnail    *string
	RepoLink     *string
	LiveLink     *string
	Features     *[]string
	Technologies *[]string
}

// NewProjectService returns a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Thumbnail:    in.Thumbnail,
		RepoLink:     in.RepoLink,
		LiveLink:     in.LiveLink,
		Features:     in.Features,
		Technologies: in.Technologies,
		AuthorID:     in.AuthorID,
	}
	if project.Features == nil {
		project.Features = []string{}
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context, limit, offset int) ([]models.Project, error) {
	return s.projectRepo.List(ctx, limit, offset)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Thumbnail != nil {
		project.Thumbnail = in.Thumbnail
	}
	if in.RepoLink != nil {
		project.RepoLink = in.RepoLink
	}
	if in.LiveLink != nil {
		project.LiveLink = in.LiveLink
	}
	if in.Features != nil {
		project.Features = *in.Features
	}
	if in.Technologies != nil {
		project.Technologies = *in.Technologies
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project after verifying it exists.
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}
