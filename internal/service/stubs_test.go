package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// stubUserRepo implements repository.UserRepository via overridable funcs.
type stubUserRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	updateFn     func(ctx context.Context, user *models.User) error
	deleteFn     func(ctx context.Context, id uint) error
	listFn       func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

// stubBlogRepo implements repository.BlogRepository via overridable funcs.
type stubBlogRepo struct {
	createFn    func(ctx context.Context, blog *models.Blog) error
	getByIDFn   func(ctx context.Context, id uint) (*models.Blog, error)
	incrementFn func(ctx context.Context, id uint) (*models.Blog, error)
	listFn      func(ctx context.Context, filter repository.BlogFilter) ([]models.Blog, int64, error)
	updateFn    func(ctx context.Context, blog *models.Blog) error
	deleteFn    func(ctx context.Context, id uint) error
	statsFn     func(ctx context.Context) (*models.BlogStats, error)
}

func (s *stubBlogRepo) Create(ctx context.Context, blog *models.Blog) error {
	return s.createFn(ctx, blog)
}

func (s *stubBlogRepo) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubBlogRepo) IncrementViewsAndGet(ctx context.Context, id uint) (*models.Blog, error) {
	return s.incrementFn(ctx, id)
}

func (s *stubBlogRepo) List(ctx context.Context, filter repository.BlogFilter) ([]models.Blog, int64, error) {
	return s.listFn(ctx, filter)
}

func (s *stubBlogRepo) Update(ctx context.Context, blog *models.Blog) error {
	return s.updateFn(ctx, blog)
}

func (s *stubBlogRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubBlogRepo) Stats(ctx context.Context) (*models.BlogStats, error) {
	return s.statsFn(ctx)
}
