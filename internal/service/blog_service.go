package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// BlogService implements blog CRUD, the paginated list and the statistics
// aggregation.
type BlogService struct {
	blogRepo repository.BlogRepository
}

// CreateBlogInput is the payload for creating a blog.
type CreateBlogInput struct {
	Title      string
	Content    string
	Thumbnail  *string
	IsFeatured bool
	Tags       []string
	AuthorID   uint
}

// UpdateBlogInput carries the optional fields of a blog update.
type UpdateBlogInput struct {
	Title      *string
	Content    *string
	Thumbnail  *string
	IsFeatured *bool
	Tags       *[]string
}

// ListBlogsInput is the query for the paginated blog list.
type ListBlogsInput struct {
	Page       int
	Limit      int
	Search     string
	IsFeatured *bool
}

// NewBlogService returns a new BlogService.
func NewBlogService(blogRepo repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

func (s *BlogService) CreateBlog(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	blog := &models.Blog{
		Title:      in.Title,
		Content:    in.Content,
		Thumbnail:  in.Thumbnail,
		IsFeatured: in.IsFeatured,
		Tags:       in.Tags,
		AuthorID:   in.AuthorID,
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// GetBlog returns the blog and counts the read: the view increment and the
// fetch happen in one transaction.
func (s *BlogService) GetBlog(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.IncrementViewsAndGet(ctx, id)
}

func (s *BlogService) ListBlogs(ctx context.Context, in ListBlogsInput) (*models.BlogPage, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	blogs, total, err := s.blogRepo.List(ctx, repository.BlogFilter{
		Page:       in.Page,
		Limit:      in.Limit,
		Search:     in.Search,
		IsFeatured: in.IsFeatured,
	})
	if err != nil {
		return nil, err
	}

	totalPage := total / int64(in.Limit)
	if total%int64(in.Limit) != 0 {
		totalPage++
	}
	return &models.BlogPage{
		Total:     total,
		Page:      in.Page,
		Limit:     in.Limit,
		TotalPage: totalPage,
		Data:      blogs,
	}, nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, id uint, in UpdateBlogInput) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		blog.Title = *in.Title
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.Thumbnail != nil {
		blog.Thumbnail = in.Thumbnail
	}
	if in.IsFeatured != nil {
		blog.IsFeatured = *in.IsFeatured
	}
	if in.Tags != nil {
		blog.Tags = *in.Tags
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// DeleteBlog removes a blog after verifying it exists.
func (s *BlogService) DeleteBlog(ctx context.Context, id uint) error {
	if _, err := s.blogRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, id)
}

func (s *BlogService) Stats(ctx context.Context) (*models.BlogStats, error) {
	return s.blogRepo.Stats(ctx)
}
