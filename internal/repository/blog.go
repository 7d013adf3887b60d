package repository

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// BlogFilter describes the list query: pagination plus optional search and
// featured filters.
type BlogFilter struct {
	Page       int
	Limit      int
	Search     string
	IsFeatured *bool
}

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	IncrementViewsAndGet(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context, filter BlogFilter) ([]models.Blog, int64, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.BlogStats, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// authorProjection limits the preloaded author to the public fields.
func authorProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Preload("Author", authorProjection).First(blog, blog.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).Preload("Author", authorProjection).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

// IncrementViewsAndGet bumps the view counter and re-fetches the blog inside a
// single transaction. The UPDATE's row lock serializes concurrent readers of
// the same blog, so no increment is lost.
func (r *blogRepository) IncrementViewsAndGet(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Blog{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Blog", id)
		}
		return tx.Preload("Author", authorProjection).First(&blog, id).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

// List applies the filter to both the page query and the total count so the
// two always agree.
func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]models.Blog, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Blog{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	if filter.IsFeatured != nil {
		q = q.Where("is_featured = ?", *filter.IsFeatured)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var blogs []models.Blog
	offset := (filter.Page - 1) * filter.Limit
	if err := q.
		Preload("Author", authorProjection).
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&blogs).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return blogs, total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Preload("Author", authorProjection).First(blog, blog.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Blog{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Stats computes all aggregates inside one transaction so the individual
// queries observe a consistent snapshot.
func (r *blogRepository) Stats(ctx context.Context) (*models.BlogStats, error) {
	var stats models.BlogStats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Blog{}).
			Select("COUNT(*) AS total_blogs, COALESCE(SUM(views), 0) AS total_views, COALESCE(AVG(views), 0) AS avg_views, COALESCE(MIN(views), 0) AS min_views, COALESCE(MAX(views), 0) AS max_views").
			Scan(&stats.Stats).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Blog{}).
			Where("is_featured = ?", true).
			Count(&stats.Featured.Count).Error; err != nil {
			return err
		}

		var top models.Blog
		err := tx.Where("is_featured = ?", true).
			Order("views DESC").
			First(&top).Error
		switch {
		case err == nil:
			stats.Featured.Top = &top
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no featured blogs yet
		default:
			return err
		}

		lastWeek := time.Now().AddDate(0, 0, -7)
		return tx.Model(&models.Blog{}).
			Where("created_at >= ?", lastWeek).
			Count(&stats.LastWeekBlogCount).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &stats, nil
}
