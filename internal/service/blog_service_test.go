package service

import (
	"context"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBlogsNormalizesPagination(t *testing.T) {
	var gotFilter repository.BlogFilter
	repo := &stubBlogRepo{
		listFn: func(ctx context.Context, filter repository.BlogFilter) ([]models.Blog, int64, error) {
			gotFilter = filter
			return []models.Blog{}, 0, nil
		},
	}
	svc := NewBlogService(repo)

	_, err := svc.ListBlogs(context.Background(), ListBlogsInput{Page: -3, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, 10, gotFilter.Limit)

	_, err = svc.ListBlogs(context.Background(), ListBlogsInput{Page: 2, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 100, gotFilter.Limit)
}

func TestListBlogsComputesTotalPages(t *testing.T) {
	repo := &stubBlogRepo{
		listFn: func(ctx context.Context, filter repository.BlogFilter) ([]models.Blog, int64, error) {
			return make([]models.Blog, 10), 25, nil
		},
	}
	svc := NewBlogService(repo)

	page, err := svc.ListBlogs(context.Background(), ListBlogsInput{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, int64(3), page.TotalPage)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Len(t, page.Data, 10)
}

func TestListBlogsPassesFilters(t *testing.T) {
	var gotFilter repository.BlogFilter
	repo := &stubBlogRepo{
		listFn: func(ctx context.Context, filter repository.BlogFilter) ([]models.Blog, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}
	svc := NewBlogService(repo)

	featured := true
	_, err := svc.ListBlogs(context.Background(), ListBlogsInput{
		Page: 1, Limit: 10, Search: "golang", IsFeatured: &featured,
	})
	require.NoError(t, err)
	assert.Equal(t, "golang", gotFilter.Search)
	require.NotNil(t, gotFilter.IsFeatured)
	assert.True(t, *gotFilter.IsFeatured)
}

func TestGetBlogIncrementsViews(t *testing.T) {
	repo := &stubBlogRepo{
		incrementFn: func(ctx context.Context, id uint) (*models.Blog, error) {
			return &models.Blog{ID: id, Title: "Post", Views: 6}, nil
		},
	}
	svc := NewBlogService(repo)

	blog, err := svc.GetBlog(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, uint(4), blog.ID)
	assert.Equal(t, 6, blog.Views)
}

func TestCreateBlogDefaultsTags(t *testing.T) {
	var saved *models.Blog
	repo := &stubBlogRepo{
		createFn: func(ctx context.Context, blog *models.Blog) error {
			blog.ID = 1
			saved = blog
			return nil
		},
	}
	svc := NewBlogService(repo)

	blog, err := svc.CreateBlog(context.Background(), CreateBlogInput{
		Title: "Hello", Content: "World", AuthorID: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotNil(t, blog.Tags)
	assert.Empty(t, blog.Tags)
}

func TestUpdateBlogAppliesOnlySetFields(t *testing.T) {
	existing := &models.Blog{ID: 1, Title: "Old", Content: "Body", IsFeatured: false, Tags: []string{"go"}}
	var saved *models.Blog
	repo := &stubBlogRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Blog, error) {
			clone := *existing
			return &clone, nil
		},
		updateFn: func(ctx context.Context, blog *models.Blog) error {
			saved = blog
			return nil
		},
	}
	svc := NewBlogService(repo)

	title := "New"
	featured := true
	blog, err := svc.UpdateBlog(context.Background(), 1, UpdateBlogInput{
		Title: &title, IsFeatured: &featured,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "New", blog.Title)
	assert.True(t, blog.IsFeatured)
	assert.Equal(t, "Body", blog.Content)
	assert.Equal(t, []string{"go"}, blog.Tags)
}

func TestDeleteBlogChecksExistence(t *testing.T) {
	deleted := false
	repo := &stubBlogRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Blog, error) {
			return nil, models.NewNotFoundError("Blog", id)
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewBlogService(repo)

	err := svc.DeleteBlog(context.Background(), 9)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.False(t, deleted)
}

func TestStatsPassesThrough(t *testing.T) {
	want := &models.BlogStats{
		Stats:             models.ViewAggregates{TotalBlogs: 3, TotalViews: 30, AvgViews: 10, MinViews: 2, MaxViews: 18},
		Featured:          models.FeaturedStats{Count: 1, Top: &models.Blog{ID: 2, Views: 18}},
		LastWeekBlogCount: 2,
	}
	repo := &stubBlogRepo{
		statsFn: func(ctx context.Context) (*models.BlogStats, error) {
			return want, nil
		},
	}
	svc := NewBlogService(repo)

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
