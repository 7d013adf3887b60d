package models

import "time"

// Blog is a post owned by an author. Views is incremented on every single-blog
// read inside the same transaction as the fetch.
type Blog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Thumbnail  *string   `json:"thumbnail"`
	IsFeatured bool      `gorm:"not null;default:false" json:"isFeatured"`
	Tags       []string  `gorm:"type:jsonb;serializer:json" json:"tags"`
	Views      int       `gorm:"not null;default:0" json:"views"`
	AuthorID   uint      `gorm:"not null;index" json:"authorId"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BlogPage is a page of blogs plus the matching total.
type BlogPage struct {
	Total     int64  `json:"total"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	TotalPage int64  `json:"totalPage"`
	Data      []Blog `json:"data"`
}

// ViewAggregates holds view-count aggregates across all blogs.
type ViewAggregates struct {
	TotalBlogs int64   `json:"totalBlogs"`
	TotalViews int64   `json:"totalViews"`
	AvgViews   float64 `json:"avgViews"`
	MinViews   int64   `json:"minViews"`
	MaxViews   int64   `json:"maxViews"`
}

// FeaturedStats reports on featured blogs.
type FeaturedStats struct {
	Count int64 `json:"count"`
	Top   *Blog `json:"top"`
}

// BlogStats is the aggregate statistics payload for GET /blog/stats.
type BlogStats struct {
	Stats             ViewAggregates `json:"stats"`
	Featured          FeaturedStats  `json:"featured"`
	LastWeekBlogCount int64          `json:"lastWeekBlogCount"`
}
