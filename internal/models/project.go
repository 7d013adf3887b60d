package models

import "time"

// Project is a portfolio entry owned by an author.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Thumbnail    *string   `json:"thumbnail"`
	RepoLink     *string   `json:"repoLink"`
	LiveLink     *string   `json:"liveLink"`
	Features     []string  `gorm:"type:jsonb;serializer:json" json:"features"`
	Technologies []string  `gorm:"type:jsonb;serializer:json" json:"technologies"`
	AuthorID     uint      `gorm:"not null;index" json:"authorId"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
