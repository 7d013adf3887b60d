package models

import "time"

// Profile is the single public profile a user may have.
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Title      string    `gorm:"not null" json:"title"`
	Bio        *string   `json:"bio"`
	Avatar     *string   `json:"avatar"`
	Phone      *string   `json:"phone"`
	Location   *string   `json:"location"`
	Github     *string   `json:"github"`
	Linkedin   *string   `json:"linkedin"`
	Skills     []string  `gorm:"type:jsonb;serializer:json" json:"skills"`
	Experience []string  `gorm:"type:jsonb;serializer:json" json:"experience"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
