// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role is the access level assigned to a user account.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusBlocked  UserStatus = "BLOCKED"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBlocked:
		return true
	}
	return false
}

// User is the root aggregate: blogs, projects, auth providers and the profile
// are owned by a user and are removed with it.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"unique;not null" json:"email"`
	Password   string         `json:"-"` // empty for OAuth-only accounts
	Role       Role           `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Phone      string         `gorm:"not null" json:"phone"`
	Picture    *string        `json:"picture"`
	Status     UserStatus     `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	IsVerified bool           `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Auths      []AuthProvider `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"auths,omitempty"`
	Blogs      []Blog         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"blogs,omitempty"`
	Projects   []Project      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	Profile    *Profile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// AuthorInfo is the author projection embedded in blog and project responses.
type AuthorInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
