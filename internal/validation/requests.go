package validation

import "portfolio/internal/models"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register and POST /user.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,phone"`
	Password string  `json:"password" validate:"required,password"`
	Picture  *string `json:"picture" validate:"omitempty,url"`
}

// UpdateUserRequest is the body of PATCH /user/:id. All fields are optional;
// role-gated fields are checked in the user service against the caller's role.
type UpdateUserRequest struct {
	Name       *string            `json:"name" validate:"omitempty,min=2,max=100"`
	Email      *string            `json:"email" validate:"omitempty,email"`
	Phone      *string            `json:"phone" validate:"omitempty,phone"`
	Password   *string            `json:"password" validate:"omitempty,password"`
	Picture    *string            `json:"picture" validate:"omitempty,url"`
	Role       *models.Role       `json:"role" validate:"omitempty,role"`
	Status     *models.UserStatus `json:"status" validate:"omitempty,userstatus"`
	IsVerified *bool              `json:"isVerified"`
}

// CreateBlogRequest is the body of POST /blog.
type CreateBlogRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=300"`
	Content    string   `json:"content" validate:"required"`
	Thumbnail  *string  `json:"thumbnail" validate:"omitempty,url"`
	IsFeatured bool     `json:"isFeatured"`
	Tags       []string `json:"tags"`
	AuthorID   uint     `json:"authorId" validate:"required"`
}

// UpdateBlogRequest is the body of PATCH /blog/:id.
type UpdateBlogRequest struct {
	Title      *string   `json:"title" validate:"omitempty,min=1,max=300"`
	Content    *string   `json:"content"`
	Thumbnail  *string   `json:"thumbnail" validate:"omitempty,url"`
	IsFeatured *bool     `json:"isFeatured"`
	Tags       *[]string `json:"tags"`
}

// CreateProjectRequest is the body of POST /project.
type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=300"`
	Description  string   `json:"description" validate:"required"`
	Thumbnail    *string  `json:"thumbnail" validate:"omitempty,url"`
	RepoLink     *string  `json:"repoLink" validate:"omitempty,url"`
	LiveLink     *string  `json:"liveLink" validate:"omitempty,url"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	AuthorID     uint     `json:"authorId" validate:"required"`
}

// UpdateProjectRequest is the body of PATCH /project/:id.
type UpdateProjectRequest struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=300"`
	Description  *string   `json:"description"`
	Thumbnail    *string   `json:"thumbnail" validate:"omitempty,url"`
	RepoLink     *string   `json:"repoLink" validate:"omitempty,url"`
	LiveLink     *string   `json:"liveLink" validate:"omitempty,url"`
	Features     *[]string `json:"features"`
	Technologies *[]string `json:"technologies"`
}

// CreateProfileRequest is the body of POST /profile.
type CreateProfileRequest struct {
	UserID     uint     `json:"userId" validate:"required"`
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Bio        *string  `json:"bio"`
	Avatar     *string  `json:"avatar" validate:"omitempty,url"`
	Phone      *string  `json:"phone" validate:"omitempty,phone"`
	Location   *string  `json:"location"`
	Github     *string  `json:"github" validate:"omitempty,url"`
	Linkedin   *string  `json:"linkedin" validate:"omitempty,url"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
}

// UpdateProfileRequest is the body of PATCH /profile/:id.
type UpdateProfileRequest struct {
	Title      *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Bio        *string   `json:"bio"`
	Avatar     *string   `json:"avatar" validate:"omitempty,url"`
	Phone      *string   `json:"phone" validate:"omitempty,phone"`
	Location   *string   `json:"location"`
	Github     *string   `json:"github" validate:"omitempty,url"`
	Linkedin   *string   `json:"linkedin" validate:"omitempty,url"`
	Skills     *[]string `json:"skills"`
	Experience *[]string `json:"experience"`
}
