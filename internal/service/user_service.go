package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements user CRUD plus the role-gated update rules.
type UserService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// UpdateUserInput carries the caller's role alongside the optional fields of a
// PATCH /user/:id request. Nil fields are left untouched.
type UpdateUserInput struct {
	CallerRole models.Role
	Name       *string
	Email      *string
	Phone      *string
	Password   *string
	Picture    *string
	Role       *models.Role
	Status     *models.UserStatus
	IsVerified *bool
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies the role-gated field rules:
// USER may not change role at all; promotion to SUPER_ADMIN requires a
// SUPER_ADMIN caller; isVerified and reactivation are reserved for admins.
// A new password is re-hashed before persisting.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil {
		if in.CallerRole == models.RoleUser {
			return nil, models.NewForbiddenError("You are not permitted to change roles")
		}
		if *in.Role == models.RoleSuperAdmin && in.CallerRole != models.RoleSuperAdmin {
			return nil, models.NewForbiddenError("Only a SUPER_ADMIN may promote to SUPER_ADMIN")
		}
		user.Role = *in.Role
	}
	if in.IsVerified != nil {
		if in.CallerRole == models.RoleUser {
			return nil, models.NewForbiddenError("You are not permitted to change verification status")
		}
		user.IsVerified = *in.IsVerified
	}
	if in.Status != nil {
		if *in.Status == models.UserStatusActive && in.CallerRole == models.RoleUser {
			return nil, models.NewForbiddenError("You are not permitted to activate accounts")
		}
		user.Status = *in.Status
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Picture != nil {
		user.Picture = in.Picture
	}
	if in.Password != nil {
		if err := validation.PasswordPolicy(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user after verifying it exists.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
