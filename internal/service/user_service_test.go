package service

import (
	"context"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func stubUserRepoWith(target *models.User) *stubUserRepo {
	return &stubUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			if target == nil || target.ID != id {
				return nil, models.NewNotFoundError("User", id)
			}
			clone := *target
			return &clone, nil
		},
		updateFn: func(ctx context.Context, user *models.User) error {
			return nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			return nil
		},
	}
}

func rolePtr(r models.Role) *models.Role               { return &r }
func statusPtr(s models.UserStatus) *models.UserStatus { return &s }
func boolPtr(b bool) *bool                             { return &b }
func strPtr(s string) *string                          { return &s }

func TestUpdateUserRoleGuards(t *testing.T) {
	target := &models.User{ID: 1, Name: "T", Email: "t@example.com", Role: models.RoleUser, Status: models.UserStatusActive}

	tests := []struct {
		name       string
		caller     models.Role
		in         UpdateUserInput
		wantStatus int
	}{
		{
			name:   "user cannot change roles",
			caller: models.RoleUser,
			in:     UpdateUserInput{Role: rolePtr(models.RoleAdmin)},
			wantStatus: 403,
		},
		{
			name:   "admin cannot promote to super admin",
			caller: models.RoleAdmin,
			in:     UpdateUserInput{Role: rolePtr(models.RoleSuperAdmin)},
			wantStatus: 403,
		},
		{
			name:   "super admin may promote to super admin",
			caller: models.RoleSuperAdmin,
			in:     UpdateUserInput{Role: rolePtr(models.RoleSuperAdmin)},
		},
		{
			name:   "admin may promote to admin",
			caller: models.RoleAdmin,
			in:     UpdateUserInput{Role: rolePtr(models.RoleAdmin)},
		},
		{
			name:   "user cannot change verification",
			caller: models.RoleUser,
			in:     UpdateUserInput{IsVerified: boolPtr(true)},
			wantStatus: 403,
		},
		{
			name:   "user cannot reactivate an account",
			caller: models.RoleUser,
			in:     UpdateUserInput{Status: statusPtr(models.UserStatusActive)},
			wantStatus: 403,
		},
		{
			name:   "user may deactivate their account",
			caller: models.RoleUser,
			in:     UpdateUserInput{Status: statusPtr(models.UserStatusInactive)},
		},
		{
			name:   "admin may activate an account",
			caller: models.RoleAdmin,
			in:     UpdateUserInput{Status: statusPtr(models.UserStatusActive)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(stubUserRepoWith(target), bcrypt.MinCost)
			tt.in.CallerRole = tt.caller

			updated, err := svc.UpdateUser(context.Background(), 1, tt.in)
			if tt.wantStatus != 0 {
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.StatusCode)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, updated)
		})
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	target := &models.User{ID: 1, Role: models.RoleUser, Status: models.UserStatusActive}
	var saved *models.User
	repo := stubUserRepoWith(target)
	repo.updateFn = func(ctx context.Context, user *models.User) error {
		saved = user
		return nil
	}
	svc := NewUserService(repo, bcrypt.MinCost)

	_, err := svc.UpdateUser(context.Background(), 1, UpdateUserInput{
		CallerRole: models.RoleUser,
		Password:   strPtr("NewSecret1!"),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, "NewSecret1!", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("NewSecret1!")))
}

func TestUpdateUserRejectsWeakPassword(t *testing.T) {
	target := &models.User{ID: 1, Role: models.RoleUser}
	svc := NewUserService(stubUserRepoWith(target), bcrypt.MinCost)

	_, err := svc.UpdateUser(context.Background(), 1, UpdateUserInput{
		CallerRole: models.RoleUser,
		Password:   strPtr("short"),
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(stubUserRepoWith(nil), bcrypt.MinCost)

	_, err := svc.UpdateUser(context.Background(), 99, UpdateUserInput{CallerRole: models.RoleAdmin})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestDeleteUserChecksExistence(t *testing.T) {
	deleted := false
	repo := stubUserRepoWith(nil)
	repo.deleteFn = func(ctx context.Context, id uint) error {
		deleted = true
		return nil
	}
	svc := NewUserService(repo, bcrypt.MinCost)

	err := svc.DeleteUser(context.Background(), 5)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.False(t, deleted)
}
