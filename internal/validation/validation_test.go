package validation

import (
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sup3r$ecret", false},
		{"too short", "Ab1!", true},
		{"no uppercase", "sup3r$ecret", true},
		{"no lowercase", "SUP3R$ECRET", true},
		{"no digit", "Super$ecret", true},
		{"no special", "Sup3rSecret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PasswordPolicy(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequestValid(t *testing.T) {
	req := RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "01712345678",
		Password: "Sup3r$ecret",
	}
	assert.NoError(t, Struct(&req))
}

func TestRegisterRequestPhoneWithCountryCode(t *testing.T) {
	req := RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+8801712345678",
		Password: "Sup3r$ecret",
	}
	assert.NoError(t, Struct(&req))
}

func TestRegisterRequestFieldErrors(t *testing.T) {
	req := RegisterRequest{
		Name:     "A",
		Email:    "not-an-email",
		Phone:    "123",
		Password: "weak",
	}
	err := Struct(&req)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "Validation failed", appErr.Message)

	paths := make(map[string]string, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		paths[fe.Path] = fe.Message
	}
	assert.Contains(t, paths, "name")
	assert.Contains(t, paths, "email")
	assert.Contains(t, paths, "phone")
	assert.Contains(t, paths, "password")
	assert.Equal(t, "Invalid email format", paths["email"])
}

func TestUpdateUserRequestRejectsUnknownRole(t *testing.T) {
	bad := models.Role("OVERLORD")
	req := UpdateUserRequest{Role: &bad}
	err := Struct(&req)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "role", appErr.Errors[0].Path)
}

func TestUpdateUserRequestAllOptional(t *testing.T) {
	assert.NoError(t, Struct(&UpdateUserRequest{}))
}

func TestCreateBlogRequestRequiresAuthor(t *testing.T) {
	req := CreateBlogRequest{Title: "Hello", Content: "World"}
	err := Struct(&req)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "authorID", appErr.Errors[0].Path)
}
