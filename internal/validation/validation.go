// Package validation defines request DTOs and their validation rules.
package validation

import (
	"errors"
	"regexp"
	"unicode"

	"portfolio/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// phoneRegex accepts an optional country code followed by 10-11 digits,
// e.g. +8801712345678 or 01712345678.
var phoneRegex = regexp.MustCompile(`^(\+?\d{1,3}[- ]?)?\d{10,11}$`)

func init() {
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return PasswordPolicy(fl.Field().String()) == nil
	})
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("userstatus", func(fl validator.FieldLevel) bool {
		return models.UserStatus(fl.Field().String()).Valid()
	})
}

// PasswordPolicy checks a password against the account password policy:
// at least 8 characters with an uppercase letter, a lowercase letter, a digit
// and a special character.
func PasswordPolicy(password string) error {
	if len(password) < 8 {
		return models.NewValidationError("Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return models.NewValidationError("Password must contain an uppercase letter, a lowercase letter, a digit and a special character")
	}
	return nil
}

// Struct validates a DTO and converts validator failures into a single
// AppError carrying per-field path/message entries.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewValidationError("Validation failed")
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return models.NewValidationError("Validation failed", fields...)
}

func fieldPath(fe validator.FieldError) string {
	// Lower-case the struct field name to match the JSON shape.
	name := fe.Field()
	if name == "" {
		return name
	}
	return string(unicode.ToLower(rune(name[0]))) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldPath(fe) + " is required"
	case "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone number"
	case "password":
		return "Password must be at least 8 characters with an uppercase letter, a lowercase letter, a digit and a special character"
	case "role":
		return "Role must be one of SUPER_ADMIN, ADMIN, USER"
	case "userstatus":
		return "Status must be one of ACTIVE, INACTIVE, BLOCKED"
	case "min":
		return fieldPath(fe) + " is too short"
	case "max":
		return fieldPath(fe) + " is too long"
	case "url":
		return fieldPath(fe) + " must be a valid URL"
	default:
		return fieldPath(fe) + " is invalid"
	}
}
