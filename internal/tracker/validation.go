package tracker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("codewars_username", validateCodewarsUsername)
	return v
}

type usernameInput struct {
	Username string `validate:"required,max=64,codewars_username"`
}

// normalizeUsername trims the argument and checks it can be used as a path
// segment of the Codewars API.
func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if err := validate.Struct(usernameInput{Username: username}); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidationError(err))
	}
	return username, nil
}

// validateCodewarsUsername rejects whitespace, control characters and '/'.
func validateCodewarsUsername(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '/' {
			return false
		}
	}
	return true
}

func describeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid username"
	}
	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return "username is required"
	case "max":
		return fmt.Sprintf("username must be at most %s characters", e.Param())
	case "codewars_username":
		return "username contains invalid characters"
	default:
		return "invalid username"
	}
}
