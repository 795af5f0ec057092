package model

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidationError is returned by request Validate() methods so handlers can
// surface a stable code plus a human-readable message before any network or
// repository call happens.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormatValidationError converts validator errors to a *ValidationError.
// This is a helper for Validate() methods to keep consistent error return types.
func FormatValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		// Just take the first error for simplicity.
		e := validationErrors[0]
		return &ValidationError{
			Code:    "bad_request",
			Message: "Field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag",
		}
	}

	return &ValidationError{
		Code:    "bad_request",
		Message: err.Error(),
	}
}

// ValidatePermissions checks every permission entry against the action enum.
func ValidatePermissions(perms []Permission) *ValidationError {
	for _, p := range perms {
		if p.Resource == "" {
			return &ValidationError{Code: "bad_request", Message: "permission resource must not be empty"}
		}
		if len(p.Actions) == 0 {
			return &ValidationError{Code: "bad_request", Message: "permission for '" + p.Resource + "' must carry at least one action"}
		}
		for _, a := range p.Actions {
			if !AllowedActions[a] {
				return &ValidationError{Code: "bad_request", Message: "invalid action '" + a + "': must be one of [view, create, edit, delete, approve, manage]"}
			}
		}
	}
	return nil
}
