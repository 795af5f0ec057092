package handler

import (
	"errors"
	"net/http"

	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/service"
)

// Helper to map errors to HTTP status and body. The message field carries
// the human-readable reason clients surface verbatim.
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		code = validationErr.Code
		msg = validationErr.Message
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		// CapabilityError spells out which capability was missing
		msg = err.Error()
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = "Record already exists or is not in a state allowing this change"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Record not found"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Invalid email or password"
	case errors.Is(err, service.ErrAccountInactive):
		status = http.StatusForbidden
		code = "account_inactive"
		msg = "Account is pending approval or deactivated"
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{Success: false, Code: code, Message: msg}
}
