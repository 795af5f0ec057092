package model

import "strings"

type LoginReq struct {
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required,min=1,max=128"`
}

func (r *LoginReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type SetAdminStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (r *SetAdminStatusReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	// Only the deactivate/reactivate pair goes through this endpoint; the
	// approval workflow owns pending_verification.
	if r.Status != StatusActive && r.Status != StatusDeactivated {
		return &ValidationError{Code: "bad_request", Message: "status must be one of [active, deactivated]"}
	}
	return nil
}
