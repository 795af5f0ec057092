package model

import "strings"

type PromoteUserReq struct {
	UserID string `json:"userId" validate:"required,min=1,max=50"`
	Role   string `json:"role" validate:"required,min=1,max=50"`
}

func (r *PromoteUserReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !AllowedAssignableRoles[r.Role] {
		return &ValidationError{Code: "bad_request", Message: "invalid role '" + r.Role + "': must be one of [admin, finance_manager, property_manager, kyc_officer, customer_support, team_lead, team_member]"}
	}

	return nil
}
