package model

import "strings"

type AddMemberReq struct {
	UserID            string       `json:"userId" validate:"required,min=1,max=50"`
	RoleCategory      string       `json:"roleCategory" validate:"omitempty,max=50"`
	MemberPermissions []Permission `json:"memberPermissions"`
}

func (r *AddMemberReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.RoleCategory = strings.ToLower(strings.TrimSpace(r.RoleCategory))

	// Plain members are the default
	if r.RoleCategory == "" {
		r.RoleCategory = RoleCategoryTeamMember
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !AllowedRoleCategories[r.RoleCategory] {
		return &ValidationError{Code: "bad_request", Message: "invalid roleCategory: must be one of [team_lead, team_member]"}
	}

	if err := ValidatePermissions(r.MemberPermissions); err != nil {
		return err
	}
	return nil
}
