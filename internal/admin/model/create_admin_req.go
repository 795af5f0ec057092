package model

import "strings"

type CreateAdminReq struct {
	FirstName string   `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string   `json:"lastName" validate:"required,min=1,max=100"`
	Email     string   `json:"email" validate:"required,email,max=200"`
	Phone     string   `json:"phone" validate:"omitempty,max=30"`
	Position  string   `json:"position" validate:"omitempty,max=100"`
	Password  string   `json:"password" validate:"required,min=8,max=128"`
	Role      string   `json:"role" validate:"required,min=1,max=50"`
	GroupIDs  []string `json:"groupIds"`
}

func (r *CreateAdminReq) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Position = strings.TrimSpace(r.Position)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !AllowedAssignableRoles[r.Role] {
		return &ValidationError{Code: "bad_request", Message: "invalid role '" + r.Role + "'"}
	}

	// A team lead leads exactly one department group. Zero selections is the
	// common client mistake and gets its own message.
	if r.Role == RoleTeamLead {
		if len(r.GroupIDs) == 0 {
			return &ValidationError{Code: "bad_request", Message: "assign the team lead to at least one department group"}
		}
		if len(r.GroupIDs) > 1 {
			return &ValidationError{Code: "bad_request", Message: "a team lead may be assigned to only one department group"}
		}
	}

	return nil
}
