package model

import "strings"

type CreateGroupReq struct {
	Name          string       `json:"name" validate:"omitempty,min=1,max=100"`
	DisplayName   string       `json:"displayName" validate:"required,min=1,max=100"`
	Description   string       `json:"description" validate:"omitempty,max=500"`
	Department    string       `json:"department" validate:"omitempty,max=50"`
	Permissions   []Permission `json:"permissions"`
	ParentGroupID string       `json:"parentGroupId" validate:"omitempty,max=50"`
	GroupAdminID  string       `json:"groupAdminId" validate:"omitempty,max=50"`
	TeamLeadID    string       `json:"teamLeadId" validate:"omitempty,max=50"`
}

func (r *CreateGroupReq) Validate() error {
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Description = strings.TrimSpace(r.Description)
	r.Department = strings.ToLower(strings.TrimSpace(r.Department))
	r.ParentGroupID = strings.TrimSpace(r.ParentGroupID)
	r.GroupAdminID = strings.TrimSpace(r.GroupAdminID)
	r.TeamLeadID = strings.TrimSpace(r.TeamLeadID)
	r.Name = strings.TrimSpace(r.Name)

	// Machine key is derived from the display name when callers omit it
	if r.Name == "" {
		r.Name = SlugifyName(r.DisplayName)
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Department != "" && !AllowedDepartments[r.Department] {
		return &ValidationError{Code: "bad_request", Message: "invalid department '" + r.Department + "'"}
	}

	if err := ValidatePermissions(r.Permissions); err != nil {
		return err
	}

	return nil
}

// SlugifyName turns a display name into a stable machine key:
// lowercased, whitespace collapsed to underscores.
func SlugifyName(displayName string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(displayName)))
	return strings.Join(fields, "_")
}
