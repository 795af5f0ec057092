package model

type UpdateGroupPermissionsReq struct {
	Permissions []Permission `json:"permissions"`
}

func (r *UpdateGroupPermissionsReq) Validate() error {
	if r.Permissions == nil {
		return &ValidationError{Code: "bad_request", Message: "permissions field is required"}
	}
	if err := ValidatePermissions(r.Permissions); err != nil {
		return err
	}
	return nil
}
