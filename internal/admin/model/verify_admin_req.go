package model

import "strings"

type VerifyAdminReq struct {
	AdminID  string `json:"adminId" validate:"required,min=1,max=50"`
	Approved *bool  `json:"approved" validate:"required"`
}

func (r *VerifyAdminReq) Validate() error {
	r.AdminID = strings.TrimSpace(r.AdminID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
