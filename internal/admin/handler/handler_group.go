package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffadmin/internal/admin/model"
)

// GetGroups handles GET /api/admin/groups
func (h *StaffHandler) GetGroups(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	groups, err := h.Service.ListGroups(c.Request().Context(), caller)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if groups == nil {
		groups = []*model.Group{}
	}

	return success(c, groups)
}

// PostGroup handles POST /api/admin/groups
func (h *StaffHandler) PostGroup(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateGroupReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	group, err := h.Service.CreateGroup(c.Request().Context(), caller, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return created(c, group)
}

// PatchGroup handles PATCH /api/admin/groups/:id
func (h *StaffHandler) PatchGroup(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateGroupPermissionsReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.UpdateGroupPermissions(c.Request().Context(), caller, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// DeleteGroup handles DELETE /api/admin/groups/:id
func (h *StaffHandler) DeleteGroup(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.DeleteGroup(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// PostGroupMember handles POST /api/admin/groups/:id/add-member
func (h *StaffHandler) PostGroupMember(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.AddMemberReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.AddGroupMember(c.Request().Context(), caller, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// DeleteGroupMember handles DELETE /api/admin/groups/:id/remove-member/:userId
func (h *StaffHandler) DeleteGroupMember(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.RemoveGroupMember(c.Request().Context(), caller, c.Param("id"), c.Param("userId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}
