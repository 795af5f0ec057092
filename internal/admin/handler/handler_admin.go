package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffadmin/internal/admin/model"
)

// GetAdminUsers handles GET /api/admin/admin-users
func (h *StaffHandler) GetAdminUsers(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	admins, err := h.Service.ListAdmins(c.Request().Context(), caller)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if admins == nil {
		admins = []*model.AdminUser{}
	}

	return success(c, map[string]interface{}{"admins": admins})
}

// PostAdminUser handles POST /api/admin/admin-users
func (h *StaffHandler) PostAdminUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateAdminReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	admin, err := h.Service.CreateAdmin(c.Request().Context(), caller, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return created(c, admin)
}

// GetPendingAdmins handles GET /api/admin/admin-users/pending/list
func (h *StaffHandler) GetPendingAdmins(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	pending, err := h.Service.ListPendingAdmins(c.Request().Context(), caller)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if pending == nil {
		pending = []*model.AdminUser{}
	}

	return success(c, map[string]interface{}{"pendingAdmins": pending})
}

// PostVerifyAdmin handles POST /api/admin/admin-users/:id/verify
func (h *StaffHandler) PostVerifyAdmin(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.VerifyAdminReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}
	// Path param wins over body; older clients send both
	if id := c.Param("id"); id != "" {
		req.AdminID = id
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.VerifyAdmin(c.Request().Context(), caller, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// PostPromoteUser handles POST /api/admin/promote-user
func (h *StaffHandler) PostPromoteUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.PromoteUserReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.PromoteUser(c.Request().Context(), caller, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// PatchAdminStatus handles PATCH /api/admin/admin-users/:id/status
func (h *StaffHandler) PatchAdminStatus(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.SetAdminStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.SetAdminStatus(c.Request().Context(), caller, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// PostLogin handles POST /api/admin/auth/login
func (h *StaffHandler) PostLogin(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return badRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.Login(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return success(c, result)
}

// GetAuditLogs handles GET /api/admin/audit-logs
func (h *StaffHandler) GetAuditLogs(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	filter := model.AuditFilter{
		ActorID:  c.QueryParam("actorId"),
		TargetID: c.QueryParam("targetId"),
		GroupID:  c.QueryParam("groupId"),
		Action:   c.QueryParam("action"),
	}

	entries, err := h.Service.ListAuditEntries(c.Request().Context(), caller, filter)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	if entries == nil {
		entries = []*model.AuditEntry{}
	}

	return success(c, map[string]interface{}{"logs": entries})
}
