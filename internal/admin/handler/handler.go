package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffadmin/internal/admin/model"
	"staffadmin/internal/admin/service"
)

const principalContextKey = "principal"

type StaffHandler struct {
	Service service.StaffService
}

func NewStaffHandler(s service.StaffService) *StaffHandler {
	return &StaffHandler{Service: s}
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// callerFrom reads the authenticated principal placed in the context by the
// auth middleware.
func callerFrom(c echo.Context) (model.Principal, error) {
	p, ok := c.Get(principalContextKey).(model.Principal)
	if !ok || p.UserID == "" {
		return model.Principal{}, service.ErrUnauthorized
	}
	return p, nil
}

func success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{Success: true, Data: data})
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, model.SuccessResponse{Success: true, Data: data})
}

func badRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Success: false, Code: "bad_request", Message: "Invalid body",
	})
}
