package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"staffadmin/internal/admin/auth"
	"staffadmin/internal/admin/model"
)

func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			// Generate random ID
			b := make([]byte, 16)
			_, _ = rand.Read(b)
			reqID = hex.EncodeToString(b)
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		return next(c)
	}
}

// AuthMiddleware validates the bearer token and stores the caller principal
// in the request context. One canonical Authorization header, no legacy
// token-key fallbacks.
func AuthMiddleware(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Success: false, Code: "unauthorized", Message: "Bearer token required",
				})
			}

			claims, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Success: false, Code: "unauthorized", Message: "Invalid or expired token",
				})
			}

			c.Set(principalContextKey, model.Principal{UserID: claims.UserID, Role: claims.Role})
			return next(c)
		}
	}
}
