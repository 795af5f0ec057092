package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"staffadmin/internal/admin/auth"
	"staffadmin/internal/admin/handler"
	"staffadmin/internal/admin/router"
)

const testSecret = "handler-test-secret"

// setupServer wires the full route table against a mock service, exactly as
// cmd/server does against the real one.
func setupServer(svc *MockStaffService) (*echo.Echo, *auth.TokenManager) {
	e := echo.New()
	tokens := auth.NewTokenManager(testSecret, 60)
	router.RegisterRoutes(e, handler.NewStaffHandler(svc), tokens)
	return e, tokens
}

func bearerFor(tokens *auth.TokenManager, userID, role string) map[string]string {
	token, _, _ := tokens.GenerateToken(userID, role)
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func performRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	out := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}
