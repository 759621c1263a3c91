package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"sentinel/internal/auth"
)

func TestRequireAPIKey(t *testing.T) {
	const secret = "s3cret-admin-key"

	tests := []struct {
		name        string
		headers     map[string]string
		wantStatus  int
		wantNext    bool
		wantMessage string
	}{
		{
			name:        "missing key",
			headers:     nil,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing API key",
		},
		{
			name:        "wrong api key header",
			headers:     map[string]string{"X-API-Key": "wrong"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid API key",
		},
		{
			name:        "wrong bearer token",
			headers:     map[string]string{"Authorization": "Bearer wrong"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid API key",
		},
		{
			name:        "authorization without bearer prefix is ignored",
			headers:     map[string]string{"Authorization": secret},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing API key",
		},
		{
			name:       "valid api key header",
			headers:    map[string]string{"X-API-Key": secret},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "valid bearer token",
			headers:    map[string]string{"Authorization": "Bearer " + secret},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name: "api key header takes priority over authorization",
			headers: map[string]string{
				"X-API-Key":     secret,
				"Authorization": "Bearer wrong",
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true
				return c.NoContent(http.StatusOK)
			}

			err := auth.RequireAPIKey(secret)(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Contains(t, rec.Body.String(), `"error":"Unauthorized"`)
				assert.Contains(t, rec.Body.String(), tt.wantMessage)
			}
		})
	}
}
