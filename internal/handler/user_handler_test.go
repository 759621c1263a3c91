package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sentinel/internal/model"
	"sentinel/internal/service"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) UpdateStatus(ctx context.Context, userID string, update service.StatusUpdate) (int64, error) {
	args := m.Called(ctx, userID, update)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserHandler_ListUsers_NeverExposesCredentials(t *testing.T) {
	svc := new(MockUserService)

	// even if credential fields somehow survive the query-level projection,
	// they must never serialize
	users := []model.User{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Amina",
			Email:       "amina@example.com",
			Password:    "hunter2",
			AccessToken: "tok-123",
			OTP:         "000000",
			CreatedAt:   time.Now(),
		},
	}
	svc.On("ListUsers", mock.Anything).Return(users, int64(1), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/mongo/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewUserHandler(svc)
	assert.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, "amina@example.com")
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "access_token")
	assert.NotContains(t, body, "otp")
	assert.NotContains(t, body, "hunter2")
}

func TestUserHandler_UpdateStatus_PassesPathParamAndBody(t *testing.T) {
	svc := new(MockUserService)
	id := primitive.NewObjectID().Hex()

	svc.On("UpdateStatus", mock.Anything, id, mock.MatchedBy(func(u service.StatusUpdate) bool {
		return u.Status != nil && *u.Status == "suspended" && u.Blocked != nil && *u.Blocked
	})).Return(int64(1), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"suspended","blocked":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(id)

	h := NewUserHandler(svc)
	assert.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"modified":1`)
	svc.AssertExpectations(t)
}
