package get_dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashService/internal/service/washes"
	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetDashboard(ctx context.Context, userID string) (*models.DashboardResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*models.DashboardResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/users/{userId}/dashboard", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_ReturnsDashboard(t *testing.T) {
	svc := &mockService{}
	svc.On("GetDashboard", mock.Anything, "user-1").Return(&models.DashboardResponse{
		Upcoming: []models.DashboardWash{{ID: 1, Date: "2026-09-14", Time: "10:00", Status: "scheduled", VehicleCount: 1}},
		Past:     []models.DashboardWash{},
		Credits:  &models.CreditsResponse{Remaining: 3, PlanLabel: "Monthly"},
	}, nil)

	rec := serve(svc, "/users/user-1/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"planLabel":"Monthly"`)
	assert.Contains(t, rec.Body.String(), `"past":[]`)
	assert.Contains(t, rec.Body.String(), `"time":"10:00"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{washes.ErrInvalidInput, http.StatusBadRequest, "missing_user_id"},
		{fmt.Errorf("%w: %w", washes.ErrWashesQueryFailed, errors.New("db down")), http.StatusInternalServerError, "washes_query_failed"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		svc := &mockService{}
		svc.On("GetDashboard", mock.Anything, "user-1").Return(nil, tt.err)

		rec := serve(svc, "/users/user-1/dashboard")

		assert.Equal(t, tt.status, rec.Code)
		assert.Contains(t, rec.Body.String(), fmt.Sprintf(`"error":%q`, tt.kind))
	}
}
