package save_schedule

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashService/internal/domain"
	saveSchedule "github.com/m04kA/SMC-WashService/internal/usecase/save_schedule"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *saveSchedule.Request) (*saveSchedule.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*saveSchedule.Response)
	return resp, args.Error(1)
}

func (m *mockUseCase) Preview(ctx context.Context, req *saveSchedule.Request) (*saveSchedule.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*saveSchedule.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var washerID = uuid.MustParse("5d2c9b7a-1e3f-4a6b-8c9d-0e1f2a3b4c5d")

const body = `{
	"month": "2026-09",
	"defaultZip": "38655",
	"defaultWeek": [
		{"weekday": 1, "is_working": true, "start_time": "10:00", "end_time": "15:00"},
		{"weekday": 3, "is_working": true}
	],
	"exceptions": [
		{"service_date": "2026-09-07", "is_day_off": true},
		{"service_date": "", "is_day_off": true}
	]
}`

func newRouter(uc *mockUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/staff/washers/{washerId}/schedule", h.Handle).Methods(http.MethodPut)
	r.HandleFunc("/staff/washers/{washerId}/schedule/preview", h.HandlePreview).Methods(http.MethodPost)
	return r
}

func do(r *mux.Router, method, path, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(payload)))
	return rec
}

func TestHandle_ConvertsRequestAndDropsDatelessExceptions(t *testing.T) {
	uc := &mockUseCase{}
	var got *saveSchedule.Request
	uc.On("Execute", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*saveSchedule.Request) }).
		Return(&saveSchedule.Response{
			WasherID:      washerID,
			MonthStart:    time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			MonthEnd:      time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
			OK:            true,
			Persisted:     true,
			BlocksCreated: 8,
		}, nil)

	rec := do(newRouter(uc), http.MethodPut, "/staff/washers/"+washerID.String()+"/schedule", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"blocksCreated":8`)
	assert.Contains(t, rec.Body.String(), `"failures":[]`)

	require.NotNil(t, got)
	assert.Equal(t, washerID, got.WasherID)
	assert.Equal(t, "2026-09", got.Month)
	require.Len(t, got.DefaultWeek, 2)
	assert.Equal(t, time.Monday, got.DefaultWeek[0].Weekday)
	assert.Equal(t, "10:00:00", got.DefaultWeek[0].StartTime.String())
	assert.Nil(t, got.DefaultWeek[1].StartTime)
	require.Len(t, got.Exceptions, 1)
	assert.True(t, got.Exceptions[0].IsDayOff)
}

func TestHandle_WeeklyMinimumReturnsFailures(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &saveSchedule.WeeklyHoursError{
		MinHours: 10,
		Failures: []domain.WeeklyHoursFailure{
			{WeekStart: time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), Hours: 5},
		},
	})

	rec := do(newRouter(uc), http.MethodPut, "/staff/washers/"+washerID.String()+"/schedule", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"error": "min_weekly_hours_failed",
		"message": "each week of the month must reach the minimum working hours",
		"details": [{"weekStart": "2026-08-30", "hours": 5}]
	}`, rec.Body.String())
}

func TestHandle_MapsErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{fmt.Errorf("%w: %q", saveSchedule.ErrInvalidMonth, "2026-13"), http.StatusBadRequest, "invalid_month"},
		{fmt.Errorf("%w: duplicate weekday", saveSchedule.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{fmt.Errorf("%w: %w", saveSchedule.ErrDefaultWeekUpsertFailed, errors.New("x")), http.StatusInternalServerError, "default_week_upsert_failed"},
		{fmt.Errorf("%w: %w", saveSchedule.ErrDefaultWeekDeleteFailed, errors.New("x")), http.StatusInternalServerError, "default_week_delete_failed"},
		{fmt.Errorf("%w: %w", saveSchedule.ErrExceptionsUpsertFailed, errors.New("x")), http.StatusInternalServerError, "exceptions_upsert_failed"},
		{fmt.Errorf("%w: %w", saveSchedule.ErrAvailabilityDeleteFailed, errors.New("x")), http.StatusInternalServerError, "availability_delete_failed"},
		{fmt.Errorf("%w: %w", saveSchedule.ErrAvailabilityInsertFailed, errors.New("x")), http.StatusInternalServerError, "availability_insert_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := do(newRouter(uc), http.MethodPut, "/staff/washers/"+washerID.String()+"/schedule", body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), fmt.Sprintf(`"error":%q`, tt.kind))
		})
	}
}

func TestHandle_RejectsBeforeUseCase(t *testing.T) {
	tests := []struct {
		name, path, payload, kind string
	}{
		{"bad washer id", "/staff/washers/not-a-uuid/schedule", body, "invalid_washer_id"},
		{"broken json", "/staff/washers/" + washerID.String() + "/schedule", `{"month":`, "invalid_request_body"},
		{"weekday out of range", "/staff/washers/" + washerID.String() + "/schedule", `{"month":"2026-09","defaultWeek":[{"weekday":9}]}`, "invalid_request_body"},
		{"bad time", "/staff/washers/" + washerID.String() + "/schedule", `{"month":"2026-09","defaultWeek":[{"weekday":1,"is_working":true,"start_time":"9am"}]}`, "invalid_time"},
		{"bad exception date", "/staff/washers/" + washerID.String() + "/schedule", `{"month":"2026-09","exceptions":[{"service_date":"09/07/2026"}]}`, "invalid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}

			rec := do(newRouter(uc), http.MethodPut, tt.path, tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), fmt.Sprintf(`"error":%q`, tt.kind))
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandlePreview_UsesPreview(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Preview", mock.Anything, mock.Anything).Return(&saveSchedule.Response{
		WasherID: washerID,
		OK:       false,
		Failures: []domain.WeeklyHoursFailure{{WeekStart: time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), Hours: 5}},
	}, nil)

	rec := do(newRouter(uc), http.MethodPost, "/staff/washers/"+washerID.String()+"/schedule/preview", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"persisted":false`)
	assert.Contains(t, rec.Body.String(), `"weekStart":"2026-08-30"`)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
