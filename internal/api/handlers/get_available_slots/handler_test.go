package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-WashService/internal/usecase/get_available_slots"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots"+query, nil))
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	washer := uuid.MustParse("1a000000-0000-4000-8000-000000000001")
	date := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Zip: "38655", Date: date}).
		Return(&getAvailableSlots.Response{
			Zip:  "38655",
			Date: date,
			Slots: []domain.AvailableSlot{{
				StartTime: "10:00:00", EndTime: "15:00:00", OpenBlocks: 1, TotalCapacityRemaining: 2,
				AvailabilityIDs: []int64{5},
				Washers:         []domain.SlotWasher{{WasherID: washer, Name: "Dana", Phone: "555", AvailabilityID: 5, Remaining: 2}},
			}},
		}, nil)

	rec := get(NewHandler(uc, nopLogger{}), "?zip=38655&date=2026-09-14")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"zip": "38655",
		"date": "2026-09-14",
		"slots": [{
			"start_time": "10:00:00",
			"end_time": "15:00:00",
			"open_blocks": 1,
			"total_capacity_remaining": 2,
			"availability_ids": [5],
			"washers": [{"id": "1a000000-0000-4000-8000-000000000001", "name": "Dana", "phone": "555", "availability_id": 5, "remaining": 2}]
		}]
	}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		query  string
		ucErr  error
		status int
		kind   string
	}{
		{"?date=2026-09-14", nil, http.StatusBadRequest, "missing_zip"},
		{"?zip=38655", nil, http.StatusBadRequest, "missing_date"},
		{"?zip=38655&date=tomorrow", nil, http.StatusBadRequest, "invalid_date"},
		{"?zip=38655&date=2026-09-14", fmt.Errorf("%w: %w", getAvailableSlots.ErrAvailabilityQueryFailed, errors.New("db down")),
			http.StatusInternalServerError, "availability_day_failed"},
	}

	for _, tt := range tests {
		uc := &mockUseCase{}
		if tt.ucErr != nil {
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
		}

		rec := get(NewHandler(uc, nopLogger{}), tt.query)

		assert.Equal(t, tt.status, rec.Code, tt.query)
		assert.Contains(t, rec.Body.String(), fmt.Sprintf(`"error":%q`, tt.kind), tt.query)
	}
}
