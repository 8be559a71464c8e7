package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) GetWeekByWasher(ctx context.Context, washerID uuid.UUID) ([]domain.WeeklyTemplateRow, error) {
	args := m.Called(ctx, washerID)
	rows, _ := args.Get(0).([]domain.WeeklyTemplateRow)
	return rows, args.Error(1)
}

func (m *mockScheduleRepo) GetExceptionsByPeriod(ctx context.Context, washerID uuid.UUID, from, to time.Time) ([]domain.ScheduleException, error) {
	args := m.Called(ctx, washerID, from, to)
	ex, _ := args.Get(0).([]domain.ScheduleException)
	return ex, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var washerID = uuid.MustParse("5d2c9b7a-1e3f-4a6b-8c9d-0e1f2a3b4c5d")

func TestGetMonth(t *testing.T) {
	repo := &mockScheduleRepo{}
	ctx := context.Background()
	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

	repo.On("GetWeekByWasher", ctx, washerID).Return([]domain.WeeklyTemplateRow{{WasherID: washerID, Weekday: time.Monday, IsWorking: true}}, nil)
	repo.On("GetExceptionsByPeriod", ctx, washerID, from, to).Return([]domain.ScheduleException{}, nil)

	got, err := NewService(repo, inlineTx{}, nopLogger{}).GetMonth(ctx, washerID, "2026-02")

	require.NoError(t, err)
	assert.Equal(t, "2026-02", got.Month)
	assert.Len(t, got.DefaultWeek, 1)
	assert.Empty(t, got.Exceptions)
	repo.AssertExpectations(t)
}

func TestGetMonth_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewService(&mockScheduleRepo{}, inlineTx{}, nopLogger{}).GetMonth(ctx, washerID, "02-2026")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	repo := &mockScheduleRepo{}
	repo.On("GetWeekByWasher", ctx, washerID).Return(nil, errors.New("boom"))

	_, err = NewService(repo, inlineTx{}, nopLogger{}).GetMonth(ctx, washerID, "2026-02")
	assert.ErrorIs(t, err, ErrDefaultWeekQueryFailed)
}
