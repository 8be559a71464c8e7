package get_available_slots

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
	"github.com/m04kA/SMC-WashService/pkg/types"
)

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) GetOpenByZipAndDate(ctx context.Context, zip string, date time.Time) ([]*domain.AvailabilityBlock, error) {
	args := m.Called(ctx, zip, date)
	blocks, _ := args.Get(0).([]*domain.AvailabilityBlock)
	return blocks, args.Error(1)
}

type mockWashers struct {
	mock.Mock
}

func (m *mockWashers) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error) {
	args := m.Called(ctx, ids)
	washers, _ := args.Get(0).(map[uuid.UUID]*domain.Washer)
	return washers, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	washerA = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	washerB = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
	washerC = uuid.MustParse("cccccccc-0000-0000-0000-000000000003")
	day     = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
)

func block(id int64, washer uuid.UUID, start, end types.TimeString, current int) *domain.AvailabilityBlock {
	return &domain.AvailabilityBlock{
		ID:              id,
		WasherID:        washer,
		ServiceDate:     day,
		StartTime:       start,
		EndTime:         end,
		Location:        "38655",
		Status:          domain.AvailabilityOpen,
		MaxBookings:     3,
		CurrentBookings: current,
	}
}

func TestAggregateSlots_GroupsWashersInSameWindow(t *testing.T) {
	blocks := []*domain.AvailabilityBlock{
		block(1, washerA, "10:00:00", "15:00:00", 1),
		block(2, washerB, "10:00:00", "15:00:00", 1),
	}
	washers := map[uuid.UUID]*domain.Washer{
		washerA: {ID: washerA, DisplayName: "Alice", Phone: "555-0101"},
		washerB: {ID: washerB, DisplayName: "Bob", Phone: "555-0102"},
	}

	slots := aggregateSlots(blocks, washers)

	require.Len(t, slots, 1)
	assert.Equal(t, 2, slots[0].OpenBlocks)
	assert.Equal(t, 4, slots[0].TotalCapacityRemaining)
	assert.Equal(t, []int64{1, 2}, slots[0].AvailabilityIDs)
	require.Len(t, slots[0].Washers, 2)
	assert.Equal(t, "Alice", slots[0].Washers[0].Name)
	assert.Equal(t, int64(2), slots[0].Washers[1].AvailabilityID)
}

func TestAggregateSlots_SkipsFullBlocksAndOrdersByStart(t *testing.T) {
	closed := block(4, washerC, "08:00:00", "12:00:00", 0)
	closed.Status = domain.AvailabilityClosed

	blocks := []*domain.AvailabilityBlock{
		block(1, washerA, "12:00:00", "16:00:00", 0),
		block(2, washerB, "09:00:00", "13:00:00", 3),
		block(3, washerC, "09:00:00", "14:00:00", 2),
		closed,
	}

	slots := aggregateSlots(blocks, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("14:00:00"), slots[0].EndTime)
	assert.Equal(t, 1, slots[0].TotalCapacityRemaining)
	assert.Equal(t, types.TimeString("12:00:00"), slots[1].StartTime)
	assert.Equal(t, 3, slots[1].TotalCapacityRemaining)
}

func TestExecute_DegradesWhenWasherProfilesUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := &mockAvailabilityRepo{}
	washers := &mockWashers{}

	repo.On("GetOpenByZipAndDate", ctx, "38655", day).Return([]*domain.AvailabilityBlock{
		block(1, washerA, "10:00:00", "15:00:00", 0),
	}, nil)
	washers.On("GetByIDs", ctx, []uuid.UUID{washerA}).Return(nil, errors.New("washers table locked"))

	resp, err := NewUseCase(repo, washers, nopLogger{}).Execute(ctx, &Request{Zip: " 38655 ", Date: day})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Empty(t, resp.Slots[0].Washers[0].Name)
	assert.Equal(t, washerA, resp.Slots[0].Washers[0].WasherID)
}

func TestExecute_SkipsProfileLookupWhenNothingOpen(t *testing.T) {
	ctx := context.Background()
	repo := &mockAvailabilityRepo{}
	washers := &mockWashers{}

	repo.On("GetOpenByZipAndDate", ctx, "38655", day).Return([]*domain.AvailabilityBlock{
		block(1, washerA, "10:00:00", "15:00:00", 3),
	}, nil)

	resp, err := NewUseCase(repo, washers, nopLogger{}).Execute(ctx, &Request{Zip: "38655", Date: day})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	washers.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	uc := NewUseCase(&mockAvailabilityRepo{}, &mockWashers{}, nopLogger{})

	_, err := uc.Execute(ctx, &Request{Date: day})
	assert.ErrorIs(t, err, ErrMissingZip)

	_, err = uc.Execute(ctx, &Request{Zip: "38655"})
	assert.ErrorIs(t, err, ErrMissingDate)

	repo := &mockAvailabilityRepo{}
	repo.On("GetOpenByZipAndDate", ctx, "38655", day).Return(nil, errors.New("timeout"))

	_, err = NewUseCase(repo, &mockWashers{}, nopLogger{}).Execute(ctx, &Request{Zip: "38655", Date: day})
	assert.ErrorIs(t, err, ErrAvailabilityQueryFailed)
}
