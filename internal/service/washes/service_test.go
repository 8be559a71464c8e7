package washes

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
	creditRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
	"github.com/m04kA/SMC-WashService/pkg/ptr"
)

type mockWashRepo struct {
	mock.Mock
}

func (m *mockWashRepo) Create(ctx context.Context, wash *domain.Wash) (*domain.Wash, error) {
	args := m.Called(ctx, wash)
	created, _ := args.Get(0).(*domain.Wash)
	return created, args.Error(1)
}

func (m *mockWashRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Wash, error) {
	args := m.Called(ctx, userID)
	washes, _ := args.Get(0).([]*domain.Wash)
	return washes, args.Error(1)
}

func (m *mockWashRepo) List(ctx context.Context, limit int) ([]*domain.Wash, error) {
	args := m.Called(ctx, limit)
	washes, _ := args.Get(0).([]*domain.Wash)
	return washes, args.Error(1)
}

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilityBlock, error) {
	args := m.Called(ctx, filter)
	blocks, _ := args.Get(0).([]*domain.AvailabilityBlock)
	return blocks, args.Error(1)
}

type mockCreditRepo struct {
	mock.Mock
}

func (m *mockCreditRepo) GetByUserID(ctx context.Context, userID string) (*domain.SubscriptionCredit, error) {
	args := m.Called(ctx, userID)
	credit, _ := args.Get(0).(*domain.SubscriptionCredit)
	return credit, args.Error(1)
}

type mockWasherDirectory struct {
	mock.Mock
}

func (m *mockWasherDirectory) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error) {
	args := m.Called(ctx, ids)
	washers, _ := args.Get(0).(map[uuid.UUID]*domain.Washer)
	return washers, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	washerID = uuid.MustParse("1a000000-0000-4000-8000-000000000001")
	central  = time.FixedZone("CDT", -5*60*60)
	now      = time.Date(2026, time.September, 14, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc          *Service
	washes       *mockWashRepo
	availability *mockAvailabilityRepo
	credits      *mockCreditRepo
	washers      *mockWasherDirectory
}

func newFixture() *fixture {
	f := &fixture{
		washes:       &mockWashRepo{},
		availability: &mockAvailabilityRepo{},
		credits:      &mockCreditRepo{},
		washers:      &mockWasherDirectory{},
	}
	f.svc = NewService(f.washes, f.availability, f.credits, f.washers, central, nopLogger{})
	f.svc.timeProvider = fixedTime{now: now}
	return f
}

func TestGetDashboard_SplitsUpcomingAndPast(t *testing.T) {
	f := newFixture()
	f.washes.On("GetByUserID", mock.Anything, "user-1").Return([]*domain.Wash{
		{ID: 1, WasherID: ptr.Ptr(washerID), ScheduledStart: now.Add(-48 * time.Hour), LocationID: "38655", Status: domain.WashCompleted, VehicleCount: 1},
		{ID: 2, WasherID: ptr.Ptr(washerID), ScheduledStart: now.Add(3 * time.Hour), LocationID: "38655", Status: domain.WashScheduled, VehicleCount: 2},
		{ID: 3, ScheduledStart: now.Add(24 * time.Hour), LocationID: "38655", Status: domain.WashScheduled, VehicleCount: 1},
	}, nil)
	f.washers.On("GetByIDs", mock.Anything, []uuid.UUID{washerID}).
		Return(map[uuid.UUID]*domain.Washer{washerID: {ID: washerID, DisplayName: "Dana", Phone: "555-0101"}}, nil)
	f.credits.On("GetByUserID", mock.Anything, "user-1").
		Return(&domain.SubscriptionCredit{SharetribeUserID: "user-1", CreditsRemaining: 3, PlanLabel: "Monthly x4"}, nil)

	resp, err := f.svc.GetDashboard(context.Background(), " user-1 ")

	require.NoError(t, err)
	require.Len(t, resp.Upcoming, 2)
	require.Len(t, resp.Past, 1)

	assert.Equal(t, int64(2), resp.Upcoming[0].ID)
	assert.Equal(t, "Dana", resp.Upcoming[0].WasherName)
	assert.Equal(t, "555-0101", resp.Upcoming[0].WasherPhone)
	assert.Equal(t, "2026-09-14", resp.Upcoming[0].Date)
	assert.Equal(t, "10:00", resp.Upcoming[0].Time)
	assert.Empty(t, resp.Upcoming[1].WasherName)
	assert.Nil(t, resp.Upcoming[1].WasherID)
	assert.Equal(t, int64(1), resp.Past[0].ID)
	assert.Equal(t, &models.CreditsResponse{Remaining: 3, PlanLabel: "Monthly x4"}, resp.Credits)
}

func TestGetDashboard_CreditFailuresDoNotBreakDashboard(t *testing.T) {
	for name, creditErr := range map[string]error{
		"no record":     creditRepo.ErrCreditNotFound,
		"store failure": errors.New("connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.washes.On("GetByUserID", mock.Anything, "user-1").Return([]*domain.Wash{}, nil)
			f.credits.On("GetByUserID", mock.Anything, "user-1").Return(nil, creditErr)

			resp, err := f.svc.GetDashboard(context.Background(), "user-1")

			require.NoError(t, err)
			assert.Nil(t, resp.Credits)
			assert.Empty(t, resp.Upcoming)
			assert.NotNil(t, resp.Upcoming)
			f.washers.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
		})
	}
}

func TestGetDashboard_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetDashboard(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.washes.On("GetByUserID", mock.Anything, "user-1").Return(nil, errors.New("boom"))
	_, err = f.svc.GetDashboard(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrWashesQueryFailed)
}

func TestCreateAdminWash(t *testing.T) {
	start := time.Date(2026, time.September, 20, 15, 0, 0, 0, time.UTC)

	t.Run("applies defaults and skips capacity", func(t *testing.T) {
		f := newFixture()
		var saved *domain.Wash
		f.washes.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Wash) }).
			Return(&domain.Wash{ID: 42, SharetribeUserID: "user-1", ScheduledStart: start, LocationID: "38655",
				VehicleCount: 1, Status: domain.WashScheduled}, nil)

		resp, err := f.svc.CreateAdminWash(context.Background(), &models.CreateWashRequest{
			SharetribeUserID:    "user-1",
			ScheduledStart:      &start,
			LocationID:          " 38655 ",
			SpecialInstructions: ptr.Ptr("  "),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.Wash.ID)
		assert.Equal(t, "2026-09-20T15:00:00Z", resp.Wash.ScheduledStart)
		require.NotNil(t, saved)
		assert.Equal(t, domain.WashScheduled, saved.Status)
		assert.Equal(t, 1, saved.VehicleCount)
		assert.Equal(t, "38655", saved.LocationID)
		assert.Nil(t, saved.SpecialInstructions)
		assert.False(t, saved.LateCancellationFeeApplied)
		f.availability.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name    string
		req     *models.CreateWashRequest
		wantErr error
	}{
		{"missing user", &models.CreateWashRequest{ScheduledStart: &start, LocationID: "38655"}, ErrMissingRequiredFields},
		{"missing start", &models.CreateWashRequest{SharetribeUserID: "u", LocationID: "38655"}, ErrMissingRequiredFields},
		{"missing location", &models.CreateWashRequest{SharetribeUserID: "u", ScheduledStart: &start}, ErrMissingRequiredFields},
		{"unknown status", &models.CreateWashRequest{SharetribeUserID: "u", ScheduledStart: &start, LocationID: "38655", Status: ptr.Ptr("done")}, ErrInvalidStatus},
		{"end before start", &models.CreateWashRequest{SharetribeUserID: "u", ScheduledStart: &start, LocationID: "38655", ScheduledEnd: ptr.Ptr(start.Add(-time.Hour))}, ErrInvalidInput},
		{"zero vehicles", &models.CreateWashRequest{SharetribeUserID: "u", ScheduledStart: &start, LocationID: "38655", VehicleCount: ptr.Ptr(0)}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.CreateAdminWash(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.washes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		f := newFixture()
		f.washes.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

		_, err := f.svc.CreateAdminWash(context.Background(), &models.CreateWashRequest{
			SharetribeUserID: "user-1", ScheduledStart: &start, LocationID: "38655",
		})

		assert.ErrorIs(t, err, ErrCreateWashFailed)
	})
}

func TestListWashes_ClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, domain.DefaultAdminWashesLimit},
		{-3, domain.DefaultAdminWashesLimit},
		{50, 50},
		{10000, domain.MaxAdminWashesLimit},
	}
	for _, tt := range tests {
		f := newFixture()
		f.washes.On("List", mock.Anything, tt.want).Return([]*domain.Wash{}, nil)

		resp, err := f.svc.ListWashes(context.Background(), tt.in)

		require.NoError(t, err)
		assert.NotNil(t, resp.Washes)
		f.washes.AssertExpectations(t)
	}
}

func TestListAvailability(t *testing.T) {
	f := newFixture()
	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)

	f.availability.On("List", mock.Anything, mock.MatchedBy(func(filter domain.AvailabilityFilter) bool {
		return filter.Status != nil && *filter.Status == domain.AvailabilityOpen &&
			filter.Location != nil && *filter.Location == "38655" &&
			filter.StartDate.Equal(from) && filter.EndDate.Equal(to)
	})).Return([]*domain.AvailabilityBlock{
		{ID: 9, WasherID: washerID, ServiceDate: from, StartTime: "10:00:00", EndTime: "15:00:00",
			Location: "38655", Status: domain.AvailabilityOpen, MaxBookings: 3, CurrentBookings: 1},
	}, nil)
	f.washers.On("GetByIDs", mock.Anything, []uuid.UUID{washerID}).
		Return(nil, errors.New("cache miss and db down"))

	resp, err := f.svc.ListAvailability(context.Background(), &models.ListAvailabilityRequest{
		Zip: ptr.Ptr("38655"), StartDate: &from, EndDate: &to,
	})

	require.NoError(t, err)
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, "2026-09-01", resp.Availability[0].ServiceDate)
	assert.Equal(t, washerID.String(), resp.Availability[0].WasherID)
	assert.Nil(t, resp.Availability[0].Washer)

	_, err = f.svc.ListAvailability(context.Background(), &models.ListAvailabilityRequest{StartDate: &to, EndDate: &from})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
