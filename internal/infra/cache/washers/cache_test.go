package washers

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

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*domain.Washer), args.Error(1)
}

type nopMetrics struct{}

func (nopMetrics) IncWasherCacheLookup(string) {}

func TestCache_LoadsMissesOnce(t *testing.T) {
	ctx := context.Background()
	alice := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bob := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	source := &mockSource{}
	source.On("GetByIDs", ctx, []uuid.UUID{alice, bob}).Return(map[uuid.UUID]*domain.Washer{
		alice: {ID: alice, DisplayName: "Alice", Phone: "555-0101"},
		bob:   {ID: bob, DisplayName: "Bob"},
	}, nil).Once()

	cache, err := NewCache(source, 10, time.Minute, nopMetrics{})
	require.NoError(t, err)

	first, err := cache.GetByIDs(ctx, []uuid.UUID{alice, bob, alice})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := cache.GetByIDs(ctx, []uuid.UUID{bob})
	require.NoError(t, err)
	assert.Equal(t, "Bob", second[bob].DisplayName)

	source.AssertExpectations(t)
}

func TestCache_PropagatesSourceError(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	source := &mockSource{}
	source.On("GetByIDs", ctx, []uuid.UUID{id}).Return(nil, errors.New("db down"))

	cache, err := NewCache(source, 10, time.Minute, nopMetrics{})
	require.NoError(t, err)

	_, err = cache.GetByIDs(ctx, []uuid.UUID{id})
	assert.Error(t, err)
}

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := NewCache(&mockSource{}, 0, time.Minute, nopMetrics{})
	assert.ErrorIs(t, err, ErrInvalidSize)
}
