package availability

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

var washerID = uuid.MustParse("3f6c1f0e-8d2a-4b7e-9f10-2c3d4e5f6a7b")

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func blockRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestReserve_Success(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE washer_availability SET current_bookings = current_bookings + 1")).
		WithArgs(int64(42), "open").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Reserve(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_FullBlock(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE washer_availability")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, washer_id, service_date")).
		WithArgs(int64(42)).
		WillReturnRows(blockRows().AddRow(
			int64(42), washerID.String(), time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			"10:00:00", "15:00:00", "38655", "open", 3, 3, created,
		))

	err := repo.Reserve(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCapacityFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_MissingBlock(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE washer_availability")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, washer_id, service_date")).
		WillReturnRows(blockRows())

	err := repo.Reserve(context.Background(), 42)

	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserve_ExecError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE washer_availability")).
		WillReturnError(errors.New("connection reset"))

	err := repo.Reserve(context.Background(), 42)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetOpenBySlot_ScansRows(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM washer_availability WHERE")).
		WithArgs("15:00:00", "38655", "2026-09-07", "10:00:00", "open").
		WillReturnRows(blockRows().AddRow(
			int64(7), washerID.String(), date, "10:00:00", "15:00:00", "38655", "open", 3, 1, date,
		))

	blocks, err := repo.GetOpenBySlot(context.Background(), "38655", date, "10:00:00", "15:00:00")
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, washerID, b.WasherID)
	assert.Equal(t, types.TimeString("10:00:00"), b.StartTime)
	assert.Equal(t, domain.AvailabilityOpen, b.Status)
	assert.Equal(t, 2, b.RemainingCapacity())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByWasherAndPeriod(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM washer_availability WHERE washer_id = $1 AND service_date >= $2 AND service_date <= $3")).
		WithArgs(washerID.String(), "2026-09-01", "2026-09-30").
		WillReturnResult(sqlmock.NewResult(0, 9))

	deleted, err := repo.DeleteByWasherAndPeriod(context.Background(), washerID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, int64(9), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_SplitsIntoChunks(t *testing.T) {
	repo, mock := newRepo(t)

	blocks := make([]domain.AvailabilityBlock, insertBatchSize+1)
	for i := range blocks {
		blocks[i] = domain.AvailabilityBlock{
			WasherID:    washerID,
			ServiceDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			StartTime:   "10:00:00",
			EndTime:     "15:00:00",
			Location:    "38655",
			Status:      domain.AvailabilityOpen,
			MaxBookings: 3,
		}
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO washer_availability")).
		WillReturnResult(sqlmock.NewResult(0, insertBatchSize))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO washer_availability")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.CreateBatch(context.Background(), blocks)

	require.NoError(t, err)
	assert.Equal(t, int64(insertBatchSize+1), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
