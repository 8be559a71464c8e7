package schedule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/ptr"
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

func TestGetWeekByWasher(t *testing.T) {
	repo, mock := newRepo(t)
	updated := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM washer_default_week WHERE washer_id = $1 ORDER BY weekday ASC")).
		WithArgs(washerID.String()).
		WillReturnRows(sqlmock.NewRows(weekColumns).
			AddRow(washerID.String(), 1, true, "10:00:00", "15:00:00", "38655", updated).
			AddRow(washerID.String(), 3, true, "09:00:00", nil, nil, updated))

	rows, err := repo.GetWeekByWasher(context.Background(), washerID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, time.Monday, rows[0].Weekday)
	assert.Equal(t, types.TimeString("15:00:00"), *rows[0].EndTime)
	assert.Equal(t, "38655", rows[0].Zip)

	assert.Equal(t, time.Wednesday, rows[1].Weekday)
	assert.Nil(t, rows[1].EndTime)
	assert.Empty(t, rows[1].Zip)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertWeekRows(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO washer_default_week")+".*"+regexp.QuoteMeta("ON CONFLICT (washer_id, weekday) DO UPDATE")).
		WithArgs(washerID.String(), 1, true, "10:00:00", "15:00:00", "38655").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertWeekRows(context.Background(), []domain.WeeklyTemplateRow{{
		WasherID:  washerID,
		Weekday:   time.Monday,
		IsWorking: true,
		StartTime: ptr.Ptr(types.TimeString("10:00:00")),
		EndTime:   ptr.Ptr(types.TimeString("15:00:00")),
		Zip:       "38655",
	}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeekdays(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM washer_default_week WHERE washer_id = $1 AND weekday = ANY($2)")).
		WillReturnResult(sqlmock.NewResult(0, 5))

	err := repo.DeleteWeekdays(context.Background(), washerID, []time.Weekday{time.Sunday, time.Tuesday})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeekdays_EmptyIsNoop(t *testing.T) {
	repo, mock := newRepo(t)

	require.NoError(t, repo.DeleteWeekdays(context.Background(), washerID, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExceptionsByPeriod(t *testing.T) {
	repo, mock := newRepo(t)
	serviceDate := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM washer_schedule_exceptions")).
		WithArgs(washerID.String(), "2026-09-01", "2026-09-30").
		WillReturnRows(sqlmock.NewRows(exceptionColumns).
			AddRow(washerID.String(), serviceDate, true, nil, nil, "38601", "approved", nil))

	exceptions, err := repo.GetExceptionsByPeriod(context.Background(), washerID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, exceptions, 1)

	assert.True(t, exceptions[0].IsDayOff)
	assert.Equal(t, serviceDate, exceptions[0].ServiceDate)
	assert.Equal(t, "38601", *exceptions[0].Zip)
	assert.Equal(t, domain.ApprovalApproved, exceptions[0].ApprovalStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
