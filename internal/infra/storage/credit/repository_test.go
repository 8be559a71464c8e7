package credit

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM subscription_credits WHERE sharetribe_user_id = $1 LIMIT 1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"sharetribe_user_id", "credits_remaining", "plan_label"}).
			AddRow("user-1", int64(4), "Monthly 4"))

	credit, err := repo.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4, credit.CreditsRemaining)
	assert.Equal(t, "Monthly 4", credit.PlanLabel)
	assert.True(t, credit.HasCredits())
}

func TestGetByUserID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM subscription_credits").
		WillReturnRows(sqlmock.NewRows([]string{"sharetribe_user_id", "credits_remaining", "plan_label"}))

	_, err = NewRepository(db).GetByUserID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrCreditNotFound)
}

func TestGetByUserID_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM subscription_credits").WillReturnError(errors.New("relation does not exist"))

	_, err = NewRepository(db).GetByUserID(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrCreditNotFound)
}
