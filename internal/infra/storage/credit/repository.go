package credit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/psqlbuilder"
)

const tableName = "subscription_credits"

var (
	// ErrCreditNotFound возвращается, когда у пользователя нет записи о кредитах
	ErrCreditNotFound = errors.New("credit.repository: subscription credit not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("credit.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("credit.repository: failed to scan row")
)

// Repository репозиторий кредитов подписки (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID возвращает остаток кредитов пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.SubscriptionCredit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("sharetribe_user_id", "credits_remaining", "plan_label").
		From(tableName).
		Where(squirrel.Eq{"sharetribe_user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	var (
		credit    domain.SubscriptionCredit
		planLabel sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&credit.SharetribeUserID,
		&credit.CreditsRemaining,
		&planLabel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan credit: %w", ErrScanRow, err)
	}

	credit.PlanLabel = planLabel.String

	return &credit, nil
}
