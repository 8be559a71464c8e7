package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-WashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WashService/pkg/txmanager"
)

// beginner адаптирует *sql.DB к txmanager.TxBeginner без сбора метрик
type beginner struct {
	db *sql.DB
}

func (b beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}

// NewTransactionManager создает менеджер транзакций поверх обычного *sql.DB
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(beginner{db: db})
}
