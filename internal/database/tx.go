package database

import (
	"context"
	"database/sql"
	"fmt"
)

type txKey struct{}

// TxManager открывает транзакцию и кладет её в контекст.
// Репозитории подхватывают транзакцию через TxFromContext.
type TxManager struct {
	db *sql.DB
}

// NewTxManager создает новый экземпляр TxManager.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTransaction выполняет fn в транзакции: commit при успехе, rollback при ошибке или панике.
// Если в контексте уже есть транзакция, fn выполняется в ней.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(context.WithValue(ctx, txKey{}, tx))
	return err
}

// TxFromContext возвращает транзакцию, открытую WithinTransaction.
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// QueriesFromContext возвращает queries, привязанные к транзакции из контекста, если она есть.
func QueriesFromContext(ctx context.Context, q *Queries) *Queries {
	if tx, ok := TxFromContext(ctx); ok {
		return q.WithTx(tx)
	}
	return q
}
