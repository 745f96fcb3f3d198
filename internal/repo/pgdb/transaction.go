package pgdb

import (
	"context"
	"database/sql"
	"fmt"

	"sportshub-recruit-api/internal/uow"
	"sportshub-recruit-api/pkg/postgres"
)

type txKey struct{}

type TxManager struct {
	db *sql.DB
}

func NewTxManager(pgdb *postgres.Postgres) uow.UnitOfWork {
	return &TxManager{db: pgdb.Database}
}

// Do joins an already running transaction instead of opening a nested one.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if getTx(ctx) != nil {
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

		if e := tx.Commit(); e != nil {
			err = fmt.Errorf("failed to commit transaction: %w", e)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, tx))
}

func getTx(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return nil
}

// executor is what *sql.DB and *sql.Tx have in common.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getExecutor(ctx context.Context, db *sql.DB) executor {
	if tx := getTx(ctx); tx != nil {
		return tx
	}

	return db
}
