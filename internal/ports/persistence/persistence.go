package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Querier общий набор операций для соединения и транзакции
type Querier interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error)
	NamedExec(ctx context.Context, query string, arg interface{}) error
	NamedExecWithResult(ctx context.Context, query string, arg interface{}) (int64, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

// Persistence соединение с БД, умеющее открывать транзакции
type Persistence interface {
	Querier
	BeginTx(ctx context.Context) (Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, Transaction) error) error
}

// Transaction открытая транзакция
type Transaction interface {
	Querier
	Commit() error
	Rollback() error
}
