package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tx is an open transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Transactor opens transactions. The returned context carries the
// transaction so repositories called with it join the same unit of work.
type Transactor interface {
	Begin(ctx context.Context) (context.Context, Tx, error)
}

type txKey struct{}

// WithTx stores a transaction in the context.
func WithTx(ctx context.Context, tx Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction held by ctx, or nil.
func TxFromContext(ctx context.Context) Tx {
	if ctx == nil {
		return nil
	}
	tx, _ := ctx.Value(txKey{}).(Tx)
	return tx
}

// Conn returns the transaction held by ctx when it can run queries,
// otherwise the fallback (usually the pool).
func Conn(ctx context.Context, fallback DBTX) DBTX {
	if q, ok := TxFromContext(ctx).(DBTX); ok {
		return q
	}
	return fallback
}

// PgxTransactor begins transactions on a pgx pool.
type PgxTransactor struct {
	pool *pgxpool.Pool
}

// NewPgxTransactor creates a Transactor backed by pool.
func NewPgxTransactor(pool *pgxpool.Pool) *PgxTransactor {
	return &PgxTransactor{pool: pool}
}

// Begin starts a read-committed transaction and stores it in the returned context.
func (t *PgxTransactor) Begin(ctx context.Context) (context.Context, Tx, error) {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return ctx, nil, fmt.Errorf("begin transaction: %w", err)
	}
	return WithTx(ctx, tx), tx, nil
}
