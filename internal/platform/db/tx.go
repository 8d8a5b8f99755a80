package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bedboard/bedboard/internal/platform/apperr"
)

type txKey struct{}

// TxFromContext returns the transaction carried by ctx, or nil. Repositories
// check this first so multi-statement operations transparently join the
// ambient transaction started by RunInTx.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// WithTx returns a child context carrying tx.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxRunner runs a function inside a database transaction. Services depend on
// this interface rather than on the pool so unit tests can substitute a fake.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Runner is the pgx-backed TxRunner. Transient failures (serialization,
// deadlock, dropped connection) are retried up to MaxAttempts; everything
// else rolls back and surfaces immediately.
type Runner struct {
	pool        *pgxpool.Pool
	MaxAttempts int
}

func NewRunner(pool *pgxpool.Pool) *Runner {
	return &Runner{pool: pool, MaxAttempts: 3}
}

// RunInTx begins a transaction, stores it on the context, and invokes fn.
// On any error the transaction is rolled back before returning, so no
// partially-applied state is ever visible to other readers. Commit and begin
// failures are reported as transaction failures.
func (r *Runner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < r.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return apperr.Wrap(apperr.KindTransaction, "transaction cancelled", ctx.Err())
			case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
			}
		}

		err := r.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
	}
	return apperr.Wrap(apperr.KindTransaction, "transaction failed after retries", lastErr)
}

func (r *Runner) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindDependency, "database unavailable", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Wrap(apperr.KindTransaction, "commit failed", err)
	}
	return nil
}

// retryable reports whether the failure is transient. Taxonomy errors from
// the service layer (NotFound, Conflict, ...) never retry.
func retryable(err error) bool {
	if apperr.KindOf(err) != apperr.KindInternal &&
		apperr.KindOf(err) != apperr.KindTransaction &&
		apperr.KindOf(err) != apperr.KindDependency {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
		return false
	}
	return pgconn.SafeToRetry(errors.Unwrap(err)) || pgconn.SafeToRetry(err)
}
