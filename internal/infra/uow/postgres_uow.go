package uow

import (
	"context"
	"errors"
	"log/slog"

	"booking-holds/internal/infra"
	"booking-holds/internal/infra/repository"
	"booking-holds/internal/pkg/errs"
	"booking-holds/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Serializable isolation: of two racing transactions whose scans overlap a
// conflicting write, the store aborts one. The abort surfaces as a
// SERIALIZATION-kind error for the caller to retry; no retry happens here.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, newPgTx(u.pool))
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newPgTx(pgxTx)); err != nil {
		return classifyTxError(err)
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return classifyTxError(errs.Mark(err, errTransactionCommit))
	}
	return nil
}

func classifyTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return infra.WrapRepoErr(infra.KindSerialization, "transaction aborted by concurrent write", err)
		}
	}
	return err
}

type pgTx struct {
	dbtx repository.DBTX

	// Lazy-initialized repositories
	holdRepo    shared.HoldRepository
	bookingRepo shared.BookingRepository
	catalogRepo shared.ServiceCatalog
}

func newPgTx(dbtx repository.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Holds() shared.HoldRepository {
	if t.holdRepo == nil {
		t.holdRepo = repository.NewHoldRepository(t.dbtx)
	}
	return t.holdRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Services() shared.ServiceCatalog {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewServiceCatalogRepository(t.dbtx)
	}
	return t.catalogRepo
}
