package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tuition.app/billing/repository"
)

// Store owns the connection pool and the transaction boundary.
type Store struct {
	*repository.Repository
	db *pgxpool.Pool
}

// NewStore creates a new Store whose repositories run outside any transaction
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Repository: repository.NewRepository(db),
		db:         db,
	}
}

// ExecTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise; the error
// returned by fn is passed through unchanged.
func (s *Store) ExecTx(ctx context.Context, fn func(repo *repository.Repository) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			rlog.Error("failed to roll back transaction", "error", rbErr)
		}
	}()

	if err := fn(repository.NewRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}
