package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/repository"
	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/pgconv"
)

var ErrNotFound = errors.New("billing record not found")

// TransitionFunc receives the locked record and returns its next value.
// Returning the same pointer means nothing changed and skips the write.
type TransitionFunc func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error)

// StateMachine runs billing record transitions under a row lock.
type StateMachine interface {
	Transition(ctx context.Context, schoolID, id uuid.UUID, transition TransitionFunc) (*billingrecord.BillingRecord, error)
}

// TxExecutor opens a transaction and hands out repositories bound to it.
type TxExecutor interface {
	ExecTx(ctx context.Context, fn func(repo *repository.Repository) error) error
}

// BillingRecordStateMachine owns the transaction boundary of every
// single-record transition: lock, transition, persist, commit.
type BillingRecordStateMachine struct {
	tx TxExecutor
}

func NewBillingRecordStateMachine(tx TxExecutor) *BillingRecordStateMachine {
	return &BillingRecordStateMachine{tx: tx}
}

var _ StateMachine = (*BillingRecordStateMachine)(nil)

// Transition loads the record with SELECT ... FOR UPDATE, applies transition
// and writes the result back inside the same transaction. Errors returned by
// transition roll the transaction back and reach the caller unchanged.
func (sm *BillingRecordStateMachine) Transition(ctx context.Context, schoolID, id uuid.UUID, transition TransitionFunc) (*billingrecord.BillingRecord, error) {
	var result *billingrecord.BillingRecord

	err := sm.tx.ExecTx(ctx, func(repo *repository.Repository) error {
		row, err := repo.BillingRecords.GetBillingRecordForUpdate(ctx, billingrecords.GetBillingRecordForUpdateParams{
			SchoolID: pgconv.UUID(schoolID),
			ID:       pgconv.UUID(id),
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock billing record for state transition"}
		}

		current, err := ToEntity(row)
		if err != nil {
			rlog.Error("stored billing record is invalid", "billing_record_id", id, "error", err)
			return &errs.Error{Code: errs.Internal, Message: "failed to load billing record"}
		}

		next, err := transition(current)
		if err != nil {
			return err
		}
		if next == nil {
			return &errs.Error{Code: errs.Internal, Message: "state transition returned no billing record"}
		}
		if next == current {
			result = current
			return nil
		}

		params, err := ToUpdateParams(next)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to encode billing record"}
		}
		updated, err := repo.BillingRecords.UpdateBillingRecord(ctx, params)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to persist billing record"}
		}

		result, err = ToEntity(updated)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to load billing record"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
