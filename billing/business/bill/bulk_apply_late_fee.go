package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tuition.app/billing/domain"
	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/pgconv"
)

// BulkApplyLateFee ages and fines every eligible overdue bill of a school.
// Ineligible bills are counted as skipped. A bill that fails is logged and
// reported in Failures; the remaining bills are still processed.
func (b *business) BulkApplyLateFee(ctx context.Context, params BulkLateFeeParams) (*BatchResult, error) {
	if err := validate.Struct(params); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	asOf := params.AsOf
	if asOf.IsZero() {
		asOf = b.now()
	}

	result := &BatchResult{}
	candidates, err := b.lateFeeCandidates(ctx, params, asOf, result)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if !candidate.IsOverdue(asOf) {
			result.Skipped++
			continue
		}

		applied := false
		_, err := b.stateMachine.Transition(ctx, params.SchoolID, candidate.ID(), func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
			if !lateFeeEligible(current) || !current.IsOverdue(asOf) {
				return current, nil
			}
			delayed := current.MarkAsDelayed(asOf)
			next, err := delayed.ApplyLateFee(delayed.AmountAfterDiscounts(), params.AppliedBy, b.now())
			if err != nil {
				return nil, err
			}
			if !next.HasLateFee() {
				return delayed, nil
			}
			applied = true
			return next, nil
		})
		if err != nil {
			rlog.Error("failed to apply late fee",
				"school_id", params.SchoolID,
				"billing_record_id", candidate.ID(),
				"error", err)
			result.fail(candidate.ID(), err)
			continue
		}

		if applied {
			result.Succeeded++
		} else {
			result.Skipped++
		}
	}

	rlog.Info("bulk late fee finished",
		"school_id", params.SchoolID,
		"processed", result.Processed,
		"applied", result.Succeeded,
		"skipped", result.Skipped,
		"failed", len(result.Failures))

	return result, nil
}

// lateFeeCandidates loads the bills to consider and sets result.Processed.
// Explicit ids are filtered to eligible bills; the rest count as skipped.
func (b *business) lateFeeCandidates(ctx context.Context, params BulkLateFeeParams, asOf time.Time, result *BatchResult) ([]*billingrecord.BillingRecord, error) {
	var rows []billingrecords.BillingRecord
	var err error

	explicit := len(params.IDs) > 0
	if explicit {
		ids := uniqueIDs(params.IDs)
		rows, err = b.billingRecordRepo.ListBillingRecordsByIDs(ctx, billingrecords.ListBillingRecordsByIDsParams{
			SchoolID: pgconv.UUID(params.SchoolID),
			Ids:      pgconv.UUIDs(ids),
		})
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list billing records"}
		}

		found := make(map[uuid.UUID]struct{}, len(rows))
		for _, row := range rows {
			found[pgconv.FromUUID(row.ID)] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				result.Processed++
				result.fail(id, ErrNotFound)
			}
		}
	} else {
		rows, err = b.billingRecordRepo.ListBillsRequiringLateFee(ctx, billingrecords.ListBillsRequiringLateFeeParams{
			SchoolID: pgconv.UUID(params.SchoolID),
			DueDate:  pgconv.Date(asOf),
		})
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list bills requiring late fee"}
		}
	}

	candidates := make([]*billingrecord.BillingRecord, 0, len(rows))
	for _, row := range rows {
		result.Processed++

		record, err := domain.ToEntity(row)
		if err != nil {
			id := pgconv.FromUUID(row.ID)
			rlog.Error("stored billing record is invalid", "billing_record_id", id, "error", err)
			result.fail(id, err)
			continue
		}
		if explicit && !lateFeeEligible(record) {
			result.Skipped++
			continue
		}
		candidates = append(candidates, record)
	}
	return candidates, nil
}
