package bill

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/repository/pgconv"
)

// ListDelinquentBillingRecords returns every unpaid, unlocked bill of an
// active school whose due date is before asOf.
func (b *business) ListDelinquentBillingRecords(ctx context.Context, asOf time.Time) ([]RecordRef, error) {
	rows, err := b.billingRecordRepo.ListDelinquentBillingRecords(ctx, pgconv.Date(asOf))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list delinquent billing records"}
	}

	refs := make([]RecordRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, RecordRef{
			ID:       pgconv.FromUUID(row.ID),
			SchoolID: pgconv.FromUUID(row.SchoolID),
		})
	}
	return refs, nil
}

// SweepDelinquentRecord marks an overdue bill as delayed and assesses its late
// fee when the bill accrues one and has none yet. Nothing is written when
// neither the payment status nor the fee changes.
func (b *business) SweepDelinquentRecord(ctx context.Context, ref RecordRef, actor string, now time.Time) (SweepOutcome, error) {
	var outcome SweepOutcome

	_, err := b.stateMachine.Transition(ctx, ref.SchoolID, ref.ID, func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
		outcome = SweepOutcome{}
		if current.IsLocked() || !current.IsOverdue(now) {
			return current, nil
		}

		next := current.MarkAsDelayed(now)
		outcome.Delayed = next != current

		if next.AccruesLateFee() && !next.HasLateFee() {
			withFee, err := next.ApplyLateFee(next.AmountAfterDiscounts(), actor, now)
			if err != nil {
				return nil, err
			}
			if withFee.HasLateFee() {
				next = withFee
				outcome.LateFeeApplied = true
			}
		}
		return next, nil
	})
	if err != nil {
		return SweepOutcome{}, err
	}
	return outcome, nil
}
