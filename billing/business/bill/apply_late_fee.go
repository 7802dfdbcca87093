package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"tuition.app/billing/domain/billingrecord"
)

// ApplyLateFee assesses the late fee on a single bill. Bills that need no
// taxable invoice never accrue one and fail with ErrLateFeeNotApplicable.
func (b *business) ApplyLateFee(ctx context.Context, schoolID, id uuid.UUID, appliedBy string) (*billingrecord.BillingRecord, error) {
	record, err := b.stateMachine.Transition(ctx, schoolID, id, func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
		if !current.AccruesLateFee() {
			return nil, fmt.Errorf("cannot apply late fee while bill status is %s: %w", current.BillStatus(), ErrLateFeeNotApplicable)
		}
		return current.ApplyLateFee(current.AmountAfterDiscounts(), appliedBy, b.now())
	})
	if err != nil {
		return nil, err
	}

	rlog.Info("late fee applied",
		"school_id", schoolID,
		"billing_record_id", id,
		"late_fee", record.LateFeeAmount().StringFixed(2),
		"applied_by", appliedBy)
	return record, nil
}

// lateFeeEligible reports whether a late fee may still be assessed on r,
// regardless of its due date.
func lateFeeEligible(r *billingrecord.BillingRecord) bool {
	return !r.IsLocked() && !r.IsPaid() && r.AccruesLateFee() && !r.HasLateFee()
}
