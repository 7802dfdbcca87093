package bill

import (
	"context"

	"github.com/google/uuid"

	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/model"
)

// UpdateTaxableBillStatus progresses the tax invoice status. It is the one
// edit a paid bill still accepts.
func (b *business) UpdateTaxableBillStatus(ctx context.Context, schoolID, id uuid.UUID, status model.BillStatus, updatedBy string) (*billingrecord.BillingRecord, error) {
	return b.stateMachine.Transition(ctx, schoolID, id, func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
		if current.BillStatus() == status {
			return current, nil
		}
		return current.UpdateTaxableBillStatus(status, updatedBy, b.now())
	})
}

func (b *business) UpdateBillingRecord(ctx context.Context, schoolID, id uuid.UUID, edit Edit) (*billingrecord.BillingRecord, error) {
	return b.stateMachine.Transition(ctx, schoolID, id, func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
		return current.Update(billingrecord.UpdateParams{
			EffectiveTuitionAmount: edit.EffectiveTuitionAmount,
			DiscountAdjustments:    edit.DiscountAdjustments,
			ExtraCharges:           edit.ExtraCharges,
			BillStatus:             edit.BillStatus,
			UpdatedBy:              edit.UpdatedBy,
			At:                     b.now(),
		})
	})
}
