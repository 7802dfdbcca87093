package bill

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"tuition.app/billing/domain/billingrecord"
)

// MarkAsPaid settles a bill in full and locks it.
func (b *business) MarkAsPaid(ctx context.Context, schoolID, id uuid.UUID, payment Payment) (*billingrecord.BillingRecord, error) {
	record, err := b.stateMachine.Transition(ctx, schoolID, id, func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
		return current.MarkAsPaid(b.paymentParams(payment))
	})
	if err != nil {
		return nil, err
	}

	rlog.Info("billing record paid",
		"school_id", schoolID,
		"billing_record_id", id,
		"amount", record.PaidAmount().StringFixed(2),
		"gateway", payment.Details.Gateway)
	return record, nil
}

// RecordPartialPayment adds a payment smaller than the outstanding amount.
func (b *business) RecordPartialPayment(ctx context.Context, schoolID, id uuid.UUID, payment Payment) (*billingrecord.BillingRecord, error) {
	record, err := b.stateMachine.Transition(ctx, schoolID, id, func(current *billingrecord.BillingRecord) (*billingrecord.BillingRecord, error) {
		return current.RecordPartialPayment(b.paymentParams(payment))
	})
	if err != nil {
		return nil, err
	}

	rlog.Info("partial payment recorded",
		"school_id", schoolID,
		"billing_record_id", id,
		"amount", payment.Amount.StringFixed(2),
		"payment_status", record.PaymentStatus())
	return record, nil
}

func (b *business) paymentParams(payment Payment) billingrecord.PaymentParams {
	return billingrecord.PaymentParams{
		Amount:  payment.Amount,
		Details: payment.Details,
		PaidBy:  payment.PaidBy,
		At:      b.now(),
	}
}
