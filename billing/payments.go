package billing

import (
	"context"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/model"
)

type PaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Amount           string `json:"amount" validate:"omitempty,numeric"`
	PaymentMethod    string `json:"payment_method" validate:"max=50"`
	PaymentGateway   string `json:"payment_gateway" validate:"max=50"`
	PaymentReference string `json:"payment_reference" validate:"max=255"`
	PaidBy           string `json:"paid_by" validate:"required"`
}

func (r *PaymentRequest) Validate() error {
	return validateStruct(r)
}

func (r *PaymentRequest) payment() (bill.Payment, error) {
	p := bill.Payment{
		Details: model.PaymentDetails{
			Method:    r.PaymentMethod,
			Gateway:   r.PaymentGateway,
			Reference: r.PaymentReference,
		},
		PaidBy: r.PaidBy,
	}
	if r.Amount != "" {
		amount, err := parseAmount("amount", r.Amount)
		if err != nil {
			return bill.Payment{}, err
		}
		p.Amount = amount
	}
	return p, nil
}

// PayBillingRecord settles the whole outstanding amount and locks the record.
//
//encore:api public path=/v1/schools/:schoolID/billing-records/:id/payments method=POST tag:idempotency
func (s *Service) PayBillingRecord(ctx context.Context, schoolID, id string, req *PaymentRequest) (*BillingRecordResponse, error) {
	sid, rid, err := parseRecordPath(schoolID, id)
	if err != nil {
		return nil, err
	}
	payment, err := req.payment()
	if err != nil {
		return nil, err
	}

	record, err := s.business.MarkAsPaid(ctx, sid, rid, payment)
	if err != nil {
		rlog.Error("failed to mark billing record as paid", "school_id", sid, "billing_record_id", rid, "error", err)
		return nil, toAPIError(err)
	}

	return &BillingRecordResponse{BillingRecord: toBillingRecord(record)}, nil
}

// RecordPartialPayment adds an installment. An installment that covers the
// rest of the bill settles it.
//
//encore:api public path=/v1/schools/:schoolID/billing-records/:id/partial-payments method=POST tag:idempotency
func (s *Service) RecordPartialPayment(ctx context.Context, schoolID, id string, req *PaymentRequest) (*BillingRecordResponse, error) {
	sid, rid, err := parseRecordPath(schoolID, id)
	if err != nil {
		return nil, err
	}
	payment, err := req.payment()
	if err != nil {
		return nil, err
	}

	record, err := s.business.RecordPartialPayment(ctx, sid, rid, payment)
	if err != nil {
		rlog.Error("failed to record partial payment", "school_id", sid, "billing_record_id", rid, "error", err)
		return nil, toAPIError(err)
	}

	return &BillingRecordResponse{BillingRecord: toBillingRecord(record)}, nil
}
