package billing

import (
	"context"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/model"
)

type UpdateBillStatusRequest struct {
	BillStatus string `json:"bill_status" validate:"required,oneof=not_required required sent"`
	UpdatedBy  string `json:"updated_by" validate:"required"`
}

func (r *UpdateBillStatusRequest) Validate() error {
	return validateStruct(r)
}

// UpdateBillStatus moves the taxable invoice status. Paid records accept it
// even though they are locked.
//
//encore:api public path=/v1/schools/:schoolID/billing-records/:id/bill-status method=PUT
func (s *Service) UpdateBillStatus(ctx context.Context, schoolID, id string, req *UpdateBillStatusRequest) (*BillingRecordResponse, error) {
	sid, rid, err := parseRecordPath(schoolID, id)
	if err != nil {
		return nil, err
	}

	record, err := s.business.UpdateTaxableBillStatus(ctx, sid, rid, model.BillStatus(req.BillStatus), req.UpdatedBy)
	if err != nil {
		rlog.Error("failed to update bill status", "school_id", sid, "billing_record_id", rid, "error", err)
		return nil, toAPIError(err)
	}

	return &BillingRecordResponse{BillingRecord: toBillingRecord(record)}, nil
}

// UpdateBillingRecordRequest edits an unlocked record. Omitted fields keep
// their value; an empty list clears the adjustments or charges.
type UpdateBillingRecordRequest struct {
	EffectiveTuitionAmount *string              `json:"effective_tuition_amount,omitempty" validate:"omitempty,numeric"`
	DiscountAdjustments    []DiscountAdjustment `json:"discount_adjustments,omitempty" validate:"omitempty,dive"`
	ExtraCharges           []ExtraCharge        `json:"extra_charges,omitempty" validate:"omitempty,dive"`
	BillStatus             *string              `json:"bill_status,omitempty" validate:"omitempty,oneof=not_required required sent"`
	UpdatedBy              string               `json:"updated_by" validate:"required"`
}

func (r *UpdateBillingRecordRequest) Validate() error {
	return validateStruct(r)
}

func (r *UpdateBillingRecordRequest) edit() (bill.Edit, error) {
	edit := bill.Edit{UpdatedBy: r.UpdatedBy}
	if r.EffectiveTuitionAmount != nil {
		amount, err := parseAmount("effective_tuition_amount", *r.EffectiveTuitionAmount)
		if err != nil {
			return bill.Edit{}, err
		}
		edit.EffectiveTuitionAmount = &amount
	}
	if r.DiscountAdjustments != nil {
		adjustments, err := toDiscountAdjustments(r.DiscountAdjustments)
		if err != nil {
			return bill.Edit{}, err
		}
		edit.DiscountAdjustments = adjustments
	}
	if r.ExtraCharges != nil {
		charges, err := toExtraCharges(r.ExtraCharges)
		if err != nil {
			return bill.Edit{}, err
		}
		edit.ExtraCharges = charges
	}
	if r.BillStatus != nil {
		status := model.BillStatus(*r.BillStatus)
		edit.BillStatus = &status
	}
	return edit, nil
}

//encore:api public path=/v1/schools/:schoolID/billing-records/:id method=PATCH
func (s *Service) UpdateBillingRecord(ctx context.Context, schoolID, id string, req *UpdateBillingRecordRequest) (*BillingRecordResponse, error) {
	sid, rid, err := parseRecordPath(schoolID, id)
	if err != nil {
		return nil, err
	}
	edit, err := req.edit()
	if err != nil {
		return nil, err
	}

	record, err := s.business.UpdateBillingRecord(ctx, sid, rid, edit)
	if err != nil {
		rlog.Error("failed to update billing record", "school_id", sid, "billing_record_id", rid, "error", err)
		return nil, toAPIError(err)
	}

	return &BillingRecordResponse{BillingRecord: toBillingRecord(record)}, nil
}
