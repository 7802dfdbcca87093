package billing

import (
	"context"
	"time"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
)

type ApplyLateFeeRequest struct {
	AppliedBy string `json:"applied_by" validate:"required"`
}

func (r *ApplyLateFeeRequest) Validate() error {
	return validateStruct(r)
}

//encore:api public path=/v1/schools/:schoolID/billing-records/:id/late-fee method=POST
func (s *Service) ApplyLateFee(ctx context.Context, schoolID, id string, req *ApplyLateFeeRequest) (*BillingRecordResponse, error) {
	sid, rid, err := parseRecordPath(schoolID, id)
	if err != nil {
		return nil, err
	}

	record, err := s.business.ApplyLateFee(ctx, sid, rid, req.AppliedBy)
	if err != nil {
		rlog.Error("failed to apply late fee", "school_id", sid, "billing_record_id", rid, "error", err)
		return nil, toAPIError(err)
	}

	return &BillingRecordResponse{BillingRecord: toBillingRecord(record)}, nil
}

type BulkApplyLateFeeRequest struct {
	// BillingRecordIDs limits the run to these records. Empty means every
	// overdue bill of the school.
	BillingRecordIDs []string  `json:"billing_record_ids" validate:"omitempty,max=500,dive,uuid"`
	AsOf             time.Time `json:"as_of"`
	AppliedBy        string    `json:"applied_by" validate:"required"`
}

func (r *BulkApplyLateFeeRequest) Validate() error {
	return validateStruct(r)
}

//encore:api public path=/v1/schools/:schoolID/late-fees method=POST
func (s *Service) BulkApplyLateFee(ctx context.Context, schoolID string, req *BulkApplyLateFeeRequest) (*BatchResponse, error) {
	sid, err := parseID("school_id", schoolID)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs("billing_record_ids", req.BillingRecordIDs)
	if err != nil {
		return nil, err
	}

	result, err := s.business.BulkApplyLateFee(ctx, bill.BulkLateFeeParams{
		SchoolID:  sid,
		IDs:       ids,
		AsOf:      req.AsOf,
		AppliedBy: req.AppliedBy,
	})
	if err != nil {
		rlog.Error("failed to apply late fees", "school_id", sid, "error", err)
		return nil, toAPIError(err)
	}

	return toBatchResponse(result), nil
}
