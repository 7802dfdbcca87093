package billing

import (
	"context"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
)

type GenerateBillsRequest struct {
	SchoolYearID string   `json:"school_year_id" validate:"required,uuid"`
	BillingMonth int      `json:"billing_month" validate:"min=1,max=12"`
	BillingYear  int      `json:"billing_year" validate:"min=2020,max=2100"`
	StudentIDs   []string `json:"student_ids" validate:"omitempty,dive,uuid"`
	CreatedBy    string   `json:"created_by" validate:"required"`
}

func (r *GenerateBillsRequest) Validate() error {
	return validateStruct(r)
}

// GenerateBills issues one billing record per student for the period.
// Students that already have a record for the period are skipped.
//
//encore:api public path=/v1/schools/:schoolID/billing-runs method=POST
func (s *Service) GenerateBills(ctx context.Context, schoolID string, req *GenerateBillsRequest) (*BatchResponse, error) {
	sid, err := parseID("school_id", schoolID)
	if err != nil {
		return nil, err
	}
	yearID, err := parseID("school_year_id", req.SchoolYearID)
	if err != nil {
		return nil, err
	}
	studentIDs, err := parseIDs("student_ids", req.StudentIDs)
	if err != nil {
		return nil, err
	}

	result, err := s.business.GenerateBills(ctx, bill.GenerateParams{
		SchoolID:     sid,
		SchoolYearID: yearID,
		BillingMonth: req.BillingMonth,
		BillingYear:  req.BillingYear,
		StudentIDs:   studentIDs,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		rlog.Error("failed to generate bills", "school_id", sid, "billing_month", req.BillingMonth, "billing_year", req.BillingYear, "error", err)
		return nil, toAPIError(err)
	}

	return toBatchResponse(result), nil
}
