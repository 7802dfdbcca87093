package billing

import (
	"context"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
)

//encore:api public path=/v1/schools/:schoolID/billing-records/:id method=GET
func (s *Service) GetBillingRecord(ctx context.Context, schoolID, id string) (*BillingRecordResponse, error) {
	sid, rid, err := parseRecordPath(schoolID, id)
	if err != nil {
		return nil, err
	}

	record, err := s.business.GetBillingRecord(ctx, sid, rid)
	if err != nil {
		rlog.Error("failed to get billing record", "school_id", sid, "billing_record_id", rid, "error", err)
		return nil, toAPIError(err)
	}

	return &BillingRecordResponse{BillingRecord: toBillingRecord(record)}, nil
}

type ListBillingRecordsRequest struct {
	BillingMonth int   `query:"billing_month" validate:"min=1,max=12"`
	BillingYear  int   `query:"billing_year" validate:"min=2020,max=2100"`
	Limit        int32 `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset       int32 `query:"offset" validate:"min=0"`
}

func (r *ListBillingRecordsRequest) Validate() error {
	return validateStruct(r)
}

type ListBillingRecordsResponse struct {
	BillingRecords []BillingRecord `json:"billing_records"`
	Total          int64           `json:"total"`
	Limit          int32           `json:"limit"`
	Offset         int32           `json:"offset"`
}

const defaultPageSize = 20

//encore:api public path=/v1/schools/:schoolID/billing-records method=GET
func (s *Service) ListBillingRecords(ctx context.Context, schoolID string, req *ListBillingRecordsRequest) (*ListBillingRecordsResponse, error) {
	sid, err := parseID("school_id", schoolID)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	records, total, err := s.business.ListBillingRecords(ctx, bill.ListParams{
		SchoolID:     sid,
		BillingMonth: req.BillingMonth,
		BillingYear:  req.BillingYear,
		Limit:        limit,
		Offset:       req.Offset,
	})
	if err != nil {
		rlog.Error("failed to list billing records", "school_id", sid, "error", err)
		return nil, toAPIError(err)
	}

	out := make([]BillingRecord, 0, len(records))
	for _, r := range records {
		out = append(out, toBillingRecord(r))
	}
	return &ListBillingRecordsResponse{
		BillingRecords: out,
		Total:          total,
		Limit:          limit,
		Offset:         req.Offset,
	}, nil
}
