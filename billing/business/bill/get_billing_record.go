package bill

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tuition.app/billing/domain"
	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/pgconv"
)

func (b *business) GetBillingRecord(ctx context.Context, schoolID, id uuid.UUID) (*billingrecord.BillingRecord, error) {
	row, err := b.billingRecordRepo.GetBillingRecord(ctx, billingrecords.GetBillingRecordParams{
		SchoolID: pgconv.UUID(schoolID),
		ID:       pgconv.UUID(id),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get billing record"}
	}

	record, err := domain.ToEntity(row)
	if err != nil {
		rlog.Error("stored billing record is invalid", "billing_record_id", id, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to read billing record"}
	}
	return record, nil
}

// ListBillingRecords returns one page of a school's bills for a period and the
// period's total count.
func (b *business) ListBillingRecords(ctx context.Context, params ListParams) ([]*billingrecord.BillingRecord, int64, error) {
	if err := validate.Struct(params); err != nil {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	rows, err := b.billingRecordRepo.ListBillingRecordsPage(ctx, billingrecords.ListBillingRecordsPageParams{
		SchoolID:     pgconv.UUID(params.SchoolID),
		BillingMonth: int32(params.BillingMonth),
		BillingYear:  int32(params.BillingYear),
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list billing records"}
	}

	total, err := b.billingRecordRepo.CountBillingRecordsByPeriod(ctx, billingrecords.CountBillingRecordsByPeriodParams{
		SchoolID:     pgconv.UUID(params.SchoolID),
		BillingMonth: int32(params.BillingMonth),
		BillingYear:  int32(params.BillingYear),
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count billing records"}
	}

	records, err := domain.ToEntities(rows)
	if err != nil {
		rlog.Error("stored billing record is invalid", "school_id", params.SchoolID, "error", err)
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to read billing records"}
	}
	return records, total, nil
}
