package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tuition.app/billing/business/catalog"
	"tuition.app/billing/business/school"
	"tuition.app/billing/domain"
	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/model"
	"tuition.app/billing/repository/billingrecords"
)

type Business interface {
	GenerateBills(ctx context.Context, params GenerateParams) (*BatchResult, error)
	GetBillingRecord(ctx context.Context, schoolID, id uuid.UUID) (*billingrecord.BillingRecord, error)
	ListBillingRecords(ctx context.Context, params ListParams) ([]*billingrecord.BillingRecord, int64, error)

	MarkAsPaid(ctx context.Context, schoolID, id uuid.UUID, payment Payment) (*billingrecord.BillingRecord, error)
	RecordPartialPayment(ctx context.Context, schoolID, id uuid.UUID, payment Payment) (*billingrecord.BillingRecord, error)
	UpdateTaxableBillStatus(ctx context.Context, schoolID, id uuid.UUID, status model.BillStatus, updatedBy string) (*billingrecord.BillingRecord, error)
	UpdateBillingRecord(ctx context.Context, schoolID, id uuid.UUID, edit Edit) (*billingrecord.BillingRecord, error)

	ApplyLateFee(ctx context.Context, schoolID, id uuid.UUID, appliedBy string) (*billingrecord.BillingRecord, error)
	BulkApplyLateFee(ctx context.Context, params BulkLateFeeParams) (*BatchResult, error)

	ListDelinquentBillingRecords(ctx context.Context, asOf time.Time) ([]RecordRef, error)
	SweepDelinquentRecord(ctx context.Context, ref RecordRef, actor string, now time.Time) (SweepOutcome, error)
}

// business orchestrates billing record generation and transitions
type business struct {
	billingRecordRepo billingrecords.Querier
	catalog           catalog.Business
	school            school.Business
	stateMachine      domain.StateMachine
	now               func() time.Time
}

// NewBillBusiness creates the billing record business layer
func NewBillBusiness(
	billingRecordRepo billingrecords.Querier,
	catalogBusiness catalog.Business,
	schoolBusiness school.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		billingRecordRepo: billingRecordRepo,
		catalog:           catalogBusiness,
		school:            schoolBusiness,
		stateMachine:      stateMachine,
		now:               time.Now,
	}
}
