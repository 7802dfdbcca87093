package bill

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tuition.app/billing/model"
)

var validate = validator.New()

// GenerateParams selects the students and period to issue bills for.
// An empty StudentIDs bills every active student of the school.
type GenerateParams struct {
	SchoolID     uuid.UUID `validate:"required"`
	SchoolYearID uuid.UUID `validate:"required"`
	BillingMonth int       `validate:"min=1,max=12"`
	BillingYear  int       `validate:"min=2020,max=2100"`
	StudentIDs   []uuid.UUID
	CreatedBy    string `validate:"required"`
}

// BulkLateFeeParams selects bills for late fee assessment. Without IDs every
// bill of the school that is past due as of AsOf is considered.
type BulkLateFeeParams struct {
	SchoolID  uuid.UUID `validate:"required"`
	IDs       []uuid.UUID
	AsOf      time.Time
	AppliedBy string `validate:"required"`
}

type ListParams struct {
	SchoolID     uuid.UUID `validate:"required"`
	BillingMonth int       `validate:"min=1,max=12"`
	BillingYear  int       `validate:"min=2020,max=2100"`
	Limit        int32     `validate:"min=1,max=100"`
	Offset       int32     `validate:"min=0"`
}

type Payment struct {
	Amount  decimal.Decimal
	Details model.PaymentDetails
	PaidBy  string
}

// Edit is a general billing record edit. Nil fields are left unchanged.
type Edit struct {
	EffectiveTuitionAmount *decimal.Decimal
	DiscountAdjustments    []model.DiscountAdjustment
	ExtraCharges           []model.ExtraCharge
	BillStatus             *model.BillStatus
	UpdatedBy              string
}

// ItemFailure names one item a batch could not process.
type ItemFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// BatchResult accumulates the outcome of a bulk operation.
type BatchResult struct {
	Processed int           `json:"processed"`
	Succeeded int           `json:"succeeded"`
	Skipped   int           `json:"skipped"`
	Failures  []ItemFailure `json:"failures"`
}

func (r *BatchResult) fail(id uuid.UUID, err error) {
	r.Failures = append(r.Failures, ItemFailure{ID: id, Error: err.Error()})
}

// RecordRef identifies a billing record across schools.
type RecordRef struct {
	ID       uuid.UUID
	SchoolID uuid.UUID
}

// SweepOutcome reports what the delinquency sweep changed on one record.
type SweepOutcome struct {
	Delayed        bool
	LateFeeApplied bool
}

func (o SweepOutcome) Changed() bool {
	return o.Delayed || o.LateFeeApplied
}
