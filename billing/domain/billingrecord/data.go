package billingrecord

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tuition.app/billing/model"
)

// Data is the flat, exported view of a BillingRecord used for persistence and
// API responses. Changing a Data value never changes the record it came from.
type Data struct {
	ID           uuid.UUID `json:"id"`
	SchoolID     uuid.UUID `json:"school_id"`
	StudentID    uuid.UUID `json:"student_id"`
	SchoolYearID uuid.UUID `json:"school_year_id"`
	BillingMonth int       `json:"billing_month"`
	BillingYear  int       `json:"billing_year"`

	TuitionType            model.TuitionTypeSnapshot  `json:"tuition_type_snapshot"`
	EffectiveTuitionAmount decimal.Decimal            `json:"effective_tuition_amount"`
	ScholarshipAmount      decimal.Decimal            `json:"scholarship_amount"`
	DiscountAdjustments    []model.DiscountAdjustment `json:"discount_adjustments"`
	ExtraCharges           []model.ExtraCharge        `json:"extra_charges"`
	LateFeeAmount          decimal.Decimal            `json:"late_fee_amount"`
	FinalAmount            decimal.Decimal            `json:"final_amount"`

	BillStatus    model.BillStatus     `json:"bill_status"`
	PaymentStatus model.PaymentStatus  `json:"payment_status"`
	PaidAmount    decimal.Decimal      `json:"paid_amount"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
	LockedAt      *time.Time           `json:"locked_at,omitempty"`
	Payment       model.PaymentDetails `json:"payment"`
	DueDate       time.Time            `json:"due_date"`

	Audit     model.AuditMetadata `json:"audit_metadata"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Data returns a detached copy of the record's state.
func (r *BillingRecord) Data() Data {
	return Data{
		ID:                     r.id,
		SchoolID:               r.schoolID,
		StudentID:              r.studentID,
		SchoolYearID:           r.schoolYearID,
		BillingMonth:           r.billingMonth,
		BillingYear:            r.billingYear,
		TuitionType:            r.tuitionType,
		EffectiveTuitionAmount: r.effectiveTuitionAmount,
		ScholarshipAmount:      r.scholarshipAmount,
		DiscountAdjustments:    slices.Clone(r.discountAdjustments),
		ExtraCharges:           slices.Clone(r.extraCharges),
		LateFeeAmount:          r.lateFeeAmount,
		FinalAmount:            r.finalAmount,
		BillStatus:             r.billStatus,
		PaymentStatus:          r.paymentStatus,
		PaidAmount:             r.paidAmount,
		PaidAt:                 cloneTime(r.paidAt),
		LockedAt:               cloneTime(r.lockedAt),
		Payment:                r.payment,
		DueDate:                r.dueDate,
		Audit:                  r.audit,
		CreatedAt:              r.createdAt,
		UpdatedAt:              r.updatedAt,
	}
}

// Restore rebuilds a stored record. The stored final amount is ignored and
// recomputed from its inputs.
func Restore(d Data) (*BillingRecord, error) {
	if err := validatePeriod(d.BillingMonth, d.BillingYear); err != nil {
		return nil, err
	}
	if d.ID == uuid.Nil || d.SchoolID == uuid.Nil || d.StudentID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing identity", ErrInvalidRecord)
	}
	if !d.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidRecord, d.PaymentStatus)
	}

	r := &BillingRecord{
		id:                     d.ID,
		schoolID:               d.SchoolID,
		studentID:              d.StudentID,
		schoolYearID:           d.SchoolYearID,
		billingMonth:           d.BillingMonth,
		billingYear:            d.BillingYear,
		tuitionType:            d.TuitionType,
		effectiveTuitionAmount: d.EffectiveTuitionAmount,
		scholarshipAmount:      d.ScholarshipAmount,
		discountAdjustments:    slices.Clone(d.DiscountAdjustments),
		extraCharges:           slices.Clone(d.ExtraCharges),
		lateFeeAmount:          d.LateFeeAmount,
		billStatus:             d.BillStatus,
		paymentStatus:          d.PaymentStatus,
		paidAmount:             d.PaidAmount,
		paidAt:                 cloneTime(d.PaidAt),
		lockedAt:               cloneTime(d.LockedAt),
		payment:                d.Payment,
		dueDate:                d.DueDate,
		audit:                  d.Audit,
		createdAt:              d.CreatedAt,
		updatedAt:              d.UpdatedAt,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.finalAmount = r.computeFinalAmount()

	return r, nil
}
