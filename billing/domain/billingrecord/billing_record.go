// Package billingrecord holds the tuition bill of one student for one
// billing month. A BillingRecord is immutable: every transition returns a new
// value and leaves the receiver untouched.
package billingrecord

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tuition.app/billing/model"
)

const (
	MinBillingYear = 2020
	MaxBillingYear = 2100
)

var validate = validator.New()

// BillingRecord is one student's bill for one (month, year).
type BillingRecord struct {
	id           uuid.UUID
	schoolID     uuid.UUID
	studentID    uuid.UUID
	schoolYearID uuid.UUID
	billingMonth int
	billingYear  int

	tuitionType            model.TuitionTypeSnapshot
	effectiveTuitionAmount decimal.Decimal
	scholarshipAmount      decimal.Decimal
	discountAdjustments    []model.DiscountAdjustment
	extraCharges           []model.ExtraCharge
	lateFeeAmount          decimal.Decimal
	finalAmount            decimal.Decimal

	billStatus    model.BillStatus
	paymentStatus model.PaymentStatus
	paidAmount    decimal.Decimal
	paidAt        *time.Time
	lockedAt      *time.Time
	payment       model.PaymentDetails
	dueDate       time.Time

	audit     model.AuditMetadata
	createdAt time.Time
	updatedAt time.Time
}

// CreateParams are the inputs of a freshly issued bill.
type CreateParams struct {
	ID           uuid.UUID
	SchoolID     uuid.UUID `validate:"required"`
	StudentID    uuid.UUID `validate:"required"`
	SchoolYearID uuid.UUID `validate:"required"`
	BillingMonth int
	BillingYear  int
	DueDay       int `validate:"min=1,max=31"`

	TuitionType            model.TuitionTypeSnapshot
	EffectiveTuitionAmount decimal.Decimal
	ScholarshipAmount      decimal.Decimal
	DiscountAdjustments    []model.DiscountAdjustment
	ExtraCharges           []model.ExtraCharge
	BillStatus             model.BillStatus

	CreatedBy string `validate:"required"`
	Now       time.Time
}

// Create issues a new pending bill. The due date is DueDay of the billing
// month, clamped to the month's last day.
func Create(p CreateParams) (*BillingRecord, error) {
	if err := validatePeriod(p.BillingMonth, p.BillingYear); err != nil {
		return nil, err
	}
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, err.Error())
	}

	billStatus := p.BillStatus
	if billStatus == "" {
		billStatus = model.BillStatusNotRequired
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	r := &BillingRecord{
		id:                     id,
		schoolID:               p.SchoolID,
		studentID:              p.StudentID,
		schoolYearID:           p.SchoolYearID,
		billingMonth:           p.BillingMonth,
		billingYear:            p.BillingYear,
		tuitionType:            p.TuitionType,
		effectiveTuitionAmount: p.EffectiveTuitionAmount,
		scholarshipAmount:      p.ScholarshipAmount,
		discountAdjustments:    slices.Clone(p.DiscountAdjustments),
		extraCharges:           slices.Clone(p.ExtraCharges),
		lateFeeAmount:          decimal.Zero,
		billStatus:             billStatus,
		paymentStatus:          model.PaymentStatusPending,
		paidAmount:             decimal.Zero,
		dueDate:                DueDate(p.BillingYear, p.BillingMonth, p.DueDay),
		audit:                  model.AuditMetadata{CreatedBy: p.CreatedBy},
		createdAt:              now,
		updatedAt:              now,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.finalAmount = r.computeFinalAmount()

	return r, nil
}

// DueDate returns day dueDay of the billing month in UTC, or the month's last
// day when the month is shorter.
func DueDate(year, month, dueDay int) time.Time {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	return time.Date(year, time.Month(month), dueDay, 0, 0, 0, 0, time.UTC)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("billing month %d out of range 1-12: %w", month, ErrInvalidBillingPeriod)
	}
	if year < MinBillingYear || year > MaxBillingYear {
		return fmt.Errorf("billing year %d out of range %d-%d: %w", year, MinBillingYear, MaxBillingYear, ErrInvalidBillingPeriod)
	}
	return nil
}

// validate checks every monetary input and the derived amount after discounts.
func (r *BillingRecord) validate() error {
	if err := r.tuitionType.Validate(); err != nil {
		return err
	}
	if !r.billStatus.IsValid() {
		return fmt.Errorf("%q: %w", r.billStatus, ErrInvalidBillStatus)
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"effective tuition amount", r.effectiveTuitionAmount},
		{"scholarship amount", r.scholarshipAmount},
		{"late fee amount", r.lateFeeAmount},
		{"paid amount", r.paidAmount},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s %s: %w", a.name, a.value, ErrNegativeAmount)
		}
	}
	for _, adj := range r.discountAdjustments {
		if err := adj.Validate(); err != nil {
			return err
		}
	}
	for _, charge := range r.extraCharges {
		if err := charge.Validate(); err != nil {
			return err
		}
	}
	if after := r.AmountAfterDiscounts(); after.IsNegative() {
		return fmt.Errorf("amount after discounts %s: %w", after, ErrNegativeAmount)
	}
	return nil
}

// discountBase is what percentage discounts are taken from.
func (r *BillingRecord) discountBase() decimal.Decimal {
	return r.effectiveTuitionAmount.Sub(r.scholarshipAmount)
}

// DiscountAmount sums every discount adjustment.
func (r *BillingRecord) DiscountAmount() decimal.Decimal {
	base := r.discountBase()
	total := decimal.Zero
	for _, adj := range r.discountAdjustments {
		total = total.Add(adj.Amount(base))
	}
	return total
}

// ExtraAmount sums every extra charge.
func (r *BillingRecord) ExtraAmount() decimal.Decimal {
	total := decimal.Zero
	for _, charge := range r.extraCharges {
		total = total.Add(charge.Amount)
	}
	return total
}

func (r *BillingRecord) AmountAfterDiscounts() decimal.Decimal {
	return r.discountBase().Sub(r.DiscountAmount())
}

func (r *BillingRecord) computeFinalAmount() decimal.Decimal {
	return r.AmountAfterDiscounts().Add(r.ExtraAmount()).Add(r.lateFeeAmount)
}

// clone copies r deeply enough that mutating the copy never leaks into r.
func (r *BillingRecord) clone() *BillingRecord {
	c := *r
	c.discountAdjustments = slices.Clone(r.discountAdjustments)
	c.extraCharges = slices.Clone(r.extraCharges)
	c.paidAt = cloneTime(r.paidAt)
	c.lockedAt = cloneTime(r.lockedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (r *BillingRecord) ID() uuid.UUID                          { return r.id }
func (r *BillingRecord) SchoolID() uuid.UUID                    { return r.schoolID }
func (r *BillingRecord) StudentID() uuid.UUID                   { return r.studentID }
func (r *BillingRecord) BillingMonth() int                      { return r.billingMonth }
func (r *BillingRecord) BillingYear() int                       { return r.billingYear }
func (r *BillingRecord) TuitionType() model.TuitionTypeSnapshot { return r.tuitionType }
func (r *BillingRecord) ScholarshipAmount() decimal.Decimal     { return r.scholarshipAmount }
func (r *BillingRecord) LateFeeAmount() decimal.Decimal         { return r.lateFeeAmount }
func (r *BillingRecord) FinalAmount() decimal.Decimal           { return r.finalAmount }
func (r *BillingRecord) PaidAmount() decimal.Decimal            { return r.paidAmount }
func (r *BillingRecord) PaymentStatus() model.PaymentStatus     { return r.paymentStatus }
func (r *BillingRecord) BillStatus() model.BillStatus           { return r.billStatus }
func (r *BillingRecord) DueDate() time.Time                     { return r.dueDate }
func (r *BillingRecord) Audit() model.AuditMetadata             { return r.audit }

func (r *BillingRecord) IsPaid() bool   { return r.paymentStatus == model.PaymentStatusPaid }
func (r *BillingRecord) IsLocked() bool { return r.lockedAt != nil }
func (r *BillingRecord) CanEdit() bool  { return !r.IsLocked() }

// HasLateFee reports whether a late fee has already been assessed.
func (r *BillingRecord) HasLateFee() bool { return r.lateFeeAmount.IsPositive() }

// AccruesLateFee reports whether the bill is subject to late fees at all.
// Bills that need no taxable invoice never accrue one.
func (r *BillingRecord) AccruesLateFee() bool {
	return r.billStatus != model.BillStatusNotRequired
}

// pastDue reports whether the whole due day has elapsed at now.
func (r *BillingRecord) pastDue(now time.Time) bool {
	return !now.Before(r.dueDate.AddDate(0, 0, 1))
}

// IsOverdue is true for an unpaid bill whose due day has passed.
func (r *BillingRecord) IsOverdue(now time.Time) bool {
	return !r.IsPaid() && r.pastDue(now)
}
