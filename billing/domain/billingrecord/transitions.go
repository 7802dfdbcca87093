package billingrecord

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tuition.app/billing/model"
)

// PaymentParams describe a full or partial payment.
type PaymentParams struct {
	Amount  decimal.Decimal
	Details model.PaymentDetails
	PaidBy  string
	At      time.Time
}

// MarkAsPaid settles the bill in full and locks it.
func (r *BillingRecord) MarkAsPaid(p PaymentParams) (*BillingRecord, error) {
	if r.IsPaid() {
		return nil, fmt.Errorf("cannot mark as paid while already paid: %w", ErrAlreadyPaid)
	}
	if r.IsLocked() {
		return nil, fmt.Errorf("cannot mark as paid while locked: %w", ErrRecordLocked)
	}

	at := p.At
	c := r.clone()
	c.paymentStatus = model.PaymentStatusPaid
	c.paidAmount = r.finalAmount
	c.paidAt = &at
	c.lockedAt = &at
	c.payment = p.Details
	stamp(&c.audit.PaidBy, p.PaidBy)
	stamp(&c.audit.StatusChangedBy, p.PaidBy)
	stamp(&c.audit.UpdatedBy, p.PaidBy)
	c.updatedAt = at

	return c, nil
}

// RecordPartialPayment accumulates a payment smaller than the final amount.
// A payment that settles the remaining balance promotes the bill to paid.
// Full settlement in a single payment must go through MarkAsPaid.
func (r *BillingRecord) RecordPartialPayment(p PaymentParams) (*BillingRecord, error) {
	if r.IsPaid() {
		return nil, fmt.Errorf("cannot record partial payment while already paid: %w", ErrAlreadyPaid)
	}
	if r.IsLocked() {
		return nil, fmt.Errorf("cannot record partial payment while locked: %w", ErrRecordLocked)
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("cannot record partial payment of %s: %w", p.Amount, ErrInvalidPaymentAmount)
	}
	if p.Amount.GreaterThanOrEqual(r.finalAmount) {
		return nil, fmt.Errorf("cannot record partial payment of %s while final amount is %s, mark as paid instead: %w",
			p.Amount, r.finalAmount, ErrInvalidPaymentAmount)
	}

	total := r.paidAmount.Add(p.Amount)
	if total.GreaterThanOrEqual(r.finalAmount) {
		return r.MarkAsPaid(p)
	}

	c := r.clone()
	if c.paymentStatus != model.PaymentStatusPartialPayment {
		stamp(&c.audit.StatusChangedBy, p.PaidBy)
	}
	c.paymentStatus = model.PaymentStatusPartialPayment
	c.paidAmount = total
	c.payment = p.Details
	stamp(&c.audit.PaidBy, p.PaidBy)
	stamp(&c.audit.UpdatedBy, p.PaidBy)
	c.updatedAt = p.At

	return c, nil
}

// MarkAsDelayed ages an overdue bill. It returns the receiver itself when
// there is nothing to do, so schedulers can call it on every pass.
func (r *BillingRecord) MarkAsDelayed(now time.Time) *BillingRecord {
	if r.IsPaid() || r.paymentStatus == model.PaymentStatusDelayed || r.IsLocked() || !r.pastDue(now) {
		return r
	}

	c := r.clone()
	c.paymentStatus = model.PaymentStatusDelayed
	c.updatedAt = now
	return c
}

// ApplyLateFee assesses the tuition type's late fee on amountAfterDiscounts.
// Payment status is left alone; callers age the bill with MarkAsDelayed first.
func (r *BillingRecord) ApplyLateFee(amountAfterDiscounts decimal.Decimal, appliedBy string, at time.Time) (*BillingRecord, error) {
	if r.HasLateFee() {
		return nil, fmt.Errorf("cannot apply late fee while one is already applied: %w", ErrLateFeeAlreadyApplied)
	}
	if r.IsLocked() {
		return nil, fmt.Errorf("cannot apply late fee while locked: %w", ErrRecordLocked)
	}
	if amountAfterDiscounts.IsNegative() {
		return nil, fmt.Errorf("cannot apply late fee on %s: %w", amountAfterDiscounts, ErrNegativeAmount)
	}

	c := r.clone()
	c.lateFeeAmount = r.tuitionType.LateFee(amountAfterDiscounts)
	c.finalAmount = c.computeFinalAmount()
	stamp(&c.audit.LateFeeAppliedBy, appliedBy)
	stamp(&c.audit.UpdatedBy, appliedBy)
	c.updatedAt = at

	return c, nil
}

// UpdateTaxableBillStatus moves the tax-invoice status. A paid bill is the
// only locked bill whose tax status may still change.
func (r *BillingRecord) UpdateTaxableBillStatus(status model.BillStatus, updatedBy string, at time.Time) (*BillingRecord, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("cannot update bill status to %q: %w", status, ErrInvalidBillStatus)
	}
	if r.IsLocked() && !r.IsPaid() {
		return nil, fmt.Errorf("cannot update bill status while locked: %w", ErrRecordLocked)
	}

	c := r.clone()
	c.billStatus = status
	stamp(&c.audit.StatusChangedBy, updatedBy)
	stamp(&c.audit.UpdatedBy, updatedBy)
	c.updatedAt = at

	return c, nil
}

// UpdateParams is a general edit. Nil fields are left unchanged; an empty
// non-nil slice clears the list.
type UpdateParams struct {
	EffectiveTuitionAmount *decimal.Decimal
	DiscountAdjustments    []model.DiscountAdjustment
	ExtraCharges           []model.ExtraCharge
	BillStatus             *model.BillStatus
	UpdatedBy              string
	At                     time.Time
}

// Update applies a general edit. Late fee and scholarship amounts are kept.
func (r *BillingRecord) Update(p UpdateParams) (*BillingRecord, error) {
	if r.IsLocked() {
		return nil, fmt.Errorf("cannot update billing record while locked: %w", ErrRecordLocked)
	}

	c := r.clone()
	if p.EffectiveTuitionAmount != nil {
		c.effectiveTuitionAmount = *p.EffectiveTuitionAmount
	}
	if p.DiscountAdjustments != nil {
		c.discountAdjustments = append([]model.DiscountAdjustment{}, p.DiscountAdjustments...)
	}
	if p.ExtraCharges != nil {
		c.extraCharges = append([]model.ExtraCharge{}, p.ExtraCharges...)
	}
	if p.BillStatus != nil {
		c.billStatus = *p.BillStatus
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	c.finalAmount = c.computeFinalAmount()
	if c.paidAmount.IsPositive() && !c.finalAmount.GreaterThan(c.paidAmount) {
		return nil, fmt.Errorf("cannot update billing record while paid amount %s covers final amount %s: %w",
			c.paidAmount, c.finalAmount, ErrInvalidPaymentAmount)
	}
	stamp(&c.audit.UpdatedBy, p.UpdatedBy)
	c.updatedAt = p.At

	return c, nil
}

// stamp records actor in an audit field. An empty actor keeps the previous one.
func stamp(field *string, actor string) {
	if actor != "" {
		*field = actor
	}
}
