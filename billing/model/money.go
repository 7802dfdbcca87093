package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidDiscount = errors.New("invalid discount adjustment")
	ErrInvalidLateFee  = errors.New("invalid late fee definition")
)

var hundred = decimal.NewFromInt(100)

// Percent returns value% of base, rounded to cents.
func Percent(base, value decimal.Decimal) decimal.Decimal {
	return base.Mul(value).Div(hundred).Round(2)
}

// TuitionTypeSnapshot is the copy of a tuition type taken when a bill is issued.
// Later catalog edits never reach an issued bill.
type TuitionTypeSnapshot struct {
	TuitionTypeID   uuid.UUID       `json:"tuition_type_id"`
	TuitionTypeName string          `json:"tuition_type_name"`
	BaseAmount      decimal.Decimal `json:"base_amount"`
	LateFeeType     LateFeeType     `json:"late_fee_type"`
	LateFeeValue    decimal.Decimal `json:"late_fee_value"`
}

func (s TuitionTypeSnapshot) Validate() error {
	if s.BaseAmount.IsNegative() {
		return fmt.Errorf("tuition base amount %s: %w", s.BaseAmount, ErrNegativeAmount)
	}
	if !s.LateFeeType.IsValid() {
		return fmt.Errorf("unknown late fee type %q: %w", s.LateFeeType, ErrInvalidLateFee)
	}
	if s.LateFeeValue.IsNegative() {
		return fmt.Errorf("late fee value %s: %w", s.LateFeeValue, ErrNegativeAmount)
	}
	if s.LateFeeType == LateFeeTypePercentage && s.LateFeeValue.GreaterThan(hundred) {
		return fmt.Errorf("late fee percentage %s exceeds 100: %w", s.LateFeeValue, ErrInvalidLateFee)
	}
	return nil
}

// LateFee computes the fee owed on amountAfterDiscounts.
func (s TuitionTypeSnapshot) LateFee(amountAfterDiscounts decimal.Decimal) decimal.Decimal {
	if s.LateFeeType == LateFeeTypePercentage {
		return Percent(amountAfterDiscounts, s.LateFeeValue)
	}
	return s.LateFeeValue
}

// DiscountAdjustment is a manual discount on top of any scholarship.
type DiscountAdjustment struct {
	Type        AdjustmentType  `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
}

func (d DiscountAdjustment) Validate() error {
	if !d.Type.IsValid() {
		return fmt.Errorf("unknown adjustment type %q: %w", d.Type, ErrInvalidDiscount)
	}
	if d.Value.IsNegative() {
		return fmt.Errorf("discount value %s: %w", d.Value, ErrNegativeAmount)
	}
	if d.Type == AdjustmentTypePercentage && d.Value.GreaterThan(hundred) {
		return fmt.Errorf("discount percentage %s exceeds 100: %w", d.Value, ErrInvalidDiscount)
	}
	return nil
}

// Amount is the discount this adjustment takes off base.
func (d DiscountAdjustment) Amount(base decimal.Decimal) decimal.Decimal {
	if d.Type == AdjustmentTypePercentage {
		return Percent(base, d.Value)
	}
	return d.Value
}

// ExtraCharge is an additional amount billed with the tuition (materials, transport...).
type ExtraCharge struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

func (c ExtraCharge) Validate() error {
	if c.Amount.IsNegative() {
		return fmt.Errorf("extra charge %s: %w", c.Amount, ErrNegativeAmount)
	}
	return nil
}

// AuditMetadata is the provenance trail of a billing record. Fields are only
// ever set, never cleared; UpdatedBy always holds the latest actor.
type AuditMetadata struct {
	CreatedBy        string `json:"created_by"`
	UpdatedBy        string `json:"updated_by,omitempty"`
	StatusChangedBy  string `json:"status_changed_by,omitempty"`
	PaidBy           string `json:"paid_by,omitempty"`
	LateFeeAppliedBy string `json:"late_fee_applied_by,omitempty"`
}

// PaymentDetails carries the gateway side of a payment.
type PaymentDetails struct {
	Method    string `json:"payment_method,omitempty"`
	Gateway   string `json:"payment_gateway,omitempty"`
	Reference string `json:"payment_reference,omitempty"`
}
