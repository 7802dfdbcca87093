package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// School is a tenant.
type School struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SchoolYear struct {
	ID       uuid.UUID `json:"id"`
	SchoolID uuid.UUID `json:"school_id"`
	Name     string    `json:"name"`
	StartsOn time.Time `json:"starts_on"`
	EndsOn   time.Time `json:"ends_on"`
}

type Student struct {
	ID       uuid.UUID `json:"id"`
	SchoolID uuid.UUID `json:"school_id"`
	FullName string    `json:"full_name"`
}

// TuitionConfig holds the school-wide billing settings.
type TuitionConfig struct {
	SchoolID uuid.UUID `json:"school_id"`
	DueDay   int       `json:"due_day"`
}

// TuitionType is a catalog entry; bills copy it through Snapshot.
type TuitionType struct {
	ID           uuid.UUID       `json:"id"`
	SchoolID     uuid.UUID       `json:"school_id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	LateFeeType  LateFeeType     `json:"late_fee_type"`
	LateFeeValue decimal.Decimal `json:"late_fee_value"`
	IsDefault    bool            `json:"is_default"`
}

func (t TuitionType) Snapshot() TuitionTypeSnapshot {
	return TuitionTypeSnapshot{
		TuitionTypeID:   t.ID,
		TuitionTypeName: t.Name,
		BaseAmount:      t.Amount,
		LateFeeType:     t.LateFeeType,
		LateFeeValue:    t.LateFeeValue,
	}
}

// Scholarship is a student's standing discount policy. TuitionTypeID, when
// set, bills the student under that tuition type instead of the school default.
type Scholarship struct {
	ID            uuid.UUID       `json:"id"`
	StudentID     uuid.UUID       `json:"student_id"`
	TuitionTypeID *uuid.UUID      `json:"tuition_type_id,omitempty"`
	DiscountType  AdjustmentType  `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// Amount is the discount granted on base, never more than base itself.
func (s Scholarship) Amount(base decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch s.DiscountType {
	case AdjustmentTypePercentage:
		amount = Percent(base, s.DiscountValue)
	case AdjustmentTypeFixed:
		amount = s.DiscountValue
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(amount, base)
}

type StudentBillingConfig struct {
	StudentID           uuid.UUID `json:"student_id"`
	RequiresTaxableBill bool      `json:"requires_taxable_bill"`
}

// BillStatus is the taxable-bill status new bills for the student start in.
func (c StudentBillingConfig) BillStatus() BillStatus {
	if c.RequiresTaxableBill {
		return BillStatusRequired
	}
	return BillStatusNotRequired
}

// RecurringCharge is an extra charge billed every month while active.
type RecurringCharge struct {
	ID          uuid.UUID       `json:"id"`
	StudentID   uuid.UUID       `json:"student_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	StartsOn    time.Time       `json:"starts_on"`
	EndsOn      *time.Time      `json:"ends_on,omitempty"`
}

func (c RecurringCharge) ExtraCharge() ExtraCharge {
	return ExtraCharge{Amount: c.Amount, Description: c.Description}
}
