package model

// PaymentStatus is the aging/payment dimension of a billing record.
type PaymentStatus string

const (
	PaymentStatusPending        PaymentStatus = "pending"
	PaymentStatusDelayed        PaymentStatus = "delayed"
	PaymentStatusPartialPayment PaymentStatus = "partial_payment"
	PaymentStatusPaid           PaymentStatus = "paid"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusDelayed, PaymentStatusPartialPayment, PaymentStatusPaid:
		return true
	}
	return false
}

// BillStatus tracks whether a formal tax invoice is owed for a bill,
// independently of its payment status.
type BillStatus string

const (
	BillStatusNotRequired BillStatus = "not_required"
	BillStatusRequired    BillStatus = "required"
	BillStatusSent        BillStatus = "sent"
)

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusNotRequired, BillStatusRequired, BillStatusSent:
		return true
	}
	return false
}

// LateFeeType selects how a tuition type computes its late fee.
type LateFeeType string

const (
	LateFeeTypeFixed      LateFeeType = "fixed"
	LateFeeTypePercentage LateFeeType = "percentage"
)

func (t LateFeeType) IsValid() bool {
	return t == LateFeeTypeFixed || t == LateFeeTypePercentage
}

// AdjustmentType is shared by discount adjustments and scholarships.
type AdjustmentType string

const (
	AdjustmentTypePercentage AdjustmentType = "percentage"
	AdjustmentTypeFixed      AdjustmentType = "fixed"
)

func (t AdjustmentType) IsValid() bool {
	return t == AdjustmentTypePercentage || t == AdjustmentTypeFixed
}
