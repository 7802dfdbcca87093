package billingrecord

import (
	"errors"

	"tuition.app/billing/model"
)

// Validation errors.
var (
	ErrInvalidBillingPeriod = errors.New("invalid billing period")
	ErrInvalidBillStatus    = errors.New("invalid bill status")
	ErrInvalidRecord        = errors.New("invalid billing record")
	ErrNegativeAmount       = model.ErrNegativeAmount
	ErrInvalidDiscount      = model.ErrInvalidDiscount
	ErrInvalidLateFee       = model.ErrInvalidLateFee
)

// State conflicts. The caller can recover by choosing another operation.
var (
	ErrAlreadyPaid           = errors.New("billing record is already paid")
	ErrRecordLocked          = errors.New("billing record is locked")
	ErrLateFeeAlreadyApplied = errors.New("late fee already applied")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
)
