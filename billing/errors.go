package billing

import (
	"errors"

	"encore.dev/beta/errs"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/domain/billingrecord"
)

var (
	invalidArgument = []error{
		billingrecord.ErrInvalidBillingPeriod,
		billingrecord.ErrInvalidBillStatus,
		billingrecord.ErrInvalidRecord,
		billingrecord.ErrNegativeAmount,
		billingrecord.ErrInvalidDiscount,
		billingrecord.ErrInvalidLateFee,
		billingrecord.ErrInvalidPaymentAmount,
	}
	failedPrecondition = []error{
		bill.ErrConfigurationMissing,
		bill.ErrNoTuitionTypes,
		bill.ErrLateFeeNotApplicable,
		billingrecord.ErrAlreadyPaid,
		billingrecord.ErrRecordLocked,
		billingrecord.ErrLateFeeAlreadyApplied,
	}
)

// toAPIError maps business errors onto response codes. Errors that already
// carry a code pass through, anything unknown becomes Internal.
func toAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, bill.ErrNotFound) {
		return &errs.Error{Code: errs.NotFound, Message: err.Error()}
	}
	for _, target := range failedPrecondition {
		if errors.Is(err, target) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
		}
	}
	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
		}
	}
	return &errs.Error{Code: errs.Internal, Message: "internal error"}
}
