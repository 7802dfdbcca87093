package bill

import (
	"errors"

	"tuition.app/billing/business/catalog"
	"tuition.app/billing/domain"
)

var (
	ErrNotFound             = domain.ErrNotFound
	ErrConfigurationMissing = catalog.ErrConfigurationMissing
	ErrNoTuitionTypes       = catalog.ErrNoTuitionTypes
	ErrLateFeeNotApplicable = errors.New("late fee does not apply to bills without a taxable invoice")
)
