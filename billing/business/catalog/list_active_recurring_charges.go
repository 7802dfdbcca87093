package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/catalog"
	"tuition.app/billing/repository/pgconv"
)

// ListActiveRecurringCharges returns the charges active at any point of the
// billing month.
func (b *business) ListActiveRecurringCharges(ctx context.Context, schoolID, studentID uuid.UUID, billingYear, billingMonth int) ([]model.RecurringCharge, error) {
	periodStart := time.Date(billingYear, time.Month(billingMonth), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	dbCharges, err := b.catalogRepo.ListActiveRecurringCharges(ctx, catalog.ListActiveRecurringChargesParams{
		SchoolID:    pgconv.UUID(schoolID),
		StudentID:   pgconv.UUID(studentID),
		PeriodEnd:   pgconv.Date(periodEnd),
		PeriodStart: pgconv.Date(periodStart),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list recurring charges"}
	}

	charges := make([]model.RecurringCharge, 0, len(dbCharges))
	for _, dbCharge := range dbCharges {
		amount, err := pgconv.Decimal(dbCharge.Amount)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to read recurring charges"}
		}
		charges = append(charges, model.RecurringCharge{
			ID:          pgconv.FromUUID(dbCharge.ID),
			StudentID:   pgconv.FromUUID(dbCharge.StudentID),
			Amount:      amount,
			Description: dbCharge.Description,
			StartsOn:    dbCharge.StartsOn.Time,
			EndsOn:      pgconv.DatePtr(dbCharge.EndsOn),
		})
	}

	return charges, nil
}
