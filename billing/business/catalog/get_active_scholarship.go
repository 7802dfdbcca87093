package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/catalog"
	"tuition.app/billing/repository/pgconv"
)

// GetActiveScholarship returns the scholarship in force on the given day, or
// nil when the student has none.
func (b *business) GetActiveScholarship(ctx context.Context, schoolID, studentID uuid.UUID, on time.Time) (*model.Scholarship, error) {
	dbScholarship, err := b.catalogRepo.GetActiveScholarship(ctx, catalog.GetActiveScholarshipParams{
		SchoolID:  pgconv.UUID(schoolID),
		StudentID: pgconv.UUID(studentID),
		ActiveOn:  pgconv.Date(on),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get scholarship"}
	}

	value, err := pgconv.Decimal(dbScholarship.DiscountValue)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to read scholarship"}
	}

	return &model.Scholarship{
		ID:            pgconv.FromUUID(dbScholarship.ID),
		StudentID:     pgconv.FromUUID(dbScholarship.StudentID),
		TuitionTypeID: pgconv.FromUUIDPtr(dbScholarship.TuitionTypeID),
		DiscountType:  model.AdjustmentType(dbScholarship.DiscountType),
		DiscountValue: value,
	}, nil
}
