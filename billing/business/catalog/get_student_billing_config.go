package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/catalog"
	"tuition.app/billing/repository/pgconv"
)

// GetStudentBillingConfig falls back to "no taxable bill" for students
// without a stored config.
func (b *business) GetStudentBillingConfig(ctx context.Context, schoolID, studentID uuid.UUID) (model.StudentBillingConfig, error) {
	dbConfig, err := b.catalogRepo.GetStudentBillingConfig(ctx, catalog.GetStudentBillingConfigParams{
		SchoolID:  pgconv.UUID(schoolID),
		StudentID: pgconv.UUID(studentID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StudentBillingConfig{StudentID: studentID}, nil
		}
		return model.StudentBillingConfig{}, &errs.Error{Code: errs.Internal, Message: "failed to get student billing config"}
	}

	return model.StudentBillingConfig{
		StudentID:           pgconv.FromUUID(dbConfig.StudentID),
		RequiresTaxableBill: dbConfig.RequiresTaxableBill,
	}, nil
}
