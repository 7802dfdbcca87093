package school

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/pgconv"
	"tuition.app/billing/repository/schools"
)

func (b *business) ListActiveStudents(ctx context.Context, schoolID uuid.UUID) ([]model.Student, error) {
	dbStudents, err := b.schoolRepo.ListActiveStudents(ctx, pgconv.UUID(schoolID))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list students"}
	}
	return toStudents(dbStudents), nil
}

// ListStudentsByIDs returns the active students among ids. Unknown or
// inactive ids are silently dropped.
func (b *business) ListStudentsByIDs(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]model.Student, error) {
	if len(ids) == 0 {
		return []model.Student{}, nil
	}

	dbStudents, err := b.schoolRepo.ListStudentsByIDs(ctx, schools.ListStudentsByIDsParams{
		SchoolID: pgconv.UUID(schoolID),
		Ids:      pgconv.UUIDs(ids),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list students"}
	}
	return toStudents(dbStudents), nil
}

func toStudents(dbStudents []schools.Student) []model.Student {
	result := make([]model.Student, 0, len(dbStudents))
	for _, s := range dbStudents {
		result = append(result, model.Student{
			ID:       pgconv.FromUUID(s.ID),
			SchoolID: pgconv.FromUUID(s.SchoolID),
			FullName: s.FullName,
		})
	}
	return result
}
