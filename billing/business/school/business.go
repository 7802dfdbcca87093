package school

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/schools"
)

var ErrNoActiveSchoolYear = errors.New("school has no active school year")

// Business reads the tenants and enrolments bills are issued against.
type Business interface {
	ListActiveSchools(ctx context.Context) ([]model.School, error)
	GetActiveSchoolYear(ctx context.Context, schoolID uuid.UUID) (*model.SchoolYear, error)
	ListActiveStudents(ctx context.Context, schoolID uuid.UUID) ([]model.Student, error)
	ListStudentsByIDs(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) ([]model.Student, error)
}

type business struct {
	schoolRepo schools.Querier
}

func NewSchoolBusiness(schoolRepo schools.Querier) Business {
	return &business{
		schoolRepo: schoolRepo,
	}
}
