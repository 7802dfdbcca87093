package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/catalog"
)

// Business exposes the read-only school catalog consumed by bill generation.
type Business interface {
	GetTuitionConfig(ctx context.Context, schoolID uuid.UUID) (*model.TuitionConfig, error)
	ListTuitionTypes(ctx context.Context, schoolID uuid.UUID) ([]model.TuitionType, error)
	GetActiveScholarship(ctx context.Context, schoolID, studentID uuid.UUID, on time.Time) (*model.Scholarship, error)
	GetStudentBillingConfig(ctx context.Context, schoolID, studentID uuid.UUID) (model.StudentBillingConfig, error)
	ListActiveRecurringCharges(ctx context.Context, schoolID, studentID uuid.UUID, billingYear, billingMonth int) ([]model.RecurringCharge, error)
}

type business struct {
	catalogRepo catalog.Querier
}

func NewCatalogBusiness(catalogRepo catalog.Querier) Business {
	return &business{
		catalogRepo: catalogRepo,
	}
}
