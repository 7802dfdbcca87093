package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/business/catalog"
	"tuition.app/billing/business/school"
)

// Runner executes the scheduled billing jobs. Each call is one complete pass;
// failures of single schools or records are reported, not returned.
type Runner interface {
	RunMonthlyBilling(ctx context.Context, now time.Time) (*MonthlyBillingReport, error)
	RunDelinquencySweep(ctx context.Context, now time.Time) (*SweepReport, error)
}

// SchoolFailure names a school the monthly run could not bill.
type SchoolFailure struct {
	SchoolID uuid.UUID `json:"school_id"`
	Error    string    `json:"error"`
}

type MonthlyBillingReport struct {
	BillingMonth    int             `json:"billing_month"`
	BillingYear     int             `json:"billing_year"`
	Schools         int             `json:"schools"`
	SchoolsSkipped  int             `json:"schools_skipped"`
	BillsCreated    int             `json:"bills_created"`
	StudentsSkipped int             `json:"students_skipped"`
	StudentsFailed  int             `json:"students_failed"`
	Failures        []SchoolFailure `json:"failures"`
}

type SweepReport struct {
	Processed       int                `json:"processed"`
	Delayed         int                `json:"delayed"`
	LateFeesApplied int                `json:"late_fees_applied"`
	Unchanged       int                `json:"unchanged"`
	Failures        []bill.ItemFailure `json:"failures"`
}

type runner struct {
	bill        bill.Business
	school      school.Business
	catalog     catalog.Business
	systemActor string
}

func NewRunner(
	billBusiness bill.Business,
	schoolBusiness school.Business,
	catalogBusiness catalog.Business,
	systemActor string,
) Runner {
	return &runner{
		bill:        billBusiness,
		school:      schoolBusiness,
		catalog:     catalogBusiness,
		systemActor: systemActor,
	}
}
