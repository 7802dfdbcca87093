package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/business/catalog"
	"tuition.app/billing/business/school"
	"tuition.app/billing/model"
)

var errSchoolSkipped = errors.New("school skipped")

// RunMonthlyBilling issues the current month's bills for every active school.
// A school without an open school year, students or tuition configuration is
// skipped; a school that fails is logged and the run moves on.
func (r *runner) RunMonthlyBilling(ctx context.Context, now time.Time) (*MonthlyBillingReport, error) {
	start := time.Now()
	defer func() {
		jobDuration.WithLabelValues(jobMonthlyBilling).Observe(time.Since(start).Seconds())
	}()

	report := &MonthlyBillingReport{
		BillingMonth: int(now.Month()),
		BillingYear:  now.Year(),
	}

	schools, err := r.school.ListActiveSchools(ctx)
	if err != nil {
		jobRunsTotal.WithLabelValues(jobMonthlyBilling, "error").Inc()
		return nil, fmt.Errorf("list schools: %w", err)
	}
	report.Schools = len(schools)

	for _, s := range schools {
		result, err := r.billSchool(ctx, s, report.BillingMonth, report.BillingYear)
		if errors.Is(err, errSchoolSkipped) {
			report.SchoolsSkipped++
			continue
		}
		if err != nil {
			rlog.Error("monthly billing failed for school",
				"job", jobMonthlyBilling,
				"school_id", s.ID,
				"error", err)
			jobItemFailuresTotal.WithLabelValues(jobMonthlyBilling).Inc()
			report.Failures = append(report.Failures, SchoolFailure{SchoolID: s.ID, Error: err.Error()})
			continue
		}

		report.BillsCreated += result.Succeeded
		report.StudentsSkipped += result.Skipped
		report.StudentsFailed += len(result.Failures)
		billsGeneratedTotal.Add(float64(result.Succeeded))
	}

	jobRunsTotal.WithLabelValues(jobMonthlyBilling, "completed").Inc()
	rlog.Info("monthly billing finished",
		"job", jobMonthlyBilling,
		"billing_month", report.BillingMonth,
		"billing_year", report.BillingYear,
		"schools", report.Schools,
		"schools_skipped", report.SchoolsSkipped,
		"schools_failed", len(report.Failures),
		"bills_created", report.BillsCreated)

	return report, nil
}

func (r *runner) billSchool(ctx context.Context, s model.School, month, year int) (*bill.BatchResult, error) {
	schoolYear, err := r.school.GetActiveSchoolYear(ctx, s.ID)
	if err != nil {
		if errors.Is(err, school.ErrNoActiveSchoolYear) {
			rlog.Info("school has no active school year", "job", jobMonthlyBilling, "school_id", s.ID)
			return nil, errSchoolSkipped
		}
		return nil, err
	}

	students, err := r.school.ListActiveStudents(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		rlog.Info("school has no active students", "job", jobMonthlyBilling, "school_id", s.ID)
		return nil, errSchoolSkipped
	}

	if _, err := r.catalog.GetTuitionConfig(ctx, s.ID); err != nil {
		if errors.Is(err, catalog.ErrConfigurationMissing) {
			rlog.Warn("school has no tuition configuration", "job", jobMonthlyBilling, "school_id", s.ID)
			return nil, errSchoolSkipped
		}
		return nil, err
	}

	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, student := range students {
		studentIDs = append(studentIDs, student.ID)
	}

	return r.bill.GenerateBills(ctx, bill.GenerateParams{
		SchoolID:     s.ID,
		SchoolYearID: schoolYear.ID,
		BillingMonth: month,
		BillingYear:  year,
		StudentIDs:   studentIDs,
		CreatedBy:    r.systemActor,
	})
}
