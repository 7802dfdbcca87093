package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	catalogbiz "tuition.app/billing/business/catalog"
	"tuition.app/billing/domain"
	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/model"
	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/pgconv"
)

// GenerateBills issues one bill per selected student for the period. Students
// that already have a bill for the period are skipped, so the operation can
// be repeated safely. A student whose lookups fail is reported in Failures
// and does not stop the others. The new bills are written in a single batch.
func (b *business) GenerateBills(ctx context.Context, params GenerateParams) (*BatchResult, error) {
	if err := validate.Struct(params); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	config, err := b.catalog.GetTuitionConfig(ctx, params.SchoolID)
	if err != nil {
		return nil, err
	}
	types, err := b.catalog.ListTuitionTypes(ctx, params.SchoolID)
	if err != nil {
		return nil, err
	}
	defaultType, _ := catalogbiz.DefaultTuitionType(types)

	students, missing, err := b.selectStudents(ctx, params)
	if err != nil {
		return nil, err
	}

	existing, err := b.billedStudents(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{Processed: len(students) + missing, Skipped: missing}
	now := b.now()
	records := make([]*billingrecord.BillingRecord, 0, len(students))

	for _, student := range students {
		if _, ok := existing[student.ID]; ok {
			result.Skipped++
			continue
		}

		record, err := b.buildRecord(ctx, params, config, types, defaultType, student, now)
		if err != nil {
			rlog.Error("failed to build billing record",
				"school_id", params.SchoolID,
				"student_id", student.ID,
				"billing_month", params.BillingMonth,
				"billing_year", params.BillingYear,
				"error", err)
			result.fail(student.ID, err)
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return result, nil
	}

	rows := make([]billingrecords.CreateBillingRecordsParams, 0, len(records))
	for _, record := range records {
		row, err := domain.ToCreateParams(record)
		if err != nil {
			rlog.Error("failed to encode billing record", "student_id", record.StudentID(), "error", err)
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to encode billing records"}
		}
		rows = append(rows, row)
	}

	created, err := b.billingRecordRepo.CreateBillingRecords(ctx, rows)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "billing records for this period were created concurrently"}
		}
		rlog.Error("failed to create billing records", "school_id", params.SchoolID, "count", len(rows), "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create billing records"}
	}
	result.Succeeded = int(created)

	rlog.Info("billing records generated",
		"school_id", params.SchoolID,
		"billing_month", params.BillingMonth,
		"billing_year", params.BillingYear,
		"created", result.Succeeded,
		"skipped", result.Skipped,
		"failed", len(result.Failures))

	return result, nil
}

// selectStudents resolves the explicit student list, or every active student.
// It also returns how many requested ids did not resolve to an active student.
func (b *business) selectStudents(ctx context.Context, params GenerateParams) ([]model.Student, int, error) {
	if len(params.StudentIDs) == 0 {
		students, err := b.school.ListActiveStudents(ctx, params.SchoolID)
		return students, 0, err
	}

	requested := uniqueIDs(params.StudentIDs)
	students, err := b.school.ListStudentsByIDs(ctx, params.SchoolID, requested)
	if err != nil {
		return nil, 0, err
	}

	missing := len(requested) - len(students)
	if missing > 0 {
		rlog.Warn("requested students are not active in school",
			"school_id", params.SchoolID,
			"requested", len(requested),
			"found", len(students))
	}
	return students, missing, nil
}

func (b *business) billedStudents(ctx context.Context, params GenerateParams) (map[uuid.UUID]struct{}, error) {
	rows, err := b.billingRecordRepo.ListBillingRecordsByPeriod(ctx, billingrecords.ListBillingRecordsByPeriodParams{
		SchoolID:     pgconv.UUID(params.SchoolID),
		BillingMonth: int32(params.BillingMonth),
		BillingYear:  int32(params.BillingYear),
	})
	if err != nil {
		rlog.Error("failed to list existing billing records",
			"school_id", params.SchoolID,
			"billing_month", params.BillingMonth,
			"billing_year", params.BillingYear,
			"error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list existing billing records"}
	}

	billed := make(map[uuid.UUID]struct{}, len(rows))
	for _, row := range rows {
		billed[pgconv.FromUUID(row.StudentID)] = struct{}{}
	}
	return billed, nil
}

func (b *business) buildRecord(
	ctx context.Context,
	params GenerateParams,
	config *model.TuitionConfig,
	types []model.TuitionType,
	defaultType model.TuitionType,
	student model.Student,
	now time.Time,
) (*billingrecord.BillingRecord, error) {
	periodStart := time.Date(params.BillingYear, time.Month(params.BillingMonth), 1, 0, 0, 0, 0, time.UTC)

	scholarship, err := b.catalog.GetActiveScholarship(ctx, params.SchoolID, student.ID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("scholarship lookup: %w", err)
	}

	tuitionType := defaultType
	scholarshipAmount := decimal.Zero
	if scholarship != nil {
		tuitionType = tuitionTypeFor(scholarship, types, defaultType)
		scholarshipAmount = scholarship.Amount(tuitionType.Amount)
	}

	billingConfig, err := b.catalog.GetStudentBillingConfig(ctx, params.SchoolID, student.ID)
	if err != nil {
		return nil, fmt.Errorf("billing config lookup: %w", err)
	}

	charges, err := b.catalog.ListActiveRecurringCharges(ctx, params.SchoolID, student.ID, params.BillingYear, params.BillingMonth)
	if err != nil {
		return nil, fmt.Errorf("recurring charges lookup: %w", err)
	}
	extraCharges := make([]model.ExtraCharge, 0, len(charges))
	for _, charge := range charges {
		extraCharges = append(extraCharges, charge.ExtraCharge())
	}

	return billingrecord.Create(billingrecord.CreateParams{
		SchoolID:               params.SchoolID,
		StudentID:              student.ID,
		SchoolYearID:           params.SchoolYearID,
		BillingMonth:           params.BillingMonth,
		BillingYear:            params.BillingYear,
		DueDay:                 config.DueDay,
		TuitionType:            tuitionType.Snapshot(),
		EffectiveTuitionAmount: tuitionType.Amount,
		ScholarshipAmount:      scholarshipAmount,
		ExtraCharges:           extraCharges,
		BillStatus:             billingConfig.BillStatus(),
		CreatedBy:              params.CreatedBy,
		Now:                    now,
	})
}

// tuitionTypeFor returns the scholarship's tuition type override when it still
// exists in the catalog, else the school default.
func tuitionTypeFor(s *model.Scholarship, types []model.TuitionType, defaultType model.TuitionType) model.TuitionType {
	if s.TuitionTypeID == nil {
		return defaultType
	}
	for _, t := range types {
		if t.ID == *s.TuitionTypeID {
			return t
		}
	}
	rlog.Warn("scholarship tuition type not in catalog, using default",
		"scholarship_id", s.ID,
		"tuition_type_id", *s.TuitionTypeID)
	return defaultType
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
