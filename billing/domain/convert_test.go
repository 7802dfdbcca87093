package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/model"
	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/pgconv"
)

var (
	schoolID  = uuid.MustParse("8f1d7b5e-2c41-4a8e-9b7a-1f0e6a3c2d10")
	studentID = uuid.MustParse("3a6c9e12-7d4b-4f0a-8c5e-6b2d1a9f8e21")
	createdAt = time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newRecord(t *testing.T) *billingrecord.BillingRecord {
	t.Helper()
	r, err := billingrecord.Create(billingrecord.CreateParams{
		SchoolID:     schoolID,
		StudentID:    studentID,
		SchoolYearID: uuid.New(),
		BillingMonth: 3,
		BillingYear:  2025,
		DueDay:       5,
		TuitionType: model.TuitionTypeSnapshot{
			TuitionTypeID:   uuid.New(),
			TuitionTypeName: "Monthly tuition",
			BaseAmount:      dec("2200"),
			LateFeeType:     model.LateFeeTypePercentage,
			LateFeeValue:    dec("5"),
		},
		EffectiveTuitionAmount: dec("2200"),
		ScholarshipAmount:      dec("200"),
		DiscountAdjustments: []model.DiscountAdjustment{
			{Type: model.AdjustmentTypeFixed, Value: dec("100"), Description: "early enrolment"},
		},
		ExtraCharges: []model.ExtraCharge{
			{Amount: dec("45.50"), Description: "books"},
		},
		BillStatus: model.BillStatusRequired,
		CreatedBy:  "admin-1",
		Now:        createdAt,
	})
	require.NoError(t, err)
	return r
}

// rowFromRecord builds the row the database would hold for r.
func rowFromRecord(t *testing.T, r *billingrecord.BillingRecord) billingrecords.BillingRecord {
	t.Helper()
	create, err := ToCreateParams(r)
	require.NoError(t, err)
	update, err := ToUpdateParams(r)
	require.NoError(t, err)

	return billingrecords.BillingRecord{
		ID:                     create.ID,
		SchoolID:               create.SchoolID,
		StudentID:              create.StudentID,
		SchoolYearID:           create.SchoolYearID,
		BillingMonth:           create.BillingMonth,
		BillingYear:            create.BillingYear,
		TuitionTypeSnapshot:    create.TuitionTypeSnapshot,
		EffectiveTuitionAmount: update.EffectiveTuitionAmount,
		ScholarshipAmount:      update.ScholarshipAmount,
		DiscountAdjustments:    update.DiscountAdjustments,
		ExtraCharges:           update.ExtraCharges,
		LateFeeAmount:          update.LateFeeAmount,
		FinalAmount:            update.FinalAmount,
		BillStatus:             update.BillStatus,
		PaymentStatus:          update.PaymentStatus,
		PaidAmount:             update.PaidAmount,
		PaidAt:                 update.PaidAt,
		LockedAt:               update.LockedAt,
		PaymentMethod:          update.PaymentMethod,
		PaymentGateway:         update.PaymentGateway,
		PaymentReference:       update.PaymentReference,
		DueDate:                create.DueDate,
		AuditMetadata:          update.AuditMetadata,
		CreatedAt:              create.CreatedAt,
		UpdatedAt:              update.UpdatedAt,
	}
}

func TestToEntity_RoundTrip(t *testing.T) {
	paidAt := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	pending := newRecord(t)
	paid, err := pending.MarkAsPaid(billingrecord.PaymentParams{
		Details: model.PaymentDetails{Method: "transfer", Gateway: "midtrans", Reference: "TRX-1"},
		PaidBy:  "parent-9",
		At:      paidAt,
	})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		record *billingrecord.BillingRecord
	}{
		{name: "pending_record", record: pending},
		{name: "paid_record", record: paid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			restored, err := ToEntity(rowFromRecord(t, tc.record))
			require.NoError(t, err)

			want, got := tc.record.Data(), restored.Data()
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.SchoolID, got.SchoolID)
			assert.Equal(t, want.StudentID, got.StudentID)
			assert.Equal(t, want.BillingMonth, got.BillingMonth)
			assert.Equal(t, want.BillingYear, got.BillingYear)
			assert.Equal(t, want.DueDate, got.DueDate)
			assert.Equal(t, want.BillStatus, got.BillStatus)
			assert.Equal(t, want.PaymentStatus, got.PaymentStatus)
			assert.Equal(t, want.Payment, got.Payment)
			assert.Equal(t, want.Audit, got.Audit)
			assert.Equal(t, want.PaidAt, got.PaidAt)
			assert.Equal(t, want.LockedAt, got.LockedAt)
			assert.Equal(t, want.TuitionType.TuitionTypeID, got.TuitionType.TuitionTypeID)
			assert.True(t, want.TuitionType.LateFeeValue.Equal(got.TuitionType.LateFeeValue))
			assert.True(t, want.FinalAmount.Equal(got.FinalAmount), "final amount %s", got.FinalAmount)
			assert.True(t, want.PaidAmount.Equal(got.PaidAmount))
			assert.True(t, want.ScholarshipAmount.Equal(got.ScholarshipAmount))
			require.Len(t, got.DiscountAdjustments, 1)
			assert.Equal(t, "early enrolment", got.DiscountAdjustments[0].Description)
			require.Len(t, got.ExtraCharges, 1)
			assert.True(t, dec("45.50").Equal(got.ExtraCharges[0].Amount))
		})
	}
}

func TestToEntity_InvalidRows(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(row *billingrecords.BillingRecord)
	}{
		{
			name:   "corrupt_snapshot",
			mutate: func(row *billingrecords.BillingRecord) { row.TuitionTypeSnapshot = []byte(`{"base_amount":`) },
		},
		{
			name:   "non_finite_amount",
			mutate: func(row *billingrecords.BillingRecord) { row.PaidAmount.NaN = true },
		},
		{
			name:   "unknown_payment_status",
			mutate: func(row *billingrecords.BillingRecord) { row.PaymentStatus = "refunded" },
		},
		{
			name:   "month_out_of_range",
			mutate: func(row *billingrecords.BillingRecord) { row.BillingMonth = 13 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := rowFromRecord(t, newRecord(t))
			tc.mutate(&row)

			r, err := ToEntity(row)

			assert.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestToEntity_RecomputesFinalAmount(t *testing.T) {
	row := rowFromRecord(t, newRecord(t))
	row.FinalAmount = pgconv.Numeric(dec("1"))

	r, err := ToEntity(row)

	require.NoError(t, err)
	// 2200 - 200 - 100 + 45.50
	assert.True(t, dec("1945.50").Equal(r.FinalAmount()), "final amount %s", r.FinalAmount())
}

func TestToCreateParams_EmptyListsAreArrays(t *testing.T) {
	r, err := billingrecord.Create(billingrecord.CreateParams{
		SchoolID:     schoolID,
		StudentID:    studentID,
		SchoolYearID: uuid.New(),
		BillingMonth: 1,
		BillingYear:  2026,
		DueDay:       10,
		TuitionType: model.TuitionTypeSnapshot{
			TuitionTypeID: uuid.New(),
			BaseAmount:    dec("1000"),
			LateFeeType:   model.LateFeeTypeFixed,
			LateFeeValue:  dec("50"),
		},
		EffectiveTuitionAmount: dec("1000"),
		CreatedBy:              "system",
		Now:                    createdAt,
	})
	require.NoError(t, err)

	params, err := ToCreateParams(r)

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(params.DiscountAdjustments))
	assert.JSONEq(t, `[]`, string(params.ExtraCharges))
	assert.JSONEq(t, `{"created_by":"system"}`, string(params.AuditMetadata))
	assert.Equal(t, "not_required", params.BillStatus)
	assert.Equal(t, "pending", params.PaymentStatus)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), params.DueDate.Time)
}
