package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tuition.app/billing/domain"
	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/mocks/business/catalog_business"
	"tuition.app/billing/mocks/business/school_business"
	"tuition.app/billing/mocks/domain/state_machine"
	"tuition.app/billing/mocks/repository/billing_record_repo"
	"tuition.app/billing/model"
	"tuition.app/billing/repository/billingrecords"
)

var (
	schoolID     = uuid.MustParse("8f1d7b5e-2c41-4a8e-9b7a-1f0e6a3c2d10")
	schoolYearID = uuid.MustParse("c0ffee00-1d2e-4f5a-8b9c-0d1e2f3a4b5c")
	createdAt    = time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC)
	// Bills in these tests are due 2025-03-05.
	fixedNow = time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type mocks struct {
	repo         *billing_record_repo.MockQuerier
	catalog      *catalog_business.MockBusiness
	school       *school_business.MockBusiness
	stateMachine *state_machine.MockStateMachine
}

func newTestBusiness(t *testing.T) (*business, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:         billing_record_repo.NewMockQuerier(ctrl),
		catalog:      catalog_business.NewMockBusiness(ctrl),
		school:       school_business.NewMockBusiness(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		billingRecordRepo: m.repo,
		catalog:           m.catalog,
		school:            m.school,
		stateMachine:      m.stateMachine,
		now:               func() time.Time { return fixedNow },
	}
	return b, m
}

// newBill builds a pending 2200 bill for March 2025 with a 5% late fee that
// requires a taxable invoice.
func newBill(t *testing.T, opts ...func(p *billingrecord.CreateParams)) *billingrecord.BillingRecord {
	t.Helper()
	p := billingrecord.CreateParams{
		SchoolID:     schoolID,
		StudentID:    uuid.New(),
		SchoolYearID: schoolYearID,
		BillingMonth: 3,
		BillingYear:  2025,
		DueDay:       5,
		TuitionType: model.TuitionTypeSnapshot{
			TuitionTypeID:   uuid.New(),
			TuitionTypeName: "Regular",
			BaseAmount:      dec("2200"),
			LateFeeType:     model.LateFeeTypePercentage,
			LateFeeValue:    dec("5"),
		},
		EffectiveTuitionAmount: dec("2200"),
		BillStatus:             model.BillStatusRequired,
		CreatedBy:              "admin-1",
		Now:                    createdAt,
	}
	for _, opt := range opts {
		opt(&p)
	}
	r, err := billingrecord.Create(p)
	require.NoError(t, err)
	return r
}

func notRequired(p *billingrecord.CreateParams) { p.BillStatus = model.BillStatusNotRequired }

func dueInJune(p *billingrecord.CreateParams) { p.BillingMonth = 6 }

func withLateFee(t *testing.T, r *billingrecord.BillingRecord) *billingrecord.BillingRecord {
	t.Helper()
	next, err := r.MarkAsDelayed(fixedNow).ApplyLateFee(r.AmountAfterDiscounts(), "system", fixedNow)
	require.NoError(t, err)
	return next
}

func paid(t *testing.T, r *billingrecord.BillingRecord) *billingrecord.BillingRecord {
	t.Helper()
	next, err := r.MarkAsPaid(billingrecord.PaymentParams{PaidBy: "cashier", At: fixedNow})
	require.NoError(t, err)
	return next
}

func lockedUnpaid(t *testing.T, r *billingrecord.BillingRecord) *billingrecord.BillingRecord {
	t.Helper()
	d := r.Data()
	lockedAt := fixedNow
	d.LockedAt = &lockedAt
	next, err := billingrecord.Restore(d)
	require.NoError(t, err)
	return next
}

// toRow builds the row the database would hold for r.
func toRow(t *testing.T, r *billingrecord.BillingRecord) billingrecords.BillingRecord {
	t.Helper()
	create, err := domain.ToCreateParams(r)
	require.NoError(t, err)
	update, err := domain.ToUpdateParams(r)
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

// expectTransition runs the transition the business passes against current,
// standing in for the row lock and write of the real state machine.
func expectTransition(m mocks, current *billingrecord.BillingRecord) *gomock.Call {
	return m.stateMachine.EXPECT().
		Transition(gomock.Any(), current.SchoolID(), current.ID(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, transition domain.TransitionFunc) (*billingrecord.BillingRecord, error) {
			return transition(current)
		})
}
