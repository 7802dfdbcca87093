package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/mocks/business/bill_business"
	"tuition.app/billing/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

var (
	testSchoolID = uuid.MustParse("8f1d7b5e-2c41-4a8e-9b7a-1f0e6a3c2d10")
	testRecordID = uuid.MustParse("c4a1f6e2-9b3d-4e8a-a7c5-2d1f0b9e8a77")
	testYearID   = uuid.MustParse("5b7e2c90-1a4d-4f6b-8e3c-9d0a2b1c4e55")
	testNow      = time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
)

func newTestService(t *testing.T) (*Service, *bill_business.MockBusiness, *mocks.Client) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockBusiness := bill_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	return &Service{business: mockBusiness, temporal: mockTemporal}, mockBusiness, mockTemporal
}

func newTestRecord(t *testing.T) *billingrecord.BillingRecord {
	t.Helper()
	r, err := billingrecord.Create(billingrecord.CreateParams{
		ID:           testRecordID,
		SchoolID:     testSchoolID,
		StudentID:    uuid.MustParse("3a6c9e12-7d4b-4f0a-8c5e-6b2d1a9f8e21"),
		SchoolYearID: testYearID,
		BillingMonth: 3,
		BillingYear:  2025,
		DueDay:       5,
		TuitionType: model.TuitionTypeSnapshot{
			TuitionTypeID:   uuid.MustParse("0e9d8c7b-6a5f-4e3d-8c2b-1a0f9e8d7c6b"),
			TuitionTypeName: "Monthly tuition",
			BaseAmount:      decimal.RequireFromString("2200"),
			LateFeeType:     model.LateFeeTypePercentage,
			LateFeeValue:    decimal.RequireFromString("5"),
		},
		EffectiveTuitionAmount: decimal.RequireFromString("2200"),
		DiscountAdjustments: []model.DiscountAdjustment{
			{Type: model.AdjustmentTypeFixed, Value: decimal.RequireFromString("100"), Description: "sibling"},
		},
		ExtraCharges: []model.ExtraCharge{
			{Amount: decimal.RequireFromString("45.5"), Description: "books"},
		},
		BillStatus: model.BillStatusRequired,
		CreatedBy:  "admin-1",
		Now:        time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return r
}
