package billingrecord

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition.app/billing/model"
)

var (
	testSchoolID     = uuid.MustParse("8f1d7b5e-2c41-4a8e-9b7a-1f0e6a3c2d10")
	testStudentID    = uuid.MustParse("3a6c9e12-7d4b-4f0a-8c5e-6b2d1a9f8e21")
	testSchoolYearID = uuid.MustParse("c2b7e4f1-9a3d-4c6e-b8f0-2d5a7c1e9b32")
	testTuitionID    = uuid.MustParse("5e9a2c7d-1b4f-4e8a-a6c3-9d0b2f7e4a43")
	createdAt        = time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func percentageSnapshot(base, pct string) model.TuitionTypeSnapshot {
	return model.TuitionTypeSnapshot{
		TuitionTypeID:   testTuitionID,
		TuitionTypeName: "Monthly tuition",
		BaseAmount:      dec(base),
		LateFeeType:     model.LateFeeTypePercentage,
		LateFeeValue:    dec(pct),
	}
}

func defaultParams() CreateParams {
	return CreateParams{
		SchoolID:               testSchoolID,
		StudentID:              testStudentID,
		SchoolYearID:           testSchoolYearID,
		BillingMonth:           3,
		BillingYear:            2025,
		DueDay:                 5,
		TuitionType:            percentageSnapshot("2200", "5"),
		EffectiveTuitionAmount: dec("2200"),
		ScholarshipAmount:      decimal.Zero,
		CreatedBy:              "admin-1",
		Now:                    createdAt,
	}
}

func newRecord(t *testing.T, mutate func(p *CreateParams)) *BillingRecord {
	t.Helper()
	p := defaultParams()
	if mutate != nil {
		mutate(&p)
	}
	r, err := Create(p)
	require.NoError(t, err)
	return r
}

func assertFinalAmountBalances(t *testing.T, r *BillingRecord) {
	t.Helper()
	expected := r.AmountAfterDiscounts().Add(r.ExtraAmount()).Add(r.LateFeeAmount())
	assert.True(t, expected.Equal(r.FinalAmount()), "final amount %s, expected %s", r.FinalAmount(), expected)
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(p *CreateParams)
		expectedError error
	}{
		{
			name:   "happy_case",
			mutate: func(p *CreateParams) {},
		},
		{
			name:          "month_zero",
			mutate:        func(p *CreateParams) { p.BillingMonth = 0 },
			expectedError: ErrInvalidBillingPeriod,
		},
		{
			name:          "month_thirteen",
			mutate:        func(p *CreateParams) { p.BillingMonth = 13 },
			expectedError: ErrInvalidBillingPeriod,
		},
		{
			name:          "year_before_range",
			mutate:        func(p *CreateParams) { p.BillingYear = 2019 },
			expectedError: ErrInvalidBillingPeriod,
		},
		{
			name:          "year_after_range",
			mutate:        func(p *CreateParams) { p.BillingYear = 2101 },
			expectedError: ErrInvalidBillingPeriod,
		},
		{
			name:          "negative_scholarship",
			mutate:        func(p *CreateParams) { p.ScholarshipAmount = dec("-1") },
			expectedError: ErrNegativeAmount,
		},
		{
			name:          "negative_effective_tuition",
			mutate:        func(p *CreateParams) { p.EffectiveTuitionAmount = dec("-0.01") },
			expectedError: ErrNegativeAmount,
		},
		{
			name: "discount_percentage_over_hundred",
			mutate: func(p *CreateParams) {
				p.DiscountAdjustments = []model.DiscountAdjustment{{Type: model.AdjustmentTypePercentage, Value: dec("100.5")}}
			},
			expectedError: ErrInvalidDiscount,
		},
		{
			name: "discount_negative_value",
			mutate: func(p *CreateParams) {
				p.DiscountAdjustments = []model.DiscountAdjustment{{Type: model.AdjustmentTypeFixed, Value: dec("-10")}}
			},
			expectedError: ErrNegativeAmount,
		},
		{
			name: "discount_unknown_type",
			mutate: func(p *CreateParams) {
				p.DiscountAdjustments = []model.DiscountAdjustment{{Type: "voucher", Value: dec("10")}}
			},
			expectedError: ErrInvalidDiscount,
		},
		{
			name: "negative_extra_charge",
			mutate: func(p *CreateParams) {
				p.ExtraCharges = []model.ExtraCharge{{Amount: dec("-5"), Description: "books"}}
			},
			expectedError: ErrNegativeAmount,
		},
		{
			name: "discounts_exceed_tuition",
			mutate: func(p *CreateParams) {
				p.DiscountAdjustments = []model.DiscountAdjustment{{Type: model.AdjustmentTypeFixed, Value: dec("2500")}}
			},
			expectedError: ErrNegativeAmount,
		},
		{
			name:          "unknown_bill_status",
			mutate:        func(p *CreateParams) { p.BillStatus = "pending_review" },
			expectedError: ErrInvalidBillStatus,
		},
		{
			name:          "missing_creator",
			mutate:        func(p *CreateParams) { p.CreatedBy = "" },
			expectedError: ErrInvalidRecord,
		},
		{
			name:          "missing_student",
			mutate:        func(p *CreateParams) { p.StudentID = uuid.Nil },
			expectedError: ErrInvalidRecord,
		},
		{
			name: "late_fee_percentage_over_hundred",
			mutate: func(p *CreateParams) {
				p.TuitionType = percentageSnapshot("2200", "150")
			},
			expectedError: ErrInvalidLateFee,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := defaultParams()
			tc.mutate(&p)

			r, err := Create(p)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.PaymentStatusPending, r.PaymentStatus())
			assert.Equal(t, model.BillStatusNotRequired, r.BillStatus())
			assert.True(t, r.LateFeeAmount().IsZero())
			assert.True(t, r.PaidAmount().IsZero())
			assert.False(t, r.IsLocked())
			assert.True(t, r.CanEdit())
			assert.Equal(t, "admin-1", r.Audit().CreatedBy)
			assert.NotEqual(t, uuid.Nil, r.ID())
			assertFinalAmountBalances(t, r)
		})
	}
}

func TestDueDate(t *testing.T) {
	testCases := []struct {
		name     string
		year     int
		month    int
		dueDay   int
		expected time.Time
	}{
		{
			name:     "regular_day",
			year:     2025,
			month:    3,
			dueDay:   5,
			expected: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "clamped_to_february_end",
			year:     2025,
			month:    2,
			dueDay:   31,
			expected: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap_year_february",
			year:     2028,
			month:    2,
			dueDay:   30,
			expected: time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december",
			year:     2025,
			month:    12,
			dueDay:   31,
			expected: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DueDate(tc.year, tc.month, tc.dueDay))
		})
	}
}

func TestFinalAmountFormula(t *testing.T) {
	testCases := []struct {
		name          string
		scholarship   string
		adjustments   []model.DiscountAdjustment
		extraCharges  []model.ExtraCharge
		expectedFinal string
	}{
		{
			name:          "tuition_only",
			scholarship:   "0",
			expectedFinal: "2200",
		},
		{
			name:        "scholarship_and_fixed_discount",
			scholarship: "500",
			adjustments: []model.DiscountAdjustment{
				{Type: model.AdjustmentTypeFixed, Value: dec("100")},
			},
			expectedFinal: "1600",
		},
		{
			name:        "percentage_discount_on_amount_after_scholarship",
			scholarship: "500",
			adjustments: []model.DiscountAdjustment{
				{Type: model.AdjustmentTypePercentage, Value: dec("10"), Description: "sibling"},
			},
			extraCharges: []model.ExtraCharge{
				{Amount: dec("50"), Description: "transport"},
			},
			expectedFinal: "1580",
		},
		{
			name:        "several_discounts_and_charges",
			scholarship: "0",
			adjustments: []model.DiscountAdjustment{
				{Type: model.AdjustmentTypePercentage, Value: dec("5")},
				{Type: model.AdjustmentTypeFixed, Value: dec("40")},
			},
			extraCharges: []model.ExtraCharge{
				{Amount: dec("75.50")},
				{Amount: dec("24.50")},
			},
			expectedFinal: "2150",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecord(t, func(p *CreateParams) {
				p.ScholarshipAmount = dec(tc.scholarship)
				p.DiscountAdjustments = tc.adjustments
				p.ExtraCharges = tc.extraCharges
			})

			assert.True(t, dec(tc.expectedFinal).Equal(r.FinalAmount()), "final amount %s", r.FinalAmount())
			assertFinalAmountBalances(t, r)
		})
	}
}

func TestScholarshipScenario(t *testing.T) {
	scholarship := model.Scholarship{DiscountType: model.AdjustmentTypeFixed, DiscountValue: dec("500")}
	amount := scholarship.Amount(dec("2200"))
	require.True(t, dec("500").Equal(amount))

	r := newRecord(t, func(p *CreateParams) {
		p.ScholarshipAmount = amount
		p.DiscountAdjustments = []model.DiscountAdjustment{{Type: model.AdjustmentTypeFixed, Value: dec("100")}}
	})

	assert.True(t, dec("100").Equal(r.DiscountAmount()))
	assert.True(t, dec("1600").Equal(r.FinalAmount()))
}

func TestLateFeeScenario(t *testing.T) {
	r := newRecord(t, nil)
	require.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), r.DueDate())
	require.True(t, dec("2200").Equal(r.FinalAmount()))

	twoMonthsLater := time.Date(2025, time.May, 5, 8, 0, 0, 0, time.UTC)
	require.True(t, r.IsOverdue(twoMonthsLater))

	delayed := r.MarkAsDelayed(twoMonthsLater)
	assert.Equal(t, model.PaymentStatusDelayed, delayed.PaymentStatus())

	withFee, err := delayed.ApplyLateFee(delayed.AmountAfterDiscounts(), "system", twoMonthsLater)
	require.NoError(t, err)
	assert.True(t, dec("110").Equal(withFee.LateFeeAmount()))
	assert.True(t, dec("2310").Equal(withFee.FinalAmount()))
	assert.Equal(t, model.PaymentStatusDelayed, withFee.PaymentStatus())
	assert.Equal(t, "system", withFee.Audit().LateFeeAppliedBy)
	assertFinalAmountBalances(t, withFee)

	// earlier values are untouched
	assert.Equal(t, model.PaymentStatusPending, r.PaymentStatus())
	assert.True(t, dec("2200").Equal(r.FinalAmount()))
	assert.True(t, delayed.LateFeeAmount().IsZero())
}

func TestApplyLateFee(t *testing.T) {
	at := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fixed_fee", func(t *testing.T) {
		r := newRecord(t, func(p *CreateParams) {
			p.TuitionType.LateFeeType = model.LateFeeTypeFixed
			p.TuitionType.LateFeeValue = dec("75")
		})

		withFee, err := r.ApplyLateFee(r.AmountAfterDiscounts(), "admin-2", at)
		require.NoError(t, err)
		assert.True(t, dec("75").Equal(withFee.LateFeeAmount()))
		assert.True(t, dec("2275").Equal(withFee.FinalAmount()))
		assert.Equal(t, model.PaymentStatusPending, withFee.PaymentStatus())
	})

	t.Run("percentage_rounds_to_cents", func(t *testing.T) {
		r := newRecord(t, func(p *CreateParams) {
			p.TuitionType = percentageSnapshot("1999.99", "7.5")
			p.EffectiveTuitionAmount = dec("1999.99")
		})

		withFee, err := r.ApplyLateFee(r.AmountAfterDiscounts(), "admin-2", at)
		require.NoError(t, err)
		assert.True(t, dec("150").Equal(withFee.LateFeeAmount()), "late fee %s", withFee.LateFeeAmount())
		assertFinalAmountBalances(t, withFee)
	})

	t.Run("second_application_fails", func(t *testing.T) {
		r := newRecord(t, nil)

		withFee, err := r.ApplyLateFee(r.AmountAfterDiscounts(), "admin-2", at)
		require.NoError(t, err)

		again, err := withFee.ApplyLateFee(withFee.AmountAfterDiscounts(), "admin-2", at)
		assert.ErrorIs(t, err, ErrLateFeeAlreadyApplied)
		assert.Contains(t, err.Error(), "late fee already applied")
		assert.Nil(t, again)
	})

	t.Run("locked_record_fails", func(t *testing.T) {
		r := newRecord(t, nil)
		paid, err := r.MarkAsPaid(PaymentParams{PaidBy: "cashier", At: at})
		require.NoError(t, err)

		_, err = paid.ApplyLateFee(paid.AmountAfterDiscounts(), "admin-2", at)
		assert.ErrorIs(t, err, ErrRecordLocked)
	})
}

func TestMarkAsDelayed(t *testing.T) {
	base := newRecord(t, nil)
	pastDue := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)

	delayed := base.MarkAsDelayed(pastDue)
	paid, err := base.MarkAsPaid(PaymentParams{PaidBy: "cashier", At: pastDue})
	require.NoError(t, err)

	testCases := []struct {
		name           string
		record         *BillingRecord
		now            time.Time
		expectNoop     bool
		expectedStatus model.PaymentStatus
	}{
		{
			name:           "before_due_date",
			record:         base,
			now:            time.Date(2025, time.March, 4, 23, 0, 0, 0, time.UTC),
			expectNoop:     true,
			expectedStatus: model.PaymentStatusPending,
		},
		{
			name:           "on_due_date",
			record:         base,
			now:            time.Date(2025, time.March, 5, 18, 30, 0, 0, time.UTC),
			expectNoop:     true,
			expectedStatus: model.PaymentStatusPending,
		},
		{
			name:           "day_after_due_date",
			record:         base,
			now:            pastDue,
			expectedStatus: model.PaymentStatusDelayed,
		},
		{
			name:           "already_delayed",
			record:         delayed,
			now:            pastDue.AddDate(0, 1, 0),
			expectNoop:     true,
			expectedStatus: model.PaymentStatusDelayed,
		},
		{
			name:           "already_paid",
			record:         paid,
			now:            pastDue.AddDate(0, 1, 0),
			expectNoop:     true,
			expectedStatus: model.PaymentStatusPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.record.MarkAsDelayed(tc.now)

			if tc.expectNoop {
				assert.Same(t, tc.record, result)
			} else {
				assert.NotSame(t, tc.record, result)
			}
			assert.Equal(t, tc.expectedStatus, result.PaymentStatus())

			// repeated calls never change anything further
			assert.Same(t, result, result.MarkAsDelayed(tc.now))
		})
	}
}

func TestMarkAsPaid(t *testing.T) {
	r := newRecord(t, nil)
	at := time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC)
	details := model.PaymentDetails{Method: "card", Gateway: "stripe", Reference: "pi_123"}

	paid, err := r.MarkAsPaid(PaymentParams{Details: details, PaidBy: "parent-9", At: at})
	require.NoError(t, err)

	data := paid.Data()
	assert.Equal(t, model.PaymentStatusPaid, data.PaymentStatus)
	assert.True(t, data.FinalAmount.Equal(data.PaidAmount))
	require.NotNil(t, data.PaidAt)
	require.NotNil(t, data.LockedAt)
	assert.Equal(t, at, *data.PaidAt)
	assert.Equal(t, at, *data.LockedAt)
	assert.Equal(t, details, data.Payment)
	assert.Equal(t, "parent-9", data.Audit.PaidBy)
	assert.Equal(t, "admin-1", data.Audit.CreatedBy)
	assert.True(t, paid.IsLocked())
	assert.False(t, paid.CanEdit())
	assert.False(t, paid.IsOverdue(at.AddDate(1, 0, 0)))

	_, err = paid.MarkAsPaid(PaymentParams{PaidBy: "parent-9", At: at})
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	assert.False(t, r.IsLocked())
}

func TestRecordPartialPayment(t *testing.T) {
	at := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		payments       []string
		expectedError  error
		expectedStatus model.PaymentStatus
		expectedPaid   string
	}{
		{
			name:          "zero_amount",
			payments:      []string{"0"},
			expectedError: ErrInvalidPaymentAmount,
		},
		{
			name:          "negative_amount",
			payments:      []string{"-10"},
			expectedError: ErrInvalidPaymentAmount,
		},
		{
			name:          "amount_equal_to_final",
			payments:      []string{"2200"},
			expectedError: ErrInvalidPaymentAmount,
		},
		{
			name:          "amount_above_final",
			payments:      []string{"2500"},
			expectedError: ErrInvalidPaymentAmount,
		},
		{
			name:           "single_partial",
			payments:       []string{"1000"},
			expectedStatus: model.PaymentStatusPartialPayment,
			expectedPaid:   "1000",
		},
		{
			name:           "two_partials_still_open",
			payments:       []string{"1000", "700"},
			expectedStatus: model.PaymentStatusPartialPayment,
			expectedPaid:   "1700",
		},
		{
			name:           "partials_reaching_final_promote_to_paid",
			payments:       []string{"1000", "1200"},
			expectedStatus: model.PaymentStatusPaid,
			expectedPaid:   "2200",
		},
		{
			name:           "partials_exceeding_final_cap_at_final",
			payments:       []string{"1000", "1500"},
			expectedStatus: model.PaymentStatusPaid,
			expectedPaid:   "2200",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecord(t, nil)

			var err error
			for _, amount := range tc.payments {
				r, err = r.RecordPartialPayment(PaymentParams{Amount: dec(amount), PaidBy: "parent-9", At: at})
				if err != nil {
					break
				}
			}

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, r.PaymentStatus())
			assert.True(t, dec(tc.expectedPaid).Equal(r.PaidAmount()), "paid amount %s", r.PaidAmount())
			assert.Equal(t, tc.expectedStatus == model.PaymentStatusPaid, r.IsLocked())
			assertFinalAmountBalances(t, r)
		})
	}
}

func TestLockedRecord(t *testing.T) {
	at := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	amount := dec("1800")

	t.Run("paid_record", func(t *testing.T) {
		paid, err := newRecord(t, nil).MarkAsPaid(PaymentParams{PaidBy: "cashier", At: at})
		require.NoError(t, err)

		_, err = paid.Update(UpdateParams{EffectiveTuitionAmount: &amount, UpdatedBy: "admin-1", At: at})
		assert.ErrorIs(t, err, ErrRecordLocked)

		_, err = paid.RecordPartialPayment(PaymentParams{Amount: dec("10"), PaidBy: "cashier", At: at})
		assert.Error(t, err)

		_, err = paid.ApplyLateFee(paid.AmountAfterDiscounts(), "system", at)
		assert.ErrorIs(t, err, ErrRecordLocked)

		sent, err := paid.UpdateTaxableBillStatus(model.BillStatusSent, "accountant", at)
		require.NoError(t, err)
		assert.Equal(t, model.BillStatusSent, sent.BillStatus())
		assert.Equal(t, model.PaymentStatusPaid, sent.PaymentStatus())
		assert.Equal(t, "accountant", sent.Audit().StatusChangedBy)
		assert.Equal(t, "cashier", sent.Audit().PaidBy)
	})

	t.Run("locked_without_payment", func(t *testing.T) {
		data := newRecord(t, nil).Data()
		data.LockedAt = &at
		locked, err := Restore(data)
		require.NoError(t, err)

		_, err = locked.UpdateTaxableBillStatus(model.BillStatusRequired, "accountant", at)
		assert.ErrorIs(t, err, ErrRecordLocked)

		_, err = locked.MarkAsPaid(PaymentParams{PaidBy: "cashier", At: at})
		assert.ErrorIs(t, err, ErrRecordLocked)

		_, err = locked.RecordPartialPayment(PaymentParams{Amount: dec("10"), PaidBy: "cashier", At: at})
		assert.ErrorIs(t, err, ErrRecordLocked)

		assert.Same(t, locked, locked.MarkAsDelayed(at.AddDate(0, 3, 0)))
	})
}

func TestUpdateTaxableBillStatus(t *testing.T) {
	at := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	r := newRecord(t, nil)

	required, err := r.UpdateTaxableBillStatus(model.BillStatusRequired, "accountant", at)
	require.NoError(t, err)
	assert.Equal(t, model.BillStatusRequired, required.BillStatus())
	assert.True(t, required.AccruesLateFee())
	assert.False(t, r.AccruesLateFee())

	_, err = r.UpdateTaxableBillStatus("archived", "accountant", at)
	assert.ErrorIs(t, err, ErrInvalidBillStatus)
}

func TestUpdate(t *testing.T) {
	at := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	r := newRecord(t, func(p *CreateParams) {
		p.ScholarshipAmount = dec("200")
		p.ExtraCharges = []model.ExtraCharge{{Amount: dec("30"), Description: "lab"}}
	})
	withFee, err := r.MarkAsDelayed(at).ApplyLateFee(r.AmountAfterDiscounts(), "system", at)
	require.NoError(t, err)
	require.True(t, dec("100").Equal(withFee.LateFeeAmount()))

	t.Run("amount_change_keeps_fee_and_scholarship", func(t *testing.T) {
		amount := dec("2000")
		updated, err := withFee.Update(UpdateParams{EffectiveTuitionAmount: &amount, UpdatedBy: "admin-3", At: at})
		require.NoError(t, err)

		assert.True(t, dec("100").Equal(updated.LateFeeAmount()))
		assert.True(t, dec("200").Equal(updated.ScholarshipAmount()))
		// 2000 - 200 + 30 + 100
		assert.True(t, dec("1930").Equal(updated.FinalAmount()), "final amount %s", updated.FinalAmount())
		assert.Equal(t, "admin-3", updated.Audit().UpdatedBy)
		assert.Equal(t, "system", updated.Audit().LateFeeAppliedBy)
		assert.Equal(t, model.PaymentStatusDelayed, updated.PaymentStatus())
		assertFinalAmountBalances(t, updated)
	})

	t.Run("empty_slices_clear_lists", func(t *testing.T) {
		updated, err := withFee.Update(UpdateParams{
			DiscountAdjustments: []model.DiscountAdjustment{{Type: model.AdjustmentTypePercentage, Value: dec("50")}},
			ExtraCharges:        []model.ExtraCharge{},
			UpdatedBy:           "admin-3",
			At:                  at,
		})
		require.NoError(t, err)

		// (2200 - 200) * 50% discount, no extras, fee kept
		assert.True(t, dec("1100").Equal(updated.FinalAmount()), "final amount %s", updated.FinalAmount())
		assert.Len(t, withFee.Data().ExtraCharges, 1)
	})

	t.Run("invalid_edit_rejected", func(t *testing.T) {
		amount := dec("150")
		_, err := withFee.Update(UpdateParams{EffectiveTuitionAmount: &amount, UpdatedBy: "admin-3", At: at})
		assert.ErrorIs(t, err, ErrNegativeAmount)

		status := model.BillStatus("unknown")
		_, err = withFee.Update(UpdateParams{BillStatus: &status, UpdatedBy: "admin-3", At: at})
		assert.ErrorIs(t, err, ErrInvalidBillStatus)
	})
}

func TestUpdate_PartiallyPaidRecord(t *testing.T) {
	at := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	partial, err := newRecord(t, nil).RecordPartialPayment(PaymentParams{Amount: dec("1500"), PaidBy: "parent-9", At: at})
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusPartialPayment, partial.PaymentStatus())

	testCases := []struct {
		name          string
		amount        string
		expectedError error
		expectedFinal string
	}{
		{name: "final_below_paid", amount: "1000", expectedError: ErrInvalidPaymentAmount},
		{name: "final_equal_to_paid", amount: "1500", expectedError: ErrInvalidPaymentAmount},
		{name: "final_above_paid", amount: "2500", expectedFinal: "2500"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := dec(tc.amount)

			updated, err := partial.Update(UpdateParams{EffectiveTuitionAmount: &amount, UpdatedBy: "admin-3", At: at})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, updated)
				assert.True(t, dec("2200").Equal(partial.FinalAmount()))
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tc.expectedFinal).Equal(updated.FinalAmount()))
			assert.True(t, dec("1500").Equal(updated.PaidAmount()))
			assert.Equal(t, model.PaymentStatusPartialPayment, updated.PaymentStatus())
		})
	}

	t.Run("rejected_edit_keeps_next_payment_whole", func(t *testing.T) {
		amount := dec("1000")
		_, err := partial.Update(UpdateParams{EffectiveTuitionAmount: &amount, UpdatedBy: "admin-3", At: at})
		require.Error(t, err)

		paid, err := partial.RecordPartialPayment(PaymentParams{Amount: dec("700"), PaidBy: "parent-9", At: at})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusPaid, paid.PaymentStatus())
		assert.True(t, dec("2200").Equal(paid.PaidAmount()))
	})
}

func TestAuditActorsAreNotErased(t *testing.T) {
	at := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	r := newRecord(t, func(p *CreateParams) { p.BillStatus = model.BillStatusRequired })

	sent, err := r.UpdateTaxableBillStatus(model.BillStatusSent, "accountant", at)
	require.NoError(t, err)
	withFee, err := sent.MarkAsDelayed(at).ApplyLateFee(sent.AmountAfterDiscounts(), "system", at)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		transition func(r *BillingRecord) (*BillingRecord, error)
	}{
		{
			name: "bill_status_without_actor",
			transition: func(r *BillingRecord) (*BillingRecord, error) {
				return r.UpdateTaxableBillStatus(model.BillStatusRequired, "", at)
			},
		},
		{
			name: "update_without_actor",
			transition: func(r *BillingRecord) (*BillingRecord, error) {
				amount := dec("2300")
				return r.Update(UpdateParams{EffectiveTuitionAmount: &amount, At: at})
			},
		},
		{
			name: "partial_payment_without_actor",
			transition: func(r *BillingRecord) (*BillingRecord, error) {
				return r.RecordPartialPayment(PaymentParams{Amount: dec("100"), At: at})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.transition(withFee)

			require.NoError(t, err)
			audit := next.Audit()
			assert.Equal(t, "admin-1", audit.CreatedBy)
			assert.Equal(t, "system", audit.LateFeeAppliedBy)
			assert.Equal(t, "system", audit.UpdatedBy)
			assert.NotEmpty(t, audit.StatusChangedBy)
		})
	}

	t.Run("late_fee_without_actor", func(t *testing.T) {
		next, err := sent.ApplyLateFee(sent.AmountAfterDiscounts(), "", at)

		require.NoError(t, err)
		assert.Equal(t, "accountant", next.Audit().UpdatedBy)
		assert.Equal(t, "accountant", next.Audit().StatusChangedBy)
		assert.Empty(t, next.Audit().LateFeeAppliedBy)
	})
}

func TestRestore(t *testing.T) {
	r := newRecord(t, func(p *CreateParams) {
		p.DiscountAdjustments = []model.DiscountAdjustment{{Type: model.AdjustmentTypeFixed, Value: dec("100")}}
	})

	t.Run("round_trip", func(t *testing.T) {
		restored, err := Restore(r.Data())
		require.NoError(t, err)
		assert.Equal(t, r.Data(), restored.Data())
	})

	t.Run("stored_final_amount_is_recomputed", func(t *testing.T) {
		data := r.Data()
		data.FinalAmount = dec("9999")

		restored, err := Restore(data)
		require.NoError(t, err)
		assert.True(t, dec("2100").Equal(restored.FinalAmount()))
	})

	t.Run("unknown_payment_status", func(t *testing.T) {
		data := r.Data()
		data.PaymentStatus = "refunded"

		_, err := Restore(data)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("data_is_detached", func(t *testing.T) {
		data := r.Data()
		data.DiscountAdjustments[0].Value = dec("900")

		assert.True(t, dec("100").Equal(r.DiscountAmount()))
	})
}
