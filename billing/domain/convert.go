package domain

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/model"
	"tuition.app/billing/repository/billingrecords"
	"tuition.app/billing/repository/pgconv"
)

// ToEntity rebuilds a billing record from its stored row.
func ToEntity(row billingrecords.BillingRecord) (*billingrecord.BillingRecord, error) {
	d := billingrecord.Data{
		ID:            pgconv.FromUUID(row.ID),
		SchoolID:      pgconv.FromUUID(row.SchoolID),
		StudentID:     pgconv.FromUUID(row.StudentID),
		SchoolYearID:  pgconv.FromUUID(row.SchoolYearID),
		BillingMonth:  int(row.BillingMonth),
		BillingYear:   int(row.BillingYear),
		BillStatus:    model.BillStatus(row.BillStatus),
		PaymentStatus: model.PaymentStatus(row.PaymentStatus),
		PaidAt:        pgconv.FromTimestamptzPtr(row.PaidAt),
		LockedAt:      pgconv.FromTimestamptzPtr(row.LockedAt),
		Payment: model.PaymentDetails{
			Method:    row.PaymentMethod.String,
			Gateway:   row.PaymentGateway.String,
			Reference: row.PaymentReference.String,
		},
		DueDate:   row.DueDate.Time,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}

	amounts := []struct {
		column string
		src    pgtype.Numeric
		dst    *decimal.Decimal
	}{
		{"effective_tuition_amount", row.EffectiveTuitionAmount, &d.EffectiveTuitionAmount},
		{"scholarship_amount", row.ScholarshipAmount, &d.ScholarshipAmount},
		{"late_fee_amount", row.LateFeeAmount, &d.LateFeeAmount},
		{"final_amount", row.FinalAmount, &d.FinalAmount},
		{"paid_amount", row.PaidAmount, &d.PaidAmount},
	}
	for _, a := range amounts {
		v, err := pgconv.Decimal(a.src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.column, err)
		}
		*a.dst = v
	}

	documents := []struct {
		column string
		src    []byte
		dst    any
	}{
		{"tuition_type_snapshot", row.TuitionTypeSnapshot, &d.TuitionType},
		{"discount_adjustments", row.DiscountAdjustments, &d.DiscountAdjustments},
		{"extra_charges", row.ExtraCharges, &d.ExtraCharges},
		{"audit_metadata", row.AuditMetadata, &d.Audit},
	}
	for _, doc := range documents {
		if len(doc.src) == 0 {
			continue
		}
		if err := json.Unmarshal(doc.src, doc.dst); err != nil {
			return nil, fmt.Errorf("%s: %w", doc.column, err)
		}
	}

	return billingrecord.Restore(d)
}

// ToEntities converts rows in order, stopping at the first bad row.
func ToEntities(rows []billingrecords.BillingRecord) ([]*billingrecord.BillingRecord, error) {
	records := make([]*billingrecord.BillingRecord, 0, len(rows))
	for _, row := range rows {
		r, err := ToEntity(row)
		if err != nil {
			return nil, fmt.Errorf("billing record %s: %w", pgconv.FromUUID(row.ID), err)
		}
		records = append(records, r)
	}
	return records, nil
}

type documents struct {
	snapshot    []byte
	adjustments []byte
	charges     []byte
	audit       []byte
}

func marshalDocuments(d billingrecord.Data) (documents, error) {
	var docs documents
	var err error
	if docs.snapshot, err = json.Marshal(d.TuitionType); err != nil {
		return docs, fmt.Errorf("tuition_type_snapshot: %w", err)
	}
	adjustments := d.DiscountAdjustments
	if adjustments == nil {
		adjustments = []model.DiscountAdjustment{}
	}
	if docs.adjustments, err = json.Marshal(adjustments); err != nil {
		return docs, fmt.Errorf("discount_adjustments: %w", err)
	}
	charges := d.ExtraCharges
	if charges == nil {
		charges = []model.ExtraCharge{}
	}
	if docs.charges, err = json.Marshal(charges); err != nil {
		return docs, fmt.Errorf("extra_charges: %w", err)
	}
	if docs.audit, err = json.Marshal(d.Audit); err != nil {
		return docs, fmt.Errorf("audit_metadata: %w", err)
	}
	return docs, nil
}

// ToCreateParams maps a freshly created record onto its insert row.
func ToCreateParams(r *billingrecord.BillingRecord) (billingrecords.CreateBillingRecordsParams, error) {
	d := r.Data()
	docs, err := marshalDocuments(d)
	if err != nil {
		return billingrecords.CreateBillingRecordsParams{}, err
	}

	return billingrecords.CreateBillingRecordsParams{
		ID:                     pgconv.UUID(d.ID),
		SchoolID:               pgconv.UUID(d.SchoolID),
		StudentID:              pgconv.UUID(d.StudentID),
		SchoolYearID:           pgconv.UUID(d.SchoolYearID),
		BillingMonth:           int32(d.BillingMonth),
		BillingYear:            int32(d.BillingYear),
		TuitionTypeSnapshot:    docs.snapshot,
		EffectiveTuitionAmount: pgconv.Numeric(d.EffectiveTuitionAmount),
		ScholarshipAmount:      pgconv.Numeric(d.ScholarshipAmount),
		DiscountAdjustments:    docs.adjustments,
		ExtraCharges:           docs.charges,
		LateFeeAmount:          pgconv.Numeric(d.LateFeeAmount),
		FinalAmount:            pgconv.Numeric(d.FinalAmount),
		BillStatus:             string(d.BillStatus),
		PaymentStatus:          string(d.PaymentStatus),
		PaidAmount:             pgconv.Numeric(d.PaidAmount),
		DueDate:                pgconv.Date(d.DueDate),
		AuditMetadata:          docs.audit,
		CreatedAt:              pgconv.Timestamptz(d.CreatedAt),
		UpdatedAt:              pgconv.Timestamptz(d.UpdatedAt),
	}, nil
}

// ToUpdateParams maps every mutable field of r onto a full-row update.
func ToUpdateParams(r *billingrecord.BillingRecord) (billingrecords.UpdateBillingRecordParams, error) {
	d := r.Data()
	docs, err := marshalDocuments(d)
	if err != nil {
		return billingrecords.UpdateBillingRecordParams{}, err
	}

	return billingrecords.UpdateBillingRecordParams{
		SchoolID:               pgconv.UUID(d.SchoolID),
		ID:                     pgconv.UUID(d.ID),
		EffectiveTuitionAmount: pgconv.Numeric(d.EffectiveTuitionAmount),
		ScholarshipAmount:      pgconv.Numeric(d.ScholarshipAmount),
		DiscountAdjustments:    docs.adjustments,
		ExtraCharges:           docs.charges,
		LateFeeAmount:          pgconv.Numeric(d.LateFeeAmount),
		FinalAmount:            pgconv.Numeric(d.FinalAmount),
		BillStatus:             string(d.BillStatus),
		PaymentStatus:          string(d.PaymentStatus),
		PaidAmount:             pgconv.Numeric(d.PaidAmount),
		PaidAt:                 pgconv.TimestamptzPtr(d.PaidAt),
		LockedAt:               pgconv.TimestamptzPtr(d.LockedAt),
		PaymentMethod:          pgconv.Text(d.Payment.Method),
		PaymentGateway:         pgconv.Text(d.Payment.Gateway),
		PaymentReference:       pgconv.Text(d.Payment.Reference),
		AuditMetadata:          docs.audit,
		UpdatedAt:              pgconv.Timestamptz(d.UpdatedAt),
	}, nil
}
